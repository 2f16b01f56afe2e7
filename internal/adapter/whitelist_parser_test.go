package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseWhitelistList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "vanilla reply",
			raw:  "There are 3 whitelisted player(s): Alice, Bob, Charlie",
			want: []string{"Alice", "Bob", "Charlie"},
		},
		{
			name: "zero players",
			raw:  "There are 0 whitelisted player(s):",
			want: []string{},
		},
		{
			name: "only first colon splits",
			raw:  "Whitelist: Alice, Bob:Extra",
			want: []string{"Alice", "Bob:Extra"},
		},
		{
			name: "empty entries dropped",
			raw:  "players: Alice, , Bob,",
			want: []string{"Alice", "Bob"},
		},
		{
			name: "comma list without colon",
			raw:  "Alice,Bob , Charlie",
			want: []string{"Alice", "Bob", "Charlie"},
		},
		{
			name: "single name",
			raw:  "  Alice \n",
			want: []string{"Alice"},
		},
		{
			name: "empty reply",
			raw:  "",
			want: []string{},
		},
		{
			name: "whitespace reply",
			raw:  " \t ",
			want: []string{},
		},
		{
			name: "order preserved",
			raw:  "list: Zed, Amy",
			want: []string{"Zed", "Amy"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseWhitelistList(tt.raw))
		})
	}
}
