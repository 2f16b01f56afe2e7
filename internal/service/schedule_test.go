package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextDailyRun(t *testing.T) {
	day := func(d, h, m int) time.Time { return time.Date(2026, 10, d, h, m, 0, 0, time.UTC) }

	tests := []struct {
		name   string
		now    time.Time
		hour   int
		minute int
		want   time.Time
	}{
		{"later today", day(19, 1, 0), 3, 0, day(19, 3, 0)},
		{"already passed", day(19, 4, 0), 3, 0, day(20, 3, 0)},
		{"exactly now rolls over", day(19, 3, 0), 3, 0, day(20, 3, 0)},
		{"month end", time.Date(2026, 10, 31, 23, 59, 0, 0, time.UTC), 0, 0, time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextDailyRun(tt.now, tt.hour, tt.minute))
		})
	}
}
