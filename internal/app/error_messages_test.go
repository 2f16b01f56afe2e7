package app

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-whitelist-keeper/internal/adapter"
	"github.com/stretchr/testify/assert"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"cooldown with retry", &adapter.TooManyRequestsError{RetryAfterSeconds: 12}, "a sync ran moments ago, retry in 12s"},
		{"cooldown without retry", &adapter.TooManyRequestsError{}, MsgCooldown},
		{"unauthorized", fmt.Errorf("%w: token is expired or invalid", adapter.ErrUnauthorized), MsgLoginRequired},
		{"bad request keeps reason", fmt.Errorf("%w: invalid identifier", adapter.ErrBadRequest), "invalid data provided: invalid identifier"},
		{"too large", fmt.Errorf("%w: x", adapter.ErrPayloadTooLarge), MsgImportTooLarge},
		{"remote disabled", adapter.ErrServiceUnavailable, MsgRemoteDisabled},
		{"remote failed", fmt.Errorf("%w: connection refused", adapter.ErrBadGateway), "the game server did not respond: connection refused"},
		{"internal", fmt.Errorf("%w: Internal Server Error", adapter.ErrInternalServerError), MsgInternalServerError},
		{"network", errors.New(`Get "http://localhost:8080/api/status": dial tcp 127.0.0.1:8080: connect: connection refused`), MsgServerUnavailable},
		{"other", errors.New("something odd"), "something odd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}
