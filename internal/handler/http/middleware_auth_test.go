package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-whitelist-keeper/internal/logger"
	"github.com/MKhiriev/go-whitelist-keeper/internal/mock"
	"github.com/MKhiriev/go-whitelist-keeper/internal/service"
	"github.com/MKhiriev/go-whitelist-keeper/internal/utils"
	"github.com/MKhiriev/go-whitelist-keeper/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantActor  string
	}{
		{"missing header", "", http.StatusUnauthorized, ""},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, ""},
		{"scheme only", "Bearer", http.StatusUnauthorized, ""},
		{"rejected token", "Bearer other", http.StatusUnauthorized, ""},
		{"valid token", "Bearer good", http.StatusOK, "ops"},
		{"scheme is case insensitive", "bearer good", http.StatusOK, "ops"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := mock.NewMockAuthService(ctrl)
			auth.EXPECT().ParseToken(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, token string) (models.Token, error) {
					if token == "good" {
						return models.Token{Actor: "ops"}, nil
					}
					return models.Token{}, service.ErrTokenIsExpiredOrInvalid
				}).AnyTimes()

			h := NewHandler(&service.Services{AuthService: auth}, 0, logger.Nop())

			var gotActor string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotActor, _ = utils.GetActorFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.auth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantActor, gotActor)
		})
	}
}
