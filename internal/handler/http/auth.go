package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-whitelist-keeper/internal/logger"
	"github.com/MKhiriev/go-whitelist-keeper/internal/utils"
	"github.com/MKhiriev/go-whitelist-keeper/models"
)

func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, "*Handler.issueToken", fmt.Errorf("%w: %w", errInvalidJSON, err))
		return
	}

	token, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, "*Handler.issueToken", err)
		return
	}

	log.Debug().Str("func", "*Handler.issueToken").Str("actor", token.Actor).Msg("token issued")

	response := models.TokenResponse{
		Token: token.SignedString,
		Actor: token.Actor,
	}
	if token.ExpiresAt != nil {
		response.ExpiresAt = token.ExpiresAt.Time
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, response, http.StatusOK)
}
