package http

import (
	"net/http"

	"github.com/MKhiriev/go-whitelist-keeper/internal/logger"
	"github.com/MKhiriev/go-whitelist-keeper/internal/utils"
)

func (h *Handler) previewDiff(w http.ResponseWriter, r *http.Request) {
	removeExtras, err := optionalBool(r, "remove_extras")
	if err != nil {
		writeError(w, r, "*Handler.previewDiff", err)
		return
	}

	plan, err := h.services.WhitelistService.PreviewDiff(r.Context(), removeExtras)
	if err != nil {
		writeError(w, r, "*Handler.previewDiff", err)
		return
	}

	utils.WriteJSON(w, plan, http.StatusOK)
}

// runSync starts a manual run for the token's actor. A run whose items
// partly failed is still 200: the failures are in the body.
func (h *Handler) runSync(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		writeError(w, r, "*Handler.runSync", err)
		return
	}

	removeExtras, err := optionalBool(r, "remove_extras")
	if err != nil {
		writeError(w, r, "*Handler.runSync", err)
		return
	}

	result, err := h.services.WhitelistService.Sync(r.Context(), actor, removeExtras)
	if err != nil {
		writeError(w, r, "*Handler.runSync", err)
		return
	}

	if partial := result.Err(); partial != nil {
		logger.FromRequest(r).Warn().Err(partial).Str("func", "*Handler.runSync").Str("run_id", result.RunID).Send()
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
