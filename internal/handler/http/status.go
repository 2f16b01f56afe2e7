package http

import (
	"net/http"

	"github.com/MKhiriev/go-whitelist-keeper/internal/utils"
	"github.com/MKhiriev/go-whitelist-keeper/models"
)

// maxAuditLimit caps a single audit page.
const maxAuditLimit = 1000

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.services.WhitelistService.Status(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.getStatus", err)
		return
	}

	utils.WriteJSON(w, status, http.StatusOK)
}

func (h *Handler) getAudit(w http.ResponseWriter, r *http.Request) {
	limit, err := nonNegativeInt(r, "limit")
	if err != nil {
		writeError(w, r, "*Handler.getAudit", err)
		return
	}
	limit = min(limit, maxAuditLimit)

	entries, err := h.services.WhitelistService.Audit(r.Context(), limit)
	if err != nil {
		writeError(w, r, "*Handler.getAudit", err)
		return
	}
	if entries == nil {
		entries = []models.AuditEntry{}
	}

	utils.WriteJSON(w, models.AuditResponse{Entries: entries, Length: len(entries)}, http.StatusOK)
}
