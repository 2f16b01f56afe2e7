package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-whitelist-keeper/internal/logger"
	"github.com/MKhiriev/go-whitelist-keeper/internal/service"
	"github.com/MKhiriev/go-whitelist-keeper/internal/utils"
	"github.com/MKhiriev/go-whitelist-keeper/models"
)

// errorStatus pairs a sentinel with its status code. Entries are checked in
// order, so more specific errors come before the families that wrap them.
type errorStatus struct {
	target error
	status int
}

var errorStatusTable = []errorStatus{
	{service.ErrImportTooLarge, http.StatusRequestEntityTooLarge},
	{errBodyTooLarge, http.StatusRequestEntityTooLarge},
	{service.ErrInvalidCredentials, http.StatusBadRequest},
	{service.ErrValidation, http.StatusBadRequest},
	{errInvalidJSON, http.StatusBadRequest},
	{errInvalidQueryParam, http.StatusBadRequest},
	{errInvalidGzip, http.StatusBadRequest},

	{service.ErrWrongPassword, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{ErrNoActorInContext, http.StatusUnauthorized},

	{service.ErrCooldownActive, http.StatusTooManyRequests},

	{service.ErrRemoteUnavailable, http.StatusServiceUnavailable},
	{service.ErrAuthNotConfigured, http.StatusServiceUnavailable},
	{service.ErrRemoteFetch, http.StatusBadGateway},
	{service.ErrRemoteConnection, http.StatusBadGateway},
	{service.ErrRemoteAuth, http.StatusBadGateway},
	{service.ErrRemote, http.StatusBadGateway},

	{service.ErrStorageDegraded, http.StatusInternalServerError},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, entry := range errorStatusTable {
		if errors.Is(err, entry.target) {
			return entry.status
		}
	}
	return http.StatusInternalServerError
}

// writeError renders err as a models.ErrorResponse. Internal errors are
// reported with the generic status text; a cooldown also sets Retry-After.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status := statusFromError(err)

	response := models.ErrorResponse{Error: err.Error()}
	if status == http.StatusInternalServerError {
		response.Error = http.StatusText(status)
	}

	var cooldownErr *service.CooldownError
	if errors.As(err, &cooldownErr) {
		response.RetryAfterSeconds = cooldownErr.RemainingSeconds
		w.Header().Set("Retry-After", strconv.Itoa(cooldownErr.RemainingSeconds))
	}

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Send()

	utils.WriteJSON(w, response, status)
}
