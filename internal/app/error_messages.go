// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing messages wlctl prints when a server
// call fails.
//
// All Msg* constants are human-readable strings. Keeping them in one place
// ensures consistent wording across commands.
package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-whitelist-keeper/internal/adapter"
)

const (
	// MsgInvalidDataProvided is shown when the server rejects the input,
	// e.g. a malformed player name or an unknown export format.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgLoginRequired is shown when no token is stored or the stored token
	// was rejected.
	MsgLoginRequired = "not logged in or the session expired, run `wlctl login`"

	// MsgCooldown is shown when a manual sync is rejected because the
	// operator ran one too recently.
	MsgCooldown = "a sync ran moments ago"

	// MsgRemoteDisabled is shown when the game server integration is turned
	// off on the server.
	MsgRemoteDisabled = "the game server integration is disabled"

	// MsgRemoteFailed is shown when the server could not reach the game
	// server's remote console or was refused by it.
	MsgRemoteFailed = "the game server did not respond"

	// MsgImportTooLarge is shown when an import file exceeds the server's
	// size limit.
	MsgImportTooLarge = "the import file is too large"

	// MsgInternalServerError is shown when an unexpected server-side
	// failure occurs that the operator cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgServerUnavailable is shown when whitelistd itself cannot be
	// reached.
	MsgServerUnavailable = "whitelistd is unreachable"
)

// UserMessage turns an adapter error into the line wlctl prints. The server's
// own reason is appended where it helps the operator.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var tooMany *adapter.TooManyRequestsError
	switch {
	case errors.As(err, &tooMany):
		if tooMany.RetryAfterSeconds > 0 {
			return fmt.Sprintf("%s, retry in %ds", MsgCooldown, tooMany.RetryAfterSeconds)
		}
		return MsgCooldown
	case errors.Is(err, adapter.ErrUnauthorized):
		return MsgLoginRequired
	case errors.Is(err, adapter.ErrBadRequest):
		return withReason(MsgInvalidDataProvided, err, adapter.ErrBadRequest)
	case errors.Is(err, adapter.ErrPayloadTooLarge):
		return MsgImportTooLarge
	case errors.Is(err, adapter.ErrServiceUnavailable):
		return withReason(MsgRemoteDisabled, err, adapter.ErrServiceUnavailable)
	case errors.Is(err, adapter.ErrBadGateway):
		return withReason(MsgRemoteFailed, err, adapter.ErrBadGateway)
	case errors.Is(err, adapter.ErrInternalServerError):
		return MsgInternalServerError
	case isNetworkError(err):
		return MsgServerUnavailable
	}

	return err.Error()
}

// withReason appends the server's message, which follows the sentinel text
// in errors built by the adapter.
func withReason(msg string, err, sentinel error) string {
	reason := strings.TrimPrefix(err.Error(), sentinel.Error())
	reason = strings.TrimSpace(strings.TrimPrefix(reason, ":"))
	if reason == "" {
		return msg
	}
	return msg + ": " + reason
}

func isNetworkError(err error) bool {
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded")
}
