package adapter

import (
	"errors"
	"fmt"
)

// Remote console errors.
var (
	// ErrRemoteUnavailable is returned when the integration is disabled or
	// has no password configured.
	ErrRemoteUnavailable = errors.New("remote console unavailable")

	// ErrRemoteConnection is returned when the game server cannot be
	// reached or the connection times out.
	ErrRemoteConnection = errors.New("remote console connection failed")

	// ErrRemoteAuth is returned when the server rejects the password.
	ErrRemoteAuth = errors.New("remote console authentication failed")

	// ErrRemote covers every other I/O or framing failure.
	ErrRemote = errors.New("remote console error")

	// ErrEmptyName is returned by whitelist commands given a blank name.
	ErrEmptyName = errors.New("empty name")
)

// Packet codec errors. They are wrapped in ErrRemote before leaving the
// package.
var (
	ErrShortPacket       = errors.New("rcon: packet shorter than header")
	ErrPacketTooLarge    = errors.New("rcon: packet too large")
	ErrMissingTerminator = errors.New("rcon: packet missing null terminators")
)

// HTTP API errors mapped from response status codes by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrPayloadTooLarge     = errors.New("payload too large")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
)

// TooManyRequestsError is returned for 429 responses. It matches
// ErrTooManyRequests with errors.Is.
type TooManyRequestsError struct {
	RetryAfterSeconds int
	Message           string
}

func (e *TooManyRequestsError) Error() string {
	return fmt.Sprintf("%s: retry in %ds", e.Message, e.RetryAfterSeconds)
}

func (e *TooManyRequestsError) Is(target error) bool {
	return target == ErrTooManyRequests
}
