package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-whitelist-keeper/internal/adapter"
	"github.com/MKhiriev/go-whitelist-keeper/internal/store"
	"github.com/MKhiriev/go-whitelist-keeper/models"
)

// ErrValidation is the parent of every input error. Callers can test a
// specific cause or the whole family with errors.Is.
var ErrValidation = errors.New("validation failed")

var (
	ErrInvalidIdentifier       = fmt.Errorf("%w: invalid identifier", ErrValidation)
	ErrEmptyIdentifier         = fmt.Errorf("%w: empty identifier", ErrValidation)
	ErrImportTooLarge          = fmt.Errorf("%w: import too large", ErrValidation)
	ErrNoValidNames            = fmt.Errorf("%w: no valid names found", ErrValidation)
	ErrUnsupportedExportFormat = fmt.Errorf("%w: unsupported export format", ErrValidation)
	ErrInvalidCredentials      = fmt.Errorf("%w: invalid credentials", ErrValidation)
)

// Remote and storage errors are re-exported so that front-ends depend on a
// single package.
var (
	ErrRemoteUnavailable = adapter.ErrRemoteUnavailable
	ErrRemoteConnection  = adapter.ErrRemoteConnection
	ErrRemoteAuth        = adapter.ErrRemoteAuth
	ErrRemote            = adapter.ErrRemote
	ErrStorageDegraded   = store.ErrStorageDegraded
	ErrPartialApply      = models.ErrPartialApply
)

var (
	// ErrRemoteFetch wraps the cause when a run cannot read the remote
	// whitelist. The run makes no mutations.
	ErrRemoteFetch = errors.New("remote whitelist fetch failed")

	ErrCooldownActive = errors.New("sync cooldown active")

	ErrWrongPassword           = errors.New("wrong password")
	ErrAuthNotConfigured       = errors.New("admin authentication is not configured")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// CooldownError rejects a manual run started too soon after the actor's
// previous completed one.
type CooldownError struct {
	// RemainingSeconds is the whole number of seconds until the actor may
	// run again. It is always at least 1.
	RemainingSeconds int
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("%s: retry in %ds", ErrCooldownActive, e.RemainingSeconds)
}

func (e *CooldownError) Is(target error) bool {
	return target == ErrCooldownActive
}
