package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-whitelist-keeper/internal/adapter"
	"github.com/MKhiriev/go-whitelist-keeper/internal/logger"
	"github.com/MKhiriev/go-whitelist-keeper/internal/validators"
)

// mapValidationError translates validator errors into the service's
// ErrValidation family, keeping the validator message.
func mapValidationError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, validators.ErrEmptyName):
		return ErrEmptyIdentifier
	case errors.Is(err, validators.ErrInvalidName):
		return fmt.Errorf("%w: %w", ErrInvalidIdentifier, err)
	case errors.Is(err, validators.ErrInvalidExportFormat):
		return fmt.Errorf("%w: %w", ErrUnsupportedExportFormat, err)
	case errors.Is(err, validators.ErrInvalidActor), errors.Is(err, validators.ErrEmptyPassword):
		return fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	default:
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
}

// fetchRemoteNames lists the server's whitelist and keeps only valid
// identifiers. The list reply is parsed loosely, so prose such as
// "There are no whitelisted players" can surface as tokens.
func fetchRemoteNames(ctx context.Context, remote adapter.RemoteConsole) ([]string, error) {
	raw, err := remote.WhitelistList(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(raw))
	for _, name := range raw {
		name = strings.TrimSpace(name)
		if validators.IsValidName(name) {
			names = append(names, name)
		}
	}

	if dropped := len(raw) - len(names); dropped > 0 {
		logger.FromContext(ctx).Warn().
			Str("func", "fetchRemoteNames").
			Int("dropped", dropped).
			Msg("ignored non-identifier tokens in remote whitelist")
	}
	return names, nil
}
