package validators

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-whitelist-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldName targets a single player identifier.
	FieldName = "name"

	// FieldActor targets the operator name of a token request.
	FieldActor = "actor"

	// FieldPassword targets the password of a token request.
	FieldPassword = "password"

	// FieldFormat targets an export format.
	FieldFormat = "format"
)

// maxActorLength bounds operator names used as audit and cooldown keys.
const maxActorLength = 64

// namePattern is the player identifier rule: 3 to 16 ASCII letters, digits
// or underscores.
var namePattern = regexp.MustCompile(`^[A-Za-z0-9_]{3,16}$`)

// IsValidName reports whether name is an acceptable player identifier. The
// check is exact; callers trim surrounding whitespace first.
func IsValidName(name string) bool {
	return namePattern.MatchString(name)
}

// WhitelistValidator implements the Validator interface for whitelist
// inputs: player names, name requests, token requests and export formats.
type WhitelistValidator struct{}

// NewWhitelistValidator constructs a new WhitelistValidator and returns it as
// the Validator interface.
func NewWhitelistValidator() Validator {
	return &WhitelistValidator{}
}

// Validate dispatches validation based on the dynamic type of obj.
//
// Supported types:
//   - string (a player identifier, trimmed before matching)
//   - []string (every element must be a valid identifier)
//   - models.NameRequest / *models.NameRequest
//   - models.TokenRequest / *models.TokenRequest
//   - models.ExportFormat
//
// Returns ErrUnsupportedType if obj does not match any known input.
func (v *WhitelistValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case string:
		return v.validateName(value)
	case []string:
		for _, name := range value {
			if err := v.validateName(name); err != nil {
				return err
			}
		}
		return nil

	case models.NameRequest:
		return v.validateName(value.Name)
	case *models.NameRequest:
		return v.validateName(value.Name)

	case models.TokenRequest:
		return v.validateTokenRequest(value, fields...)
	case *models.TokenRequest:
		return v.validateTokenRequest(*value, fields...)

	case models.ExportFormat:
		return v.validateExportFormat(value)

	default:
		return ErrUnsupportedType
	}
}

func (v *WhitelistValidator) validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if !IsValidName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// validateTokenRequest checks FieldActor and FieldPassword by default.
func (v *WhitelistValidator) validateTokenRequest(req models.TokenRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldActor, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldActor:
			actor := strings.TrimSpace(req.Actor)
			if actor == "" || len(actor) > maxActorLength {
				return ErrInvalidActor
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *WhitelistValidator) validateExportFormat(format models.ExportFormat) error {
	switch format {
	case models.ExportJSON, models.ExportCSV:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidExportFormat, format)
	}
}
