package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName           = errors.New("name is required")
	ErrInvalidName         = errors.New("invalid name: expected 3-16 letters, digits or underscores")
	ErrInvalidActor        = errors.New("invalid actor")
	ErrEmptyPassword       = errors.New("password is required")
	ErrInvalidExportFormat = errors.New("invalid export format")
)
