package store

import "errors"

// Sentinel errors returned by the file-backed stores. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrStorageDegraded is returned when the whitelist file exists but
	// cannot be read or does not hold a JSON array of strings. The file is
	// left untouched so an operator can repair it.
	ErrStorageDegraded = errors.New("whitelist storage degraded")

	// ErrEmptyName is returned by Add when the trimmed name is empty.
	ErrEmptyName = errors.New("name is empty")

	// ErrWritingFile is returned when an atomic file replacement fails.
	ErrWritingFile = errors.New("error writing file")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan audit rows")

	// ErrUnsupportedDialect is returned for a DSN that maps to no known
	// driver.
	ErrUnsupportedDialect = errors.New("unsupported database dialect")
)

// ErrAuditSchemaMissing is returned when the audit table does not exist,
// usually because migrations were not applied.
var ErrAuditSchemaMissing = errors.New("audit schema is missing")
