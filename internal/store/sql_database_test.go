package store

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-whitelist-keeper/internal/config"
	"github.com/MKhiriev/go-whitelist-keeper/internal/logger"
	"github.com/MKhiriev/go-whitelist-keeper/models"
)

func TestDialectFromDSN(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{dsn: "", want: ""},
		{dsn: "postgres://u:p@localhost/db", want: DialectPostgres},
		{dsn: "POSTGRESQL://u:p@localhost/db", want: DialectPostgres},
		{dsn: "data/audit.db", want: DialectSQLite},
		{dsn: "file:audit.db?cache=shared", want: DialectSQLite},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			assert.Equal(t, tt.want, dialectFromDSN(tt.dsn))
		})
	}
}

func TestNewConnect_EmptyDSN(t *testing.T) {
	_, err := NewConnect(context.Background(), config.Audit{}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDialect)
}

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: assert.AnError, want: NonRetryable},
		{name: "connection failure", err: &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, want: Retryable},
		{name: "deadlock", err: &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, want: Retryable},
		{name: "cannot connect now", err: &pgconn.PgError{Code: pgerrcode.CannotConnectNow}, want: Retryable},
		{name: "unique violation", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: NonRetryable},
		{name: "undefined table", err: &pgconn.PgError{Code: pgerrcode.UndefinedTable}, want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

// TestStorages_SQLiteEndToEnd exercises the real sqlite driver, migrations
// and the audit repository together.
func TestStorages_SQLiteEndToEnd(t *testing.T) {
	dir := t.TempDir()
	enabled := true
	keep := 2

	s, err := NewStorages(context.Background(), config.Storage{
		WhitelistPath: filepath.Join(dir, "whitelist.json"),
		Backup:        config.Backup{Enabled: &enabled, Dir: filepath.Join(dir, "backups"), MaxKeep: &keep},
		Audit:         config.Audit{DSN: filepath.Join(dir, "audit.db")},
	}, logger.Nop())
	if err != nil && strings.Contains(err.Error(), "CGO_ENABLED=0") {
		t.Skip("go-sqlite3 requires cgo")
	}
	require.NoError(t, err)
	defer s.Close()

	ctx := context.Background()
	_, err = s.Audit.Record(ctx, models.AuditEntry{Kind: models.AuditAdd, Actor: "admin", Added: 1, Detail: "Steve"})
	require.NoError(t, err)
	_, err = s.Audit.Record(ctx, models.AuditEntry{Kind: models.AuditImport, Added: 3})
	require.NoError(t, err)

	entries, err := s.Audit.Recent(ctx, models.AuditFilter{Kind: models.AuditAdd})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Steve", entries[0].Detail)
	assert.NotZero(t, entries[0].ID)
}

func TestStorages_WithoutAudit(t *testing.T) {
	dir := t.TempDir()

	s, err := NewStorages(context.Background(), config.Storage{
		WhitelistPath: filepath.Join(dir, "whitelist.json"),
	}, logger.Nop())
	require.NoError(t, err)

	assert.NoError(t, s.Close())
	_, isNop := s.Audit.(nopAuditRepository)
	assert.True(t, isNop)
}
