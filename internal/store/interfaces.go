package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-whitelist-keeper/models"
)

// WhitelistStore is the authoritative local set of player identifiers.
//
// Every implementation serialises its operations, so concurrent callers
// always observe a consistent set. Names are returned sorted ascending and
// without duplicates.
type WhitelistStore interface {
	// List returns all names in ascending order. A missing backing file is
	// treated as an empty list; an unreadable one yields ErrStorageDegraded.
	List(ctx context.Context) ([]string, error)

	// Add trims name and inserts it. It reports false, without writing, when
	// the name is already present. An empty name yields ErrEmptyName.
	Add(ctx context.Context, name string) (bool, error)

	// AddMany inserts every name not yet present with a single write and
	// reports how many were added and how many were already there.
	AddMany(ctx context.Context, names []string) (added, alreadyPresent int, err error)

	// Remove deletes name. It reports false, without writing, when the name
	// is absent.
	Remove(ctx context.Context, name string) (bool, error)
}

// BackupStore writes and prunes timestamped snapshots of the whitelist.
type BackupStore interface {
	// Snapshot copies the current whitelist into a new backup file and
	// prunes old ones. It returns the written path, or "" when backups are
	// disabled.
	Snapshot(ctx context.Context) (string, error)

	// Prune deletes all but the newest configured number of snapshots.
	Prune(ctx context.Context)

	// List returns existing snapshots ordered from oldest to newest.
	List(ctx context.Context) ([]models.BackupSnapshot, error)
}

// AuditRepository persists the audit trail of whitelist changes.
type AuditRepository interface {
	// Record stores entry and returns it with ID and CreatedAt populated.
	Record(ctx context.Context, entry models.AuditEntry) (models.AuditEntry, error)

	// Recent returns the newest entries matching filter, newest first.
	Recent(ctx context.Context, filter models.AuditFilter) ([]models.AuditEntry, error)
}
