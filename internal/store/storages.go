// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-whitelist-keeper/internal/config"
	"github.com/MKhiriev/go-whitelist-keeper/internal/logger"
)

// Storages groups every persistence backend the service layer needs.
type Storages struct {
	// Whitelist is the authoritative local list.
	Whitelist WhitelistStore

	// Backups snapshots Whitelist after every completed change batch.
	Backups BackupStore

	// Audit records whitelist changes. It is a no-op when no audit
	// database is configured.
	Audit AuditRepository

	db *DB
}

// NewStorages initialises the storage layer:
//  1. Opens (creating if needed) the whitelist file.
//  2. Wires the backup store to it.
//  3. When an audit DSN is configured, connects to PostgreSQL or SQLite and
//     runs migrations.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	whitelist, err := NewFileWhitelistStore(cfg.WhitelistPath, logger)
	if err != nil {
		return nil, fmt.Errorf("whitelist store error: %w", err)
	}

	s := &Storages{
		Whitelist: whitelist,
		Backups:   NewFileBackupStore(cfg.Backup, whitelist, logger),
		Audit:     NewNopAuditRepository(),
	}

	if cfg.Audit.DSN == "" {
		logger.Info().Msg("audit database is not configured, audit log disabled")
		return s, nil
	}

	db, err := NewConnect(ctx, cfg.Audit, logger)
	if err != nil {
		return nil, fmt.Errorf("audit database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	s.db = db
	s.Audit = NewAuditRepository(db, logger)

	return s, nil
}

// Close releases the audit database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
