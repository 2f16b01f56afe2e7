// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AuditKind classifies an audit log entry.
type AuditKind string

const (
	AuditSyncScheduled AuditKind = "sync_scheduled"
	AuditSyncManual    AuditKind = "sync_manual"
	AuditImport        AuditKind = "import"
	AuditAdd           AuditKind = "add"
	AuditRemove        AuditKind = "remove"
)

// AuditEntry is one persisted record of a whitelist-changing operation.
type AuditEntry struct {
	ID        int64     `json:"id"`
	Kind      AuditKind `json:"kind"`
	Actor     string    `json:"actor,omitempty"`
	RunID     string    `json:"run_id,omitempty"`
	Status    string    `json:"status,omitempty"`
	Added     int       `json:"added"`
	Removed   int       `json:"removed"`
	Failed    int       `json:"failed"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// AuditFilter narrows an audit log query. A zero Limit means the
// repository default; an empty Kind matches every kind.
type AuditFilter struct {
	Limit uint64
	Kind  AuditKind
}
