package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-whitelist-keeper/models"
)

const (
	auditTable = "audit_log"

	defaultAuditLimit = 50
	maxAuditLimit     = 500
)

var auditColumns = []string{
	"id",
	"kind",
	"actor",
	"run_id",
	"status",
	"added",
	"removed",
	"failed",
	"detail",
	"created_at",
}

// buildInsertAuditQuery builds an INSERT returning the generated id.
func buildInsertAuditQuery(ph sq.PlaceholderFormat, entry models.AuditEntry) (string, []any, error) {
	query, args, err := sq.Insert(auditTable).
		Columns(auditColumns[1:]...).
		Values(
			string(entry.Kind),
			entry.Actor,
			entry.RunID,
			entry.Status,
			entry.Added,
			entry.Removed,
			entry.Failed,
			entry.Detail,
			entry.CreatedAt,
		).
		Suffix("RETURNING id").
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSelectAuditQuery builds a newest-first SELECT honouring the filter.
// A zero limit falls back to defaultAuditLimit and large limits are capped.
func buildSelectAuditQuery(ph sq.PlaceholderFormat, filter models.AuditFilter) (string, []any, error) {
	limit := filter.Limit
	switch {
	case limit == 0:
		limit = defaultAuditLimit
	case limit > maxAuditLimit:
		limit = maxAuditLimit
	}

	builder := sq.Select(auditColumns...).
		From(auditTable).
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		PlaceholderFormat(ph)

	if filter.Kind != "" {
		builder = builder.Where(sq.Eq{"kind": string(filter.Kind)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
