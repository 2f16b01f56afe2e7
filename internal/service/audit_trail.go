package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-whitelist-keeper/internal/logger"
	"github.com/MKhiriev/go-whitelist-keeper/internal/store"
	"github.com/MKhiriev/go-whitelist-keeper/models"
)

// auditTrail writes audit entries on the advisory path: a failed write is
// logged and dropped, never returned to the operation that produced it.
type auditTrail struct {
	repo   store.AuditRepository
	logger *logger.Logger
}

func newAuditTrail(repo store.AuditRepository, log *logger.Logger) *auditTrail {
	if repo == nil {
		repo = store.NewNopAuditRepository()
	}
	return &auditTrail{repo: repo, logger: log}
}

func (a *auditTrail) record(ctx context.Context, entry models.AuditEntry) {
	// the caller's context may already be cancelled once a run finishes
	if _, err := a.repo.Record(context.WithoutCancel(ctx), entry); err != nil {
		a.logger.Warn().
			Err(err).
			Str("func", "auditTrail.record").
			Str("kind", string(entry.Kind)).
			Str("run_id", entry.RunID).
			Msg("audit entry dropped")
	}
}

func (a *auditTrail) recordRun(ctx context.Context, result models.ReconciliationResult) {
	kind := models.AuditSyncScheduled
	if result.Trigger == models.TriggerManual {
		kind = models.AuditSyncManual
	}

	samples := make([]string, 0, len(result.AddFailures)+len(result.RemoveFailures))
	samples = append(samples, result.AddFailures...)
	samples = append(samples, result.RemoveFailures...)

	a.record(ctx, models.AuditEntry{
		Kind:    kind,
		Actor:   result.Actor,
		RunID:   result.RunID,
		Status:  string(result.Status),
		Added:   result.Added,
		Removed: result.Removed,
		Failed:  result.Failed(),
		Detail:  strings.Join(samples, "; "),
	})
}

func (a *auditTrail) recent(ctx context.Context, limit int) ([]models.AuditEntry, error) {
	filter := models.AuditFilter{}
	if limit > 0 {
		filter.Limit = uint64(limit)
	}
	return a.repo.Recent(ctx, filter)
}
