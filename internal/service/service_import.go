package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-whitelist-keeper/internal/adapter"
	"github.com/MKhiriev/go-whitelist-keeper/internal/config"
	"github.com/MKhiriev/go-whitelist-keeper/internal/logger"
	"github.com/MKhiriev/go-whitelist-keeper/internal/store"
	"github.com/MKhiriev/go-whitelist-keeper/models"
)

type importService struct {
	whitelist store.WhitelistStore
	remote    adapter.RemoteConsole
	backups   store.BackupStore
	audit     *auditTrail

	maxBytes         int64
	propagateNewOnly bool

	logger *logger.Logger
}

// NewImportService constructs the bulk import pipeline.
func NewImportService(
	whitelist store.WhitelistStore,
	remote adapter.RemoteConsole,
	backups store.BackupStore,
	auditRepo store.AuditRepository,
	cfg config.Import,
	logger *logger.Logger,
) ImportService {
	return &importService{
		whitelist:        whitelist,
		remote:           remote,
		backups:          backups,
		audit:            newAuditTrail(auditRepo, logger),
		maxBytes:         cfg.MaxBytes,
		propagateNewOnly: cfg.PropagateNewOnly,
		logger:           logger,
	}
}

func (s *importService) Parse(data []byte) []string {
	return parseNames(data)
}

func (s *importService) ApplyToStore(ctx context.Context, names []string) (added, alreadyPresent int, err error) {
	added, alreadyPresent, err = s.whitelist.AddMany(ctx, names)
	if err != nil {
		return 0, 0, fmt.Errorf("merging imported names: %w", err)
	}
	return added, alreadyPresent, nil
}

// Import rejects oversized input before parsing. Remote propagation is best
// effort: a failed add is counted as skipped and the local merge stands.
func (s *importService) Import(ctx context.Context, actor string, data []byte, applyRemote bool) (models.ImportResult, error) {
	log := logger.FromContext(ctx)

	if s.maxBytes > 0 && int64(len(data)) > s.maxBytes {
		log.Warn().Str("func", "importService.Import").Int("bytes", len(data)).Int64("max_bytes", s.maxBytes).Msg("import rejected")
		return models.ImportResult{}, fmt.Errorf("%w: %d bytes exceeds %d", ErrImportTooLarge, len(data), s.maxBytes)
	}

	names := s.Parse(data)
	if len(names) == 0 {
		return models.ImportResult{}, ErrNoValidNames
	}

	var before map[string]struct{}
	if applyRemote && s.propagateNewOnly {
		existing, err := s.whitelist.List(ctx)
		if err != nil {
			return models.ImportResult{}, fmt.Errorf("reading local whitelist: %w", err)
		}
		before = make(map[string]struct{}, len(existing))
		for _, name := range existing {
			before[name] = struct{}{}
		}
	}

	added, already, err := s.ApplyToStore(ctx, names)
	if err != nil {
		log.Err(err).Str("func", "importService.Import").Msg("store merge failed")
		return models.ImportResult{}, err
	}

	result := models.ImportResult{
		Parsed:         len(names),
		Added:          added,
		AlreadyPresent: already,
		ApplyRemote:    applyRemote,
	}

	if applyRemote {
		s.propagate(ctx, remoteTargets(names, before), &result)
	}

	path, err := s.backups.Snapshot(context.WithoutCancel(ctx))
	if err != nil {
		log.Warn().Err(err).Str("func", "importService.Import").Msg("backup snapshot failed")
	}
	result.BackupPath = path

	failed := 0
	if applyRemote && s.remote.Enabled() {
		failed = result.RemoteSkipped
	}

	s.audit.record(ctx, models.AuditEntry{
		Kind:   models.AuditImport,
		Actor:  actor,
		Status: importStatus(result),
		Added:  result.Added,
		Failed: failed,
		Detail: strings.Join(result.RemoteFailures, "; "),
	})

	log.Info().
		Str("func", "importService.Import").
		Str("actor", actor).
		Int("parsed", result.Parsed).
		Int("added", result.Added).
		Int("already_present", result.AlreadyPresent).
		Int("remote_applied", result.RemoteApplied).
		Int("remote_skipped", result.RemoteSkipped).
		Msg("import finished")
	return result, nil
}

// remoteTargets keeps names absent from before; a nil before keeps all.
func remoteTargets(names []string, before map[string]struct{}) []string {
	if before == nil {
		return names
	}
	targets := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := before[name]; !ok {
			targets = append(targets, name)
		}
	}
	return targets
}

func (s *importService) propagate(ctx context.Context, names []string, result *models.ImportResult) {
	if !s.remote.Enabled() {
		result.RemoteSkipped = len(names)
		return
	}

	for _, name := range names {
		if _, err := s.remote.WhitelistAdd(ctx, name); err != nil {
			result.RemoteSkipped++
			if len(result.RemoteFailures) < models.MaxFailureSamples {
				result.RemoteFailures = append(result.RemoteFailures, fmt.Sprintf("%s: %v", name, err))
			}
			continue
		}
		result.RemoteApplied++
	}
}

func importStatus(result models.ImportResult) string {
	switch {
	case !result.ApplyRemote:
		return "local_only"
	case result.RemoteSkipped > 0:
		return "partial"
	default:
		return "completed"
	}
}
