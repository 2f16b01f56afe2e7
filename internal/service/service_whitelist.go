// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-whitelist-keeper/internal/adapter"
	"github.com/MKhiriev/go-whitelist-keeper/internal/config"
	"github.com/MKhiriev/go-whitelist-keeper/internal/logger"
	"github.com/MKhiriev/go-whitelist-keeper/internal/store"
	"github.com/MKhiriev/go-whitelist-keeper/internal/validators"
	"github.com/MKhiriev/go-whitelist-keeper/models"
)

// whitelistService composes the store, the remote console and the engine
// behind the operations the admin API and the CLI expose.
type whitelistService struct {
	whitelist store.WhitelistStore
	remote    adapter.RemoteConsole
	reconcile ReconcileService
	imports   ImportService
	audit     *auditTrail
	validator validators.Validator

	sync config.Sync
	now  func() time.Time

	logger *logger.Logger
}

// NewWhitelistService wires the facade. reconcile and imports are usually
// built from the same store and remote console.
func NewWhitelistService(
	whitelist store.WhitelistStore,
	remote adapter.RemoteConsole,
	reconcile ReconcileService,
	imports ImportService,
	auditRepo store.AuditRepository,
	syncCfg config.Sync,
	logger *logger.Logger,
) WhitelistService {
	return &whitelistService{
		whitelist: whitelist,
		remote:    remote,
		reconcile: reconcile,
		imports:   imports,
		audit:     newAuditTrail(auditRepo, logger),
		validator: validators.NewWhitelistValidator(),
		sync:      syncCfg,
		now:       time.Now,
		logger:    logger,
	}
}

// AddName inserts name locally and, when that changed the set, mirrors it
// to the game server. A remote failure is reported in the result and does
// not undo the local change.
func (s *whitelistService) AddName(ctx context.Context, actor, name string) (models.NameChange, error) {
	name = strings.TrimSpace(name)
	if err := s.validator.Validate(ctx, name); err != nil {
		return models.NameChange{}, mapValidationError(err)
	}

	changed, err := s.whitelist.Add(ctx, name)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "whitelistService.AddName").Str("name", name).Msg("local add failed")
		return models.NameChange{}, fmt.Errorf("adding %q: %w", name, err)
	}

	change := models.NameChange{Name: name, Changed: changed}
	if !changed {
		return change, nil
	}

	s.propagate(ctx, &change, s.remote.WhitelistAdd)
	s.recordChange(ctx, models.AuditAdd, actor, change)
	return change, nil
}

// RemoveName is the removal counterpart of AddName.
func (s *whitelistService) RemoveName(ctx context.Context, actor, name string) (models.NameChange, error) {
	name = strings.TrimSpace(name)
	if err := s.validator.Validate(ctx, name); err != nil {
		return models.NameChange{}, mapValidationError(err)
	}

	changed, err := s.whitelist.Remove(ctx, name)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "whitelistService.RemoveName").Str("name", name).Msg("local remove failed")
		return models.NameChange{}, fmt.Errorf("removing %q: %w", name, err)
	}

	change := models.NameChange{Name: name, Changed: changed}
	if !changed {
		return change, nil
	}

	s.propagate(ctx, &change, s.remote.WhitelistRemove)
	s.recordChange(ctx, models.AuditRemove, actor, change)
	return change, nil
}

func (s *whitelistService) propagate(ctx context.Context, change *models.NameChange, call func(context.Context, string) (string, error)) {
	if !s.remote.Enabled() {
		return
	}

	change.RemoteAttempted = true
	reply, err := call(ctx, change.Name)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "whitelistService.propagate").Str("name", change.Name).Msg("remote propagation failed")
		change.RemoteError = err.Error()
		return
	}
	change.RemoteResponse = reply
}

func (s *whitelistService) recordChange(ctx context.Context, kind models.AuditKind, actor string, change models.NameChange) {
	entry := models.AuditEntry{Kind: kind, Actor: actor, Status: "local_only", Detail: change.Name}
	if kind == models.AuditAdd {
		entry.Added = 1
	} else {
		entry.Removed = 1
	}

	switch {
	case change.RemoteError != "":
		entry.Status = "remote_failed"
		entry.Failed = 1
		entry.Detail = change.Name + ": " + change.RemoteError
	case change.RemoteAttempted:
		entry.Status = "completed"
	}

	s.audit.record(ctx, entry)
}

func (s *whitelistService) List(ctx context.Context) ([]string, error) {
	return s.whitelist.List(ctx)
}

func (s *whitelistService) RemoteList(ctx context.Context) ([]string, error) {
	if !s.remote.Enabled() {
		return nil, ErrRemoteUnavailable
	}
	return fetchRemoteNames(ctx, s.remote)
}

func (s *whitelistService) PreviewDiff(ctx context.Context, removeExtras *bool) (models.ReconciliationPlan, error) {
	return s.reconcile.PreviewDiff(ctx, s.removeExtras(removeExtras))
}

func (s *whitelistService) Sync(ctx context.Context, actor string, removeExtras *bool) (models.ReconciliationResult, error) {
	if strings.TrimSpace(actor) == "" {
		return models.ReconciliationResult{}, fmt.Errorf("%w: missing actor", ErrInvalidCredentials)
	}
	return s.reconcile.RunManual(ctx, actor, s.removeExtras(removeExtras))
}

func (s *whitelistService) removeExtras(override *bool) bool {
	if override != nil {
		return *override
	}
	return s.sync.RemoveExtras
}

func (s *whitelistService) ImportBulk(ctx context.Context, actor string, data []byte, applyRemote bool) (models.ImportResult, error) {
	return s.imports.Import(ctx, actor, data, applyRemote)
}

// ExportAll renders the local whitelist. JSON matches the store file byte
// for byte; CSV has one name per line and no header.
func (s *whitelistService) ExportAll(ctx context.Context, format models.ExportFormat) (models.Export, error) {
	if err := s.validator.Validate(ctx, format); err != nil {
		return models.Export{}, mapValidationError(err)
	}

	names, err := s.whitelist.List(ctx)
	if err != nil {
		return models.Export{}, err
	}

	export := models.Export{Format: format, FileName: "whitelist." + string(format)}
	switch format {
	case models.ExportCSV:
		export.ContentType = "text/csv; charset=utf-8"
		export.Content, err = encodeCSV(names)
	default:
		export.ContentType = "application/json"
		export.Content, err = encodeJSON(names)
	}
	if err != nil {
		return models.Export{}, fmt.Errorf("rendering %s export: %w", format, err)
	}
	return export, nil
}

func encodeJSON(names []string) ([]byte, error) {
	if names == nil {
		names = []string{}
	}
	data, err := json.MarshalIndent(names, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func encodeCSV(names []string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for _, name := range names {
		if err := w.Write([]string{name}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// Status never fails because of the remote side: an unreachable server only
// leaves RemoteCount unset.
func (s *whitelistService) Status(ctx context.Context) (models.Status, error) {
	names, err := s.whitelist.List(ctx)
	if err != nil {
		return models.Status{}, err
	}

	status := models.Status{
		RemoteEnabled:   s.remote.Enabled(),
		ScheduleEnabled: s.sync.ScheduleEnabled,
		LocalCount:      len(names),
		LastRun:         s.reconcile.LastRun(),
	}

	if s.sync.ScheduleEnabled {
		hour, minute := s.sync.At()
		next := NextDailyRun(s.now(), hour, minute)
		status.NextScheduledRun = &next
	}

	if status.RemoteEnabled {
		remote, err := fetchRemoteNames(ctx, s.remote)
		if err != nil {
			logger.FromContext(ctx).Warn().Err(err).Str("func", "whitelistService.Status").Msg("remote count unknown")
		} else {
			count := len(remote)
			status.RemoteCount = &count
		}
	}

	return status, nil
}

func (s *whitelistService) Audit(ctx context.Context, limit int) ([]models.AuditEntry, error) {
	entries, err := s.audit.recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("reading audit log: %w", err)
	}
	return entries, nil
}
