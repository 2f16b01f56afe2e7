// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-whitelist-keeper/internal/adapter"
	"github.com/MKhiriev/go-whitelist-keeper/internal/config"
	"github.com/MKhiriev/go-whitelist-keeper/internal/logger"
	"github.com/MKhiriev/go-whitelist-keeper/internal/store"
	"github.com/MKhiriev/go-whitelist-keeper/internal/utils"
	"github.com/MKhiriev/go-whitelist-keeper/models"
)

// idGenerator issues run ids.
type idGenerator interface {
	Generate() string
}

// reconcileService is the reconciliation engine. A run moves through
// Fetching and then either Skipped, FetchFailed or Applying followed by
// Completed. mu serialises runs, including the cooldown check and update of
// manual ones.
type reconcileService struct {
	remote    adapter.RemoteConsole
	whitelist store.WhitelistStore
	backups   store.BackupStore
	audit     *auditTrail

	removeExtras bool
	cooldown     *cooldownTracker

	ids idGenerator
	now func() time.Time

	mu sync.Mutex

	lastMu  sync.RWMutex
	lastRun *models.ReconciliationResult

	logger *logger.Logger
}

// NewReconcileService constructs the engine. cfg supplies the scheduled
// extras-removal policy and the manual-run cooldown window.
func NewReconcileService(
	remote adapter.RemoteConsole,
	whitelist store.WhitelistStore,
	backups store.BackupStore,
	auditRepo store.AuditRepository,
	cfg config.Sync,
	logger *logger.Logger,
) ReconcileService {
	return &reconcileService{
		remote:       remote,
		whitelist:    whitelist,
		backups:      backups,
		audit:        newAuditTrail(auditRepo, logger),
		removeExtras: cfg.RemoveExtras,
		cooldown:     newCooldownTracker(cfg.CooldownWindow()),
		ids:          utils.NewUUIDGenerator(),
		now:          time.Now,
		logger:       logger,
	}
}

func (r *reconcileService) Diff(local, remote []string, removeExtras bool) models.ReconciliationPlan {
	plan := models.ReconciliationPlan{
		ToAdd:        difference(local, remote),
		ToRemove:     []string{},
		RemoveExtras: removeExtras,
	}
	if removeExtras {
		plan.ToRemove = difference(remote, local)
	}
	return plan
}

// difference returns the sorted, de-duplicated names of a that are not in b.
func difference(a, b []string) []string {
	exclude := make(map[string]struct{}, len(b))
	for _, name := range b {
		exclude[name] = struct{}{}
	}

	out := make([]string, 0, len(a))
	for _, name := range a {
		if _, ok := exclude[name]; !ok {
			out = append(out, name)
		}
	}

	slices.Sort(out)
	return slices.Compact(out)
}

func (r *reconcileService) Apply(ctx context.Context, plan models.ReconciliationPlan) models.ReconciliationResult {
	result := models.ReconciliationResult{RemoveExtras: plan.RemoveExtras}
	r.apply(ctx, plan, &result)
	return result
}

func (r *reconcileService) apply(ctx context.Context, plan models.ReconciliationPlan, result *models.ReconciliationResult) {
	log := logger.FromContext(ctx)

	for _, name := range plan.ToAdd {
		if _, err := r.remote.WhitelistAdd(ctx, name); err != nil {
			log.Warn().Err(err).Str("func", "reconcileService.apply").Str("name", name).Msg("remote add failed")
			result.RecordAddFailure(name, err)
			continue
		}
		result.Added++
	}

	for _, name := range plan.ToRemove {
		if _, err := r.remote.WhitelistRemove(ctx, name); err != nil {
			log.Warn().Err(err).Str("func", "reconcileService.apply").Str("name", name).Msg("remote remove failed")
			result.RecordRemoveFailure(name, err)
			continue
		}
		result.Removed++
	}
}

func (r *reconcileService) RunScheduled(ctx context.Context) (models.ReconciliationResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.run(ctx, models.TriggerScheduled, "", r.removeExtras)
}

func (r *reconcileService) RunManual(ctx context.Context, actor string, removeExtras bool) (models.ReconciliationResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if left := r.cooldown.remaining(actor, r.now()); left > 0 {
		return models.ReconciliationResult{}, &CooldownError{RemainingSeconds: left}
	}

	result, err := r.run(ctx, models.TriggerManual, actor, removeExtras)
	if err != nil {
		return result, err
	}

	if result.Status == models.RunStatusSkipped {
		return result, ErrRemoteUnavailable
	}

	r.cooldown.mark(actor, result.FinishedAt)
	return result, nil
}

// run executes one reconciliation. The caller holds r.mu.
func (r *reconcileService) run(ctx context.Context, trigger models.Trigger, actor string, removeExtras bool) (models.ReconciliationResult, error) {
	log := logger.FromContext(ctx)

	result := models.ReconciliationResult{
		RunID:        r.ids.Generate(),
		Trigger:      trigger,
		Actor:        actor,
		RemoveExtras: removeExtras,
		StartedAt:    r.now(),
	}

	if !r.remote.Enabled() {
		result.Status = models.RunStatusSkipped
		r.finish(ctx, &result)
		log.Info().Str("func", "reconcileService.run").Str("run_id", result.RunID).Msg("remote disabled, run skipped")
		return result, nil
	}

	local, err := r.whitelist.List(ctx)
	if err != nil {
		log.Err(err).Str("func", "reconcileService.run").Str("run_id", result.RunID).Msg("reading local whitelist failed")
		return models.ReconciliationResult{}, fmt.Errorf("reading local whitelist: %w", err)
	}

	remote, err := fetchRemoteNames(ctx, r.remote)
	if err != nil {
		result.Status = models.RunStatusFetchFailed
		r.finish(ctx, &result)
		log.Err(err).Str("func", "reconcileService.run").Str("run_id", result.RunID).Msg("fetching remote whitelist failed")
		return result, fmt.Errorf("%w: %w", ErrRemoteFetch, err)
	}

	plan := r.Diff(local, remote, removeExtras)
	r.apply(ctx, plan, &result)
	result.Status = models.RunStatusCompleted

	// advisory: a failed snapshot never fails the run
	path, err := r.backups.Snapshot(context.WithoutCancel(ctx))
	if err != nil {
		log.Warn().Err(err).Str("func", "reconcileService.run").Str("run_id", result.RunID).Msg("backup snapshot failed")
	}
	result.BackupPath = path

	r.finish(ctx, &result)

	log.Info().
		Str("func", "reconcileService.run").
		Str("run_id", result.RunID).
		Str("trigger", string(trigger)).
		Int("added", result.Added).
		Int("removed", result.Removed).
		Int("failed", result.Failed()).
		Msg("reconciliation completed")
	return result, nil
}

func (r *reconcileService) finish(ctx context.Context, result *models.ReconciliationResult) {
	result.FinishedAt = r.now()

	stored := *result
	r.lastMu.Lock()
	r.lastRun = &stored
	r.lastMu.Unlock()

	r.audit.recordRun(ctx, *result)
}

func (r *reconcileService) PreviewDiff(ctx context.Context, removeExtras bool) (models.ReconciliationPlan, error) {
	if !r.remote.Enabled() {
		return models.ReconciliationPlan{}, ErrRemoteUnavailable
	}

	local, err := r.whitelist.List(ctx)
	if err != nil {
		return models.ReconciliationPlan{}, fmt.Errorf("reading local whitelist: %w", err)
	}

	remote, err := fetchRemoteNames(ctx, r.remote)
	if err != nil {
		return models.ReconciliationPlan{}, fmt.Errorf("%w: %w", ErrRemoteFetch, err)
	}

	return r.Diff(local, remote, removeExtras), nil
}

func (r *reconcileService) LastRun() *models.ReconciliationResult {
	r.lastMu.RLock()
	defer r.lastMu.RUnlock()

	if r.lastRun == nil {
		return nil
	}
	last := *r.lastRun
	return &last
}
