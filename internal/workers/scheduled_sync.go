// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-whitelist-keeper/internal/config"
	"github.com/MKhiriev/go-whitelist-keeper/internal/logger"
	"github.com/MKhiriev/go-whitelist-keeper/internal/service"
	"github.com/MKhiriev/go-whitelist-keeper/models"
)

type scheduledSync struct {
	reconcile service.ReconcileService

	hour, minute int
	removeExtras bool

	now   func() time.Time
	after func(time.Duration) <-chan time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewScheduledSync creates a worker that triggers one scheduled
// reconciliation run per day at the configured local time. It returns nil
// when the schedule is disabled, which NewWorkers ignores.
func NewScheduledSync(reconcile service.ReconcileService, cfg config.Sync, logger *logger.Logger) Worker {
	if !cfg.ScheduleEnabled {
		return nil
	}

	hour, minute := cfg.At()
	return &scheduledSync{
		reconcile:    reconcile,
		hour:         hour,
		minute:       minute,
		removeExtras: cfg.RemoveExtras,
		now:          time.Now,
		after:        time.After,
		logger:       logger,
	}
}

// Start stops any previous loop and launches a new one. Each iteration
// sleeps until the next occurrence of hour:minute, so a long run or a clock
// change never causes a double trigger for the same day.
func (s *scheduledSync) Start(ctx context.Context) {
	s.Stop()

	s.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()

		for {
			next := service.NextDailyRun(s.now(), s.hour, s.minute)
			s.logger.Info().
				Str("func", "scheduledSync.Start").
				Time("next_run", next).
				Bool("remove_extras", s.removeExtras).
				Msg("scheduled sync armed")

			select {
			case <-jobCtx.Done():
				return
			case <-s.after(next.Sub(s.now())):
				s.runOnce(jobCtx)
			}
		}
	}()
}

func (s *scheduledSync) runOnce(ctx context.Context) {
	result, err := s.reconcile.RunScheduled(ctx)
	if err != nil {
		s.logger.Err(err).
			Str("func", "scheduledSync.runOnce").
			Str("run_id", result.RunID).
			Str("status", string(result.Status)).
			Msg("scheduled sync failed")
		return
	}

	event := s.logger.Info()
	if result.Status == models.RunStatusCompleted && result.Partial() {
		event = s.logger.Warn()
	}
	event.
		Str("func", "scheduledSync.runOnce").
		Str("run_id", result.RunID).
		Str("status", string(result.Status)).
		Int("added", result.Added).
		Int("removed", result.Removed).
		Int("failed", result.Failed()).
		Msg("scheduled sync finished")
}

func (s *scheduledSync) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}
