package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-whitelist-keeper/internal/config"
	"github.com/MKhiriev/go-whitelist-keeper/internal/logger"
	"github.com/MKhiriev/go-whitelist-keeper/internal/mock"
	"github.com/MKhiriev/go-whitelist-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// manualTimer hands out one channel per after() call and records the
// requested delays.
type manualTimer struct {
	delays chan time.Duration
	fire   chan time.Time
}

func newManualTimer() *manualTimer {
	return &manualTimer{delays: make(chan time.Duration, 8), fire: make(chan time.Time)}
}

func (m *manualTimer) after(d time.Duration) <-chan time.Time {
	m.delays <- d
	return m.fire
}

func (m *manualTimer) nextDelay(t *testing.T) time.Duration {
	t.Helper()
	select {
	case d := <-m.delays:
		return d
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not arm a timer")
		return 0
	}
}

func intPtr(v int) *int { return &v }

func newTestScheduledSync(t *testing.T, reconcile *mock.MockReconcileService, now time.Time) (*scheduledSync, *manualTimer) {
	t.Helper()

	w := NewScheduledSync(reconcile, config.Sync{ScheduleEnabled: true, Hour: intPtr(3), Minute: intPtr(30)}, logger.Nop())
	require.NotNil(t, w)

	s := w.(*scheduledSync)
	timer := newManualTimer()
	s.now = func() time.Time { return now }
	s.after = timer.after
	return s, timer
}

func TestNewScheduledSync_DisabledReturnsNil(t *testing.T) {
	ctrl := gomock.NewController(t)

	w := NewScheduledSync(mock.NewMockReconcileService(ctrl), config.Sync{}, logger.Nop())

	assert.Nil(t, w)
}

func TestScheduledSync_WaitsUntilConfiguredTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	reconcile := mock.NewMockReconcileService(ctrl)
	now := time.Date(2026, 10, 19, 1, 0, 0, 0, time.UTC)

	s, timer := newTestScheduledSync(t, reconcile, now)
	s.Start(context.Background())
	defer s.Stop()

	assert.Equal(t, 2*time.Hour+30*time.Minute, timer.nextDelay(t))
}

func TestScheduledSync_TriggersRunAndRearms(t *testing.T) {
	ctrl := gomock.NewController(t)
	reconcile := mock.NewMockReconcileService(ctrl)
	now := time.Date(2026, 10, 19, 4, 0, 0, 0, time.UTC)

	ran := make(chan struct{}, 2)
	reconcile.EXPECT().RunScheduled(gomock.Any()).
		DoAndReturn(func(context.Context) (models.ReconciliationResult, error) {
			ran <- struct{}{}
			return models.ReconciliationResult{RunID: "r1", Status: models.RunStatusCompleted, Added: 1}, nil
		})
	reconcile.EXPECT().RunScheduled(gomock.Any()).
		DoAndReturn(func(context.Context) (models.ReconciliationResult, error) {
			ran <- struct{}{}
			return models.ReconciliationResult{RunID: "r2", Status: models.RunStatusFetchFailed}, errors.New("remote down")
		})

	s, timer := newTestScheduledSync(t, reconcile, now)
	s.Start(context.Background())
	defer s.Stop()

	// 04:00 is past 03:30, so the first run is tomorrow.
	assert.Equal(t, 23*time.Hour+30*time.Minute, timer.nextDelay(t))

	for range 2 {
		timer.fire <- now
		select {
		case <-ran:
		case <-time.After(2 * time.Second):
			t.Fatal("scheduled run was not triggered")
		}
		timer.nextDelay(t)
	}
}

func TestScheduledSync_StopCancelsLoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	reconcile := mock.NewMockReconcileService(ctrl)

	s, timer := newTestScheduledSync(t, reconcile, time.Date(2026, 10, 19, 1, 0, 0, 0, time.UTC))
	s.Start(context.Background())
	timer.nextDelay(t)

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}

	// Stop on a stopped worker is a no-op.
	s.Stop()
}

func TestScheduledSync_ContextCancelStopsLoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	reconcile := mock.NewMockReconcileService(ctrl)

	s, timer := newTestScheduledSync(t, reconcile, time.Date(2026, 10, 19, 1, 0, 0, 0, time.UTC))
	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	timer.nextDelay(t)

	cancel()
	s.wg.Wait()
}
