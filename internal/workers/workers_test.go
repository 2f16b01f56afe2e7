// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
)

// mockWorker is a test implementation of the Worker interface
// that tracks Start and Stop calls.
type mockWorker struct {
	id     int
	events *[]string
	starts int
	stops  int
}

func (m *mockWorker) Start(context.Context) {
	m.starts++
	if m.events != nil {
		*m.events = append(*m.events, "start", string(rune('0'+m.id)))
	}
}

func (m *mockWorker) Stop() {
	m.stops++
	if m.events != nil {
		*m.events = append(*m.events, "stop", string(rune('0'+m.id)))
	}
}

func TestWorkers_Start_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Start(context.Background())

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.starts != 1 {
			t.Errorf("worker[%d]: expected starts=1, got %d", i, w.starts)
		}
	}
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Start(context.Background())
	ws.Stop()
}

func TestWorkers_NilEntriesDropped(t *testing.T) {
	w := &mockWorker{}
	ws := NewWorkers(nil, w, nil)

	if len(ws.workers) != 1 {
		t.Fatalf("expected 1 worker, got %d", len(ws.workers))
	}
	ws.Start(context.Background())
	ws.Stop()

	if w.starts != 1 || w.stops != 1 {
		t.Errorf("expected one start and one stop, got %d/%d", w.starts, w.stops)
	}
}

func TestWorkers_StopReverseOrder(t *testing.T) {
	events := []string{}

	ws := NewWorkers(
		&mockWorker{id: 1, events: &events},
		&mockWorker{id: 2, events: &events},
	)
	ws.Start(context.Background())
	ws.Stop()

	expected := []string{"start", "1", "start", "2", "stop", "2", "stop", "1"}
	if len(events) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, events)
	}
	for i, v := range expected {
		if events[i] != v {
			t.Errorf("expected events[%d]=%s, got %s", i, v, events[i])
		}
	}
}
