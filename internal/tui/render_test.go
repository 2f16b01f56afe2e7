package tui

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-whitelist-keeper/models"
	"github.com/stretchr/testify/assert"
)

func TestRenderNames(t *testing.T) {
	out := RenderNames("Local whitelist", []string{"Alice", "Bob"})

	assert.Contains(t, out, "Local whitelist (2)")
	assert.Contains(t, out, "• Alice")
	assert.Contains(t, out, "• Bob")
}

func TestRenderNames_Empty(t *testing.T) {
	assert.Contains(t, RenderNames("Local whitelist", nil), "(none)")
}

func TestRenderChange(t *testing.T) {
	tests := []struct {
		name   string
		change models.NameChange
		want   []string
	}{
		{
			name:   "changed with remote reply",
			change: models.NameChange{Name: "Alice", Changed: true, RemoteAttempted: true, RemoteResponse: "Added Alice"},
			want:   []string{"added Alice", "game server: Added Alice"},
		},
		{
			name:   "unchanged",
			change: models.NameChange{Name: "Alice"},
			want:   []string{"Alice: nothing to do"},
		},
		{
			name:   "remote failure",
			change: models.NameChange{Name: "Alice", Changed: true, RemoteAttempted: true, RemoteError: "connection refused"},
			want:   []string{"game server: connection refused"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderChange("added", tt.change)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestRenderPlan(t *testing.T) {
	t.Run("keeps extras", func(t *testing.T) {
		out := RenderPlan(models.ReconciliationPlan{ToAdd: []string{"Dave"}, ToRemove: []string{"Eve"}})

		assert.Contains(t, out, "to add (1)")
		assert.Contains(t, out, "names only on the game server are kept")
		assert.NotContains(t, out, "Eve")
	})

	t.Run("removes extras", func(t *testing.T) {
		out := RenderPlan(models.ReconciliationPlan{ToRemove: []string{"Eve"}, RemoveExtras: true})

		assert.Contains(t, out, "to remove (1)")
		assert.Contains(t, out, "Eve")
	})

	t.Run("empty", func(t *testing.T) {
		assert.Contains(t, RenderPlan(models.ReconciliationPlan{}), "already in sync")
	})

	t.Run("long list is elided", func(t *testing.T) {
		names := make([]string, planPreviewLimit+5)
		for i := range names {
			names[i] = fmt.Sprintf("Player%02d", i)
		}

		out := RenderPlan(models.ReconciliationPlan{ToAdd: names})

		assert.Contains(t, out, "and 5 more")
		assert.NotContains(t, out, names[planPreviewLimit])
	})
}

func TestRenderResult(t *testing.T) {
	start := time.Date(2026, 10, 19, 3, 0, 0, 0, time.UTC)
	result := models.ReconciliationResult{
		RunID:      "run-7",
		Trigger:    models.Trigger("manual"),
		Status:     models.RunStatusCompleted,
		Added:      2,
		StartedAt:  start,
		FinishedAt: start.Add(1500 * time.Millisecond),
		BackupPath: "/var/backups/whitelist-1.json",
	}
	result.RecordRemoveFailure("Eve", errors.New("timeout"))

	out := RenderResult(result)

	assert.Contains(t, out, "run-7")
	assert.Contains(t, out, "completed with failures")
	assert.Contains(t, out, "Eve: timeout")
	assert.Contains(t, out, "/var/backups/whitelist-1.json")
	assert.Contains(t, out, "1.5s")
}

func TestRenderImport(t *testing.T) {
	out := RenderImport(models.ImportResult{Parsed: 3, Added: 2, AlreadyPresent: 1})

	assert.Contains(t, out, "parsed:           3")
	assert.Contains(t, out, "already present:  1")
	assert.NotContains(t, out, "remote applied")
}

func TestRenderStatus_Unknowns(t *testing.T) {
	out := RenderStatus(models.Status{LocalCount: 2}, time.UTC)

	assert.Contains(t, out, "remote names:    unknown")
	assert.Contains(t, out, "next sync:       not scheduled")
	assert.NotContains(t, out, "last sync")
}

func TestRenderAudit(t *testing.T) {
	entries := []models.AuditEntry{{
		Kind:      models.AuditKind("remove"),
		Actor:     "operations-team",
		Status:    "completed",
		Removed:   1,
		Detail:    "Bob",
		CreatedAt: time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC),
	}}

	out := RenderAudit(entries, time.UTC)

	assert.Contains(t, out, "2026-10-19 09:30:00")
	assert.Contains(t, out, "opera...")
	assert.Contains(t, out, "Bob")
}

func TestRenderBuildInfo(t *testing.T) {
	out := RenderBuildInfo(models.BuildInfoResponse{Version: "v1"}, models.BuildInfoResponse{})

	assert.Contains(t, out, "wlctl       v1 (N/A, N/A)")
	assert.Contains(t, out, "whitelistd  N/A")
}

func TestRenderError(t *testing.T) {
	out := RenderError("whitelistd is unreachable")

	assert.True(t, strings.HasSuffix(out, "whitelistd is unreachable\n"))
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 8))
	assert.Equal(t, "abcde...", fitText("abcdefghijk", 8))
	assert.Equal(t, "ab", fitText("abcdef", 2))
	assert.Equal(t, "abcdef", fitText("abcdef", 0))
}
