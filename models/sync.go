package models

import (
	"errors"
	"fmt"
	"time"
)

// MaxFailureSamples caps the number of per-item failure messages kept for
// each direction of a reconciliation run.
const MaxFailureSamples = 5

// RunStatus is the terminal state of a single reconciliation run.
type RunStatus string

const (
	// RunStatusCompleted means the plan was computed and applied. Individual
	// items may still have failed; see [ReconciliationResult.Partial].
	RunStatusCompleted RunStatus = "completed"

	// RunStatusSkipped means the remote integration is disabled and nothing
	// was read or written.
	RunStatusSkipped RunStatus = "skipped"

	// RunStatusFetchFailed means the remote whitelist could not be read and
	// the run was aborted before any mutation.
	RunStatusFetchFailed RunStatus = "fetch_failed"
)

// Trigger names what started a reconciliation run.
type Trigger string

const (
	TriggerScheduled Trigger = "scheduled"
	TriggerManual    Trigger = "manual"
)

// ReconciliationPlan is the set of remote mutations needed to make the
// remote whitelist match the local one. Both slices are sorted ascending.
type ReconciliationPlan struct {
	// ToAdd holds names present locally but missing remotely.
	ToAdd []string `json:"to_add"`

	// ToRemove holds names present remotely but missing locally. It is only
	// populated when RemoveExtras is set.
	ToRemove []string `json:"to_remove"`

	// RemoveExtras records the extras-removal flag the plan was built with.
	RemoveExtras bool `json:"remove_extras"`
}

// Empty reports whether the plan requires no remote calls.
func (p ReconciliationPlan) Empty() bool {
	return len(p.ToAdd) == 0 && len(p.ToRemove) == 0
}

// ReconciliationResult is the structured outcome of one run, returned to the
// caller for display and written to the audit log.
type ReconciliationResult struct {
	RunID   string    `json:"run_id"`
	Trigger Trigger   `json:"trigger"`
	Actor   string    `json:"actor,omitempty"`
	Status  RunStatus `json:"status"`

	RemoveExtras bool `json:"remove_extras"`

	// Added and Removed count successful remote calls.
	Added   int `json:"added"`
	Removed int `json:"removed"`

	// AddFailed and RemoveFailed count every failed remote call, while the
	// *Failures slices keep at most MaxFailureSamples messages each.
	AddFailed      int      `json:"add_failed"`
	RemoveFailed   int      `json:"remove_failed"`
	AddFailures    []string `json:"add_failures,omitempty"`
	RemoveFailures []string `json:"remove_failures,omitempty"`

	// BackupPath is the snapshot written after the run, if any.
	BackupPath string `json:"backup_path,omitempty"`

	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}

// RecordAddFailure counts a failed add and keeps a sample message while
// fewer than MaxFailureSamples have been collected.
func (r *ReconciliationResult) RecordAddFailure(name string, err error) {
	r.AddFailed++
	if len(r.AddFailures) < MaxFailureSamples {
		r.AddFailures = append(r.AddFailures, failureMessage(name, err))
	}
}

// RecordRemoveFailure is the remove-side counterpart of RecordAddFailure.
func (r *ReconciliationResult) RecordRemoveFailure(name string, err error) {
	r.RemoveFailed++
	if len(r.RemoveFailures) < MaxFailureSamples {
		r.RemoveFailures = append(r.RemoveFailures, failureMessage(name, err))
	}
}

// Failed returns the total number of failed remote calls.
func (r ReconciliationResult) Failed() int {
	return r.AddFailed + r.RemoveFailed
}

// Partial reports whether a completed run had at least one failed item.
func (r ReconciliationResult) Partial() bool {
	return r.Status == RunStatusCompleted && r.Failed() > 0
}

func failureMessage(name string, err error) string {
	if err == nil {
		return name
	}
	return fmt.Sprintf("%s: %v", name, err)
}

// ErrPartialApply reports a completed run in which some remote calls failed.
// It is informational: the successful items were still applied.
var ErrPartialApply = errors.New("reconciliation partially applied")

// Err returns ErrPartialApply, wrapped with the failure count, when the run
// completed with failed items, and nil otherwise.
func (r ReconciliationResult) Err() error {
	if !r.Partial() {
		return nil
	}
	return fmt.Errorf("%w: %d of %d remote calls failed", ErrPartialApply, r.Failed(), r.Failed()+r.Added+r.Removed)
}
