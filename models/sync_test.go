package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconciliationResult_RecordFailures_CapsSamples(t *testing.T) {
	var r ReconciliationResult

	for i := range MaxFailureSamples + 3 {
		r.RecordAddFailure(fmt.Sprintf("Name%d", i), errors.New("boom"))
	}
	r.RecordRemoveFailure("Gone", nil)

	assert.Equal(t, MaxFailureSamples+3, r.AddFailed)
	assert.Len(t, r.AddFailures, MaxFailureSamples)
	assert.Equal(t, "Name0: boom", r.AddFailures[0])
	assert.Equal(t, []string{"Gone"}, r.RemoveFailures)
	assert.Equal(t, MaxFailureSamples+4, r.Failed())
}

func TestReconciliationResult_Err(t *testing.T) {
	r := ReconciliationResult{Status: RunStatusCompleted, Added: 2}
	assert.NoError(t, r.Err())
	assert.False(t, r.Partial())

	r.RecordAddFailure("Steve", errors.New("timeout"))
	require.True(t, r.Partial())
	err := r.Err()
	assert.ErrorIs(t, err, ErrPartialApply)
	assert.Contains(t, err.Error(), "1 of 3")

	fetchFailed := ReconciliationResult{Status: RunStatusFetchFailed, AddFailed: 1}
	assert.False(t, fetchFailed.Partial())
	assert.NoError(t, fetchFailed.Err())
}

func TestReconciliationPlan_Empty(t *testing.T) {
	assert.True(t, ReconciliationPlan{}.Empty())
	assert.True(t, ReconciliationPlan{ToAdd: []string{}, ToRemove: []string{}}.Empty())
	assert.False(t, ReconciliationPlan{ToRemove: []string{"A"}}.Empty())
}
