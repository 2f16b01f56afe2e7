// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-whitelist-keeper/models"
)

func Test_buildInsertAuditQuery(t *testing.T) {
	now := time.Date(2026, 10, 19, 3, 0, 0, 0, time.UTC)
	entry := models.AuditEntry{
		Kind:      models.AuditSyncManual,
		Actor:     "admin",
		RunID:     "run-1",
		Status:    "completed",
		Added:     2,
		Removed:   1,
		Failed:    0,
		Detail:    "ok",
		CreatedAt: now,
	}

	tests := []struct {
		name        string
		ph          sq.PlaceholderFormat
		placeholder string
	}{
		{name: "postgres", ph: sq.Dollar, placeholder: "$9"},
		{name: "sqlite", ph: sq.Question, placeholder: "?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildInsertAuditQuery(tt.ph, entry)
			require.NoError(t, err)

			q := strings.ToLower(query)
			assert.True(t, strings.HasPrefix(q, "insert into audit_log"))
			assert.Contains(t, q, "returning id")
			assert.Contains(t, query, tt.placeholder)
			assert.NotContains(t, q, "(id,")

			require.Len(t, args, 9)
			assert.Equal(t, "sync_manual", args[0])
			assert.Equal(t, "admin", args[1])
			assert.Equal(t, now, args[8])
		})
	}
}

func Test_buildSelectAuditQuery(t *testing.T) {
	tests := []struct {
		name      string
		filter    models.AuditFilter
		wantLimit string
		wantArgs  []any
	}{
		{name: "default limit", filter: models.AuditFilter{}, wantLimit: "LIMIT 50"},
		{name: "explicit limit", filter: models.AuditFilter{Limit: 5}, wantLimit: "LIMIT 5"},
		{name: "capped limit", filter: models.AuditFilter{Limit: 10000}, wantLimit: "LIMIT 500"},
		{
			name:      "kind filter",
			filter:    models.AuditFilter{Limit: 10, Kind: models.AuditImport},
			wantLimit: "LIMIT 10",
			wantArgs:  []any{"import"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectAuditQuery(sq.Dollar, tt.filter)
			require.NoError(t, err)

			assert.Contains(t, query, "FROM audit_log")
			assert.Contains(t, query, "ORDER BY created_at DESC, id DESC")
			assert.Contains(t, query, tt.wantLimit)
			for _, c := range auditColumns {
				assert.Contains(t, query, c)
			}

			if tt.wantArgs == nil {
				assert.Empty(t, args)
				assert.NotContains(t, query, "WHERE")
				return
			}
			assert.Equal(t, tt.wantArgs, args)
			assert.Contains(t, query, "WHERE kind = $1")
		})
	}
}
