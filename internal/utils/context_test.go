// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "testKey", contextKey("testKey").String())
	assert.Equal(t, "actor", ActorCtxKey.String())
}

func TestGetActorFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		want   string
		wantOK bool
	}{
		{"present", context.WithValue(context.Background(), ActorCtxKey, "ops"), "ops", true},
		{"missing", context.Background(), "", false},
		{"empty", context.WithValue(context.Background(), ActorCtxKey, ""), "", false},
		{"wrong type", context.WithValue(context.Background(), ActorCtxKey, 42), "", false},
		{"plain string key", context.WithValue(context.Background(), "actor", "ops"), "", false}, //nolint:staticcheck
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := GetActorFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
