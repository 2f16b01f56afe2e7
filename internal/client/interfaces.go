// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-whitelist-keeper/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the subcommand in args and blocks until it finishes.
	Run(ctx context.Context, args []string) error
}

// Prompter is the interactive side of the terminal.
type Prompter interface {
	// Confirm shows body and asks whether to proceed.
	Confirm(title, body string) (bool, error)

	// Credentials asks for the operator name and admin password. actor
	// prefills the operator name.
	Credentials(actor string) (models.TokenRequest, error)

	// NewPassword asks for a password twice and returns it once both
	// entries match.
	NewPassword() (string, error)

	// Spin runs work while showing label.
	Spin(ctx context.Context, label string, work func(ctx context.Context) error) error
}

// TokenStore persists the bearer token between wlctl invocations.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Delete() error
}
