// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the outbound transports of the whitelist keeper.
//
// [RemoteConsole] speaks the Source RCON protocol to the game server and is
// used by the service layer. [ServerAdapter] is the resty-based HTTP client
// wlctl uses to drive whitelistd.
//
// Error values defined in errors.go let callers use [errors.Is] for
// transport-agnostic handling (e.g. [ErrRemoteAuth] for a rejected RCON
// password, [ErrUnauthorized] for a 401 from the admin API).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-whitelist-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RemoteConsole is the game server's remote administration channel.
//
// Every call opens a fresh connection, authenticates, runs exactly one
// command and closes the connection. Calls are never retried internally.
type RemoteConsole interface {
	// Enabled reports whether the integration is switched on and has a
	// password. When it returns false every other method fails with
	// [ErrRemoteUnavailable].
	Enabled() bool

	// SendCommand runs text and returns the server's (possibly empty)
	// reply.
	SendCommand(ctx context.Context, text string) (string, error)

	// WhitelistAdd runs "whitelist add <name>".
	WhitelistAdd(ctx context.Context, name string) (string, error)

	// WhitelistRemove runs "whitelist remove <name>".
	WhitelistRemove(ctx context.Context, name string) (string, error)

	// WhitelistList runs "whitelist list" and parses the reply into names.
	// A reply that does not follow the usual format yields an empty or
	// partial list, never an error.
	WhitelistList(ctx context.Context) ([]string, error)
}

// ServerAdapter is wlctl's view of the whitelistd HTTP API. Implementations
// attach the stored bearer token to every authenticated request and map
// error statuses to the sentinels in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token for subsequent requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "".
	Token() string

	// Login exchanges operator credentials for a token and stores it.
	Login(ctx context.Context, req models.TokenRequest) (models.TokenResponse, error)

	List(ctx context.Context) ([]string, error)
	Add(ctx context.Context, name string) (models.NameChange, error)
	Remove(ctx context.Context, name string) (models.NameChange, error)
	RemoteList(ctx context.Context) (models.RemoteListResponse, error)

	// Diff previews the reconciliation plan without applying it. A nil
	// removeExtras defers to the server's configured default.
	Diff(ctx context.Context, removeExtras *bool) (models.ReconciliationPlan, error)

	// Sync triggers a manual reconciliation run. A cooldown rejection is
	// returned as a *TooManyRequestsError.
	Sync(ctx context.Context, removeExtras *bool) (models.ReconciliationResult, error)

	// Import uploads a file of names for bulk import.
	Import(ctx context.Context, fileName string, data []byte, applyRemote bool) (models.ImportResult, error)

	// Export downloads the whitelist rendered in format.
	Export(ctx context.Context, format models.ExportFormat) ([]byte, error)

	Status(ctx context.Context) (models.Status, error)
	Audit(ctx context.Context, limit int) ([]models.AuditEntry, error)
	Version(ctx context.Context) (models.BuildInfoResponse, error)
}
