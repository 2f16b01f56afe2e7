package service

import (
	"context"

	"github.com/MKhiriev/go-whitelist-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ReconcileService brings the game server's whitelist in line with the local
// one. Runs are serialised: a scheduled and a manual run never overlap.
type ReconcileService interface {
	// Diff computes the plan that makes remote match local. It is pure.
	Diff(local, remote []string, removeExtras bool) models.ReconciliationPlan

	// Apply executes plan through the remote console, adds first, one call
	// per name. Per-item failures are counted in the result and never stop
	// the run.
	Apply(ctx context.Context, plan models.ReconciliationPlan) models.ReconciliationResult

	// RunScheduled performs a full run with the configured extras-removal
	// flag.
	RunScheduled(ctx context.Context) (models.ReconciliationResult, error)

	// RunManual performs a full run on behalf of actor, subject to the
	// per-actor cooldown.
	RunManual(ctx context.Context, actor string, removeExtras bool) (models.ReconciliationResult, error)

	// PreviewDiff fetches both sides and returns the plan without applying
	// it.
	PreviewDiff(ctx context.Context, removeExtras bool) (models.ReconciliationPlan, error)

	// LastRun returns a copy of the most recent run result, or nil.
	LastRun() *models.ReconciliationResult
}

// ImportService turns untrusted text or CSV uploads into whitelist entries.
type ImportService interface {
	// Parse extracts valid, de-duplicated names in first-seen order.
	Parse(data []byte) []string

	// ApplyToStore merges names into the local whitelist.
	ApplyToStore(ctx context.Context, names []string) (added, alreadyPresent int, err error)

	// Import runs the whole pipeline: size guard, parse, merge, optional
	// remote propagation and backup.
	Import(ctx context.Context, actor string, data []byte, applyRemote bool) (models.ImportResult, error)
}

// WhitelistService is the single entry point both front-ends use.
type WhitelistService interface {
	AddName(ctx context.Context, actor, name string) (models.NameChange, error)
	RemoveName(ctx context.Context, actor, name string) (models.NameChange, error)
	List(ctx context.Context) ([]string, error)
	RemoteList(ctx context.Context) ([]string, error)

	// PreviewDiff and Sync use the configured extras-removal flag when
	// removeExtras is nil.
	PreviewDiff(ctx context.Context, removeExtras *bool) (models.ReconciliationPlan, error)
	Sync(ctx context.Context, actor string, removeExtras *bool) (models.ReconciliationResult, error)

	ImportBulk(ctx context.Context, actor string, data []byte, applyRemote bool) (models.ImportResult, error)
	ExportAll(ctx context.Context, format models.ExportFormat) (models.Export, error)
	Status(ctx context.Context) (models.Status, error)
	Audit(ctx context.Context, limit int) ([]models.AuditEntry, error)
}

// AuthService authenticates operators of the admin API.
type AuthService interface {
	// Login checks the operator password and issues a token whose subject is
	// the actor.
	Login(ctx context.Context, req models.TokenRequest) (models.Token, error)

	// ParseToken validates a raw JWT and returns its claims.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	BuildInfo(ctx context.Context) models.BuildInfoResponse
}
