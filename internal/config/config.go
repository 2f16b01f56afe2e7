// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// whitelist keeper. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON or TOML file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, the admin password hash and the
	// application version.
	App App `envPrefix:"APP_"`

	// Remote holds the RCON endpoint of the game server.
	Remote Remote `envPrefix:"REMOTE_"`

	// Sync holds the reconciliation schedule and manual-run cooldown.
	Sync Sync `envPrefix:"SYNC_"`

	// Storage holds the whitelist file, backup and audit settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Import holds bulk import limits and propagation policy.
	Import Import `envPrefix:"IMPORT_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings the wlctl client uses to reach the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// FilePath is the optional path to a JSON or TOML configuration file.
	// The format is chosen by extension (".toml" selects TOML).
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control
// authentication and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// AdminPasswordHash is the bcrypt hash operators authenticate against.
	// Generate it with `wlctl hash-password`.
	// Env: APP_ADMIN_PASSWORD_HASH
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`

	// Version is exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Remote holds the game server remote console settings.
type Remote struct {
	// Env: REMOTE_HOST
	Host string `env:"HOST"`
	// Env: REMOTE_PORT
	Port int `env:"PORT"`
	// Env: REMOTE_PASSWORD
	Password string `env:"PASSWORD"`

	// Enabled switches the remote integration on. When false every
	// operation that needs the game server is skipped or rejected.
	// Env: REMOTE_ENABLED
	Enabled bool `env:"ENABLED"`

	// Timeout bounds each RCON call (dial, auth, command, response).
	// Env: REMOTE_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Sync holds reconciliation settings.
//
// Hour, Minute, Cooldown and the backup switches are pointers so that an
// explicit zero survives the merge of configuration sources.
type Sync struct {
	// Env: SYNC_SCHEDULE_ENABLED
	ScheduleEnabled bool `env:"SCHEDULE_ENABLED"`
	// Env: SYNC_HOUR
	Hour *int `env:"HOUR"`
	// Env: SYNC_MINUTE
	Minute *int `env:"MINUTE"`
	// RemoveExtras is the scheduled-run policy for names that exist only
	// remotely.
	// Env: SYNC_REMOVE_EXTRAS
	RemoveExtras bool `env:"REMOVE_EXTRAS"`
	// Cooldown is the minimum interval between manual runs per actor. Zero
	// disables it.
	// Env: SYNC_COOLDOWN
	Cooldown *time.Duration `env:"COOLDOWN"`
}

// CooldownWindow returns the manual run cooldown, zero when unset.
func (s Sync) CooldownWindow() time.Duration {
	if s.Cooldown == nil {
		return 0
	}
	return *s.Cooldown
}

// At returns the local wall-clock time of the daily scheduled run.
func (s Sync) At() (hour, minute int) {
	if s.Hour != nil {
		hour = *s.Hour
	}
	if s.Minute != nil {
		minute = *s.Minute
	}
	return hour, minute
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// WhitelistPath is the JSON file holding the authoritative list.
	// Env: STORAGE_WHITELIST_PATH
	WhitelistPath string `env:"WHITELIST_PATH"`

	// Backup holds snapshot settings.
	Backup Backup `envPrefix:"BACKUP_"`

	// Audit holds the optional audit database.
	Audit Audit `envPrefix:"AUDIT_"`
}

// Backup holds snapshot settings.
type Backup struct {
	// Env: STORAGE_BACKUP_ENABLED
	Enabled *bool `env:"ENABLED"`
	// Env: STORAGE_BACKUP_DIR
	Dir string `env:"DIR"`
	// MaxKeep is the number of newest snapshots retained; zero or less keeps
	// everything.
	// Env: STORAGE_BACKUP_MAX_KEEP
	MaxKeep *int `env:"MAX_KEEP"`
}

// IsEnabled reports whether snapshots should be written.
func (b Backup) IsEnabled() bool {
	return b.Enabled != nil && *b.Enabled
}

// Keep returns the retention count.
func (b Backup) Keep() int {
	if b.MaxKeep == nil {
		return 0
	}
	return *b.MaxKeep
}

// Audit holds connection settings for the audit log database.
type Audit struct {
	// DSN is either a PostgreSQL URL ("postgres://...") or a SQLite file
	// path. Empty disables the audit log.
	// Env: STORAGE_AUDIT_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Import holds bulk import settings.
type Import struct {
	// MaxBytes rejects uploads larger than this many bytes.
	// Env: IMPORT_MAX_BYTES
	MaxBytes int64 `env:"MAX_BYTES"`

	// PropagateNewOnly limits remote propagation to names that were not
	// already present locally.
	// Env: IMPORT_PROPAGATE_NEW_ONLY
	PropagateNewOnly bool `env:"PROPAGATE_NEW_ONLY"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client-side view of the server.
type Adapter struct {
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	// TokenFile is where `wlctl login` stores the bearer token.
	// Env: ADAPTER_TOKEN_FILE
	TokenFile string `env:"TOKEN_FILE"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources. For each field the first non-zero value wins,
// in this order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON or TOML file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(os.Args[1:])
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(args).
		withFile().
		build()
	if err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
