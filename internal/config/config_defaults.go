package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	defaultRemoteHost      = "127.0.0.1"
	defaultRemotePort      = 25575
	defaultRemoteTimeout   = 10 * time.Second
	defaultSyncHour        = 3
	defaultSyncMinute      = 0
	defaultSyncCooldown    = 30 * time.Second
	defaultWhitelistPath   = "data/whitelist.json"
	defaultBackupDir       = "data/backups"
	defaultBackupMaxKeep   = 14
	defaultImportMaxBytes  = 5 << 20
	defaultServerAddress   = "localhost:8080"
	defaultRequestTimeout  = 30 * time.Second
	defaultTokenIssuer     = "whitelistd"
	defaultTokenDuration   = 12 * time.Hour
	defaultAdapterAddress  = "http://localhost:8080"
	defaultAdapterTimeout  = 30 * time.Second
	defaultTokenFileName   = "token"
	defaultClientConfigDir = "wlctl"
)

// applyDefaults fills every field still unset after merging all sources.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Remote.Host == "" {
		cfg.Remote.Host = defaultRemoteHost
	}
	if cfg.Remote.Port == 0 {
		cfg.Remote.Port = defaultRemotePort
	}
	if cfg.Remote.Timeout == 0 {
		cfg.Remote.Timeout = defaultRemoteTimeout
	}

	if cfg.Sync.Hour == nil {
		cfg.Sync.Hour = ptr(defaultSyncHour)
	}
	if cfg.Sync.Minute == nil {
		cfg.Sync.Minute = ptr(defaultSyncMinute)
	}
	if cfg.Sync.Cooldown == nil {
		cfg.Sync.Cooldown = ptr(defaultSyncCooldown)
	}

	if cfg.Storage.WhitelistPath == "" {
		cfg.Storage.WhitelistPath = defaultWhitelistPath
	}
	if cfg.Storage.Backup.Enabled == nil {
		cfg.Storage.Backup.Enabled = ptr(true)
	}
	if cfg.Storage.Backup.Dir == "" {
		cfg.Storage.Backup.Dir = defaultBackupDir
	}
	if cfg.Storage.Backup.MaxKeep == nil {
		cfg.Storage.Backup.MaxKeep = ptr(defaultBackupMaxKeep)
	}

	if cfg.Import.MaxBytes == 0 {
		cfg.Import.MaxBytes = defaultImportMaxBytes
	}

	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultServerAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}

	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}

	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = defaultAdapterAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultAdapterTimeout
	}
	if cfg.Adapter.TokenFile == "" {
		cfg.Adapter.TokenFile = defaultTokenFile()
	}
}

func defaultTokenFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", defaultClientConfigDir+"-"+defaultTokenFileName)
	}
	return filepath.Join(dir, defaultClientConfigDir, defaultTokenFileName)
}

func ptr[T any](v T) *T {
	return &v
}
