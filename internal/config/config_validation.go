// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.AdminPasswordHash == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Remote.Enabled {
		if cfg.Remote.Host == "" || cfg.Remote.Port < 1 || cfg.Remote.Port > 65535 || cfg.Remote.Timeout <= 0 {
			return ErrInvalidRemoteConfigs
		}
	}

	hour, minute := cfg.Sync.At()
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return fmt.Errorf("%w: scheduled time %02d:%02d", ErrInvalidSyncConfigs, hour, minute)
	}
	if cfg.Sync.CooldownWindow() < 0 {
		return fmt.Errorf("%w: negative cooldown", ErrInvalidSyncConfigs)
	}

	if cfg.Storage.WhitelistPath == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Storage.Backup.IsEnabled() && cfg.Storage.Backup.Dir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Import.MaxBytes <= 0 {
		return ErrInvalidImportConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.TokenFile == "" {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
