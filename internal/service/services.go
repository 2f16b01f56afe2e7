package service

import (
	"github.com/MKhiriev/go-whitelist-keeper/internal/adapter"
	"github.com/MKhiriev/go-whitelist-keeper/internal/config"
	"github.com/MKhiriev/go-whitelist-keeper/internal/logger"
	"github.com/MKhiriev/go-whitelist-keeper/internal/store"
	"github.com/MKhiriev/go-whitelist-keeper/models"
)

type Services struct {
	AuthService      AuthService
	AppInfoService   AppInfoService
	ReconcileService ReconcileService
	ImportService    ImportService
	WhitelistService WhitelistService
}

func NewServices(storages *store.Storages, remote adapter.RemoteConsole, cfg *config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	reconcile := NewReconcileService(remote, storages.Whitelist, storages.Backups, storages.Audit, cfg.Sync, logger.Component("reconcile"))
	imports := NewImportService(storages.Whitelist, remote, storages.Backups, storages.Audit, cfg.Import, logger.Component("import"))

	return &Services{
		AuthService:      NewAuthService(cfg.App, logger.Component("auth")),
		AppInfoService:   appInfo,
		ReconcileService: reconcile,
		ImportService:    imports,
		WhitelistService: NewWhitelistService(storages.Whitelist, remote, reconcile, imports, storages.Audit, cfg.Sync, logger.Component("whitelist")),
	}, nil
}
