package service

import (
	"context"

	"github.com/MKhiriev/go-whitelist-keeper/internal/config"
	"github.com/MKhiriev/go-whitelist-keeper/internal/logger"
	"github.com/MKhiriev/go-whitelist-keeper/models"
)

type appInfoService struct {
	info models.BuildInfoResponse

	logger *logger.Logger
}

// NewAppInfoService reports build metadata. cfg.Version, when set, overrides
// the linker-injected version.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	info := build.Response()
	if cfg.Version != "" {
		info.Version = cfg.Version
	}
	if info.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		info:   info,
		logger: logger,
	}, nil
}

func (s *appInfoService) BuildInfo(ctx context.Context) models.BuildInfoResponse {
	return s.info
}
