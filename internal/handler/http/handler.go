package http

import (
	"github.com/MKhiriev/go-whitelist-keeper/internal/logger"
	"github.com/MKhiriev/go-whitelist-keeper/internal/service"
)

// defaultMaxImportBytes caps import bodies when no limit is configured.
const defaultMaxImportBytes int64 = 5 << 20

type Handler struct {
	services *service.Services

	// maxImportBytes bounds the raw body read for an import request.
	maxImportBytes int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, maxImportBytes int64, logger *logger.Logger) *Handler {
	if maxImportBytes <= 0 {
		maxImportBytes = defaultMaxImportBytes
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		maxImportBytes: maxImportBytes,
		logger:         logger,
	}
}
