package http

import (
	"time"

	"github.com/arenacast/backend/internal/config"
	"github.com/arenacast/backend/internal/logger"
	"github.com/arenacast/backend/internal/service"
)

type Handler struct {
	services *service.Services

	appVersion     string
	devMode        bool
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		appVersion:     cfg.App.Version,
		devMode:        cfg.App.IsDevelopment(),
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
