package handler

import (
	"github.com/arenacast/backend/internal/actions"
	"github.com/arenacast/backend/internal/config"
	"github.com/arenacast/backend/internal/handler/http"
	"github.com/arenacast/backend/internal/logger"
	"github.com/arenacast/backend/internal/service"
)

// Handlers aggregates the two protocol surfaces of the application: the
// stateless REST API and the in-process action layer consumed by the
// server-rendered views. Both delegate to the same service layer.
type Handlers struct {
	HTTP    *http.Handler
	Actions *actions.Actions
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP:    http.NewHandler(services, cfg, logger),
		Actions: actions.NewActions(services, logger),
	}, nil
}
