package handler

import (
	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/config"
	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/handler/http"
	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/logger"
	"github.com/Digitalizetheglobe/dtg-universal-cms/internal/service"
)

// Handlers holds the transport handlers enabled by configuration.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}, nil
}
