package handler

import (
	"stockroom/internal/config"
	"stockroom/internal/handler/http"
	"stockroom/internal/logger"
	"stockroom/internal/service"
	"stockroom/internal/session"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cookies *session.CookieCodec, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cookies, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
