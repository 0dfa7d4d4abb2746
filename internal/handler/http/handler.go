package http

import (
	"stockroom/internal/logger"
	"stockroom/internal/service"
	"stockroom/internal/session"
)

type Handler struct {
	services *service.Services
	cookies  *session.CookieCodec

	logger *logger.Logger
}

func NewHandler(services *service.Services, cookies *session.CookieCodec, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cookies:  cookies,
		logger:   logger,
	}
}
