package http

import (
	"github.com/MKhiriev/go-delta-sync/internal/logger"
	"github.com/MKhiriev/go-delta-sync/internal/service"
)

// Handler is the root HTTP transport handler of the feed server. It holds the
// service layer the endpoint methods delegate to and the base logger the
// middleware chain derives request-scoped loggers from.
type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
