package http

import (
	"github.com/MKhiriev/go-screen-sync/internal/logger"
	"github.com/MKhiriev/go-screen-sync/internal/service"
	"github.com/MKhiriev/go-screen-sync/internal/ws"
)

type Handler struct {
	services *service.Services
	feed     *ws.Hub

	logger *logger.Logger
}

func NewHandler(services *service.Services, feed *ws.Hub, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		feed:     feed,
		logger:   logger,
	}
}
