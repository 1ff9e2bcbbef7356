package handler

import (
	"github.com/MKhiriev/go-screen-sync/internal/config"
	"github.com/MKhiriev/go-screen-sync/internal/handler/http"
	"github.com/MKhiriev/go-screen-sync/internal/logger"
	"github.com/MKhiriev/go-screen-sync/internal/service"
	"github.com/MKhiriev/go-screen-sync/internal/ws"
)

// Handlers bundles the inbound transport surface of the screen backend: the
// HTTP handler and the websocket change feed it publishes accepted mutations
// to.
type Handlers struct {
	HTTP *http.Handler
	Feed *ws.Hub
}

// NewHandlers builds the HTTP handler together with its change feed. The
// feed is exposed alongside the handler because its broadcast loop is owned
// by the server lifecycle, not by the handler itself.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	feed := ws.NewHub(logger)

	return &Handlers{
		HTTP: http.NewHandler(services, feed, logger),
		Feed: feed,
	}, nil
}
