package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-screen-sync/models"
	"github.com/gorilla/websocket"
)

// watchEventBuffer bounds how many undelivered change events the feed holds
// before the read loop blocks on the consumer.
const watchEventBuffer = 32

// WatchScreens implements [ServerAdapter]. It upgrades to a WebSocket at
// /api/screens/watch and decodes one [models.ChangeEvent] per text frame.
// The returned channel is closed when ctx is cancelled or the connection
// drops; reconnecting is the caller's responsibility.
func (h *httpServerAdapter) WatchScreens(ctx context.Context) (<-chan models.ChangeEvent, error) {
	wsURL := websocketURL(h.baseURL) + "/api/screens/watch"

	header := http.Header{}
	if token := h.Token(); token != "" {
		header.Set("Authorization", "Bearer "+token)
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, wsURL, header)
	if err != nil {
		if resp != nil {
			defer resp.Body.Close()
			if resp.StatusCode == http.StatusUnauthorized {
				return nil, fmt.Errorf("%w: watch handshake rejected", ErrUnauthorized)
			}
		}
		return nil, fmt.Errorf("watch dial: %w", err)
	}

	events := make(chan models.ChangeEvent, watchEventBuffer)
	done := make(chan struct{})

	// ReadJSON has no context support, so cancellation is delivered by
	// closing the connection out from under the read loop.
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()

	go func() {
		defer close(events)
		defer close(done)
		defer conn.Close()

		for {
			var event models.ChangeEvent
			if err := conn.ReadJSON(&event); err != nil {
				if ctx.Err() == nil && websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					h.logger.Warn().Str("func", "*httpServerAdapter.WatchScreens").Err(err).Msg("change feed closed unexpectedly")
				}
				return
			}

			select {
			case events <- event:
			case <-ctx.Done():
				return
			}
		}
	}()

	return events, nil
}

func websocketURL(baseURL string) string {
	switch {
	case strings.HasPrefix(baseURL, "https://"):
		return "wss://" + strings.TrimPrefix(baseURL, "https://")
	case strings.HasPrefix(baseURL, "http://"):
		return "ws://" + strings.TrimPrefix(baseURL, "http://")
	default:
		return baseURL
	}
}
