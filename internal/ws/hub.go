// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ws implements the server side of the live change feed: a hub
// that fans screen change events out to every connected watch client
// over WebSocket.
package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/MKhiriev/go-screen-sync/internal/logger"
	"github.com/MKhiriev/go-screen-sync/models"
	"github.com/gorilla/websocket"
)

const (
	// sendBuffer bounds undelivered frames per watch client before the
	// client is considered lagging and dropped.
	sendBuffer = 64

	// eventBuffer bounds events queued for broadcast before Publish
	// starts dropping. Watchers recover dropped events on their next
	// full sync pass.
	eventBuffer = 256

	pingInterval = 30 * time.Second
	writeTimeout = 10 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(_ *http.Request) bool { return true },
}

// Hub owns the set of connected watch clients and broadcasts every
// published change event to all of them. One frame carries one
// [models.ChangeEvent] as JSON, matching what the agent-side feed
// decoder expects.
type Hub struct {
	register   chan *client
	unregister chan *client
	events     chan models.ChangeEvent

	clients map[*client]struct{}

	logger *logger.Logger
}

// NewHub constructs a Hub. Run must be started before clients connect.
func NewHub(logger *logger.Logger) *Hub {
	return &Hub{
		register:   make(chan *client),
		unregister: make(chan *client),
		events:     make(chan models.ChangeEvent, eventBuffer),
		clients:    make(map[*client]struct{}),
		logger:     logger,
	}
}

// Run is the hub's main loop; it owns the client set, so all
// registration and broadcast go through its channels. Cancelling ctx
// closes every client and stops the loop.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				close(c.send)
				delete(h.clients, c)
			}
			return

		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.logger.Debug().Str("client_id", c.clientID).Int("watchers", len(h.clients)).Msg("watch client connected")

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			h.logger.Debug().Str("client_id", c.clientID).Int("watchers", len(h.clients)).Msg("watch client disconnected")

		case event := <-h.events:
			payload, err := json.Marshal(event)
			if err != nil {
				h.logger.Err(err).Str("func", "*Hub.Run").Str("screen_id", event.ScreenID).Msg("change event was not encoded")
				continue
			}

			for c := range h.clients {
				select {
				case c.send <- payload:
				default:
					// Отстающий клиент выбрасывается, чтобы не
					// задерживать рассылку остальным.
					delete(h.clients, c)
					close(c.send)
					h.logger.Warn().Str("client_id", c.clientID).Msg("watch client is lagging, dropped")
				}
			}
		}
	}
}

// Publish hands one change event to the broadcast loop without ever
// blocking the caller.
func (h *Hub) Publish(event models.ChangeEvent) {
	select {
	case h.events <- event:
	default:
		h.logger.Warn().Str("func", "*Hub.Publish").Str("screen_id", event.ScreenID).Msg("change feed saturated, event dropped")
	}
}

// ServeWatch upgrades the request to a WebSocket and attaches the
// connection to the broadcast loop. clientID is only used for logging.
func (h *Hub) ServeWatch(w http.ResponseWriter, r *http.Request, clientID string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Err(err).Str("func", "*Hub.ServeWatch").Msg("watch upgrade failed")
		return
	}

	c := &client{
		hub:      h,
		conn:     conn,
		clientID: clientID,
		send:     make(chan []byte, sendBuffer),
	}
	h.register <- c

	go c.writePump()
	go c.readPump()
}

type client struct {
	hub      *Hub
	conn     *websocket.Conn
	clientID string
	send     chan []byte
}

// readPump discards inbound frames — the feed is one-way — but keeps
// reading so close frames and pings are processed and a dropped peer is
// noticed.
func (c *client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.hub.logger.Debug().Err(err).Str("client_id", c.clientID).Msg("watch connection dropped")
			}
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
