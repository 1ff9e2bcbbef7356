// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-screen-sync/internal/logger"
	"github.com/MKhiriev/go-screen-sync/models"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func startTestHub(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()

	hub := NewHub(logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(cancel)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.ServeWatch(w, r, "agent-test")
	}))
	t.Cleanup(srv.Close)

	return hub, srv
}

func dialWatch(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	// Регистрация в цикле хаба завершается чуть позже рукопожатия.
	time.Sleep(50 * time.Millisecond)

	return conn
}

func feedEvent(id string) models.ChangeEvent {
	return models.ChangeEvent{
		ScreenID:   id,
		Kind:       models.EventSaved,
		OccurredAt: time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC),
	}
}

func readFrame(t *testing.T, conn *websocket.Conn) models.ChangeEvent {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	msgType, frame, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, websocket.TextMessage, msgType)

	var event models.ChangeEvent
	require.NoError(t, json.Unmarshal(frame, &event))
	return event
}

// ─────────────────────────────────────────────
// Broadcast
// ─────────────────────────────────────────────

func TestHub_PublishReachesWatcher(t *testing.T) {
	hub, srv := startTestHub(t)
	conn := dialWatch(t, srv)

	hub.Publish(feedEvent("s1"))

	event := readFrame(t, conn)
	assert.Equal(t, "s1", event.ScreenID)
	assert.Equal(t, models.EventSaved, event.Kind)
}

func TestHub_FansOutToAllWatchers(t *testing.T) {
	hub, srv := startTestHub(t)
	first := dialWatch(t, srv)
	second := dialWatch(t, srv)

	hub.Publish(feedEvent("s2"))

	assert.Equal(t, "s2", readFrame(t, first).ScreenID)
	assert.Equal(t, "s2", readFrame(t, second).ScreenID)
}

func TestHub_EventsKeepOrder(t *testing.T) {
	hub, srv := startTestHub(t)
	conn := dialWatch(t, srv)

	for _, id := range []string{"a", "b", "c"} {
		hub.Publish(feedEvent(id))
	}

	assert.Equal(t, "a", readFrame(t, conn).ScreenID)
	assert.Equal(t, "b", readFrame(t, conn).ScreenID)
	assert.Equal(t, "c", readFrame(t, conn).ScreenID)
}

func TestHub_DeletionFrameCarriesNoScreen(t *testing.T) {
	hub, srv := startTestHub(t)
	conn := dialWatch(t, srv)

	event := feedEvent("s3")
	event.Kind = models.EventDeleted
	hub.Publish(event)

	got := readFrame(t, conn)
	assert.Equal(t, models.EventDeleted, got.Kind)
	assert.Nil(t, got.Screen)
}

// ─────────────────────────────────────────────
// Lifecycle
// ─────────────────────────────────────────────

func TestServeWatch_RejectsPlainHTTP(t *testing.T) {
	_, srv := startTestHub(t)

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHub_ContextCancelClosesWatchers(t *testing.T) {
	hub := NewHub(logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.ServeWatch(w, r, "agent-test")
	}))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	time.Sleep(50 * time.Millisecond)
	cancel()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err = conn.ReadMessage()
	assert.Error(t, err, "hub shutdown must close the watch connection")
}

func TestHub_PublishNeverBlocksWithoutRun(t *testing.T) {
	hub := NewHub(logger.Nop())

	done := make(chan struct{})
	go func() {
		defer close(done)
		// Шлём заметно больше ёмкости буфера — лишние события просто
		// отбрасываются.
		for i := 0; i < eventBuffer*2; i++ {
			hub.Publish(feedEvent("s"))
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Error("Publish blocked without a running hub")
	}
}

func TestHub_WatcherDisconnectIsHandled(t *testing.T) {
	hub, srv := startTestHub(t)

	conn := dialWatch(t, srv)
	require.NoError(t, conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	require.NoError(t, conn.Close())

	time.Sleep(50 * time.Millisecond)

	// Публикация после ухода наблюдателя не виснет и не паникует.
	hub.Publish(feedEvent("s9"))

	second := dialWatch(t, srv)
	hub.Publish(feedEvent("s10"))

	assert.Equal(t, "s10", readFrame(t, second).ScreenID)
}
