// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package datasource

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-screen-sync/internal/adapter"
	"github.com/MKhiriev/go-screen-sync/internal/logger"
	"github.com/MKhiriev/go-screen-sync/internal/service"
	"github.com/MKhiriev/go-screen-sync/internal/store"
	"github.com/MKhiriev/go-screen-sync/internal/utils"
	"github.com/MKhiriev/go-screen-sync/models"
)

// defaultClearAfter is the retention cutoff for ClearOldScreens when the
// caller does not name one.
const defaultClearAfter = 30 * 24 * time.Hour

// HybridConfig carries the knobs of the offline-first DataSource.
type HybridConfig struct {
	// ClientID identifies this agent when opening a session. Generated
	// when empty.
	ClientID string

	// Resolver settles version conflicts surfaced through
	// ResolveConflict. Defaults to last-write-wins by version.
	Resolver service.Resolver

	// ClearAfter is the default retention for ClearOldScreens. Defaults
	// to thirty days.
	ClearAfter time.Duration
}

// hybridSource is the offline-first DataSource: every read and write is
// served by the local replica immediately, mutations are staged in the
// pending queue, and the orchestrator reconciles with the backend in
// the background. The application keeps working identically with or
// without connectivity; only the sync state of each screen differs.
type hybridSource struct {
	screens      store.ScreenRepository
	queue        service.QueueService
	orchestrator service.SyncOrchestrator
	server       adapter.ServerAdapter

	tracker  service.SyncTracker
	resolver service.Resolver
	bus      *Bus
	ids      *utils.UUIDGenerator

	clientID   string
	clearAfter time.Duration

	mu        sync.Mutex
	connected bool
	watchStop context.CancelFunc
	watchDone chan struct{}

	logger *logger.Logger
}

// NewHybridDataSource constructs the offline-first DataSource over the
// local store, the pending queue, the sync orchestrator, and the server
// transport. The bus distributes change events to subscribers; pass the
// same instance the orchestrator publishes to, or nil for a private one.
func NewHybridDataSource(screens store.ScreenRepository, queue service.QueueService, orchestrator service.SyncOrchestrator, server adapter.ServerAdapter, bus *Bus, cfg HybridConfig, logger *logger.Logger) DataSource {
	if bus == nil {
		bus = NewBus()
	}
	clientID := cfg.ClientID
	if clientID == "" {
		clientID = utils.NewUUIDGenerator().Generate()
	}
	resolver := cfg.Resolver
	if resolver == nil {
		resolver = service.NewLastWriteWinsResolver()
	}
	clearAfter := cfg.ClearAfter
	if clearAfter <= 0 {
		clearAfter = defaultClearAfter
	}

	return &hybridSource{
		screens:      screens,
		queue:        queue,
		orchestrator: orchestrator,
		server:       server,
		tracker:      service.NewSyncTracker(),
		resolver:     resolver,
		bus:          bus,
		ids:          utils.NewUUIDGenerator(),
		clientID:     clientID,
		clearAfter:   clearAfter,
		logger:       logger,
	}
}

// ─────────────────────────────────────────────
// Connection lifecycle
// ─────────────────────────────────────────────

// Connect implements DataSource: it opens a server session, starts the
// live change feed, and re-arms screens that failed while the agent was
// offline. A feed that cannot be opened is not fatal — pushes and pulls
// work without it, remote changes just arrive with the next sync pass.
func (h *hybridSource) Connect(ctx context.Context) error {
	log := logger.FromContext(ctx)

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.connected {
		return nil
	}

	if err := h.server.OpenSession(ctx, h.clientID); err != nil {
		return fmt.Errorf("open session: %w", err)
	}

	watchCtx, stop := context.WithCancel(context.Background())
	feed, err := h.server.WatchScreens(watchCtx)
	if err != nil {
		stop()
		log.Warn().Err(err).Str("func", "*hybridSource.Connect").Msg("change feed unavailable, continuing without live updates")
	} else {
		done := make(chan struct{})
		go h.consumeFeed(watchCtx, feed, done)
		h.watchStop, h.watchDone = stop, done
	}

	h.connected = true

	// Возвращение связи — это и есть «connectivity-restored cycle»:
	// зависшие в failed экраны снова получают бюджет повторов.
	if n, err := h.orchestrator.RequeueFailed(ctx); err != nil {
		log.Warn().Err(err).Str("func", "*hybridSource.Connect").Msg("failed screens were not requeued")
	} else if n > 0 {
		log.Info().Int("requeued", n).Str("func", "*hybridSource.Connect").Msg("failed screens requeued after reconnect")
	}

	return nil
}

// Disconnect implements DataSource.
func (h *hybridSource) Disconnect(ctx context.Context) error {
	h.mu.Lock()
	stop, done := h.watchStop, h.watchDone
	h.watchStop, h.watchDone = nil, nil
	h.connected = false
	h.mu.Unlock()

	if stop == nil {
		return nil
	}
	stop()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// IsConnected implements DataSource.
func (h *hybridSource) IsConnected() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.connected
}

// consumeFeed folds live server events into the local replica until the
// feed closes.
func (h *hybridSource) consumeFeed(ctx context.Context, feed <-chan models.ChangeEvent, done chan struct{}) {
	defer close(done)

	for event := range feed {
		h.applyRemoteEvent(ctx, event)
	}
	h.logger.Debug().Str("func", "*hybridSource.consumeFeed").Msg("change feed closed")
}

// applyRemoteEvent refreshes the local copy from a feed event. Only
// clean screens are touched: a screen with a queued local mutation
// keeps its local state until that push settles, exactly like the pull
// phase of a sync pass.
func (h *hybridSource) applyRemoteEvent(ctx context.Context, event models.ChangeEvent) {
	if event.ScreenID == "" {
		return
	}

	record, err := h.screens.GetSyncRecord(ctx, event.ScreenID)
	switch {
	case errors.Is(err, store.ErrSyncRecordNotFound):
		// Неизвестный экран: принимаем только появление, не удаление.
		if event.Kind == models.EventDeleted {
			return
		}
	case err != nil:
		h.logger.Err(err).Str("func", "*hybridSource.applyRemoteEvent").Str("screen_id", event.ScreenID).Msg("sync record lookup failed")
		return
	case record.Status != models.StatusSynced:
		return
	}

	now := time.Now()
	if event.Kind == models.EventDeleted {
		if err := h.screens.CommitDeleted(ctx, event.ScreenID); err != nil && !errors.Is(err, store.ErrScreenNotFound) {
			h.logger.Err(err).Str("func", "*hybridSource.applyRemoteEvent").Str("screen_id", event.ScreenID).Msg("commit remote deletion failed")
			return
		}
		h.bus.Publish(models.ChangeEvent{ScreenID: event.ScreenID, Kind: models.EventDeleted, OccurredAt: now})
		return
	}

	remote := event.Screen
	if remote == nil {
		pulled, err := h.server.GetScreen(ctx, event.ScreenID)
		if err != nil {
			h.logger.Err(err).Str("func", "*hybridSource.applyRemoteEvent").Str("screen_id", event.ScreenID).Msg("screen pull failed")
			return
		}
		remote = &pulled
	}

	fresh := models.SyncRecord{ScreenID: event.ScreenID, Status: models.StatusSynced, LastSyncedAt: &now}
	if err := h.screens.SaveScreen(ctx, *remote, fresh); err != nil {
		h.logger.Err(err).Str("func", "*hybridSource.applyRemoteEvent").Str("screen_id", event.ScreenID).Msg("remote screen adoption failed")
		return
	}
	h.bus.Publish(models.ChangeEvent{ScreenID: event.ScreenID, Kind: models.EventSaved, Screen: remote, OccurredAt: now})
}

// ─────────────────────────────────────────────
// Reads
// ─────────────────────────────────────────────

// FetchScreen implements DataSource. Reads are local-first; a miss is
// transparently filled from the server when a connection is up, and the
// fetched copy is cached as synced for the next read.
func (h *hybridSource) FetchScreen(ctx context.Context, screenID string) (models.Screen, error) {
	log := logger.FromContext(ctx)

	if screenID == "" {
		return models.Screen{}, service.ErrInvalidDataProvided
	}

	screen, err := h.screens.GetScreen(ctx, screenID)
	if err == nil {
		return screen, nil
	}
	if !errors.Is(err, store.ErrScreenNotFound) || !h.IsConnected() {
		return models.Screen{}, err
	}

	remote, rerr := h.server.GetScreen(ctx, screenID)
	if rerr != nil {
		if errors.Is(rerr, adapter.ErrNotFound) {
			return models.Screen{}, err
		}
		return models.Screen{}, fmt.Errorf("fetch remote screen: %w", rerr)
	}
	if remote.IsDeleted {
		return models.Screen{}, err
	}

	now := time.Now()
	record := models.SyncRecord{ScreenID: screenID, Status: models.StatusSynced, LastSyncedAt: &now}
	if serr := h.screens.SaveScreen(ctx, remote, record); serr != nil {
		// Экран уже получен; неудачное кеширование не делает чтение
		// неудачным.
		log.Warn().Err(serr).Str("func", "*hybridSource.FetchScreen").Str("screen_id", screenID).Msg("pulled screen was not cached")
		return remote, nil
	}
	h.bus.Publish(models.ChangeEvent{ScreenID: screenID, Kind: models.EventSaved, Screen: &remote, OccurredAt: now})

	return remote, nil
}

// FetchScreens implements DataSource. Listings come from the local
// replica; the background sync keeps it converging with the server.
func (h *hybridSource) FetchScreens(ctx context.Context, limit, offset int) ([]models.Screen, error) {
	if limit < 0 || offset < 0 {
		return nil, service.ErrInvalidDataProvided
	}
	return h.screens.GetScreens(ctx, limit, offset)
}

// SearchScreens implements DataSource.
func (h *hybridSource) SearchScreens(ctx context.Context, query string) ([]models.Screen, error) {
	if query == "" {
		return nil, service.ErrInvalidDataProvided
	}
	return h.screens.SearchScreens(ctx, query)
}

// ScreenCount implements DataSource.
func (h *hybridSource) ScreenCount(ctx context.Context) (int64, error) {
	return h.screens.CountScreens(ctx)
}

// ─────────────────────────────────────────────
// Writes
// ─────────────────────────────────────────────

// SaveScreen implements DataSource. The write lands locally and is
// staged for transmission in one go: queue first, because the queue is
// what rejects writes to a screen whose deletion is already staged.
func (h *hybridSource) SaveScreen(ctx context.Context, screen models.Screen) (models.Screen, error) {
	if screen.ScreenID == "" {
		screen.ScreenID = h.ids.Generate()
	}

	now := time.Now()
	op := models.OpUpdate
	existing, err := h.screens.GetScreen(ctx, screen.ScreenID)
	switch {
	case errors.Is(err, store.ErrScreenNotFound):
		op = models.OpCreate
		screen.CreatedAt = now
		screen.Version = 0
	case err != nil:
		return models.Screen{}, fmt.Errorf("load current screen: %w", err)
	default:
		// Версию ведёт сервер: локальная правка наследует последнюю
		// подтверждённую, что бы ни принёс вызывающий.
		screen.Version = existing.Version
		if screen.CreatedAt.IsZero() {
			screen.CreatedAt = existing.CreatedAt
		}
	}
	screen.UpdatedAt = now

	if _, err := h.queue.Enqueue(ctx, screen, op); err != nil {
		return models.Screen{}, fmt.Errorf("stage mutation: %w", err)
	}

	record, err := h.screens.GetSyncRecord(ctx, screen.ScreenID)
	if err != nil && !errors.Is(err, store.ErrSyncRecordNotFound) {
		return models.Screen{}, fmt.Errorf("load sync record: %w", err)
	}
	record.ScreenID = screen.ScreenID
	record = h.tracker.OnLocalMutation(record)

	if err := h.screens.SaveScreen(ctx, screen, record); err != nil {
		return models.Screen{}, fmt.Errorf("save screen: %w", err)
	}

	h.bus.Publish(models.ChangeEvent{ScreenID: screen.ScreenID, Kind: models.EventSaved, Screen: &screen, OccurredAt: now})

	return screen, nil
}

// DeleteScreen implements DataSource. The screen is tombstoned locally
// until the server confirms; a screen whose create never left the queue
// is removed outright, together with the create itself.
func (h *hybridSource) DeleteScreen(ctx context.Context, screenID string) error {
	log := logger.FromContext(ctx)

	if screenID == "" {
		return service.ErrInvalidDataProvided
	}

	existing, err := h.screens.GetScreen(ctx, screenID)
	if err != nil {
		return err
	}

	item, err := h.queue.Enqueue(ctx, existing, models.OpDelete)
	if err != nil {
		return fmt.Errorf("stage deletion: %w", err)
	}

	now := time.Now()
	if item == nil {
		// Create и delete взаимно уничтожились: сервер этот экран так и
		// не увидит, строка удаляется сразу.
		if err := h.screens.CommitDeleted(ctx, screenID); err != nil {
			return fmt.Errorf("remove unsynced screen: %w", err)
		}
		h.bus.Publish(models.ChangeEvent{ScreenID: screenID, Kind: models.EventDeleted, OccurredAt: now})
		return nil
	}

	if err := h.screens.SoftDeleteScreen(ctx, screenID); err != nil {
		return fmt.Errorf("soft delete screen: %w", err)
	}

	record, err := h.screens.GetSyncRecord(ctx, screenID)
	if err != nil {
		log.Err(err).Str("func", "*hybridSource.DeleteScreen").Str("screen_id", screenID).Msg("sync record lookup failed")
	} else {
		record = h.tracker.OnLocalMutation(record)
		if err := h.screens.UpdateSyncRecord(ctx, record); err != nil {
			log.Err(err).Str("func", "*hybridSource.DeleteScreen").Str("screen_id", screenID).Msg("sync record update failed")
		}
	}

	h.bus.Publish(models.ChangeEvent{ScreenID: screenID, Kind: models.EventDeleted, OccurredAt: now})

	return nil
}

// ─────────────────────────────────────────────
// Subscriptions
// ─────────────────────────────────────────────

// SubscribeToScreen implements DataSource.
func (h *hybridSource) SubscribeToScreen(ctx context.Context, screenID string) (<-chan models.ChangeEvent, error) {
	if screenID == "" {
		return nil, service.ErrInvalidDataProvided
	}
	return h.bus.Subscribe(ctx, screenID), nil
}

// ─────────────────────────────────────────────
// Sync capabilities
// ─────────────────────────────────────────────

// SyncData implements DataSource.
func (h *hybridSource) SyncData(ctx context.Context, items []models.PendingItem) (models.SyncResult, error) {
	if len(items) == 0 {
		return h.orchestrator.RunSyncPass(ctx)
	}
	return h.orchestrator.SyncItems(ctx, items), nil
}

// PendingItems implements DataSource.
func (h *hybridSource) PendingItems(ctx context.Context) ([]models.PendingItem, error) {
	return h.queue.Items(ctx)
}

// RetryFailed implements DataSource.
func (h *hybridSource) RetryFailed(ctx context.Context) (int, error) {
	return h.orchestrator.RequeueFailed(ctx)
}

// ResolveConflict implements DataSource. This is the manual-resolution
// path for screens the automatic pass left parked in the conflict
// state: the configured policy decides, the outcome is applied to the
// store and the queue, and the decision is returned. The screen is
// pushed again on the next sync pass when the local side survived.
func (h *hybridSource) ResolveConflict(ctx context.Context, conflict models.ConflictCase) (models.ConflictResolution, error) {
	log := logger.FromContext(ctx)

	screenID := conflict.Local.ScreenID
	if screenID == "" {
		screenID = conflict.Remote.ScreenID
	}
	if screenID == "" {
		return models.ConflictResolution{}, service.ErrInvalidDataProvided
	}

	record, err := h.screens.GetSyncRecord(ctx, screenID)
	if err != nil && !errors.Is(err, store.ErrSyncRecordNotFound) {
		return models.ConflictResolution{}, fmt.Errorf("load sync record: %w", err)
	}
	record.ScreenID = screenID

	resolution, err := h.resolver.Resolve(ctx, conflict)
	if err != nil {
		record = h.tracker.OnConflictDetected(record, err)
		if uerr := h.screens.UpdateSyncRecord(ctx, record); uerr != nil {
			log.Err(uerr).Str("func", "*hybridSource.ResolveConflict").Str("screen_id", screenID).Msg("sync record update failed")
		}
		return models.ConflictResolution{}, fmt.Errorf("%w: %s", service.ErrUnresolvedConflict, err)
	}

	now := time.Now()
	switch resolution.Kind {
	case models.UseRemote:
		if err := h.adoptRemote(ctx, screenID, record, conflict.Remote, now); err != nil {
			return models.ConflictResolution{}, err
		}

	case models.UseLocal:
		record = h.tracker.OnResolution(record, false, now)
		if err := h.screens.UpdateSyncRecord(ctx, record); err != nil {
			return models.ConflictResolution{}, fmt.Errorf("update sync record: %w", err)
		}
		if err := h.restage(ctx, screenID, conflict.Local, conflict.Remote.Version); err != nil {
			return models.ConflictResolution{}, err
		}

	case models.UseMerged:
		if resolution.Merged == nil {
			return models.ConflictResolution{}, fmt.Errorf("%w: merged resolution carries no screen", service.ErrUnresolvedConflict)
		}
		merged := resolution.Merged.Clone()
		merged.ScreenID = screenID
		merged.UpdatedAt = now

		record = h.tracker.OnResolution(record, false, now)
		if err := h.screens.SaveScreen(ctx, merged, record); err != nil {
			return models.ConflictResolution{}, fmt.Errorf("save merged screen: %w", err)
		}
		if err := h.restage(ctx, screenID, merged, conflict.Remote.Version); err != nil {
			return models.ConflictResolution{}, err
		}
		h.bus.Publish(models.ChangeEvent{ScreenID: screenID, Kind: models.EventSaved, Screen: &merged, OccurredAt: now})

	default:
		return models.ConflictResolution{}, fmt.Errorf("%w: unknown resolution %s", service.ErrUnresolvedConflict, resolution.Kind)
	}

	return resolution, nil
}

// adoptRemote installs the server copy as the synced truth and drops
// the local mutation.
func (h *hybridSource) adoptRemote(ctx context.Context, screenID string, record models.SyncRecord, remote models.Screen, now time.Time) error {
	if remote.IsDeleted {
		if err := h.screens.CommitDeleted(ctx, screenID); err != nil && !errors.Is(err, store.ErrScreenNotFound) {
			return fmt.Errorf("commit remote deletion: %w", err)
		}
		if err := h.queue.Remove(ctx, screenID); err != nil {
			return fmt.Errorf("remove resolved item: %w", err)
		}
		h.bus.Publish(models.ChangeEvent{ScreenID: screenID, Kind: models.EventDeleted, OccurredAt: now})
		return nil
	}

	record = h.tracker.OnResolution(record, true, now)
	if err := h.screens.SaveScreen(ctx, remote, record); err != nil {
		return fmt.Errorf("adopt remote screen: %w", err)
	}
	if err := h.queue.Remove(ctx, screenID); err != nil {
		return fmt.Errorf("remove resolved item: %w", err)
	}
	h.bus.Publish(models.ChangeEvent{ScreenID: screenID, Kind: models.EventSynced, Screen: &remote, OccurredAt: now})
	return nil
}

// restage rebases the screen's queued item onto the remote version. A
// parked conflict normally still holds its queued item; when it is gone
// the mutation is staged afresh before rebasing.
func (h *hybridSource) restage(ctx context.Context, screenID string, screen models.Screen, baseVersion int64) error {
	items, err := h.queue.Items(ctx)
	if err != nil {
		return fmt.Errorf("load queued items: %w", err)
	}

	var item *models.PendingItem
	for i := range items {
		if items[i].ScreenID == screenID {
			item = &items[i]
			break
		}
	}
	if item == nil {
		item, err = h.queue.Enqueue(ctx, screen, models.OpUpdate)
		if err != nil {
			return fmt.Errorf("stage resolved screen: %w", err)
		}
	}

	if _, err := h.queue.Restage(ctx, *item, screen, baseVersion); err != nil {
		return fmt.Errorf("restage resolved screen: %w", err)
	}
	return nil
}

// ─────────────────────────────────────────────
// Maintenance
// ─────────────────────────────────────────────

// ClearOldScreens implements DataSource.
func (h *hybridSource) ClearOldScreens(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan <= 0 {
		olderThan = h.clearAfter
	}
	return h.screens.DeleteSyncedBefore(ctx, time.Now().Add(-olderThan))
}

// Stats implements DataSource.
func (h *hybridSource) Stats(ctx context.Context) (models.StoreStats, error) {
	return h.screens.GetStats(ctx)
}
