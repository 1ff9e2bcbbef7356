package datasource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-screen-sync/internal/adapter"
	"github.com/MKhiriev/go-screen-sync/internal/logger"
	"github.com/MKhiriev/go-screen-sync/internal/service"
	"github.com/MKhiriev/go-screen-sync/internal/utils"
	"github.com/MKhiriev/go-screen-sync/models"
)

// remoteSource serves every call straight from the backend and keeps no
// local state. Without connectivity it simply fails; deployments that
// need to survive outages use the hybrid source instead.
type remoteSource struct {
	server   adapter.ServerAdapter
	resolver service.Resolver
	bus      *Bus
	ids      *utils.UUIDGenerator

	clientID string

	mu        sync.Mutex
	connected bool
	watchStop context.CancelFunc
	watchDone chan struct{}

	logger *logger.Logger
}

// NewRemoteDataSource constructs a transport-only DataSource. clientID
// identifies the agent in session requests and is generated when empty.
func NewRemoteDataSource(server adapter.ServerAdapter, bus *Bus, clientID string, logger *logger.Logger) DataSource {
	if bus == nil {
		bus = NewBus()
	}
	if clientID == "" {
		clientID = utils.NewUUIDGenerator().Generate()
	}
	return &remoteSource{
		server:   server,
		resolver: service.NewLastWriteWinsResolver(),
		bus:      bus,
		ids:      utils.NewUUIDGenerator(),
		clientID: clientID,
		logger:   logger,
	}
}

// Connect implements DataSource.
func (r *remoteSource) Connect(ctx context.Context) error {
	log := logger.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.connected {
		return nil
	}

	if err := r.server.OpenSession(ctx, r.clientID); err != nil {
		return fmt.Errorf("open session: %w", err)
	}

	watchCtx, stop := context.WithCancel(context.Background())
	feed, err := r.server.WatchScreens(watchCtx)
	if err != nil {
		stop()
		log.Warn().Err(err).Str("func", "*remoteSource.Connect").Msg("change feed unavailable, continuing without live updates")
	} else {
		done := make(chan struct{})
		go r.relayFeed(feed, done)
		r.watchStop, r.watchDone = stop, done
	}

	r.connected = true
	return nil
}

// Disconnect implements DataSource.
func (r *remoteSource) Disconnect(ctx context.Context) error {
	r.mu.Lock()
	stop, done := r.watchStop, r.watchDone
	r.watchStop, r.watchDone = nil, nil
	r.connected = false
	r.mu.Unlock()

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
func (r *remoteSource) IsConnected() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.connected
}

// relayFeed republishes server events to local subscribers. With no
// local store there is nothing to fold them into.
func (r *remoteSource) relayFeed(feed <-chan models.ChangeEvent, done chan struct{}) {
	defer close(done)

	for event := range feed {
		r.bus.Publish(event)
	}
	r.logger.Debug().Str("func", "*remoteSource.relayFeed").Msg("change feed closed")
}

// FetchScreen implements DataSource.
func (r *remoteSource) FetchScreen(ctx context.Context, screenID string) (models.Screen, error) {
	if screenID == "" {
		return models.Screen{}, service.ErrInvalidDataProvided
	}
	return r.server.GetScreen(ctx, screenID)
}

// FetchScreens implements DataSource.
func (r *remoteSource) FetchScreens(ctx context.Context, limit, offset int) ([]models.Screen, error) {
	if limit < 0 || offset < 0 {
		return nil, service.ErrInvalidDataProvided
	}
	return r.server.ListScreens(ctx, limit, offset)
}

// SaveScreen implements DataSource. The write goes straight to the
// server; a version conflict is surfaced to the caller, who can hand it
// to ResolveConflict.
func (r *remoteSource) SaveScreen(ctx context.Context, screen models.Screen) (models.Screen, error) {
	if screen.ScreenID == "" {
		screen.ScreenID = r.ids.Generate()
	}

	op := models.OpUpdate
	if screen.Version == 0 {
		op = models.OpCreate
	}

	resp, err := r.server.PushScreen(ctx, models.PushRequest{
		Screen:      screen,
		Operation:   op,
		BaseVersion: screen.Version,
		ChangeID:    r.ids.Generate(),
	})
	if err != nil {
		return models.Screen{}, fmt.Errorf("push screen: %w", err)
	}

	now := time.Now()
	screen.Version = resp.Version
	screen.UpdatedAt = now
	r.bus.Publish(models.ChangeEvent{ScreenID: screen.ScreenID, Kind: models.EventSaved, Screen: &screen, OccurredAt: now})

	return screen, nil
}

// DeleteScreen implements DataSource. The current server version is
// looked up first so the delete carries a fresh base; a screen the
// server no longer holds counts as already deleted.
func (r *remoteSource) DeleteScreen(ctx context.Context, screenID string) error {
	if screenID == "" {
		return service.ErrInvalidDataProvided
	}

	current, err := r.server.GetScreen(ctx, screenID)
	if errors.Is(err, adapter.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load current screen: %w", err)
	}

	_, err = r.server.PushScreen(ctx, models.PushRequest{
		Screen:      models.Screen{ScreenID: screenID},
		Operation:   models.OpDelete,
		BaseVersion: current.Version,
		ChangeID:    r.ids.Generate(),
	})
	if err != nil && !errors.Is(err, adapter.ErrNotFound) {
		return fmt.Errorf("push deletion: %w", err)
	}

	r.bus.Publish(models.ChangeEvent{ScreenID: screenID, Kind: models.EventDeleted, OccurredAt: time.Now()})

	return nil
}

// SearchScreens implements DataSource.
func (r *remoteSource) SearchScreens(ctx context.Context, query string) ([]models.Screen, error) {
	if query == "" {
		return nil, service.ErrInvalidDataProvided
	}
	return r.server.SearchScreens(ctx, query)
}

// ScreenCount implements DataSource.
func (r *remoteSource) ScreenCount(ctx context.Context) (int64, error) {
	return r.server.CountScreens(ctx)
}

// SubscribeToScreen implements DataSource.
func (r *remoteSource) SubscribeToScreen(ctx context.Context, screenID string) (<-chan models.ChangeEvent, error) {
	if screenID == "" {
		return nil, service.ErrInvalidDataProvided
	}
	return r.bus.Subscribe(ctx, screenID), nil
}

// SyncData implements DataSource. Items are pushed one by one; with no
// queue behind this source there are no retries and no backoff, each
// item simply succeeds or fails on the spot.
func (r *remoteSource) SyncData(ctx context.Context, items []models.PendingItem) (models.SyncResult, error) {
	var result models.SyncResult

	for _, item := range items {
		req := models.PushRequest{
			Operation:   item.Operation,
			BaseVersion: item.BaseVersion,
			ChangeID:    item.ChangeID,
		}
		if item.Operation == models.OpDelete {
			req.Screen = models.Screen{ScreenID: item.ScreenID}
		} else if err := json.Unmarshal(item.Snapshot, &req.Screen); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, models.SyncError{ScreenID: item.ScreenID, Operation: item.Operation, Message: fmt.Sprintf("decode snapshot: %s", err)})
			continue
		}

		_, err := r.server.PushScreen(ctx, req)
		if err != nil && !(item.Operation == models.OpDelete && errors.Is(err, adapter.ErrNotFound)) {
			result.Failed++
			result.Errors = append(result.Errors, models.SyncError{ScreenID: item.ScreenID, Operation: item.Operation, Message: err.Error()})
			continue
		}
		result.Synced++
	}

	return result, nil
}

// PendingItems implements DataSource. Nothing is ever queued here.
func (r *remoteSource) PendingItems(_ context.Context) ([]models.PendingItem, error) {
	return nil, nil
}

// ResolveConflict implements DataSource. When the local side wins it is
// pushed onto the remote version; when the remote side wins the server
// already holds the truth and there is nothing to do.
func (r *remoteSource) ResolveConflict(ctx context.Context, conflict models.ConflictCase) (models.ConflictResolution, error) {
	screenID := conflict.Local.ScreenID
	if screenID == "" {
		screenID = conflict.Remote.ScreenID
	}
	if screenID == "" {
		return models.ConflictResolution{}, service.ErrInvalidDataProvided
	}

	resolution, err := r.resolver.Resolve(ctx, conflict)
	if err != nil {
		return models.ConflictResolution{}, fmt.Errorf("%w: %s", service.ErrUnresolvedConflict, err)
	}

	var winner models.Screen
	switch resolution.Kind {
	case models.UseRemote:
		return resolution, nil
	case models.UseLocal:
		winner = conflict.Local
	case models.UseMerged:
		if resolution.Merged == nil {
			return models.ConflictResolution{}, fmt.Errorf("%w: merged resolution carries no screen", service.ErrUnresolvedConflict)
		}
		winner = resolution.Merged.Clone()
	default:
		return models.ConflictResolution{}, fmt.Errorf("%w: unknown resolution %s", service.ErrUnresolvedConflict, resolution.Kind)
	}
	winner.ScreenID = screenID

	if _, err := r.server.PushScreen(ctx, models.PushRequest{
		Screen:      winner,
		Operation:   models.OpUpdate,
		BaseVersion: conflict.Remote.Version,
		ChangeID:    r.ids.Generate(),
	}); err != nil {
		return models.ConflictResolution{}, fmt.Errorf("push resolved screen: %w", err)
	}

	r.bus.Publish(models.ChangeEvent{ScreenID: screenID, Kind: models.EventSaved, Screen: &winner, OccurredAt: time.Now()})

	return resolution, nil
}

// RetryFailed implements DataSource.
func (r *remoteSource) RetryFailed(_ context.Context) (int, error) {
	return 0, nil
}

// ClearOldScreens implements DataSource. There is no local store to
// clear.
func (r *remoteSource) ClearOldScreens(_ context.Context, _ time.Duration) (int64, error) {
	return 0, ErrNotSupported
}

// Stats implements DataSource.
func (r *remoteSource) Stats(_ context.Context) (models.StoreStats, error) {
	return models.StoreStats{}, ErrNotSupported
}
