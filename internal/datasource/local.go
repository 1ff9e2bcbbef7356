package datasource

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-screen-sync/internal/logger"
	"github.com/MKhiriev/go-screen-sync/internal/service"
	"github.com/MKhiriev/go-screen-sync/internal/store"
	"github.com/MKhiriev/go-screen-sync/internal/utils"
	"github.com/MKhiriev/go-screen-sync/models"
)

// localSource serves everything from the local document store and never
// talks to a backend. It is its own authority: rows are stored as synced
// because no remote reconciliation will ever follow, and the sync
// capabilities report empty results instead of errors so callers can
// treat a local-only deployment like a hybrid one that simply has
// nothing to transmit.
type localSource struct {
	screens store.ScreenRepository
	bus     *Bus
	ids     *utils.UUIDGenerator

	clearAfter time.Duration

	mu        sync.Mutex
	connected bool

	logger *logger.Logger
}

// NewLocalDataSource constructs a store-only DataSource. A nil bus gets
// replaced with a fresh one so subscriptions always work.
func NewLocalDataSource(screens store.ScreenRepository, bus *Bus, logger *logger.Logger) DataSource {
	if bus == nil {
		bus = NewBus()
	}
	return &localSource{
		screens:    screens,
		bus:        bus,
		ids:        utils.NewUUIDGenerator(),
		clearAfter: defaultClearAfter,
		logger:     logger,
	}
}

// Connect implements DataSource. There is nothing to connect to; the
// flag only keeps the lifecycle contract observable.
func (l *localSource) Connect(_ context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.connected = true
	return nil
}

// Disconnect implements DataSource.
func (l *localSource) Disconnect(_ context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.connected = false
	return nil
}

// IsConnected implements DataSource.
func (l *localSource) IsConnected() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.connected
}

// FetchScreen implements DataSource.
func (l *localSource) FetchScreen(ctx context.Context, screenID string) (models.Screen, error) {
	if screenID == "" {
		return models.Screen{}, service.ErrInvalidDataProvided
	}
	return l.screens.GetScreen(ctx, screenID)
}

// FetchScreens implements DataSource.
func (l *localSource) FetchScreens(ctx context.Context, limit, offset int) ([]models.Screen, error) {
	if limit < 0 || offset < 0 {
		return nil, service.ErrInvalidDataProvided
	}
	return l.screens.GetScreens(ctx, limit, offset)
}

// SaveScreen implements DataSource.
func (l *localSource) SaveScreen(ctx context.Context, screen models.Screen) (models.Screen, error) {
	log := logger.FromContext(ctx)

	if screen.ScreenID == "" {
		screen.ScreenID = l.ids.Generate()
	}

	now := time.Now()
	existing, err := l.screens.GetScreen(ctx, screen.ScreenID)
	switch {
	case errors.Is(err, store.ErrScreenNotFound):
		screen.CreatedAt = now
	case err != nil:
		return models.Screen{}, fmt.Errorf("load current screen: %w", err)
	default:
		if screen.CreatedAt.IsZero() {
			screen.CreatedAt = existing.CreatedAt
		}
	}
	screen.UpdatedAt = now

	record := models.SyncRecord{ScreenID: screen.ScreenID, Status: models.StatusSynced, LastSyncedAt: &now}
	if err := l.screens.SaveScreen(ctx, screen, record); err != nil {
		log.Err(err).Str("func", "*localSource.SaveScreen").Str("screen_id", screen.ScreenID).Msg("screen save failed")
		return models.Screen{}, fmt.Errorf("save screen: %w", err)
	}

	l.bus.Publish(models.ChangeEvent{ScreenID: screen.ScreenID, Kind: models.EventSaved, Screen: &screen, OccurredAt: now})

	return screen, nil
}

// DeleteScreen implements DataSource. Local deletions are final: there
// is no server to confirm them, so the row is removed outright instead
// of being tombstoned.
func (l *localSource) DeleteScreen(ctx context.Context, screenID string) error {
	if screenID == "" {
		return service.ErrInvalidDataProvided
	}

	if _, err := l.screens.GetScreen(ctx, screenID); err != nil {
		return err
	}
	if err := l.screens.CommitDeleted(ctx, screenID); err != nil {
		return fmt.Errorf("delete screen: %w", err)
	}

	l.bus.Publish(models.ChangeEvent{ScreenID: screenID, Kind: models.EventDeleted, OccurredAt: time.Now()})

	return nil
}

// SearchScreens implements DataSource.
func (l *localSource) SearchScreens(ctx context.Context, query string) ([]models.Screen, error) {
	if query == "" {
		return nil, service.ErrInvalidDataProvided
	}
	return l.screens.SearchScreens(ctx, query)
}

// ScreenCount implements DataSource.
func (l *localSource) ScreenCount(ctx context.Context) (int64, error) {
	return l.screens.CountScreens(ctx)
}

// SubscribeToScreen implements DataSource.
func (l *localSource) SubscribeToScreen(ctx context.Context, screenID string) (<-chan models.ChangeEvent, error) {
	if screenID == "" {
		return nil, service.ErrInvalidDataProvided
	}
	return l.bus.Subscribe(ctx, screenID), nil
}

// SyncData implements DataSource. A local-only source has no backend,
// so there is never anything to synchronize.
func (l *localSource) SyncData(_ context.Context, _ []models.PendingItem) (models.SyncResult, error) {
	return models.SyncResult{}, nil
}

// PendingItems implements DataSource.
func (l *localSource) PendingItems(_ context.Context) ([]models.PendingItem, error) {
	return nil, nil
}

// ResolveConflict implements DataSource. The winning copy is stored as
// the new local truth; with no backend involved, that is all a
// resolution can mean here.
func (l *localSource) ResolveConflict(ctx context.Context, conflict models.ConflictCase) (models.ConflictResolution, error) {
	screenID := conflict.Local.ScreenID
	if screenID == "" {
		screenID = conflict.Remote.ScreenID
	}
	if screenID == "" {
		return models.ConflictResolution{}, service.ErrInvalidDataProvided
	}

	resolution, err := service.NewLastWriteWinsResolver().Resolve(ctx, conflict)
	if err != nil {
		return models.ConflictResolution{}, fmt.Errorf("%w: %s", service.ErrUnresolvedConflict, err)
	}

	winner := conflict.Local
	switch resolution.Kind {
	case models.UseRemote:
		winner = conflict.Remote
	case models.UseMerged:
		if resolution.Merged == nil {
			return models.ConflictResolution{}, fmt.Errorf("%w: merged resolution carries no screen", service.ErrUnresolvedConflict)
		}
		winner = resolution.Merged.Clone()
	}
	winner.ScreenID = screenID

	if _, err := l.SaveScreen(ctx, winner); err != nil {
		return models.ConflictResolution{}, err
	}

	return resolution, nil
}

// RetryFailed implements DataSource.
func (l *localSource) RetryFailed(_ context.Context) (int, error) {
	return 0, nil
}

// ClearOldScreens implements DataSource.
func (l *localSource) ClearOldScreens(ctx context.Context, olderThan time.Duration) (int64, error) {
	if olderThan <= 0 {
		olderThan = l.clearAfter
	}
	return l.screens.DeleteSyncedBefore(ctx, time.Now().Add(-olderThan))
}

// Stats implements DataSource.
func (l *localSource) Stats(ctx context.Context) (models.StoreStats, error) {
	return l.screens.GetStats(ctx)
}
