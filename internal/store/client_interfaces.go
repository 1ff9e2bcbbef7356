package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-screen-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// ScreenRepository is the low-level local replica of server-driven screens.
// Every screen row is paired with a sync record describing its relationship
// to the authoritative server copy.
type ScreenRepository interface {
	// SaveScreen upserts the screen together with its sync record in a
	// single transaction, so a stored screen always has sync state.
	SaveScreen(ctx context.Context, screen models.Screen, record models.SyncRecord) error
	GetScreen(ctx context.Context, screenID string) (models.Screen, error)
	GetAllScreens(ctx context.Context) ([]models.Screen, error)
	GetScreens(ctx context.Context, limit, offset int) ([]models.Screen, error)
	SearchScreens(ctx context.Context, query string) ([]models.Screen, error)
	QueryScreens(ctx context.Context, filter models.ScreenFilter) ([]models.Screen, error)
	CountScreens(ctx context.Context) (int64, error)

	GetSyncRecord(ctx context.Context, screenID string) (models.SyncRecord, error)
	GetAllSyncRecords(ctx context.Context) ([]models.SyncRecord, error)
	UpdateSyncRecord(ctx context.Context, record models.SyncRecord) error

	// MarkSynced commits a server acknowledgement: the screen's version is
	// set to the server-assigned one and its sync record flips to synced,
	// both in a single transaction.
	MarkSynced(ctx context.Context, screenID string, version int64, syncedAt time.Time) error

	// SoftDeleteScreen flags the screen as deleted locally while keeping the
	// row until the deletion is confirmed by the server.
	SoftDeleteScreen(ctx context.Context, screenID string) error

	// CommitDeleted removes the screen row for good after the server has
	// acknowledged the deletion. The sync record follows via cascade.
	CommitDeleted(ctx context.Context, screenID string) error

	GetStats(ctx context.Context) (models.StoreStats, error)

	// DeleteSyncedBefore hard-removes screens that are fully synced and were
	// last updated before the cutoff. Returns the number of removed rows.
	DeleteSyncedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// PendingRepository stores queued local changes awaiting transmission.
// At most one item exists per screen_id; merging consecutive edits into
// that single item is the queue service's job, the repository only
// persists whatever item it is told to keep.
type PendingRepository interface {
	UpsertItem(ctx context.Context, item models.PendingItem) error
	GetItem(ctx context.Context, screenID string) (models.PendingItem, error)
	GetAllItems(ctx context.Context) ([]models.PendingItem, error)

	// GetDrainable returns items whose next attempt time has passed and
	// whose screen is not parked in the failed state, ordered by enqueue
	// time so older changes transmit first.
	GetDrainable(ctx context.Context, now time.Time) ([]models.PendingItem, error)

	UpdateAttempt(ctx context.Context, screenID string, attemptCount int, nextAttemptAt time.Time) error

	// ResetAttempts rearms a parked item for an immediate retry.
	ResetAttempts(ctx context.Context, screenID string, now time.Time) error

	RemoveItem(ctx context.Context, screenID string) error
	CountItems(ctx context.Context) (int64, error)
}
