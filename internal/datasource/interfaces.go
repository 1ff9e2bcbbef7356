// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package datasource unifies every way the application can obtain and
// mutate screens behind one capability contract.
//
// The primary abstraction is [DataSource]. Callers fetch, save, delete,
// search, and subscribe through it without knowing whether the data
// originates in the local replica, the remote backend, or both. Three
// implementations ship with the package: [NewLocalDataSource] (store
// only, an offline cache that is its own authority),
// [NewRemoteDataSource] (transport only, no local state), and
// [NewHybridDataSource] (offline-first: local store plus pending queue
// plus sync orchestrator plus live change feed).
//
// Exactly one implementation is active per process. [Provider] is the
// single-slot registry that holds it; there is no package-level
// default, the provider travels through explicit wiring.
package datasource

import (
	"context"
	"time"

	"github.com/MKhiriev/go-screen-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/datasource_mock.go -package=mock

// DataSource is the capability set the rest of the application consumes.
// Implementations differ in where the data lives; the contract is the
// same for all of them.
type DataSource interface {
	// Connect establishes whatever the implementation needs to serve
	// remote-backed calls: a session, a change feed. Calling Connect on
	// an already connected source is a no-op.
	Connect(ctx context.Context) error

	// Disconnect tears the connection down again and blocks until the
	// background feed, if any, has terminated or ctx expires.
	Disconnect(ctx context.Context) error

	// IsConnected reports whether Connect has succeeded and Disconnect
	// has not been called since.
	IsConnected() bool

	// FetchScreen returns one screen by id. A missing screen is reported
	// as an explicit not-found error, never as an empty screen.
	FetchScreen(ctx context.Context, screenID string) (models.Screen, error)

	// FetchScreens returns one page of screens. limit <= 0 means no
	// limit.
	FetchScreens(ctx context.Context, limit, offset int) ([]models.Screen, error)

	// SaveScreen upserts the screen and returns the stored copy. A
	// screen without an id is assigned a fresh one.
	SaveScreen(ctx context.Context, screen models.Screen) (models.Screen, error)

	// DeleteScreen removes the screen.
	DeleteScreen(ctx context.Context, screenID string) error

	// SearchScreens returns screens whose name contains the query.
	SearchScreens(ctx context.Context, query string) ([]models.Screen, error)

	// ScreenCount returns the number of screens the source holds.
	ScreenCount(ctx context.Context) (int64, error)

	// SubscribeToScreen returns a live stream of change events for one
	// screen. The stream ends when ctx is cancelled; other subscribers
	// are unaffected. Subscribers that fall behind lose events rather
	// than blocking the publisher.
	SubscribeToScreen(ctx context.Context, screenID string) (<-chan models.ChangeEvent, error)

	// SyncData synchronizes the given pending items with the backend.
	// An empty item list requests a full sync pass over everything
	// currently drainable.
	SyncData(ctx context.Context, items []models.PendingItem) (models.SyncResult, error)

	// PendingItems returns the local mutations still awaiting
	// transmission, oldest first.
	PendingItems(ctx context.Context) ([]models.PendingItem, error)

	// ResolveConflict settles a version conflict using the source's
	// configured policy, applies the outcome, and returns the decision
	// that was applied.
	ResolveConflict(ctx context.Context, conflict models.ConflictCase) (models.ConflictResolution, error)

	// RetryFailed returns every failed screen to the pending state and
	// reports how many were re-queued.
	RetryFailed(ctx context.Context) (int, error)

	// ClearOldScreens removes fully synced screens whose last update is
	// older than olderThan. Screens with pending, failed, or conflicted
	// state are never touched. olderThan <= 0 selects the source's
	// default retention.
	ClearOldScreens(ctx context.Context, olderThan time.Duration) (int64, error)

	// Stats describes the source's current contents.
	Stats(ctx context.Context) (models.StoreStats, error)
}
