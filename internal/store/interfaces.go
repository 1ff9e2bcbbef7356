package store

import (
	"context"

	"github.com/MKhiriev/go-screen-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ServerScreenRepository is the authoritative screen store behind the HTTP
// API. Versions are assigned here: every accepted write bumps the screen
// version by one, and writes whose base version does not match the stored
// version fail with [ErrVersionConflict].
type ServerScreenRepository interface {
	// UpsertScreen creates the screen (version 1) or, when baseVersion
	// matches the stored version, overwrites it with version+1. The
	// persisted row is returned. On a version mismatch the current server
	// copy is returned together with [ErrVersionConflict].
	UpsertScreen(ctx context.Context, screen models.Screen, baseVersion int64) (models.Screen, error)

	GetScreen(ctx context.Context, screenID string) (models.Screen, error)
	GetScreens(ctx context.Context, limit, offset int, includeDeleted bool) ([]models.Screen, error)
	SearchScreens(ctx context.Context, query string) ([]models.Screen, error)
	CountScreens(ctx context.Context) (int64, error)

	// DeleteScreen tombstones the screen so other clients can observe the
	// deletion on their next pull. The same base-version rule applies as
	// for [ServerScreenRepository.UpsertScreen].
	DeleteScreen(ctx context.Context, screenID string, baseVersion int64) (models.Screen, error)
}
