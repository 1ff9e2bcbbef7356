package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-screen-sync/internal/logger"
	"github.com/MKhiriev/go-screen-sync/models"
)

// screenServerRepository is the PostgreSQL-backed implementation of
// [ServerScreenRepository]. It owns version assignment for the "screens"
// table: inserts start at version 1 and every accepted overwrite or
// tombstone bumps the version by one.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type screenServerRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewServerScreenRepository constructs a [ServerScreenRepository] backed by
// the provided database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewServerScreenRepository(db *DB, logger *logger.Logger) ServerScreenRepository {
	logger.Debug().Msg("creating server screen repository")
	return &screenServerRepository{
		db:     db,
		logger: logger,
	}
}

// UpsertScreen persists a pushed screen and returns the canonical database
// representation with the server-assigned version.
//
// The INSERT uses the [upsertServerScreen] query: a fresh screen is stored
// with version 1; an existing screen is overwritten only when baseVersion
// equals the stored version, in which case the version is incremented. The
// conditional update means a mismatched base version yields an empty result
// set, which is translated into [ErrVersionConflict] together with the
// current server copy so the caller can hand it back to the client.
func (r *screenServerRepository) UpsertScreen(ctx context.Context, screen models.Screen, baseVersion int64) (models.Screen, error) {
	log := logger.FromContext(ctx)

	var saved models.Screen
	row := r.db.QueryRowContext(ctx, upsertServerScreen,
		screen.ScreenID,
		screen.Name,
		[]byte(screen.Payload),
		screen.IsActive,
		baseVersion,
	)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*screenServerRepository.UpsertScreen").
			Str("screen_id", screen.ScreenID).
			Str("pg_code", postgresError(err)).
			Msg("error: upsert query failed")
		return models.Screen{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	err := row.Scan(
		&saved.ScreenID,
		&saved.Name,
		&saved.Version,
		&saved.Payload,
		&saved.CreatedAt,
		&saved.UpdatedAt,
		&saved.IsActive,
		&saved.IsDeleted,
	)
	if err == nil {
		return saved, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		log.Err(err).
			Str("func", "*screenServerRepository.UpsertScreen").
			Str("screen_id", screen.ScreenID).
			Msg("error: scanning error")
		return models.Screen{}, err
	}

	// Empty result set: the conditional update rejected the base version.
	current, getErr := r.GetScreen(ctx, screen.ScreenID)
	if getErr != nil {
		log.Err(getErr).
			Str("func", "*screenServerRepository.UpsertScreen").
			Str("screen_id", screen.ScreenID).
			Msg("error: fetching current copy after version mismatch")
		return models.Screen{}, getErr
	}

	log.Warn().
		Str("func", "*screenServerRepository.UpsertScreen").
		Str("screen_id", screen.ScreenID).
		Int64("base_version", baseVersion).
		Int64("current_version", current.Version).
		Msg("version conflict on push")
	return current, ErrVersionConflict
}

// GetScreen retrieves a single screen row, including tombstoned ones.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrScreenNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *screenServerRepository) GetScreen(ctx context.Context, screenID string) (models.Screen, error) {
	log := logger.FromContext(ctx)

	var screen models.Screen
	row := r.db.QueryRowContext(ctx, getServerScreen, screenID)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*screenServerRepository.GetScreen").
			Str("screen_id", screenID).
			Msg("error: select query failed")
		return models.Screen{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	err := row.Scan(
		&screen.ScreenID,
		&screen.Name,
		&screen.Version,
		&screen.Payload,
		&screen.CreatedAt,
		&screen.UpdatedAt,
		&screen.IsActive,
		&screen.IsDeleted,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Screen{}, ErrScreenNotFound
		}
		log.Err(err).
			Str("func", "*screenServerRepository.GetScreen").
			Str("screen_id", screenID).
			Msg("error: scanning error")
		return models.Screen{}, err
	}

	return screen, nil
}

// GetScreens lists screens ordered by recency. Pagination is applied when
// limit is positive; includeDeleted additionally returns tombstones so sync
// clients can observe deletions.
func (r *screenServerRepository) GetScreens(ctx context.Context, limit, offset int, includeDeleted bool) ([]models.Screen, error) {
	query, args, err := buildSelectScreensQuery(limit, offset, includeDeleted)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	return r.queryScreens(ctx, "*screenServerRepository.GetScreens", query, args...)
}

// SearchScreens performs a case-insensitive substring search over screen
// names, excluding tombstones.
func (r *screenServerRepository) SearchScreens(ctx context.Context, query string) ([]models.Screen, error) {
	sqlQuery, args, err := buildSearchScreensQuery(query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	return r.queryScreens(ctx, "*screenServerRepository.SearchScreens", sqlQuery, args...)
}

// CountScreens returns the number of live (non-tombstoned) screens.
func (r *screenServerRepository) CountScreens(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountScreensQuery()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).
			Str("func", "*screenServerRepository.CountScreens").
			Msg("error: scanning count")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return count, nil
}

// DeleteScreen tombstones a screen when baseVersion matches the stored
// version and returns the tombstone row with its bumped version.
//
// Error handling:
//   - Screen absent → [ErrScreenNotFound].
//   - Base version mismatch → current copy plus [ErrVersionConflict].
func (r *screenServerRepository) DeleteScreen(ctx context.Context, screenID string, baseVersion int64) (models.Screen, error) {
	log := logger.FromContext(ctx)

	var deleted models.Screen
	row := r.db.QueryRowContext(ctx, deleteServerScreen, screenID, baseVersion)

	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*screenServerRepository.DeleteScreen").
			Str("screen_id", screenID).
			Msg("error: delete query failed")
		return models.Screen{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	err := row.Scan(
		&deleted.ScreenID,
		&deleted.Name,
		&deleted.Version,
		&deleted.Payload,
		&deleted.CreatedAt,
		&deleted.UpdatedAt,
		&deleted.IsActive,
		&deleted.IsDeleted,
	)
	if err == nil {
		return deleted, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		log.Err(err).
			Str("func", "*screenServerRepository.DeleteScreen").
			Str("screen_id", screenID).
			Msg("error: scanning error")
		return models.Screen{}, err
	}

	// Zero rows: either the screen never existed or the base version lost.
	current, getErr := r.GetScreen(ctx, screenID)
	if getErr != nil {
		return models.Screen{}, getErr
	}

	log.Warn().
		Str("func", "*screenServerRepository.DeleteScreen").
		Str("screen_id", screenID).
		Int64("base_version", baseVersion).
		Int64("current_version", current.Version).
		Msg("version conflict on delete")
	return current, ErrVersionConflict
}

func (r *screenServerRepository) queryScreens(ctx context.Context, fn, query string, args ...any) ([]models.Screen, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", fn).
			Msg("error: select query failed")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer rows.Close()

	var screens []models.Screen

	for rows.Next() {
		var screen models.Screen

		scanErr := rows.Scan(
			&screen.ScreenID,
			&screen.Name,
			&screen.Version,
			&screen.Payload,
			&screen.CreatedAt,
			&screen.UpdatedAt,
			&screen.IsActive,
			&screen.IsDeleted,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", fn).
				Msg("error: scanning error")
			return nil, scanErr
		}

		screens = append(screens, screen)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", fn).
			Msg("error: rows iteration failed")
		return nil, fmt.Errorf("unexpected DB error: %w", rowsErr)
	}

	return screens, nil
}
