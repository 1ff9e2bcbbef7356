package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-screen-sync/internal/logger"
	"github.com/MKhiriev/go-screen-sync/models"
)

type pendingRepository struct {
	*DB
	logger *logger.Logger
}

func NewPendingRepository(db *DB, logger *logger.Logger) PendingRepository {
	return &pendingRepository{
		DB:     db,
		logger: logger,
	}
}

func (p *pendingRepository) UpsertItem(ctx context.Context, item models.PendingItem) error {
	log := logger.FromContext(ctx)

	_, err := p.DB.ExecContext(ctx, upsertPendingItem,
		item.ScreenID,
		item.Operation.String(),
		[]byte(item.Snapshot),
		item.BaseVersion,
		item.ChangeID,
		item.EnqueuedAt,
		item.AttemptCount,
		item.NextAttemptAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "pendingRepository.UpsertItem").
			Str("screen_id", item.ScreenID).
			Str("operation", item.Operation.String()).
			Msg("failed to execute upsert for pending item")
		return fmt.Errorf("failed to save pending item (screen_id=%s): %w", item.ScreenID, err)
	}

	return nil
}

func (p *pendingRepository) GetItem(ctx context.Context, screenID string) (models.PendingItem, error) {
	log := logger.FromContext(ctx)

	row := p.DB.QueryRowContext(ctx, getPendingItem, screenID)
	if row.Err() != nil {
		err := row.Err()
		log.Err(err).
			Str("func", "pendingRepository.GetItem").
			Str("screen_id", screenID).
			Msg("failed to execute query for getting pending item")
		return models.PendingItem{}, fmt.Errorf("failed to query pending item: %w", err)
	}

	item, scanErr := scanPendingItem(row)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.PendingItem{}, ErrPendingItemNotFound
		}
		log.Err(scanErr).
			Str("func", "pendingRepository.GetItem").
			Str("screen_id", screenID).
			Msg("failed to scan pending item row")
		return models.PendingItem{}, fmt.Errorf("failed to scan pending item row: %w", scanErr)
	}

	return item, nil
}

func (p *pendingRepository) GetAllItems(ctx context.Context) ([]models.PendingItem, error) {
	return p.queryPendingRows(ctx, "pendingRepository.GetAllItems", getAllPendingItems)
}

func (p *pendingRepository) GetDrainable(ctx context.Context, now time.Time) ([]models.PendingItem, error) {
	return p.queryPendingRows(ctx, "pendingRepository.GetDrainable", getDrainablePendingItems, now)
}

func (p *pendingRepository) queryPendingRows(ctx context.Context, fn, query string, args ...any) ([]models.PendingItem, error) {
	log := logger.FromContext(ctx)

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", fn).
			Msg("failed to execute query for getting pending items")
		return nil, fmt.Errorf("failed to query pending items: %w", err)
	}
	defer rows.Close()

	var items []models.PendingItem

	for rows.Next() {
		item, scanErr := scanPendingItem(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", fn).
				Msg("failed to scan pending item row")
			return nil, fmt.Errorf("failed to scan pending item row: %w", scanErr)
		}

		items = append(items, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", fn).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating pending item rows: %w", rowsErr)
	}

	return items, nil
}

func (p *pendingRepository) UpdateAttempt(ctx context.Context, screenID string, attemptCount int, nextAttemptAt time.Time) error {
	log := logger.FromContext(ctx)

	result, err := p.DB.ExecContext(ctx, updatePendingAttempt, attemptCount, nextAttemptAt, screenID)
	if err != nil {
		log.Err(err).
			Str("func", "pendingRepository.UpdateAttempt").
			Str("screen_id", screenID).
			Int("attempt_count", attemptCount).
			Msg("failed to execute attempt update for pending item")
		return fmt.Errorf("failed to update pending item attempt (screen_id=%s): %w", screenID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "pendingRepository.UpdateAttempt").
			Str("screen_id", screenID).
			Msg("failed to get rows affected after attempt update")
		return fmt.Errorf("failed to get rows affected (screen_id=%s): %w", screenID, err)
	}
	if rowsAffected == 0 {
		return ErrPendingItemNotFound
	}

	return nil
}

func (p *pendingRepository) ResetAttempts(ctx context.Context, screenID string, now time.Time) error {
	log := logger.FromContext(ctx)

	result, err := p.DB.ExecContext(ctx, resetPendingAttempts, now, screenID)
	if err != nil {
		log.Err(err).
			Str("func", "pendingRepository.ResetAttempts").
			Str("screen_id", screenID).
			Msg("failed to execute attempt reset for pending item")
		return fmt.Errorf("failed to reset pending item attempts (screen_id=%s): %w", screenID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "pendingRepository.ResetAttempts").
			Str("screen_id", screenID).
			Msg("failed to get rows affected after attempt reset")
		return fmt.Errorf("failed to get rows affected (screen_id=%s): %w", screenID, err)
	}
	if rowsAffected == 0 {
		return ErrPendingItemNotFound
	}

	return nil
}

func (p *pendingRepository) RemoveItem(ctx context.Context, screenID string) error {
	log := logger.FromContext(ctx)

	_, err := p.DB.ExecContext(ctx, deletePendingItem, screenID)
	if err != nil {
		log.Err(err).
			Str("func", "pendingRepository.RemoveItem").
			Str("screen_id", screenID).
			Msg("failed to execute delete for pending item")
		return fmt.Errorf("failed to delete pending item (screen_id=%s): %w", screenID, err)
	}

	return nil
}

func (p *pendingRepository) CountItems(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	var count int64
	row := p.DB.QueryRowContext(ctx, countPendingItems)
	if err := row.Scan(&count); err != nil {
		log.Err(err).
			Str("func", "pendingRepository.CountItems").
			Msg("failed to scan pending item count")
		return 0, fmt.Errorf("failed to count pending items: %w", err)
	}

	return count, nil
}

func scanPendingItem(row rowScanner) (models.PendingItem, error) {
	var (
		item         models.PendingItem
		rawOperation string
		snapshot     []byte
	)

	if err := row.Scan(
		&item.ScreenID,
		&rawOperation,
		&snapshot,
		&item.BaseVersion,
		&item.ChangeID,
		&item.EnqueuedAt,
		&item.AttemptCount,
		&item.NextAttemptAt,
	); err != nil {
		return models.PendingItem{}, err
	}

	operation, err := models.ParseOperationKind(rawOperation)
	if err != nil {
		return models.PendingItem{}, fmt.Errorf("failed to parse stored operation: %w", err)
	}
	item.Operation = operation

	if len(snapshot) > 0 {
		item.Snapshot = snapshot
	}

	return item, nil
}
