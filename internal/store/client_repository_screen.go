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

type screenRepository struct {
	*DB
	logger *logger.Logger
}

func NewScreenRepository(db *DB, logger *logger.Logger) ScreenRepository {
	return &screenRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *screenRepository) SaveScreen(ctx context.Context, screen models.Screen, record models.SyncRecord) error {
	log := logger.FromContext(ctx)

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "screenRepository.SaveScreen").
			Str("screen_id", screen.ScreenID).
			Msg("failed to begin transaction for saving screen")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, upsertScreen,
		screen.ScreenID,
		screen.Name,
		screen.Version,
		[]byte(screen.Payload),
		screen.CreatedAt,
		screen.UpdatedAt,
		screen.IsActive,
		screen.IsDeleted,
	)
	if err != nil {
		log.Err(err).
			Str("func", "screenRepository.SaveScreen").
			Str("screen_id", screen.ScreenID).
			Msg("failed to execute upsert for screen")
		return fmt.Errorf("failed to save screen (screen_id=%s): %w", screen.ScreenID, err)
	}

	_, err = tx.ExecContext(ctx, upsertSyncRecord,
		record.ScreenID,
		record.Status.String(),
		record.LastSyncedAt,
		record.RetryCount,
		record.LastError,
	)
	if err != nil {
		log.Err(err).
			Str("func", "screenRepository.SaveScreen").
			Str("screen_id", screen.ScreenID).
			Msg("failed to execute upsert for sync record")
		return fmt.Errorf("failed to save sync record (screen_id=%s): %w", record.ScreenID, err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "screenRepository.SaveScreen").
			Str("screen_id", screen.ScreenID).
			Msg("failed to commit transaction for saving screen")
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (s *screenRepository) GetScreen(ctx context.Context, screenID string) (models.Screen, error) {
	log := logger.FromContext(ctx)

	var screen models.Screen
	row := s.DB.QueryRowContext(ctx, getScreen, screenID)
	if row.Err() != nil {
		err := row.Err()
		log.Err(err).
			Str("func", "screenRepository.GetScreen").
			Str("screen_id", screenID).
			Msg("failed to execute query for getting requested screen")
		return models.Screen{}, fmt.Errorf("failed to query requested screen: %w", err)
	}

	scanErr := row.Scan(
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
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.Screen{}, ErrScreenNotFound
		}
		log.Err(scanErr).
			Str("func", "screenRepository.GetScreen").
			Str("screen_id", screenID).
			Msg("failed to scan screen row")
		return models.Screen{}, fmt.Errorf("failed to scan screen row: %w", scanErr)
	}

	return screen, nil
}

func (s *screenRepository) GetAllScreens(ctx context.Context) ([]models.Screen, error) {
	return s.queryScreenRows(ctx, "screenRepository.GetAllScreens", getAllScreens)
}

func (s *screenRepository) GetScreens(ctx context.Context, limit, offset int) ([]models.Screen, error) {
	return s.queryScreenRows(ctx, "screenRepository.GetScreens", getScreensPage, limit, offset)
}

func (s *screenRepository) SearchScreens(ctx context.Context, query string) ([]models.Screen, error) {
	return s.queryScreenRows(ctx, "screenRepository.SearchScreens", searchScreens, query)
}

func (s *screenRepository) QueryScreens(ctx context.Context, filter models.ScreenFilter) ([]models.Screen, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildScreenFilterQuery(filter)
	if err != nil {
		log.Err(err).
			Str("func", "screenRepository.QueryScreens").
			Msg("failed to build screen filter query")
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	return s.queryScreenRows(ctx, "screenRepository.QueryScreens", query, args...)
}

// queryScreenRows runs a SELECT over the screens table and scans the full
// column set shared by all screen queries.
func (s *screenRepository) queryScreenRows(ctx context.Context, fn, query string, args ...any) ([]models.Screen, error) {
	log := logger.FromContext(ctx)

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", fn).
			Msg("failed to execute query for getting screens")
		return nil, fmt.Errorf("failed to query screens: %w", err)
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
				Msg("failed to scan screen row")
			return nil, fmt.Errorf("failed to scan screen row: %w", scanErr)
		}

		screens = append(screens, screen)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", fn).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating screen rows: %w", rowsErr)
	}

	return screens, nil
}

func (s *screenRepository) CountScreens(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	var count int64
	row := s.DB.QueryRowContext(ctx, countScreens)
	if err := row.Scan(&count); err != nil {
		log.Err(err).
			Str("func", "screenRepository.CountScreens").
			Msg("failed to scan screen count")
		return 0, fmt.Errorf("failed to count screens: %w", err)
	}

	return count, nil
}

func (s *screenRepository) GetSyncRecord(ctx context.Context, screenID string) (models.SyncRecord, error) {
	log := logger.FromContext(ctx)

	row := s.DB.QueryRowContext(ctx, getSyncRecord, screenID)
	if row.Err() != nil {
		err := row.Err()
		log.Err(err).
			Str("func", "screenRepository.GetSyncRecord").
			Str("screen_id", screenID).
			Msg("failed to execute query for getting sync record")
		return models.SyncRecord{}, fmt.Errorf("failed to query sync record: %w", err)
	}

	record, scanErr := scanSyncRecord(row)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.SyncRecord{}, ErrSyncRecordNotFound
		}
		log.Err(scanErr).
			Str("func", "screenRepository.GetSyncRecord").
			Str("screen_id", screenID).
			Msg("failed to scan sync record row")
		return models.SyncRecord{}, fmt.Errorf("failed to scan sync record row: %w", scanErr)
	}

	return record, nil
}

func (s *screenRepository) GetAllSyncRecords(ctx context.Context) ([]models.SyncRecord, error) {
	log := logger.FromContext(ctx)

	rows, err := s.DB.QueryContext(ctx, getAllSyncRecords)
	if err != nil {
		log.Err(err).
			Str("func", "screenRepository.GetAllSyncRecords").
			Msg("failed to execute query for getting all sync records")
		return nil, fmt.Errorf("failed to query all sync records: %w", err)
	}
	defer rows.Close()

	var records []models.SyncRecord

	for rows.Next() {
		record, scanErr := scanSyncRecord(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "screenRepository.GetAllSyncRecords").
				Msg("failed to scan sync record row")
			return nil, fmt.Errorf("failed to scan sync record row: %w", scanErr)
		}

		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "screenRepository.GetAllSyncRecords").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating sync record rows: %w", rowsErr)
	}

	return records, nil
}

func (s *screenRepository) UpdateSyncRecord(ctx context.Context, record models.SyncRecord) error {
	log := logger.FromContext(ctx)

	result, err := s.DB.ExecContext(ctx, updateSyncRecord,
		record.Status.String(),
		record.LastSyncedAt,
		record.RetryCount,
		record.LastError,
		record.ScreenID,
	)
	if err != nil {
		log.Err(err).
			Str("func", "screenRepository.UpdateSyncRecord").
			Str("screen_id", record.ScreenID).
			Msg("failed to execute update for sync record")
		return fmt.Errorf("failed to update sync record (screen_id=%s): %w", record.ScreenID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "screenRepository.UpdateSyncRecord").
			Str("screen_id", record.ScreenID).
			Msg("failed to get rows affected after sync record update")
		return fmt.Errorf("failed to get rows affected (screen_id=%s): %w", record.ScreenID, err)
	}

	if rowsAffected == 0 {
		log.Warn().
			Str("func", "screenRepository.UpdateSyncRecord").
			Str("screen_id", record.ScreenID).
			Msg("no rows affected during sync record update: record not found")
		return ErrSyncRecordNotFound
	}

	return nil
}

func (s *screenRepository) MarkSynced(ctx context.Context, screenID string, version int64, syncedAt time.Time) error {
	log := logger.FromContext(ctx)

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "screenRepository.MarkSynced").
			Str("screen_id", screenID).
			Msg("failed to begin transaction for marking screen synced")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, markSyncedScreen, version, screenID)
	if err != nil {
		log.Err(err).
			Str("func", "screenRepository.MarkSynced").
			Str("screen_id", screenID).
			Msg("failed to execute version update for screen")
		return fmt.Errorf("failed to mark screen synced (screen_id=%s): %w", screenID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "screenRepository.MarkSynced").
			Str("screen_id", screenID).
			Msg("failed to get rows affected after version update")
		return fmt.Errorf("failed to get rows affected (screen_id=%s): %w", screenID, err)
	}
	if rowsAffected == 0 {
		return ErrScreenNotFound
	}

	if _, err := tx.ExecContext(ctx, markSyncedRecord, syncedAt, screenID); err != nil {
		log.Err(err).
			Str("func", "screenRepository.MarkSynced").
			Str("screen_id", screenID).
			Msg("failed to execute sync record update")
		return fmt.Errorf("failed to mark sync record synced (screen_id=%s): %w", screenID, err)
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "screenRepository.MarkSynced").
			Str("screen_id", screenID).
			Msg("failed to commit transaction for marking screen synced")
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (s *screenRepository) SoftDeleteScreen(ctx context.Context, screenID string) error {
	log := logger.FromContext(ctx)

	result, err := s.DB.ExecContext(ctx, softDeleteScreen, screenID)
	if err != nil {
		log.Err(err).
			Str("func", "screenRepository.SoftDeleteScreen").
			Str("screen_id", screenID).
			Msg("failed to execute soft delete for screen")
		return fmt.Errorf("failed to soft delete screen (screen_id=%s): %w", screenID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "screenRepository.SoftDeleteScreen").
			Str("screen_id", screenID).
			Msg("failed to get rows affected after soft delete")
		return fmt.Errorf("failed to get rows affected (screen_id=%s): %w", screenID, err)
	}
	if rowsAffected == 0 {
		return ErrScreenNotFound
	}

	return nil
}

func (s *screenRepository) CommitDeleted(ctx context.Context, screenID string) error {
	log := logger.FromContext(ctx)

	_, err := s.DB.ExecContext(ctx, hardDeleteScreen, screenID)
	if err != nil {
		log.Err(err).
			Str("func", "screenRepository.CommitDeleted").
			Str("screen_id", screenID).
			Msg("failed to execute hard delete for screen")
		return fmt.Errorf("failed to delete screen (screen_id=%s): %w", screenID, err)
	}

	return nil
}

func (s *screenRepository) GetStats(ctx context.Context) (models.StoreStats, error) {
	log := logger.FromContext(ctx)

	stats := models.StoreStats{ByStatus: make(map[models.SyncStatus]int)}

	row := s.DB.QueryRowContext(ctx, statsTotals)
	if err := row.Scan(&stats.Total, &stats.TotalBytes); err != nil {
		log.Err(err).
			Str("func", "screenRepository.GetStats").
			Msg("failed to scan store totals")
		return models.StoreStats{}, fmt.Errorf("failed to query store totals: %w", err)
	}

	rows, err := s.DB.QueryContext(ctx, statsByStatus)
	if err != nil {
		log.Err(err).
			Str("func", "screenRepository.GetStats").
			Msg("failed to execute query for status counts")
		return models.StoreStats{}, fmt.Errorf("failed to query status counts: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			rawStatus string
			count     int
		)
		if scanErr := rows.Scan(&rawStatus, &count); scanErr != nil {
			log.Err(scanErr).
				Str("func", "screenRepository.GetStats").
				Msg("failed to scan status count row")
			return models.StoreStats{}, fmt.Errorf("failed to scan status count row: %w", scanErr)
		}

		status, parseErr := models.ParseSyncStatus(rawStatus)
		if parseErr != nil {
			log.Err(parseErr).
				Str("func", "screenRepository.GetStats").
				Str("status", rawStatus).
				Msg("unknown sync status stored in sync_records")
			return models.StoreStats{}, fmt.Errorf("failed to parse stored sync status: %w", parseErr)
		}

		stats.ByStatus[status] = count
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "screenRepository.GetStats").
			Msg("error occurred during rows iteration")
		return models.StoreStats{}, fmt.Errorf("error iterating status count rows: %w", rowsErr)
	}

	return stats, nil
}

func (s *screenRepository) DeleteSyncedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := s.DB.ExecContext(ctx, deleteSyncedBefore, cutoff)
	if err != nil {
		log.Err(err).
			Str("func", "screenRepository.DeleteSyncedBefore").
			Time("cutoff", cutoff).
			Msg("failed to execute delete for old synced screens")
		return 0, fmt.Errorf("failed to delete old synced screens: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "screenRepository.DeleteSyncedBefore").
			Msg("failed to get rows affected after delete")
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSyncRecord(row rowScanner) (models.SyncRecord, error) {
	var (
		record    models.SyncRecord
		rawStatus string
		syncedAt  sql.NullTime
	)

	if err := row.Scan(
		&record.ScreenID,
		&rawStatus,
		&syncedAt,
		&record.RetryCount,
		&record.LastError,
	); err != nil {
		return models.SyncRecord{}, err
	}

	status, err := models.ParseSyncStatus(rawStatus)
	if err != nil {
		return models.SyncRecord{}, fmt.Errorf("failed to parse stored sync status: %w", err)
	}
	record.Status = status

	if syncedAt.Valid {
		t := syncedAt.Time
		record.LastSyncedAt = &t
	}

	return record, nil
}
