// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	upsertScreen = `
		INSERT INTO screens (
			screen_id,
			name,
			version,
			payload,
			created_at,
			updated_at,
			is_active,
			is_deleted
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT(screen_id) DO UPDATE SET
			name       = excluded.name,
			version    = excluded.version,
			payload    = excluded.payload,
			updated_at = excluded.updated_at,
			is_active  = excluded.is_active,
			is_deleted = excluded.is_deleted;`

	upsertSyncRecord = `
		INSERT INTO sync_records (
			screen_id,
			status,
			last_synced_at,
			retry_count,
			last_error
		) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT(screen_id) DO UPDATE SET
			status         = excluded.status,
			last_synced_at = excluded.last_synced_at,
			retry_count    = excluded.retry_count,
			last_error     = excluded.last_error;`

	getScreen = `
		SELECT
			screen_id,
			name,
			version,
			payload,
			created_at,
			updated_at,
			is_active,
			is_deleted
		FROM screens
		WHERE screen_id = $1;`

	getAllScreens = `
		SELECT
			screen_id,
			name,
			version,
			payload,
			created_at,
			updated_at,
			is_active,
			is_deleted
		FROM screens
		WHERE is_deleted = FALSE
		ORDER BY updated_at DESC;`

	getScreensPage = `
		SELECT
			screen_id,
			name,
			version,
			payload,
			created_at,
			updated_at,
			is_active,
			is_deleted
		FROM screens
		WHERE is_deleted = FALSE
		ORDER BY updated_at DESC
		LIMIT $1 OFFSET $2;`

	searchScreens = `
		SELECT
			screen_id,
			name,
			version,
			payload,
			created_at,
			updated_at,
			is_active,
			is_deleted
		FROM screens
		WHERE is_deleted = FALSE
		  AND name LIKE '%' || $1 || '%'
		ORDER BY name;`

	countScreens = `
		SELECT COUNT(*)
		FROM screens
		WHERE is_deleted = FALSE;`

	getSyncRecord = `
		SELECT
			screen_id,
			status,
			last_synced_at,
			retry_count,
			last_error
		FROM sync_records
		WHERE screen_id = $1;`

	getAllSyncRecords = `
		SELECT
			screen_id,
			status,
			last_synced_at,
			retry_count,
			last_error
		FROM sync_records;`

	updateSyncRecord = `
		UPDATE sync_records SET
			status         = $1,
			last_synced_at = $2,
			retry_count    = $3,
			last_error     = $4
		WHERE screen_id = $5;`

	markSyncedScreen = `
		UPDATE screens
		SET version = $1
		WHERE screen_id = $2;`

	markSyncedRecord = `
		UPDATE sync_records SET
			status         = 'synced',
			last_synced_at = $1,
			retry_count    = 0,
			last_error     = ''
		WHERE screen_id = $2;`

	softDeleteScreen = `
		UPDATE screens SET
			is_deleted = TRUE,
			updated_at = CURRENT_TIMESTAMP
		WHERE screen_id = $1;`

	hardDeleteScreen = `
		DELETE FROM screens
		WHERE screen_id = $1;`

	statsTotals = `
		SELECT COUNT(*), COALESCE(SUM(LENGTH(payload)), 0)
		FROM screens;`

	statsByStatus = `
		SELECT status, COUNT(*)
		FROM sync_records
		GROUP BY status;`

	deleteSyncedBefore = `
		DELETE FROM screens
		WHERE updated_at < $1
		  AND screen_id IN (
			SELECT screen_id FROM sync_records WHERE status = 'synced'
		  );`
)

const (
	upsertPendingItem = `
		INSERT INTO pending_items (
			screen_id,
			operation,
			snapshot,
			base_version,
			change_id,
			enqueued_at,
			attempt_count,
			next_attempt_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT(screen_id) DO UPDATE SET
			operation       = excluded.operation,
			snapshot        = excluded.snapshot,
			base_version    = excluded.base_version,
			change_id       = excluded.change_id,
			enqueued_at     = excluded.enqueued_at,
			attempt_count   = excluded.attempt_count,
			next_attempt_at = excluded.next_attempt_at;`

	getPendingItem = `
		SELECT
			screen_id,
			operation,
			snapshot,
			base_version,
			change_id,
			enqueued_at,
			attempt_count,
			next_attempt_at
		FROM pending_items
		WHERE screen_id = $1;`

	getAllPendingItems = `
		SELECT
			screen_id,
			operation,
			snapshot,
			base_version,
			change_id,
			enqueued_at,
			attempt_count,
			next_attempt_at
		FROM pending_items
		ORDER BY enqueued_at;`

	getDrainablePendingItems = `
		SELECT
			p.screen_id,
			p.operation,
			p.snapshot,
			p.base_version,
			p.change_id,
			p.enqueued_at,
			p.attempt_count,
			p.next_attempt_at
		FROM pending_items p
		LEFT JOIN sync_records r ON r.screen_id = p.screen_id
		WHERE p.next_attempt_at <= $1
		  AND COALESCE(r.status, '') != 'failed'
		ORDER BY p.enqueued_at;`

	updatePendingAttempt = `
		UPDATE pending_items SET
			attempt_count   = $1,
			next_attempt_at = $2
		WHERE screen_id = $3;`

	resetPendingAttempts = `
		UPDATE pending_items SET
			attempt_count   = 0,
			next_attempt_at = $1
		WHERE screen_id = $2;`

	deletePendingItem = `
		DELETE FROM pending_items
		WHERE screen_id = $1;`

	countPendingItems = `
		SELECT COUNT(*)
		FROM pending_items;`
)
