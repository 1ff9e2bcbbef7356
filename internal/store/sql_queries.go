package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-screen-sync/models"
)

const (
	upsertServerScreen = `INSERT INTO screens (screen_id, name, version, payload, created_at, updated_at, is_active, is_deleted)
    VALUES ($1, $2, 1, $3, now(), now(), $4, FALSE)
    ON CONFLICT (screen_id) DO UPDATE SET
        name       = excluded.name,
        payload    = excluded.payload,
        is_active  = excluded.is_active,
        is_deleted = FALSE,
        version    = screens.version + 1,
        updated_at = now()
    WHERE screens.version = $5
    RETURNING screen_id, name, version, payload, created_at, updated_at, is_active, is_deleted;`

	getServerScreen = `SELECT screen_id, name, version, payload, created_at, updated_at, is_active, is_deleted
    FROM screens
    WHERE screen_id = $1;`

	deleteServerScreen = `UPDATE screens SET
        is_deleted = TRUE,
        version    = version + 1,
        updated_at = now()
    WHERE screen_id = $1 AND version = $2
    RETURNING screen_id, name, version, payload, created_at, updated_at, is_active, is_deleted;`
)

// screenColumns is the shared SELECT column list; its order matches the scan
// order used everywhere a screen row is read.
var screenColumns = []string{
	"screen_id",
	"name",
	"version",
	"payload",
	"created_at",
	"updated_at",
	"is_active",
	"is_deleted",
}

// buildSelectScreensQuery builds the paginated screen listing for the server
// API. A non-positive limit disables pagination. Tombstoned screens are
// excluded unless includeDeleted is set (the sync pull needs them so clients
// can observe deletions).
func buildSelectScreensQuery(limit, offset int, includeDeleted bool) (string, []any, error) {
	builder := sq.Select(screenColumns...).
		From("screens").
		OrderBy("updated_at DESC").
		PlaceholderFormat(sq.Dollar)

	if !includeDeleted {
		builder = builder.Where(sq.Eq{"is_deleted": false})
	}
	if limit > 0 {
		builder = builder.Limit(uint64(limit)).Offset(uint64(offset))
	}

	return builder.ToSql()
}

// buildSearchScreensQuery builds a case-insensitive substring search over
// screen names for the server API.
func buildSearchScreensQuery(query string) (string, []any, error) {
	return sq.Select(screenColumns...).
		From("screens").
		Where(sq.Eq{"is_deleted": false}).
		Where(sq.ILike{"name": "%" + query + "%"}).
		OrderBy("name").
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

// buildCountScreensQuery counts live screens for the server API.
func buildCountScreensQuery() (string, []any, error) {
	return sq.Select("COUNT(*)").
		From("screens").
		Where(sq.Eq{"is_deleted": false}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

// buildScreenFilterQuery builds the dynamic local query over the SQLite
// replica. Zero-value filter fields contribute no predicate; filtering by
// sync status joins the sync_records table.
func buildScreenFilterQuery(filter models.ScreenFilter) (string, []any, error) {
	builder := sq.Select(
		"s.screen_id",
		"s.name",
		"s.version",
		"s.payload",
		"s.created_at",
		"s.updated_at",
		"s.is_active",
		"s.is_deleted",
	).From("screens s")

	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, status := range filter.Statuses {
			statuses = append(statuses, status.String())
		}
		builder = builder.
			LeftJoin("sync_records r ON r.screen_id = s.screen_id").
			Where(sq.Eq{"r.status": statuses})
	}

	if filter.NameContains != "" {
		builder = builder.Where(sq.Like{"s.name": "%" + filter.NameContains + "%"})
	}
	if filter.UpdatedAfter != nil {
		builder = builder.Where(sq.GtOrEq{"s.updated_at": *filter.UpdatedAfter})
	}
	if filter.UpdatedBefore != nil {
		builder = builder.Where(sq.Lt{"s.updated_at": *filter.UpdatedBefore})
	}
	if !filter.IncludeDeleted {
		builder = builder.Where(sq.Eq{"s.is_deleted": false})
	}

	builder = builder.OrderBy("s.updated_at DESC")

	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	}

	return builder.ToSql()
}
