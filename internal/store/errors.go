package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrScreenNotFound is returned when a query or update targets a screen
	// (identified by screen_id) that does not exist in the database.
	ErrScreenNotFound = errors.New("screen was not found")

	// ErrScreenNotSaved is returned when an upsert of a screen completes
	// without error but the number of affected rows is zero, indicating that
	// no data was actually persisted.
	ErrScreenNotSaved = errors.New("screen was not saved")

	// ErrSyncRecordNotFound is returned when a screen has no sync record,
	// which normally means the screen itself was never stored locally.
	ErrSyncRecordNotFound = errors.New("sync record was not found")

	// ErrPendingItemNotFound is returned when no queued change exists for
	// the requested screen_id.
	ErrPendingItemNotFound = errors.New("pending item was not found")

	// ErrVersionConflict is returned when an optimistic-locking check fails:
	// the base version supplied by the client does not match the current
	// version stored in the database, meaning another client has modified
	// the screen since this client last synchronized.
	ErrVersionConflict = errors.New("screen version conflict occurred")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan screen row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan screen rows")
)
