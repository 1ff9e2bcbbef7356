package service

import (
	"time"

	"github.com/MKhiriev/go-screen-sync/models"
)

// syncTracker is the concrete implementation of SyncTracker.
// Every transition is a pure in-memory function over one SyncRecord;
// no storage layer or logger is required because nothing here has side
// effects. Persisting the returned record is the caller's job, which
// keeps store writes and state decisions separately testable.
//
// The transitions implemented here:
//
//	Pending  → push success            → Synced
//	Pending  → push failure, retryable → Pending   (RetryCount+1)
//	Pending  → push failure, final     → Failed
//	Pending  → transport unreachable   → Offline   (budget untouched)
//	Pending  → unresolved conflict     → Conflict
//	Conflict → resolution applied      → Pending, or Synced when the
//	                                     resolution matched the remote
//	Synced   → local mutation          → Pending
//	Failed   → explicit re-queue       → Pending
//
// No state is terminal: Conflict and Failed both have a way back.
type syncTracker struct{}

// NewSyncTracker constructs a SyncTracker ready for use. Because every
// transition is stateless, no dependencies are needed.
func NewSyncTracker() SyncTracker {
	return &syncTracker{}
}

// OnLocalMutation implements SyncTracker. A new local change restarts
// the sync cycle regardless of the previous state, so the retry budget
// and last error belong to the old mutation and are cleared.
func (t *syncTracker) OnLocalMutation(record models.SyncRecord) models.SyncRecord {
	record.Status = models.StatusPending
	record.RetryCount = 0
	record.LastError = ""
	return record
}

// OnPushSuccess implements SyncTracker.
func (t *syncTracker) OnPushSuccess(record models.SyncRecord, syncedAt time.Time) models.SyncRecord {
	record.Status = models.StatusSynced
	record.LastSyncedAt = &syncedAt
	record.RetryCount = 0
	record.LastError = ""
	return record
}

// OnPushFailure implements SyncTracker. The attempt is counted either
// way; final decides whether the record keeps retrying or surfaces as
// Failed until someone asks for it back.
func (t *syncTracker) OnPushFailure(record models.SyncRecord, cause error, final bool) models.SyncRecord {
	record.RetryCount++
	if cause != nil {
		record.LastError = cause.Error()
	}

	if final {
		record.Status = models.StatusFailed
	} else {
		record.Status = models.StatusPending
	}
	return record
}

// OnOffline implements SyncTracker. An unreachable server is not a
// failed attempt: the retry budget is left alone so a long flight mode
// never turns clean mutations into Failed ones.
func (t *syncTracker) OnOffline(record models.SyncRecord, cause error) models.SyncRecord {
	record.Status = models.StatusOffline
	if cause != nil {
		record.LastError = cause.Error()
	}
	return record
}

// OnConflictDetected implements SyncTracker.
func (t *syncTracker) OnConflictDetected(record models.SyncRecord, cause error) models.SyncRecord {
	record.Status = models.StatusConflict
	record.LastError = "version conflict"
	if cause != nil {
		record.LastError = cause.Error()
	}
	return record
}

// OnResolution implements SyncTracker. matchedRemote means the applied
// resolution left the local copy identical to the server's, so there is
// nothing left to transmit.
func (t *syncTracker) OnResolution(record models.SyncRecord, matchedRemote bool, resolvedAt time.Time) models.SyncRecord {
	record.RetryCount = 0
	record.LastError = ""

	if matchedRemote {
		record.Status = models.StatusSynced
		record.LastSyncedAt = &resolvedAt
	} else {
		record.Status = models.StatusPending
	}
	return record
}

// OnRequeue implements SyncTracker. Only Failed records are eligible;
// anything else passes through unchanged so a blanket "retry all" never
// disturbs healthy screens.
func (t *syncTracker) OnRequeue(record models.SyncRecord) models.SyncRecord {
	if record.Status != models.StatusFailed {
		return record
	}

	record.Status = models.StatusPending
	record.RetryCount = 0
	record.LastError = ""
	return record
}
