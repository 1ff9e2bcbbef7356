package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-screen-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/servicemock/client_service_mock.go -package=servicemock

// SyncTracker is the per-screen sync state machine. All methods are pure
// transition functions over a [models.SyncRecord]: they take the current
// record by value, return the next one, and never touch storage or the
// network. Conflict and Failed are recoverable states, not terminal ones.
type SyncTracker interface {
	// OnLocalMutation transitions a record after a local save or delete.
	// Whatever the previous state, the screen now has an unacknowledged
	// change: the record becomes Pending with a fresh retry budget.
	OnLocalMutation(record models.SyncRecord) models.SyncRecord

	// OnPushSuccess transitions a record after the server acknowledged
	// the pending mutation: the record becomes Synced with
	// LastSyncedAt = syncedAt and the retry bookkeeping cleared.
	OnPushSuccess(record models.SyncRecord, syncedAt time.Time) models.SyncRecord

	// OnPushFailure transitions a record after a push attempt failed with
	// cause. While retries remain (final == false) the record stays
	// Pending with RetryCount incremented; when the budget is exhausted
	// or the failure is non-retryable (final == true) the record becomes
	// Failed and is re-queued only by an explicit OnRequeue.
	OnPushFailure(record models.SyncRecord, cause error, final bool) models.SyncRecord

	// OnOffline transitions a record after a push attempt that never
	// reached the server. The record becomes Offline; RetryCount is NOT
	// incremented, so waiting out a dead network never burns the retry
	// budget.
	OnOffline(record models.SyncRecord, cause error) models.SyncRecord

	// OnConflictDetected transitions a record after a push discovered a
	// newer remote version and the resolver declined to resolve it.
	OnConflictDetected(record models.SyncRecord, cause error) models.SyncRecord

	// OnResolution transitions a record after a conflict resolution was
	// applied. A resolution that matched the remote copy exactly leaves
	// nothing to push and the record becomes Synced with
	// LastSyncedAt = resolvedAt; otherwise the re-staged mutation starts
	// a fresh Pending cycle.
	OnResolution(record models.SyncRecord, matchedRemote bool, resolvedAt time.Time) models.SyncRecord

	// OnRequeue transitions a Failed record back to Pending with a fresh
	// retry budget. Records in any other state are returned unchanged:
	// only explicitly surfaced failures are eligible for manual retry.
	OnRequeue(record models.SyncRecord) models.SyncRecord
}

// QueueService owns the pending mutation queue: one coalesced item per
// screen id, drained in enqueue order, with persisted retry backoff.
type QueueService interface {
	// Enqueue stages a local mutation of screen for transmission. If an
	// item for the screen already exists the mutation coalesces into it,
	// amending the snapshot and operation while keeping the original
	// EnqueuedAt, AttemptCount, and ChangeID.
	//
	// The returned item is nil when the mutation cancelled out entirely:
	// a delete arriving while a never-transmitted create is still queued
	// removes the item instead of pushing a create the server would only
	// see die. Returns ErrScreenDeleted for an update of a screen whose
	// delete is already queued.
	Enqueue(ctx context.Context, screen models.Screen, op models.OperationKind) (*models.PendingItem, error)

	// Drainable returns the items eligible for dispatch at now — backoff
	// expired and the owning screen not Failed — in enqueue order.
	Drainable(ctx context.Context, now time.Time) ([]models.PendingItem, error)

	// Items returns every queued item in enqueue order.
	Items(ctx context.Context) ([]models.PendingItem, error)

	// Remove drops the item for screenID after its mutation was
	// acknowledged (or cancelled).
	Remove(ctx context.Context, screenID string) error

	// RecordFailure persists a failed attempt for item: the attempt
	// counter is incremented and the next attempt is scheduled with
	// exponential backoff. The returned flag is true when the retry
	// budget is now exhausted and the item must be surfaced as Failed.
	RecordFailure(ctx context.Context, item models.PendingItem) (exhausted bool, err error)

	// Restage rewrites the queued item for a conflict-resolved screen:
	// a new snapshot and base version, dispatchable immediately, with
	// the original identity (ChangeID, EnqueuedAt) preserved.
	Restage(ctx context.Context, item models.PendingItem, screen models.Screen, baseVersion int64) (models.PendingItem, error)

	// ResetBackoff clears the attempt counter and schedules the item for
	// immediate dispatch. Used on explicit re-queue of a Failed screen.
	ResetBackoff(ctx context.Context, screenID string, now time.Time) error

	// Policy exposes the queue's retry policy so the orchestrator can
	// classify failures consistently with the queue's bookkeeping.
	Policy() RetryPolicy
}

// SyncOrchestrator drives synchronization passes against the backend.
type SyncOrchestrator interface {
	// RunSyncPass performs one full pass: push every drainable pending
	// item, then pull remote changes and fold them into the local store.
	// Per-item failures are collected in the result, never escalated —
	// one screen failing must not abort the others. The returned error
	// covers pass-level breakage only (queue unreadable, store down).
	RunSyncPass(ctx context.Context) (models.SyncResult, error)

	// SyncItems pushes an explicit list of pending items, honoring the
	// same per-screen lease, conflict, and retry handling as a full
	// pass.
	SyncItems(ctx context.Context, items []models.PendingItem) models.SyncResult

	// RequeueFailed returns every Failed screen to the Pending state
	// with a cleared retry budget and reports how many were re-queued.
	// This is the only path that revives a Failed screen.
	RequeueFailed(ctx context.Context) (int, error)
}

// SyncJob is the background worker that triggers periodic sync passes.
type SyncJob interface {
	// Start launches the background sync goroutine. It runs a pass every
	// interval, defaulting to 5 minutes if interval is zero or negative.
	// Any previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it
	// has fully terminated.
	Stop()
}
