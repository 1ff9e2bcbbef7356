// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-screen-sync/internal/adapter"
	"github.com/MKhiriev/go-screen-sync/internal/logger"
	"github.com/MKhiriev/go-screen-sync/internal/store"
	"github.com/MKhiriev/go-screen-sync/internal/utils"
	"github.com/MKhiriev/go-screen-sync/internal/workers"
	"github.com/MKhiriev/go-screen-sync/models"
)

// leaseSet hands out per-screen exclusive leases so one screen is never
// pushed by two goroutines at once, even when a timer pass and a manual
// pass overlap.
type leaseSet struct {
	mu     sync.Mutex
	leased map[string]struct{}
}

func newLeaseSet() *leaseSet {
	return &leaseSet{leased: make(map[string]struct{})}
}

// TryAcquire takes the lease for screenID. It never blocks: a held
// lease means another push owns the screen right now, and the caller
// skips it — the item stays queued and a later pass picks it up.
func (l *leaseSet) TryAcquire(screenID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, held := l.leased[screenID]; held {
		return false
	}
	l.leased[screenID] = struct{}{}
	return true
}

// Release frees the lease taken by TryAcquire.
func (l *leaseSet) Release(screenID string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.leased, screenID)
}

// OrchestratorConfig carries the orchestrator's collaborator knobs.
type OrchestratorConfig struct {
	// ClientID identifies this agent in session requests. Generated when
	// empty.
	ClientID string

	// Workers bounds concurrent push dispatch within one pass.
	Workers int

	// Resolver settles version conflicts. Defaults to last-write-wins
	// by version when nil.
	Resolver Resolver

	// Notify, when set, receives a change event for every screen whose
	// content or sync state the orchestrator alters. Called from worker
	// goroutines; implementations must be safe for concurrent use.
	Notify func(models.ChangeEvent)
}

// syncOrchestrator is the concrete SyncOrchestrator. It owns the
// push-then-commit sequence: only this type advances sync status as a
// consequence of network outcomes, everything else merely stages work.
type syncOrchestrator struct {
	screens store.ScreenRepository
	queue   QueueService
	server  adapter.ServerAdapter

	tracker  SyncTracker
	resolver Resolver

	clientID string
	workers  int

	leases *leaseSet
	notify func(models.ChangeEvent)

	logger *logger.Logger
}

// NewSyncOrchestrator constructs a SyncOrchestrator over the local
// store, the pending queue, and the server transport.
func NewSyncOrchestrator(screens store.ScreenRepository, queue QueueService, server adapter.ServerAdapter, cfg OrchestratorConfig, logger *logger.Logger) SyncOrchestrator {
	clientID := cfg.ClientID
	if clientID == "" {
		clientID = utils.NewUUIDGenerator().Generate()
	}
	resolver := cfg.Resolver
	if resolver == nil {
		resolver = NewLastWriteWinsResolver()
	}

	return &syncOrchestrator{
		screens:  screens,
		queue:    queue,
		server:   server,
		tracker:  NewSyncTracker(),
		resolver: resolver,
		clientID: clientID,
		workers:  cfg.Workers,
		leases:   newLeaseSet(),
		notify:   cfg.Notify,
		logger:   logger,
	}
}

// RunSyncPass implements SyncOrchestrator.
func (o *syncOrchestrator) RunSyncPass(ctx context.Context) (models.SyncResult, error) {
	log := logger.FromContext(ctx)

	if err := o.ensureSession(ctx); err != nil {
		log.Err(err).Str("func", "*syncOrchestrator.RunSyncPass").Msg("session could not be opened, pass aborted")
		return models.SyncResult{}, err
	}

	items, err := o.queue.Drainable(ctx, time.Now())
	if err != nil {
		log.Err(err).Str("func", "*syncOrchestrator.RunSyncPass").Msg("pending queue is unreadable, pass aborted")
		return models.SyncResult{}, err
	}

	result := o.dispatch(ctx, items)

	if err := o.pullRemote(ctx); err != nil {
		// The push half already ran; a pull hiccup only delays remote
		// adoption until the next pass.
		log.Warn().Err(err).Str("func", "*syncOrchestrator.RunSyncPass").Msg("pull phase incomplete")
	}

	// The summary field is the stable shape operational tooling scrapes
	// from agent logs; keep its keys in sync with models.SyncSummary.
	log.Info().
		Str("func", "*syncOrchestrator.RunSyncPass").
		Interface("summary", result.Summary(time.Now())).
		Msg("sync pass finished")

	return result, nil
}

// SyncItems implements SyncOrchestrator.
func (o *syncOrchestrator) SyncItems(ctx context.Context, items []models.PendingItem) models.SyncResult {
	if len(items) == 0 {
		return models.SyncResult{}
	}

	if err := o.ensureSession(ctx); err != nil {
		result := models.SyncResult{Failed: len(items)}
		for _, item := range items {
			result.Errors = append(result.Errors, models.SyncError{
				ScreenID:  item.ScreenID,
				Operation: item.Operation,
				Message:   err.Error(),
			})
		}
		return result
	}

	return o.dispatch(ctx, items)
}

// RequeueFailed implements SyncOrchestrator.
func (o *syncOrchestrator) RequeueFailed(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	records, err := o.screens.GetAllSyncRecords(ctx)
	if err != nil {
		return 0, fmt.Errorf("load sync records: %w", err)
	}

	now := time.Now()
	requeued := 0
	for _, record := range records {
		if record.Status != models.StatusFailed {
			continue
		}

		record = o.tracker.OnRequeue(record)
		if err := o.screens.UpdateSyncRecord(ctx, record); err != nil {
			log.Err(err).Str("func", "*syncOrchestrator.RequeueFailed").Str("screen_id", record.ScreenID).Msg("sync record update failed")
			continue
		}
		if err := o.queue.ResetBackoff(ctx, record.ScreenID, now); err != nil {
			log.Err(err).Str("func", "*syncOrchestrator.RequeueFailed").Str("screen_id", record.ScreenID).Msg("backoff reset failed")
			continue
		}
		requeued++
	}

	return requeued, nil
}

// ensureSession opens a server session when the agent holds no token or
// an expired one.
func (o *syncOrchestrator) ensureSession(ctx context.Context) error {
	if o.server.Token() != "" && !o.server.IsTokenExpired() {
		return nil
	}
	if err := o.server.OpenSession(ctx, o.clientID); err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	return nil
}

// dispatch fans the items across the push worker pool. Items whose
// screen lease is already held are skipped, not failed: the holder is
// pushing the same screen at this very moment.
func (o *syncOrchestrator) dispatch(ctx context.Context, items []models.PendingItem) models.SyncResult {
	var (
		mu     sync.Mutex
		result models.SyncResult
	)

	pool := workers.NewPool(o.workers)
	for _, item := range items {
		item := item
		if !o.leases.TryAcquire(item.ScreenID) {
			continue
		}
		pool.Submit(func() {
			defer o.leases.Release(item.ScreenID)

			outcome := o.pushItem(ctx, item, true)

			mu.Lock()
			result.Merge(outcome)
			mu.Unlock()
		})
	}
	pool.Close()

	return result
}

// pushItem transmits one pending item and commits its outcome. The
// returned result accounts for exactly this item: one synced, one
// failed, or nothing when the item dissolved (orphaned, or restaged
// after a conflict). allowRebase permits a single immediate re-push
// after a conflict resolution rebased the item; the re-push itself runs
// with allowRebase false so two racing writers cannot chase each other
// forever within one pass.
func (o *syncOrchestrator) pushItem(ctx context.Context, item models.PendingItem, allowRebase bool) models.SyncResult {
	log := logger.FromContext(ctx)

	record, err := o.screens.GetSyncRecord(ctx, item.ScreenID)
	switch {
	case errors.Is(err, store.ErrSyncRecordNotFound):
		// The screen is gone from the store. For a delete that means a
		// previous pass committed the removal but crashed before
		// clearing the queue; either way there is nothing left to push.
		if item.Operation != models.OpDelete {
			log.Warn().Str("func", "*syncOrchestrator.pushItem").Str("screen_id", item.ScreenID).Msg("queued item has no screen, dropping")
		}
		if err := o.queue.Remove(ctx, item.ScreenID); err != nil {
			return o.failedItem(item, fmt.Errorf("drop orphaned item: %w", err))
		}
		return models.SyncResult{}
	case err != nil:
		return o.failedItem(item, fmt.Errorf("load sync record: %w", err))
	}

	req := models.PushRequest{
		Operation:   item.Operation,
		BaseVersion: item.BaseVersion,
		ChangeID:    item.ChangeID,
	}
	if item.Operation == models.OpDelete {
		req.Screen = models.Screen{ScreenID: item.ScreenID}
	} else if err := json.Unmarshal(item.Snapshot, &req.Screen); err != nil {
		// A snapshot that cannot be decoded will never transmit; park
		// the screen as failed instead of retrying forever.
		return o.commitFailure(ctx, item, record, fmt.Errorf("decode snapshot: %w", err), true)
	}

	resp, err := o.server.PushScreen(ctx, req)

	var conflict *adapter.ConflictError
	switch {
	case err == nil:
		return o.commitSuccess(ctx, item, resp.Version)

	case errors.As(err, &conflict):
		return o.handleConflict(ctx, item, record, conflict.Remote, allowRebase)

	case item.Operation == models.OpDelete && errors.Is(err, adapter.ErrNotFound):
		// The server never held the screen (or already dropped it);
		// the deletion is as acknowledged as it will ever be.
		return o.commitDeleted(ctx, item)

	case adapter.IsConnectivityError(err):
		return o.commitOffline(ctx, item, record, err)

	case adapter.Retryable(err):
		exhausted, rerr := o.queue.RecordFailure(ctx, item)
		if rerr != nil {
			log.Err(rerr).Str("func", "*syncOrchestrator.pushItem").Str("screen_id", item.ScreenID).Msg("backoff bookkeeping failed")
		}
		return o.commitFailure(ctx, item, record, err, exhausted)

	default:
		// Validation and authorization rejections: retrying cannot help.
		return o.commitFailure(ctx, item, record, err, true)
	}
}

// commitSuccess adopts the server acknowledgement. MarkSynced settles
// the version bump and the record flip in one store transaction, so no
// separate tracker transition is persisted here.
func (o *syncOrchestrator) commitSuccess(ctx context.Context, item models.PendingItem, version int64) models.SyncResult {
	if item.Operation == models.OpDelete {
		return o.commitDeleted(ctx, item)
	}

	now := time.Now()
	if err := o.screens.MarkSynced(ctx, item.ScreenID, version, now); err != nil {
		return o.failedItem(item, fmt.Errorf("commit synced version: %w", err))
	}
	if err := o.queue.Remove(ctx, item.ScreenID); err != nil {
		return o.failedItem(item, fmt.Errorf("remove acknowledged item: %w", err))
	}

	screen, err := o.screens.GetScreen(ctx, item.ScreenID)
	if err == nil {
		o.emit(models.ChangeEvent{ScreenID: item.ScreenID, Kind: models.EventSynced, Screen: &screen, OccurredAt: now})
	} else {
		o.emit(models.ChangeEvent{ScreenID: item.ScreenID, Kind: models.EventSynced, OccurredAt: now})
	}

	return models.SyncResult{Synced: 1}
}

// commitDeleted finalizes an acknowledged deletion: the row is removed
// for good, the sync record follows via cascade.
func (o *syncOrchestrator) commitDeleted(ctx context.Context, item models.PendingItem) models.SyncResult {
	if err := o.screens.CommitDeleted(ctx, item.ScreenID); err != nil && !errors.Is(err, store.ErrScreenNotFound) {
		return o.failedItem(item, fmt.Errorf("commit deletion: %w", err))
	}
	if err := o.queue.Remove(ctx, item.ScreenID); err != nil {
		return o.failedItem(item, fmt.Errorf("remove acknowledged item: %w", err))
	}

	o.emit(models.ChangeEvent{ScreenID: item.ScreenID, Kind: models.EventDeleted, OccurredAt: time.Now()})

	return models.SyncResult{Synced: 1}
}

// commitOffline parks the screen as offline. The attempt burned no
// retry budget: the server was never reached, so nothing was actually
// attempted from its point of view.
func (o *syncOrchestrator) commitOffline(ctx context.Context, item models.PendingItem, record models.SyncRecord, cause error) models.SyncResult {
	log := logger.FromContext(ctx)

	record = o.tracker.OnOffline(record, cause)
	if err := o.screens.UpdateSyncRecord(ctx, record); err != nil {
		log.Err(err).Str("func", "*syncOrchestrator.commitOffline").Str("screen_id", item.ScreenID).Msg("sync record update failed")
	}

	return o.failedItem(item, cause)
}

// commitFailure records a push failure, final or retryable, on the
// screen's sync record.
func (o *syncOrchestrator) commitFailure(ctx context.Context, item models.PendingItem, record models.SyncRecord, cause error, final bool) models.SyncResult {
	log := logger.FromContext(ctx)

	record = o.tracker.OnPushFailure(record, cause, final)
	if err := o.screens.UpdateSyncRecord(ctx, record); err != nil {
		log.Err(err).Str("func", "*syncOrchestrator.commitFailure").Str("screen_id", item.ScreenID).Msg("sync record update failed")
	}

	if final {
		log.Warn().
			Str("func", "*syncOrchestrator.commitFailure").
			Str("screen_id", item.ScreenID).
			Str("operation", item.Operation.String()).
			Str("cause", cause.Error()).
			Msg("push failed terminally, screen parked until explicit requeue")
	}

	return o.failedItem(item, cause)
}

// handleConflict routes a version mismatch through the resolver and
// commits whichever side won.
func (o *syncOrchestrator) handleConflict(ctx context.Context, item models.PendingItem, record models.SyncRecord, remote models.Screen, allowRebase bool) models.SyncResult {
	log := logger.FromContext(ctx)

	local, err := o.localCopy(ctx, item)
	if err != nil {
		return o.failedItem(item, err)
	}

	conflict := models.ConflictCase{Local: local, Remote: remote, BaseVersion: item.BaseVersion}

	resolution, err := o.resolver.Resolve(ctx, conflict)
	if err != nil {
		// The resolver declined; the screen parks in the conflict state
		// until a manual resolution arrives.
		record = o.tracker.OnConflictDetected(record, err)
		if uerr := o.screens.UpdateSyncRecord(ctx, record); uerr != nil {
			log.Err(uerr).Str("func", "*syncOrchestrator.handleConflict").Str("screen_id", item.ScreenID).Msg("sync record update failed")
		}
		o.emit(models.ChangeEvent{ScreenID: item.ScreenID, Kind: models.EventConflict, Screen: &remote, OccurredAt: time.Now()})
		return o.failedItem(item, fmt.Errorf("%w: %s", ErrUnresolvedConflict, err))
	}

	switch resolution.Kind {
	case models.UseRemote:
		return o.adoptRemote(ctx, item, record, remote)

	case models.UseLocal:
		pending := o.tracker.OnResolution(record, false, time.Now())
		if err := o.screens.UpdateSyncRecord(ctx, pending); err != nil {
			log.Err(err).Str("func", "*syncOrchestrator.handleConflict").Str("screen_id", item.ScreenID).Msg("sync record update failed")
		}
		return o.restageAndRetry(ctx, item, local, remote.Version, allowRebase)

	case models.UseMerged:
		if resolution.Merged == nil {
			record = o.tracker.OnConflictDetected(record, ErrUnresolvedConflict)
			if uerr := o.screens.UpdateSyncRecord(ctx, record); uerr != nil {
				log.Err(uerr).Str("func", "*syncOrchestrator.handleConflict").Str("screen_id", item.ScreenID).Msg("sync record update failed")
			}
			return o.failedItem(item, fmt.Errorf("%w: merged resolution carries no screen", ErrUnresolvedConflict))
		}

		merged := resolution.Merged.Clone()
		merged.ScreenID = item.ScreenID
		merged.UpdatedAt = time.Now()

		pending := o.tracker.OnResolution(record, false, merged.UpdatedAt)
		if err := o.screens.SaveScreen(ctx, merged, pending); err != nil {
			return o.failedItem(item, fmt.Errorf("save merged screen: %w", err))
		}
		o.emit(models.ChangeEvent{ScreenID: item.ScreenID, Kind: models.EventSaved, Screen: &merged, OccurredAt: merged.UpdatedAt})
		return o.restageAndRetry(ctx, item, merged, remote.Version, allowRebase)

	default:
		return o.failedItem(item, fmt.Errorf("%w: unknown resolution %s", ErrUnresolvedConflict, resolution.Kind))
	}
}

// adoptRemote discards the local mutation and installs the server copy
// as the synced truth.
func (o *syncOrchestrator) adoptRemote(ctx context.Context, item models.PendingItem, record models.SyncRecord, remote models.Screen) models.SyncResult {
	now := time.Now()

	if remote.IsDeleted {
		return o.commitDeleted(ctx, item)
	}

	record = o.tracker.OnResolution(record, true, now)
	if err := o.screens.SaveScreen(ctx, remote, record); err != nil {
		return o.failedItem(item, fmt.Errorf("adopt remote screen: %w", err))
	}
	if err := o.queue.Remove(ctx, item.ScreenID); err != nil {
		return o.failedItem(item, fmt.Errorf("remove resolved item: %w", err))
	}

	o.emit(models.ChangeEvent{ScreenID: item.ScreenID, Kind: models.EventSynced, Screen: &remote, OccurredAt: now})

	return models.SyncResult{Synced: 1}
}

// restageAndRetry rebases the queued item onto the remote version and,
// when permitted, immediately re-pushes it. The caller has already
// moved the sync record back to pending.
func (o *syncOrchestrator) restageAndRetry(ctx context.Context, item models.PendingItem, screen models.Screen, baseVersion int64, allowRebase bool) models.SyncResult {
	restaged, err := o.queue.Restage(ctx, item, screen, baseVersion)
	if err != nil {
		return o.failedItem(item, fmt.Errorf("restage local copy: %w", err))
	}

	if !allowRebase {
		// Two rebases in one pass means the server is moving under us;
		// leave the item queued for the next pass instead of chasing.
		return o.failedItem(restaged, fmt.Errorf("%w: restaged on version %d", store.ErrVersionConflict, baseVersion))
	}

	return o.pushItem(ctx, restaged, false)
}

// localCopy reconstructs the local side of a conflict. For deletes the
// snapshot is empty and the store still holds the soft-deleted row.
func (o *syncOrchestrator) localCopy(ctx context.Context, item models.PendingItem) (models.Screen, error) {
	if item.Operation != models.OpDelete && len(item.Snapshot) > 0 {
		var local models.Screen
		if err := json.Unmarshal(item.Snapshot, &local); err != nil {
			return models.Screen{}, fmt.Errorf("decode snapshot: %w", err)
		}
		return local, nil
	}

	local, err := o.screens.GetScreen(ctx, item.ScreenID)
	if err != nil {
		return models.Screen{}, fmt.Errorf("load local screen: %w", err)
	}
	return local, nil
}

// pullRemote folds server-side changes into the local store. Screens
// with a queued local mutation are left alone: the local intent wins
// until its push settles.
func (o *syncOrchestrator) pullRemote(ctx context.Context) error {
	log := logger.FromContext(ctx)

	remote, err := o.server.PullScreens(ctx, true)
	if err != nil {
		return fmt.Errorf("pull screens: %w", err)
	}

	queued, err := o.queue.Items(ctx)
	if err != nil {
		return fmt.Errorf("load queued items: %w", err)
	}
	busy := make(map[string]struct{}, len(queued))
	for _, item := range queued {
		busy[item.ScreenID] = struct{}{}
	}

	now := time.Now()
	for _, screen := range remote {
		if _, ok := busy[screen.ScreenID]; ok {
			continue
		}

		local, err := o.screens.GetScreen(ctx, screen.ScreenID)
		switch {
		case errors.Is(err, store.ErrScreenNotFound):
			if screen.IsDeleted {
				continue
			}
			record := models.SyncRecord{ScreenID: screen.ScreenID, Status: models.StatusSynced, LastSyncedAt: &now}
			if err := o.screens.SaveScreen(ctx, screen, record); err != nil {
				log.Err(err).Str("func", "*syncOrchestrator.pullRemote").Str("screen_id", screen.ScreenID).Msg("adopt remote screen failed")
				continue
			}
			o.emit(models.ChangeEvent{ScreenID: screen.ScreenID, Kind: models.EventSaved, Screen: &screen, OccurredAt: now})

		case err != nil:
			log.Err(err).Str("func", "*syncOrchestrator.pullRemote").Str("screen_id", screen.ScreenID).Msg("local screen lookup failed")

		case screen.IsDeleted:
			if err := o.screens.CommitDeleted(ctx, screen.ScreenID); err != nil {
				log.Err(err).Str("func", "*syncOrchestrator.pullRemote").Str("screen_id", screen.ScreenID).Msg("commit remote deletion failed")
				continue
			}
			o.emit(models.ChangeEvent{ScreenID: screen.ScreenID, Kind: models.EventDeleted, OccurredAt: now})

		case screen.Version > local.Version:
			record, err := o.screens.GetSyncRecord(ctx, screen.ScreenID)
			if err != nil {
				log.Err(err).Str("func", "*syncOrchestrator.pullRemote").Str("screen_id", screen.ScreenID).Msg("sync record lookup failed")
				continue
			}
			record = o.tracker.OnPushSuccess(record, now)
			if err := o.screens.SaveScreen(ctx, screen, record); err != nil {
				log.Err(err).Str("func", "*syncOrchestrator.pullRemote").Str("screen_id", screen.ScreenID).Msg("adopt remote screen failed")
				continue
			}
			o.emit(models.ChangeEvent{ScreenID: screen.ScreenID, Kind: models.EventSaved, Screen: &screen, OccurredAt: now})
		}
	}

	return nil
}

// failedItem builds the single-item failure result.
func (o *syncOrchestrator) failedItem(item models.PendingItem, cause error) models.SyncResult {
	return models.SyncResult{
		Failed: 1,
		Errors: []models.SyncError{{
			ScreenID:  item.ScreenID,
			Operation: item.Operation,
			Message:   cause.Error(),
		}},
	}
}

// emit delivers a change event to the registered listener, if any.
func (o *syncOrchestrator) emit(event models.ChangeEvent) {
	if o.notify != nil {
		o.notify(event)
	}
}
