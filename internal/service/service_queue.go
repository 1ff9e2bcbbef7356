package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/MKhiriev/go-screen-sync/internal/config"
	"github.com/MKhiriev/go-screen-sync/internal/logger"
	"github.com/MKhiriev/go-screen-sync/internal/store"
	"github.com/MKhiriev/go-screen-sync/internal/utils"
	"github.com/MKhiriev/go-screen-sync/models"
)

// Fallbacks applied when a RetryPolicy field is left zero.
const (
	fallbackBaseDelay   = 500 * time.Millisecond
	fallbackMaxDelay    = 30 * time.Second
	fallbackMaxAttempts = 3
)

// RetryPolicy bounds and spaces push retries. The delay before attempt
// n+1 is min(BaseDelay * 2^n, MaxDelay) plus jitter in [0, delay/4), so
// a struggling server is not hammered by synchronized clients. Once
// MaxAttempts attempts have failed the item is surfaced as Failed and
// never retried automatically again.
type RetryPolicy struct {
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	MaxAttempts int
}

// NewRetryPolicy maps the agent retry configuration onto a RetryPolicy.
func NewRetryPolicy(cfg config.ClientRetry) RetryPolicy {
	return RetryPolicy{
		BaseDelay:   cfg.BaseDelay,
		MaxDelay:    cfg.MaxDelay,
		MaxAttempts: cfg.MaxAttempts,
	}
}

// NextDelay returns the backoff delay after attemptCount failed
// attempts.
func (p RetryPolicy) NextDelay(attemptCount int) time.Duration {
	base := p.BaseDelay
	if base <= 0 {
		base = fallbackBaseDelay
	}
	cap := p.MaxDelay
	if cap <= 0 {
		cap = fallbackMaxDelay
	}

	delay := base
	for i := 0; i < attemptCount; i++ {
		delay *= 2
		if delay >= cap || delay <= 0 {
			delay = cap
			break
		}
	}
	if delay > cap {
		delay = cap
	}

	if window := int64(delay / 4); window > 0 {
		delay += time.Duration(rand.Int63n(window))
	}
	return delay
}

// Exhausted reports whether attemptCount failed attempts used up the
// retry budget.
func (p RetryPolicy) Exhausted(attemptCount int) bool {
	max := p.MaxAttempts
	if max <= 0 {
		max = fallbackMaxAttempts
	}
	return attemptCount >= max
}

// queueService is the concrete implementation of QueueService. The
// coalescing decisions live here; the repository underneath is plain
// one-row-per-screen storage and never inspects operations.
type queueService struct {
	pending store.PendingRepository
	policy  RetryPolicy
	uuid    *utils.UUIDGenerator

	logger *logger.Logger
}

// NewQueueService constructs a QueueService over the given pending item
// repository.
func NewQueueService(pending store.PendingRepository, policy RetryPolicy, logger *logger.Logger) QueueService {
	return &queueService{
		pending: pending,
		policy:  policy,
		uuid:    utils.NewUUIDGenerator(),
		logger:  logger,
	}
}

// Enqueue implements QueueService. A screen with no queued item gets a
// fresh one; otherwise the mutation coalesces per the operation matrix
// in coalesce.
func (s *queueService) Enqueue(ctx context.Context, screen models.Screen, op models.OperationKind) (*models.PendingItem, error) {
	log := logger.FromContext(ctx)

	existing, err := s.pending.GetItem(ctx, screen.ScreenID)
	switch {
	case err == nil:
		return s.coalesce(ctx, existing, screen, op)
	case errors.Is(err, store.ErrPendingItemNotFound):
	default:
		log.Err(err).Str("func", "*queueService.Enqueue").Str("screen_id", screen.ScreenID).Msg("load queued item failed")
		return nil, fmt.Errorf("load queued item: %w", err)
	}

	now := time.Now()
	item := models.PendingItem{
		ScreenID:      screen.ScreenID,
		Operation:     op,
		BaseVersion:   screen.Version,
		ChangeID:      s.uuid.Generate(),
		EnqueuedAt:    now,
		NextAttemptAt: now,
	}
	if op != models.OpDelete {
		snapshot, err := json.Marshal(screen)
		if err != nil {
			return nil, fmt.Errorf("snapshot screen %s: %w", screen.ScreenID, err)
		}
		item.Snapshot = snapshot
	}

	if err = s.pending.UpsertItem(ctx, item); err != nil {
		log.Err(err).Str("func", "*queueService.Enqueue").Str("screen_id", screen.ScreenID).Msg("stage queued item failed")
		return nil, fmt.Errorf("stage queued item: %w", err)
	}

	return &item, nil
}

// coalesce folds a new mutation into the already queued item for the
// same screen. Operation ordering is create < update* < delete:
//
//   - create|update + update → the queued operation survives, only the
//     snapshot is amended (the server still needs the original intent);
//   - update + delete → delete becomes the sole queued item;
//   - create + delete → the pair annihilates: the server never saw the
//     create, so nothing at all is transmitted;
//   - delete + create → update: the server-side copy still exists until
//     the delete is pushed, so re-creating the screen amends it;
//   - delete + update → rejected, the screen is gone locally.
//
// EnqueuedAt, AttemptCount, ChangeID, BaseVersion, and the backoff
// schedule always carry over: coalescing amends the request, it does
// not restart it.
func (s *queueService) coalesce(ctx context.Context, existing models.PendingItem, screen models.Screen, op models.OperationKind) (*models.PendingItem, error) {
	log := logger.FromContext(ctx)

	switch {
	case op == models.OpDelete && existing.Operation == models.OpCreate:
		if err := s.pending.RemoveItem(ctx, existing.ScreenID); err != nil {
			log.Err(err).Str("func", "*queueService.coalesce").Str("screen_id", existing.ScreenID).Msg("withdraw queued create failed")
			return nil, fmt.Errorf("withdraw queued create: %w", err)
		}
		return nil, nil

	case op == models.OpDelete:
		existing.Operation = models.OpDelete
		existing.Snapshot = nil

	case existing.Operation == models.OpDelete && op == models.OpCreate:
		snapshot, err := json.Marshal(screen)
		if err != nil {
			return nil, fmt.Errorf("snapshot screen %s: %w", screen.ScreenID, err)
		}
		existing.Operation = models.OpUpdate
		existing.Snapshot = snapshot

	case existing.Operation == models.OpDelete:
		return nil, fmt.Errorf("%w: %s", ErrScreenDeleted, screen.ScreenID)

	default:
		snapshot, err := json.Marshal(screen)
		if err != nil {
			return nil, fmt.Errorf("snapshot screen %s: %w", screen.ScreenID, err)
		}
		existing.Snapshot = snapshot
	}

	if err := s.pending.UpsertItem(ctx, existing); err != nil {
		log.Err(err).Str("func", "*queueService.coalesce").Str("screen_id", existing.ScreenID).Msg("amend queued item failed")
		return nil, fmt.Errorf("amend queued item: %w", err)
	}

	return &existing, nil
}

// Drainable implements QueueService.
func (s *queueService) Drainable(ctx context.Context, now time.Time) ([]models.PendingItem, error) {
	items, err := s.pending.GetDrainable(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("load drainable items: %w", err)
	}
	return items, nil
}

// Items implements QueueService.
func (s *queueService) Items(ctx context.Context) ([]models.PendingItem, error) {
	items, err := s.pending.GetAllItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("load queued items: %w", err)
	}
	return items, nil
}

// Remove implements QueueService.
func (s *queueService) Remove(ctx context.Context, screenID string) error {
	if err := s.pending.RemoveItem(ctx, screenID); err != nil {
		return fmt.Errorf("remove queued item: %w", err)
	}
	return nil
}

// RecordFailure implements QueueService. The pre-increment attempt
// count drives the backoff, so the first retry waits BaseDelay and each
// later one doubles from there.
func (s *queueService) RecordFailure(ctx context.Context, item models.PendingItem) (bool, error) {
	log := logger.FromContext(ctx)

	attempts := item.AttemptCount + 1
	next := time.Now().Add(s.policy.NextDelay(item.AttemptCount))

	if err := s.pending.UpdateAttempt(ctx, item.ScreenID, attempts, next); err != nil {
		log.Err(err).Str("func", "*queueService.RecordFailure").Str("screen_id", item.ScreenID).Msg("record failed attempt failed")
		return false, fmt.Errorf("record failed attempt: %w", err)
	}

	return s.policy.Exhausted(attempts), nil
}

// Restage implements QueueService. A conflicted create becomes an
// update (the conflict proves the server already holds the id); a
// conflicted delete stays a delete. Either way the item is rebased and
// dispatchable immediately with a fresh attempt budget.
func (s *queueService) Restage(ctx context.Context, item models.PendingItem, screen models.Screen, baseVersion int64) (models.PendingItem, error) {
	log := logger.FromContext(ctx)

	if item.Operation == models.OpCreate {
		item.Operation = models.OpUpdate
	}
	if item.Operation == models.OpDelete {
		item.Snapshot = nil
	} else {
		snapshot, err := json.Marshal(screen)
		if err != nil {
			return models.PendingItem{}, fmt.Errorf("snapshot screen %s: %w", screen.ScreenID, err)
		}
		item.Snapshot = snapshot
	}

	now := time.Now()
	item.BaseVersion = baseVersion
	item.AttemptCount = 0
	item.NextAttemptAt = now

	if err := s.pending.UpsertItem(ctx, item); err != nil {
		log.Err(err).Str("func", "*queueService.Restage").Str("screen_id", item.ScreenID).Msg("restage queued item failed")
		return models.PendingItem{}, fmt.Errorf("restage queued item: %w", err)
	}

	return item, nil
}

// ResetBackoff implements QueueService.
func (s *queueService) ResetBackoff(ctx context.Context, screenID string, now time.Time) error {
	if err := s.pending.ResetAttempts(ctx, screenID, now); err != nil {
		return fmt.Errorf("reset queued item backoff: %w", err)
	}
	return nil
}

// Policy implements QueueService.
func (s *queueService) Policy() RetryPolicy {
	return s.policy
}
