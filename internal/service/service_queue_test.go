// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-screen-sync/internal/config"
	"github.com/MKhiriev/go-screen-sync/internal/logger"
	"github.com/MKhiriev/go-screen-sync/internal/mock"
	"github.com/MKhiriev/go-screen-sync/internal/store"
	"github.com/MKhiriev/go-screen-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestQueueSvc — хелпер для создания queueService с моком хранилища.
func newTestQueueSvc(t *testing.T, ctrl *gomock.Controller) (QueueService, *mock.MockPendingRepository) {
	t.Helper()
	mockRepo := mock.NewMockPendingRepository(ctrl)

	policy := RetryPolicy{BaseDelay: 100 * time.Millisecond, MaxDelay: 5 * time.Second, MaxAttempts: 3}
	svc := NewQueueService(mockRepo, policy, logger.Nop())

	return svc, mockRepo
}

func testScreen(id string, version int64) models.Screen {
	return models.Screen{
		ScreenID: id,
		Name:     "dashboard",
		Version:  version,
		Payload:  json.RawMessage(`{"layout":"grid"}`),
		IsActive: true,
	}
}

func decodeSnapshot(t *testing.T, snapshot json.RawMessage) models.Screen {
	t.Helper()
	var screen models.Screen
	require.NoError(t, json.Unmarshal(snapshot, &screen))
	return screen
}

var errPendingStorage = errors.New("pending storage error")

// ── Enqueue: fresh items ─────────────────────────────────────────────────────

func TestQueueService_Enqueue_FreshUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestQueueSvc(t, ctrl)
	ctx := context.Background()
	screen := testScreen("s1", 4)

	mockRepo.EXPECT().GetItem(ctx, "s1").Return(models.PendingItem{}, store.ErrPendingItemNotFound)

	var stored models.PendingItem
	mockRepo.EXPECT().UpsertItem(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, item models.PendingItem) error {
			stored = item
			return nil
		},
	)

	before := time.Now()
	item, err := svc.Enqueue(ctx, screen, models.OpUpdate)
	require.NoError(t, err)
	require.NotNil(t, item)

	assert.Equal(t, *item, stored, "returned item must be the stored one")
	assert.Equal(t, "s1", item.ScreenID)
	assert.Equal(t, models.OpUpdate, item.Operation)
	assert.Equal(t, int64(4), item.BaseVersion, "base version pins the server version the edit was built on")
	assert.NotEmpty(t, item.ChangeID)
	assert.Zero(t, item.AttemptCount)
	assert.False(t, item.EnqueuedAt.Before(before))
	assert.False(t, item.NextAttemptAt.Before(before), "fresh items are dispatchable immediately")
	assert.Equal(t, screen, decodeSnapshot(t, item.Snapshot))
}

func TestQueueService_Enqueue_FreshCreate_BaseVersionZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestQueueSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().GetItem(ctx, "s1").Return(models.PendingItem{}, store.ErrPendingItemNotFound)
	mockRepo.EXPECT().UpsertItem(ctx, gomock.Any()).Return(nil)

	item, err := svc.Enqueue(ctx, testScreen("s1", 0), models.OpCreate)
	require.NoError(t, err)
	require.NotNil(t, item)

	assert.Equal(t, models.OpCreate, item.Operation)
	assert.Zero(t, item.BaseVersion, "a never-synced screen has no server version to base on")
}

func TestQueueService_Enqueue_FreshDelete_NoSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestQueueSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().GetItem(ctx, "s1").Return(models.PendingItem{}, store.ErrPendingItemNotFound)
	mockRepo.EXPECT().UpsertItem(ctx, gomock.Any()).Return(nil)

	item, err := svc.Enqueue(ctx, testScreen("s1", 7), models.OpDelete)
	require.NoError(t, err)
	require.NotNil(t, item)

	assert.Equal(t, models.OpDelete, item.Operation)
	assert.Nil(t, item.Snapshot, "deletes carry no body")
	assert.Equal(t, int64(7), item.BaseVersion)
}

func TestQueueService_Enqueue_GetItemStorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestQueueSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().GetItem(ctx, "s1").Return(models.PendingItem{}, errPendingStorage)

	_, err := svc.Enqueue(ctx, testScreen("s1", 1), models.OpUpdate)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load queued item")
	assert.ErrorIs(t, err, errPendingStorage)
}

func TestQueueService_Enqueue_UpsertStorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestQueueSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().GetItem(ctx, "s1").Return(models.PendingItem{}, store.ErrPendingItemNotFound)
	mockRepo.EXPECT().UpsertItem(ctx, gomock.Any()).Return(errPendingStorage)

	_, err := svc.Enqueue(ctx, testScreen("s1", 1), models.OpUpdate)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stage queued item")
}

// ── Enqueue: coalescing matrix ───────────────────────────────────────────────

// queuedItem builds an already staged item the way a previous Enqueue
// would have left it.
func queuedItem(id string, op models.OperationKind, baseVersion int64) models.PendingItem {
	item := models.PendingItem{
		ScreenID:      id,
		Operation:     op,
		BaseVersion:   baseVersion,
		ChangeID:      "change-original",
		EnqueuedAt:    time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		AttemptCount:  2,
		NextAttemptAt: time.Date(2026, 3, 14, 10, 5, 0, 0, time.UTC),
	}
	if op != models.OpDelete {
		item.Snapshot = json.RawMessage(`{"screen_id":"` + id + `","name":"stale"}`)
	}
	return item
}

func TestQueueService_Coalesce_CreateThenUpdate_KeepsCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestQueueSvc(t, ctrl)
	ctx := context.Background()
	existing := queuedItem("s1", models.OpCreate, 0)
	edited := testScreen("s1", 0)

	mockRepo.EXPECT().GetItem(ctx, "s1").Return(existing, nil)

	var stored models.PendingItem
	mockRepo.EXPECT().UpsertItem(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, item models.PendingItem) error {
			stored = item
			return nil
		},
	)

	item, err := svc.Enqueue(ctx, edited, models.OpUpdate)
	require.NoError(t, err)
	require.NotNil(t, item)

	// Сервер ещё не видел экрана — операция остаётся create, меняется
	// только снимок.
	assert.Equal(t, models.OpCreate, stored.Operation)
	assert.Equal(t, edited, decodeSnapshot(t, stored.Snapshot))
	assert.Equal(t, existing.ChangeID, stored.ChangeID, "coalescing amends the change, it does not restart it")
	assert.Equal(t, existing.EnqueuedAt, stored.EnqueuedAt)
	assert.Equal(t, existing.AttemptCount, stored.AttemptCount)
	assert.Equal(t, existing.NextAttemptAt, stored.NextAttemptAt, "backoff schedule survives coalescing")
	assert.Equal(t, existing.BaseVersion, stored.BaseVersion)
}

func TestQueueService_Coalesce_UpdateThenUpdate_AmendsSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestQueueSvc(t, ctrl)
	ctx := context.Background()
	existing := queuedItem("s1", models.OpUpdate, 3)
	edited := testScreen("s1", 3)
	edited.Name = "dashboard v2"

	mockRepo.EXPECT().GetItem(ctx, "s1").Return(existing, nil)

	var stored models.PendingItem
	mockRepo.EXPECT().UpsertItem(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, item models.PendingItem) error {
			stored = item
			return nil
		},
	)

	_, err := svc.Enqueue(ctx, edited, models.OpUpdate)
	require.NoError(t, err)

	assert.Equal(t, models.OpUpdate, stored.Operation)
	assert.Equal(t, "dashboard v2", decodeSnapshot(t, stored.Snapshot).Name)
	assert.Equal(t, existing.ChangeID, stored.ChangeID)
}

func TestQueueService_Coalesce_CreateThenDelete_Annihilates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestQueueSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().GetItem(ctx, "s1").Return(queuedItem("s1", models.OpCreate, 0), nil)
	// Сервер так и не узнал о создании — очередь просто очищается,
	// никакой отправки не будет.
	mockRepo.EXPECT().RemoveItem(ctx, "s1").Return(nil)

	item, err := svc.Enqueue(ctx, testScreen("s1", 0), models.OpDelete)
	require.NoError(t, err)
	assert.Nil(t, item, "an unsynced create deleted locally leaves nothing to transmit")
}

func TestQueueService_Coalesce_CreateThenDelete_RemoveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestQueueSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().GetItem(ctx, "s1").Return(queuedItem("s1", models.OpCreate, 0), nil)
	mockRepo.EXPECT().RemoveItem(ctx, "s1").Return(errPendingStorage)

	_, err := svc.Enqueue(ctx, testScreen("s1", 0), models.OpDelete)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "withdraw queued create")
}

func TestQueueService_Coalesce_UpdateThenDelete_BecomesSoleDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestQueueSvc(t, ctrl)
	ctx := context.Background()
	existing := queuedItem("s1", models.OpUpdate, 3)

	mockRepo.EXPECT().GetItem(ctx, "s1").Return(existing, nil)

	var stored models.PendingItem
	mockRepo.EXPECT().UpsertItem(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, item models.PendingItem) error {
			stored = item
			return nil
		},
	)

	item, err := svc.Enqueue(ctx, testScreen("s1", 3), models.OpDelete)
	require.NoError(t, err)
	require.NotNil(t, item)

	assert.Equal(t, models.OpDelete, stored.Operation)
	assert.Nil(t, stored.Snapshot, "the superseded update body is dropped")
	assert.Equal(t, existing.ChangeID, stored.ChangeID)
	assert.Equal(t, existing.BaseVersion, stored.BaseVersion)
}

func TestQueueService_Coalesce_DeleteThenCreate_BecomesUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestQueueSvc(t, ctrl)
	ctx := context.Background()
	existing := queuedItem("s1", models.OpDelete, 5)
	recreated := testScreen("s1", 0)

	mockRepo.EXPECT().GetItem(ctx, "s1").Return(existing, nil)

	var stored models.PendingItem
	mockRepo.EXPECT().UpsertItem(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, item models.PendingItem) error {
			stored = item
			return nil
		},
	)

	item, err := svc.Enqueue(ctx, recreated, models.OpCreate)
	require.NoError(t, err)
	require.NotNil(t, item)

	// Серверная копия ещё жива (delete не отправлен), поэтому пересоздание
	// превращается в update поверх неё.
	assert.Equal(t, models.OpUpdate, stored.Operation)
	assert.Equal(t, recreated, decodeSnapshot(t, stored.Snapshot))
	assert.Equal(t, existing.BaseVersion, stored.BaseVersion)
}

func TestQueueService_Coalesce_DeleteThenUpdate_Rejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestQueueSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().GetItem(ctx, "s1").Return(queuedItem("s1", models.OpDelete, 5), nil)

	_, err := svc.Enqueue(ctx, testScreen("s1", 5), models.OpUpdate)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrScreenDeleted)
}

func TestQueueService_Coalesce_AmendUpsertError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestQueueSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().GetItem(ctx, "s1").Return(queuedItem("s1", models.OpUpdate, 3), nil)
	mockRepo.EXPECT().UpsertItem(ctx, gomock.Any()).Return(errPendingStorage)

	_, err := svc.Enqueue(ctx, testScreen("s1", 3), models.OpUpdate)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "amend queued item")
}

// ── Drainable / Items / Remove ───────────────────────────────────────────────

func TestQueueService_Drainable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestQueueSvc(t, ctrl)
	ctx := context.Background()
	now := time.Now()
	due := []models.PendingItem{{ScreenID: "s1"}, {ScreenID: "s2"}}

	mockRepo.EXPECT().GetDrainable(ctx, now).Return(due, nil)

	items, err := svc.Drainable(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, due, items)
}

func TestQueueService_Drainable_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestQueueSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().GetDrainable(ctx, gomock.Any()).Return(nil, errPendingStorage)

	_, err := svc.Drainable(ctx, time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load drainable items")
}

func TestQueueService_Items(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestQueueSvc(t, ctrl)
	ctx := context.Background()
	all := []models.PendingItem{{ScreenID: "s1"}}

	mockRepo.EXPECT().GetAllItems(ctx).Return(all, nil)

	items, err := svc.Items(ctx)
	require.NoError(t, err)
	assert.Equal(t, all, items)
}

func TestQueueService_Remove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestQueueSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().RemoveItem(ctx, "s1").Return(nil)

	require.NoError(t, svc.Remove(ctx, "s1"))
}

// ── RecordFailure ────────────────────────────────────────────────────────────

func TestQueueService_RecordFailure_CountsAttemptAndSchedulesRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestQueueSvc(t, ctrl)
	ctx := context.Background()
	item := queuedItem("s1", models.OpUpdate, 3)
	item.AttemptCount = 0

	before := time.Now()
	var gotAttempts int
	var gotNext time.Time
	mockRepo.EXPECT().UpdateAttempt(ctx, "s1", gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, attempts int, next time.Time) error {
			gotAttempts = attempts
			gotNext = next
			return nil
		},
	)

	exhausted, err := svc.RecordFailure(ctx, item)
	require.NoError(t, err)

	assert.False(t, exhausted, "first failure leaves budget")
	assert.Equal(t, 1, gotAttempts)
	// Первый повтор ждёт BaseDelay (плюс джиттер до четверти задержки).
	assert.True(t, gotNext.After(before.Add(100*time.Millisecond-time.Millisecond)))
	assert.True(t, gotNext.Before(before.Add(200*time.Millisecond)))
}

func TestQueueService_RecordFailure_ExhaustsBudget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestQueueSvc(t, ctrl)
	ctx := context.Background()
	item := queuedItem("s1", models.OpUpdate, 3)
	item.AttemptCount = 2 // третья неудача подряд — бюджет MaxAttempts=3 исчерпан

	mockRepo.EXPECT().UpdateAttempt(ctx, "s1", 3, gomock.Any()).Return(nil)

	exhausted, err := svc.RecordFailure(ctx, item)
	require.NoError(t, err)
	assert.True(t, exhausted)
}

func TestQueueService_RecordFailure_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestQueueSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().UpdateAttempt(ctx, "s1", gomock.Any(), gomock.Any()).Return(errPendingStorage)

	_, err := svc.RecordFailure(ctx, queuedItem("s1", models.OpUpdate, 3))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record failed attempt")
}

// ── Restage ──────────────────────────────────────────────────────────────────

func TestQueueService_Restage_RebasesOntoRemoteVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestQueueSvc(t, ctrl)
	ctx := context.Background()
	item := queuedItem("s1", models.OpUpdate, 3)
	resolved := testScreen("s1", 3)
	resolved.Name = "kept local edit"

	var stored models.PendingItem
	mockRepo.EXPECT().UpsertItem(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, it models.PendingItem) error {
			stored = it
			return nil
		},
	)

	before := time.Now()
	restaged, err := svc.Restage(ctx, item, resolved, 9)
	require.NoError(t, err)

	assert.Equal(t, restaged, stored)
	assert.Equal(t, int64(9), restaged.BaseVersion, "the item is rebased onto the server's current version")
	assert.Zero(t, restaged.AttemptCount, "a rebase grants a fresh attempt budget")
	assert.False(t, restaged.NextAttemptAt.Before(before), "restaged items are dispatchable immediately")
	assert.Equal(t, "kept local edit", decodeSnapshot(t, restaged.Snapshot).Name)
	assert.Equal(t, item.ChangeID, restaged.ChangeID)
}

func TestQueueService_Restage_CreateBecomesUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestQueueSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().UpsertItem(ctx, gomock.Any()).Return(nil)

	// Конфликт на create означает, что id на сервере уже занят.
	restaged, err := svc.Restage(ctx, queuedItem("s1", models.OpCreate, 0), testScreen("s1", 0), 2)
	require.NoError(t, err)
	assert.Equal(t, models.OpUpdate, restaged.Operation)
}

func TestQueueService_Restage_DeleteKeepsNoSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestQueueSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().UpsertItem(ctx, gomock.Any()).Return(nil)

	restaged, err := svc.Restage(ctx, queuedItem("s1", models.OpDelete, 5), testScreen("s1", 5), 8)
	require.NoError(t, err)
	assert.Equal(t, models.OpDelete, restaged.Operation)
	assert.Nil(t, restaged.Snapshot)
	assert.Equal(t, int64(8), restaged.BaseVersion)
}

// ── ResetBackoff ─────────────────────────────────────────────────────────────

func TestQueueService_ResetBackoff(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestQueueSvc(t, ctrl)
	ctx := context.Background()
	now := time.Now()

	mockRepo.EXPECT().ResetAttempts(ctx, "s1", now).Return(nil)

	require.NoError(t, svc.ResetBackoff(ctx, "s1", now))
}

func TestQueueService_ResetBackoff_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestQueueSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().ResetAttempts(ctx, "s1", gomock.Any()).Return(errPendingStorage)

	err := svc.ResetBackoff(ctx, "s1", time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reset queued item backoff")
}

// ── RetryPolicy ──────────────────────────────────────────────────────────────

func TestRetryPolicy_NextDelay_GrowsExponentially(t *testing.T) {
	policy := RetryPolicy{BaseDelay: 100 * time.Millisecond, MaxDelay: 5 * time.Second, MaxAttempts: 10}

	tests := []struct {
		attempts int
		min      time.Duration // чистая задержка без джиттера
		max      time.Duration // задержка + максимальный джиттер (delay/4)
	}{
		{attempts: 0, min: 100 * time.Millisecond, max: 125 * time.Millisecond},
		{attempts: 1, min: 200 * time.Millisecond, max: 250 * time.Millisecond},
		{attempts: 2, min: 400 * time.Millisecond, max: 500 * time.Millisecond},
		{attempts: 3, min: 800 * time.Millisecond, max: 1000 * time.Millisecond},
		{attempts: 5, min: 3200 * time.Millisecond, max: 4000 * time.Millisecond},
	}

	for _, tc := range tests {
		delay := policy.NextDelay(tc.attempts)
		assert.GreaterOrEqual(t, delay, tc.min, "attempts=%d", tc.attempts)
		assert.Less(t, delay, tc.max, "attempts=%d", tc.attempts)
	}
}

func TestRetryPolicy_NextDelay_CappedAtMaxDelay(t *testing.T) {
	policy := RetryPolicy{BaseDelay: 100 * time.Millisecond, MaxDelay: 1 * time.Second, MaxAttempts: 10}

	for _, attempts := range []int{4, 10, 63, 1000} {
		delay := policy.NextDelay(attempts)
		assert.GreaterOrEqual(t, delay, 1*time.Second, "attempts=%d", attempts)
		assert.Less(t, delay, 1250*time.Millisecond, "attempts=%d: cap plus jitter at most", attempts)
	}
}

func TestRetryPolicy_NextDelay_ZeroValueUsesFallbacks(t *testing.T) {
	var policy RetryPolicy

	delay := policy.NextDelay(0)
	assert.GreaterOrEqual(t, delay, fallbackBaseDelay)
	assert.Less(t, delay, fallbackBaseDelay+fallbackBaseDelay/4)

	// Далёкий повтор упирается в потолок.
	far := policy.NextDelay(100)
	assert.GreaterOrEqual(t, far, fallbackMaxDelay)
	assert.Less(t, far, fallbackMaxDelay+fallbackMaxDelay/4)
}

func TestRetryPolicy_NextDelay_NeverNegative(t *testing.T) {
	policy := RetryPolicy{BaseDelay: time.Hour, MaxDelay: 24 * time.Hour, MaxAttempts: 3}

	// Достаточно удвоений, чтобы переполнить int64 без защиты.
	delay := policy.NextDelay(500)
	assert.Greater(t, delay, time.Duration(0))
	assert.LessOrEqual(t, delay, 30*time.Hour)
}

func TestRetryPolicy_Exhausted(t *testing.T) {
	policy := RetryPolicy{MaxAttempts: 3}

	assert.False(t, policy.Exhausted(0))
	assert.False(t, policy.Exhausted(2))
	assert.True(t, policy.Exhausted(3))
	assert.True(t, policy.Exhausted(4))
}

func TestRetryPolicy_Exhausted_ZeroValueUsesFallback(t *testing.T) {
	var policy RetryPolicy

	assert.False(t, policy.Exhausted(fallbackMaxAttempts-1))
	assert.True(t, policy.Exhausted(fallbackMaxAttempts))
}

func TestNewRetryPolicy_MapsConfig(t *testing.T) {
	policy := NewRetryPolicy(config.ClientRetry{
		BaseDelay:   2 * time.Second,
		MaxDelay:    time.Minute,
		MaxAttempts: 7,
	})

	assert.Equal(t, 2*time.Second, policy.BaseDelay)
	assert.Equal(t, time.Minute, policy.MaxDelay)
	assert.Equal(t, 7, policy.MaxAttempts)
}
