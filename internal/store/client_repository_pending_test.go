package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-screen-sync/internal/logger"
	"github.com/MKhiriev/go-screen-sync/models"
)

func newTestPendingRepo(t *testing.T) (*pendingRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &pendingRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func testPendingItem() models.PendingItem {
	enqueued := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	return models.PendingItem{
		ScreenID:      "screen-1",
		Operation:     models.OpUpdate,
		Snapshot:      []byte(`{"type":"menu"}`),
		BaseVersion:   3,
		ChangeID:      "change-abc",
		EnqueuedAt:    enqueued,
		NextAttemptAt: enqueued,
	}
}

func pendingRowsFor(items ...models.PendingItem) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"screen_id", "operation", "snapshot", "base_version",
		"change_id", "enqueued_at", "attempt_count", "next_attempt_at",
	})
	for _, item := range items {
		rows.AddRow(item.ScreenID, item.Operation.String(), []byte(item.Snapshot),
			item.BaseVersion, item.ChangeID, item.EnqueuedAt, item.AttemptCount, item.NextAttemptAt)
	}
	return rows
}

func TestUpsertItem_Success(t *testing.T) {
	repo, mock, db := newTestPendingRepo(t)
	defer db.Close()

	item := testPendingItem()

	mock.ExpectExec("INSERT INTO pending_items").
		WithArgs(item.ScreenID, "update", []byte(item.Snapshot), item.BaseVersion,
			item.ChangeID, item.EnqueuedAt, item.AttemptCount, item.NextAttemptAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.UpsertItem(context.Background(), item); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpsertItem_ExecError(t *testing.T) {
	repo, mock, db := newTestPendingRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO pending_items").
		WillReturnError(errors.New("disk I/O error"))

	err := repo.UpsertItem(context.Background(), testPendingItem())
	if err == nil || !strings.Contains(err.Error(), "failed to save pending item") {
		t.Fatalf("expected save pending item error, got %v", err)
	}
}

func TestGetItem_Success(t *testing.T) {
	repo, mock, db := newTestPendingRepo(t)
	defer db.Close()

	want := testPendingItem()

	mock.ExpectQuery("FROM pending_items").
		WithArgs(want.ScreenID).
		WillReturnRows(pendingRowsFor(want))

	got, err := repo.GetItem(context.Background(), want.ScreenID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Operation != models.OpUpdate {
		t.Errorf("expected operation update, got %s", got.Operation)
	}
	if got.BaseVersion != want.BaseVersion {
		t.Errorf("expected base_version %d, got %d", want.BaseVersion, got.BaseVersion)
	}
	if string(got.Snapshot) != string(want.Snapshot) {
		t.Errorf("expected snapshot %s, got %s", want.Snapshot, got.Snapshot)
	}
}

func TestGetItem_NotFound(t *testing.T) {
	repo, mock, db := newTestPendingRepo(t)
	defer db.Close()

	mock.ExpectQuery("FROM pending_items").
		WithArgs("missing").
		WillReturnRows(pendingRowsFor())

	_, err := repo.GetItem(context.Background(), "missing")
	if !errors.Is(err, ErrPendingItemNotFound) {
		t.Fatalf("expected ErrPendingItemNotFound, got %v", err)
	}
}

func TestGetItem_NullSnapshotForDelete(t *testing.T) {
	repo, mock, db := newTestPendingRepo(t)
	defer db.Close()

	enqueued := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"screen_id", "operation", "snapshot", "base_version",
		"change_id", "enqueued_at", "attempt_count", "next_attempt_at",
	}).AddRow("screen-1", "delete", nil, 3, "change-del", enqueued, 0, enqueued)

	mock.ExpectQuery("FROM pending_items").
		WithArgs("screen-1").
		WillReturnRows(rows)

	got, err := repo.GetItem(context.Background(), "screen-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Operation != models.OpDelete {
		t.Errorf("expected operation delete, got %s", got.Operation)
	}
	if got.Snapshot != nil {
		t.Errorf("expected nil snapshot for delete, got %s", got.Snapshot)
	}
}

func TestGetAllItems_Success(t *testing.T) {
	repo, mock, db := newTestPendingRepo(t)
	defer db.Close()

	first := testPendingItem()
	second := testPendingItem()
	second.ScreenID = "screen-2"
	second.Operation = models.OpCreate
	second.BaseVersion = 0

	mock.ExpectQuery("FROM pending_items").
		WillReturnRows(pendingRowsFor(first, second))

	items, err := repo.GetAllItems(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[1].Operation != models.OpCreate {
		t.Errorf("expected second operation create, got %s", items[1].Operation)
	}
}

func TestGetDrainable_PassesNow(t *testing.T) {
	repo, mock, db := newTestPendingRepo(t)
	defer db.Close()

	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("LEFT JOIN sync_records").
		WithArgs(now).
		WillReturnRows(pendingRowsFor(testPendingItem()))

	items, err := repo.GetDrainable(context.Background(), now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestGetDrainable_QueryError(t *testing.T) {
	repo, mock, db := newTestPendingRepo(t)
	defer db.Close()

	mock.ExpectQuery("LEFT JOIN sync_records").
		WillReturnError(errors.New("db failure"))

	_, err := repo.GetDrainable(context.Background(), time.Now())
	if err == nil || !strings.Contains(err.Error(), "failed to query pending items") {
		t.Fatalf("expected query pending items error, got %v", err)
	}
}

func TestUpdateAttempt_Success(t *testing.T) {
	repo, mock, db := newTestPendingRepo(t)
	defer db.Close()

	next := time.Date(2026, 3, 14, 12, 0, 30, 0, time.UTC)

	mock.ExpectExec("UPDATE pending_items").
		WithArgs(2, next, "screen-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateAttempt(context.Background(), "screen-1", 2, next); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateAttempt_NotFound(t *testing.T) {
	repo, mock, db := newTestPendingRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE pending_items").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateAttempt(context.Background(), "missing", 1, time.Now())
	if !errors.Is(err, ErrPendingItemNotFound) {
		t.Fatalf("expected ErrPendingItemNotFound, got %v", err)
	}
}

func TestResetAttempts_Success(t *testing.T) {
	repo, mock, db := newTestPendingRepo(t)
	defer db.Close()

	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	mock.ExpectExec("UPDATE pending_items").
		WithArgs(now, "screen-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.ResetAttempts(context.Background(), "screen-1", now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestResetAttempts_NotFound(t *testing.T) {
	repo, mock, db := newTestPendingRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE pending_items").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.ResetAttempts(context.Background(), "missing", time.Now())
	if !errors.Is(err, ErrPendingItemNotFound) {
		t.Fatalf("expected ErrPendingItemNotFound, got %v", err)
	}
}

func TestRemoveItem_Success(t *testing.T) {
	repo, mock, db := newTestPendingRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM pending_items").
		WithArgs("screen-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.RemoveItem(context.Background(), "screen-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCountItems_Success(t *testing.T) {
	repo, mock, db := newTestPendingRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountItems(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 3 {
		t.Errorf("expected count 3, got %d", count)
	}
}
