package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-screen-sync/internal/logger"
	"github.com/MKhiriev/go-screen-sync/models"
	"github.com/jackc/pgx/v5/pgconn"
)

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func newTestServerRepo(t *testing.T) (*screenServerRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &screenServerRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func TestUpsertScreen_InsertSuccess(t *testing.T) {
	repo, mock, db := newTestServerRepo(t)
	defer db.Close()

	now := time.Now()
	screen := models.Screen{
		ScreenID: "screen-1",
		Name:     "Main Menu",
		Payload:  []byte(`{"type":"menu"}`),
		IsActive: true,
	}

	rows := screenRows(models.Screen{
		ScreenID: "screen-1", Name: "Main Menu", Version: 1,
		Payload: screen.Payload, CreatedAt: now, UpdatedAt: now, IsActive: true,
	})

	mock.ExpectQuery("INSERT INTO screens").
		WithArgs(screen.ScreenID, screen.Name, []byte(screen.Payload), screen.IsActive, int64(0)).
		WillReturnRows(rows)

	saved, err := repo.UpsertScreen(context.Background(), screen, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.Version != 1 {
		t.Errorf("expected server-assigned version 1, got %d", saved.Version)
	}
}

func TestUpsertScreen_UpdateBumpsVersion(t *testing.T) {
	repo, mock, db := newTestServerRepo(t)
	defer db.Close()

	now := time.Now()
	screen := models.Screen{ScreenID: "screen-1", Name: "Main Menu", Payload: []byte(`{}`), IsActive: true}

	rows := screenRows(models.Screen{
		ScreenID: "screen-1", Name: "Main Menu", Version: 4,
		Payload: screen.Payload, CreatedAt: now, UpdatedAt: now, IsActive: true,
	})

	mock.ExpectQuery("INSERT INTO screens").
		WithArgs(screen.ScreenID, screen.Name, []byte(screen.Payload), screen.IsActive, int64(3)).
		WillReturnRows(rows)

	saved, err := repo.UpsertScreen(context.Background(), screen, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.Version != 4 {
		t.Errorf("expected version 4 after accepted update, got %d", saved.Version)
	}
}

func TestUpsertScreen_VersionConflictReturnsCurrentCopy(t *testing.T) {
	repo, mock, db := newTestServerRepo(t)
	defer db.Close()

	now := time.Now()
	screen := models.Screen{ScreenID: "screen-1", Name: "Main Menu", Payload: []byte(`{}`)}

	// conditional update rejects the stale base version: empty result set
	mock.ExpectQuery("INSERT INTO screens").
		WillReturnRows(screenRows())

	// repo then fetches the current server copy
	current := models.Screen{
		ScreenID: "screen-1", Name: "Main Menu (edited elsewhere)", Version: 7,
		Payload: []byte(`{"v":7}`), CreatedAt: now, UpdatedAt: now, IsActive: true,
	}
	mock.ExpectQuery("SELECT screen_id").
		WithArgs("screen-1").
		WillReturnRows(screenRows(current))

	got, err := repo.UpsertScreen(context.Background(), screen, 2)
	if !errors.Is(err, ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict, got %v", err)
	}
	if got.Version != 7 {
		t.Errorf("expected current server version 7 in conflict result, got %d", got.Version)
	}
}

func TestUpsertScreen_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestServerRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO screens").
		WillReturnError(errors.New("db network error"))

	_, err := repo.UpsertScreen(context.Background(), models.Screen{ScreenID: "screen-1"}, 0)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestGetScreen_Server_Success(t *testing.T) {
	repo, mock, db := newTestServerRepo(t)
	defer db.Close()

	now := time.Now()
	want := models.Screen{
		ScreenID: "screen-1", Name: "Main Menu", Version: 2,
		Payload: []byte(`{"type":"menu"}`), CreatedAt: now, UpdatedAt: now, IsActive: true,
	}

	mock.ExpectQuery("SELECT screen_id").
		WithArgs("screen-1").
		WillReturnRows(screenRows(want))

	got, err := repo.GetScreen(context.Background(), "screen-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Version != 2 {
		t.Errorf("expected version 2, got %d", got.Version)
	}
}

func TestGetScreen_Server_NotFound(t *testing.T) {
	repo, mock, db := newTestServerRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT screen_id").
		WithArgs("missing").
		WillReturnRows(screenRows())

	_, err := repo.GetScreen(context.Background(), "missing")
	if !errors.Is(err, ErrScreenNotFound) {
		t.Fatalf("expected ErrScreenNotFound, got %v", err)
	}
}

func TestGetScreens_Server_IncludesTombstonesWhenAsked(t *testing.T) {
	repo, mock, db := newTestServerRepo(t)
	defer db.Close()

	now := time.Now()
	live := models.Screen{ScreenID: "screen-1", Name: "Live", Version: 1, CreatedAt: now, UpdatedAt: now, IsActive: true}
	tombstone := models.Screen{ScreenID: "screen-2", Name: "Gone", Version: 3, CreatedAt: now, UpdatedAt: now, IsDeleted: true}

	mock.ExpectQuery("FROM screens").
		WillReturnRows(screenRows(live, tombstone))

	screens, err := repo.GetScreens(context.Background(), 0, 0, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(screens) != 2 {
		t.Fatalf("expected 2 screens, got %d", len(screens))
	}
	if !screens[1].IsDeleted {
		t.Error("expected second screen to be a tombstone")
	}
}

func TestSearchScreens_Server_Success(t *testing.T) {
	repo, mock, db := newTestServerRepo(t)
	defer db.Close()

	now := time.Now()
	want := models.Screen{ScreenID: "screen-1", Name: "Main Menu", Version: 1, CreatedAt: now, UpdatedAt: now, IsActive: true}

	mock.ExpectQuery("ILIKE").
		WithArgs(false, "%menu%").
		WillReturnRows(screenRows(want))

	screens, err := repo.SearchScreens(context.Background(), "menu")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(screens) != 1 {
		t.Fatalf("expected 1 screen, got %d", len(screens))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCountScreens_Server_Success(t *testing.T) {
	repo, mock, db := newTestServerRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(false).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	count, err := repo.CountScreens(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 12 {
		t.Errorf("expected count 12, got %d", count)
	}
}

func TestDeleteScreen_Server_TombstonesRow(t *testing.T) {
	repo, mock, db := newTestServerRepo(t)
	defer db.Close()

	now := time.Now()
	tombstone := models.Screen{
		ScreenID: "screen-1", Name: "Main Menu", Version: 4,
		CreatedAt: now, UpdatedAt: now, IsDeleted: true,
	}

	mock.ExpectQuery("UPDATE screens").
		WithArgs("screen-1", int64(3)).
		WillReturnRows(screenRows(tombstone))

	got, err := repo.DeleteScreen(context.Background(), "screen-1", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.IsDeleted {
		t.Error("expected tombstoned screen")
	}
	if got.Version != 4 {
		t.Errorf("expected bumped version 4, got %d", got.Version)
	}
}

func TestDeleteScreen_Server_NotFound(t *testing.T) {
	repo, mock, db := newTestServerRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE screens").
		WillReturnRows(screenRows())
	mock.ExpectQuery("SELECT screen_id").
		WithArgs("missing").
		WillReturnRows(screenRows())

	_, err := repo.DeleteScreen(context.Background(), "missing", 1)
	if !errors.Is(err, ErrScreenNotFound) {
		t.Fatalf("expected ErrScreenNotFound, got %v", err)
	}
}

func TestDeleteScreen_Server_VersionConflict(t *testing.T) {
	repo, mock, db := newTestServerRepo(t)
	defer db.Close()

	now := time.Now()
	current := models.Screen{
		ScreenID: "screen-1", Name: "Main Menu", Version: 9,
		CreatedAt: now, UpdatedAt: now, IsActive: true,
	}

	mock.ExpectQuery("UPDATE screens").
		WillReturnRows(screenRows())
	mock.ExpectQuery("SELECT screen_id").
		WithArgs("screen-1").
		WillReturnRows(screenRows(current))

	got, err := repo.DeleteScreen(context.Background(), "screen-1", 2)
	if !errors.Is(err, ErrVersionConflict) {
		t.Fatalf("expected ErrVersionConflict, got %v", err)
	}
	if got.Version != 9 {
		t.Errorf("expected current version 9 in conflict result, got %d", got.Version)
	}
}

func TestClassifyPgError_RetryableAndNot(t *testing.T) {
	tests := []struct {
		name string
		code string
		want ErrorClassification
	}{
		{"connection failure is retryable", "08006", Retryable},
		{"deadlock is retryable", "40P01", Retryable},
		{"cannot connect now is retryable", "57P03", Retryable},
		{"unique violation is not", "23505", NonRetryable},
		{"syntax error is not", "42601", NonRetryable},
		{"unknown code is not", "99999", NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewPostgresErrorClassifier().Classify(pgError(tt.code))
			if got != tt.want {
				t.Errorf("Classify(%s) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestClassify_NilAndForeignErrors(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	if got := classifier.Classify(nil); got != NonRetryable {
		t.Errorf("Classify(nil) = %v, want NonRetryable", got)
	}
	if got := classifier.Classify(errors.New("plain error")); got != NonRetryable {
		t.Errorf("Classify(plain) = %v, want NonRetryable", got)
	}
}

func TestRetryable_OnDB(t *testing.T) {
	l := logger.NewLogger("test")

	withClassifier := &DB{errorClassificator: NewPostgresErrorClassifier(), logger: l}
	if !withClassifier.Retryable(pgError("08006")) {
		t.Error("expected connection failure to be retryable")
	}
	if withClassifier.Retryable(pgError("23505")) {
		t.Error("expected unique violation to be non-retryable")
	}

	sqliteDB := &DB{logger: l}
	if sqliteDB.Retryable(errors.New("any")) {
		t.Error("expected nil classificator to report non-retryable")
	}

	// wrapped driver errors still classify
	if withClassifier.Retryable(errors.New("query failed")) {
		t.Error("expected plain error to be non-retryable")
	}
	if !withClassifier.Retryable(fmt.Errorf("query failed: %w", pgError("40P01"))) {
		t.Error("expected wrapped deadlock to be retryable")
	}
}
