package analyses

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

// These tests exercise driver failure paths that a healthy database never
// produces.

func newMockRepo(t *testing.T) (*SQLiteRepo, sqlmock.Sqlmock) {
	t.Helper()

	database, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewSQLiteRepo(database), mock
}

func TestSQLiteRepoCreateDriverError(t *testing.T) {
	repo, mock := newMockRepo(t)
	wantErr := errors.New("disk I/O error")
	mock.ExpectExec("INSERT INTO analyses").WillReturnError(wantErr)

	_, err := repo.Create(context.Background(), Analysis{CreatedAt: time.Now(), Text: "x"})
	if !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want %v", err, wantErr)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSQLiteRepoListDriverError(t *testing.T) {
	repo, mock := newMockRepo(t)
	wantErr := errors.New("database is locked")
	mock.ExpectQuery("SELECT (.+) FROM analyses").WillReturnError(wantErr)

	_, err := repo.List(context.Background(), 10, 0)
	if !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want %v", err, wantErr)
	}
}

func TestSQLiteRepoStatsDriverError(t *testing.T) {
	repo, mock := newMockRepo(t)
	wantErr := errors.New("malformed database")
	mock.ExpectQuery("SELECT COUNT").WillReturnError(wantErr)

	_, err := repo.Stats(context.Background())
	if !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want %v", err, wantErr)
	}
}

func TestSQLiteRepoDeleteRowsAffectedError(t *testing.T) {
	repo, mock := newMockRepo(t)
	wantErr := errors.New("result unavailable")
	mock.ExpectExec("DELETE FROM analyses").
		WillReturnResult(sqlmock.NewErrorResult(wantErr))

	_, err := repo.Delete(context.Background(), 1)
	if !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want %v", err, wantErr)
	}
}
