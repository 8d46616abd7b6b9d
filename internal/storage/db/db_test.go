package db

import (
	"context"
	"path/filepath"
	"testing"
)

func TestOpenCreatesDatabaseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	database, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer database.Close()

	if err := RunMigrations(context.Background(), database); err != nil {
		t.Fatalf("RunMigrations: %v", err)
	}

	var n int
	if err := database.QueryRow(`SELECT COUNT(*) FROM analyses`).Scan(&n); err != nil {
		t.Fatalf("analyses table missing after migration: %v", err)
	}
	if n != 0 {
		t.Fatalf("fresh table has %d rows", n)
	}
}

func TestOpenEmptyPath(t *testing.T) {
	if _, err := Open(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestRunMigrationsNilDB(t *testing.T) {
	if err := RunMigrations(context.Background(), nil); err != nil {
		t.Fatalf("nil database should be a no-op, got %v", err)
	}
}
