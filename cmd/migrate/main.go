package main

// Run database migrations:
//   go run ./cmd/migrate

import (
	"context"
	"log"
	"os"

	"github.com/mrexodia/pangram-webui/internal/config"
	"github.com/mrexodia/pangram-webui/internal/storage/db"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	database, err := db.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Printf("failed to open database: %v", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := db.RunMigrations(ctx, database); err != nil {
		log.Printf("failed to run migrations: %v", err)
		os.Exit(1)
	}
}
