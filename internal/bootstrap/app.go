// Package bootstrap wires configuration, storage, services, and routes.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/mrexodia/pangram-webui/internal/analyses"
	"github.com/mrexodia/pangram-webui/internal/config"
	"github.com/mrexodia/pangram-webui/internal/pangram"
	"github.com/mrexodia/pangram-webui/internal/server"
	"github.com/mrexodia/pangram-webui/internal/storage/db"
	"github.com/mrexodia/pangram-webui/internal/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	DB              *sql.DB
	Repo            analyses.Repo
	Service         *analyses.Service
	AnalysisHandler *analyses.Handler
	WebHandler      *analyses.WebHandler
}

// Build prepares shared dependencies and the router.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	database, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var repo analyses.Repo
	if database != nil {
		repo = analyses.NewSQLiteRepo(database)
	} else {
		repo = analyses.NewMemoryRepo()
	}

	var client analyses.DetectionClient
	if c, err := pangram.NewClient(cfg.PangramAPIKey, cfg.PangramAPIURL); err != nil {
		if cfg.Env == "production" {
			return nil, err
		}
		// Dev servers without a key can still browse history.
		telemetry.Error("bootstrap.detection_client_unavailable", map[string]any{"error": err.Error()})
	} else {
		client = c
	}

	svc := &analyses.Service{
		Repo:      repo,
		Client:    client,
		UnitPrice: cfg.CreditUnitPrice,
	}

	app := &App{
		Config:          cfg,
		DB:              database,
		Repo:            repo,
		Service:         svc,
		AnalysisHandler: analyses.NewHandler(svc),
		WebHandler:      analyses.NewWebHandler(svc),
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          cfg,
		AnalysisHandler: app.AnalysisHandler,
		WebHandler:      app.WebHandler,
	})

	return app, nil
}

// Close releases the app's resources.
func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	database, err := db.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}
	if err := db.RunMigrations(ctx, database); err != nil {
		database.Close()
		return nil, fmt.Errorf("migrate history database: %w", err)
	}
	return database, nil
}
