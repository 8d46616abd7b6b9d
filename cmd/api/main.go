package main

import (
	"context"
	"log"

	"github.com/mrexodia/pangram-webui/internal/bootstrap"
	"github.com/mrexodia/pangram-webui/internal/config"
	"github.com/mrexodia/pangram-webui/internal/server"
)

func main() {
	cfg := config.Load()

	app, err := bootstrap.Build(context.Background(), cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}
	defer app.Close()

	addr := server.Addr(cfg.Port)
	log.Printf("Starting server on %s (db: %s)", addr, cfg.DatabasePath)

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
