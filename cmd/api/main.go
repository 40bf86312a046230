package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"gobayes/adapters/db/postgres/migrations"
	"gobayes/adapters/postgres"
	"gobayes/app"
	"gobayes/internal/api"
	"gobayes/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[API] Failed to load configuration: %v", err)
	}

	var store app.AnalysisStore
	if cfg.Database.URL != "" {
		db, err := sqlx.Connect("postgres", cfg.Database.URL)
		if err != nil {
			log.Fatalf("[API] Failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := migrations.NewMigrator(db.DB).Up(context.Background()); err != nil {
			log.Fatalf("[API] Failed to run migrations: %v", err)
		}
		store = postgres.NewAnalysisRepository(db)
		log.Println("[API] Analysis persistence enabled")
	} else {
		log.Println("[API] DATABASE_URL not set, running compute-only")
	}

	gin.SetMode(cfg.Server.GinMode)

	service := app.NewAnalysisService(store, cfg.Batch.Concurrency)
	server := api.NewServer(service, cfg.Batch.HistorySize)

	if err := server.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("[API] Server failed: %v", err)
	}
}
