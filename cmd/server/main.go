package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/JustJay7/bpso-complaint-intake/internal/cache"
	"github.com/JustJay7/bpso-complaint-intake/internal/config"
	"github.com/JustJay7/bpso-complaint-intake/internal/database"
	"github.com/JustJay7/bpso-complaint-intake/internal/server"
	"github.com/JustJay7/bpso-complaint-intake/internal/store"
	"github.com/JustJay7/bpso-complaint-intake/pkg/logger"
)

func main() {
	var migrate bool
	flag.BoolVar(&migrate, "migrate", false, "Run submission log migrations and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	db, err := database.Initialize(cfg.DatabasePath)
	if err != nil {
		log.Fatal("Failed to initialize database", "error", err)
	}

	if migrate {
		if err := database.Migrate(db); err != nil {
			log.Fatal("Failed to run migrations", "error", err)
		}
		log.Info("Database migrations completed successfully")
		return
	}

	client, err := store.NewClient(context.Background(), cfg)
	if err != nil {
		log.Fatal("Failed to initialize DynamoDB client", "error", err)
	}
	writer := store.NewWriter(client, cfg.StoreTimeout, cfg.RollbackOnFailure, log)

	cacheService := cache.NewCache(cfg.CacheSize, cfg.CacheTTL)

	srv := server.New(cfg, db, cacheService, writer, log)

	log.Info("Starting BPSO complaint intake",
		"host", cfg.Host,
		"port", cfg.Port,
		"region", cfg.AWSRegion,
		"base_table", cfg.Tables.BPSO,
	)

	if err := srv.Run(); err != nil {
		log.Fatal("Server failed to start", "error", err)
	}
}
