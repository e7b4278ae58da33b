package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/alnsrinivas/Milkmitra/internal/domain/catalog"
	"github.com/alnsrinivas/Milkmitra/internal/domain/farm"
	"github.com/alnsrinivas/Milkmitra/internal/domain/journal"
	"github.com/alnsrinivas/Milkmitra/internal/domain/order"
	"github.com/alnsrinivas/Milkmitra/internal/domain/subscription"
	"github.com/alnsrinivas/Milkmitra/internal/domain/support"
	"github.com/alnsrinivas/Milkmitra/internal/infrastructure/config"
	"github.com/alnsrinivas/Milkmitra/internal/infrastructure/logger"
	"github.com/alnsrinivas/Milkmitra/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

func main() {
	var logLevel string
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	log, err := logger.New(&logger.Config{
		Level:  logLevel,
		Format: "console",
		Output: "stdout",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	log.Info("Running schema migration",
		zap.String("database", cfg.Database.DBName),
		zap.String("host", cfg.Database.Host),
	)

	err = db.DB.AutoMigrate(
		&farm.Farm{},
		&catalog.Product{},
		&catalog.Review{},
		&order.Order{},
		&order.Item{},
		&subscription.Subscription{},
		&support.Issue{},
		&journal.Entry{},
	)
	if err != nil {
		log.Fatal("Migration failed", zap.Error(err))
	}

	log.Info("Migration completed")
}
