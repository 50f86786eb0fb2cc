// Command seed wipes the database and fills it with sample campers,
// activities and signups.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"camping-fun/server/config"
	"camping-fun/server/internal/model"
	"camping-fun/server/internal/repository"
	"camping-fun/server/pkg/database"
	applogger "camping-fun/server/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "path to a config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("connect database", zap.Error(err))
	}
	defer database.Close(db)

	if err := database.Migrate(db, logger, model.All()...); err != nil {
		logger.Fatal("migrate database", zap.Error(err))
	}

	repo := repository.NewRepository(db)
	stats, err := repository.Seed(context.Background(), repo, repository.DefaultSeedData())
	if err != nil {
		logger.Fatal("seed", zap.Error(err))
	}

	logger.Info("seed complete",
		zap.Int("campers", stats.Campers),
		zap.Int("activities", stats.Activities),
		zap.Int("signups", stats.Signups),
	)
}
