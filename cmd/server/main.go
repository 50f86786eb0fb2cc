package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"camping-fun/server/config"
	"camping-fun/server/internal/api/handler"
	"camping-fun/server/internal/api/middleware"
	"camping-fun/server/internal/api/router"
	"camping-fun/server/internal/model"
	"camping-fun/server/internal/repository"
	"camping-fun/server/internal/service"
	"camping-fun/server/pkg/database"
	applogger "camping-fun/server/pkg/logger"
	"camping-fun/server/pkg/redis"
)

func main() {
	configPath := flag.String("config", "", "path to a config file (default: ./config.yaml or ./config/config.yaml)")
	flag.Parse()

	// 1. config
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	// 2. logger
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting",
		zap.Int("port", cfg.Server.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. database + migrations
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("connect database", zap.Error(err))
	}
	if err := database.Migrate(db, logger, model.All()...); err != nil {
		logger.Fatal("migrate database", zap.Error(err))
	}

	// 4. redis is optional; without it writes are not rate limited
	var limiter middleware.RateLimiter
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = redis.NewClient(&cfg.Redis, logger)
		if err != nil {
			logger.Warn("redis unavailable, rate limiting disabled", zap.Error(err))
		} else {
			limiter = rdb
		}
	}

	// 5. repository → service → handler
	repo := repository.NewRepository(db)
	svc := service.NewService(repo, logger)
	h := handler.NewHandler(svc)

	engine := router.Setup(cfg, h, repo, limiter, logger)

	// 6. serve with graceful shutdown
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}

	if err := database.Close(db); err != nil {
		logger.Error("close database", zap.Error(err))
	}

	if rdb != nil {
		rdb.Close()
	}

	logger.Info("server stopped")
}
