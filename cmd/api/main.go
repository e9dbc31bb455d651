package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/salon-queue/internal/audit"
	"github.com/BruksfildServices01/salon-queue/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-queue/internal/db"
	"github.com/BruksfildServices01/salon-queue/internal/logging"
	"github.com/BruksfildServices01/salon-queue/internal/middleware"
	"github.com/BruksfildServices01/salon-queue/internal/notify"
	"github.com/BruksfildServices01/salon-queue/internal/routes"
	"github.com/BruksfildServices01/salon-queue/internal/timezone"
)

func main() {

	cfg := config.Load()

	logger := logging.New(cfg.LogLevel)
	slog.SetDefault(logger)

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	auditDispatcher := audit.NewDispatcher(audit.New(db), logger)

	var base notify.Notifier = notify.NewLogNotifier(logger)
	if cfg.SMTP.Enabled() {
		base = notify.NewSMTPNotifier(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Pass, cfg.SMTP.From)
	}
	notifier := notify.NewDispatcher(base, logger, 256)

	var limiter *middleware.RedisRateLimiter
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		rdb := redis.NewClient(opts)
		defer rdb.Close()
		limiter = middleware.NewRedisRateLimiter(rdb, cfg.RateLimitPerMinute, time.Minute, "salon:rl")
	}

	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		DB:          db,
		Config:      cfg,
		Logger:      logger,
		Notifier:    notifier,
		Audit:       auditDispatcher,
		RateLimiter: limiter,
		Clock:       timezone.SystemClock,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server running", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "err", err)
	}

	// Drain pending emails and audit rows after the listener is gone.
	notifier.Close()
	auditDispatcher.Close()

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logger.Info("server stopped")
}
