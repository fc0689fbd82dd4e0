package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/articlesvc/articles/handlers"
	"github.com/articlesvc/articles/internal/article/repository"
	"github.com/articlesvc/articles/internal/article/service"
	"github.com/articlesvc/articles/internal/config"
	"github.com/articlesvc/articles/internal/database"
	"github.com/articlesvc/articles/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	// LOG_LEVEL: debug|info|warn|error|fatal
	logger.Init(os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	logger.Infof("config loaded: env=%s mongo_db=%s redis=%v rate_limit=%v max_articles=%d",
		cfg.Server.Environment, cfg.MongoDB.Database, cfg.Redis.Host != "", cfg.RateLimit.Enabled, cfg.Articles.Max)

	ctx := context.Background()

	// The store is required: refuse to start without it.
	client, err := database.ConnectWithRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, cfg.MongoDB.ConnectAttempts, time.Second)
	if err != nil {
		logger.Fatalf("%v", err)
	}
	logger.Infof("MongoDB connected")
	col := client.Database(cfg.MongoDB.Database).Collection(cfg.MongoDB.Collection)
	repo, err := repository.NewMongoRepo(ctx, col)
	if err != nil {
		_ = database.Disconnect(client, cfg.MongoDB.Timeout)
		logger.Fatalf("failed to prepare articles collection: %v", err)
	}
	svc := service.New(repo, service.WithMaxArticles(cfg.Articles.Max))

	checks := map[string]handlers.Check{
		"mongodb": func(ctx context.Context) error { return database.Ping(ctx, client, cfg.MongoDB.Timeout) },
	}

	// Redis is optional and only backs the shared rate limiter.
	var rdb *redis.Client
	if addr := cfg.Redis.Addr(); addr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s): %v; using in-memory rate limiting", addr, err)
			_ = rdb.Close()
			rdb = nil
		} else {
			logger.Infof("Connected to Redis: %s", addr)
			defer rdb.Close()
			if cfg.RateLimit.Enabled && cfg.RateLimit.UseRedis {
				checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
			}
		}
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      buildRouter(cfg, svc, checks, rdb),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Starting articles service on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	select {
	case err := <-errCh:
		_ = database.Disconnect(client, cfg.MongoDB.Timeout)
		logger.Fatalf("server failed: %v", err)
	case <-sigCtx.Done():
	}

	logger.Infof("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("graceful shutdown failed: %v", err)
	}
	if err := database.Disconnect(client, cfg.MongoDB.Timeout); err != nil {
		logger.Errorf("mongo disconnect: %v", err)
	}
}
