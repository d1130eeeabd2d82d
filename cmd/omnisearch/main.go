package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/connecthub/omnisearch/internal/config"
	"github.com/connecthub/omnisearch/internal/domain/entity"
	"github.com/connecthub/omnisearch/internal/domain/search/query"
	logpkg "github.com/connecthub/omnisearch/internal/logger"
	"github.com/connecthub/omnisearch/internal/metrics"
	"github.com/connecthub/omnisearch/internal/repository/pagecache"
	"github.com/connecthub/omnisearch/internal/repository/postgres"
	chiTransport "github.com/connecthub/omnisearch/internal/transport/chi"
	healthuc "github.com/connecthub/omnisearch/internal/usecase/health"
	historyuc "github.com/connecthub/omnisearch/internal/usecase/history"
	searchuc "github.com/connecthub/omnisearch/internal/usecase/search"
	suggestuc "github.com/connecthub/omnisearch/internal/usecase/suggest"
	"github.com/connecthub/omnisearch/internal/version"
)

func main() {
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.New(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting omnisearch API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
	)

	ctx := context.Background()

	pool, err := postgres.NewPool(ctx, cfg.Database.URL)
	if err != nil {
		logger.Fatal("Failed to create database pool", zap.Error(err))
	}
	defer pool.Close()

	readiness := time.Duration(cfg.Database.ReadinessTimeoutSec) * time.Second
	if err := postgres.WaitForReady(ctx, pool, readiness); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	// Optional Redis page cache — absence never blocks startup semantics,
	// but a configured-and-unreachable cache is a hard failure.
	var cache *pagecache.Cache
	if cfg.Cache.URL != "" {
		cache, err = pagecache.New(ctx, cfg.Cache.URL, time.Duration(cfg.Cache.TTLSec)*time.Second, logger)
		if err != nil {
			logger.Fatal("Failed to create page cache", zap.Error(err))
		}
		logger.Info("Page cache enabled", zap.Int("ttl_sec", cfg.Cache.TTLSec))
	}

	metrics.RegisterHTTPMetrics()
	metrics.RegisterSearchMetrics()

	// One repository per entity type — the only collaborators the core sees.
	repos := map[entity.Type]searchuc.Repository{
		entity.TypeUser:     postgres.NewUserRepository(pool),
		entity.TypeJob:      postgres.NewJobRepository(pool),
		entity.TypeEvent:    postgres.NewEventRepository(pool),
		entity.TypeService:  postgres.NewServiceRepository(pool),
		entity.TypeInvestor: postgres.NewInvestorRepository(pool),
		entity.TypeProject:  postgres.NewProjectRepository(pool),
	}

	// History is process-wide and volatile: empty at startup, discarded at
	// shutdown. Suggestions and analytics tolerate that.
	historyStore := historyuc.NewStore()
	suggestEngine := suggestuc.New(cfg.Suggestions.Popular, cfg.Suggestions.Trending).
		WithHistory(historyStore)

	searchSvc := searchuc.New(repos, suggestEngine, historyStore).
		WithEntityTimeout(time.Duration(cfg.Search.EntityTimeoutSec) * time.Second)

	var cachePinger healthuc.Pinger
	if cache != nil {
		cachePinger = cache
	}
	healthSvc := healthuc.New(pool, cachePinger)

	limits := query.Limits{
		DefaultLimit: cfg.Search.DefaultPageSize,
		MaxLimit:     cfg.Search.MaxPageSize,
	}
	server := chiTransport.NewServer(searchSvc, suggestEngine, historyStore, healthSvc, cache, limits, logger)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      server.Router(),
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}
