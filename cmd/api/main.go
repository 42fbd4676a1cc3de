package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/tradesim-dev/tradesim/internal/api"
	"github.com/tradesim-dev/tradesim/internal/auth"
	"github.com/tradesim-dev/tradesim/internal/config"
	"github.com/tradesim-dev/tradesim/internal/db"
	"github.com/tradesim-dev/tradesim/internal/logger"
	"github.com/tradesim-dev/tradesim/internal/metrics"
	"github.com/tradesim-dev/tradesim/internal/quotes"
	"github.com/tradesim-dev/tradesim/internal/repository/postgres"
	"github.com/tradesim-dev/tradesim/internal/services"
	"github.com/tradesim-dev/tradesim/internal/worker"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if os.Getenv("APP_MIGRATE") == "true" {
		if err := db.RunMigrations(ctx, pool); err != nil {
			log.Error("migrations", "err", err)
			os.Exit(1)
		}
	}

	metrics.Init()

	repos := postgres.NewRepositories(pool)
	wp := worker.NewPool(4, metrics.WorkerQueueDepth)
	defer wp.Stop()

	var provider quotes.Provider = quotes.NewClient(cfg.QuoteBaseURL, cfg.QuoteAPIKey)
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		provider = quotes.NewCached(provider, rdb)
		log.Info("quote cache enabled", "addr", cfg.RedisAddr)
	}
	provider = quotes.NewInstrumented(provider)

	tm := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.SessionTTL)
	userSvc := services.NewUserService(repos.Users)
	tradingSvc := services.NewTradingService(repos.Ledger, provider, repos.Quotes, wp)
	portfolioSvc := services.NewPortfolioService(repos.Ledger, provider)

	r := api.NewRouter(cfg, api.RouterDeps{
		Users:     userSvc,
		Trader:    tradingSvc,
		Portfolio: portfolioSvc,
		Quotes:    provider,
		TM:        tm,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
