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

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/beerhall/internal/catalog"
	"github.com/nikolayk812/beerhall/internal/config"
	api "github.com/nikolayk812/beerhall/internal/http"
	"github.com/nikolayk812/beerhall/internal/migrations"
	"github.com/nikolayk812/beerhall/internal/port"
	"github.com/nikolayk812/beerhall/internal/repository"
	"github.com/nikolayk812/beerhall/internal/service"
	"github.com/nikolayk812/beerhall/internal/session"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("beerhall stopped", zap.Error(err))
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cur, err := cfg.CurrencyUnit()
	if err != nil {
		return err
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("pgxpool.New: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return fmt.Errorf("pool.Ping: %w", err)
	}

	if cfg.MigrateOnStart {
		if err := migrations.Up(pool, logger); err != nil {
			return fmt.Errorf("migrations.Up: %w", err)
		}
	}

	carts, closeCarts, err := newCartStore(ctx, cfg, pool)
	if err != nil {
		return err
	}
	defer closeCarts()

	beers := catalog.NewGuard(repository.NewBeer(pool), catalog.Settings{
		MaxFailures: cfg.CatalogBreakerMaxFailures,
		OpenTimeout: cfg.CatalogBreakerTimeout,
	}, logger)
	locations := repository.NewLocation(pool)
	customers := repository.NewCustomer(pool)
	brewers := repository.NewBrewer(pool)

	handler := api.NewHandler(api.Deps{
		Carts:     carts,
		Cart:      service.NewCartService(beers, logger),
		Checkout:  service.NewCheckout(locations, customers, logger),
		Brewers:   service.NewBrewers(brewers, locations, logger),
		Customers: service.NewCustomers(customers, locations, logger),
		Store:     service.NewStore(beers),
		Currency:  cur,
		Logger:    logger,
	})

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      handler.Routes(cfg.RequestTimeout),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("beerhall starting",
			zap.String("addr", cfg.HTTPAddr),
			zap.String("cart_store", cfg.CartStore),
			zap.Stringer("currency", cur))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("srv.ListenAndServe: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("srv.Shutdown: %w", err)
	}

	logger.Info("server exited")
	return nil
}

func newCartStore(ctx context.Context, cfg config.Config, pool *pgxpool.Pool) (port.CartStore, func(), error) {
	if cfg.CartStore == config.CartStorePostgres {
		return repository.NewCart(pool), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("redis ping: %w", err)
	}

	return session.NewRedisCartStore(client, cfg.CartTTL), func() { _ = client.Close() }, nil
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL[%s] is not valid: %w", cfg.LogLevel, err)
	}

	zc := zap.NewProductionConfig()
	if cfg.LogDevelopment {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build()
}
