// Package config loads the service configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/currency"
)

const (
	CartStoreRedis    = "redis"
	CartStorePostgres = "postgres"
)

type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	DatabaseURL    string `env:"DATABASE_URL,required,notEmpty"`
	MigrateOnStart bool   `env:"MIGRATE_ON_START" envDefault:"true"`

	CartStore     string        `env:"CART_STORE" envDefault:"redis"`
	CartTTL       time.Duration `env:"CART_TTL" envDefault:"30m"`
	RedisAddr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`

	Currency string `env:"CURRENCY" envDefault:"EUR"`

	CatalogBreakerTimeout     time.Duration `env:"CATALOG_BREAKER_TIMEOUT" envDefault:"10s"`
	CatalogBreakerMaxFailures uint32        `env:"CATALOG_BREAKER_MAX_FAILURES" envDefault:"5"`

	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	LogDevelopment bool   `env:"LOG_DEVELOPMENT" envDefault:"false"`
}

func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("env.ParseAs: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.CartStore != CartStoreRedis && c.CartStore != CartStorePostgres {
		return fmt.Errorf("CART_STORE[%s] must be %s or %s", c.CartStore, CartStoreRedis, CartStorePostgres)
	}

	if _, err := c.CurrencyUnit(); err != nil {
		return err
	}

	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive")
	}

	return nil
}

func (c Config) CurrencyUnit() (currency.Unit, error) {
	unit, err := currency.ParseISO(c.Currency)
	if err != nil {
		return currency.Unit{}, fmt.Errorf("CURRENCY[%s] is not valid: %w", c.Currency, err)
	}
	return unit, nil
}
