package config_test

import (
	"testing"
	"time"

	"github.com/nikolayk812/beerhall/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://beerhall@localhost:5432/beerhall")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, config.CartStoreRedis, cfg.CartStore)
	assert.Equal(t, 30*time.Minute, cfg.CartTTL)
	assert.True(t, cfg.MigrateOnStart)

	unit, err := cfg.CurrencyUnit()
	require.NoError(t, err)
	assert.Equal(t, currency.EUR, unit)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		wantError string
	}{
		{
			name: "postgres cart store: ok",
			env: map[string]string{
				"DATABASE_URL": "postgres://localhost/beerhall",
				"CART_STORE":   "postgres",
				"CURRENCY":     "USD",
			},
		},
		{
			name:      "missing database url: error",
			env:       map[string]string{},
			wantError: "DATABASE_URL",
		},
		{
			name: "unknown cart store: error",
			env: map[string]string{
				"DATABASE_URL": "postgres://localhost/beerhall",
				"CART_STORE":   "memcached",
			},
			wantError: "CART_STORE[memcached] must be redis or postgres",
		},
		{
			name: "invalid currency: error",
			env: map[string]string{
				"DATABASE_URL": "postgres://localhost/beerhall",
				"CURRENCY":     "BEER",
			},
			wantError: "CURRENCY[BEER] is not valid",
		},
		{
			name: "invalid duration: error",
			env: map[string]string{
				"DATABASE_URL":    "postgres://localhost/beerhall",
				"REQUEST_TIMEOUT": "soon",
			},
			wantError: "env.ParseAs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DATABASE_URL", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := config.Load()
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}
			require.NoError(t, err)
		})
	}
}
