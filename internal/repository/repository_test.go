package repository_test

import (
	"context"
	"fmt"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/nikolayk812/beerhall/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"golang.org/x/text/currency"
)

func startPostgres(ctx context.Context) (*postgres.PostgresContainer, string, error) {
	postgresContainer, err := postgres.Run(ctx, "postgres:17.6-alpine3.22",
		postgres.BasicWaitStrategies(),
		postgres.WithInitScripts(
			"../../migrations/01_schema.up.sql",
			"../../migrations/02_seed.up.sql"),
	)
	if err != nil {
		return nil, "", fmt.Errorf("postgres.Run: %w", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", fmt.Errorf("pc.ConnectionString: %w", err)
	}

	return postgresContainer, connStr, nil
}

func eur(amount string) domain.Money {
	return domain.NewMoney(decimal.RequireFromString(amount), currency.EUR)
}

func randomProduct() domain.Product {
	return domain.Product{
		ID:    int64(gofakeit.IntRange(100, 1_000_000)),
		Name:  gofakeit.BeerName(),
		Price: domain.NewMoney(decimal.NewFromFloat(gofakeit.Price(1, 20)).Round(2), currency.EUR),
	}
}

func moneyComparer() cmp.Option {
	return cmp.Comparer(func(x, y domain.Money) bool {
		return x.Equal(y)
	})
}

func ptr[T any](v T) *T {
	return &v
}
