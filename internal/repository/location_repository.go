package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/beerhall/internal/db"
	"github.com/nikolayk812/beerhall/internal/domain"
	"github.com/nikolayk812/beerhall/internal/port"
)

type locationRepository struct {
	q *db.Queries
}

func NewLocation(pool *pgxpool.Pool) port.LocationRepository {
	return &locationRepository{q: db.New(pool)}
}

func (r *locationRepository) GetByPostalCode(ctx context.Context, postalCode string) (domain.Location, error) {
	if postalCode == "" {
		return domain.Location{}, fmt.Errorf("postalCode is empty")
	}

	row, err := r.q.GetLocation(ctx, postalCode)
	if err != nil {
		return domain.Location{}, fmt.Errorf("q.GetLocation: %w", notFound(err, "location["+postalCode+"]"))
	}

	return domain.Location{PostalCode: row.PostalCode, Name: row.Name}, nil
}

func (r *locationRepository) GetAll(ctx context.Context) ([]domain.Location, error) {
	rows, err := r.q.ListLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListLocations: %w", err)
	}

	locations := make([]domain.Location, 0, len(rows))
	for _, row := range rows {
		locations = append(locations, domain.Location{PostalCode: row.PostalCode, Name: row.Name})
	}

	return locations, nil
}
