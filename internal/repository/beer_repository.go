package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/beerhall/internal/db"
	"github.com/nikolayk812/beerhall/internal/domain"
	"github.com/nikolayk812/beerhall/internal/port"
)

type beerRepository struct {
	q *db.Queries
}

func NewBeer(pool *pgxpool.Pool) port.BeerRepository {
	return &beerRepository{q: db.New(pool)}
}

func (r *beerRepository) GetByID(ctx context.Context, id int64) (domain.Beer, error) {
	row, err := r.q.GetBeer(ctx, id)
	if err != nil {
		return domain.Beer{}, fmt.Errorf("q.GetBeer: %w", notFound(err, fmt.Sprintf("beer[%d]", id)))
	}

	return mapBeerToDomain(row)
}

// GetAll returns every beer ordered by name.
func (r *beerRepository) GetAll(ctx context.Context) ([]domain.Beer, error) {
	rows, err := r.q.ListBeers(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListBeers: %w", err)
	}

	beers := make([]domain.Beer, 0, len(rows))
	for _, row := range rows {
		beer, err := mapBeerToDomain(row)
		if err != nil {
			return nil, err
		}
		beers = append(beers, beer)
	}

	return beers, nil
}

func mapBeerToDomain(row db.Beer) (domain.Beer, error) {
	price, err := mapMoney(row.PriceAmount, row.PriceCurrency)
	if err != nil {
		return domain.Beer{}, fmt.Errorf("beer[%d]: %w", row.ID, err)
	}

	return domain.Beer{
		ID:              row.ID,
		BrewerID:        row.BrewerID,
		Name:            row.Name,
		Description:     deref(row.Description),
		AlcoholByVolume: row.AlcoholByVolume,
		Price:           price,
	}, nil
}
