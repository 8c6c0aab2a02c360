package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/beerhall/internal/db"
	"github.com/nikolayk812/beerhall/internal/domain"
	"github.com/nikolayk812/beerhall/internal/port"
)

type brewerRepository struct {
	q *db.Queries
}

func NewBrewer(pool *pgxpool.Pool) port.BrewerRepository {
	return &brewerRepository{q: db.New(pool)}
}

// GetAll returns brewers ordered by name. Beers are not loaded.
func (r *brewerRepository) GetAll(ctx context.Context) ([]domain.Brewer, error) {
	rows, err := r.q.ListBrewers(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListBrewers: %w", err)
	}

	brewers := make([]domain.Brewer, 0, len(rows))
	for _, row := range rows {
		brewers = append(brewers, domain.Brewer{
			ID:              row.ID,
			Name:            row.Name,
			Street:          deref(row.Street),
			Location:        mapLocation(row.PostalCode, row.LocationName),
			ContactEmail:    deref(row.ContactEmail),
			DateEstablished: row.DateEstablished,
			Description:     deref(row.Description),
			Turnover:        row.Turnover,
		})
	}

	return brewers, nil
}

func (r *brewerRepository) GetByID(ctx context.Context, id int64) (domain.Brewer, error) {
	row, err := r.q.GetBrewer(ctx, id)
	if err != nil {
		return domain.Brewer{}, fmt.Errorf("q.GetBrewer: %w", notFound(err, fmt.Sprintf("brewer[%d]", id)))
	}

	beerRows, err := r.q.ListBeersByBrewer(ctx, id)
	if err != nil {
		return domain.Brewer{}, fmt.Errorf("q.ListBeersByBrewer: %w", err)
	}

	brewer := domain.Brewer{
		ID:              row.ID,
		Name:            row.Name,
		Street:          deref(row.Street),
		Location:        mapLocation(row.PostalCode, row.LocationName),
		ContactEmail:    deref(row.ContactEmail),
		DateEstablished: row.DateEstablished,
		Description:     deref(row.Description),
		Turnover:        row.Turnover,
	}

	for _, beerRow := range beerRows {
		beer, err := mapBeerToDomain(beerRow)
		if err != nil {
			return domain.Brewer{}, err
		}
		brewer.Beers = append(brewer.Beers, &beer)
	}

	return brewer, nil
}

func (r *brewerRepository) Add(ctx context.Context, brewer domain.Brewer) (int64, error) {
	id, err := r.q.InsertBrewer(ctx, db.InsertBrewerParams{
		Name:            brewer.Name,
		Street:          nullable(brewer.Street),
		PostalCode:      postalCodeOf(brewer.Location),
		ContactEmail:    nullable(brewer.ContactEmail),
		DateEstablished: brewer.DateEstablished,
		Description:     nullable(brewer.Description),
		Turnover:        brewer.Turnover,
	})
	if err != nil {
		return 0, fmt.Errorf("q.InsertBrewer: %w", err)
	}

	return id, nil
}

func (r *brewerRepository) Update(ctx context.Context, brewer domain.Brewer) error {
	rowsAffected, err := r.q.UpdateBrewer(ctx, db.UpdateBrewerParams{
		ID:              brewer.ID,
		Name:            brewer.Name,
		Street:          nullable(brewer.Street),
		PostalCode:      postalCodeOf(brewer.Location),
		ContactEmail:    nullable(brewer.ContactEmail),
		DateEstablished: brewer.DateEstablished,
		Description:     nullable(brewer.Description),
		Turnover:        brewer.Turnover,
	})
	if err != nil {
		return fmt.Errorf("q.UpdateBrewer: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("brewer[%d]: %w", brewer.ID, domain.ErrNotFound)
	}

	return nil
}

// Delete removes the brewer and its beers.
func (r *brewerRepository) Delete(ctx context.Context, id int64) (bool, error) {
	rowsAffected, err := r.q.DeleteBrewer(ctx, id)
	if err != nil {
		return false, fmt.Errorf("q.DeleteBrewer: %w", err)
	}

	return rowsAffected > 0, nil
}
