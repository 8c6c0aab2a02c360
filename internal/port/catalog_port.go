package port

import (
	"context"

	"github.com/nikolayk812/beerhall/internal/domain"
)

type BeerRepository interface {
	GetByID(ctx context.Context, id int64) (domain.Beer, error)
	GetAll(ctx context.Context) ([]domain.Beer, error)
}

type LocationRepository interface {
	GetByPostalCode(ctx context.Context, postalCode string) (domain.Location, error)
	GetAll(ctx context.Context) ([]domain.Location, error)
}

type BrewerRepository interface {
	GetAll(ctx context.Context) ([]domain.Brewer, error)
	GetByID(ctx context.Context, id int64) (domain.Brewer, error)
	Add(ctx context.Context, brewer domain.Brewer) (int64, error)
	Update(ctx context.Context, brewer domain.Brewer) error
	Delete(ctx context.Context, id int64) (bool, error)
}
