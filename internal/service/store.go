package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/nikolayk812/beerhall/internal/domain"
	"github.com/nikolayk812/beerhall/internal/port"
)

type Store struct {
	beers port.BeerRepository
}

func NewStore(beers port.BeerRepository) *Store {
	return &Store{beers: beers}
}

// Beers lists every beer for sale, ordered by name.
func (s *Store) Beers(ctx context.Context) ([]domain.Beer, error) {
	beers, err := s.beers.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("beers.GetAll: %w", err)
	}

	slices.SortStableFunc(beers, func(a, b domain.Beer) int {
		return strings.Compare(a.Name, b.Name)
	})

	return beers, nil
}
