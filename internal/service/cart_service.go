package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/nikolayk812/beerhall/internal/domain"
	"github.com/nikolayk812/beerhall/internal/port"
	"go.uber.org/zap"
)

const (
	addFailed    = "Sorry, something went wrong, the product could not be added to your cart..."
	removeFailed = "Sorry, something went wrong, the product was not removed from your cart..."
)

// CartService mutates the session cart passed in by the caller. Saving the
// cart afterwards is the caller's job.
type CartService struct {
	beers  port.BeerRepository
	logger *zap.Logger
}

func NewCartService(beers port.BeerRepository, logger *zap.Logger) *CartService {
	return &CartService{
		beers:  beers,
		logger: logger,
	}
}

// Add looks up the beer and adds quantity units of it to the cart at its current price.
func (s *CartService) Add(ctx context.Context, cart *domain.Cart, beerID int64, quantity int) (Flash, error) {
	if cart == nil {
		return failure(addFailed), fmt.Errorf("cart is nil")
	}

	beer, err := s.beers.GetByID(ctx, beerID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error("beer lookup failed", zap.Int64("beer_id", beerID), zap.Error(err))
		}
		return failure(addFailed), fmt.Errorf("beers.GetByID: %w", err)
	}

	if err := cart.AddLine(beer.Product(), quantity); err != nil {
		return failureFor(err, addFailed), err
	}

	return success("%d x %s was added to your cart", quantity, beer.Name), nil
}

// Remove deletes the line of the beer from the cart. A beer that has since
// left the catalog is still removed using the cart's own snapshot of it.
func (s *CartService) Remove(ctx context.Context, cart *domain.Cart, beerID int64) (Flash, error) {
	if cart == nil {
		return failure(removeFailed), fmt.Errorf("cart is nil")
	}

	product, err := s.productFor(ctx, cart, beerID)
	if err != nil {
		return failure(removeFailed), err
	}

	cart.RemoveLine(product)

	return success("%s was removed from your cart", product.Name), nil
}

func (s *CartService) productFor(ctx context.Context, cart *domain.Cart, beerID int64) (domain.Product, error) {
	beer, err := s.beers.GetByID(ctx, beerID)
	if err == nil {
		return beer.Product(), nil
	}

	if errors.Is(err, domain.ErrNotFound) {
		for _, l := range cart.Lines() {
			if l.Product.ID == beerID {
				return l.Product, nil
			}
		}
	} else {
		s.logger.Error("beer lookup failed", zap.Int64("beer_id", beerID), zap.Error(err))
	}

	return domain.Product{}, fmt.Errorf("beers.GetByID: %w", err)
}
