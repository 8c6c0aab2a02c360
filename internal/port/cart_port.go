package port

import (
	"context"

	"github.com/nikolayk812/beerhall/internal/domain"
	"golang.org/x/text/currency"
)

// CartStore keeps the cart of a session between requests.
// Load returns an empty cart for an unknown session.
type CartStore interface {
	Load(ctx context.Context, sessionID string, cur currency.Unit) (*domain.Cart, error)
	Save(ctx context.Context, sessionID string, cart *domain.Cart) error
	Delete(ctx context.Context, sessionID string) error
}
