package port

import (
	"context"

	"github.com/nikolayk812/beerhall/internal/domain"
)

type CustomerRepository interface {
	GetByEmail(ctx context.Context, email string) (domain.Customer, error)
	Add(ctx context.Context, customer domain.Customer) (int64, error)
	// AddOrder persists the order and its lines atomically.
	AddOrder(ctx context.Context, customerID int64, order domain.Order) error
	ListOrders(ctx context.Context, customerID int64) ([]domain.Order, error)
}
