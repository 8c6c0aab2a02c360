package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/nikolayk812/beerhall/internal/domain"
	"github.com/nikolayk812/beerhall/internal/port"
	"go.uber.org/zap"
)

type CustomerInput struct {
	Email      string
	Name       string
	FirstName  string
	Street     string
	PostalCode string
}

// Customers manages customer records. Authentication belongs to the identity
// layer in front of the application.
type Customers struct {
	customers port.CustomerRepository
	locations port.LocationRepository
	logger    *zap.Logger
}

func NewCustomers(customers port.CustomerRepository, locations port.LocationRepository, logger *zap.Logger) *Customers {
	return &Customers{
		customers: customers,
		locations: locations,
		logger:    logger,
	}
}

func (s *Customers) Register(ctx context.Context, in CustomerInput) (domain.Customer, error) {
	customer, err := domain.NewCustomer(in.Email, in.Name, in.FirstName)
	if err != nil {
		return domain.Customer{}, err
	}
	customer.Street = in.Street

	if in.PostalCode != "" {
		location, err := s.locations.GetByPostalCode(ctx, in.PostalCode)
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Customer{}, unknownPostalCode(in.PostalCode)
		}
		if err != nil {
			return domain.Customer{}, fmt.Errorf("locations.GetByPostalCode: %w", err)
		}
		customer.Location = &location
	}

	_, err = s.customers.GetByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return domain.Customer{}, &domain.ValidationError{Field: "email", Reason: "email address is already registered"}
	case !errors.Is(err, domain.ErrNotFound):
		return domain.Customer{}, fmt.Errorf("customers.GetByEmail: %w", err)
	}

	id, err := s.customers.Add(ctx, *customer)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("customers.Add: %w", err)
	}
	customer.ID = id

	s.logger.Info("customer registered", zap.Int64("customer_id", id))

	return *customer, nil
}

// Current loads the customer the identity layer authenticated.
func (s *Customers) Current(ctx context.Context, email string) (*domain.Customer, error) {
	customer, err := s.customers.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("customers.GetByEmail: %w", err)
	}

	return &customer, nil
}

func (s *Customers) Orders(ctx context.Context, customer *domain.Customer) ([]domain.Order, error) {
	orders, err := s.customers.ListOrders(ctx, customer.ID)
	if err != nil {
		return nil, fmt.Errorf("customers.ListOrders: %w", err)
	}

	return orders, nil
}
