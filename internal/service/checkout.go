package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/nikolayk812/beerhall/internal/domain"
	"github.com/nikolayk812/beerhall/internal/port"
	"go.uber.org/zap"
)

// CheckoutView is what the customer sees when starting a checkout.
type CheckoutView struct {
	State     domain.CheckoutState
	Locations []domain.Location
	Shipping  domain.ShippingDetails
}

type CheckoutResult struct {
	State domain.CheckoutState
	Order *domain.Order
}

// Checkout turns a session cart into a persisted order.
//
// Complete validates everything before it writes anything: an unknown postal
// code or a delivery date in the past leaves both the cart and the order
// history untouched. The cart is cleared only after the order was stored.
type Checkout struct {
	locations port.LocationRepository
	customers port.CustomerRepository
	now       func() time.Time
	logger    *zap.Logger
}

type CheckoutOption func(*Checkout)

// WithClock overrides the clock used for order dates and delivery date checks.
func WithClock(now func() time.Time) CheckoutOption {
	return func(c *Checkout) {
		c.now = now
	}
}

func NewCheckout(locations port.LocationRepository, customers port.CustomerRepository, logger *zap.Logger, opts ...CheckoutOption) *Checkout {
	c := &Checkout{
		locations: locations,
		customers: customers,
		now:       time.Now,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Checkout) Begin(ctx context.Context, cart *domain.Cart) (CheckoutView, error) {
	if cart == nil || cart.IsEmpty() {
		return CheckoutView{State: domain.CheckoutEmpty}, nil
	}

	locations, err := c.locations.GetAll(ctx)
	if err != nil {
		return CheckoutView{}, fmt.Errorf("locations.GetAll: %w", err)
	}

	slices.SortStableFunc(locations, func(a, b domain.Location) int {
		return strings.Compare(a.Name, b.Name)
	})

	return CheckoutView{
		State:     domain.CheckoutAwaitingDetails,
		Locations: locations,
	}, nil
}

func (c *Checkout) Complete(ctx context.Context, customer *domain.Customer, cart *domain.Cart, shipping domain.ShippingDetails) (CheckoutResult, error) {
	if cart == nil || cart.IsEmpty() {
		return CheckoutResult{State: domain.CheckoutEmpty}, ErrEmptyCart
	}
	if customer == nil {
		return CheckoutResult{State: domain.CheckoutAwaitingDetails}, fmt.Errorf("customer is nil")
	}

	awaiting := CheckoutResult{State: domain.CheckoutAwaitingDetails}

	location, err := c.locations.GetByPostalCode(ctx, shipping.PostalCode)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return awaiting, unknownPostalCode(shipping.PostalCode)
		}
		return awaiting, fmt.Errorf("%w: locations.GetByPostalCode: %w", ErrCheckoutFailed, err)
	}

	order, err := domain.NewOrder(cart, shipping, location, c.now())
	if err != nil {
		return awaiting, err
	}

	if err := c.customers.AddOrder(ctx, customer.ID, order); err != nil {
		c.logger.Error("order not placed",
			zap.Int64("customer_id", customer.ID),
			zap.Stringer("order_id", order.ID),
			zap.Error(err))
		return awaiting, fmt.Errorf("%w: customers.AddOrder: %w", ErrCheckoutFailed, err)
	}

	customer.AttachOrder(order)
	cart.Clear()

	c.logger.Info("order placed",
		zap.Int64("customer_id", customer.ID),
		zap.Stringer("order_id", order.ID),
		zap.Stringer("total", order.Total()))

	return CheckoutResult{State: domain.CheckoutPlaced, Order: &order}, nil
}
