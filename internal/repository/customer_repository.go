package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/beerhall/internal/db"
	"github.com/nikolayk812/beerhall/internal/domain"
	"github.com/nikolayk812/beerhall/internal/port"
)

type customerRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewCustomer(pool *pgxpool.Pool) port.CustomerRepository {
	return &customerRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewCustomerWithTx(tx pgx.Tx) port.CustomerRepository {
	return &customerRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

// GetByEmail loads the customer together with its orders.
func (r *customerRepository) GetByEmail(ctx context.Context, email string) (domain.Customer, error) {
	if email == "" {
		return domain.Customer{}, fmt.Errorf("email is empty")
	}

	row, err := r.q.GetCustomerByEmail(ctx, email)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("q.GetCustomerByEmail: %w", notFound(err, "customer["+email+"]"))
	}

	orders, err := r.ListOrders(ctx, row.ID)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("r.ListOrders: %w", err)
	}

	return domain.Customer{
		ID:        row.ID,
		Email:     row.Email,
		Name:      row.Name,
		FirstName: row.FirstName,
		Street:    deref(row.Street),
		Location:  mapLocation(row.PostalCode, row.LocationName),
		Orders:    orders,
	}, nil
}

func (r *customerRepository) Add(ctx context.Context, customer domain.Customer) (int64, error) {
	if customer.Email == "" {
		return 0, fmt.Errorf("email is empty")
	}

	id, err := r.q.InsertCustomer(ctx, db.InsertCustomerParams{
		Email:      customer.Email,
		Name:       customer.Name,
		FirstName:  customer.FirstName,
		Street:     nullable(customer.Street),
		PostalCode: postalCodeOf(customer.Location),
	})
	if err != nil {
		return 0, fmt.Errorf("q.InsertCustomer: %w", err)
	}

	return id, nil
}

func (r *customerRepository) AddOrder(ctx context.Context, customerID int64, order domain.Order) error {
	if customerID <= 0 {
		return fmt.Errorf("customerID is not valid")
	}
	if order.ID == uuid.Nil {
		return fmt.Errorf("order ID is empty")
	}
	if len(order.Lines) == 0 {
		return fmt.Errorf("order has no lines")
	}

	_, err := withTx(ctx, r.pool, r.q, func(q *db.Queries) (struct{}, error) {
		err := q.InsertOrder(ctx, db.InsertOrderParams{
			ID:           order.ID,
			CustomerID:   customerID,
			OrderDate:    order.OrderDate,
			DeliveryDate: order.DeliveryDate,
			Giftwrapping: order.Giftwrapping,
			Street:       order.Street,
			PostalCode:   order.Location.PostalCode,
		})
		if err != nil {
			return struct{}{}, fmt.Errorf("q.InsertOrder: %w", err)
		}

		for i, line := range order.Lines {
			err := q.InsertOrderLine(ctx, db.InsertOrderLineParams{
				OrderID:           order.ID,
				LineNo:            int32(i),
				ProductID:         line.ProductID,
				ProductName:       line.ProductName,
				UnitPriceAmount:   line.UnitPrice.Amount,
				UnitPriceCurrency: line.UnitPrice.Currency.String(),
				Quantity:          int32(line.Quantity),
			})
			if err != nil {
				return struct{}{}, fmt.Errorf("q.InsertOrderLine: %w", err)
			}
		}

		return struct{}{}, nil
	})

	return err
}

// ListOrders returns the orders of the customer, oldest first.
func (r *customerRepository) ListOrders(ctx context.Context, customerID int64) ([]domain.Order, error) {
	orderRows, err := r.q.ListOrdersByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("q.ListOrdersByCustomer: %w", err)
	}

	lineRows, err := r.q.ListOrderLinesByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("q.ListOrderLinesByCustomer: %w", err)
	}

	lines := make(map[uuid.UUID][]domain.OrderLine, len(orderRows))
	for _, row := range lineRows {
		price, err := mapMoney(row.UnitPriceAmount, row.UnitPriceCurrency)
		if err != nil {
			return nil, fmt.Errorf("order[%s]: %w", row.OrderID, err)
		}

		lines[row.OrderID] = append(lines[row.OrderID], domain.OrderLine{
			ProductID:   row.ProductID,
			ProductName: row.ProductName,
			UnitPrice:   price,
			Quantity:    int(row.Quantity),
		})
	}

	orders := make([]domain.Order, 0, len(orderRows))
	for _, row := range orderRows {
		orders = append(orders, domain.Order{
			ID:           row.ID,
			OrderDate:    row.OrderDate,
			DeliveryDate: row.DeliveryDate,
			Giftwrapping: row.Giftwrapping,
			Street:       row.Street,
			Location:     domain.Location{PostalCode: row.PostalCode, Name: row.LocationName},
			Lines:        lines[row.ID],
		})
	}

	return orders, nil
}
