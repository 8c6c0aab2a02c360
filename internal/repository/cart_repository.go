package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/beerhall/internal/db"
	"github.com/nikolayk812/beerhall/internal/domain"
	"github.com/nikolayk812/beerhall/internal/port"
	"golang.org/x/text/currency"
)

// cartRepository is the Postgres-backed session cart store (CART_STORE=postgres).
type cartRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewCart(pool *pgxpool.Pool) port.CartStore {
	return &cartRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewCartWithTx(tx pgx.Tx) port.CartStore {
	return &cartRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

func (r *cartRepository) Load(ctx context.Context, sessionID string, cur currency.Unit) (*domain.Cart, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("sessionID is empty")
	}

	rows, err := r.q.GetCart(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("q.GetCart: %w", err)
	}

	// a cart stored under another currency does not survive a currency switch
	for _, row := range rows {
		if row.PriceCurrency != cur.String() {
			return domain.NewCart(cur), nil
		}
	}

	lines, err := mapGetCartRowsToDomain(rows)
	if err != nil {
		return nil, fmt.Errorf("mapGetCartRowsToDomain: %w", err)
	}

	cart, err := domain.RestoreCart(cur, lines)
	if err != nil {
		return nil, fmt.Errorf("domain.RestoreCart: %w", err)
	}

	return cart, nil
}

// Save replaces the stored lines of the session with the lines of cart.
func (r *cartRepository) Save(ctx context.Context, sessionID string, cart *domain.Cart) error {
	if sessionID == "" {
		return fmt.Errorf("sessionID is empty")
	}
	if cart == nil {
		return fmt.Errorf("cart is nil")
	}

	_, err := withTx(ctx, r.pool, r.q, func(q *db.Queries) (struct{}, error) {
		if _, err := q.DeleteCart(ctx, sessionID); err != nil {
			return struct{}{}, fmt.Errorf("q.DeleteCart: %w", err)
		}

		for i, line := range cart.Lines() {
			err := q.AddCartLine(ctx, db.AddCartLineParams{
				SessionID:     sessionID,
				Position:      int32(i),
				ProductID:     line.Product.ID,
				ProductName:   line.Product.Name,
				PriceAmount:   line.Product.Price.Amount,
				PriceCurrency: line.Product.Price.Currency.String(),
				Quantity:      int32(line.Quantity),
			})
			if err != nil {
				return struct{}{}, fmt.Errorf("q.AddCartLine: %w", err)
			}
		}

		return struct{}{}, nil
	})

	return err
}

func (r *cartRepository) Delete(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("sessionID is empty")
	}

	if _, err := r.q.DeleteCart(ctx, sessionID); err != nil {
		return fmt.Errorf("q.DeleteCart: %w", err)
	}

	return nil
}

func mapGetCartRowToDomain(row db.GetCartRow) (domain.CartLine, error) {
	price, err := mapMoney(row.PriceAmount, row.PriceCurrency)
	if err != nil {
		return domain.CartLine{}, err
	}

	return domain.CartLine{
		Product: domain.Product{
			ID:    row.ProductID,
			Name:  row.ProductName,
			Price: price,
		},
		Quantity: int(row.Quantity),
	}, nil
}

func mapGetCartRowsToDomain(rows []db.GetCartRow) ([]domain.CartLine, error) {
	var lines []domain.CartLine

	for _, row := range rows {
		line, err := mapGetCartRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapGetCartRowToDomain: %w", err)
		}

		lines = append(lines, line)
	}

	return lines, nil
}
