package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nikolayk812/beerhall/internal/domain"
	"github.com/nikolayk812/beerhall/internal/port"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

const DefaultTTL = 30 * time.Minute

// RedisCartStore keeps session carts as JSON snapshots under cart:<session id>.
// Every Save refreshes the TTL, so an idle session loses its cart after ttl.
type RedisCartStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ port.CartStore = (*RedisCartStore)(nil)

func NewRedisCartStore(client *redis.Client, ttl time.Duration) *RedisCartStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &RedisCartStore{
		client: client,
		ttl:    ttl,
	}
}

type cartSnapshot struct {
	Currency string         `json:"currency"`
	Lines    []lineSnapshot `json:"lines"`
}

type lineSnapshot struct {
	ProductID     int64           `json:"product_id"`
	ProductName   string          `json:"product_name"`
	PriceAmount   decimal.Decimal `json:"price_amount"`
	PriceCurrency string          `json:"price_currency"`
	Quantity      int             `json:"quantity"`
}

func (s *RedisCartStore) Load(ctx context.Context, sessionID string, cur currency.Unit) (*domain.Cart, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("sessionID is empty")
	}

	data, err := s.client.Get(ctx, cartKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.NewCart(cur), nil
	}
	if err != nil {
		return nil, fmt.Errorf("client.Get: %w", err)
	}

	var snapshot cartSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("json.Unmarshal: %w", err)
	}

	// a cart stored under another currency does not survive a currency switch
	if snapshot.Currency != cur.String() {
		return domain.NewCart(cur), nil
	}

	lines, err := mapSnapshotToLines(snapshot)
	if err != nil {
		return nil, fmt.Errorf("mapSnapshotToLines: %w", err)
	}

	cart, err := domain.RestoreCart(cur, lines)
	if err != nil {
		return nil, fmt.Errorf("domain.RestoreCart: %w", err)
	}

	return cart, nil
}

func (s *RedisCartStore) Save(ctx context.Context, sessionID string, cart *domain.Cart) error {
	if sessionID == "" {
		return fmt.Errorf("sessionID is empty")
	}
	if cart == nil {
		return fmt.Errorf("cart is nil")
	}

	data, err := json.Marshal(mapCartToSnapshot(cart))
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err := s.client.Set(ctx, cartKey(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("client.Set: %w", err)
	}

	return nil
}

func (s *RedisCartStore) Delete(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("sessionID is empty")
	}

	if err := s.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("client.Del: %w", err)
	}

	return nil
}

func mapCartToSnapshot(cart *domain.Cart) cartSnapshot {
	lines := cart.Lines()

	snapshot := cartSnapshot{
		Currency: cart.Currency().String(),
		Lines:    make([]lineSnapshot, 0, len(lines)),
	}
	for _, l := range lines {
		snapshot.Lines = append(snapshot.Lines, lineSnapshot{
			ProductID:     l.Product.ID,
			ProductName:   l.Product.Name,
			PriceAmount:   l.Product.Price.Amount,
			PriceCurrency: l.Product.Price.Currency.String(),
			Quantity:      l.Quantity,
		})
	}

	return snapshot
}

func mapSnapshotToLines(snapshot cartSnapshot) ([]domain.CartLine, error) {
	lines := make([]domain.CartLine, 0, len(snapshot.Lines))

	for _, l := range snapshot.Lines {
		parsedCurrency, err := currency.ParseISO(l.PriceCurrency)
		if err != nil {
			return nil, fmt.Errorf("currency[%s] is not valid: %w", l.PriceCurrency, err)
		}

		lines = append(lines, domain.CartLine{
			Product: domain.Product{
				ID:    l.ProductID,
				Name:  l.ProductName,
				Price: domain.NewMoney(l.PriceAmount, parsedCurrency),
			},
			Quantity: l.Quantity,
		})
	}

	return lines, nil
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:%s", sessionID)
}
