// Package catalog guards product lookups against a failing catalog database.
package catalog

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/nikolayk812/beerhall/internal/domain"
	"github.com/nikolayk812/beerhall/internal/port"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ErrUnavailable is returned while the breaker is open.
var ErrUnavailable = errors.New("catalog unavailable")

type Settings struct {
	// consecutive failures that open the breaker
	MaxFailures uint32
	// how long the breaker stays open before a probe request
	OpenTimeout time.Duration
}

// Guard wraps a BeerRepository with a circuit breaker and collapses concurrent
// lookups of the same beer into one call. Not-found is a successful outcome
// for the breaker.
type Guard struct {
	next    port.BeerRepository
	byID    *gobreaker.CircuitBreaker[domain.Beer]
	all     *gobreaker.CircuitBreaker[[]domain.Beer]
	flights singleflight.Group
	logger  *zap.Logger
}

var _ port.BeerRepository = (*Guard)(nil)

func NewGuard(next port.BeerRepository, settings Settings, logger *zap.Logger) *Guard {
	if settings.MaxFailures == 0 {
		settings.MaxFailures = 5
	}
	if settings.OpenTimeout <= 0 {
		settings.OpenTimeout = 10 * time.Second
	}

	g := &Guard{
		next:   next,
		logger: logger,
	}
	g.byID = gobreaker.NewCircuitBreaker[domain.Beer](g.breakerSettings("catalog.get_by_id", settings))
	g.all = gobreaker.NewCircuitBreaker[[]domain.Beer](g.breakerSettings("catalog.get_all", settings))

	return g
}

func (g *Guard) breakerSettings(name string, s Settings) gobreaker.Settings {
	return gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     s.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= s.MaxFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, domain.ErrNotFound) || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			g.logger.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.Stringer("from", from),
				zap.Stringer("to", to))
		},
	}
}

// GetByID shares one lookup between concurrent callers. The shared lookup is
// detached from the caller that started it; each caller still stops waiting
// when its own context is done.
func (g *Guard) GetByID(ctx context.Context, id int64) (domain.Beer, error) {
	shared := context.WithoutCancel(ctx)

	ch := g.flights.DoChan(strconv.FormatInt(id, 10), func() (interface{}, error) {
		return g.byID.Execute(func() (domain.Beer, error) {
			return g.next.GetByID(shared, id)
		})
	})

	select {
	case <-ctx.Done():
		return domain.Beer{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return domain.Beer{}, mapBreakerError(res.Err)
		}
		return res.Val.(domain.Beer), nil
	}
}

func (g *Guard) GetAll(ctx context.Context) ([]domain.Beer, error) {
	beers, err := g.all.Execute(func() ([]domain.Beer, error) {
		return g.next.GetAll(ctx)
	})
	if err != nil {
		return nil, mapBreakerError(err)
	}

	return beers, nil
}

func mapBreakerError(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return errors.Join(ErrUnavailable, err)
	}
	return err
}
