package repository_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/beerhall/internal/domain"
	"github.com/nikolayk812/beerhall/internal/port"
	"github.com/nikolayk812/beerhall/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/text/currency"
)

type cartRepositorySuite struct {
	suite.Suite

	repo port.CartStore
	pool *pgxpool.Pool
}

// entry point to run the tests in the suite
func TestCartRepositorySuite(t *testing.T) {
	suite.Run(t, new(cartRepositorySuite))
}

// before all tests in the suite
func (suite *cartRepositorySuite) SetupSuite() {
	ctx := suite.T().Context()

	_, connStr, err := startPostgres(ctx)
	suite.Require().NoError(err)

	suite.pool, err = pgxpool.New(ctx, connStr)
	suite.Require().NoError(err)

	suite.repo = repository.NewCart(suite.pool)
}

// after all tests in the suite
func (suite *cartRepositorySuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func (suite *cartRepositorySuite) TestSaveAndLoad() {
	defer suite.deleteAll()

	tests := []struct {
		name      string
		sessionID string
		lines     []domain.CartLine
		wantError string
	}{
		{
			name:      "save cart with lines: ok",
			sessionID: gofakeit.UUID(),
			lines: []domain.CartLine{
				{Product: randomProduct(), Quantity: 2},
				{Product: randomProduct(), Quantity: 1},
				{Product: randomProduct(), Quantity: 7},
			},
		},
		{
			name:      "save empty cart: ok",
			sessionID: gofakeit.UUID(),
		},
		{
			name:      "save with empty session ID: error",
			sessionID: "",
			wantError: "sessionID is empty",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			cart, err := domain.RestoreCart(currency.EUR, tt.lines)
			require.NoError(t, err)

			err = suite.repo.Save(ctx, tt.sessionID, cart)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			loaded, err := suite.repo.Load(ctx, tt.sessionID, currency.EUR)
			require.NoError(t, err)

			assertCart(t, cart, loaded)
		})
	}
}

func (suite *cartRepositorySuite) TestSave_ReplacesPreviousLines() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()
	sessionID := gofakeit.UUID()
	first, second := randomProduct(), randomProduct()

	cart := domain.NewCart(currency.EUR)
	require.NoError(t, cart.AddLine(first, 1))
	require.NoError(t, cart.AddLine(second, 1))
	require.NoError(t, suite.repo.Save(ctx, sessionID, cart))

	require.NoError(t, cart.AddLine(second, 4))
	cart.RemoveLine(first)
	require.NoError(t, suite.repo.Save(ctx, sessionID, cart))

	loaded, err := suite.repo.Load(ctx, sessionID, currency.EUR)
	require.NoError(t, err)

	require.Len(t, loaded.Lines(), 1)
	assert.Equal(t, second.ID, loaded.Lines()[0].Product.ID)
	assert.Equal(t, 5, loaded.NumberOfItems())
}

func (suite *cartRepositorySuite) TestLoad_UnknownSessionIsEmpty() {
	t := suite.T()

	cart, err := suite.repo.Load(t.Context(), gofakeit.UUID(), currency.EUR)
	require.NoError(t, err)

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, currency.EUR, cart.Currency())
}

func (suite *cartRepositorySuite) TestLoad_OtherCurrencyIsEmpty() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()
	sessionID := gofakeit.UUID()

	cart := domain.NewCart(currency.USD)
	product := randomProduct()
	product.Price = domain.NewMoney(product.Price.Amount, currency.USD)
	require.NoError(t, cart.AddLine(product, 2))
	require.NoError(t, suite.repo.Save(ctx, sessionID, cart))

	loaded, err := suite.repo.Load(ctx, sessionID, currency.EUR)
	require.NoError(t, err)

	assert.True(t, loaded.IsEmpty())
	assert.Equal(t, currency.EUR, loaded.Currency())
}

func (suite *cartRepositorySuite) TestDelete() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()
	sessionID := gofakeit.UUID()

	cart := domain.NewCart(currency.EUR)
	require.NoError(t, cart.AddLine(randomProduct(), 3))
	require.NoError(t, suite.repo.Save(ctx, sessionID, cart))

	require.NoError(t, suite.repo.Delete(ctx, sessionID))

	loaded, err := suite.repo.Load(ctx, sessionID, currency.EUR)
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())

	require.EqualError(t, suite.repo.Delete(ctx, ""), "sessionID is empty")
}

func (suite *cartRepositorySuite) TestSaveWithTx_RolledBack() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()
	sessionID := gofakeit.UUID()

	tx, err := suite.pool.Begin(ctx)
	require.NoError(t, err)

	cart := domain.NewCart(currency.EUR)
	require.NoError(t, cart.AddLine(randomProduct(), 1))
	require.NoError(t, repository.NewCartWithTx(tx).Save(ctx, sessionID, cart))
	require.NoError(t, tx.Rollback(ctx))

	loaded, err := suite.repo.Load(ctx, sessionID, currency.EUR)
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}

func (suite *cartRepositorySuite) deleteAll() {
	_, err := suite.pool.Exec(suite.T().Context(), "TRUNCATE TABLE cart_lines")
	suite.NoError(err)
}

func assertCart(t *testing.T, expected, actual *domain.Cart) {
	t.Helper()

	diff := cmp.Diff(expected.Lines(), actual.Lines(), moneyComparer())
	assert.Empty(t, diff)

	assert.True(t, expected.TotalValue().Equal(actual.TotalValue()))
}
