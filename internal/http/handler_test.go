package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	api "github.com/nikolayk812/beerhall/internal/http"
	"github.com/nikolayk812/beerhall/internal/domain"
	"github.com/nikolayk812/beerhall/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

type memoryCarts struct {
	mu      sync.Mutex
	carts   map[string][]domain.CartLine
	saveErr error
}

func (m *memoryCarts) Load(_ context.Context, sessionID string, cur currency.Unit) (*domain.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return domain.RestoreCart(cur, m.carts[sessionID])
}

func (m *memoryCarts) Save(_ context.Context, sessionID string, cart *domain.Cart) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.carts[sessionID] = cart.Lines()
	return nil
}

func (m *memoryCarts) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.carts, sessionID)
	return nil
}

type fakeBeers struct {
	beers []domain.Beer
}

func (f *fakeBeers) GetByID(_ context.Context, id int64) (domain.Beer, error) {
	for _, b := range f.beers {
		if b.ID == id {
			return b, nil
		}
	}
	return domain.Beer{}, fmt.Errorf("beer[%d]: %w", id, domain.ErrNotFound)
}

func (f *fakeBeers) GetAll(context.Context) ([]domain.Beer, error) {
	return f.beers, nil
}

type fakeLocations struct{}

var locations = []domain.Location{
	{PostalCode: "8531", Name: "Bavikhove"},
	{PostalCode: "2870", Name: "Puurs"},
	{PostalCode: "3000", Name: "Leuven"},
}

func (fakeLocations) GetByPostalCode(_ context.Context, postalCode string) (domain.Location, error) {
	for _, l := range locations {
		if l.PostalCode == postalCode {
			return l, nil
		}
	}
	return domain.Location{}, domain.ErrNotFound
}

func (fakeLocations) GetAll(context.Context) ([]domain.Location, error) {
	return append([]domain.Location(nil), locations...), nil
}

type fakeCustomers struct {
	mu          sync.Mutex
	customers   map[string]domain.Customer
	orders      map[int64][]domain.Order
	addOrderErr error
}

func (f *fakeCustomers) GetByEmail(_ context.Context, email string) (domain.Customer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.customers[email]
	if !ok {
		return domain.Customer{}, domain.ErrNotFound
	}
	c.Orders = f.orders[c.ID]
	return c, nil
}

func (f *fakeCustomers) Add(_ context.Context, customer domain.Customer) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	customer.ID = int64(len(f.customers) + 1)
	f.customers[customer.Email] = customer
	return customer.ID, nil
}

func (f *fakeCustomers) AddOrder(_ context.Context, customerID int64, order domain.Order) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.addOrderErr != nil {
		return f.addOrderErr
	}
	f.orders[customerID] = append(f.orders[customerID], order)
	return nil
}

func (f *fakeCustomers) ListOrders(_ context.Context, customerID int64) ([]domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.orders[customerID], nil
}

type fakeBrewers struct {
	mu      sync.Mutex
	brewers map[int64]domain.Brewer
	adds    int
}

func (f *fakeBrewers) GetAll(context.Context) ([]domain.Brewer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Brewer
	for _, b := range f.brewers {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBrewers) GetByID(_ context.Context, id int64) (domain.Brewer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.brewers[id]
	if !ok {
		return domain.Brewer{}, domain.ErrNotFound
	}
	return b, nil
}

func (f *fakeBrewers) Add(_ context.Context, brewer domain.Brewer) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.adds++
	brewer.ID = int64(100 + f.adds)
	f.brewers[brewer.ID] = brewer
	return brewer.ID, nil
}

func (f *fakeBrewers) Update(_ context.Context, brewer domain.Brewer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.brewers[brewer.ID] = brewer
	return nil
}

func (f *fakeBrewers) Delete(_ context.Context, id int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.brewers[id]
	delete(f.brewers, id)
	return ok, nil
}

type testApp struct {
	router    http.Handler
	carts     *memoryCarts
	customers *fakeCustomers
	brewers   *fakeBrewers
	cookie    *http.Cookie
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	duvelABV := 8.5
	beers := &fakeBeers{beers: []domain.Beer{
		{ID: 2, BrewerID: 1, Name: "Wittekerke", Price: eur("2.00")},
		{ID: 1, BrewerID: 1, Name: "Bavik Pils", Price: eur("1.00")},
		{ID: 3, BrewerID: 2, Name: "Duvel", AlcoholByVolume: &duvelABV, Price: eur("2.00")},
	}}
	carts := &memoryCarts{carts: map[string][]domain.CartLine{}}
	customers := &fakeCustomers{
		customers: map[string]domain.Customer{
			"jan@hogent.be": {ID: 1, Email: "jan@hogent.be", Name: "De man", FirstName: "Jan"},
		},
		orders: map[int64][]domain.Order{},
	}
	turnover := int64(20000000)
	brewers := &fakeBrewers{brewers: map[int64]domain.Brewer{
		1: {ID: 1, Name: "Bavik", Turnover: &turnover},
		2: {ID: 2, Name: "Duvel Moortgat"},
	}}

	logger := zap.NewNop()
	h := api.NewHandler(api.Deps{
		Carts:     carts,
		Cart:      service.NewCartService(beers, logger),
		Checkout:  service.NewCheckout(fakeLocations{}, customers, logger),
		Brewers:   service.NewBrewers(brewers, fakeLocations{}, logger),
		Customers: service.NewCustomers(customers, fakeLocations{}, logger),
		Store:     service.NewStore(beers),
		Currency:  currency.EUR,
		Logger:    logger,
	})

	return &testApp{
		router:    h.Routes(5 * time.Second),
		carts:     carts,
		customers: customers,
		brewers:   brewers,
	}
}

// do sends a request, carrying the session cookie between calls.
func (a *testApp) do(t *testing.T, method, path string, body interface{}, customer string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if customer != "" {
		req.Header.Set(api.CustomerHeader, customer)
	}
	if a.cookie != nil {
		req.AddCookie(a.cookie)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)

	for _, c := range rec.Result().Cookies() {
		if c.Name == api.SessionCookie {
			a.cookie = c
		}
	}

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func eur(amount string) domain.Money {
	return domain.NewMoney(decimal.RequireFromString(amount), currency.EUR)
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/health", nil, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestStoreIndex(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/store", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var beers []struct {
		Name         string `json:"name"`
		AlcoholKnown bool   `json:"alcohol_known"`
		Price        struct {
			Amount string `json:"amount"`
		} `json:"price"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &beers))
	require.Len(t, beers, 3)
	assert.Equal(t, "Bavik Pils", beers[0].Name)
	assert.Equal(t, "1.00", beers[0].Price.Amount)
	assert.Equal(t, "Wittekerke", beers[2].Name)
	assert.False(t, beers[0].AlcoholKnown)
	assert.True(t, beers[1].AlcoholKnown, "Duvel has a known ABV")
}

func TestCart_AddAndRemove(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/cart/items", map[string]int{"product_id": 2, "quantity": 5}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NotNil(t, app.cookie, "session cookie must be issued")

	body := decodeBody(t, rec)
	assert.Equal(t, "5 x Wittekerke was added to your cart", body["message"])

	rec = app.do(t, http.MethodPost, "/cart/items", map[string]int{"product_id": 1}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = app.do(t, http.MethodGet, "/cart", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var cart struct {
		Lines []struct {
			BeerID   int64 `json:"beer_id"`
			Quantity int   `json:"quantity"`
		} `json:"lines"`
		Total struct {
			Amount string `json:"amount"`
		} `json:"total"`
		NumberOfItems int `json:"number_of_items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cart))
	require.Len(t, cart.Lines, 2)
	assert.Equal(t, "11.00", cart.Total.Amount)
	assert.Equal(t, 6, cart.NumberOfItems)

	rec = app.do(t, http.MethodDelete, "/cart/items/2", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Wittekerke was removed from your cart", decodeBody(t, rec)["message"])

	lines := app.carts.carts[app.cookie.Value]
	require.Len(t, lines, 1)
	assert.Equal(t, int64(1), lines[0].Product.ID)
}

func TestCart_AddErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       interface{}
		wantStatus int
		wantError  string
	}{
		{
			name:       "unknown product",
			body:       map[string]int{"product_id": 404},
			wantStatus: http.StatusNotFound,
			wantError:  "Sorry, something went wrong, the product could not be added to your cart...",
		},
		{
			name:       "zero quantity",
			body:       map[string]int{"product_id": 2, "quantity": 0},
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  "quantity: quantity must be at least 1",
		},
		{
			name:       "missing product id",
			body:       map[string]int{"quantity": 1},
			wantStatus: http.StatusBadRequest,
			wantError:  "product_id must be positive",
		},
		{
			name:       "malformed body",
			body:       "not an object",
			wantStatus: http.StatusBadRequest,
			wantError:  "invalid JSON body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t)

			rec := app.do(t, http.MethodPost, "/cart/items", tt.body, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, decodeBody(t, rec)["error"])
		})
	}
}

func TestCheckout_RequiresCustomer(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/cart/checkout", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = app.do(t, http.MethodGet, "/cart/checkout", nil, "stranger@example.com")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCheckout_EmptyCartRedirectsToStore(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/cart/checkout", nil, "jan@hogent.be")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/store", rec.Header().Get("Location"))

	rec = app.do(t, http.MethodPost, "/cart/checkout", map[string]string{"street": "x", "postal_code": "8531"}, "jan@hogent.be")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestCheckout_Flow(t *testing.T) {
	app := newTestApp(t)
	const jan = "jan@hogent.be"

	rec := app.do(t, http.MethodPost, "/cart/items", map[string]int{"product_id": 2, "quantity": 5}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = app.do(t, http.MethodGet, "/cart/checkout", nil, jan)
	require.Equal(t, http.StatusOK, rec.Code)
	var view struct {
		State     string `json:"state"`
		Locations []struct {
			Name string `json:"name"`
		} `json:"locations"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "AWAITING_DETAILS", view.State)
	require.Len(t, view.Locations, 3)
	assert.Equal(t, "Bavikhove", view.Locations[0].Name)

	t.Run("invalid form", func(t *testing.T) {
		rec := app.do(t, http.MethodPost, "/cart/checkout", map[string]string{"street": " ", "postal_code": "85"}, jan)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		fields := decodeBody(t, rec)["fields"].(map[string]interface{})
		assert.Contains(t, fields, "street")
		assert.Contains(t, fields, "postal_code")
	})

	t.Run("unknown postal code keeps the cart", func(t *testing.T) {
		rec := app.do(t, http.MethodPost, "/cart/checkout", map[string]string{"street": "Rijksweg 1", "postal_code": "9999"}, jan)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "postal_code: unknown postal code 9999", decodeBody(t, rec)["error"])
		assert.Len(t, app.carts.carts[app.cookie.Value], 1)
		assert.Empty(t, app.customers.orders[1])
	})

	t.Run("persistence failure keeps the cart", func(t *testing.T) {
		app.customers.addOrderErr = errors.New("connection refused")
		defer func() { app.customers.addOrderErr = nil }()

		rec := app.do(t, http.MethodPost, "/cart/checkout", map[string]string{"street": "Rijksweg 1", "postal_code": "8531"}, jan)

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "Sorry, something went wrong, your order could not be placed...", decodeBody(t, rec)["error"])
		assert.Len(t, app.carts.carts[app.cookie.Value], 1)
	})

	t.Run("success", func(t *testing.T) {
		rec := app.do(t, http.MethodPost, "/cart/checkout", map[string]interface{}{
			"street":       "Rijksweg 1",
			"postal_code":  "8531",
			"giftwrapping": true,
		}, jan)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		body := decodeBody(t, rec)
		assert.Equal(t, "PLACED", body["state"])
		order := body["order"].(map[string]interface{})
		assert.Equal(t, "10.00", order["total"].(map[string]interface{})["amount"])

		assert.Empty(t, app.carts.carts[app.cookie.Value])
		assert.Len(t, app.customers.orders[1], 1)

		rec = app.do(t, http.MethodGet, "/customers/me/orders", nil, jan)
		require.Equal(t, http.StatusOK, rec.Code)
		var orders []map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
		assert.Len(t, orders, 1)
	})
}

func TestCheckout_CartSaveFailureAfterOrderPlaced(t *testing.T) {
	app := newTestApp(t)
	const jan = "jan@hogent.be"
	shipping := map[string]string{"street": "Rijksweg 1", "postal_code": "8531"}

	rec := app.do(t, http.MethodPost, "/cart/items", map[string]int{"product_id": 2, "quantity": 5}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	app.carts.saveErr = errors.New("connection refused")
	rec = app.do(t, http.MethodPost, "/cart/checkout", shipping, jan)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "Thank you for your order!", decodeBody(t, rec)["message"])
	assert.Len(t, app.customers.orders[1], 1)
	assert.NotContains(t, app.carts.carts, app.cookie.Value)

	app.carts.saveErr = nil
	rec = app.do(t, http.MethodPost, "/cart/checkout", shipping, jan)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Len(t, app.customers.orders[1], 1)
}

func TestBrewers(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/brewers", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(20000000), body["total_turnover"])

	rec = app.do(t, http.MethodPost, "/brewers", map[string]interface{}{"name": "Palm", "turnover": -1}, "")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "turnover: turnover must be positive", decodeBody(t, rec)["error"])
	assert.Zero(t, app.brewers.adds)

	rec = app.do(t, http.MethodPost, "/brewers", map[string]interface{}{"name": ""}, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.do(t, http.MethodPost, "/brewers", map[string]interface{}{"name": "Palm", "postal_code": "3000", "date_established": "1747-01-01"}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "You successfully added brewer Palm.", decodeBody(t, rec)["message"])

	rec = app.do(t, http.MethodGet, "/brewers/101", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	edit := decodeBody(t, rec)
	assert.Equal(t, true, edit["is_edit"])
	assert.Equal(t, "1747-01-01", edit["brewer"].(map[string]interface{})["date_established"])

	rec = app.do(t, http.MethodPut, "/brewers/101", map[string]interface{}{"name": "Palm Breweries"}, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Palm Breweries", app.brewers.brewers[101].Name)

	rec = app.do(t, http.MethodDelete, "/brewers/101", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "You successfully deleted brewer Palm Breweries.", decodeBody(t, rec)["message"])

	rec = app.do(t, http.MethodGet, "/brewers/101", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = app.do(t, http.MethodGet, "/brewers/abc", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.do(t, http.MethodGet, "/brewers/new", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, decodeBody(t, rec)["is_edit"])
}

func TestRegisterCustomer(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/customers", map[string]string{
		"email":       "an@hogent.be",
		"name":        "Peeters",
		"first_name":  "An",
		"postal_code": "3000",
	}, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "Leuven", decodeBody(t, rec)["location"].(map[string]interface{})["name"])

	rec = app.do(t, http.MethodPost, "/customers", map[string]string{
		"email": "jan@hogent.be", "name": "De man", "first_name": "Jan",
	}, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = app.do(t, http.MethodPost, "/customers", map[string]string{"email": "not-an-email"}, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
