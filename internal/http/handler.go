package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/nikolayk812/beerhall/internal/port"
	"github.com/nikolayk812/beerhall/internal/service"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

const maxBodyBytes = 1 << 20

type Deps struct {
	Carts     port.CartStore
	Cart      *service.CartService
	Checkout  *service.Checkout
	Brewers   *service.Brewers
	Customers *service.Customers
	Store     *service.Store
	Currency  currency.Unit
	Logger    *zap.Logger
}

type Handler struct {
	carts     port.CartStore
	cart      *service.CartService
	checkout  *service.Checkout
	brewers   *service.Brewers
	customers *service.Customers
	store     *service.Store
	currency  currency.Unit
	logger    *zap.Logger
}

func NewHandler(deps Deps) *Handler {
	return &Handler{
		carts:     deps.Carts,
		cart:      deps.Cart,
		checkout:  deps.Checkout,
		brewers:   deps.Brewers,
		customers: deps.Customers,
		store:     deps.Store,
		currency:  deps.Currency,
		logger:    deps.Logger,
	}
}

func (h *Handler) Routes(requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(accessLog(h.logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		h.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/store", h.StoreIndex)

	r.Route("/cart", func(r chi.Router) {
		r.Use(sessionMiddleware)

		r.Get("/", h.CartIndex)
		r.Post("/items", h.AddToCart)
		r.Delete("/items/{product_id}", h.RemoveFromCart)

		r.Group(func(r chi.Router) {
			r.Use(h.requireCustomer)

			r.Get("/checkout", h.BeginCheckout)
			r.Post("/checkout", h.CompleteCheckout)
		})
	})

	r.Route("/brewers", func(r chi.Router) {
		r.Get("/", h.ListBrewers)
		r.Get("/new", h.NewBrewer)
		r.Post("/", h.CreateBrewer)
		r.Get("/{id}", h.EditBrewer)
		r.Put("/{id}", h.UpdateBrewer)
		r.Delete("/{id}", h.DeleteBrewer)
	})

	r.Route("/customers", func(r chi.Router) {
		r.Post("/", h.RegisterCustomer)
		r.With(h.requireCustomer).Get("/me/orders", h.ListOrders)
	})

	return r
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return false
	}
	return true
}

func (h *Handler) idParam(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		h.respondError(w, http.StatusBadRequest, "invalid_"+name, name+" must be a positive integer")
		return 0, false
	}
	return id, true
}
