package http

import (
	"errors"
	"net/http"

	"github.com/nikolayk812/beerhall/internal/domain"
	"github.com/nikolayk812/beerhall/internal/service"
	"go.uber.org/zap"
)

func (h *Handler) StoreIndex(w http.ResponseWriter, r *http.Request) {
	beers, err := h.store.Beers(r.Context())
	if err != nil {
		h.respondFailure(w, r, err, "")
		return
	}

	h.respondJSON(w, http.StatusOK, toBeerViews(beers))
}

func (h *Handler) CartIndex(w http.ResponseWriter, r *http.Request) {
	cart, ok := h.loadCart(w, r)
	if !ok {
		return
	}

	h.respondJSON(w, http.StatusOK, toCartView(cart))
}

func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.ProductID <= 0 {
		h.respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id must be positive")
		return
	}

	cart, ok := h.loadCart(w, r)
	if !ok {
		return
	}

	flash, err := h.cart.Add(r.Context(), cart, req.ProductID, req.quantity())
	if err != nil {
		h.respondFailure(w, r, err, flash.Error)
		return
	}

	if !h.saveCart(w, r, cart) {
		return
	}

	h.respondJSON(w, http.StatusOK, cartResponse{Flash: flash, Cart: toCartView(cart)})
}

func (h *Handler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	productID, ok := h.idParam(w, r, "product_id")
	if !ok {
		return
	}

	cart, ok := h.loadCart(w, r)
	if !ok {
		return
	}

	flash, err := h.cart.Remove(r.Context(), cart, productID)
	if err != nil {
		h.respondFailure(w, r, err, flash.Error)
		return
	}

	if !h.saveCart(w, r, cart) {
		return
	}

	h.respondJSON(w, http.StatusOK, cartResponse{Flash: flash, Cart: toCartView(cart)})
}

func (h *Handler) BeginCheckout(w http.ResponseWriter, r *http.Request) {
	cart, ok := h.loadCart(w, r)
	if !ok {
		return
	}

	view, err := h.checkout.Begin(r.Context(), cart)
	if err != nil {
		h.respondFailure(w, r, err, "")
		return
	}

	if view.State == domain.CheckoutEmpty {
		http.Redirect(w, r, "/store", http.StatusSeeOther)
		return
	}

	h.respondJSON(w, http.StatusOK, checkoutView{
		State:     view.State.String(),
		Locations: toLocationViews(view.Locations),
		Shipping: shippingView{
			DeliveryDate: formatDate(view.Shipping.DeliveryDate),
			Giftwrapping: view.Shipping.Giftwrapping,
			Street:       view.Shipping.Street,
			PostalCode:   view.Shipping.PostalCode,
		},
	})
}

func (h *Handler) CompleteCheckout(w http.ResponseWriter, r *http.Request) {
	var form shippingForm
	if !h.decode(w, r, &form) {
		return
	}

	cart, ok := h.loadCart(w, r)
	if !ok {
		return
	}

	if cart.IsEmpty() {
		http.Redirect(w, r, "/store", http.StatusSeeOther)
		return
	}

	shipping, fields := form.parse()
	if fields != nil {
		h.respondInvalidForm(w, fields)
		return
	}

	result, err := h.checkout.Complete(r.Context(), customerFrom(r.Context()), cart, shipping)
	switch {
	case errors.Is(err, service.ErrEmptyCart):
		http.Redirect(w, r, "/store", http.StatusSeeOther)
		return
	case err != nil:
		h.respondFailure(w, r, err, "Sorry, something went wrong, your order could not be placed...")
		return
	}

	h.resetCart(r, cart)

	h.respondJSON(w, http.StatusCreated, placedOrderResponse{
		Flash: service.Flash{Message: "Thank you for your order!"},
		State: result.State.String(),
		Order: toOrderView(*result.Order),
	})
}

func (h *Handler) loadCart(w http.ResponseWriter, r *http.Request) (*domain.Cart, bool) {
	cart, err := h.carts.Load(r.Context(), sessionIDFrom(r.Context()), h.currency)
	if err != nil {
		h.logger.Error("cart not loaded", zap.String("session_id", sessionIDFrom(r.Context())), zap.Error(err))
		h.respondError(w, http.StatusServiceUnavailable, "unavailable", somethingWentWrong)
		return nil, false
	}
	return cart, true
}

func (h *Handler) saveCart(w http.ResponseWriter, r *http.Request, cart *domain.Cart) bool {
	if err := h.carts.Save(r.Context(), sessionIDFrom(r.Context()), cart); err != nil {
		h.logger.Error("cart not saved", zap.String("session_id", sessionIDFrom(r.Context())), zap.Error(err))
		h.respondError(w, http.StatusServiceUnavailable, "unavailable", somethingWentWrong)
		return false
	}
	return true
}

// resetCart stores the emptied cart once the order is persisted. When the save
// fails the stored cart is deleted instead; errors are only logged.
func (h *Handler) resetCart(r *http.Request, cart *domain.Cart) {
	sessionID := sessionIDFrom(r.Context())

	saveErr := h.carts.Save(r.Context(), sessionID, cart)
	if saveErr == nil {
		return
	}

	if err := h.carts.Delete(r.Context(), sessionID); err != nil {
		h.logger.Error("cart not reset after checkout",
			zap.String("session_id", sessionID), zap.Error(errors.Join(saveErr, err)))
		return
	}

	h.logger.Warn("cart save failed after checkout, stored cart deleted",
		zap.String("session_id", sessionID), zap.Error(saveErr))
}
