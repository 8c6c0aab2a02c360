package http

import (
	"net/http"
)

func (h *Handler) RegisterCustomer(w http.ResponseWriter, r *http.Request) {
	var form customerForm
	if !h.decode(w, r, &form) {
		return
	}

	in, fields := form.parse()
	if fields != nil {
		h.respondInvalidForm(w, fields)
		return
	}

	customer, err := h.customers.Register(r.Context(), in)
	if err != nil {
		h.respondFailure(w, r, err, "")
		return
	}

	h.respondJSON(w, http.StatusCreated, customerView{
		ID:        customer.ID,
		Email:     customer.Email,
		Name:      customer.Name,
		FirstName: customer.FirstName,
		Street:    customer.Street,
		Location:  toLocationView(customer.Location),
	})
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.customers.Orders(r.Context(), customerFrom(r.Context()))
	if err != nil {
		h.respondFailure(w, r, err, "")
		return
	}

	views := make([]orderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, toOrderView(o))
	}

	h.respondJSON(w, http.StatusOK, views)
}
