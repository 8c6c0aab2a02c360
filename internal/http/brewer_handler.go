package http

import (
	"net/http"

	"github.com/nikolayk812/beerhall/internal/domain"
	"github.com/nikolayk812/beerhall/internal/service"
)

func (h *Handler) ListBrewers(w http.ResponseWriter, r *http.Request) {
	list, err := h.brewers.List(r.Context())
	if err != nil {
		h.respondFailure(w, r, err, "")
		return
	}

	view := brewerListView{
		Brewers:       make([]brewerView, 0, len(list.Brewers)),
		TotalTurnover: list.TotalTurnover,
	}
	for _, b := range list.Brewers {
		view.Brewers = append(view.Brewers, toBrewerView(b))
	}

	h.respondJSON(w, http.StatusOK, view)
}

func (h *Handler) NewBrewer(w http.ResponseWriter, r *http.Request) {
	edit, err := h.brewers.New(r.Context())
	if err != nil {
		h.respondFailure(w, r, err, "")
		return
	}

	h.respondJSON(w, http.StatusOK, toBrewerEditView(edit))
}

func (h *Handler) EditBrewer(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r, "id")
	if !ok {
		return
	}

	edit, err := h.brewers.Get(r.Context(), id)
	if err != nil {
		h.respondFailure(w, r, err, "brewer not found")
		return
	}

	h.respondJSON(w, http.StatusOK, toBrewerEditView(edit))
}

func (h *Handler) CreateBrewer(w http.ResponseWriter, r *http.Request) {
	var form brewerForm
	if !h.decode(w, r, &form) {
		return
	}

	in, fields := form.parse()
	if fields != nil {
		h.respondInvalidForm(w, fields)
		return
	}

	brewer, flash, err := h.brewers.Create(r.Context(), in)
	if err != nil {
		h.respondFailure(w, r, err, flash.Error)
		return
	}

	h.respondBrewer(w, http.StatusCreated, flash, brewer)
}

func (h *Handler) UpdateBrewer(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r, "id")
	if !ok {
		return
	}

	var form brewerForm
	if !h.decode(w, r, &form) {
		return
	}

	in, fields := form.parse()
	if fields != nil {
		h.respondInvalidForm(w, fields)
		return
	}

	brewer, flash, err := h.brewers.Update(r.Context(), id, in)
	if err != nil {
		h.respondFailure(w, r, err, flash.Error)
		return
	}

	h.respondBrewer(w, http.StatusOK, flash, brewer)
}

func (h *Handler) DeleteBrewer(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r, "id")
	if !ok {
		return
	}

	flash, err := h.brewers.Delete(r.Context(), id)
	if err != nil {
		h.respondFailure(w, r, err, flash.Error)
		return
	}

	h.respondJSON(w, http.StatusOK, brewerResponse{Flash: flash})
}

func (h *Handler) respondBrewer(w http.ResponseWriter, status int, flash service.Flash, brewer domain.Brewer) {
	view := toBrewerView(brewer)
	h.respondJSON(w, status, brewerResponse{Flash: flash, Brewer: &view})
}

func toBrewerEditView(edit service.BrewerEdit) brewerEditView {
	return brewerEditView{
		IsEdit:    edit.IsEdit,
		Brewer:    toBrewerView(edit.Brewer),
		Locations: toLocationViews(edit.Locations),
	}
}
