package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nikolayk812/beerhall/internal/catalog"
	"github.com/nikolayk812/beerhall/internal/domain"
	"github.com/nikolayk812/beerhall/internal/service"
	"go.uber.org/zap"
)

const somethingWentWrong = "Sorry, something went wrong..."

type ErrorResponse struct {
	Error   string            `json:"error"`
	Code    string            `json:"code,omitempty"`
	Details string            `json:"details,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Warn("failed to encode response", zap.Error(err))
	}
}

func (h *Handler) respondError(w http.ResponseWriter, status int, code, message string) {
	h.respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// respondFailure maps err to a status code. message, when set, replaces the
// text shown to the user for anything but validation errors.
func (h *Handler) respondFailure(w http.ResponseWriter, r *http.Request, err error, message string) {
	if ve, ok := domain.AsValidation(err); ok {
		resp := ErrorResponse{Error: ve.Error(), Code: "validation_failed"}
		if ve.Field != "" {
			resp.Fields = map[string]string{ve.Field: ve.Reason}
		}
		h.respondJSON(w, http.StatusUnprocessableEntity, resp)
		return
	}

	if message == "" {
		message = somethingWentWrong
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		h.respondError(w, http.StatusNotFound, "not_found", message)
	case errors.Is(err, catalog.ErrUnavailable),
		errors.Is(err, service.ErrCheckoutFailed),
		errors.Is(err, context.DeadlineExceeded):
		h.logger.Error("collaborator failure", zap.String("path", r.URL.Path), zap.Error(err))
		h.respondError(w, http.StatusServiceUnavailable, "unavailable", message)
	default:
		h.logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "internal_error", message)
	}
}

func (h *Handler) respondInvalidForm(w http.ResponseWriter, fields map[string]string) {
	h.respondJSON(w, http.StatusBadRequest, ErrorResponse{
		Error:  "the submitted form is not valid",
		Code:   "invalid_form",
		Fields: fields,
	})
}
