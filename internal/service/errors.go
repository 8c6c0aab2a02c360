package service

import (
	"errors"
	"fmt"

	"github.com/nikolayk812/beerhall/internal/domain"
)

var (
	// ErrEmptyCart is returned when checking out an empty cart. It matches domain.ErrNotFound.
	ErrEmptyCart = fmt.Errorf("cart is empty: %w", domain.ErrNotFound)

	// ErrCheckoutFailed wraps collaborator failures during checkout. The cart is left untouched.
	ErrCheckoutFailed = errors.New("checkout failed")
)

// Flash is a one-shot message for the user about the outcome of an action.
type Flash struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func success(format string, args ...any) Flash {
	return Flash{Message: fmt.Sprintf(format, args...)}
}

func failure(format string, args ...any) Flash {
	return Flash{Error: fmt.Sprintf(format, args...)}
}

// failureFor keeps the reason of a validation error and replaces anything else with apology.
func failureFor(err error, apology string) Flash {
	if ve, ok := domain.AsValidation(err); ok {
		return Flash{Error: ve.Error()}
	}
	return Flash{Error: apology}
}

func unknownPostalCode(postalCode string) *domain.ValidationError {
	return &domain.ValidationError{Field: "postal_code", Reason: "unknown postal code " + postalCode}
}
