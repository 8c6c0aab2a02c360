package repository

import (
	"fmt"

	"github.com/nikolayk812/beerhall/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

func mapMoney(amount decimal.Decimal, iso string) (domain.Money, error) {
	parsedCurrency, err := currency.ParseISO(iso)
	if err != nil {
		return domain.Money{}, fmt.Errorf("currency[%s] is not valid: %w", iso, err)
	}

	return domain.NewMoney(amount, parsedCurrency), nil
}

func mapLocation(postalCode, name *string) *domain.Location {
	if postalCode == nil {
		return nil
	}

	return &domain.Location{PostalCode: *postalCode, Name: deref(name)}
}

func postalCodeOf(l *domain.Location) *string {
	if l == nil {
		return nil
	}
	return nullable(l.PostalCode)
}

// nullable maps the empty string to SQL NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
