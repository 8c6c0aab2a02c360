package http

import (
	"net/mail"
	"regexp"
	"strings"
	"time"

	"github.com/nikolayk812/beerhall/internal/domain"
	"github.com/nikolayk812/beerhall/internal/service"
)

var postalCodePattern = regexp.MustCompile(`^\d{4}$`)

type addItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  *int  `json:"quantity"`
}

func (r addItemRequest) quantity() int {
	if r.Quantity == nil {
		return 1
	}
	return *r.Quantity
}

// shippingForm is the checkout form. Form-level rules live here; rules that
// need the catalog or the clock are checked by the checkout itself.
type shippingForm struct {
	DeliveryDate string `json:"delivery_date"`
	Giftwrapping bool   `json:"giftwrapping"`
	Street       string `json:"street"`
	PostalCode   string `json:"postal_code"`
}

func (f shippingForm) parse() (domain.ShippingDetails, map[string]string) {
	fields := map[string]string{}

	if strings.TrimSpace(f.Street) == "" {
		fields["street"] = "street is required"
	}
	if !postalCodePattern.MatchString(f.PostalCode) {
		fields["postal_code"] = "postal code must be 4 digits"
	}

	var deliveryDate *time.Time
	if f.DeliveryDate != "" {
		d, err := time.Parse(dateLayout, f.DeliveryDate)
		if err != nil {
			fields["delivery_date"] = "delivery date must be formatted as YYYY-MM-DD"
		} else {
			deliveryDate = &d
		}
	}

	if len(fields) > 0 {
		return domain.ShippingDetails{}, fields
	}

	return domain.ShippingDetails{
		DeliveryDate: deliveryDate,
		Giftwrapping: f.Giftwrapping,
		Street:       strings.TrimSpace(f.Street),
		PostalCode:   f.PostalCode,
	}, nil
}

type brewerForm struct {
	Name            string `json:"name"`
	Street          string `json:"street"`
	PostalCode      string `json:"postal_code"`
	ContactEmail    string `json:"contact_email"`
	DateEstablished string `json:"date_established"`
	Description     string `json:"description"`
	Turnover        *int64 `json:"turnover"`
}

func (f brewerForm) parse() (service.BrewerInput, map[string]string) {
	fields := map[string]string{}

	if strings.TrimSpace(f.Name) == "" {
		fields["name"] = "name is required"
	}
	if f.PostalCode != "" && !postalCodePattern.MatchString(f.PostalCode) {
		fields["postal_code"] = "postal code must be 4 digits"
	}
	if f.ContactEmail != "" {
		if _, err := mail.ParseAddress(f.ContactEmail); err != nil {
			fields["contact_email"] = "contact email is not a valid email address"
		}
	}

	var established *time.Time
	if f.DateEstablished != "" {
		d, err := time.Parse(dateLayout, f.DateEstablished)
		if err != nil {
			fields["date_established"] = "date established must be formatted as YYYY-MM-DD"
		} else {
			established = &d
		}
	}

	if len(fields) > 0 {
		return service.BrewerInput{}, fields
	}

	return service.BrewerInput{
		Name:            f.Name,
		Street:          f.Street,
		PostalCode:      f.PostalCode,
		ContactEmail:    f.ContactEmail,
		DateEstablished: established,
		Description:     f.Description,
		Turnover:        f.Turnover,
	}, nil
}

type customerForm struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	FirstName  string `json:"first_name"`
	Street     string `json:"street"`
	PostalCode string `json:"postal_code"`
}

func (f customerForm) parse() (service.CustomerInput, map[string]string) {
	fields := map[string]string{}

	if _, err := mail.ParseAddress(f.Email); err != nil {
		fields["email"] = "email is not a valid email address"
	}
	if f.PostalCode != "" && !postalCodePattern.MatchString(f.PostalCode) {
		fields["postal_code"] = "postal code must be 4 digits"
	}

	if len(fields) > 0 {
		return service.CustomerInput{}, fields
	}

	return service.CustomerInput{
		Email:      f.Email,
		Name:       f.Name,
		FirstName:  f.FirstName,
		Street:     f.Street,
		PostalCode: f.PostalCode,
	}, nil
}
