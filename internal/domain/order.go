package domain

import (
	"time"

	"github.com/google/uuid"
)

type ShippingDetails struct {
	DeliveryDate *time.Time
	Giftwrapping bool
	Street       string
	PostalCode   string
}

type Order struct {
	ID           uuid.UUID
	OrderDate    time.Time
	DeliveryDate *time.Time
	Giftwrapping bool
	Street       string
	Location     Location
	Lines        []OrderLine
}

type OrderLine struct {
	ProductID   int64
	ProductName string
	UnitPrice   Money
	Quantity    int
}

func (l OrderLine) Total() Money {
	return l.UnitPrice.Mul(l.Quantity)
}

// NewOrder snapshots the cart lines into an order. The cart itself is not modified.
func NewOrder(cart *Cart, shipping ShippingDetails, location Location, now time.Time) (Order, error) {
	if cart == nil || cart.IsEmpty() {
		return Order{}, invalid("cart", "cannot create an order for an empty cart")
	}
	if shipping.DeliveryDate != nil && calendarDay(*shipping.DeliveryDate, now.Location()).Before(calendarDay(now, now.Location())) {
		return Order{}, invalid("delivery_date", "delivery date cannot be in the past")
	}

	lines := make([]OrderLine, 0, len(cart.lines))
	for _, l := range cart.lines {
		lines = append(lines, OrderLine{
			ProductID:   l.Product.ID,
			ProductName: l.Product.Name,
			UnitPrice:   l.Product.Price,
			Quantity:    l.Quantity,
		})
	}

	return Order{
		ID:           uuid.New(),
		OrderDate:    now,
		DeliveryDate: shipping.DeliveryDate,
		Giftwrapping: shipping.Giftwrapping,
		Street:       shipping.Street,
		Location:     location,
		Lines:        lines,
	}, nil
}

// Total sums the line totals; all lines share the cart currency.
func (o Order) Total() Money {
	if len(o.Lines) == 0 {
		return Money{}
	}

	total := ZeroMoney(o.Lines[0].UnitPrice.Currency)
	for _, l := range o.Lines {
		total, _ = total.Add(l.Total())
	}
	return total
}

// calendarDay moves the date of t, as read in its own zone, to midnight in loc.
func calendarDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
