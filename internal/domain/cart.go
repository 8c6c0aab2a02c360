package domain

import (
	"golang.org/x/text/currency"
)

// Cart is the shopping cart of a single session. It is not safe for concurrent use;
// a session processes one request at a time.
type Cart struct {
	currency currency.Unit
	lines    []CartLine
}

type CartLine struct {
	Product  Product
	Quantity int
}

func (l CartLine) Total() Money {
	return l.Product.Price.Mul(l.Quantity)
}

func NewCart(cur currency.Unit) *Cart {
	return &Cart{currency: cur}
}

// RestoreCart rebuilds a cart from previously stored lines, applying the same
// rules as AddLine so a restored cart never holds duplicate or invalid lines.
func RestoreCart(cur currency.Unit, lines []CartLine) (*Cart, error) {
	c := NewCart(cur)
	for _, l := range lines {
		if err := c.AddLine(l.Product, l.Quantity); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Cart) Currency() currency.Unit {
	return c.currency
}

// AddLine adds quantity units of product. An existing line for the same product
// has its quantity increased; otherwise a new line is appended.
func (c *Cart) AddLine(product Product, quantity int) error {
	if product.IsZero() {
		return invalid("product", "product is required")
	}
	if quantity < 1 {
		return invalid("quantity", "quantity must be at least 1")
	}
	if product.Price.Currency != c.currency {
		return invalid("product", "product is priced in "+product.Price.Currency.String()+", cart uses "+c.currency.String())
	}

	if i := c.indexOf(product.ID); i >= 0 {
		c.lines[i].Quantity += quantity
		return nil
	}

	c.lines = append(c.lines, CartLine{Product: product, Quantity: quantity})
	return nil
}

// RemoveLine deletes the line for product regardless of its quantity.
// Removing a product that is not in the cart is a no-op.
func (c *Cart) RemoveLine(product Product) {
	i := c.indexOf(product.ID)
	if i < 0 {
		return
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) TotalValue() Money {
	total := ZeroMoney(c.currency)
	for _, l := range c.lines {
		// currencies are checked on AddLine
		total, _ = total.Add(l.Total())
	}
	return total
}

// NumberOfItems is the sum of line quantities, not the number of lines.
func (c *Cart) NumberOfItems() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) IsEmpty() bool {
	return c.NumberOfItems() == 0
}

func (c *Cart) indexOf(productID int64) int {
	for i, l := range c.lines {
		if l.Product.ID == productID {
			return i
		}
	}
	return -1
}
