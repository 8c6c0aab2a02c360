package domain

import (
	"strings"
)

type Location struct {
	PostalCode string
	Name       string
}

type Customer struct {
	ID        int64
	Email     string
	Name      string
	FirstName string
	Street    string
	Location  *Location
	Orders    []Order
}

func NewCustomer(email, name, firstName string) (*Customer, error) {
	if strings.TrimSpace(email) == "" {
		return nil, invalid("email", "a customer must have an email address")
	}
	if strings.TrimSpace(name) == "" {
		return nil, invalid("name", "a customer must have a name")
	}
	if strings.TrimSpace(firstName) == "" {
		return nil, invalid("first_name", "a customer must have a first name")
	}

	return &Customer{Email: email, Name: name, FirstName: firstName}, nil
}

// AttachOrder records an order that has already been persisted.
func (c *Customer) AttachOrder(order Order) {
	c.Orders = append(c.Orders, order)
}

func (c *Customer) OrderCount() int {
	return len(c.Orders)
}
