package domain

import (
	"strings"
)

// Product is the catalog view of a beer as the cart sees it.
type Product struct {
	ID    int64
	Name  string
	Price Money
}

func (p Product) IsZero() bool {
	return p.ID <= 0 || strings.TrimSpace(p.Name) == ""
}

type Beer struct {
	ID              int64
	BrewerID        int64
	Name            string
	Description     string
	AlcoholByVolume *float64
	Price           Money
}

func NewBeer(name string, alcoholByVolume *float64, price Money) (*Beer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, invalid("name", "a beer must have a name")
	}
	if price.IsNegative() {
		return nil, invalid("price", "price cannot be negative")
	}

	return &Beer{
		Name:            name,
		AlcoholByVolume: alcoholByVolume,
		Price:           price,
	}, nil
}

func (b *Beer) AlcoholKnown() bool {
	return b.AlcoholByVolume != nil
}

func (b *Beer) Product() Product {
	return Product{ID: b.ID, Name: b.Name, Price: b.Price}
}
