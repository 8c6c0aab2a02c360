package domain

import (
	"strings"
	"time"
)

type Brewer struct {
	ID              int64
	Name            string
	Street          string
	Location        *Location
	ContactEmail    string
	DateEstablished *time.Time
	Description     string
	Turnover        *int64
	Beers           []*Beer
}

func NewBrewer(name string) (*Brewer, error) {
	b := &Brewer{}
	if err := b.Rename(name); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Brewer) Rename(name string) error {
	if strings.TrimSpace(name) == "" {
		return invalid("name", "a brewer must have a name")
	}
	b.Name = name
	return nil
}

// SetTurnover accepts nil for an unknown turnover.
func (b *Brewer) SetTurnover(turnover *int64) error {
	if turnover != nil && *turnover < 0 {
		return invalid("turnover", "turnover must be positive")
	}
	b.Turnover = turnover
	return nil
}

func (b *Brewer) NrOfBeers() int {
	return len(b.Beers)
}
