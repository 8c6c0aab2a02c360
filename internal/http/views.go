package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/beerhall/internal/domain"
	"github.com/nikolayk812/beerhall/internal/service"
)

const dateLayout = time.DateOnly

type moneyView struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

func toMoneyView(m domain.Money) moneyView {
	return moneyView{Amount: m.Amount.StringFixed(2), Currency: m.Currency.String()}
}

type beerView struct {
	ID              int64     `json:"id"`
	BrewerID        int64     `json:"brewer_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	AlcoholByVolume *float64  `json:"alcohol_by_volume,omitempty"`
	AlcoholKnown    bool      `json:"alcohol_known"`
	Price           moneyView `json:"price"`
}

func toBeerViews(beers []domain.Beer) []beerView {
	out := make([]beerView, 0, len(beers))
	for _, b := range beers {
		out = append(out, beerView{
			ID:              b.ID,
			BrewerID:        b.BrewerID,
			Name:            b.Name,
			Description:     b.Description,
			AlcoholByVolume: b.AlcoholByVolume,
			AlcoholKnown:    b.AlcoholKnown(),
			Price:           toMoneyView(b.Price),
		})
	}
	return out
}

type cartLineView struct {
	BeerID   int64     `json:"beer_id"`
	Beer     string    `json:"beer"`
	Quantity int       `json:"quantity"`
	Price    moneyView `json:"price"`
	SubTotal moneyView `json:"subtotal"`
}

type cartView struct {
	Lines         []cartLineView `json:"lines"`
	Total         moneyView      `json:"total"`
	NumberOfItems int            `json:"number_of_items"`
}

func toCartView(cart *domain.Cart) cartView {
	lines := cart.Lines()

	view := cartView{
		Lines:         make([]cartLineView, 0, len(lines)),
		Total:         toMoneyView(cart.TotalValue()),
		NumberOfItems: cart.NumberOfItems(),
	}
	for _, l := range lines {
		view.Lines = append(view.Lines, cartLineView{
			BeerID:   l.Product.ID,
			Beer:     l.Product.Name,
			Quantity: l.Quantity,
			Price:    toMoneyView(l.Product.Price),
			SubTotal: toMoneyView(l.Total()),
		})
	}
	return view
}

type cartResponse struct {
	service.Flash
	Cart cartView `json:"cart"`
}

type locationView struct {
	PostalCode string `json:"postal_code"`
	Name       string `json:"name"`
}

func toLocationView(l *domain.Location) *locationView {
	if l == nil {
		return nil
	}
	return &locationView{PostalCode: l.PostalCode, Name: l.Name}
}

func toLocationViews(locations []domain.Location) []locationView {
	out := make([]locationView, 0, len(locations))
	for _, l := range locations {
		out = append(out, *toLocationView(&l))
	}
	return out
}

type shippingView struct {
	DeliveryDate string `json:"delivery_date,omitempty"`
	Giftwrapping bool   `json:"giftwrapping"`
	Street       string `json:"street"`
	PostalCode   string `json:"postal_code"`
}

type checkoutView struct {
	State     string         `json:"state"`
	Locations []locationView `json:"locations"`
	Shipping  shippingView   `json:"shipping"`
}

type orderLineView struct {
	ProductID   int64     `json:"product_id"`
	ProductName string    `json:"product_name"`
	UnitPrice   moneyView `json:"unit_price"`
	Quantity    int       `json:"quantity"`
	Total       moneyView `json:"total"`
}

type orderView struct {
	ID           uuid.UUID       `json:"id"`
	OrderDate    time.Time       `json:"order_date"`
	DeliveryDate string          `json:"delivery_date,omitempty"`
	Giftwrapping bool            `json:"giftwrapping"`
	Street       string          `json:"street"`
	Location     locationView    `json:"location"`
	Lines        []orderLineView `json:"lines"`
	Total        moneyView       `json:"total"`
}

func toOrderView(o domain.Order) orderView {
	view := orderView{
		ID:           o.ID,
		OrderDate:    o.OrderDate,
		DeliveryDate: formatDate(o.DeliveryDate),
		Giftwrapping: o.Giftwrapping,
		Street:       o.Street,
		Location:     locationView{PostalCode: o.Location.PostalCode, Name: o.Location.Name},
		Lines:        make([]orderLineView, 0, len(o.Lines)),
		Total:        toMoneyView(o.Total()),
	}
	for _, l := range o.Lines {
		view.Lines = append(view.Lines, orderLineView{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			UnitPrice:   toMoneyView(l.UnitPrice),
			Quantity:    l.Quantity,
			Total:       toMoneyView(l.Total()),
		})
	}
	return view
}

type placedOrderResponse struct {
	service.Flash
	State string    `json:"state"`
	Order orderView `json:"order"`
}

type brewerView struct {
	ID              int64         `json:"id"`
	Name            string        `json:"name"`
	Street          string        `json:"street,omitempty"`
	Location        *locationView `json:"location,omitempty"`
	ContactEmail    string        `json:"contact_email,omitempty"`
	DateEstablished string        `json:"date_established,omitempty"`
	Description     string        `json:"description,omitempty"`
	Turnover        *int64        `json:"turnover,omitempty"`
	NrOfBeers       int           `json:"nr_of_beers"`
	Beers           []beerView    `json:"beers,omitempty"`
}

func toBrewerView(b domain.Brewer) brewerView {
	view := brewerView{
		ID:              b.ID,
		Name:            b.Name,
		Street:          b.Street,
		Location:        toLocationView(b.Location),
		ContactEmail:    b.ContactEmail,
		DateEstablished: formatDate(b.DateEstablished),
		Description:     b.Description,
		Turnover:        b.Turnover,
		NrOfBeers:       b.NrOfBeers(),
	}
	if len(b.Beers) > 0 {
		beers := make([]domain.Beer, 0, len(b.Beers))
		for _, beer := range b.Beers {
			beers = append(beers, *beer)
		}
		view.Beers = toBeerViews(beers)
	}
	return view
}

type brewerListView struct {
	Brewers       []brewerView `json:"brewers"`
	TotalTurnover int64        `json:"total_turnover"`
}

type brewerEditView struct {
	IsEdit    bool           `json:"is_edit"`
	Brewer    brewerView     `json:"brewer"`
	Locations []locationView `json:"locations"`
}

type brewerResponse struct {
	service.Flash
	Brewer *brewerView `json:"brewer,omitempty"`
}

type customerView struct {
	ID        int64         `json:"id"`
	Email     string        `json:"email"`
	Name      string        `json:"name"`
	FirstName string        `json:"first_name"`
	Street    string        `json:"street,omitempty"`
	Location  *locationView `json:"location,omitempty"`
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
