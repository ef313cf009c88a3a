package view

import (
	"strconv"

	"github.com/yuva-embroidery/storefront/internal/cart"
	"github.com/yuva-embroidery/storefront/internal/models"
)

// DefaultCurrency prefixes every displayed amount.
const DefaultCurrency = "Rs"

// EmptyCartMessage replaces the line list when the cart has no lines.
const EmptyCartMessage = "Your cart is empty"

// Line is one displayed cart line.
type Line struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Size      string `json:"size,omitempty"`
	UnitPrice int    `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	LineTotal int    `json:"line_total"`
}

// Model is the cart panel projection.
type Model struct {
	Lines           []Line `json:"lines"`
	Placeholder     string `json:"placeholder,omitempty"`
	GrandTotal      int    `json:"grand_total"`
	Total           string `json:"total"`
	CheckoutEnabled bool   `json:"checkout_enabled"`
}

// CartBadge is the header item counter.
type CartBadge struct {
	Count   int  `json:"count"`
	Visible bool `json:"visible"`
}

// Renderer projects carts using a currency prefix.
type Renderer struct {
	Currency string
}

func NewRenderer(currency string) *Renderer {
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Renderer{Currency: currency}
}

// FormatPrice renders a whole-unit amount, e.g. "Rs 600".
func (r *Renderer) FormatPrice(amount int) string {
	return r.Currency + " " + strconv.Itoa(amount)
}

// Render is a pure function of c.
func (r *Renderer) Render(c models.Cart) Model {
	if len(c) == 0 {
		return Model{
			Lines:       []Line{},
			Placeholder: EmptyCartMessage,
			Total:       r.FormatPrice(0),
		}
	}

	lines := make([]Line, 0, len(c))
	for _, l := range c {
		lines = append(lines, Line{
			ID:        l.ID,
			Name:      l.Name,
			Size:      l.Size,
			UnitPrice: l.Price,
			Quantity:  l.Quantity,
			LineTotal: l.Total(),
		})
	}

	total := cart.TotalPrice(c)
	return Model{
		Lines:           lines,
		GrandTotal:      total,
		Total:           r.FormatPrice(total),
		CheckoutEnabled: true,
	}
}

// Badge counts units, hiding the badge for an empty cart.
func Badge(c models.Cart) CartBadge {
	count := cart.TotalQuantity(c)
	return CartBadge{Count: count, Visible: count > 0}
}

// Render uses the default currency.
func Render(c models.Cart) Model {
	return NewRenderer(DefaultCurrency).Render(c)
}
