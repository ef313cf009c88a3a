package view

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"

	"github.com/yuva-embroidery/storefront/internal/models"
)

// Slot identifiers shared with the page markup.
const (
	SlotCartCount        = "cartCount"
	SlotCartItems        = "cartItems"
	SlotCartTotal        = "cartTotal"
	SlotCheckoutButton   = "checkoutBtn"
	SlotSearchResults    = "searchResults"
	SlotFeaturedProducts = "featuredProducts"
)

// NoResultsMessage is shown when a search matches nothing.
const NoResultsMessage = "No products found"

// Slots maps slot identifiers to ready-to-inject markup.
type Slots map[string]template.HTML

// price is rebound per renderer in execute.
var fragments = template.Must(template.New("fragments").Funcs(template.FuncMap{
	"price": strconv.Itoa,
}).Parse(`
{{define "cartItems"}}{{if .Placeholder}}<p class="text-muted text-center">{{.Placeholder}}</p>{{else}}{{range .Lines}}
<div class="d-flex justify-content-between align-items-center mb-3 pb-3 border-bottom">
  <div class="flex-grow-1">
    <h6 class="mb-1">{{.Name}}</h6>
    <small class="text-muted">{{price .UnitPrice}} x {{.Quantity}}</small>
  </div>
  <div class="text-end">
    <div class="fw-bold mb-1">{{price .LineTotal}}</div>
    <button class="btn btn-sm btn-outline-danger" data-action="remove" data-line-id="{{.ID}}"{{if .Size}} data-line-size="{{.Size}}"{{end}}>
      <i class="bi bi-trash"></i>
    </button>
  </div>
</div>{{end}}{{end}}{{end}}
{{define "searchResults"}}{{if not .}}<p class="text-muted">` + NoResultsMessage + `</p>{{else}}{{range .}}
<div class="d-flex justify-content-between align-items-center p-2 border-bottom">
  <div>
    <h6 class="mb-0">{{.Name}}</h6>
    <small class="text-muted">{{price .Price}}</small>
  </div>
  <button class="btn btn-sm btn-primary" data-action="add" data-product-id="{{.ID}}">Add to Cart</button>
</div>{{end}}{{end}}{{end}}
{{define "featuredProducts"}}{{range .}}
<div class="col-lg-3 col-md-4 col-sm-6">
  <div class="product-card h-100">
    <div class="product-image {{.Image}}">
      <div class="product-overlay">
        <button class="btn btn-light" data-action="add" data-product-id="{{.ID}}">Add to Cart</button>
      </div>
    </div>
    <div class="product-info p-4">
      <h5 class="fw-bold">{{.Name}}</h5>
      <p class="text-primary fw-bold mb-0">{{price .Price}}</p>
    </div>
  </div>
</div>{{end}}{{end}}
`))

func (r *Renderer) execute(name string, data any) (template.HTML, error) {
	tmpl, err := fragments.Clone()
	if err != nil {
		return "", err
	}
	tmpl.Funcs(template.FuncMap{"price": r.FormatPrice})

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

// CartSlots renders every cart-bound slot. The checkout slot carries
// "disabled" or "enabled".
func (r *Renderer) CartSlots(c models.Cart) (Slots, error) {
	m := r.Render(c)
	items, err := r.execute(SlotCartItems, m)
	if err != nil {
		return nil, err
	}

	checkout := "disabled"
	if m.CheckoutEnabled {
		checkout = "enabled"
	}
	badge := Badge(c)

	return Slots{
		SlotCartCount:      template.HTML(strconv.Itoa(badge.Count)),
		SlotCartItems:      items,
		SlotCartTotal:      template.HTML(template.HTMLEscapeString(m.Total)),
		SlotCheckoutButton: template.HTML(checkout),
	}, nil
}

// SearchResults renders the search dropdown.
func (r *Renderer) SearchResults(products []models.Product) (template.HTML, error) {
	return r.execute(SlotSearchResults, products)
}

// FeaturedProducts renders the home page product grid.
func (r *Renderer) FeaturedProducts(products []models.Product) (template.HTML, error) {
	return r.execute(SlotFeaturedProducts, products)
}
