package storefront

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/yuva-embroidery/storefront/internal/cart"
	"github.com/yuva-embroidery/storefront/internal/catalog"
	"github.com/yuva-embroidery/storefront/internal/models"
	"github.com/yuva-embroidery/storefront/internal/notify"
	"github.com/yuva-embroidery/storefront/internal/search"
	"github.com/yuva-embroidery/storefront/internal/storage"
	"github.com/yuva-embroidery/storefront/internal/view"
)

const (
	MessageCheckout = "Redirecting to checkout..."
	MessageLogin    = "Login functionality - Coming soon!"
	MessageRegister = "Registration functionality - Coming soon!"
)

// DefaultSize is used when a detail-page selection has no size.
const DefaultSize = "small"

// Presenter shows transient feedback and reports what is on screen.
type Presenter interface {
	Notify(message string)
	Active() []notify.Notification
}

// Deps are the collaborators of a Page. Storage, Catalog and Presenter are
// required.
type Deps struct {
	Storage   storage.Store
	Catalog   catalog.Provider
	Featured  catalog.Provider
	Presenter Presenter
	Renderer  *view.Renderer
	Clock     func() time.Time
	// MaxQuantity bounds detail-page selections; zero uses cart.DefaultMaxQuantity.
	MaxQuantity int
}

// Page is the storefront session: it owns the cart store and keeps the
// rendered cart in step with it.
type Page struct {
	cart      *cart.Store
	catalog   catalog.Provider
	featured  catalog.Provider
	presenter Presenter
	renderer  *view.Renderer
	clock     func() time.Time
	maxQty    int

	mu         sync.RWMutex
	model      view.Model
	badge      view.CartBadge
	collection string
}

// DetailSelection is an add-to-cart from the product detail page.
type DetailSelection struct {
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
	Size     string `json:"size,omitempty"`
	Image    string `json:"image,omitempty"`
}

func New(ctx context.Context, deps Deps) (*Page, error) {
	var errs []error
	if deps.Storage == nil {
		errs = append(errs, errors.New("storefront: storage is required"))
	}
	if deps.Catalog == nil {
		errs = append(errs, errors.New("storefront: catalog is required"))
	}
	if deps.Presenter == nil {
		errs = append(errs, errors.New("storefront: presenter is required"))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	p := &Page{
		catalog:   deps.Catalog,
		featured:  deps.Featured,
		presenter: deps.Presenter,
		renderer:  deps.Renderer,
		clock:     deps.Clock,
		maxQty:    deps.MaxQuantity,
	}
	if p.maxQty < 1 {
		p.maxQty = cart.DefaultMaxQuantity
	}
	if p.featured == nil {
		p.featured = deps.Catalog
	}
	if p.renderer == nil {
		p.renderer = view.NewRenderer(view.DefaultCurrency)
	}
	if p.clock == nil {
		p.clock = time.Now
	}

	p.cart = cart.NewStore(ctx, deps.Storage, deps.Presenter)
	p.render(p.cart.Cart())
	p.cart.Subscribe(p.render)

	slog.Info("Storefront page ready", "cart_lines", len(p.model.Lines), "cart_count", p.badge.Count)
	return p, nil
}

func (p *Page) render(c models.Cart) {
	model := p.renderer.Render(c)
	badge := view.Badge(c)

	p.mu.Lock()
	p.model = model
	p.badge = badge
	p.mu.Unlock()
}

// Cart exposes the underlying store.
func (p *Page) Cart() *cart.Store { return p.cart }

func (p *Page) Renderer() *view.Renderer { return p.renderer }

// View is the most recently rendered cart panel.
func (p *Page) View() view.Model {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.model
}

func (p *Page) Badge() view.CartBadge {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.badge
}

func (p *Page) AddToCart(ctx context.Context, item models.Item) view.Model {
	p.cart.Add(ctx, item)
	return p.View()
}

// AddProduct adds one unit of a catalog or featured product by id.
func (p *Page) AddProduct(ctx context.Context, id int) (view.Model, bool) {
	product, ok := p.lookup(id)
	if !ok {
		slog.Warn("Add requested for unknown product", "id", id)
		return p.View(), false
	}
	return p.AddToCart(ctx, models.ItemFromProduct(product)), true
}

func (p *Page) lookup(id int) (models.Product, bool) {
	for _, provider := range []catalog.Provider{p.catalog, p.featured} {
		for _, product := range provider.Products() {
			if product.ID == id {
				return product, true
			}
		}
	}
	return models.Product{}, false
}

// AddFromDetail adds a detail-page selection under a synthetic
// timestamp id. The quantity is clamped to the selector bounds.
func (p *Page) AddFromDetail(ctx context.Context, sel DetailSelection) view.Model {
	size := strings.TrimSpace(sel.Size)
	if size == "" {
		size = DefaultSize
	}
	qty := cart.NewQuantityInput(1, p.maxQty)
	qty.Set(sel.Quantity)
	return p.AddToCart(ctx, models.Item{
		ID:       int(p.clock().UnixMilli()),
		Name:     strings.TrimSpace(sel.Name),
		Price:    sel.Price,
		Quantity: qty.Value,
		Size:     size,
		Image:    sel.Image,
	})
}

func (p *Page) RemoveFromCart(ctx context.Context, key models.LineKey) view.Model {
	p.cart.Remove(ctx, key)
	return p.View()
}

// Checkout reports false, doing nothing, when the cart is empty.
func (p *Page) Checkout() bool {
	if len(p.cart.Cart()) == 0 {
		return false
	}
	p.presenter.Notify(MessageCheckout)
	return true
}

func (p *Page) Login() {
	p.presenter.Notify(MessageLogin)
}

func (p *Page) Register() {
	p.presenter.Notify(MessageRegister)
}

func (p *Page) Search(query string) []models.Product {
	return search.Search(p.catalog.Products(), query)
}

// SearchSlot renders the searchResults slot for query.
func (p *Page) SearchSlot(query string) (template.HTML, error) {
	return p.renderer.SearchResults(p.Search(query))
}

func (p *Page) Featured() []models.Product {
	return p.featured.Products()
}

// Slots renders the cart slots and the featured grid.
func (p *Page) Slots() (view.Slots, error) {
	slots, err := p.renderer.CartSlots(p.cart.Cart())
	if err != nil {
		return nil, err
	}
	featured, err := p.renderer.FeaturedProducts(p.Featured())
	if err != nil {
		return nil, err
	}
	slots[view.SlotFeaturedProducts] = featured
	return slots, nil
}

func (p *Page) Notifications() []notify.Notification {
	return p.presenter.Active()
}

// ApplyCollection records the collection filter requested by the page.
// The listing itself is not filtered; the match count is only logged.
func (p *Page) ApplyCollection(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	p.mu.Lock()
	p.collection = name
	p.mu.Unlock()
	matches := search.ByCollection(p.catalog.Products(), name)
	slog.Info("Filtering by collection", "collection", name, "matches", len(matches))
}

// Collection is the last collection passed to ApplyCollection.
func (p *Page) Collection() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.collection
}
