package catalog

import (
	"github.com/yuva-embroidery/storefront/internal/models"
)

// Provider supplies an ordered, read-only product list.
type Provider interface {
	Products() []models.Product
}

// Static serves a fixed product list.
type Static struct {
	products []models.Product
}

// NewStatic copies products so later changes by the caller are not visible.
func NewStatic(products []models.Product) *Static {
	owned := make([]models.Product, len(products))
	copy(owned, products)
	return &Static{products: owned}
}

// Products returns a copy of the list in catalog order.
func (s *Static) Products() []models.Product {
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Sample is the searchable demo catalog shown until a real backend exists.
func Sample() *Static {
	return NewStatic([]models.Product{
		{ID: 1, Name: "Floral Pattern Design", Price: 450, Collection: "rs450"},
		{ID: 2, Name: "Mirror Work Embroidery", Price: 550, Collection: "mirror"},
		{ID: 3, Name: "Line Design Pattern", Price: 350, Collection: "lines"},
		{ID: 4, Name: "Kutch Work Design", Price: 600, Collection: "kutch"},
		{ID: 5, Name: "Net Design Embroidery", Price: 450, Collection: "net"},
	})
}

// Featured is the demo list for the home page product grid.
func Featured() *Static {
	return NewStatic([]models.Product{
		{ID: 1, Name: "Elegant Floral Design", Price: 450, Image: "collection-image"},
		{ID: 2, Name: "Mirror Work Collection", Price: 550, Image: "collection-image-3"},
		{ID: 3, Name: "Line Pattern Design", Price: 350, Image: "collection-image-4"},
		{ID: 4, Name: "Kutch Work Pattern", Price: 600, Image: "collection-image-8"},
	})
}
