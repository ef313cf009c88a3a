package search

import (
	"strings"

	"github.com/yuva-embroidery/storefront/internal/models"
	"golang.org/x/text/cases"
)

// Search returns the products whose name or collection contains query,
// ignoring case, in catalog order. An empty query matches everything.
func Search(products []models.Product, query string) []models.Product {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(query))

	matches := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(fold.String(p.Name), needle) || strings.Contains(fold.String(p.Collection), needle) {
			matches = append(matches, p)
		}
	}
	return matches
}

// ByCollection returns products tagged with exactly the given collection,
// ignoring case.
func ByCollection(products []models.Product, collection string) []models.Product {
	fold := cases.Fold()
	want := fold.String(collection)

	matches := make([]models.Product, 0, len(products))
	for _, p := range products {
		if fold.String(p.Collection) == want {
			matches = append(matches, p)
		}
	}
	return matches
}
