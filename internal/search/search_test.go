package search

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yuva-embroidery/storefront/internal/catalog"
	"github.com/yuva-embroidery/storefront/internal/models"
)

func ids(products []models.Product) []int {
	out := make([]int, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestSearch(t *testing.T) {
	products := catalog.Sample().Products()

	tests := []struct {
		name     string
		query    string
		expected []int
	}{
		{name: "lower case", query: "mirror", expected: []int{2}},
		{name: "upper case", query: "MIRROR", expected: []int{2}},
		{name: "matches collection tag", query: "rs450", expected: []int{1}},
		{name: "matches several names", query: "design", expected: []int{1, 3, 4, 5}},
		{name: "embroidery", query: "Embroidery", expected: []int{2, 5}},
		{name: "no match", query: "velvet", expected: []int{}},
		{name: "empty matches all", query: "", expected: []int{1, 2, 3, 4, 5}},
		{name: "surrounding space ignored", query: "  kutch ", expected: []int{4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Search(products, tt.query))
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Search(%q) mismatch (-want +got):\n%s", tt.query, diff)
			}
		})
	}
}

func TestSearchDoesNotMutateCatalog(t *testing.T) {
	products := catalog.Sample().Products()
	before := append([]models.Product(nil), products...)
	_ = Search(products, "net")
	if diff := cmp.Diff(before, products); diff != "" {
		t.Errorf("Catalog changed (-before +after):\n%s", diff)
	}
}

func TestByCollection(t *testing.T) {
	products := catalog.Sample().Products()
	if got := ids(ByCollection(products, "Kutch")); !cmp.Equal(got, []int{4}) {
		t.Errorf("Expected [4], got %v", got)
	}
	if got := ByCollection(products, "kut"); len(got) != 0 {
		t.Errorf("Expected exact collection match only, got %v", ids(got))
	}
}
