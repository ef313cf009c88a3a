package view

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yuva-embroidery/storefront/internal/models"
)

func TestRenderEmpty(t *testing.T) {
	m := Render(models.Cart{})

	if m.CheckoutEnabled {
		t.Error("Expected checkout disabled for empty cart")
	}
	if m.Total != "Rs 0" {
		t.Errorf("Expected total Rs 0, got %s", m.Total)
	}
	if m.Placeholder != EmptyCartMessage {
		t.Errorf("Expected placeholder %q, got %q", EmptyCartMessage, m.Placeholder)
	}
	if len(m.Lines) != 0 {
		t.Errorf("Expected no lines, got %d", len(m.Lines))
	}
}

func TestRender(t *testing.T) {
	c := models.Cart{
		{ID: 1, Name: "Floral Pattern Design", Price: 450, Quantity: 2},
		{ID: 4, Name: "Kutch Work Design", Price: 600, Quantity: 1, Size: "small"},
	}

	want := Model{
		Lines: []Line{
			{ID: 1, Name: "Floral Pattern Design", UnitPrice: 450, Quantity: 2, LineTotal: 900},
			{ID: 4, Name: "Kutch Work Design", Size: "small", UnitPrice: 600, Quantity: 1, LineTotal: 600},
		},
		GrandTotal:      1500,
		Total:           "Rs 1500",
		CheckoutEnabled: true,
	}
	if diff := cmp.Diff(want, Render(c)); diff != "" {
		t.Errorf("Model mismatch (-want +got):\n%s", diff)
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		currency string
		amount   int
		expected string
	}{
		{currency: "", amount: 600, expected: "Rs 600"},
		{currency: "Rs", amount: 0, expected: "Rs 0"},
		{currency: "INR", amount: 1200, expected: "INR 1200"},
	}
	for _, tt := range tests {
		if got := NewRenderer(tt.currency).FormatPrice(tt.amount); got != tt.expected {
			t.Errorf("Expected %s, got %s", tt.expected, got)
		}
	}
}

func TestBadge(t *testing.T) {
	if b := Badge(nil); b.Visible || b.Count != 0 {
		t.Errorf("Expected hidden zero badge, got %+v", b)
	}
	b := Badge(models.Cart{{ID: 1, Quantity: 2}, {ID: 2, Quantity: 3}})
	if !b.Visible || b.Count != 5 {
		t.Errorf("Expected visible badge of 5, got %+v", b)
	}
}

func TestCartSlots(t *testing.T) {
	r := NewRenderer("Rs")

	empty, err := r.CartSlots(models.Cart{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(string(empty[SlotCartItems]), EmptyCartMessage) {
		t.Errorf("Expected empty placeholder, got %s", empty[SlotCartItems])
	}
	if empty[SlotCheckoutButton] != "disabled" || empty[SlotCartTotal] != "Rs 0" || empty[SlotCartCount] != "0" {
		t.Errorf("Unexpected empty slots: %v", empty)
	}

	slots, err := r.CartSlots(models.Cart{{ID: 4, Name: "Kutch <Work>", Price: 600, Quantity: 2, Size: "large"}})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	items := string(slots[SlotCartItems])
	for _, want := range []string{"Kutch &lt;Work&gt;", "Rs 600 x 2", "Rs 1200", `data-line-id="4"`, `data-line-size="large"`} {
		if !strings.Contains(items, want) {
			t.Errorf("Expected cart items to contain %q, got:\n%s", want, items)
		}
	}
	if slots[SlotCheckoutButton] != "enabled" || slots[SlotCartCount] != "2" {
		t.Errorf("Unexpected slots: %v", slots)
	}
}

func TestSearchAndFeaturedSlots(t *testing.T) {
	r := NewRenderer("Rs")

	none, err := r.SearchResults(nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(none), NoResultsMessage) {
		t.Errorf("Expected no-results message, got %s", none)
	}

	results, err := r.SearchResults([]models.Product{{ID: 2, Name: "Mirror Work Embroidery", Price: 550}})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(results), "Mirror Work Embroidery") || !strings.Contains(string(results), `data-product-id="2"`) {
		t.Errorf("Unexpected search markup: %s", results)
	}

	featured, err := r.FeaturedProducts([]models.Product{{ID: 4, Name: "Kutch Work Pattern", Price: 600, Image: "collection-image-8"}})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(featured), "collection-image-8") || !strings.Contains(string(featured), "Rs 600") {
		t.Errorf("Unexpected featured markup: %s", featured)
	}
}
