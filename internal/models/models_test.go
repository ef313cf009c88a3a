package models

import "testing"

func TestLineKeyMatches(t *testing.T) {
	tests := []struct {
		name     string
		a, b     LineKey
		expected bool
	}{
		{name: "same id no size", a: LineKey{ID: 1}, b: LineKey{ID: 1}, expected: true},
		{name: "different id", a: LineKey{ID: 1}, b: LineKey{ID: 2}, expected: false},
		{name: "same size", a: LineKey{ID: 1, Size: "small"}, b: LineKey{ID: 1, Size: "small"}, expected: true},
		{name: "different size", a: LineKey{ID: 1, Size: "small"}, b: LineKey{ID: 1, Size: "large"}, expected: false},
		{name: "one side without size", a: LineKey{ID: 1}, b: LineKey{ID: 1, Size: "large"}, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Matches(tt.b); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
			if got := tt.b.Matches(tt.a); got != tt.expected {
				t.Errorf("Expected symmetric result %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestCartClone(t *testing.T) {
	c := Cart{{ID: 1, Quantity: 1}}
	clone := c.Clone()
	clone[0].Quantity = 5
	if c[0].Quantity != 1 {
		t.Errorf("Expected original quantity 1, got %d", c[0].Quantity)
	}

	var empty Cart
	if got := empty.Clone(); got == nil || len(got) != 0 {
		t.Errorf("Expected non-nil empty clone, got %#v", got)
	}
}
