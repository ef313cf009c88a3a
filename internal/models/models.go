package models

// Product is a catalog entry. Prices are whole currency units.
type Product struct {
	ID         int    `json:"id" yaml:"id" parquet:"id"`
	Name       string `json:"name" yaml:"name" parquet:"name"`
	Price      int    `json:"price" yaml:"price" parquet:"price"`
	Collection string `json:"collection,omitempty" yaml:"collection" parquet:"collection,optional"`
	Image      string `json:"image,omitempty" yaml:"image" parquet:"image,optional"`
}

// Item is anything that can be put in the cart. A zero Quantity means one.
type Item struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity,omitempty"`
	Size     string `json:"size,omitempty"`
	Image    string `json:"image,omitempty"`
}

// ItemFromProduct builds a single-unit cart item for p.
func ItemFromProduct(p Product) Item {
	return Item{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
		Image: p.Image,
	}
}

// CartLine is one persisted line of the cart.
type CartLine struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
	Size     string `json:"size,omitempty"`
	Image    string `json:"image,omitempty"`
}

// Key returns the composite key of the line.
func (l CartLine) Key() LineKey {
	return LineKey{ID: l.ID, Size: l.Size}
}

// Total is price times quantity.
func (l CartLine) Total() int {
	return l.Price * l.Quantity
}

// LineKey identifies a cart line by product id and, optionally, size.
type LineKey struct {
	ID   int    `json:"id"`
	Size string `json:"size,omitempty"`
}

// Matches reports whether two keys address the same line. Sizes are only
// compared when both keys carry one.
func (k LineKey) Matches(other LineKey) bool {
	if k.ID != other.ID {
		return false
	}
	if k.Size != "" && other.Size != "" {
		return k.Size == other.Size
	}
	return true
}

// Cart is the ordered list of lines, in insertion order.
type Cart []CartLine

// Clone returns a copy that shares nothing with c.
func (c Cart) Clone() Cart {
	if c == nil {
		return Cart{}
	}
	out := make(Cart, len(c))
	copy(out, c)
	return out
}
