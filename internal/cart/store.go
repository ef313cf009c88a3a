package cart

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/yuva-embroidery/storefront/internal/models"
	"github.com/yuva-embroidery/storefront/internal/storage"
)

// StorageKey is where the cart lives in the profile store.
const StorageKey = "cart"

const (
	MessageAdded   = "Product added to cart!"
	MessageRemoved = "Product removed from cart!"
)

// Notifier receives user-facing feedback after each mutation.
type Notifier interface {
	Notify(message string)
}

// Store owns the authoritative cart. Every mutation is persisted and then
// published to subscribers before the call returns.
type Store struct {
	backend  storage.Store
	notifier Notifier

	mu          sync.Mutex
	cart        models.Cart
	subscribers []func(models.Cart)
}

// NewStore loads the persisted cart. A nil notifier disables feedback.
func NewStore(ctx context.Context, backend storage.Store, notifier Notifier) *Store {
	s := &Store{
		backend:  backend,
		notifier: notifier,
	}
	s.cart = s.Load(ctx)
	return s
}

// Load reads the persisted cart. Missing or unreadable data yields an empty
// cart.
func (s *Store) Load(ctx context.Context) models.Cart {
	data, err := s.backend.Get(ctx, StorageKey)
	if errors.Is(err, storage.ErrNotFound) {
		return models.Cart{}
	}
	if err != nil {
		slog.Warn("Unable to read stored cart, starting empty", "err", err)
		return models.Cart{}
	}

	var lines models.Cart
	if err := json.Unmarshal(data, &lines); err != nil {
		slog.Warn("Stored cart is malformed, starting empty", "err", err)
		return models.Cart{}
	}
	return sanitize(lines)
}

// sanitize drops lines that violate the cart invariants and merges
// duplicate keys in order.
func sanitize(lines models.Cart) models.Cart {
	out := make(models.Cart, 0, len(lines))
	for _, line := range lines {
		if line.Quantity < 1 || line.Price < 0 {
			slog.Debug("Dropping invalid stored cart line", "id", line.ID, "quantity", line.Quantity, "price", line.Price)
			continue
		}
		if i := indexOf(out, line.Key()); i >= 0 {
			out[i].Quantity += line.Quantity
			continue
		}
		out = append(out, line)
	}
	return out
}

func indexOf(c models.Cart, key models.LineKey) int {
	for i, line := range c {
		if line.Key().Matches(key) {
			return i
		}
	}
	return -1
}

// Cart returns a snapshot of the current cart.
func (s *Store) Cart() models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Clone()
}

// Subscribe registers fn to receive the cart after every mutation. fn runs
// under the store lock and must not call back into the store.
func (s *Store) Subscribe(fn func(models.Cart)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Add merges item into a matching line or appends a new one.
func (s *Store) Add(ctx context.Context, item models.Item) models.Cart {
	quantity := item.Quantity
	if quantity < 1 {
		quantity = 1
	}
	price := item.Price
	if price < 0 {
		price = 0
	}

	key := models.LineKey{ID: item.ID, Size: item.Size}
	updated := s.mutate(ctx, func(c models.Cart) models.Cart {
		if i := indexOf(c, key); i >= 0 {
			c[i].Quantity += quantity
			return c
		}
		return append(c, models.CartLine{
			ID:       item.ID,
			Name:     item.Name,
			Price:    price,
			Quantity: quantity,
			Size:     item.Size,
			Image:    item.Image,
		})
	})

	slog.Debug("Cart line added", "id", item.ID, "size", item.Size, "quantity", quantity)
	s.notify(MessageAdded)
	return updated
}

// Remove drops every line matching key.
func (s *Store) Remove(ctx context.Context, key models.LineKey) models.Cart {
	updated := s.mutate(ctx, func(c models.Cart) models.Cart {
		kept := c[:0]
		for _, line := range c {
			if !line.Key().Matches(key) {
				kept = append(kept, line)
			}
		}
		return kept
	})

	slog.Debug("Cart line removed", "id", key.ID, "size", key.Size)
	s.notify(MessageRemoved)
	return updated
}

// mutate applies fn, persists and publishes under the store lock so no
// caller sees a half-updated cart.
func (s *Store) mutate(ctx context.Context, fn func(models.Cart) models.Cart) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = fn(s.cart.Clone())
	s.save(ctx)

	snapshot := s.cart.Clone()
	for _, sub := range s.subscribers {
		sub(snapshot.Clone())
	}
	return snapshot
}

func (s *Store) save(ctx context.Context) {
	data, err := json.Marshal(s.cart)
	if err != nil {
		slog.Error("Unable to encode cart", "err", err)
		return
	}
	if err := s.backend.Set(ctx, StorageKey, data); err != nil {
		slog.Error("Unable to persist cart", "err", err)
	}
}

func (s *Store) notify(message string) {
	if s.notifier != nil {
		s.notifier.Notify(message)
	}
}

// TotalQuantity is the number of units in the cart.
func TotalQuantity(c models.Cart) int {
	total := 0
	for _, line := range c {
		total += line.Quantity
	}
	return total
}

// TotalPrice is the sum of price times quantity over all lines.
func TotalPrice(c models.Cart) int {
	total := 0
	for _, line := range c {
		total += line.Total()
	}
	return total
}
