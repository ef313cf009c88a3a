package cart

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/yuva-embroidery/storefront/internal/models"
	"github.com/yuva-embroidery/storefront/internal/storage"
)

type recordingNotifier struct {
	messages []string
}

func (r *recordingNotifier) Notify(message string) {
	r.messages = append(r.messages, message)
}

type failingStore struct{}

func (failingStore) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, errors.New("disk on fire")
}

func (failingStore) Set(ctx context.Context, key string, value []byte) error {
	return errors.New("disk on fire")
}

func (failingStore) Delete(ctx context.Context, key string) error { return nil }

func newTestStore(t *testing.T) (*Store, *storage.MemoryStore, *recordingNotifier) {
	t.Helper()
	backend := storage.NewMemoryStore()
	notes := &recordingNotifier{}
	return NewStore(context.Background(), backend, notes), backend, notes
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		stored   string
		expected models.Cart
	}{
		{
			name:     "absent",
			expected: models.Cart{},
		},
		{
			name:     "malformed",
			stored:   "{not json",
			expected: models.Cart{},
		},
		{
			name:     "wrong shape",
			stored:   `{"id":1}`,
			expected: models.Cart{},
		},
		{
			name:   "valid",
			stored: `[{"id":1,"name":"Floral Pattern Design","price":450,"quantity":2}]`,
			expected: models.Cart{
				{ID: 1, Name: "Floral Pattern Design", Price: 450, Quantity: 2},
			},
		},
		{
			name:   "drops invalid lines and merges duplicates",
			stored: `[{"id":1,"price":450,"quantity":1},{"id":2,"price":10,"quantity":0},{"id":3,"price":-1,"quantity":1},{"id":1,"price":450,"quantity":2}]`,
			expected: models.Cart{
				{ID: 1, Price: 450, Quantity: 3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := storage.NewMemoryStore()
			if tt.stored != "" {
				_ = backend.Set(context.Background(), StorageKey, []byte(tt.stored))
			}
			s := NewStore(context.Background(), backend, nil)
			if diff := cmp.Diff(tt.expected, s.Cart()); diff != "" {
				t.Errorf("Cart mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadStorageError(t *testing.T) {
	s := NewStore(context.Background(), failingStore{}, nil)
	if len(s.Cart()) != 0 {
		t.Errorf("Expected empty cart on read error, got %v", s.Cart())
	}

	// Persistence failures are logged, not surfaced.
	got := s.Add(context.Background(), models.Item{ID: 1, Price: 450})
	if TotalQuantity(got) != 1 {
		t.Errorf("Expected in-memory cart to update despite write error, got %v", got)
	}
}

func TestAddMergesSameLine(t *testing.T) {
	s, _, notes := newTestStore(t)
	ctx := context.Background()

	s.Add(ctx, models.Item{ID: 1, Price: 450, Quantity: 1})
	got := s.Add(ctx, models.Item{ID: 1, Price: 450, Quantity: 1})

	if len(got) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(got))
	}
	if got[0].Quantity != 2 {
		t.Errorf("Expected quantity 2, got %d", got[0].Quantity)
	}
	if len(notes.messages) != 2 || notes.messages[1] != MessageAdded {
		t.Errorf("Expected two added notifications, got %v", notes.messages)
	}
}

func TestAddCompositeKey(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	s.Add(ctx, models.Item{ID: 1, Size: "small", Price: 450})
	got := s.Add(ctx, models.Item{ID: 1, Size: "large", Price: 450})

	want := models.Cart{
		{ID: 1, Size: "small", Price: 450, Quantity: 1},
		{ID: 1, Size: "large", Price: 450, Quantity: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Cart mismatch (-want +got):\n%s", diff)
	}
}

func TestAddQuantityAndNormalization(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	s.Add(ctx, models.Item{ID: 7, Size: "small", Price: 450, Quantity: 3})
	got := s.Add(ctx, models.Item{ID: 7, Size: "small", Price: 450, Quantity: 2})
	if got[0].Quantity != 5 {
		t.Errorf("Expected quantity 5, got %d", got[0].Quantity)
	}

	got = s.Add(ctx, models.Item{ID: 8, Price: -20, Quantity: -4})
	line := got[1]
	if line.Quantity != 1 || line.Price != 0 {
		t.Errorf("Expected normalized line (1 x 0), got %d x %d", line.Quantity, line.Price)
	}
}

func TestAddPersists(t *testing.T) {
	s, backend, _ := newTestStore(t)
	ctx := context.Background()
	s.Add(ctx, models.Item{ID: 4, Name: "Kutch Work Design", Price: 600})

	data, err := backend.Get(ctx, StorageKey)
	if err != nil {
		t.Fatalf("Expected persisted cart, got %v", err)
	}
	var stored models.Cart
	if err := json.Unmarshal(data, &stored); err != nil {
		t.Fatalf("Persisted cart is not JSON: %v", err)
	}
	if diff := cmp.Diff(s.Cart(), stored); diff != "" {
		t.Errorf("Persisted cart mismatch (-mem +stored):\n%s", diff)
	}
}

func TestRemove(t *testing.T) {
	s, _, notes := newTestStore(t)
	ctx := context.Background()

	s.Add(ctx, models.Item{ID: 1, Price: 450})
	got := s.Remove(ctx, models.LineKey{ID: 1})
	if len(got) != 0 {
		t.Errorf("Expected empty cart, got %v", got)
	}
	if notes.messages[len(notes.messages)-1] != MessageRemoved {
		t.Errorf("Expected removed notification, got %v", notes.messages)
	}

	// Removing from an empty cart is a no-op.
	if got := s.Remove(ctx, models.LineKey{ID: 99}); len(got) != 0 {
		t.Errorf("Expected empty cart, got %v", got)
	}
}

func TestRemoveBySize(t *testing.T) {
	s, _, _ := newTestStore(t)
	ctx := context.Background()

	s.Add(ctx, models.Item{ID: 1, Size: "small", Price: 450})
	s.Add(ctx, models.Item{ID: 1, Size: "large", Price: 450})
	s.Add(ctx, models.Item{ID: 2, Price: 550})

	got := s.Remove(ctx, models.LineKey{ID: 1, Size: "large"})
	want := models.Cart{
		{ID: 1, Size: "small", Price: 450, Quantity: 1},
		{ID: 2, Price: 550, Quantity: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Cart mismatch (-want +got):\n%s", diff)
	}

	got = s.Remove(ctx, models.LineKey{ID: 1})
	if len(got) != 1 || got[0].ID != 2 {
		t.Errorf("Expected removal without size to drop every id=1 line, got %v", got)
	}
}

func TestReloadKeepsTotals(t *testing.T) {
	s, backend, _ := newTestStore(t)
	ctx := context.Background()
	s.Add(ctx, models.Item{ID: 1, Price: 450, Quantity: 2})
	s.Add(ctx, models.Item{ID: 4, Price: 600})

	wantQty, wantPrice := TotalQuantity(s.Cart()), TotalPrice(s.Cart())
	for i := 0; i < 3; i++ {
		reloaded := NewStore(ctx, backend, nil)
		if got := TotalQuantity(reloaded.Load(ctx)); got != wantQty {
			t.Errorf("Expected quantity %d after reload, got %d", wantQty, got)
		}
		if got := TotalPrice(reloaded.Cart()); got != wantPrice {
			t.Errorf("Expected price %d after reload, got %d", wantPrice, got)
		}
	}
	if wantQty != 3 || wantPrice != 1500 {
		t.Errorf("Expected totals 3 / 1500, got %d / %d", wantQty, wantPrice)
	}
}

func TestSubscribe(t *testing.T) {
	s, _, _ := newTestStore(t)
	var seen []int
	s.Subscribe(func(c models.Cart) {
		seen = append(seen, TotalQuantity(c))
	})

	ctx := context.Background()
	s.Add(ctx, models.Item{ID: 1, Price: 1})
	s.Add(ctx, models.Item{ID: 1, Price: 1})
	s.Remove(ctx, models.LineKey{ID: 1})

	if diff := cmp.Diff([]int{1, 2, 0}, seen); diff != "" {
		t.Errorf("Subscriber saw (-want +got):\n%s", diff)
	}
}

func TestSnapshotsAreIsolated(t *testing.T) {
	s, _, _ := newTestStore(t)
	got := s.Add(context.Background(), models.Item{ID: 1, Price: 1})
	got[0].Quantity = 100

	if s.Cart()[0].Quantity != 1 {
		t.Error("Expected returned cart to be a copy")
	}
}

func TestQuantityInput(t *testing.T) {
	q := NewQuantityInput(1, 3)
	q.Decrease()
	if q.Value != 1 {
		t.Errorf("Expected value to stay at min 1, got %d", q.Value)
	}
	q.Increase()
	q.Increase()
	q.Increase()
	if q.Value != 3 {
		t.Errorf("Expected value capped at max 3, got %d", q.Value)
	}

	tests := []struct {
		in, expected int
	}{
		{in: 0, expected: 1},
		{in: 2, expected: 2},
		{in: 10, expected: 3},
	}
	for _, tt := range tests {
		q.Set(tt.in)
		if q.Value != tt.expected {
			t.Errorf("Set(%d): expected %d, got %d", tt.in, tt.expected, q.Value)
		}
	}

	collapsed := NewQuantityInput(5, 2)
	if collapsed.Min != 5 || collapsed.Max != 5 {
		t.Errorf("Expected max collapsed to min, got %+v", collapsed)
	}
}
