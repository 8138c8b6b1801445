// internal/domain/cart/store_test.go
package cart

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryKV is an in-memory KeyValue for tests.
type memoryKV struct {
	mu   sync.Mutex
	data map[string]string
	fail error // when set, every call fails with this error
}

func newMemoryKV() *memoryKV {
	return &memoryKV{data: make(map[string]string)}
}

func (m *memoryKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return "", false, m.fail
	}
	value, ok := m.data[key]
	return value, ok, nil
}

func (m *memoryKV) Set(_ context.Context, key, value string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	m.data[key] = value
	return nil
}

func (m *memoryKV) Del(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	delete(m.data, key)
	return nil
}

func testItem(productID uint, quantity int) LineItem {
	return LineItem{
		ProductID:     productID,
		Quantity:      quantity,
		SelectedColor: "Black",
		SelectedSize:  "M",
		PrintLocation: "front",
	}
}

func TestGetAbsentReturnsEmptyCart(t *testing.T) {
	store := NewStore(newMemoryKV(), time.Hour)

	c, err := store.Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", c.SessionID)
	assert.Empty(t, c.Items)
}

func TestGetIsIdempotent(t *testing.T) {
	store := NewStore(newMemoryKV(), time.Hour)
	ctx := context.Background()

	_, err := store.AddItem(ctx, "s1", testItem(1, 2))
	require.NoError(t, err)

	first, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	second, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, first.Items, second.Items)
}

func TestAddItemRoundTrip(t *testing.T) {
	store := NewStore(newMemoryKV(), time.Hour)
	ctx := context.Background()

	_, err := store.AddItem(ctx, "s1", testItem(1, 1))
	require.NoError(t, err)

	added := testItem(2, 3)
	added.SelectedColor = "Sage"
	updated, err := store.AddItem(ctx, "s1", added)
	require.NoError(t, err)
	require.Len(t, updated.Items, 2)

	loaded, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	last := loaded.Items[len(loaded.Items)-1]
	assert.Equal(t, uint(2), last.ProductID)
	assert.Equal(t, 3, last.Quantity)
	assert.Equal(t, "Sage", last.SelectedColor)
	assert.NotEmpty(t, last.ID, "items receive a stable id at add time")
}

func TestAddItemValidation(t *testing.T) {
	store := NewStore(newMemoryKV(), time.Hour)
	ctx := context.Background()

	tests := []struct {
		name string
		item LineItem
	}{
		{"zero quantity", LineItem{ProductID: 1, Quantity: 0, SelectedColor: "Black", SelectedSize: "M"}},
		{"negative quantity", LineItem{ProductID: 1, Quantity: -2, SelectedColor: "Black", SelectedSize: "M"}},
		{"missing color", LineItem{ProductID: 1, Quantity: 1, SelectedSize: "M"}},
		{"missing size", LineItem{ProductID: 1, Quantity: 1, SelectedColor: "Black"}},
		{"missing product", LineItem{Quantity: 1, SelectedColor: "Black", SelectedSize: "M"}},
		{"bad print location", LineItem{ProductID: 1, Quantity: 1, SelectedColor: "Black", SelectedSize: "M", PrintLocation: "sleeve"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.AddItem(ctx, "s1", tt.item)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	// Nothing was persisted.
	c, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, c.Items)
}

func TestUpdateItemQuantity(t *testing.T) {
	store := NewStore(newMemoryKV(), time.Hour)
	ctx := context.Background()

	c, err := store.AddItem(ctx, "s1", testItem(1, 2))
	require.NoError(t, err)
	itemID := c.Items[0].ID

	five := 5
	updated, err := store.UpdateItem(ctx, "s1", itemID, ItemPatch{Quantity: &five})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Items[0].Quantity)
}

func TestUpdateQuantityZeroRemovesItem(t *testing.T) {
	store := NewStore(newMemoryKV(), time.Hour)
	ctx := context.Background()

	c, err := store.AddItem(ctx, "s1", testItem(1, 2))
	require.NoError(t, err)
	itemID := c.Items[0].ID

	zero := 0
	updated, err := store.UpdateItem(ctx, "s1", itemID, ItemPatch{Quantity: &zero})
	require.NoError(t, err)
	assert.Empty(t, updated.Items, "quantity zero is removal, never a stored zero")

	negative := -1
	_, err = store.AddItem(ctx, "s1", testItem(2, 1))
	require.NoError(t, err)
	c, err = store.Get(ctx, "s1")
	require.NoError(t, err)
	updated, err = store.UpdateItem(ctx, "s1", c.Items[0].ID, ItemPatch{Quantity: &negative})
	require.NoError(t, err)
	assert.Empty(t, updated.Items)
}

func TestUpdateUnknownItem(t *testing.T) {
	store := NewStore(newMemoryKV(), time.Hour)
	ctx := context.Background()

	_, err := store.AddItem(ctx, "s1", testItem(1, 1))
	require.NoError(t, err)

	qty := 2
	_, err = store.UpdateItem(ctx, "s1", "no-such-item", ItemPatch{Quantity: &qty})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveShiftsLaterItems(t *testing.T) {
	store := NewStore(newMemoryKV(), time.Hour)
	ctx := context.Background()

	var ids []string
	for i := uint(1); i <= 3; i++ {
		c, err := store.AddItem(ctx, "s1", testItem(i, 1))
		require.NoError(t, err)
		ids = append(ids, c.Items[len(c.Items)-1].ID)
	}

	updated, err := store.RemoveItem(ctx, "s1", ids[0])
	require.NoError(t, err)
	require.Len(t, updated.Items, 2)

	// The item formerly at position 1 is now at position 0.
	assert.Equal(t, ids[1], updated.Items[0].ID)
	assert.Equal(t, ids[2], updated.Items[1].ID)
}

func TestRemoveUnknownItem(t *testing.T) {
	store := NewStore(newMemoryKV(), time.Hour)

	_, err := store.RemoveItem(context.Background(), "s1", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClear(t *testing.T) {
	store := NewStore(newMemoryKV(), time.Hour)
	ctx := context.Background()

	_, err := store.AddItem(ctx, "s1", testItem(1, 4))
	require.NoError(t, err)

	cleared, err := store.Clear(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, cleared.Items)
	assert.Equal(t, 0, cleared.TotalQuantity())

	loaded, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, loaded.Items)
}

func TestSessionsAreIndependent(t *testing.T) {
	store := NewStore(newMemoryKV(), time.Hour)
	ctx := context.Background()

	_, err := store.AddItem(ctx, "s1", testItem(1, 1))
	require.NoError(t, err)

	other, err := store.Get(ctx, "s2")
	require.NoError(t, err)
	assert.Empty(t, other.Items)

	_, err = store.Clear(ctx, "s2")
	require.NoError(t, err)

	mine, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, mine.Items, 1)
}

func TestConcurrentAddsAllPersist(t *testing.T) {
	store := NewStore(newMemoryKV(), time.Hour)
	ctx := context.Background()

	const workers = 20
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(n uint) {
			defer wg.Done()
			_, err := store.AddItem(ctx, "s1", testItem(n+1, 1))
			assert.NoError(t, err)
		}(uint(i))
	}
	wg.Wait()

	c, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, c.Items, workers, "concurrent adds for one session must not clobber each other")
}

func TestStorageFailureSurfacesAsUnavailable(t *testing.T) {
	kv := newMemoryKV()
	store := NewStore(kv, time.Hour)
	ctx := context.Background()

	_, err := store.AddItem(ctx, "s1", testItem(1, 1))
	require.NoError(t, err)

	kv.fail = errors.New("connection refused")

	_, err = store.Get(ctx, "s1")
	assert.ErrorIs(t, err, ErrUnavailable)
	_, err = store.AddItem(ctx, "s1", testItem(2, 1))
	assert.ErrorIs(t, err, ErrUnavailable)

	// After the medium recovers, the previously persisted state is intact.
	kv.fail = nil
	c, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, c.Items, 1)
}

func TestEmptySessionIDRejected(t *testing.T) {
	store := NewStore(newMemoryKV(), time.Hour)

	_, err := store.Get(context.Background(), "")
	assert.ErrorIs(t, err, ErrValidation)
}
