// internal/domain/cart/store.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// KeyValue is the persistence medium underneath the store: any durable
// keyed store works. Production uses the Redis client wrapper; tests
// use an in-memory map.
type KeyValue interface {
	// Get returns the value for key; ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set stores the value with the given expiration.
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	// Del removes the key.
	Del(ctx context.Context, key string) error
}

// Store persists session carts. All mutations for one session are
// serialized through a per-session lock so concurrent adds from two
// tabs both land instead of one clobbering the other. Sessions are
// independent partitions; there is no cross-session locking.
type Store struct {
	kv    KeyValue
	ttl   time.Duration
	locks sync.Map // session id -> *sync.Mutex
}

// NewStore creates a cart store over the given key-value medium. Carts
// expire after ttl, refreshed on every write.
func NewStore(kv KeyValue, ttl time.Duration) *Store {
	return &Store{
		kv:  kv,
		ttl: ttl,
	}
}

// ItemPatch is a partial line-item update. Nil fields are untouched.
// A quantity at or below zero removes the item instead of storing it.
type ItemPatch struct {
	Quantity       *int              `json:"quantity"`
	SelectedColor  *string           `json:"selected_color"`
	SelectedSize   *string           `json:"selected_size"`
	PrintLocation  *string           `json:"print_location"`
	Customizations map[string]string `json:"customizations"`
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}

// Get returns the session's cart, or an empty cart if none exists yet.
// Absence is never surfaced as an error.
func (s *Store) Get(ctx context.Context, sessionID string) (*Cart, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("%w: session id required", ErrValidation)
	}

	data, ok, err := s.kv.Get(ctx, cartKey(sessionID))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if !ok {
		return NewCart(sessionID), nil
	}

	var c Cart
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return nil, fmt.Errorf("%w: corrupt cart document: %v", ErrUnavailable, err)
	}
	if c.Items == nil {
		c.Items = []LineItem{}
	}
	return &c, nil
}

// AddItem appends a line item to the session's cart and returns the
// full updated cart. The item receives a stable id; update and remove
// address that id, never the display position.
func (s *Store) AddItem(ctx context.Context, sessionID string, item LineItem) (*Cart, error) {
	if err := validateNewItem(item); err != nil {
		return nil, err
	}

	unlock := s.lockSession(sessionID)
	defer unlock()

	c, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	item.ID = uuid.New().String()
	item.AddedAt = time.Now().UTC()
	if item.PrintLocation == "" {
		item.PrintLocation = "front"
	}
	c.Items = append(c.Items, item)

	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateItem applies a partial update to the identified line item and
// returns the full updated cart. Setting quantity to zero or below
// removes the item.
func (s *Store) UpdateItem(ctx context.Context, sessionID, itemID string, patch ItemPatch) (*Cart, error) {
	if err := validatePatch(patch); err != nil {
		return nil, err
	}

	unlock := s.lockSession(sessionID)
	defer unlock()

	c, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	idx := c.IndexOf(itemID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: item %s", ErrNotFound, itemID)
	}

	if patch.Quantity != nil && *patch.Quantity <= 0 {
		c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
	} else {
		applyPatch(&c.Items[idx], patch)
	}

	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// RemoveItem removes the identified line item and returns the full
// updated cart. Items after it shift down one display position.
func (s *Store) RemoveItem(ctx context.Context, sessionID, itemID string) (*Cart, error) {
	unlock := s.lockSession(sessionID)
	defer unlock()

	c, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	idx := c.IndexOf(itemID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: item %s", ErrNotFound, itemID)
	}
	c.Items = append(c.Items[:idx], c.Items[idx+1:]...)

	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Clear empties the session's cart and returns the empty cart.
func (s *Store) Clear(ctx context.Context, sessionID string) (*Cart, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("%w: session id required", ErrValidation)
	}

	unlock := s.lockSession(sessionID)
	defer unlock()

	if err := s.kv.Del(ctx, cartKey(sessionID)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return NewCart(sessionID), nil
}

func (s *Store) save(ctx context.Context, c *Cart) error {
	c.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	if err := s.kv.Set(ctx, cartKey(c.SessionID), string(data), s.ttl); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (s *Store) lockSession(sessionID string) func() {
	actual, _ := s.locks.LoadOrStore(sessionID, &sync.Mutex{})
	mu := actual.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func validateNewItem(item LineItem) error {
	if item.ProductID == 0 {
		return fmt.Errorf("%w: product id required", ErrValidation)
	}
	if item.Quantity < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	}
	if item.SelectedColor == "" {
		return fmt.Errorf("%w: color selection required", ErrValidation)
	}
	if item.SelectedSize == "" {
		return fmt.Errorf("%w: size selection required", ErrValidation)
	}
	if !validPrintLocation(item.PrintLocation) {
		return fmt.Errorf("%w: unknown print location %q", ErrValidation, item.PrintLocation)
	}
	return nil
}

func validatePatch(patch ItemPatch) error {
	if patch.SelectedColor != nil && *patch.SelectedColor == "" {
		return fmt.Errorf("%w: color cannot be empty", ErrValidation)
	}
	if patch.SelectedSize != nil && *patch.SelectedSize == "" {
		return fmt.Errorf("%w: size cannot be empty", ErrValidation)
	}
	if patch.PrintLocation != nil && !validPrintLocation(*patch.PrintLocation) {
		return fmt.Errorf("%w: unknown print location %q", ErrValidation, *patch.PrintLocation)
	}
	return nil
}

func applyPatch(item *LineItem, patch ItemPatch) {
	if patch.Quantity != nil {
		item.Quantity = *patch.Quantity
	}
	if patch.SelectedColor != nil {
		item.SelectedColor = *patch.SelectedColor
	}
	if patch.SelectedSize != nil {
		item.SelectedSize = *patch.SelectedSize
	}
	if patch.PrintLocation != nil {
		item.PrintLocation = *patch.PrintLocation
	}
	if patch.Customizations != nil {
		item.Customizations = patch.Customizations
	}
}

func validPrintLocation(location string) bool {
	switch location {
	case "", "front", "back", "both":
		return true
	}
	return false
}
