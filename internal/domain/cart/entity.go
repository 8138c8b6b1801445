// internal/domain/cart/entity.go
package cart

import (
	"time"
)

// Cart is one session's cart document as persisted in the key-value
// store. Items keep insertion order; that order is what the storefront
// displays, so removal visibly shifts later items down.
type Cart struct {
	SessionID string     `json:"session_id"`
	Items     []LineItem `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// LineItem is one configured product entry within a cart. The product
// reference is weak: the product may be retired while the item is still
// in the cart, and readers must tolerate that.
type LineItem struct {
	ID             string            `json:"id"` // Stable, assigned at add time
	ProductID      uint              `json:"product_id"`
	Quantity       int               `json:"quantity"`
	SelectedColor  string            `json:"selected_color"`
	SelectedSize   string            `json:"selected_size"`
	PrintLocation  string            `json:"print_location"` // front, back, both
	Customizations map[string]string `json:"customizations,omitempty"`
	AddedAt        time.Time         `json:"added_at"`
}

// Totals represents calculated cart totals
type Totals struct {
	ItemCount     int   `json:"item_count"`     // Number of line items
	TotalQuantity int   `json:"total_quantity"` // Sum of all quantities
	Subtotal      int64 `json:"sub_total"`      // In cents
	TotalAmount   int64 `json:"total_amount"`
}

// NewCart returns an empty cart for the session. Absence in the store
// is always normalized to this.
func NewCart(sessionID string) *Cart {
	now := time.Now().UTC()
	return &Cart{
		SessionID: sessionID,
		Items:     []LineItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// TotalQuantity sums quantities across all line items.
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// IndexOf returns the display position of the item with the given id,
// or -1 if it is not in the cart.
func (c *Cart) IndexOf(itemID string) int {
	for i, item := range c.Items {
		if item.ID == itemID {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy so callers can hand out snapshots without
// sharing the underlying item slice.
func (c *Cart) Clone() *Cart {
	clone := *c
	clone.Items = make([]LineItem, len(c.Items))
	copy(clone.Items, c.Items)
	for i, item := range c.Items {
		if item.Customizations != nil {
			m := make(map[string]string, len(item.Customizations))
			for k, v := range item.Customizations {
				m[k] = v
			}
			clone.Items[i].Customizations = m
		}
	}
	return &clone
}
