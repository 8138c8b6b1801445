// internal/domain/cart/service.go
package cart

import (
	"context"
	"fmt"
	"time"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/pricing"
)

// ProductResolver looks up products referenced by cart items. A nil
// product (with nil error) means the reference no longer resolves.
type ProductResolver interface {
	ProductByID(ctx context.Context, id uint) (*catalog.Product, error)
}

// Service handles cart business logic
type Service struct {
	store   *Store
	catalog ProductResolver
	config  *config.Config
}

// NewService creates a new cart service
func NewService(store *Store, resolver ProductResolver, cfg *config.Config) *Service {
	return &Service{
		store:   store,
		catalog: resolver,
		config:  cfg,
	}
}

// ItemView is a line item joined with its resolved product and the
// price the engine currently quotes for it. Product is nil when the
// reference is stale; such items price at zero rather than failing
// the whole cart.
type ItemView struct {
	LineItem
	Product    *catalog.Product `json:"product,omitempty"`
	UnitPrice  int64            `json:"unit_price"`
	TotalPrice int64            `json:"total_price"`
}

// View represents a cart with items and derived totals. Totals are
// never stored; they are recomputed from the live catalog and the
// pricing tables on every read, so a price change retroactively
// affects quoted totals.
type View struct {
	SessionID string    `json:"session_id"`
	Items     []ItemView `json:"items"`
	Totals    Totals    `json:"totals"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AddItemRequest represents an add-to-cart request
type AddItemRequest struct {
	ProductID      uint              `json:"product_id" binding:"required"`
	Quantity       int               `json:"quantity" binding:"required,min=1"`
	SelectedColor  string            `json:"selected_color" binding:"required"`
	SelectedSize   string            `json:"selected_size" binding:"required"`
	PrintLocation  string            `json:"print_location"`
	Customizations map[string]string `json:"customizations"`
}

// UpdateItemRequest represents a cart item update request
type UpdateItemRequest struct {
	Quantity       *int              `json:"quantity"`
	SelectedColor  *string           `json:"selected_color"`
	SelectedSize   *string           `json:"selected_size"`
	PrintLocation  *string           `json:"print_location"`
	Customizations map[string]string `json:"customizations"`
}

// GetCart retrieves the session's cart with resolved products and totals
func (s *Service) GetCart(ctx context.Context, sessionID string) (*View, error) {
	c, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.buildView(ctx, c)
}

// AddItem validates the product reference, appends the line item and
// returns the full updated cart.
func (s *Service) AddItem(ctx context.Context, sessionID string, req *AddItemRequest) (*View, error) {
	product, err := s.catalog.ProductByID(ctx, req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if product == nil {
		return nil, fmt.Errorf("%w: product %d not found", ErrValidation, req.ProductID)
	}
	if !product.InStock {
		return nil, fmt.Errorf("%w: product %q is out of stock", ErrValidation, product.Name)
	}

	item := LineItem{
		ProductID:      req.ProductID,
		Quantity:       req.Quantity,
		SelectedColor:  req.SelectedColor,
		SelectedSize:   req.SelectedSize,
		PrintLocation:  req.PrintLocation,
		Customizations: req.Customizations,
	}

	c, err := s.store.AddItem(ctx, sessionID, item)
	if err != nil {
		return nil, err
	}
	return s.buildView(ctx, c)
}

// UpdateItem applies a partial update to a line item. A quantity of
// zero or below removes the item.
func (s *Service) UpdateItem(ctx context.Context, sessionID, itemID string, req *UpdateItemRequest) (*View, error) {
	patch := ItemPatch{
		Quantity:       req.Quantity,
		SelectedColor:  req.SelectedColor,
		SelectedSize:   req.SelectedSize,
		PrintLocation:  req.PrintLocation,
		Customizations: req.Customizations,
	}

	c, err := s.store.UpdateItem(ctx, sessionID, itemID, patch)
	if err != nil {
		return nil, err
	}
	return s.buildView(ctx, c)
}

// RemoveItem removes a line item from the cart
func (s *Service) RemoveItem(ctx context.Context, sessionID, itemID string) (*View, error) {
	c, err := s.store.RemoveItem(ctx, sessionID, itemID)
	if err != nil {
		return nil, err
	}
	return s.buildView(ctx, c)
}

// Clear empties the session's cart
func (s *Service) Clear(ctx context.Context, sessionID string) (*View, error) {
	c, err := s.store.Clear(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.buildView(ctx, c)
}

// ItemsCount returns the sum of quantities across the session's cart
func (s *Service) ItemsCount(ctx context.Context, sessionID string) (int, error) {
	c, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	return c.TotalQuantity(), nil
}

// buildView resolves each item's product and prices it with the
// engine. Items whose product no longer resolves contribute zero.
func (s *Service) buildView(ctx context.Context, c *Cart) (*View, error) {
	items := make([]ItemView, len(c.Items))
	totals := Totals{ItemCount: len(c.Items)}

	for i, item := range c.Items {
		view := ItemView{LineItem: item}

		product, err := s.catalog.ProductByID(ctx, item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		if product != nil {
			view.Product = product
			view.UnitPrice = pricing.UnitPrice(
				pricing.Garment(product.Garment),
				item.SelectedSize,
				pricing.PrintLocation(item.PrintLocation),
			)
			view.TotalPrice = pricing.Quote(
				pricing.Garment(product.Garment),
				item.SelectedSize,
				pricing.PrintLocation(item.PrintLocation),
				item.Quantity,
			)
		}

		items[i] = view
		totals.TotalQuantity += item.Quantity
		totals.Subtotal += view.TotalPrice
	}

	totals.TotalAmount = totals.Subtotal

	return &View{
		SessionID: c.SessionID,
		Items:     items,
		Totals:    totals,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}, nil
}
