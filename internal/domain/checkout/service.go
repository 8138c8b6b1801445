// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/order"
)

// Service handles checkout business logic
type Service struct {
	config *config.Config
	cart   *cart.Service
	orders *order.Service
}

// NewService creates a new checkout service
func NewService(cfg *config.Config, cartService *cart.Service, orderService *order.Service) *Service {
	return &Service{
		config: cfg,
		cart:   cartService,
		orders: orderService,
	}
}

// Pricing represents the checkout pricing breakdown
type Pricing struct {
	Subtotal       int64 `json:"subtotal"`
	TaxAmount      int64 `json:"tax_amount"`
	ShippingAmount int64 `json:"shipping_amount"`
	TotalAmount    int64 `json:"total_amount"`
}

// Summary represents a complete checkout summary for the session
type Summary struct {
	Cart    *cart.View `json:"cart"`
	Pricing Pricing    `json:"pricing"`
}

// PlaceOrderRequest represents order placement data
type PlaceOrderRequest struct {
	CustomerEmail   string         `json:"customer_email" binding:"required,email"`
	ShippingAddress *order.Address `json:"shipping_address,omitempty"`
}

// GetSummary builds the checkout summary from the session's live cart.
// Totals come from the pricing tables at call time, never from the
// client.
func (s *Service) GetSummary(ctx context.Context, sessionID string) (*Summary, error) {
	view, err := s.cart.GetCart(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart for checkout: %w", err)
	}
	return &Summary{
		Cart:    view,
		Pricing: s.priceCart(view),
	}, nil
}

// PlaceOrder freezes the session's cart into an order and clears the
// cart. Line items whose product no longer resolves are dropped rather
// than charged at zero.
func (s *Service) PlaceOrder(ctx context.Context, sessionID string, req *PlaceOrderRequest) (*order.Order, error) {
	view, err := s.cart.GetCart(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart for checkout: %w", err)
	}
	if len(view.Items) == 0 {
		return nil, fmt.Errorf("cart is empty")
	}

	var items []order.OrderItemInput
	for _, item := range view.Items {
		if item.Product == nil {
			continue
		}
		items = append(items, order.OrderItemInput{
			ProductID:     item.ProductID,
			Name:          item.Product.Name,
			Quantity:      item.Quantity,
			SelectedColor: item.SelectedColor,
			SelectedSize:  item.SelectedSize,
			PrintLocation: item.PrintLocation,
			UnitPrice:     item.UnitPrice,
			TotalPrice:    item.TotalPrice,
		})
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("cart has no purchasable items")
	}

	pricing := s.priceCart(view)
	placed, err := s.orders.CreateOrder(ctx, &order.CreateOrderRequest{
		CustomerEmail:   req.CustomerEmail,
		Items:           items,
		Subtotal:        pricing.Subtotal,
		Tax:             pricing.TaxAmount,
		Shipping:        pricing.ShippingAmount,
		TotalAmount:     pricing.TotalAmount,
		ShippingAddress: req.ShippingAddress,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to place order: %w", err)
	}

	// The order is already committed; a failed cart clear only leaves a
	// stale cart behind.
	if _, err := s.cart.Clear(ctx, sessionID); err != nil {
		logrus.WithError(err).WithField("order_number", placed.OrderNumber).
			Warn("Failed to clear cart after checkout")
	}

	return placed, nil
}

func (s *Service) priceCart(view *cart.View) Pricing {
	subtotal := view.Totals.Subtotal
	return Pricing{
		Subtotal:    subtotal,
		TotalAmount: subtotal,
	}
}
