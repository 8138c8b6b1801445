// internal/domain/payment/stripe_service.go
package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/order"
)

// StripeService handles Stripe payment processing
type StripeService struct {
	config   *config.Config
	orders   *order.Service
	currency string
}

// NewStripeService creates a new Stripe service
func NewStripeService(cfg *config.Config, orderService *order.Service) *StripeService {
	stripe.Key = cfg.External.Stripe.SecretKey

	currency := cfg.External.Stripe.Currency
	if currency == "" {
		currency = "usd"
	}

	return &StripeService{
		config:   cfg,
		orders:   orderService,
		currency: currency,
	}
}

// CustomerInfo identifies the payer on the payment intent metadata
type CustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// CreateIntentRequest represents a payment intent creation request
type CreateIntentRequest struct {
	Amount    int64        `json:"amount" binding:"required,min=1"` // In cents
	OrderType string       `json:"order_type"`
	OrderID   uint         `json:"order_id"`
	Customer  CustomerInfo `json:"customer_info"`
}

// IntentResponse carries what the storefront needs to confirm payment
type IntentResponse struct {
	ClientSecret    string `json:"client_secret"`
	PaymentIntentID string `json:"payment_intent_id"`
	PublishableKey  string `json:"publishable_key"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
}

// CreateIntent creates a Stripe PaymentIntent for the given amount. When
// an order id is supplied the amount is taken from the stored order so a
// tampered client cannot underpay.
func (s *StripeService) CreateIntent(ctx context.Context, req *CreateIntentRequest) (*IntentResponse, error) {
	amount := req.Amount
	orderType := req.OrderType
	if orderType == "" {
		orderType = "regular_order"
	}

	if req.OrderID != 0 {
		o, err := s.orders.GetOrder(ctx, req.OrderID)
		if err != nil {
			return nil, fmt.Errorf("failed to load order for payment: %w", err)
		}
		if o.PaymentStatus == order.PaymentStatusPaid {
			return nil, fmt.Errorf("order %s is already paid", o.OrderNumber)
		}
		amount = o.TotalAmount
	}
	if amount <= 0 {
		return nil, fmt.Errorf("payment amount must be positive")
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(s.currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata("order_type", orderType)
	params.AddMetadata("customer_name", req.Customer.Name)
	params.AddMetadata("customer_email", req.Customer.Email)
	params.AddMetadata("customer_phone", req.Customer.Phone)
	if req.OrderID != 0 {
		params.AddMetadata("order_id", fmt.Sprintf("%d", req.OrderID))
	}
	if req.Customer.Email != "" {
		params.ReceiptEmail = stripe.String(req.Customer.Email)
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return &IntentResponse{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
		PublishableKey:  s.config.External.Stripe.PublishableKey,
		Amount:          amount,
		Currency:        s.currency,
	}, nil
}

// ConfirmPayment verifies the intent succeeded at Stripe and marks the
// order paid. The intent status is read from Stripe, never from the
// client.
func (s *StripeService) ConfirmPayment(ctx context.Context, orderID uint, paymentIntentID string) (*order.Order, error) {
	if paymentIntentID == "" {
		return nil, fmt.Errorf("payment intent id is required")
	}

	params := &stripe.PaymentIntentParams{}
	params.Context = ctx
	intent, err := paymentintent.Get(paymentIntentID, params)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve payment intent: %w", err)
	}

	if intent.Status != stripe.PaymentIntentStatusSucceeded {
		return nil, fmt.Errorf("payment not completed: intent status is %s", intent.Status)
	}

	o, err := s.orders.MarkPaid(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("payment succeeded but order update failed: %w", err)
	}
	return o, nil
}
