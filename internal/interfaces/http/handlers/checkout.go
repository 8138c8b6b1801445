// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/checkout"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/pkg/email"
)

// CheckoutHandler handles checkout endpoints
type CheckoutHandler struct {
	checkoutService *checkout.Service
	emailService    *email.EmailService
	config          *config.Config
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *checkout.Service, emailService *email.EmailService, cfg *config.Config) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		emailService:    emailService,
		config:          cfg,
	}
}

// GetSummary handles GET /checkout/summary
func (h *CheckoutHandler) GetSummary(c *gin.Context) {
	sessionID := getOrCreateSessionID(c, h.config)

	summary, err := h.checkoutService.GetSummary(c.Request.Context(), sessionID)
	if err != nil {
		if errors.Is(err, cart.ErrUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Cart storage temporarily unavailable",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to build checkout summary",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout summary retrieved successfully",
		"data":    summary,
	})
}

// PlaceOrder handles POST /checkout
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	sessionID := getOrCreateSessionID(c, h.config)

	var req checkout.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	placed, err := h.checkoutService.PlaceOrder(c.Request.Context(), sessionID, &req)
	if err != nil {
		if errors.Is(err, cart.ErrUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Cart storage temporarily unavailable",
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	// The order is committed; a failed confirmation email never rolls
	// it back.
	if err := h.emailService.SendOrderEmails(c.Request.Context(), orderConfirmationData(h.config, placed)); err != nil {
		logrus.WithError(err).WithField("order_number", placed.OrderNumber).
			Warn("Order confirmation email failed")
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"data":    placed,
	})
}

// orderConfirmationData maps a placed order onto the email template
// data, converting cent amounts to dollars for display.
func orderConfirmationData(cfg *config.Config, o *order.Order) email.OrderConfirmationData {
	items := make([]email.OrderItemData, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, email.OrderItemData{
			Name:          item.Name,
			Quantity:      item.Quantity,
			SelectedColor: item.SelectedColor,
			SelectedSize:  item.SelectedSize,
			PrintLocation: item.PrintLocation,
			Total:         float64(item.TotalPrice) / 100,
		})
	}

	return email.OrderConfirmationData{
		SiteName:      cfg.App.Name,
		OrderNumber:   o.OrderNumber,
		CustomerName:  o.ShippingAddress.FullName,
		CustomerEmail: o.CustomerEmail,
		Items:         items,
		TotalAmount:   float64(o.TotalAmount) / 100,
	}
}
