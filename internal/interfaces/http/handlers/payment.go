// internal/interfaces/http/handlers/payment.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/payment"
)

// PaymentHandler handles Stripe payment endpoints
type PaymentHandler struct {
	paymentService *payment.StripeService
	config         *config.Config
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *payment.StripeService, cfg *config.Config) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		config:         cfg,
	}
}

// CreateIntent handles POST /payment/create-intent
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req payment.CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	intent, err := h.paymentService.CreateIntent(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to create payment intent",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Payment intent created successfully",
		"data":    intent,
	})
}

// ConfirmRequest represents a payment confirmation request
type ConfirmRequest struct {
	OrderID         uint   `json:"order_id" binding:"required"`
	PaymentIntentID string `json:"payment_intent_id" binding:"required"`
}

// Confirm handles POST /payment/confirm. The intent status is read
// back from Stripe; the client's word is never enough to mark an order
// paid.
func (h *PaymentHandler) Confirm(c *gin.Context) {
	var req ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	o, err := h.paymentService.ConfirmPayment(c.Request.Context(), req.OrderID, req.PaymentIntentID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Payment confirmed successfully",
		"data":    o,
	})
}
