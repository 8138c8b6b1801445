// internal/interfaces/http/handlers/custom_order.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/pkg/email"
)

// CustomOrderHandler handles custom design order endpoints
type CustomOrderHandler struct {
	orderService *order.Service
	emailService *email.EmailService
	config       *config.Config
}

// NewCustomOrderHandler creates a new custom order handler
func NewCustomOrderHandler(orderService *order.Service, emailService *email.EmailService, cfg *config.Config) *CustomOrderHandler {
	return &CustomOrderHandler{
		orderService: orderService,
		emailService: emailService,
		config:       cfg,
	}
}

// Create handles POST /custom-orders. The total is priced server side
// from the garment, size, print location and quantity.
func (h *CustomOrderHandler) Create(c *gin.Context) {
	var req order.CustomOrderCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	created, err := h.orderService.CreateCustomOrder(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	if err := h.emailService.SendCustomOrderEmails(c.Request.Context(), customOrderReceiptData(h.config, created)); err != nil {
		logrus.WithError(err).WithField("order_number", created.OrderNumber).
			Warn("Custom order receipt email failed")
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Custom order submitted successfully",
		"data":    created,
	})
}

// List handles GET /admin/custom-orders
func (h *CustomOrderHandler) List(c *gin.Context) {
	customOrders, err := h.orderService.GetCustomOrders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve custom orders",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Custom orders retrieved successfully",
		"data":    customOrders,
	})
}

// Get handles GET /admin/custom-orders/:id
func (h *CustomOrderHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid custom order ID",
		})
		return
	}

	customOrder, err := h.orderService.GetCustomOrder(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Custom order not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve custom order",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Custom order retrieved successfully",
		"data":    customOrder,
	})
}

// UpdateStatus handles PUT /admin/custom-orders/:id/status
func (h *CustomOrderHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid custom order ID",
		})
		return
	}

	var req order.CustomOrderUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	customOrder, err := h.orderService.UpdateCustomOrderStatus(c.Request.Context(), uint(id), &req)
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Custom order not found",
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Custom order status updated successfully",
		"data":    customOrder,
	})
}

// customOrderReceiptData maps a custom order onto the email template
// data, converting the cent total to dollars for display.
func customOrderReceiptData(cfg *config.Config, o *order.CustomOrder) email.CustomOrderReceiptData {
	return email.CustomOrderReceiptData{
		SiteName:            cfg.App.Name,
		OrderNumber:         o.OrderNumber,
		CustomerName:        o.CustomerName,
		CustomerEmail:       o.Email,
		CustomerPhone:       o.Phone,
		ShirtStyle:          o.ShirtStyle,
		ShirtColor:          o.ShirtColor,
		Size:                o.Size,
		PrintLocation:       o.PrintLocation,
		Quantity:            o.Quantity,
		DesignText:          o.DesignText,
		SelectedFont:        o.SelectedFont,
		SpecialInstructions: o.SpecialInstructions,
		TotalPrice:          float64(o.TotalPrice) / 100,
	}
}
