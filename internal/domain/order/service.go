// internal/domain/order/service.go
package order

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/pricing"
)

// Service handles order business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new order service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// ErrNotFound is returned when an order does not exist.
var ErrNotFound = errors.New("order not found")

// Order numbers are TMC followed by a unix timestamp. The allocator
// bumps the timestamp forward when two orders land in the same second
// so the unique index never trips.
var (
	orderNumberMu sync.Mutex
	lastOrderUnix int64
)

func nextOrderNumber() string {
	orderNumberMu.Lock()
	defer orderNumberMu.Unlock()
	now := time.Now().UTC().Unix()
	if now <= lastOrderUnix {
		now = lastOrderUnix + 1
	}
	lastOrderUnix = now
	return fmt.Sprintf("TMC%d", now)
}

// OrderItemInput is one denormalized line for order placement
type OrderItemInput struct {
	ProductID     uint   `json:"product_id" binding:"required"`
	Name          string `json:"name" binding:"required"`
	Quantity      int    `json:"quantity" binding:"required,min=1"`
	SelectedColor string `json:"selected_color"`
	SelectedSize  string `json:"selected_size"`
	PrintLocation string `json:"print_location"`
	UnitPrice     int64  `json:"unit_price"`
	TotalPrice    int64  `json:"total_price"`
}

// CreateOrderRequest represents order creation data
type CreateOrderRequest struct {
	CustomerEmail   string           `json:"customer_email" binding:"required,email"`
	Items           []OrderItemInput `json:"items" binding:"required,min=1"`
	Subtotal        int64            `json:"subtotal"`
	Tax             int64            `json:"tax"`
	Shipping        int64            `json:"shipping"`
	TotalAmount     int64            `json:"total_amount"`
	ShippingAddress *Address         `json:"shipping_address,omitempty"`
}

// OrderListRequest represents order list query parameters
type OrderListRequest struct {
	Page   int         `form:"page,default=1"`
	Limit  int         `form:"limit,default=20"`
	Status OrderStatus `form:"status"`
	Email  string      `form:"email"`
}

// OrderResponse represents order list response with pagination
type OrderResponse struct {
	Orders     []Order    `json:"orders"`
	Pagination Pagination `json:"pagination"`
}

// Pagination represents pagination information
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// CreateOrder persists an order with its denormalized items
func (s *Service) CreateOrder(ctx context.Context, req *CreateOrderRequest) (*Order, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("order has no items")
	}

	o := Order{
		OrderNumber:    nextOrderNumber(),
		CustomerEmail:  req.CustomerEmail,
		Status:         OrderStatusPending,
		PaymentStatus:  PaymentStatusPending,
		SubtotalAmount: req.Subtotal,
		TaxAmount:      req.Tax,
		ShippingAmount: req.Shipping,
		TotalAmount:    req.TotalAmount,
		Currency:       "USD",
	}
	if req.ShippingAddress != nil {
		o.ShippingAddress = *req.ShippingAddress
	}
	for _, item := range req.Items {
		total := item.TotalPrice
		if total == 0 {
			total = item.UnitPrice * int64(item.Quantity)
		}
		o.Items = append(o.Items, OrderItem{
			ProductID:     item.ProductID,
			Name:          item.Name,
			Quantity:      item.Quantity,
			SelectedColor: item.SelectedColor,
			SelectedSize:  item.SelectedSize,
			PrintLocation: item.PrintLocation,
			UnitPrice:     item.UnitPrice,
			TotalPrice:    total,
		})
	}

	if err := s.db.WithContext(ctx).Create(&o).Error; err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return &o, nil
}

// GetOrders retrieves orders with filtering and pagination, newest first
func (s *Service) GetOrders(ctx context.Context, req *OrderListRequest) (*OrderResponse, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 {
		req.Limit = 20
	}

	query := s.db.WithContext(ctx).Model(&Order{}).Preload("Items")
	if req.Status != "" {
		query = query.Where("status = ?", req.Status)
	}
	if req.Email != "" {
		query = query.Where("customer_email = ?", req.Email)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	var orders []Order
	offset := (req.Page - 1) * req.Limit
	if err := query.Order("created_at DESC").Offset(offset).Limit(req.Limit).Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve orders: %w", err)
	}

	totalPages := int((total + int64(req.Limit) - 1) / int64(req.Limit))
	return &OrderResponse{
		Orders: orders,
		Pagination: Pagination{
			Page:       req.Page,
			Limit:      req.Limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    req.Page < totalPages,
			HasPrev:    req.Page > 1,
		},
	}, nil
}

// GetOrder retrieves a single order by ID
func (s *Service) GetOrder(ctx context.Context, id uint) (*Order, error) {
	var o Order
	err := s.db.WithContext(ctx).Preload("Items").First(&o, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve order: %w", err)
	}
	return &o, nil
}

// GetOrderByNumber retrieves a single order by its TMC number
func (s *Service) GetOrderByNumber(ctx context.Context, number string) (*Order, error) {
	var o Order
	err := s.db.WithContext(ctx).Preload("Items").Where("order_number = ?", number).First(&o).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve order: %w", err)
	}
	return &o, nil
}

// GetOrdersByEmail retrieves a customer's orders, newest first
func (s *Service) GetOrdersByEmail(ctx context.Context, email string) ([]Order, error) {
	var orders []Order
	err := s.db.WithContext(ctx).
		Preload("Items").
		Where("customer_email = ?", email).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve orders: %w", err)
	}
	return orders, nil
}

// UpdateOrderStatus updates order status with transition validation
func (s *Service) UpdateOrderStatus(ctx context.Context, id uint, status OrderStatus) (*Order, error) {
	o, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if !isValidStatusTransition(o.Status, status) {
		return nil, fmt.Errorf("invalid status transition from %s to %s", o.Status, status)
	}

	if err := s.db.WithContext(ctx).Model(&Order{}).Where("id = ?", id).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	o.Status = status
	return o, nil
}

// MarkPaid records a successful payment on the order and confirms it
func (s *Service) MarkPaid(ctx context.Context, id uint) (*Order, error) {
	o, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{
		"payment_status": PaymentStatusPaid,
		"status":         OrderStatusConfirmed,
	}
	if err := s.db.WithContext(ctx).Model(&Order{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to mark order paid: %w", err)
	}
	o.PaymentStatus = PaymentStatusPaid
	o.Status = OrderStatusConfirmed
	return o, nil
}

func isValidStatusTransition(from, to OrderStatus) bool {
	allowed := map[OrderStatus][]OrderStatus{
		OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
		OrderStatusConfirmed: {OrderStatusShipped, OrderStatusCancelled},
		OrderStatusShipped:   {OrderStatusDelivered},
	}
	for _, s := range allowed[from] {
		if s == to {
			return true
		}
	}
	return false
}

// CustomOrderCreateRequest represents a custom order submission
type CustomOrderCreateRequest struct {
	CustomerName        string `json:"customer_name" binding:"required"`
	Email               string `json:"email" binding:"required,email"`
	Phone               string `json:"phone"`
	DesignImage         string `json:"design_image"`
	DesignText          string `json:"design_text"`
	SelectedFont        string `json:"selected_font"`
	ShirtStyle          string `json:"shirt_style" binding:"required"`
	ShirtColor          string `json:"shirt_color" binding:"required"`
	Size                string `json:"size" binding:"required"`
	PrintLocation       string `json:"print_location"`
	Quantity            int    `json:"quantity"`
	SpecialInstructions string `json:"special_instructions"`
}

// CustomOrderUpdateRequest represents an admin status update
type CustomOrderUpdateRequest struct {
	Status              CustomOrderStatus `json:"status" binding:"required"`
	SpecialInstructions *string           `json:"special_instructions"`
}

// CreateCustomOrder prices and persists a custom design order. The
// total is computed server side from the garment, size, print location
// and quantity; client-supplied prices are never trusted.
func (s *Service) CreateCustomOrder(ctx context.Context, req *CustomOrderCreateRequest) (*CustomOrder, error) {
	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}
	location := req.PrintLocation
	if location == "" {
		location = "front"
	}

	total := pricing.Quote(
		pricing.Garment(req.ShirtStyle),
		req.Size,
		pricing.PrintLocation(location),
		quantity,
	)

	c := CustomOrder{
		OrderNumber:         nextOrderNumber(),
		CustomerName:        req.CustomerName,
		Email:               req.Email,
		Phone:               req.Phone,
		DesignImage:         req.DesignImage,
		DesignText:          req.DesignText,
		SelectedFont:        req.SelectedFont,
		ShirtStyle:          req.ShirtStyle,
		ShirtColor:          req.ShirtColor,
		Size:                req.Size,
		PrintLocation:       location,
		Quantity:            quantity,
		TotalPrice:          total,
		SpecialInstructions: req.SpecialInstructions,
		Status:              CustomOrderStatusPending,
	}

	if err := s.db.WithContext(ctx).Create(&c).Error; err != nil {
		return nil, fmt.Errorf("failed to create custom order: %w", err)
	}
	return &c, nil
}

// GetCustomOrders retrieves all custom orders, newest first
func (s *Service) GetCustomOrders(ctx context.Context) ([]CustomOrder, error) {
	var orders []CustomOrder
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve custom orders: %w", err)
	}
	return orders, nil
}

// GetCustomOrder retrieves a custom order by ID
func (s *Service) GetCustomOrder(ctx context.Context, id uint) (*CustomOrder, error) {
	var c CustomOrder
	err := s.db.WithContext(ctx).First(&c, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve custom order: %w", err)
	}
	return &c, nil
}

// UpdateCustomOrderStatus moves a custom order through its workflow
func (s *Service) UpdateCustomOrderStatus(ctx context.Context, id uint, req *CustomOrderUpdateRequest) (*CustomOrder, error) {
	if !ValidCustomOrderStatus(req.Status) {
		return nil, fmt.Errorf("invalid status: %s", req.Status)
	}

	c, err := s.GetCustomOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{"status": req.Status}
	if req.SpecialInstructions != nil {
		updates["special_instructions"] = *req.SpecialInstructions
	}
	if err := s.db.WithContext(ctx).Model(&CustomOrder{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update custom order: %w", err)
	}

	c.Status = req.Status
	if req.SpecialInstructions != nil {
		c.SpecialInstructions = *req.SpecialInstructions
	}
	return c, nil
}
