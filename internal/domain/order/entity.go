// internal/domain/order/entity.go
package order

import (
	"time"

	"gorm.io/gorm"
)

// OrderStatus represents the status of a placed order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// CustomOrderStatus represents the workflow state of a custom design order
type CustomOrderStatus string

const (
	CustomOrderStatusPending    CustomOrderStatus = "pending"
	CustomOrderStatusConfirmed  CustomOrderStatus = "confirmed"
	CustomOrderStatusInProgress CustomOrderStatus = "in-progress"
	CustomOrderStatusCompleted  CustomOrderStatus = "completed"
	CustomOrderStatusCancelled  CustomOrderStatus = "cancelled"
)

// PaymentStatus represents payment status on an order
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// Order represents an order placed from a cart
type Order struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	OrderNumber   string        `gorm:"uniqueIndex;not null;size:50" json:"order_number"`
	CustomerEmail string        `gorm:"not null;index;size:255" json:"customer_email"`
	Status        OrderStatus   `gorm:"not null;default:'pending'" json:"status"`
	PaymentStatus PaymentStatus `gorm:"not null;default:'pending'" json:"payment_status"`

	// Amounts in cents
	SubtotalAmount int64 `gorm:"not null" json:"subtotal_amount"`
	TaxAmount      int64 `gorm:"default:0" json:"tax_amount"`
	ShippingAmount int64 `gorm:"default:0" json:"shipping_amount"`
	TotalAmount    int64 `gorm:"not null" json:"total_amount"`

	Currency string `gorm:"size:3;default:'USD'" json:"currency"`

	ShippingAddress Address `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping_address"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}

// OrderItem is a line item denormalized at placement time. Name and
// prices are frozen copies; later catalog edits do not rewrite placed
// orders.
type OrderItem struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	OrderID       uint      `gorm:"not null;index" json:"order_id"`
	ProductID     uint      `gorm:"not null;index" json:"product_id"`
	Name          string    `gorm:"not null;size:255" json:"name"`
	Quantity      int       `gorm:"not null" json:"quantity"`
	SelectedColor string    `gorm:"size:100" json:"selected_color"`
	SelectedSize  string    `gorm:"size:20" json:"selected_size"`
	PrintLocation string    `gorm:"size:20" json:"print_location"`
	UnitPrice     int64     `gorm:"not null" json:"unit_price"`
	TotalPrice    int64     `gorm:"not null" json:"total_price"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CustomOrder represents a custom design request priced by the
// garment/size/print tables rather than a catalog product.
type CustomOrder struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	OrderNumber  string `gorm:"uniqueIndex;not null;size:50" json:"order_number"`
	CustomerName string `gorm:"not null;size:255" json:"customer_name"`
	Email        string `gorm:"not null;index;size:255" json:"email"`
	Phone        string `gorm:"size:50" json:"phone"`

	DesignImage  string `gorm:"size:500" json:"design_image"`
	DesignText   string `gorm:"size:1000" json:"design_text"`
	SelectedFont string `gorm:"size:100" json:"selected_font"`

	ShirtStyle    string `gorm:"not null;size:50" json:"shirt_style"`
	ShirtColor    string `gorm:"not null;size:100" json:"shirt_color"`
	Size          string `gorm:"not null;size:20" json:"size"`
	PrintLocation string `gorm:"not null;size:20;default:'front'" json:"print_location"`
	Quantity      int    `gorm:"not null;default:1" json:"quantity"`

	TotalPrice          int64             `gorm:"not null" json:"total_price"` // In cents
	SpecialInstructions string            `gorm:"type:text" json:"special_instructions"`
	Status              CustomOrderStatus `gorm:"not null;default:'pending'" json:"status"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Address represents a shipping address (embedded in Order)
type Address struct {
	FullName     string `gorm:"size:255" json:"full_name"`
	AddressLine1 string `gorm:"size:255" json:"address_line1"`
	AddressLine2 string `gorm:"size:255" json:"address_line2"`
	City         string `gorm:"size:100" json:"city"`
	State        string `gorm:"size:100" json:"state"`
	PostalCode   string `gorm:"size:20" json:"postal_code"`
	Country      string `gorm:"size:2;default:'US'" json:"country"`
}

// TableName overrides
func (Order) TableName() string       { return "orders" }
func (OrderItem) TableName() string   { return "order_items" }
func (CustomOrder) TableName() string { return "custom_orders" }

// GetFormattedTotal returns total amount in dollars
func (o *Order) GetFormattedTotal() float64 {
	return float64(o.TotalAmount) / 100
}

// CanBeCancelled checks if the order can still be cancelled
func (o *Order) CanBeCancelled() bool {
	return o.Status == OrderStatusPending || o.Status == OrderStatusConfirmed
}

// IsOpen reports whether the custom order is still being worked
func (c *CustomOrder) IsOpen() bool {
	return c.Status != CustomOrderStatusCompleted && c.Status != CustomOrderStatusCancelled
}

// GetFormattedTotal returns total price in dollars
func (c *CustomOrder) GetFormattedTotal() float64 {
	return float64(c.TotalPrice) / 100
}

// ValidCustomOrderStatus reports whether s is a known workflow state
func ValidCustomOrderStatus(s CustomOrderStatus) bool {
	switch s {
	case CustomOrderStatusPending, CustomOrderStatusConfirmed,
		CustomOrderStatusInProgress, CustomOrderStatusCompleted,
		CustomOrderStatusCancelled:
		return true
	}
	return false
}
