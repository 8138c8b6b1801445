// internal/pkg/email/types.go
package email

// EmailType represents the type of email being sent
type EmailType string

const (
	EmailTypeOrderConfirmation  EmailType = "order_confirmation"
	EmailTypeOwnerNotification  EmailType = "owner_notification"
	EmailTypeCustomOrderReceipt EmailType = "custom_order_receipt"
)

// Email represents an email message
type Email struct {
	To          []string  `json:"to"`
	Subject     string    `json:"subject"`
	HTMLContent string    `json:"html_content"`
	FromName    string    `json:"from_name,omitempty"`
	Type        EmailType `json:"type"`
}

// OrderItemData is one line in an order confirmation email
type OrderItemData struct {
	Name          string
	Quantity      int
	SelectedColor string
	SelectedSize  string
	PrintLocation string
	Total         float64
}

// OrderConfirmationData contains data for order confirmation emails
type OrderConfirmationData struct {
	SiteName      string
	OrderNumber   string
	CustomerName  string
	CustomerEmail string
	Items         []OrderItemData
	TotalAmount   float64
}

// CustomOrderReceiptData contains data for custom order emails
type CustomOrderReceiptData struct {
	SiteName            string
	OrderNumber         string
	CustomerName        string
	CustomerEmail       string
	CustomerPhone       string
	ShirtStyle          string
	ShirtColor          string
	Size                string
	PrintLocation       string
	Quantity            int
	DesignText          string
	SelectedFont        string
	SpecialInstructions string
	TotalPrice          float64
}
