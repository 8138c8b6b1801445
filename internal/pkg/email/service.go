// internal/pkg/email/service.go
package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/sirupsen/logrus"

	"github.com/your-org/storefront-backend/internal/config"
)

// EmailService sends storefront notification emails. Every order
// produces two messages: a receipt to the customer and an alert to the
// shop owner.
type EmailService struct {
	config    *config.Config
	templates map[string]*template.Template

	// send delivers one message; tests substitute a capture function.
	send func(*Email) error
}

// NewEmailService creates a new email service
func NewEmailService(cfg *config.Config) *EmailService {
	service := &EmailService{
		config:    cfg,
		templates: make(map[string]*template.Template),
	}
	service.send = service.sendSMTP
	service.loadTemplates()
	return service
}

// SendOrderEmails sends the order confirmation to the customer and the
// new-order alert to the shop owner. A failed owner alert does not
// block the customer receipt.
func (s *EmailService) SendOrderEmails(ctx context.Context, data OrderConfirmationData) error {
	if data.SiteName == "" {
		data.SiteName = s.config.External.Email.FromName
	}

	customerHTML, err := s.renderTemplate("order_confirmation", data)
	if err != nil {
		return fmt.Errorf("failed to render order confirmation: %w", err)
	}
	customer := &Email{
		To:          []string{data.CustomerEmail},
		Subject:     fmt.Sprintf("Order Confirmation - %s", data.OrderNumber),
		HTMLContent: customerHTML,
		Type:        EmailTypeOrderConfirmation,
	}
	if err := s.send(customer); err != nil {
		return fmt.Errorf("failed to send order confirmation: %w", err)
	}

	ownerHTML, err := s.renderTemplate("owner_notification", data)
	if err != nil {
		return fmt.Errorf("failed to render owner notification: %w", err)
	}
	owner := &Email{
		To:          []string{s.config.External.Email.OwnerEmail},
		Subject:     fmt.Sprintf("New Order: %s - $%.2f", data.OrderNumber, data.TotalAmount),
		HTMLContent: ownerHTML,
		FromName:    "Order System",
		Type:        EmailTypeOwnerNotification,
	}
	if err := s.send(owner); err != nil {
		logrus.WithError(err).WithField("order_number", data.OrderNumber).
			Warn("Failed to send owner notification")
	}

	return nil
}

// SendCustomOrderEmails sends the custom order receipt to the customer
// and the alert to the shop owner.
func (s *EmailService) SendCustomOrderEmails(ctx context.Context, data CustomOrderReceiptData) error {
	if data.SiteName == "" {
		data.SiteName = s.config.External.Email.FromName
	}

	customerHTML, err := s.renderTemplate("custom_order_receipt", data)
	if err != nil {
		return fmt.Errorf("failed to render custom order receipt: %w", err)
	}
	customer := &Email{
		To:          []string{data.CustomerEmail},
		Subject:     fmt.Sprintf("Custom Order Received - %s", data.OrderNumber),
		HTMLContent: customerHTML,
		Type:        EmailTypeCustomOrderReceipt,
	}
	if err := s.send(customer); err != nil {
		return fmt.Errorf("failed to send custom order receipt: %w", err)
	}

	ownerHTML, err := s.renderTemplate("custom_order_owner", data)
	if err != nil {
		return fmt.Errorf("failed to render custom order alert: %w", err)
	}
	owner := &Email{
		To:          []string{s.config.External.Email.OwnerEmail},
		Subject:     fmt.Sprintf("New Custom Order: %s - $%.2f", data.OrderNumber, data.TotalPrice),
		HTMLContent: ownerHTML,
		FromName:    "Order System",
		Type:        EmailTypeOwnerNotification,
	}
	if err := s.send(owner); err != nil {
		logrus.WithError(err).WithField("order_number", data.OrderNumber).
			Warn("Failed to send owner notification")
	}

	return nil
}

func (s *EmailService) renderTemplate(name string, data interface{}) (string, error) {
	tmpl, ok := s.templates[name]
	if !ok {
		return "", fmt.Errorf("unknown email template: %s", name)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (s *EmailService) loadTemplates() {
	for name, body := range emailTemplates {
		tmpl, err := template.New(name).Parse(body)
		if err != nil {
			logrus.WithError(err).WithField("template", name).Error("Failed to parse email template")
			continue
		}
		s.templates[name] = tmpl
	}
}

var emailTemplates = map[string]string{
	"order_confirmation": `<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #2C2C2C;">
  <h2>{{.SiteName}}</h2>
  <p>Thank you for your order{{if .CustomerName}}, {{.CustomerName}}{{end}}!</p>
  <p>Your order <strong>{{.OrderNumber}}</strong> has been received.</p>
  <table cellpadding="6" style="border-collapse: collapse;">
    {{range .Items}}
    <tr>
      <td>{{.Name}}</td>
      <td>{{.SelectedColor}} / {{.SelectedSize}} / {{.PrintLocation}}</td>
      <td>x{{.Quantity}}</td>
      <td>${{printf "%.2f" .Total}}</td>
    </tr>
    {{end}}
  </table>
  <p><strong>Total: ${{printf "%.2f" .TotalAmount}}</strong></p>
  <p>We will email you again when your order ships.</p>
</body>
</html>`,

	"owner_notification": `<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <h2>New Order: {{.OrderNumber}}</h2>
  <p>Customer: {{.CustomerName}} ({{.CustomerEmail}})</p>
  <table cellpadding="6" style="border-collapse: collapse;">
    {{range .Items}}
    <tr>
      <td>{{.Name}}</td>
      <td>{{.SelectedColor}} / {{.SelectedSize}} / {{.PrintLocation}}</td>
      <td>x{{.Quantity}}</td>
      <td>${{printf "%.2f" .Total}}</td>
    </tr>
    {{end}}
  </table>
  <p><strong>Total: ${{printf "%.2f" .TotalAmount}}</strong></p>
</body>
</html>`,

	"custom_order_receipt": `<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #2C2C2C;">
  <h2>{{.SiteName}}</h2>
  <p>Thank you{{if .CustomerName}}, {{.CustomerName}}{{end}}! Your custom order <strong>{{.OrderNumber}}</strong> is in.</p>
  <ul>
    <li>Style: {{.ShirtStyle}}</li>
    <li>Color: {{.ShirtColor}}</li>
    <li>Size: {{.Size}}</li>
    <li>Print location: {{.PrintLocation}}</li>
    <li>Quantity: {{.Quantity}}</li>
    {{if .DesignText}}<li>Design text: {{.DesignText}}{{if .SelectedFont}} ({{.SelectedFont}}){{end}}</li>{{end}}
  </ul>
  <p><strong>Total: ${{printf "%.2f" .TotalPrice}}</strong></p>
  <p>We will confirm your design details before printing.</p>
</body>
</html>`,

	"custom_order_owner": `<html>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <h2>New Custom Order: {{.OrderNumber}}</h2>
  <p>Customer: {{.CustomerName}} ({{.CustomerEmail}}{{if .CustomerPhone}}, {{.CustomerPhone}}{{end}})</p>
  <ul>
    <li>Style: {{.ShirtStyle}} / {{.ShirtColor}} / {{.Size}}</li>
    <li>Print location: {{.PrintLocation}}</li>
    <li>Quantity: {{.Quantity}}</li>
    {{if .DesignText}}<li>Design text: {{.DesignText}}{{if .SelectedFont}} ({{.SelectedFont}}){{end}}</li>{{end}}
    {{if .SpecialInstructions}}<li>Instructions: {{.SpecialInstructions}}</li>{{end}}
  </ul>
  <p><strong>Total: ${{printf "%.2f" .TotalPrice}}</strong></p>
</body>
</html>`,
}
