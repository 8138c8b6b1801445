// internal/pkg/email/service_test.go
package email

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront-backend/internal/config"
)

func newCaptureService() (*EmailService, *[]*Email) {
	cfg := &config.Config{
		External: config.ExternalConfig{
			Email: config.EmailConfig{
				FromEmail:  "orders@example.com",
				FromName:   "Thorned Magnolia Collective",
				OwnerEmail: "owner@example.com",
			},
		},
	}
	svc := NewEmailService(cfg)
	var sent []*Email
	svc.send = func(e *Email) error {
		sent = append(sent, e)
		return nil
	}
	return svc, &sent
}

func TestSendOrderEmails(t *testing.T) {
	svc, sent := newCaptureService()

	err := svc.SendOrderEmails(context.Background(), OrderConfirmationData{
		OrderNumber:   "TMC1700000000",
		CustomerName:  "Jordan Reyes",
		CustomerEmail: "jordan@example.com",
		Items: []OrderItemData{
			{Name: "Classic Tee", Quantity: 2, SelectedColor: "Black", SelectedSize: "2XL", PrintLocation: "front", Total: 44.00},
		},
		TotalAmount: 44.00,
	})
	require.NoError(t, err)
	require.Len(t, *sent, 2)

	customer := (*sent)[0]
	assert.Equal(t, []string{"jordan@example.com"}, customer.To)
	assert.Equal(t, "Order Confirmation - TMC1700000000", customer.Subject)
	assert.Contains(t, customer.HTMLContent, "Classic Tee")
	assert.Contains(t, customer.HTMLContent, "$44.00")
	assert.Contains(t, customer.HTMLContent, "Thorned Magnolia Collective")

	owner := (*sent)[1]
	assert.Equal(t, []string{"owner@example.com"}, owner.To)
	assert.Equal(t, "New Order: TMC1700000000 - $44.00", owner.Subject)
	assert.Contains(t, owner.HTMLContent, "jordan@example.com")
}

func TestSendCustomOrderEmails(t *testing.T) {
	svc, sent := newCaptureService()

	err := svc.SendCustomOrderEmails(context.Background(), CustomOrderReceiptData{
		OrderNumber:   "TMC1700000001",
		CustomerName:  "Jordan Reyes",
		CustomerEmail: "jordan@example.com",
		ShirtStyle:    "sweatshirt",
		ShirtColor:    "Sage",
		Size:          "M",
		PrintLocation: "both",
		Quantity:      1,
		DesignText:    "hold fast",
		SelectedFont:  "Gothic",
		TotalPrice:    30.00,
	})
	require.NoError(t, err)
	require.Len(t, *sent, 2)

	assert.Contains(t, (*sent)[0].HTMLContent, "hold fast")
	assert.Contains(t, (*sent)[0].HTMLContent, "Gothic")
	assert.Contains(t, (*sent)[1].Subject, "$30.00")
}

func TestCustomerFailureIsReturned(t *testing.T) {
	svc, _ := newCaptureService()
	svc.send = func(e *Email) error { return errors.New("relay down") }

	err := svc.SendOrderEmails(context.Background(), OrderConfirmationData{
		OrderNumber:   "TMC1700000002",
		CustomerEmail: "jordan@example.com",
	})
	assert.Error(t, err)
}

func TestOwnerFailureDoesNotBlockReceipt(t *testing.T) {
	svc, _ := newCaptureService()
	calls := 0
	svc.send = func(e *Email) error {
		calls++
		if e.Type == EmailTypeOwnerNotification {
			return errors.New("relay down")
		}
		return nil
	}

	err := svc.SendOrderEmails(context.Background(), OrderConfirmationData{
		OrderNumber:   "TMC1700000003",
		CustomerEmail: "jordan@example.com",
	})
	assert.NoError(t, err)
	assert.Equal(t, 2, calls)
}
