// internal/pkg/pdf/service.go
package pdf

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"

	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/order"
)

// Service handles PDF invoice generation
type Service struct {
	config *config.Config
}

// NewService creates a new PDF service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
	}
}

// GenerateInvoice renders a PDF invoice for an order
func (s *Service) GenerateInvoice(o *order.Order) (*bytes.Buffer, error) {
	htmlContent, err := s.generateHTML(s.invoiceData(o))
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(htmlContent)))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(9)
	page.Zoom.Set(0.95)
	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

func (s *Service) invoiceData(o *order.Order) InvoiceData {
	lines := make([]InvoiceLine, 0, len(o.Items))
	for _, item := range o.Items {
		lines = append(lines, InvoiceLine{
			Name:        item.Name,
			Options:     fmt.Sprintf("%s / %s / %s", item.SelectedColor, item.SelectedSize, item.PrintLocation),
			Quantity:    item.Quantity,
			UnitDollars: float64(item.UnitPrice) / 100,
			Dollars:     float64(item.TotalPrice) / 100,
		})
	}
	return InvoiceData{
		InvoiceNumber:   fmt.Sprintf("INV-%s", o.OrderNumber),
		InvoiceDate:     time.Now().Format("January 2, 2006"),
		SiteName:        s.config.App.Name,
		Order:           o,
		Lines:           lines,
		SubtotalDollars: float64(o.SubtotalAmount) / 100,
		TaxDollars:      float64(o.TaxAmount) / 100,
		ShippingDollars: float64(o.ShippingAmount) / 100,
		TotalDollars:    float64(o.TotalAmount) / 100,
	}
}

func (s *Service) generateHTML(data InvoiceData) (string, error) {
	tmpl := template.Must(template.New("invoice").Parse(invoiceTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// InvoiceData represents the data passed to the invoice template
type InvoiceData struct {
	InvoiceNumber   string
	InvoiceDate     string
	SiteName        string
	Order           *order.Order
	Lines           []InvoiceLine
	SubtotalDollars float64
	TaxDollars      float64
	ShippingDollars float64
	TotalDollars    float64
}

// InvoiceLine is one rendered order line
type InvoiceLine struct {
	Name        string
	Options     string
	Quantity    int
	UnitDollars float64
	Dollars     float64
}

const invoiceTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Invoice {{.InvoiceNumber}}</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 0; padding: 20px; color: #333; }
        .header { margin-bottom: 30px; border-bottom: 2px solid #eee; padding-bottom: 20px; }
        .invoice-title { font-size: 28px; font-weight: bold; color: #2C2C2C; margin-bottom: 10px; }
        .meta td { padding: 4px 12px 4px 0; }
        .meta .label { font-weight: bold; }
        table.items { width: 100%; border-collapse: collapse; margin: 24px 0; }
        table.items th { text-align: left; border-bottom: 2px solid #333; padding: 8px 4px; }
        table.items td { border-bottom: 1px solid #ddd; padding: 8px 4px; }
        .totals { width: 260px; margin-left: auto; }
        .totals td { padding: 4px; }
        .totals .grand { font-weight: bold; border-top: 2px solid #333; }
        .address { margin-top: 24px; }
    </style>
</head>
<body>
    <div class="header">
        <div class="invoice-title">{{.SiteName}}</div>
        <table class="meta">
            <tr><td class="label">Invoice</td><td>{{.InvoiceNumber}}</td></tr>
            <tr><td class="label">Date</td><td>{{.InvoiceDate}}</td></tr>
            <tr><td class="label">Order</td><td>{{.Order.OrderNumber}}</td></tr>
            <tr><td class="label">Customer</td><td>{{.Order.CustomerEmail}}</td></tr>
        </table>
    </div>

    <table class="items">
        <tr><th>Item</th><th>Options</th><th>Qty</th><th>Unit</th><th>Total</th></tr>
        {{range .Lines}}
        <tr>
            <td>{{.Name}}</td>
            <td>{{.Options}}</td>
            <td>{{.Quantity}}</td>
            <td>${{printf "%.2f" .UnitDollars}}</td>
            <td>${{printf "%.2f" .Dollars}}</td>
        </tr>
        {{end}}
    </table>

    <table class="totals">
        <tr><td>Subtotal</td><td>${{printf "%.2f" .SubtotalDollars}}</td></tr>
        <tr><td>Tax</td><td>${{printf "%.2f" .TaxDollars}}</td></tr>
        <tr><td>Shipping</td><td>${{printf "%.2f" .ShippingDollars}}</td></tr>
        <tr class="grand"><td>Total</td><td>${{printf "%.2f" .TotalDollars}}</td></tr>
    </table>

    {{if .Order.ShippingAddress.AddressLine1}}
    <div class="address">
        <strong>Ship to</strong><br>
        {{.Order.ShippingAddress.FullName}}<br>
        {{.Order.ShippingAddress.AddressLine1}}<br>
        {{if .Order.ShippingAddress.AddressLine2}}{{.Order.ShippingAddress.AddressLine2}}<br>{{end}}
        {{.Order.ShippingAddress.City}}, {{.Order.ShippingAddress.State}} {{.Order.ShippingAddress.PostalCode}}<br>
        {{.Order.ShippingAddress.Country}}
    </div>
    {{end}}
</body>
</html>`
