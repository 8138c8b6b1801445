// internal/domain/catalog/entity.go
package catalog

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Product represents a printable garment design for sale
type Product struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Name       string         `gorm:"not null;size:255" json:"name"`
	CategoryID string         `gorm:"not null;index;size:100" json:"category_id"`
	Price      int64          `gorm:"not null" json:"price"` // Base price in cents
	Garment    string         `gorm:"not null;size:50;default:'tshirt'" json:"garment"`
	ImageURL   string         `gorm:"size:500" json:"image_url"`
	Colors     string         `gorm:"size:1000" json:"-"` // Comma-separated color names
	Sizes      string         `gorm:"size:500" json:"-"`  // Comma-separated size ids
	InStock    bool           `gorm:"default:true" json:"in_stock"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Category Category `gorm:"foreignKey:CategoryID;references:ID" json:"category,omitempty"`
}

// Category represents a storefront browsing category
type Category struct {
	ID           string         `gorm:"primaryKey;size:100" json:"id"`
	Name         string         `gorm:"not null;size:255" json:"name"`
	Description  string         `gorm:"size:500" json:"description"`
	DisplayOrder int            `gorm:"default:0" json:"display_order"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName overrides
func (Product) TableName() string  { return "products" }
func (Category) TableName() string { return "categories" }

// ColorList splits the stored color set into a slice.
func (p *Product) ColorList() []string {
	return splitList(p.Colors)
}

// SizeList splits the stored size set into a slice.
func (p *Product) SizeList() []string {
	return splitList(p.Sizes)
}

// HasColor reports whether the product is offered in the given color.
func (p *Product) HasColor(color string) bool {
	for _, c := range p.ColorList() {
		if strings.EqualFold(c, color) {
			return true
		}
	}
	return false
}

// HasSize reports whether the product is offered in the given size.
func (p *Product) HasSize(size string) bool {
	for _, s := range p.SizeList() {
		if strings.EqualFold(s, size) {
			return true
		}
	}
	return false
}

// GetFormattedPrice returns the base price in dollars for display.
func (p *Product) GetFormattedPrice() float64 {
	return float64(p.Price) / 100
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// JoinList is the inverse of ColorList/SizeList, used when building a
// product from request data.
func JoinList(values []string) string {
	return strings.Join(values, ",")
}
