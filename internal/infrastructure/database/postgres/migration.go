// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/order"
)

// Migration handles database migrations and seeding
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{
		db: db,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	logrus.Info("Running database auto-migrations")

	models := []interface{}{
		&catalog.Category{},
		&catalog.Product{},
		&order.Order{},
		&order.OrderItem{},
		&order.CustomOrder{},
	}

	for _, model := range models {
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	logrus.Info("Database auto-migrations completed")
	return nil
}

// SeedData fills an empty catalog with the default categories and
// sample garments. An already-seeded database is left untouched.
func (m *Migration) SeedData() error {
	var categoryCount int64
	if err := m.db.Model(&catalog.Category{}).Count(&categoryCount).Error; err != nil {
		return fmt.Errorf("failed to count categories: %w", err)
	}

	if categoryCount == 0 {
		if err := m.db.Create(defaultCategories()).Error; err != nil {
			return fmt.Errorf("failed to seed categories: %w", err)
		}
		logrus.WithField("count", len(defaultCategories())).Info("Seeded categories")
	}

	var productCount int64
	if err := m.db.Model(&catalog.Product{}).Count(&productCount).Error; err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}

	if productCount == 0 {
		if err := m.db.Create(sampleProducts()).Error; err != nil {
			return fmt.Errorf("failed to seed products: %w", err)
		}
		logrus.WithField("count", len(sampleProducts())).Info("Seeded products")
	}

	return nil
}

func defaultCategories() []catalog.Category {
	return []catalog.Category{
		{ID: "teachers", Name: "Teachers", Description: "Inspiring designs for educators", DisplayOrder: 1},
		{ID: "mamas", Name: "Mamas", Description: "Celebrating motherhood", DisplayOrder: 2},
		{ID: "seasons", Name: "Seasons", Description: "Seasonal favorites", DisplayOrder: 3},
		{ID: "quotes", Name: "Quotes", Description: "Motivational sayings", DisplayOrder: 4},
		{ID: "graphic", Name: "Graphic", Description: "Bold graphic designs", DisplayOrder: 5},
		{ID: "dads", Name: "Dads", Description: "Dedicated to fathers", DisplayOrder: 6},
		{ID: "embroidery", Name: "Embroidery", Description: "Elegant embroidered pieces", DisplayOrder: 7},
		{ID: "seniors", Name: "Seniors", Description: "Class of 2025 and beyond", DisplayOrder: 8},
		{ID: "holidays", Name: "Holidays", Description: "Festive holiday themes", DisplayOrder: 9},
		{ID: "gamer", Name: "Gamer", Description: "Gaming enthusiasts", DisplayOrder: 10},
		{ID: "worship", Name: "Worship", Description: "Faith-based designs", DisplayOrder: 11},
		{ID: "gameday", Name: "Gameday", Description: "Sports and team spirit", DisplayOrder: 12},
	}
}

func sampleProducts() []catalog.Product {
	return []catalog.Product{
		{
			Name:       "World's Best Teacher",
			CategoryID: "teachers",
			Price:      2000,
			Garment:    "tshirt",
			Colors:     catalog.JoinList([]string{"Black", "Grey", "White", "Beige", "Blue", "Red"}),
			Sizes:      catalog.JoinList([]string{"S", "M", "L", "XL", "2XL", "3XL", "4XL"}),
			InStock:    true,
		},
		{
			Name:       "Mama Bear",
			CategoryID: "mamas",
			Price:      2000,
			Garment:    "tshirt",
			Colors:     catalog.JoinList([]string{"Rose Gold", "White", "Mauve", "Black"}),
			Sizes:      catalog.JoinList([]string{"S", "M", "L", "XL", "2XL", "3XL"}),
			InStock:    true,
		},
		{
			Name:       "Fall Vibes",
			CategoryID: "seasons",
			Price:      2000,
			Garment:    "tshirt",
			Colors:     catalog.JoinList([]string{"Burnt Orange", "Burgundy", "Mustard", "Brown"}),
			Sizes:      catalog.JoinList([]string{"S", "M", "L", "XL", "2XL", "3XL"}),
			InStock:    true,
		},
		{
			Name:       "Be Kind",
			CategoryID: "quotes",
			Price:      2000,
			Garment:    "tshirt",
			Colors:     catalog.JoinList([]string{"Sage", "Pink", "White", "Light Blue"}),
			Sizes:      catalog.JoinList([]string{"S", "M", "L", "XL", "2XL", "3XL"}),
			InStock:    true,
		},
		{
			Name:       "Retro Sunset",
			CategoryID: "graphic",
			Price:      2000,
			Garment:    "tshirt",
			Colors:     catalog.JoinList([]string{"Black", "Navy", "White", "Coral"}),
			Sizes:      catalog.JoinList([]string{"S", "M", "L", "XL", "2XL", "3XL"}),
			InStock:    true,
		},
		{
			Name:       "Dad Joke Loading",
			CategoryID: "dads",
			Price:      2000,
			Garment:    "tshirt",
			Colors:     catalog.JoinList([]string{"Black", "Gray", "Navy", "White"}),
			Sizes:      catalog.JoinList([]string{"S", "M", "L", "XL", "2XL", "3XL"}),
			InStock:    true,
		},
		{
			Name:       "Cozy Fall Sweatshirt",
			CategoryID: "seasons",
			Price:      2500,
			Garment:    "sweatshirt",
			Colors:     catalog.JoinList([]string{"Heather Gray", "Burgundy", "Navy", "Black"}),
			Sizes:      catalog.JoinList([]string{"S", "M", "L", "XL", "2XL", "3XL"}),
			InStock:    true,
		},
		{
			Name:       "Mama Life Sweatshirt",
			CategoryID: "mamas",
			Price:      2500,
			Garment:    "sweatshirt",
			Colors:     catalog.JoinList([]string{"Sage", "Pink", "Gray", "White"}),
			Sizes:      catalog.JoinList([]string{"S", "M", "L", "XL", "2XL", "3XL"}),
			InStock:    true,
		},
	}
}
