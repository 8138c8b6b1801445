// internal/domain/catalog/category_service.go
package catalog

import (
	"context"
	"fmt"

	"github.com/your-org/storefront-backend/internal/config"
	"gorm.io/gorm"
)

// CategoryService handles category business logic
type CategoryService struct {
	db     *gorm.DB
	config *config.Config
}

// NewCategoryService creates a new category service
func NewCategoryService(db *gorm.DB, cfg *config.Config) *CategoryService {
	return &CategoryService{
		db:     db,
		config: cfg,
	}
}

// CategoryCreateRequest represents category creation data
type CategoryCreateRequest struct {
	ID           string `json:"id" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
}

// CategoryWithProductCount represents a category with its product count
type CategoryWithProductCount struct {
	Category
	ProductCount int64 `json:"product_count"`
}

// GetCategories retrieves all categories in display order
func (s *CategoryService) GetCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := s.db.WithContext(ctx).
		Order("display_order ASC, name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve categories: %w", err)
	}
	return categories, nil
}

// GetCategory retrieves a single category by its slug-style id
func (s *CategoryService) GetCategory(ctx context.Context, id string) (*Category, error) {
	var category Category
	result := s.db.WithContext(ctx).Where("id = ?", id).First(&category)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("category not found")
		}
		return nil, fmt.Errorf("failed to retrieve category: %w", result.Error)
	}
	return &category, nil
}

// GetCategoriesWithProductCount retrieves categories with their product counts
func (s *CategoryService) GetCategoriesWithProductCount(ctx context.Context) ([]CategoryWithProductCount, error) {
	categories, err := s.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]CategoryWithProductCount, len(categories))
	for i, cat := range categories {
		var count int64
		if err := s.db.WithContext(ctx).Model(&Product{}).Where("category_id = ?", cat.ID).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to count products for category %s: %w", cat.ID, err)
		}
		result[i] = CategoryWithProductCount{Category: cat, ProductCount: count}
	}
	return result, nil
}

// CreateCategory creates a new category
func (s *CategoryService) CreateCategory(ctx context.Context, req *CategoryCreateRequest) (*Category, error) {
	var existing Category
	if result := s.db.WithContext(ctx).Where("id = ?", req.ID).First(&existing); result.Error == nil {
		return nil, fmt.Errorf("category %s already exists", req.ID)
	}

	category := Category{
		ID:           req.ID,
		Name:         req.Name,
		Description:  req.Description,
		DisplayOrder: req.DisplayOrder,
	}

	if err := s.db.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &category, nil
}
