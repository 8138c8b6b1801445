// internal/domain/catalog/service.go
package catalog

import (
	"context"
	"fmt"

	"github.com/your-org/storefront-backend/internal/config"
	"gorm.io/gorm"
)

// Service handles catalog business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new catalog service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// ProductView is the product representation served to the storefront,
// with the color and size sets expanded.
type ProductView struct {
	Product
	ColorOptions []string `json:"colors"`
	SizeOptions  []string `json:"sizes"`
}

// ProductCreateRequest represents product creation data
type ProductCreateRequest struct {
	Name       string   `json:"name" binding:"required"`
	CategoryID string   `json:"category_id" binding:"required"`
	Price      int64    `json:"price" binding:"required,min=1"`
	Garment    string   `json:"garment"`
	ImageURL   string   `json:"image_url"`
	Colors     []string `json:"colors"`
	Sizes      []string `json:"sizes"`
}

// ProductUpdateRequest represents product update data
type ProductUpdateRequest struct {
	Name       *string   `json:"name"`
	CategoryID *string   `json:"category_id"`
	Price      *int64    `json:"price"`
	Garment    *string   `json:"garment"`
	ImageURL   *string   `json:"image_url"`
	Colors     *[]string `json:"colors"`
	Sizes      *[]string `json:"sizes"`
	InStock    *bool     `json:"in_stock"`
}

// GetProducts retrieves all products, newest first
func (s *Service) GetProducts(ctx context.Context) ([]ProductView, error) {
	var products []Product
	err := s.db.WithContext(ctx).
		Preload("Category").
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}
	return toViews(products), nil
}

// GetProductsByCategory retrieves products within one category
func (s *Service) GetProductsByCategory(ctx context.Context, categoryID string) ([]ProductView, error) {
	var products []Product
	err := s.db.WithContext(ctx).
		Preload("Category").
		Where("category_id = ?", categoryID).
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve products for category %s: %w", categoryID, err)
	}
	return toViews(products), nil
}

// GetProduct retrieves a single product by ID
func (s *Service) GetProduct(ctx context.Context, id uint) (*ProductView, error) {
	var product Product
	result := s.db.WithContext(ctx).
		Preload("Category").
		Where("id = ?", id).
		First(&product)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("product not found")
		}
		return nil, fmt.Errorf("failed to retrieve product: %w", result.Error)
	}

	view := toView(product)
	return &view, nil
}

// ProductByID resolves a product reference for other services. Absent
// products return (nil, nil) so callers can tolerate stale references.
func (s *Service) ProductByID(ctx context.Context, id uint) (*Product, error) {
	var product Product
	result := s.db.WithContext(ctx).Where("id = ?", id).First(&product)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to resolve product %d: %w", id, result.Error)
	}
	return &product, nil
}

// CreateProduct creates a new product
func (s *Service) CreateProduct(ctx context.Context, req *ProductCreateRequest) (*ProductView, error) {
	var category Category
	if result := s.db.WithContext(ctx).Where("id = ?", req.CategoryID).First(&category); result.Error != nil {
		return nil, fmt.Errorf("category %s not found", req.CategoryID)
	}

	garment := req.Garment
	if garment == "" {
		garment = "tshirt"
	}

	product := Product{
		Name:       req.Name,
		CategoryID: req.CategoryID,
		Price:      req.Price,
		Garment:    garment,
		ImageURL:   req.ImageURL,
		Colors:     JoinList(req.Colors),
		Sizes:      JoinList(req.Sizes),
		InStock:    true,
	}

	if err := s.db.WithContext(ctx).Create(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return s.GetProduct(ctx, product.ID)
}

// UpdateProduct applies a partial update to a product
func (s *Service) UpdateProduct(ctx context.Context, id uint, req *ProductUpdateRequest) (*ProductView, error) {
	var product Product
	if result := s.db.WithContext(ctx).Where("id = ?", id).First(&product); result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("product not found")
		}
		return nil, fmt.Errorf("failed to retrieve product: %w", result.Error)
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Garment != nil {
		updates["garment"] = *req.Garment
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.Colors != nil {
		updates["colors"] = JoinList(*req.Colors)
	}
	if req.Sizes != nil {
		updates["sizes"] = JoinList(*req.Sizes)
	}
	if req.InStock != nil {
		updates["in_stock"] = *req.InStock
	}

	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&product).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update product: %w", err)
		}
	}

	return s.GetProduct(ctx, id)
}

// DeleteProduct soft-deletes a product. Carts referencing it keep their
// line items; totals simply stop counting the missing product.
func (s *Service) DeleteProduct(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&Product{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("product not found")
	}
	return nil
}

func toView(p Product) ProductView {
	return ProductView{
		Product:      p,
		ColorOptions: p.ColorList(),
		SizeOptions:  p.SizeList(),
	}
}

func toViews(products []Product) []ProductView {
	views := make([]ProductView, len(products))
	for i, p := range products {
		views[i] = toView(p)
	}
	return views
}
