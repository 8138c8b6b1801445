// internal/domain/catalog/service_test.go
package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Category{}, &Product{}))
	return db
}

func seedCategory(t *testing.T, db *gorm.DB, id string) {
	t.Helper()
	require.NoError(t, db.Create(&Category{ID: id, Name: id}).Error)
}

func TestCreateAndGetProduct(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db, nil)
	ctx := context.Background()
	seedCategory(t, db, "graphic-tees")

	created, err := svc.CreateProduct(ctx, &ProductCreateRequest{
		Name:       "Magnolia Skull Tee",
		CategoryID: "graphic-tees",
		Price:      2000,
		Colors:     []string{"Black", "Cream"},
		Sizes:      []string{"S", "M", "L"},
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "tshirt", created.Garment, "garment defaults to tshirt")
	assert.True(t, created.InStock)

	got, err := svc.GetProduct(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Magnolia Skull Tee", got.Name)
	assert.Equal(t, int64(2000), got.Price)
	assert.Equal(t, []string{"Black", "Cream"}, got.ColorOptions)
	assert.Equal(t, []string{"S", "M", "L"}, got.SizeOptions)
}

func TestCreateProductUnknownCategory(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db, nil)

	_, err := svc.CreateProduct(context.Background(), &ProductCreateRequest{
		Name:       "Orphan Tee",
		CategoryID: "no-such-category",
		Price:      2000,
	})
	assert.Error(t, err)
}

func TestGetProductsByCategory(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db, nil)
	ctx := context.Background()
	seedCategory(t, db, "graphic-tees")
	seedCategory(t, db, "sweatshirts")

	_, err := svc.CreateProduct(ctx, &ProductCreateRequest{Name: "Tee", CategoryID: "graphic-tees", Price: 2000})
	require.NoError(t, err)
	_, err = svc.CreateProduct(ctx, &ProductCreateRequest{Name: "Crewneck", CategoryID: "sweatshirts", Price: 2500, Garment: "sweatshirt"})
	require.NoError(t, err)

	all, err := svc.GetProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	tees, err := svc.GetProductsByCategory(ctx, "graphic-tees")
	require.NoError(t, err)
	require.Len(t, tees, 1)
	assert.Equal(t, "Tee", tees[0].Name)

	empty, err := svc.GetProductsByCategory(ctx, "sweatshirts-missing")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestUpdateProductPartial(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db, nil)
	ctx := context.Background()
	seedCategory(t, db, "graphic-tees")

	created, err := svc.CreateProduct(ctx, &ProductCreateRequest{Name: "Tee", CategoryID: "graphic-tees", Price: 2000})
	require.NoError(t, err)

	price := int64(2200)
	out := false
	updated, err := svc.UpdateProduct(ctx, created.ID, &ProductUpdateRequest{Price: &price, InStock: &out})
	require.NoError(t, err)
	assert.Equal(t, int64(2200), updated.Price)
	assert.False(t, updated.InStock)
	assert.Equal(t, "Tee", updated.Name, "unset fields are untouched")
}

func TestDeleteProductSoftDeletes(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db, nil)
	ctx := context.Background()
	seedCategory(t, db, "graphic-tees")

	created, err := svc.CreateProduct(ctx, &ProductCreateRequest{Name: "Tee", CategoryID: "graphic-tees", Price: 2000})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(ctx, created.ID))

	_, err = svc.GetProduct(ctx, created.ID)
	assert.Error(t, err)

	err = svc.DeleteProduct(ctx, created.ID)
	assert.Error(t, err, "deleting twice reports not found")

	// The row survives for auditing; only the default scope hides it.
	var count int64
	require.NoError(t, db.Unscoped().Model(&Product{}).Where("id = ?", created.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestProductByIDStaleReference(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db, nil)
	ctx := context.Background()

	p, err := svc.ProductByID(ctx, 9999)
	require.NoError(t, err, "a dangling reference is not an error")
	assert.Nil(t, p)
}

func TestCategoryService(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(db, nil)
	ctx := context.Background()

	_, err := svc.CreateCategory(ctx, &CategoryCreateRequest{ID: "sweatshirts", Name: "Sweatshirts", DisplayOrder: 2})
	require.NoError(t, err)
	_, err = svc.CreateCategory(ctx, &CategoryCreateRequest{ID: "graphic-tees", Name: "Graphic Tees", DisplayOrder: 1})
	require.NoError(t, err)

	_, err = svc.CreateCategory(ctx, &CategoryCreateRequest{ID: "graphic-tees", Name: "Dup"})
	assert.Error(t, err, "duplicate ids are rejected")

	cats, err := svc.GetCategories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, "graphic-tees", cats[0].ID, "display order wins")

	products := NewService(db, nil)
	_, err = products.CreateProduct(ctx, &ProductCreateRequest{Name: "Tee", CategoryID: "graphic-tees", Price: 2000})
	require.NoError(t, err)

	counted, err := svc.GetCategoriesWithProductCount(ctx)
	require.NoError(t, err)
	require.Len(t, counted, 2)
	assert.Equal(t, int64(1), counted[0].ProductCount)
	assert.Equal(t, int64(0), counted[1].ProductCount)
}

func TestColorAndSizeHelpers(t *testing.T) {
	p := &Product{Colors: "Black, Cream,Sage", Sizes: "S,M,L"}

	assert.Equal(t, []string{"Black", "Cream", "Sage"}, p.ColorList())
	assert.True(t, p.HasColor("Cream"))
	assert.False(t, p.HasColor("Mauve"))
	assert.True(t, p.HasSize("M"))
	assert.False(t, p.HasSize("5XL"))

	empty := &Product{}
	assert.Empty(t, empty.ColorList())
	assert.Empty(t, empty.SizeList())

	assert.Equal(t, "Black,Cream", JoinList([]string{"Black", "Cream"}))
}
