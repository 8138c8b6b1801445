// internal/domain/cart/service_test.go
package cart

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// fakeResolver resolves products from a fixed map. Unknown ids resolve
// to nil without an error, matching the catalog's stale-reference
// behavior.
type fakeResolver struct {
	products map[uint]*catalog.Product
}

func (f *fakeResolver) ProductByID(_ context.Context, id uint) (*catalog.Product, error) {
	return f.products[id], nil
}

func newTestService() (*Service, *fakeResolver) {
	resolver := &fakeResolver{products: map[uint]*catalog.Product{
		1: {ID: 1, Name: "Classic Tee", Price: 2000, Garment: "tshirt", InStock: true},
		2: {ID: 2, Name: "Crewneck Sweatshirt", Price: 2500, Garment: "sweatshirt", InStock: true},
		3: {ID: 3, Name: "Sold Out Tee", Price: 2000, Garment: "tshirt", InStock: false},
	}}
	store := NewStore(newMemoryKV(), time.Hour)
	return NewService(store, resolver, nil), resolver
}

func TestServiceAddAndGet(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	view, err := svc.AddItem(ctx, "s1", &AddItemRequest{
		ProductID:     1,
		Quantity:      2,
		SelectedColor: "Black",
		SelectedSize:  "2XL",
		PrintLocation: "front",
	})
	require.NoError(t, err)
	require.Len(t, view.Items, 1)

	item := view.Items[0]
	assert.Equal(t, "Classic Tee", item.Product.Name)
	assert.Equal(t, int64(2200), item.UnitPrice, "base 20.00 plus 2XL surcharge 2.00")
	assert.Equal(t, int64(4400), item.TotalPrice)
	assert.Equal(t, int64(4400), view.Totals.Subtotal)
	assert.Equal(t, int64(4400), view.Totals.TotalAmount)
	assert.Equal(t, 1, view.Totals.ItemCount)
	assert.Equal(t, 2, view.Totals.TotalQuantity)
}

func TestServiceBothSidesPricing(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	view, err := svc.AddItem(ctx, "s1", &AddItemRequest{
		ProductID:     1,
		Quantity:      1,
		SelectedColor: "Cream",
		SelectedSize:  "M",
		PrintLocation: "both",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2500), view.Items[0].UnitPrice, "both-sides price replaces the base, it does not add to it")
	assert.Equal(t, int64(2500), view.Totals.TotalAmount)
}

func TestServiceUnknownProductRejected(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.AddItem(context.Background(), "s1", &AddItemRequest{
		ProductID:     99,
		Quantity:      1,
		SelectedColor: "Black",
		SelectedSize:  "M",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestServiceOutOfStockRejected(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.AddItem(context.Background(), "s1", &AddItemRequest{
		ProductID:     3,
		Quantity:      1,
		SelectedColor: "Black",
		SelectedSize:  "M",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestServiceUnresolvedProductContributesZero(t *testing.T) {
	svc, resolver := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", &AddItemRequest{
		ProductID:     1,
		Quantity:      2,
		SelectedColor: "Black",
		SelectedSize:  "M",
	})
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "s1", &AddItemRequest{
		ProductID:     2,
		Quantity:      1,
		SelectedColor: "Sage",
		SelectedSize:  "L",
	})
	require.NoError(t, err)

	// The first product disappears from the catalog after it was added.
	delete(resolver.products, 1)

	view, err := svc.GetCart(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, view.Items, 2, "the line itself survives")

	assert.Nil(t, view.Items[0].Product)
	assert.Zero(t, view.Items[0].UnitPrice)
	assert.Zero(t, view.Items[0].TotalPrice)
	assert.Equal(t, int64(2500), view.Totals.TotalAmount, "only the resolvable sweatshirt counts")
}

func TestServiceRetroactiveRepricing(t *testing.T) {
	svc, resolver := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", &AddItemRequest{
		ProductID:     1,
		Quantity:      1,
		SelectedColor: "Black",
		SelectedSize:  "M",
	})
	require.NoError(t, err)

	// Garment reclassification changes the quoted price on the next read.
	resolver.products[1].Garment = "sweatshirt"

	view, err := svc.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, int64(2500), view.Items[0].UnitPrice)
}

func TestServiceUpdateAndRemove(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	view, err := svc.AddItem(ctx, "s1", &AddItemRequest{
		ProductID:     1,
		Quantity:      1,
		SelectedColor: "Black",
		SelectedSize:  "M",
	})
	require.NoError(t, err)
	itemID := view.Items[0].ID

	three := 3
	view, err = svc.UpdateItem(ctx, "s1", itemID, &UpdateItemRequest{Quantity: &three})
	require.NoError(t, err)
	assert.Equal(t, int64(6000), view.Totals.TotalAmount)

	view, err = svc.RemoveItem(ctx, "s1", itemID)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Zero(t, view.Totals.TotalAmount)
}

func TestServiceClearAndCount(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := svc.AddItem(ctx, "s1", &AddItemRequest{
			ProductID:     1,
			Quantity:      2,
			SelectedColor: "Black",
			SelectedSize:  "M",
		})
		require.NoError(t, err)
	}

	count, err := svc.ItemsCount(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	view, err := svc.Clear(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, view.Items)

	count, err = svc.ItemsCount(ctx, "s1")
	require.NoError(t, err)
	assert.Zero(t, count)
}
