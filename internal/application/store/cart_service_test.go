package store

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexera/storefront/internal/domain/shared"
	"github.com/nexera/storefront/internal/domain/store"
)

type fakeProductRepo struct {
	products []store.Product
}

func (r *fakeProductRepo) List(ctx context.Context) ([]store.Product, error) {
	return r.products, nil
}

func (r *fakeProductRepo) FindByID(ctx context.Context, id string) (*store.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			dup := p
			return &dup, nil
		}
	}
	return nil, nil
}

func newFakeRepo() *fakeProductRepo {
	return &fakeProductRepo{products: []store.Product{
		{ID: "p1", Name: "Serum", Brand: "Aoldi", Price: decimal.NewFromInt(100), Stock: 3, ShippingCost: decimal.NewFromInt(10)},
		{ID: "p2", Name: "Cream", Brand: "Api", Price: decimal.NewFromFloat(59.5), Stock: 1, ShippingCost: decimal.NewFromInt(20)},
		{ID: "p3", Name: "Mask", Brand: "Api", Price: decimal.NewFromInt(25), Stock: 0, ShippingCost: decimal.NewFromInt(5)},
	}}
}

func TestCartServiceAddItem(t *testing.T) {
	svc := NewCartService(newFakeRepo())

	resp, err := svc.AddItem(context.Background(), "p1")
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, 1, resp.Items[0].Quantity)
	assert.InDelta(t, 110.0, resp.GrandTotal, 0.001)
}

func TestCartServiceAddUnknownProduct(t *testing.T) {
	svc := NewCartService(newFakeRepo())

	_, err := svc.AddItem(context.Background(), "missing")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestCartServiceAddOutOfStockIsSilent(t *testing.T) {
	svc := NewCartService(newFakeRepo())

	resp, err := svc.AddItem(context.Background(), "p3")
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
}

func TestCartServiceStockClamp(t *testing.T) {
	svc := NewCartService(newFakeRepo())
	ctx := context.Background()

	svc.AddItem(ctx, "p2")
	resp, err := svc.AddItem(ctx, "p2")
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, 1, resp.Items[0].Quantity)
}

func TestCartServiceUpdateQuantity(t *testing.T) {
	svc := NewCartService(newFakeRepo())
	ctx := context.Background()
	svc.AddItem(ctx, "p1")

	resp := svc.UpdateQuantity(ctx, "p1", 2)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 3, resp.Items[0].Quantity)

	resp = svc.UpdateQuantity(ctx, "p1", -3)
	assert.Empty(t, resp.Items)
}

func TestCartServiceRemoveAndClear(t *testing.T) {
	svc := NewCartService(newFakeRepo())
	ctx := context.Background()
	svc.AddItem(ctx, "p1")
	svc.AddItem(ctx, "p2")

	resp := svc.RemoveItem(ctx, "p1")
	require.Len(t, resp.Items, 1)

	svc.Clear(ctx)
	assert.Empty(t, svc.Get(ctx).Items)
	assert.Empty(t, svc.Snapshot(ctx))
}

func TestCartServiceTotals(t *testing.T) {
	svc := NewCartService(newFakeRepo())
	ctx := context.Background()
	svc.AddItem(ctx, "p1")
	svc.AddItem(ctx, "p1")

	resp := svc.Get(ctx)
	assert.Equal(t, 2, resp.Count)
	assert.InDelta(t, 200.0, resp.ItemTotal, 0.001)
	assert.InDelta(t, 20.0, resp.ShippingTotal, 0.001)
	assert.InDelta(t, 220.0, resp.GrandTotal, 0.001)
}

func TestCatalogServiceListGrouped(t *testing.T) {
	svc := NewCatalogService(newFakeRepo())

	groups, err := svc.ListGrouped(context.Background())
	require.NoError(t, err)

	require.Len(t, groups, 2)
	assert.Equal(t, "Aoldi", groups[0].Brand)
	assert.Len(t, groups[0].Products, 1)
	assert.Equal(t, "Api", groups[1].Brand)
	assert.Len(t, groups[1].Products, 2)
}
