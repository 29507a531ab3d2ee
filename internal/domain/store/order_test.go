package store

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexera/storefront/internal/domain/shared"
)

func orderLines() []CartItem {
	return []CartItem{
		{Product: testProduct("p1", 100, 5, 10), Quantity: 2},
	}
}

func TestNewOrderComputesTotals(t *testing.T) {
	order, err := NewOrder(orderLines(), "Somsri", "0812345678")
	require.NoError(t, err)

	assert.True(t, order.TotalShipping.Equal(decimal.NewFromInt(20)))
	assert.True(t, order.TotalPrice.Equal(decimal.NewFromInt(220)))
	assert.NotEmpty(t, order.ID)
	assert.True(t, order.IsLoadingAI)
	assert.False(t, order.Synced)
}

func TestNewOrderTotalIdentity(t *testing.T) {
	lines := []CartItem{
		{Product: testProduct("p1", 129, 10, 15), Quantity: 3},
		{Product: testProduct("p2", 59.5, 10, 20), Quantity: 1},
	}

	order, err := NewOrder(lines, "Somsri", "0812345678")
	require.NoError(t, err)

	itemSum := decimal.Zero
	for _, line := range order.Items {
		itemSum = itemSum.Add(line.LineTotal())
	}
	assert.True(t, order.TotalPrice.Equal(itemSum.Add(order.TotalShipping)))
}

func TestOrderTotalMoney(t *testing.T) {
	order, err := NewOrder(orderLines(), "Somsri", "0812345678")
	require.NoError(t, err)

	assert.Equal(t, "220 THB", order.Total().String())
}

func TestNewOrderRejectsEmptyCart(t *testing.T) {
	_, err := NewOrder(nil, "Somsri", "0812345678")
	assert.ErrorIs(t, err, shared.ErrEmptyCart)
}

func TestNewOrderRejectsBlankCustomer(t *testing.T) {
	_, err := NewOrder(orderLines(), "  ", "0812345678")
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "INVALID_CUSTOMER", domainErr.Code)

	_, err = NewOrder(orderLines(), "Somsri", "")
	assert.Error(t, err)
}

func TestNewOrderCopiesItems(t *testing.T) {
	lines := orderLines()
	order, err := NewOrder(lines, "Somsri", "0812345678")
	require.NoError(t, err)

	lines[0].Quantity = 99
	assert.Equal(t, 2, order.Items[0].Quantity)
}

func TestApplySummary(t *testing.T) {
	order, err := NewOrder(orderLines(), "Somsri", "0812345678")
	require.NoError(t, err)

	order.ApplySummary("ขอบคุณค่ะ")
	assert.Equal(t, "ขอบคุณค่ะ", order.AISummary)
	assert.False(t, order.IsLoadingAI)
}

func TestApplySummaryEmptyTextStillClearsFlag(t *testing.T) {
	order, err := NewOrder(orderLines(), "Somsri", "0812345678")
	require.NoError(t, err)

	order.ApplySummary("")
	assert.Empty(t, order.AISummary)
	assert.False(t, order.IsLoadingAI)
}

func mergeFixture(id string, placed time.Time, synced bool) *Order {
	return &Order{
		ID:            id,
		CustomerName:  "Somsri",
		CustomerPhone: "0812345678",
		Items:         orderLines(),
		TotalPrice:    decimal.NewFromInt(220),
		TotalShipping: decimal.NewFromInt(20),
		Date:          placed,
		Synced:        synced,
	}
}

func TestMergeOrdersFavorsRemote(t *testing.T) {
	now := time.Now()
	local := []*Order{mergeFixture("a", now, false)}
	remote := []*Order{mergeFixture("a", now, true)}

	merged := MergeOrders(local, remote)

	require.Len(t, merged, 1)
	assert.True(t, merged[0].Synced)
}

func TestMergeOrdersPreservesLocalOnly(t *testing.T) {
	now := time.Now()
	local := []*Order{mergeFixture("local-only", now, false)}
	remote := []*Order{mergeFixture("remote-only", now.Add(-time.Hour), true)}

	merged := MergeOrders(local, remote)

	require.Len(t, merged, 2)
	ids := []string{merged[0].ID, merged[1].ID}
	assert.Contains(t, ids, "local-only")
	assert.Contains(t, ids, "remote-only")
}

func TestMergeOrdersIdempotent(t *testing.T) {
	now := time.Now()
	local := []*Order{mergeFixture("a", now, false), mergeFixture("b", now.Add(-time.Minute), false)}
	remote := []*Order{mergeFixture("a", now, true)}

	once := MergeOrders(local, remote)
	twice := MergeOrders(once, remote)

	require.Len(t, twice, len(once))
	for i := range once {
		assert.Equal(t, once[i].ID, twice[i].ID)
		assert.Equal(t, once[i].Synced, twice[i].Synced)
	}
}

func TestMergeOrdersSortedNewestFirst(t *testing.T) {
	now := time.Now()
	local := []*Order{
		mergeFixture("old", now.Add(-2*time.Hour), false),
		mergeFixture("new", now, false),
	}
	remote := []*Order{mergeFixture("mid", now.Add(-time.Hour), true)}

	merged := MergeOrders(local, remote)

	require.Len(t, merged, 3)
	assert.Equal(t, "new", merged[0].ID)
	assert.Equal(t, "mid", merged[1].ID)
	assert.Equal(t, "old", merged[2].ID)
}

func TestSortByDateDescStable(t *testing.T) {
	now := time.Now()
	orders := []*Order{
		mergeFixture("first", now, false),
		mergeFixture("second", now, false),
	}

	SortByDateDesc(orders)

	assert.Equal(t, "first", orders[0].ID)
	assert.Equal(t, "second", orders[1].ID)
}

func TestOrderDocumentRoundTrip(t *testing.T) {
	order, err := NewOrder(orderLines(), "Somsri", "0812345678")
	require.NoError(t, err)
	order.ApplySummary("ขอบคุณค่ะ")
	order.MarkSynced()

	data, err := json.Marshal(order.ToDocument())
	require.NoError(t, err)

	var doc OrderDocument
	require.NoError(t, json.Unmarshal(data, &doc))
	restored := doc.ToOrder()

	assert.Equal(t, order.ID, restored.ID)
	assert.Equal(t, order.CustomerName, restored.CustomerName)
	assert.True(t, order.TotalPrice.Equal(restored.TotalPrice))
	assert.True(t, order.TotalShipping.Equal(restored.TotalShipping))
	assert.True(t, order.Date.UTC().Equal(restored.Date))
	assert.Equal(t, order.AISummary, restored.AISummary)
	assert.True(t, restored.Synced)
	require.Len(t, restored.Items, 1)
	assert.Equal(t, 2, restored.Items[0].Quantity)
	assert.True(t, restored.Items[0].Price.Equal(decimal.NewFromInt(100)))
}

func TestOrderDocumentFieldNames(t *testing.T) {
	order, err := NewOrder(orderLines(), "Somsri", "0812345678")
	require.NoError(t, err)

	data, err := json.Marshal(order.ToDocument())
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, key := range []string{"id", "customerName", "customerPhone", "items", "totalPrice", "totalShipping", "date"} {
		assert.Contains(t, raw, key)
	}
	assert.InDelta(t, 220.0, raw["totalPrice"], 0.001)
}

func TestOrderDocumentBadDateDegrades(t *testing.T) {
	doc := OrderDocument{ID: "x", Date: "not-a-date"}
	restored := doc.ToOrder()
	assert.True(t, restored.Date.IsZero())
}

func TestOrderClone(t *testing.T) {
	order, err := NewOrder(orderLines(), "Somsri", "0812345678")
	require.NoError(t, err)

	dup := order.Clone()
	dup.Items[0].Quantity = 99
	dup.Synced = true

	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.False(t, order.Synced)
}
