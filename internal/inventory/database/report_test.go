package database

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryLevelsAndStatusCounts(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	require.NoError(t, db.CreateProduct(ctx, &Product{Name: "Washer", Price: decimal.Zero, Quantity: 7}))
	require.NoError(t, db.CreateProduct(ctx, &Product{Name: "Anvil", Price: decimal.Zero, Quantity: -2}))

	levels, err := db.InventoryLevels(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*InventoryLevel{{Name: "Anvil", Quantity: -2}, {Name: "Washer", Quantity: 7}}, levels)

	for _, st := range []OrderStatus{OrderPending, OrderPending, OrderCompleted, OrderCancelled, ""} {
		require.NoError(t, db.CreateOrder(ctx, &Order{ProductID: 1, Quantity: 1, OrderDate: MustParseDate("2024-01-01"), Status: st}))
	}
	counts, err := db.OrderStatusCounts(ctx)
	require.NoError(t, err)

	byStatus := map[OrderStatus]int64{}
	var total int64
	for _, c := range counts {
		byStatus[c.Status] = c.Count
		total += c.Count
	}
	assert.Equal(t, int64(5), total)
	assert.Equal(t, int64(3), byStatus[OrderPending])
	assert.Equal(t, int64(1), byStatus[OrderCompleted])
	assert.Equal(t, int64(1), byStatus[OrderCancelled])
}

func TestQuantityByDay(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	for _, p := range []struct {
		day string
		qty int
	}{
		{"2024-02-28", 1},
		{"2024-02-29", 2},
		{"2024-02-29", 3},
		{"2024-03-01", 4},
		{"2024-03-02", 100},
	} {
		require.NoError(t, db.CreatePurchase(ctx, &Purchase{ProductID: 1, SupplierID: 1, Quantity: p.qty, PurchaseDate: MustParseDate(p.day)}))
	}
	require.NoError(t, db.CreateOrder(ctx, &Order{ProductID: 1, Quantity: 9, OrderDate: MustParseDate("2024-02-29")}))

	rows, err := db.PurchaseQuantityByDay(ctx, MustParseDate("2024-02-29"), MustParseDate("2024-03-01"))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-02-29", rows[0].Day.String())
	assert.Equal(t, int64(5), rows[0].Quantity)
	assert.Equal(t, "2024-03-01", rows[1].Day.String())
	assert.Equal(t, int64(4), rows[1].Quantity)

	orders, err := db.OrderQuantityByDay(ctx, MustParseDate("2024-02-01"), MustParseDate("2024-02-29"))
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, int64(9), orders[0].Quantity)
}
