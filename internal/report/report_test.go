package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amoylab/inventory/internal/common/config"
	"github.com/amoylab/inventory/internal/inventory/database"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(s string) func() time.Time {
	t, err := time.Parse("2006-01-02 15:04", s)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

type fakeSource struct {
	purchases []*database.DailyQuantity
	orders    []*database.DailyQuantity
	err       error
	calls     int
}

func (f *fakeSource) InventoryLevels(context.Context) ([]*database.InventoryLevel, error) {
	return nil, f.err
}

func (f *fakeSource) OrderStatusCounts(context.Context) ([]*database.StatusCount, error) {
	return []*database.StatusCount{{Status: database.OrderPending, Count: 2}, {Status: database.OrderCompleted, Count: 1}}, f.err
}

func within(rows []*database.DailyQuantity, from, to database.Date) []*database.DailyQuantity {
	var out []*database.DailyQuantity
	for _, r := range rows {
		if !r.Day.Before(from) && !to.Before(r.Day) {
			out = append(out, r)
		}
	}
	return out
}

func (f *fakeSource) PurchaseQuantityByDay(_ context.Context, from, to database.Date) ([]*database.DailyQuantity, error) {
	f.calls++
	return within(f.purchases, from, to), f.err
}

func (f *fakeSource) OrderQuantityByDay(_ context.Context, from, to database.Date) ([]*database.DailyQuantity, error) {
	f.calls++
	return within(f.orders, from, to), f.err
}

func day(s string, q int64) *database.DailyQuantity {
	return &database.DailyQuantity{Day: database.MustParseDate(s), Quantity: q}
}

func TestDailyVolumeWindow(t *testing.T) {
	src := &fakeSource{
		purchases: []*database.DailyQuantity{day("2024-03-08", 99), day("2024-03-09", 1), day("2024-03-15", 4)},
		orders:    []*database.DailyQuantity{day("2024-03-12", 2)},
	}
	a := NewAggregator(src, fixedClock("2024-03-15 23:30"))

	got, err := a.DailyVolume(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, got, 7)
	assert.Equal(t, "2024-03-09", got[0].Label)
	assert.Equal(t, "2024-03-15", got[6].Label)
	assert.Equal(t, int64(1), got[0].Purchases)
	assert.Equal(t, int64(4), got[6].Purchases)
	assert.Equal(t, int64(2), got[3].Orders)

	var total int64
	for _, v := range got {
		total += v.Purchases
	}
	// 2024-03-08 falls outside the window
	assert.Equal(t, int64(5), total)
}

func TestDailyPurchasesThirtyDays(t *testing.T) {
	a := NewAggregator(&fakeSource{purchases: []*database.DailyQuantity{day("2024-02-15", 3)}}, fixedClock("2024-03-15 08:00"))

	got, err := a.DailyPurchases(context.Background(), 30)
	require.NoError(t, err)
	require.Len(t, got, 30)
	// leap year: Feb 15 is the first day of the window
	assert.Equal(t, Point{Label: "2024-02-15", Quantity: 3}, got[0])
	assert.Equal(t, "2024-03-15", got[29].Label)
	for _, p := range got[1:] {
		assert.Zero(t, p.Quantity)
	}
}

func TestMonthlyVolume(t *testing.T) {
	src := &fakeSource{
		purchases: []*database.DailyQuantity{
			day("2023-03-31", 50), // before the window
			day("2023-04-01", 1),
			day("2024-01-31", 2),
			day("2024-02-01", 3),
			day("2024-03-31", 4),
		},
		orders: []*database.DailyQuantity{day("2024-01-01", 7), day("2024-01-31", 1)},
	}
	a := NewAggregator(src, fixedClock("2024-03-10 12:00"))

	got, err := a.MonthlyVolume(context.Background(), 12)
	require.NoError(t, err)
	require.Len(t, got, 12)
	assert.Equal(t, "Apr 2023", got[0].Label)
	assert.Equal(t, "Mar 2024", got[11].Label)
	assert.Equal(t, int64(1), got[0].Purchases)
	assert.Equal(t, "Jan 2024", got[9].Label)
	assert.Equal(t, int64(2), got[9].Purchases)
	assert.Equal(t, int64(8), got[9].Orders)
	assert.Equal(t, int64(3), got[10].Purchases)
	assert.Equal(t, int64(4), got[11].Purchases)
}

func TestBuild(t *testing.T) {
	src := &fakeSource{}
	a := NewAggregator(src, fixedClock("2024-03-10 12:00"))

	d, err := a.Build(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, d.Inventory)
	assert.Len(t, d.StatusMix, 2)
	assert.Equal(t, int64(3), d.TotalOrders)
	assert.Len(t, d.Weekly, 7)
	assert.Len(t, d.Monthly, 30)
	assert.Len(t, d.Yearly, 12)
	// one query per series
	assert.Equal(t, 5, src.calls)
}

func TestBuildReadsClockOnce(t *testing.T) {
	readings := []time.Time{
		time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC),
		time.Date(2024, 4, 1, 0, 0, 1, 0, time.UTC),
	}
	calls := 0
	clock := func() time.Time {
		r := readings[min(calls, len(readings)-1)]
		calls++
		return r
	}

	d, err := NewAggregator(&fakeSource{}, clock).Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, readings[0], d.GeneratedAt)
	assert.Equal(t, "2024-03-31", d.Weekly[6].Label)
	assert.Equal(t, "2024-03-31", d.Monthly[29].Label)
	assert.Equal(t, "Mar 2024", d.Yearly[11].Label)
}

func TestBuildPropagatesErrors(t *testing.T) {
	boom := errors.New("db down")
	_, err := NewAggregator(&fakeSource{err: boom}, nil).Build(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestAgainstSQLite(t *testing.T) {
	db, err := database.NewSQLite(&config.DatabaseConfig{Type: "sqlite", DBName: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	ctx := context.Background()

	require.NoError(t, db.CreateProduct(ctx, &database.Product{Name: "Bolt", Price: decimal.NewFromInt(1), Quantity: 10}))
	for _, p := range []struct {
		d string
		q int
	}{{"2024-02-29", 2}, {"2024-03-01", 3}, {"2024-03-01", 4}} {
		require.NoError(t, db.CreatePurchase(ctx, &database.Purchase{ProductID: 1, SupplierID: 1, Quantity: p.q, PurchaseDate: database.MustParseDate(p.d)}))
	}
	require.NoError(t, db.CreateOrder(ctx, &database.Order{ProductID: 1, Quantity: 5, OrderDate: database.MustParseDate("2024-03-01"), Status: database.OrderCompleted}))

	a := NewAggregator(db, fixedClock("2024-03-01 09:00"))
	d, err := a.Build(ctx)
	require.NoError(t, err)

	require.Len(t, d.Inventory, 1)
	assert.Equal(t, 10, d.Inventory[0].Quantity)
	assert.Equal(t, int64(1), d.TotalOrders)

	require.Len(t, d.Weekly, 7)
	assert.Equal(t, Volume{Label: "2024-02-29", Purchases: 2}, d.Weekly[5])
	assert.Equal(t, Volume{Label: "2024-03-01", Purchases: 7, Orders: 5}, d.Weekly[6])

	assert.Equal(t, int64(2), d.Yearly[10].Purchases)
	assert.Equal(t, int64(7), d.Yearly[11].Purchases)
	assert.Equal(t, int64(5), d.Yearly[11].Orders)
}
