package report

import (
	"context"
	"fmt"
	"time"

	"github.com/amoylab/inventory/internal/common/cnst"
	"github.com/amoylab/inventory/internal/inventory/database"
	"github.com/amoylab/inventory/pkg/trace"
	"go.opentelemetry.io/otel/attribute"
)

const (
	dayLabel   = "2006-01-02"
	monthLabel = "Jan 2006"
)

// Source is the read side of the database the aggregator needs
type Source interface {
	InventoryLevels(ctx context.Context) ([]*database.InventoryLevel, error)
	OrderStatusCounts(ctx context.Context) ([]*database.StatusCount, error)
	PurchaseQuantityByDay(ctx context.Context, from, to database.Date) ([]*database.DailyQuantity, error)
	OrderQuantityByDay(ctx context.Context, from, to database.Date) ([]*database.DailyQuantity, error)
}

// Point is one labelled bucket of a time series
type Point struct {
	Label    string `json:"label"`
	Quantity int64  `json:"quantity"`
}

// Volume pairs purchase and order quantities for one bucket
type Volume struct {
	Label     string `json:"label"`
	Purchases int64  `json:"purchases"`
	Orders    int64  `json:"orders"`
}

// Dashboard holds every chart
type Dashboard struct {
	Inventory   []*database.InventoryLevel `json:"inventory"`
	StatusMix   []*database.StatusCount    `json:"statusMix"`
	TotalOrders int64                      `json:"totalOrders"`
	Weekly      []Volume                   `json:"weekly"`
	Monthly     []Point                    `json:"monthly"`
	Yearly      []Volume                   `json:"yearly"`
	GeneratedAt time.Time                  `json:"generatedAt"`
}

// Aggregator computes chart data relative to the current date
type Aggregator struct {
	src Source
	now func() time.Time
}

// NewAggregator creates an Aggregator reading from src.
// A nil clock uses time.Now.
func NewAggregator(src Source, now func() time.Time) *Aggregator {
	if now == nil {
		now = time.Now
	}
	return &Aggregator{src: src, now: now}
}

// Build computes all charts against a single reading of the clock
func (a *Aggregator) Build(ctx context.Context) (*Dashboard, error) {
	scope := trace.Tracer(cnst.TraceReport).Start(ctx, cnst.SpanReportBuild)
	defer scope.End()
	ctx = scope.Ctx

	now := a.now()
	today := database.DateOf(now)

	d := &Dashboard{GeneratedAt: now}
	var err error
	if d.Inventory, err = a.Inventory(ctx); err != nil {
		scope.Fail(err)
		return nil, err
	}
	if d.StatusMix, err = a.StatusMix(ctx); err != nil {
		scope.Fail(err)
		return nil, err
	}
	for _, c := range d.StatusMix {
		d.TotalOrders += c.Count
	}
	if d.Weekly, err = a.dailyVolume(ctx, today, 7); err != nil {
		scope.Fail(err)
		return nil, err
	}
	if d.Monthly, err = a.dailyPurchases(ctx, today, 30); err != nil {
		scope.Fail(err)
		return nil, err
	}
	if d.Yearly, err = a.monthlyVolume(ctx, today, 12); err != nil {
		scope.Fail(err)
		return nil, err
	}
	return d, nil
}

// Inventory lists every product's on-hand quantity by name
func (a *Aggregator) Inventory(ctx context.Context) ([]*database.InventoryLevel, error) {
	levels, err := a.src.InventoryLevels(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventory levels: %w", err)
	}
	if levels == nil {
		levels = []*database.InventoryLevel{}
	}
	return levels, nil
}

// StatusMix counts orders per status
func (a *Aggregator) StatusMix(ctx context.Context) ([]*database.StatusCount, error) {
	counts, err := a.src.OrderStatusCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("order status counts: %w", err)
	}
	if counts == nil {
		counts = []*database.StatusCount{}
	}
	return counts, nil
}

// DailyVolume returns purchase and order totals for the trailing days
// ending today, oldest first
func (a *Aggregator) DailyVolume(ctx context.Context, days int) ([]Volume, error) {
	return a.dailyVolume(ctx, database.DateOf(a.now()), days)
}

func (a *Aggregator) dailyVolume(ctx context.Context, today database.Date, days int) ([]Volume, error) {
	from, to := dayWindow(today, days)
	purchases, err := a.series(ctx, "purchases", a.src.PurchaseQuantityByDay, from, to)
	if err != nil {
		return nil, err
	}
	orders, err := a.series(ctx, "orders", a.src.OrderQuantityByDay, from, to)
	if err != nil {
		return nil, err
	}

	out := make([]Volume, 0, days)
	for d := from; !to.Before(d); d = d.AddDays(1) {
		out = append(out, Volume{Label: d.Time().Format(dayLabel), Purchases: purchases[d], Orders: orders[d]})
	}
	return out, nil
}

// DailyPurchases returns purchase totals for the trailing days ending today, oldest first
func (a *Aggregator) DailyPurchases(ctx context.Context, days int) ([]Point, error) {
	return a.dailyPurchases(ctx, database.DateOf(a.now()), days)
}

func (a *Aggregator) dailyPurchases(ctx context.Context, today database.Date, days int) ([]Point, error) {
	from, to := dayWindow(today, days)
	purchases, err := a.series(ctx, "purchases", a.src.PurchaseQuantityByDay, from, to)
	if err != nil {
		return nil, err
	}

	out := make([]Point, 0, days)
	for d := from; !to.Before(d); d = d.AddDays(1) {
		out = append(out, Point{Label: d.Time().Format(dayLabel), Quantity: purchases[d]})
	}
	return out, nil
}

// MonthlyVolume returns purchase and order totals for the trailing calendar
// months including the current one, oldest first. Each bucket covers
// [month start, next month start).
func (a *Aggregator) MonthlyVolume(ctx context.Context, months int) ([]Volume, error) {
	return a.monthlyVolume(ctx, database.DateOf(a.now()), months)
}

func (a *Aggregator) monthlyVolume(ctx context.Context, today database.Date, months int) ([]Volume, error) {
	if months < 1 {
		return []Volume{}, nil
	}
	first := today.AddMonths(-(months - 1))
	last := today.AddMonths(1).AddDays(-1)

	purchases, err := a.series(ctx, "purchases", a.src.PurchaseQuantityByDay, first, last)
	if err != nil {
		return nil, err
	}
	orders, err := a.series(ctx, "orders", a.src.OrderQuantityByDay, first, last)
	if err != nil {
		return nil, err
	}

	out := make([]Volume, months)
	index := make(map[database.Date]int, months)
	for i := 0; i < months; i++ {
		m := first.AddMonths(i)
		index[m] = i
		out[i].Label = m.Time().Format(monthLabel)
	}
	for d, q := range purchases {
		out[index[d.MonthStart()]].Purchases += q
	}
	for d, q := range orders {
		out[index[d.MonthStart()]].Orders += q
	}
	return out, nil
}

// dayWindow is the inclusive range of the trailing days ending today
func dayWindow(today database.Date, days int) (database.Date, database.Date) {
	to := today
	if days < 1 {
		return to.AddDays(1), to
	}
	return to.AddDays(-(days - 1)), to
}

type dailyFunc func(ctx context.Context, from, to database.Date) ([]*database.DailyQuantity, error)

// series loads one grouped-by-day query into a map keyed by date
func (a *Aggregator) series(ctx context.Context, name string, load dailyFunc, from, to database.Date) (map[database.Date]int64, error) {
	scope := trace.Tracer(cnst.TraceReport).Start(ctx, cnst.SpanReportSeries).
		WithAttrs(attribute.String("series", name), attribute.String("from", from.String()), attribute.String("to", to.String()))
	defer scope.End()

	rows, err := load(scope.Ctx, from, to)
	if err != nil {
		scope.Fail(err)
		return nil, fmt.Errorf("%s by day: %w", name, err)
	}

	out := make(map[database.Date]int64, len(rows))
	for _, r := range rows {
		if r.Day.Before(from) || to.Before(r.Day) {
			continue
		}
		out[r.Day] += r.Quantity
	}
	return out, nil
}
