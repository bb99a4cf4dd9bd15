package database

import (
	"context"

	"gorm.io/gorm"
)

func (s *store) InventoryLevels(ctx context.Context) ([]*InventoryLevel, error) {
	var levels []*InventoryLevel
	err := getDBFromContext(ctx, s.db).
		Model(&Product{}).
		Select("name, quantity").
		Order("name ASC, id ASC").
		Scan(&levels).Error
	return levels, err
}

func (s *store) OrderStatusCounts(ctx context.Context) ([]*StatusCount, error) {
	var counts []*StatusCount
	err := getDBFromContext(ctx, s.db).
		Model(&Order{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Order("status ASC").
		Scan(&counts).Error
	return counts, err
}

func (s *store) PurchaseQuantityByDay(ctx context.Context, from, to Date) ([]*DailyQuantity, error) {
	return quantityByDay(getDBFromContext(ctx, s.db), "purchases", "purchase_date", from, to)
}

func (s *store) OrderQuantityByDay(ctx context.Context, from, to Date) ([]*DailyQuantity, error) {
	return quantityByDay(getDBFromContext(ctx, s.db), "orders", "order_date", from, to)
}

// quantityByDay sums quantity per distinct date within the inclusive range.
// table and column are fixed identifiers, never request input.
func quantityByDay(db *gorm.DB, table, column string, from, to Date) ([]*DailyQuantity, error) {
	var rows []*DailyQuantity
	err := db.Table(table).
		Select(column+" AS day, COALESCE(SUM(quantity), 0) AS quantity").
		Where(column+" >= ? AND "+column+" <= ?", from, to).
		Group(column).
		Order(column).
		Scan(&rows).Error
	return rows, err
}
