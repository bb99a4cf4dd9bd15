package database

import (
	"context"
)

func (s *store) CreateOrder(ctx context.Context, order *Order) error {
	if order.Status == "" {
		order.Status = OrderPending
	}
	return getDBFromContext(ctx, s.db).Create(order).Error
}

func (s *store) UpdateOrder(ctx context.Context, order *Order) error {
	if order.Status == "" {
		order.Status = OrderPending
	}
	return s.Transaction(ctx, func(ctx context.Context) error {
		db := getDBFromContext(ctx, s.db)
		var existing Order
		if err := db.First(&existing, order.ID).Error; err != nil {
			return notFound(err)
		}
		if order.AttachmentPath == nil {
			order.AttachmentPath = existing.AttachmentPath
		}
		return db.Save(order).Error
	})
}

func (s *store) DeleteOrder(ctx context.Context, id uint) error {
	return getDBFromContext(ctx, s.db).Delete(&Order{}, id).Error
}

func (s *store) GetOrderByID(ctx context.Context, id uint) (*Order, error) {
	var order Order
	if err := getDBFromContext(ctx, s.db).First(&order, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &order, nil
}

func (s *store) ListOrders(ctx context.Context) ([]*OrderRow, error) {
	var rows []*OrderRow
	err := getDBFromContext(ctx, s.db).
		Table("orders").
		Select("orders.*, products.name AS product_name").
		Joins("LEFT JOIN products ON products.id = orders.product_id").
		Order("orders.id DESC").
		Scan(&rows).Error
	return rows, err
}
