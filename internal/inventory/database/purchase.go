package database

import (
	"context"
)

func (s *store) CreatePurchase(ctx context.Context, purchase *Purchase) error {
	return getDBFromContext(ctx, s.db).Create(purchase).Error
}

func (s *store) UpdatePurchase(ctx context.Context, purchase *Purchase) error {
	return s.Transaction(ctx, func(ctx context.Context) error {
		db := getDBFromContext(ctx, s.db)
		var existing Purchase
		if err := db.First(&existing, purchase.ID).Error; err != nil {
			return notFound(err)
		}
		if purchase.AttachmentPath == nil {
			purchase.AttachmentPath = existing.AttachmentPath
		}
		return db.Save(purchase).Error
	})
}

func (s *store) DeletePurchase(ctx context.Context, id uint) error {
	return getDBFromContext(ctx, s.db).Delete(&Purchase{}, id).Error
}

func (s *store) GetPurchaseByID(ctx context.Context, id uint) (*Purchase, error) {
	var purchase Purchase
	if err := getDBFromContext(ctx, s.db).First(&purchase, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &purchase, nil
}

func (s *store) ListPurchases(ctx context.Context) ([]*PurchaseRow, error) {
	var rows []*PurchaseRow
	err := getDBFromContext(ctx, s.db).
		Table("purchases").
		Select("purchases.*, products.name AS product_name, suppliers.name AS supplier_name").
		Joins("LEFT JOIN products ON products.id = purchases.product_id").
		Joins("LEFT JOIN suppliers ON suppliers.id = purchases.supplier_id").
		Order("purchases.id DESC").
		Scan(&rows).Error
	return rows, err
}
