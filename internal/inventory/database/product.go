package database

import (
	"context"
)

func (s *store) CreateProduct(ctx context.Context, product *Product) error {
	return getDBFromContext(ctx, s.db).Create(product).Error
}

func (s *store) UpdateProduct(ctx context.Context, product *Product) error {
	return s.Transaction(ctx, func(ctx context.Context) error {
		db := getDBFromContext(ctx, s.db)
		var existing Product
		if err := db.First(&existing, product.ID).Error; err != nil {
			return notFound(err)
		}
		if product.ImagePath == nil {
			product.ImagePath = existing.ImagePath
		}
		return db.Save(product).Error
	})
}

func (s *store) DeleteProduct(ctx context.Context, id uint) error {
	return s.Transaction(ctx, func(ctx context.Context) error {
		db := getDBFromContext(ctx, s.db)
		inUse, err := referenced(db, id,
			reference{model: &Purchase{}, column: "product_id"},
			reference{model: &Order{}, column: "product_id"},
		)
		if err != nil {
			return err
		}
		if inUse {
			return ErrInUse
		}
		return db.Delete(&Product{}, id).Error
	})
}

func (s *store) GetProductByID(ctx context.Context, id uint) (*Product, error) {
	var product Product
	if err := getDBFromContext(ctx, s.db).First(&product, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &product, nil
}

func (s *store) ListProducts(ctx context.Context) ([]*ProductRow, error) {
	var rows []*ProductRow
	err := getDBFromContext(ctx, s.db).
		Table("products").
		Select("products.*, suppliers.name AS supplier_name").
		Joins("LEFT JOIN suppliers ON suppliers.id = products.supplier_id").
		Order("products.id DESC").
		Scan(&rows).Error
	return rows, err
}

func (s *store) ProductOptions(ctx context.Context) ([]*Option, error) {
	var opts []*Option
	err := getDBFromContext(ctx, s.db).
		Model(&Product{}).
		Select("id, name").
		Order("name ASC, id ASC").
		Scan(&opts).Error
	return opts, err
}
