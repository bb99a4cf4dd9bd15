package database

import (
	"context"
)

func (s *store) CreateSupplier(ctx context.Context, supplier *Supplier) error {
	return getDBFromContext(ctx, s.db).Create(supplier).Error
}

func (s *store) UpdateSupplier(ctx context.Context, supplier *Supplier) error {
	return s.Transaction(ctx, func(ctx context.Context) error {
		db := getDBFromContext(ctx, s.db)
		var existing Supplier
		if err := db.First(&existing, supplier.ID).Error; err != nil {
			return notFound(err)
		}
		return db.Save(supplier).Error
	})
}

func (s *store) DeleteSupplier(ctx context.Context, id uint) error {
	return s.Transaction(ctx, func(ctx context.Context) error {
		db := getDBFromContext(ctx, s.db)
		inUse, err := referenced(db, id,
			reference{model: &Product{}, column: "supplier_id"},
			reference{model: &Purchase{}, column: "supplier_id"},
		)
		if err != nil {
			return err
		}
		if inUse {
			return ErrInUse
		}
		return db.Delete(&Supplier{}, id).Error
	})
}

func (s *store) GetSupplierByID(ctx context.Context, id uint) (*Supplier, error) {
	var supplier Supplier
	if err := getDBFromContext(ctx, s.db).First(&supplier, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &supplier, nil
}

func (s *store) ListSuppliers(ctx context.Context) ([]*Supplier, error) {
	var suppliers []*Supplier
	err := getDBFromContext(ctx, s.db).Order("id DESC").Find(&suppliers).Error
	return suppliers, err
}

func (s *store) SupplierOptions(ctx context.Context) ([]*Option, error) {
	var opts []*Option
	err := getDBFromContext(ctx, s.db).
		Model(&Supplier{}).
		Select("id, name").
		Order("name ASC, id ASC").
		Scan(&opts).Error
	return opts, err
}
