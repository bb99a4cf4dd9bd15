package entity

import (
	"context"
	"fmt"

	"github.com/amoylab/inventory/internal/inventory/database"
)

// Repository adapts one entity kind's storage to form-driven operations.
// attachment is the stored path of a newly uploaded file, or nil.
type Repository interface {
	Kind() Kind
	Create(ctx context.Context, form Values, attachment *string) (uint, error)
	Update(ctx context.Context, id uint, form Values, attachment *string) error
	Delete(ctx context.Context, id uint) error
	Get(ctx context.Context, id uint) (any, error)
	List(ctx context.Context) (any, error)
}

// Registry maps every Kind to its repository
type Registry struct {
	repos map[Kind]Repository
}

// NewRegistry builds the repositories for all kinds on top of db
func NewRegistry(db database.Database) *Registry {
	return &Registry{repos: map[Kind]Repository{
		KindProduct:  &productRepository{db: db},
		KindSupplier: &supplierRepository{db: db},
		KindPurchase: &purchaseRepository{db: db},
		KindOrder:    &orderRepository{db: db},
	}}
}

// Repository returns the repository for k
func (r *Registry) Repository(k Kind) (Repository, error) {
	repo, ok := r.repos[k]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return repo, nil
}

type productRepository struct {
	db database.Database
}

func (r *productRepository) Kind() Kind { return KindProduct }

func (r *productRepository) Create(ctx context.Context, form Values, attachment *string) (uint, error) {
	p, err := decodeProduct(form)
	if err != nil {
		return 0, err
	}
	p.ImagePath = attachment
	if err := r.db.CreateProduct(ctx, p); err != nil {
		return 0, err
	}
	return p.ID, nil
}

func (r *productRepository) Update(ctx context.Context, id uint, form Values, attachment *string) error {
	p, err := decodeProduct(form)
	if err != nil {
		return err
	}
	p.ID = id
	p.ImagePath = attachment
	return r.db.UpdateProduct(ctx, p)
}

func (r *productRepository) Delete(ctx context.Context, id uint) error {
	return r.db.DeleteProduct(ctx, id)
}

func (r *productRepository) Get(ctx context.Context, id uint) (any, error) {
	return r.db.GetProductByID(ctx, id)
}

func (r *productRepository) List(ctx context.Context) (any, error) {
	return r.db.ListProducts(ctx)
}

type supplierRepository struct {
	db database.Database
}

func (r *supplierRepository) Kind() Kind { return KindSupplier }

func (r *supplierRepository) Create(ctx context.Context, form Values, _ *string) (uint, error) {
	s, err := decodeSupplier(form)
	if err != nil {
		return 0, err
	}
	if err := r.db.CreateSupplier(ctx, s); err != nil {
		return 0, err
	}
	return s.ID, nil
}

func (r *supplierRepository) Update(ctx context.Context, id uint, form Values, _ *string) error {
	s, err := decodeSupplier(form)
	if err != nil {
		return err
	}
	s.ID = id
	return r.db.UpdateSupplier(ctx, s)
}

func (r *supplierRepository) Delete(ctx context.Context, id uint) error {
	return r.db.DeleteSupplier(ctx, id)
}

func (r *supplierRepository) Get(ctx context.Context, id uint) (any, error) {
	return r.db.GetSupplierByID(ctx, id)
}

func (r *supplierRepository) List(ctx context.Context) (any, error) {
	return r.db.ListSuppliers(ctx)
}

type purchaseRepository struct {
	db database.Database
}

func (r *purchaseRepository) Kind() Kind { return KindPurchase }

func (r *purchaseRepository) Create(ctx context.Context, form Values, attachment *string) (uint, error) {
	p, err := decodePurchase(form)
	if err != nil {
		return 0, err
	}
	p.AttachmentPath = attachment
	if err := r.db.CreatePurchase(ctx, p); err != nil {
		return 0, err
	}
	return p.ID, nil
}

func (r *purchaseRepository) Update(ctx context.Context, id uint, form Values, attachment *string) error {
	p, err := decodePurchase(form)
	if err != nil {
		return err
	}
	p.ID = id
	p.AttachmentPath = attachment
	return r.db.UpdatePurchase(ctx, p)
}

func (r *purchaseRepository) Delete(ctx context.Context, id uint) error {
	return r.db.DeletePurchase(ctx, id)
}

func (r *purchaseRepository) Get(ctx context.Context, id uint) (any, error) {
	return r.db.GetPurchaseByID(ctx, id)
}

func (r *purchaseRepository) List(ctx context.Context) (any, error) {
	return r.db.ListPurchases(ctx)
}

type orderRepository struct {
	db database.Database
}

func (r *orderRepository) Kind() Kind { return KindOrder }

func (r *orderRepository) Create(ctx context.Context, form Values, attachment *string) (uint, error) {
	o, err := decodeOrder(form)
	if err != nil {
		return 0, err
	}
	o.AttachmentPath = attachment
	if err := r.db.CreateOrder(ctx, o); err != nil {
		return 0, err
	}
	return o.ID, nil
}

func (r *orderRepository) Update(ctx context.Context, id uint, form Values, attachment *string) error {
	o, err := decodeOrder(form)
	if err != nil {
		return err
	}
	o.ID = id
	o.AttachmentPath = attachment
	return r.db.UpdateOrder(ctx, o)
}

func (r *orderRepository) Delete(ctx context.Context, id uint) error {
	return r.db.DeleteOrder(ctx, id)
}

func (r *orderRepository) Get(ctx context.Context, id uint) (any, error) {
	return r.db.GetOrderByID(ctx, id)
}

func (r *orderRepository) List(ctx context.Context) (any, error) {
	return r.db.ListOrders(ctx)
}
