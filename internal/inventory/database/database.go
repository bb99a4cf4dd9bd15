package database

import (
	"context"
)

// Database defines the methods for database operations.
type Database interface {
	// Close closes the database connection.
	Close() error

	// Transaction runs fn inside a transaction carried by ctx.
	// Nested calls join the outer transaction.
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error

	// CreateUser creates a new user.
	CreateUser(ctx context.Context, user *User) error
	// GetUserByUsername gets a user by username.
	GetUserByUsername(ctx context.Context, username string) (*User, error)

	CreateSupplier(ctx context.Context, supplier *Supplier) error
	// UpdateSupplier overwrites every field of an existing supplier.
	UpdateSupplier(ctx context.Context, supplier *Supplier) error
	// DeleteSupplier deletes a supplier no product or purchase references.
	DeleteSupplier(ctx context.Context, id uint) error
	GetSupplierByID(ctx context.Context, id uint) (*Supplier, error)
	ListSuppliers(ctx context.Context) ([]*Supplier, error)
	SupplierOptions(ctx context.Context) ([]*Option, error)

	CreateProduct(ctx context.Context, product *Product) error
	// UpdateProduct overwrites every field of an existing product, keeping
	// the stored image when product.ImagePath is nil.
	UpdateProduct(ctx context.Context, product *Product) error
	// DeleteProduct deletes a product no purchase or order references.
	DeleteProduct(ctx context.Context, id uint) error
	GetProductByID(ctx context.Context, id uint) (*Product, error)
	ListProducts(ctx context.Context) ([]*ProductRow, error)
	ProductOptions(ctx context.Context) ([]*Option, error)

	CreatePurchase(ctx context.Context, purchase *Purchase) error
	UpdatePurchase(ctx context.Context, purchase *Purchase) error
	DeletePurchase(ctx context.Context, id uint) error
	GetPurchaseByID(ctx context.Context, id uint) (*Purchase, error)
	ListPurchases(ctx context.Context) ([]*PurchaseRow, error)

	CreateOrder(ctx context.Context, order *Order) error
	UpdateOrder(ctx context.Context, order *Order) error
	DeleteOrder(ctx context.Context, id uint) error
	GetOrderByID(ctx context.Context, id uint) (*Order, error)
	ListOrders(ctx context.Context) ([]*OrderRow, error)

	// InventoryLevels lists every product's quantity ordered by name.
	InventoryLevels(ctx context.Context) ([]*InventoryLevel, error)
	// OrderStatusCounts counts orders grouped by status.
	OrderStatusCounts(ctx context.Context) ([]*StatusCount, error)
	// PurchaseQuantityByDay sums purchase quantities per day within [from, to].
	PurchaseQuantityByDay(ctx context.Context, from, to Date) ([]*DailyQuantity, error)
	// OrderQuantityByDay sums order quantities per day within [from, to].
	OrderQuantityByDay(ctx context.Context, from, to Date) ([]*DailyQuantity, error)
}
