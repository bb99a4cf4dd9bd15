package database

import (
	"context"
	"errors"
	"testing"

	"github.com/amoylab/inventory/internal/common/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) Database {
	t.Helper()
	db, err := NewSQLite(&config.DatabaseConfig{Type: "sqlite", DBName: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func ptr[T any](v T) *T { return &v }

func TestProductCreateAndGet(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	p := &Product{Name: "Widget", Description: "blue", Price: decimal.RequireFromString("9.99"), Quantity: 5}
	require.NoError(t, db.CreateProduct(ctx, p))
	require.NotZero(t, p.ID)

	got, err := db.GetProductByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Widget", got.Name)
	assert.Equal(t, "blue", got.Description)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("9.99")), got.Price.String())
	assert.Equal(t, 5, got.Quantity)
	assert.Nil(t, got.SupplierID)
	assert.Nil(t, got.ImagePath)

	rows, err := db.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, p.ID, rows[0].ID)
	assert.Nil(t, rows[0].SupplierName)

	_, err = db.GetProductByID(ctx, p.ID+100)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductUpdatePreservesImage(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	p := &Product{Name: "Lamp", Price: decimal.NewFromInt(20), Quantity: 1, ImagePath: ptr("uploads/img_a.png")}
	require.NoError(t, db.CreateProduct(ctx, p))

	upd := &Product{ID: p.ID, Name: "Desk Lamp", Price: decimal.RequireFromString("25.50"), Quantity: 3}
	require.NoError(t, db.UpdateProduct(ctx, upd))

	got, err := db.GetProductByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Desk Lamp", got.Name)
	assert.Equal(t, 3, got.Quantity)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("25.5")))
	require.NotNil(t, got.ImagePath)
	assert.Equal(t, "uploads/img_a.png", *got.ImagePath)

	upd.ImagePath = ptr("uploads/img_b.png")
	require.NoError(t, db.UpdateProduct(ctx, upd))
	got, err = db.GetProductByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "uploads/img_b.png", *got.ImagePath)

	err = db.UpdateProduct(ctx, &Product{ID: p.ID + 10, Name: "ghost"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListsAreNewestFirstWithNames(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	acme := &Supplier{Name: "Acme", Contact: "a@acme.test"}
	zeta := &Supplier{Name: "Zeta"}
	require.NoError(t, db.CreateSupplier(ctx, zeta))
	require.NoError(t, db.CreateSupplier(ctx, acme))

	bolt := &Product{Name: "Bolt", Price: decimal.NewFromInt(1), SupplierID: &acme.ID}
	anvil := &Product{Name: "Anvil", Price: decimal.NewFromInt(100), SupplierID: &zeta.ID}
	require.NoError(t, db.CreateProduct(ctx, bolt))
	require.NoError(t, db.CreateProduct(ctx, anvil))

	products, err := db.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Anvil", products[0].Name)
	assert.Equal(t, "Zeta", *products[0].SupplierName)
	assert.Equal(t, "Acme", *products[1].SupplierName)

	suppliers, err := db.ListSuppliers(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Acme", suppliers[0].Name)

	opts, err := db.SupplierOptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*Option{{ID: acme.ID, Name: "Acme"}, {ID: zeta.ID, Name: "Zeta"}}, opts)

	popts, err := db.ProductOptions(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Anvil", popts[0].Name)
	assert.Equal(t, "Bolt", popts[1].Name)

	pu := &Purchase{ProductID: bolt.ID, SupplierID: acme.ID, Quantity: 10, PurchaseDate: MustParseDate("2024-03-01")}
	require.NoError(t, db.CreatePurchase(ctx, pu))
	purchases, err := db.ListPurchases(ctx)
	require.NoError(t, err)
	require.Len(t, purchases, 1)
	assert.Equal(t, "Bolt", *purchases[0].ProductName)
	assert.Equal(t, "Acme", *purchases[0].SupplierName)
	assert.Equal(t, "2024-03-01", purchases[0].PurchaseDate.String())

	o := &Order{ProductID: anvil.ID, Quantity: 2, OrderDate: MustParseDate("2024-03-02")}
	require.NoError(t, db.CreateOrder(ctx, o))
	orders, err := db.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "Anvil", *orders[0].ProductName)
	assert.Equal(t, OrderPending, orders[0].Status)
}

func TestDeleteMissingIsNoop(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	assert.NoError(t, db.DeleteProduct(ctx, 999))
	assert.NoError(t, db.DeleteSupplier(ctx, 999))
	assert.NoError(t, db.DeletePurchase(ctx, 999))
	assert.NoError(t, db.DeleteOrder(ctx, 999))
}

func TestDeleteRestrictsReferencedRows(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	s := &Supplier{Name: "Acme"}
	require.NoError(t, db.CreateSupplier(ctx, s))
	p := &Product{Name: "Bolt", Price: decimal.NewFromInt(1)}
	require.NoError(t, db.CreateProduct(ctx, p))
	pu := &Purchase{ProductID: p.ID, SupplierID: s.ID, Quantity: 1, PurchaseDate: MustParseDate("2024-01-01")}
	require.NoError(t, db.CreatePurchase(ctx, pu))

	assert.ErrorIs(t, db.DeleteSupplier(ctx, s.ID), ErrInUse)
	assert.ErrorIs(t, db.DeleteProduct(ctx, p.ID), ErrInUse)

	require.NoError(t, db.DeletePurchase(ctx, pu.ID))
	require.NoError(t, db.DeleteProduct(ctx, p.ID))
	require.NoError(t, db.DeleteSupplier(ctx, s.ID))

	_, err := db.GetSupplierByID(ctx, s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPurchaseAndOrderUpdate(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	pu := &Purchase{ProductID: 1, SupplierID: 1, Quantity: 4, PurchaseDate: MustParseDate("2024-05-01"), AttachmentPath: ptr("uploads/att_x.pdf")}
	require.NoError(t, db.CreatePurchase(ctx, pu))
	require.NoError(t, db.UpdatePurchase(ctx, &Purchase{ID: pu.ID, ProductID: 2, SupplierID: 3, Quantity: 8, PurchaseDate: MustParseDate("2024-05-02")}))

	gotPu, err := db.GetPurchaseByID(ctx, pu.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(2), gotPu.ProductID)
	assert.Equal(t, 8, gotPu.Quantity)
	assert.Equal(t, "2024-05-02", gotPu.PurchaseDate.String())
	assert.Equal(t, "uploads/att_x.pdf", *gotPu.AttachmentPath)

	o := &Order{ProductID: 1, Quantity: 1, OrderDate: MustParseDate("2024-05-03")}
	require.NoError(t, db.CreateOrder(ctx, o))
	require.NoError(t, db.UpdateOrder(ctx, &Order{ID: o.ID, ProductID: 1, Quantity: 6, OrderDate: MustParseDate("2024-05-04"), Status: OrderCompleted}))

	gotO, err := db.GetOrderByID(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, OrderCompleted, gotO.Status)
	assert.Equal(t, 6, gotO.Quantity)
	assert.Nil(t, gotO.AttachmentPath)

	assert.ErrorIs(t, db.UpdateOrder(ctx, &Order{ID: 404, OrderDate: MustParseDate("2024-05-04")}), ErrNotFound)
	assert.ErrorIs(t, db.UpdatePurchase(ctx, &Purchase{ID: 404, PurchaseDate: MustParseDate("2024-05-04")}), ErrNotFound)
	assert.ErrorIs(t, db.UpdateSupplier(ctx, &Supplier{ID: 404, Name: "x"}), ErrNotFound)
}

func TestTransactionRollsBack(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := db.Transaction(ctx, func(ctx context.Context) error {
		require.NoError(t, db.CreateSupplier(ctx, &Supplier{Name: "Temp"}))
		// nested calls join the outer transaction
		return db.Transaction(ctx, func(ctx context.Context) error { return boom })
	})
	assert.ErrorIs(t, err, boom)

	suppliers, err := db.ListSuppliers(ctx)
	require.NoError(t, err)
	assert.Empty(t, suppliers)
}

func TestNewDatabaseUnsupported(t *testing.T) {
	_, err := NewDatabase(&config.DatabaseConfig{Type: "oracle"})
	assert.Error(t, err)

	db, err := NewDatabase(&config.DatabaseConfig{Type: "sqlite", DBName: ":memory:"})
	require.NoError(t, err)
	assert.NoError(t, db.Close())
}
