package entity

import (
	"strconv"
	"strings"

	"github.com/amoylab/inventory/internal/i18n"
	"github.com/amoylab/inventory/internal/inventory/database"
	"github.com/shopspring/decimal"
)

// Values is the read side of a submitted form; url.Values satisfies it
type Values interface {
	Get(key string) string
}

// ParseID parses a record id from a form or query value
func ParseID(s string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil || id == 0 {
		return 0, i18n.ErrorInvalidID
	}
	return uint(id), nil
}

func parseInt(form Values, field string) (int, error) {
	s := strings.TrimSpace(form.Get(field))
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, i18n.ErrorInvalidNumber.WithParam("Field", field)
	}
	return n, nil
}

func parseDecimal(form Values, field string) (decimal.Decimal, error) {
	s := strings.TrimSpace(form.Get(field))
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, i18n.ErrorInvalidNumber.WithParam("Field", field)
	}
	return d.Round(2), nil
}

// parseRef reads a foreign key; empty or "0" means no reference
func parseRef(form Values, field string) (*uint, error) {
	s := strings.TrimSpace(form.Get(field))
	if s == "" || s == "0" {
		return nil, nil
	}
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return nil, i18n.ErrorInvalidNumber.WithParam("Field", field)
	}
	ref := uint(id)
	return &ref, nil
}

func requireRef(form Values, field string, missing *i18n.ErrorWithCode) (uint, error) {
	ref, err := parseRef(form, field)
	if err != nil {
		return 0, err
	}
	if ref == nil {
		return 0, missing
	}
	return *ref, nil
}

func requireDate(form Values, field string) (database.Date, error) {
	s := strings.TrimSpace(form.Get(field))
	if s == "" {
		return database.Date{}, i18n.ErrorDateRequired
	}
	d, err := database.ParseDate(s)
	if err != nil {
		return database.Date{}, i18n.ErrorDateInvalid.WithParam("Value", s)
	}
	return d, nil
}

func decodeSupplier(form Values) (*database.Supplier, error) {
	name := form.Get("name")
	if strings.TrimSpace(name) == "" {
		return nil, i18n.ErrorSupplierNameRequired
	}
	return &database.Supplier{
		Name:    name,
		Contact: form.Get("contact"),
		Address: form.Get("address"),
	}, nil
}

func decodeProduct(form Values) (*database.Product, error) {
	name := form.Get("name")
	if strings.TrimSpace(name) == "" {
		return nil, i18n.ErrorProductNameRequired
	}
	price, err := parseDecimal(form, "price")
	if err != nil {
		return nil, err
	}
	quantity, err := parseInt(form, "quantity")
	if err != nil {
		return nil, err
	}
	supplierID, err := parseRef(form, "supplier_id")
	if err != nil {
		return nil, err
	}
	return &database.Product{
		Name:        name,
		Description: form.Get("description"),
		Price:       price,
		Quantity:    quantity,
		SupplierID:  supplierID,
	}, nil
}

func decodePurchase(form Values) (*database.Purchase, error) {
	productID, err := requireRef(form, "product_id", i18n.ErrorProductRequired)
	if err != nil {
		return nil, err
	}
	supplierID, err := requireRef(form, "supplier_id", i18n.ErrorSupplierRequired)
	if err != nil {
		return nil, err
	}
	date, err := requireDate(form, "purchase_date")
	if err != nil {
		return nil, err
	}
	quantity, err := parseInt(form, "quantity")
	if err != nil {
		return nil, err
	}
	return &database.Purchase{
		ProductID:    productID,
		SupplierID:   supplierID,
		Quantity:     quantity,
		PurchaseDate: date,
	}, nil
}

func decodeOrder(form Values) (*database.Order, error) {
	productID, err := requireRef(form, "product_id", i18n.ErrorProductRequired)
	if err != nil {
		return nil, err
	}
	date, err := requireDate(form, "order_date")
	if err != nil {
		return nil, err
	}
	quantity, err := parseInt(form, "quantity")
	if err != nil {
		return nil, err
	}
	status := database.OrderStatus(strings.TrimSpace(form.Get("status")))
	if status == "" {
		status = database.OrderPending
	}
	if !status.Valid() {
		return nil, i18n.ErrorInvalidOrderStatus.WithParam("Status", string(status))
	}
	return &database.Order{
		ProductID: productID,
		Quantity:  quantity,
		OrderDate: date,
		Status:    status,
	}, nil
}
