package database

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserRole represents the role of a user
type UserRole string

const (
	// RoleAdmin represents an admin user
	RoleAdmin UserRole = "admin"
	// RoleNormal represents a normal user
	RoleNormal UserRole = "normal"
)

// Valid reports whether r is a known role
func (r UserRole) Valid() bool {
	return r == RoleAdmin || r == RoleNormal
}

// User represents an operator of the inventory system
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Username  string    `json:"username" gorm:"type:varchar(50);uniqueIndex"`
	Password  string    `json:"-" gorm:"not null"` // Password is not exposed in JSON
	Role      UserRole  `json:"role" gorm:"type:varchar(20);not null;default:'normal'"`
	IsActive  bool      `json:"isActive" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Supplier represents a vendor products are bought from
type Supplier struct {
	ID      uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name    string `json:"name" gorm:"type:varchar(255);not null"`
	Contact string `json:"contact" gorm:"type:varchar(255)"`
	Address string `json:"address" gorm:"type:text"`
}

// Product represents a stocked item
type Product struct {
	ID          uint            `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string          `json:"name" gorm:"type:varchar(255);not null"`
	Description string          `json:"description" gorm:"type:text"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Quantity    int             `json:"quantity" gorm:"not null"`
	SupplierID  *uint           `json:"supplierId" gorm:"index"`
	ImagePath   *string         `json:"imagePath" gorm:"type:varchar(255)"`
}

// Purchase represents stock bought from a supplier
type Purchase struct {
	ID             uint    `json:"id" gorm:"primaryKey;autoIncrement"`
	ProductID      uint    `json:"productId" gorm:"not null;index"`
	SupplierID     uint    `json:"supplierId" gorm:"not null;index"`
	Quantity       int     `json:"quantity" gorm:"not null"`
	PurchaseDate   Date    `json:"purchaseDate" gorm:"type:date;not null;index"`
	AttachmentPath *string `json:"attachmentPath" gorm:"type:varchar(255)"`
}

// OrderStatus is the lifecycle state of an order
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// OrderStatuses lists every valid status in display order
var OrderStatuses = []OrderStatus{OrderPending, OrderCompleted, OrderCancelled}

// Valid reports whether s is one of the known statuses
func (s OrderStatus) Valid() bool {
	for _, v := range OrderStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Order represents stock sold
type Order struct {
	ID             uint        `json:"id" gorm:"primaryKey;autoIncrement"`
	ProductID      uint        `json:"productId" gorm:"not null;index"`
	Quantity       int         `json:"quantity" gorm:"not null"`
	OrderDate      Date        `json:"orderDate" gorm:"type:date;not null;index"`
	Status         OrderStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	AttachmentPath *string     `json:"attachmentPath" gorm:"type:varchar(255)"`
}

// ProductRow is a product listed with its supplier's name
type ProductRow struct {
	Product
	SupplierName *string `json:"supplierName"`
}

// PurchaseRow is a purchase listed with product and supplier names
type PurchaseRow struct {
	Purchase
	ProductName  *string `json:"productName"`
	SupplierName *string `json:"supplierName"`
}

// OrderRow is an order listed with its product's name
type OrderRow struct {
	Order
	ProductName *string `json:"productName"`
}

// Option is an (id, name) pair for form dropdowns
type Option struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// InventoryLevel is a product's name with its on-hand quantity
type InventoryLevel struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// StatusCount is the number of orders in one status
type StatusCount struct {
	Status OrderStatus `json:"status"`
	Count  int64       `json:"count"`
}

// DailyQuantity is the summed quantity of rows dated on one day
type DailyQuantity struct {
	Day      Date
	Quantity int64
}
