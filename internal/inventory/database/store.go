package database

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// store implements Database on top of any gorm dialect
type store struct {
	db *gorm.DB
}

func newStore(db *gorm.DB) (*store, error) {
	if err := db.AutoMigrate(&User{}, &Supplier{}, &Product{}, &Purchase{}, &Order{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return &store{db: db}, nil
}

// Close closes the database connection
func (s *store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// reference names a table column that points at another entity
type reference struct {
	model  any
	column string
}

// referenced reports whether any of refs still points at id
func referenced(db *gorm.DB, id uint, refs ...reference) (bool, error) {
	for _, r := range refs {
		var count int64
		if err := db.Model(r.model).Where(r.column+" = ?", id).Count(&count).Error; err != nil {
			return false, err
		}
		if count > 0 {
			return true, nil
		}
	}
	return false, nil
}

// notFound maps gorm's missing-row error to ErrNotFound
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *store) CreateUser(ctx context.Context, user *User) error {
	return getDBFromContext(ctx, s.db).Create(user).Error
}

func (s *store) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	var user User
	if err := getDBFromContext(ctx, s.db).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}
