package database

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// InitSuperAdmin creates the bootstrap administrator if it doesn't exist.
// It returns true when a user was created.
func InitSuperAdmin(ctx context.Context, db Database, username, password string) (bool, error) {
	if username == "" || password == "" {
		return false, nil
	}

	_, err := db.GetUserByUsername(ctx, username)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return false, err
	}

	if err := CreateUserWithPassword(ctx, db, username, password, RoleAdmin); err != nil {
		return false, err
	}
	return true, nil
}

// CreateUserWithPassword hashes password with bcrypt and stores a new active user
func CreateUserWithPassword(ctx context.Context, db Database, username, password string, role UserRole) error {
	if !role.Valid() {
		return fmt.Errorf("invalid role %q", role)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return db.CreateUser(ctx, &User{
		Username: username,
		Password: string(hashed),
		Role:     role,
		// set explicitly: gorm omits zero values for columns with a default
		IsActive: true,
	})
}
