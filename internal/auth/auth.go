package auth

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"
	"sync"

	"github.com/amoylab/inventory/internal/common/dto"
	"github.com/amoylab/inventory/internal/inventory/database"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers every sign-in failure so callers cannot
// tell an unknown user from a wrong password or a disabled account
var ErrInvalidCredentials = errors.New("invalid username or password")

var (
	compareHash = bcrypt.CompareHashAndPassword

	dummyOnce sync.Once
	dummyHash []byte
)

// burnCompare spends the cost of one bcrypt comparison so that rejecting an
// unknown or disabled account takes as long as a wrong password
func burnCompare(password string) {
	dummyOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("inventory"), bcrypt.DefaultCost)
	})
	_ = compareHash(dummyHash, []byte(password))
}

// UserFinder looks users up by name
type UserFinder interface {
	GetUserByUsername(ctx context.Context, username string) (*database.User, error)
}

// Verifier checks a username and password against stored one-way hashes
type Verifier struct {
	logger *zap.Logger
	users  UserFinder
}

// NewVerifier creates a Verifier backed by users
func NewVerifier(logger *zap.Logger, users UserFinder) *Verifier {
	return &Verifier{logger: logger.Named("auth"), users: users}
}

// Verify returns the identity of an active user whose password matches
func (v *Verifier) Verify(ctx context.Context, username, password string) (*dto.UserInfo, error) {
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := v.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			v.logger.Debug("unknown user", zap.String("username", username))
			burnCompare(password)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		v.logger.Debug("inactive user", zap.String("username", username))
		burnCompare(password)
		return nil, ErrInvalidCredentials
	}
	if !isBcrypt(user.Password) {
		burnCompare(password)
	}
	if !CheckPassword(user.Password, password) {
		v.logger.Debug("password mismatch", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}

	return &dto.UserInfo{ID: user.ID, Username: user.Username, Role: string(user.Role)}, nil
}

// CheckPassword compares password with a bcrypt hash, or with a legacy
// unsalted SHA-256 hex digest
func CheckPassword(stored, password string) bool {
	if isBcrypt(stored) {
		return compareHash([]byte(stored), []byte(password)) == nil
	}
	sum := sha256.Sum256([]byte(password))
	want := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(strings.ToLower(stored)), []byte(want)) == 1
}

func isBcrypt(hash string) bool {
	return strings.HasPrefix(hash, "$2a$") || strings.HasPrefix(hash, "$2b$") || strings.HasPrefix(hash, "$2y$")
}
