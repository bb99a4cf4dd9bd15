package session

import (
	"context"
	"errors"
	"time"

	"github.com/amoylab/inventory/internal/common/dto"
)

// ErrSessionNotFound is returned for unknown, ended or expired sessions
var ErrSessionNotFound = errors.New("session not found")

// Session is the server-side state bound to a login cookie
type Session struct {
	ID        string       `json:"id"`
	User      dto.UserInfo `json:"user"`
	CreatedAt time.Time    `json:"createdAt"`
	ExpiresAt time.Time    `json:"expiresAt"`
}

// Store persists sessions until they expire or are deleted
type Store interface {
	Save(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}
