package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/amoylab/inventory/internal/auth/jwt"
	"github.com/amoylab/inventory/internal/common/config"
	"github.com/amoylab/inventory/internal/common/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Manager issues, resolves and ends login sessions. The cookie carries a
// signed token naming the session; the store holds the user it belongs to,
// so ending a session invalidates the cookie even before it expires.
type Manager struct {
	store  Store
	tokens *jwt.Service
	cfg    config.SessionConfig
	now    func() time.Time
}

// NewManager creates a Manager
func NewManager(store Store, tokens *jwt.Service, cfg config.SessionConfig) *Manager {
	return &Manager{store: store, tokens: tokens, cfg: cfg, now: time.Now}
}

// Start creates a session for user and returns the signed cookie value
func (m *Manager) Start(ctx context.Context, user *dto.UserInfo) (string, error) {
	now := m.now()
	s := &Session{
		ID:        uuid.NewString(),
		User:      *user,
		CreatedAt: now,
		ExpiresAt: now.Add(m.cfg.TTL),
	}
	if err := m.store.Save(ctx, s); err != nil {
		return "", fmt.Errorf("failed to save session: %w", err)
	}

	token, err := m.tokens.GenerateToken(s.ID, user)
	if err != nil {
		_ = m.store.Delete(ctx, s.ID)
		return "", fmt.Errorf("failed to sign session: %w", err)
	}
	return token, nil
}

// Resolve returns the user bound to token
func (m *Manager) Resolve(ctx context.Context, token string) (*dto.UserInfo, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}
	claims, err := m.tokens.ValidateToken(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSessionNotFound, err)
	}

	s, err := m.store.Get(ctx, claims.SessionID())
	if err != nil {
		return nil, err
	}
	// the token must name the user the session was opened for
	if signed := claims.User(); signed.ID != s.User.ID || signed.Username != s.User.Username {
		return nil, ErrSessionNotFound
	}
	user := s.User
	return &user, nil
}

// End destroys the session named by token. Invalid tokens are ignored.
func (m *Manager) End(ctx context.Context, token string) error {
	claims, err := m.tokens.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrExpiredToken) || errors.Is(err, jwt.ErrInvalidToken) {
			return nil
		}
		return err
	}
	return m.store.Delete(ctx, claims.SessionID())
}

// Token reads the session cookie from the request
func (m *Manager) Token(c *gin.Context) string {
	token, err := c.Cookie(m.cfg.CookieName)
	if err != nil {
		return ""
	}
	return token
}

// SetCookie writes the session cookie
func (m *Manager) SetCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cfg.CookieName, token, int(m.cfg.TTL.Seconds()), "/", "", m.cfg.Secure, true)
}

// ClearCookie expires the session cookie
func (m *Manager) ClearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cfg.CookieName, "", -1, "/", "", m.cfg.Secure, true)
}
