package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amoylab/inventory/internal/auth/jwt"
	"github.com/amoylab/inventory/internal/common/cnst"
	"github.com/amoylab/inventory/internal/common/config"
	"github.com/amoylab/inventory/internal/common/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	tokens, err := jwt.NewService(jwt.Config{SecretKey: "0123456789abcdef0123456789abcdef", Duration: time.Hour})
	require.NoError(t, err)
	return NewManager(NewMemoryStore(), tokens, config.SessionConfig{CookieName: "sid", TTL: time.Hour})
}

func TestManagerLifecycle(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()
	user := &dto.UserInfo{ID: 3, Username: "carol", Role: "admin"}

	token, err := m.Start(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := m.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, *user, *got)

	require.NoError(t, m.End(ctx, token))
	_, err = m.Resolve(ctx, token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManagerRejectsBadTokens(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	_, err := m.Resolve(ctx, "")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = m.Resolve(ctx, "garbage")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.NoError(t, m.End(ctx, "garbage"))
}

func TestManagerRejectsTokenForAnotherUser(t *testing.T) {
	m := newTestManager(t)
	ctx := context.Background()

	token, err := m.Start(ctx, &dto.UserInfo{ID: 3, Username: "carol", Role: "normal"})
	require.NoError(t, err)
	claims, err := m.tokens.ValidateToken(token)
	require.NoError(t, err)

	forged, err := m.tokens.GenerateToken(claims.SessionID(), &dto.UserInfo{ID: 1, Username: "admin", Role: "admin"})
	require.NoError(t, err)
	_, err = m.Resolve(ctx, forged)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// the genuine token still resolves
	got, err := m.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "carol", got.Username)
}

func TestManagerCookies(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := newTestManager(t)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	m.SetCookie(c, "tok")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "sid", cookies[0].Name)
	assert.Equal(t, "tok", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sid", Value: "tok"})
	c2, _ := gin.CreateTestContext(httptest.NewRecorder())
	c2.Request = req
	assert.Equal(t, "tok", m.Token(c2))

	w3 := httptest.NewRecorder()
	c3, _ := gin.CreateTestContext(w3)
	c3.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "", m.Token(c3))
	m.ClearCookie(c3)
	require.Len(t, w3.Result().Cookies(), 1)
	assert.True(t, w3.Result().Cookies()[0].MaxAge < 0)
}

func TestNewStore(t *testing.T) {
	s, err := NewStore(zap.NewNop(), &config.SessionConfig{Type: cnst.SessionTypeMemory})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	_, err = NewStore(zap.NewNop(), &config.SessionConfig{Type: "file"})
	assert.Error(t, err)
}
