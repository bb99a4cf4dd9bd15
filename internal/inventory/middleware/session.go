package middleware

import (
	"errors"
	"net/http"

	"github.com/amoylab/inventory/internal/common/dto"
	"github.com/amoylab/inventory/internal/session"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LoginPath is where unauthenticated requests are sent
const LoginPath = "/login"

// userKey is the gin context key holding the signed-in user
const userKey = "inventory.user"

// SessionGuard redirects to the login page unless the request carries a
// live session, and otherwise exposes the user through CurrentUser
func SessionGuard(logger *zap.Logger, sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := sessions.Resolve(c.Request.Context(), sessions.Token(c))
		if err != nil {
			if !errors.Is(err, session.ErrSessionNotFound) {
				logger.Warn("failed to resolve session", zap.Error(err))
			}
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		SetUser(c, user)
		c.Next()
	}
}

// SetUser binds user to the request
func SetUser(c *gin.Context, user *dto.UserInfo) {
	c.Set(userKey, user)
}

// CurrentUser returns the user bound by SessionGuard
func CurrentUser(c *gin.Context) (*dto.UserInfo, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*dto.UserInfo)
	return user, ok && user != nil
}

