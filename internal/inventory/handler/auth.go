package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/amoylab/inventory/internal/auth"
	"github.com/amoylab/inventory/internal/common/dto"
	"github.com/amoylab/inventory/internal/i18n"
	"github.com/amoylab/inventory/internal/inventory/middleware"
	"github.com/amoylab/inventory/internal/session"
	"github.com/amoylab/inventory/pkg/metrics"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves the login and logout endpoints
type AuthHandler struct {
	logger   *zap.Logger
	verifier *auth.Verifier
	sessions *session.Manager
	metrics  *metrics.Metrics
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(logger *zap.Logger, verifier *auth.Verifier, sessions *session.Manager, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{
		logger:   logger.Named("handler.auth"),
		verifier: verifier,
		sessions: sessions,
		metrics:  m,
	}
}

// LoginPage shows the login notice, or sends signed-in users home
func (h *AuthHandler) LoginPage(c *gin.Context) {
	if _, err := h.sessions.Resolve(c.Request.Context(), h.sessions.Token(c)); err == nil {
		c.Redirect(http.StatusFound, "/")
		return
	}
	i18n.Success(i18n.NoticeLogin).Send(c)
}

// Login verifies the submitted credentials and starts a session
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.metrics.LoginAttempt(false)
		i18n.RespondWithError(c, i18n.ErrorInvalidCredentials)
		return
	}

	username := strings.TrimSpace(req.Username)
	user, err := h.verifier.Verify(c.Request.Context(), username, req.Password)
	if err != nil {
		h.metrics.LoginAttempt(false)
		if errors.Is(err, auth.ErrInvalidCredentials) {
			i18n.RespondWithError(c, i18n.ErrorInvalidCredentials)
			return
		}
		h.logger.Error("failed to verify credentials", zap.String("username", username), zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrorDatabase)
		return
	}

	token, err := h.sessions.Start(c.Request.Context(), user)
	if err != nil {
		h.logger.Error("failed to start session", zap.String("username", user.Username), zap.Error(err))
		i18n.RespondWithError(c, i18n.ErrorInternal)
		return
	}

	h.metrics.LoginAttempt(true)
	h.logger.Info("user logged in", zap.String("username", user.Username))
	h.sessions.SetCookie(c, token)
	c.Redirect(http.StatusFound, "/")
}

// Logout ends the session and clears the cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	if token := h.sessions.Token(c); token != "" {
		if err := h.sessions.End(c.Request.Context(), token); err != nil {
			h.logger.Warn("failed to end session", zap.Error(err))
		}
	}
	h.sessions.ClearCookie(c)
	c.Redirect(http.StatusFound, middleware.LoginPath)
}
