package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/amoylab/inventory/internal/common/cnst"
	"github.com/amoylab/inventory/internal/common/dto"
	"github.com/golang-jwt/jwt/v5"
)

// minSecretLen is the shortest HS256 secret accepted
const minSecretLen = 32

var (
	ErrInvalidToken    = errors.New("invalid token")
	ErrExpiredToken    = errors.New("token has expired")
	ErrEmptySecretKey  = errors.New("secret key cannot be empty")
	ErrWeakSecretKey   = fmt.Errorf("secret key must be at least %d characters", minSecretLen)
	ErrInvalidDuration = errors.New("duration must be positive")
)

// Claims carries the signed-in user. The registered "jti" claim holds
// the id of the server-side session, so a token is only as valid as
// the session it points to.
type Claims struct {
	UserID   uint   `json:"uid"`
	Username string `json:"name"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// SessionID returns the id of the server-side session
func (c *Claims) SessionID() string {
	return c.ID
}

// User returns the identity recorded in the claims
func (c *Claims) User() *dto.UserInfo {
	return &dto.UserInfo{ID: c.UserID, Username: c.Username, Role: c.Role}
}

// Config represents the JWT configuration
type Config struct {
	SecretKey string        `yaml:"secret_key"`
	Duration  time.Duration `yaml:"duration"`
}

// Service signs and validates session cookies
type Service struct {
	secret   []byte
	duration time.Duration
	parser   *jwt.Parser
	now      func() time.Time
}

// NewService creates a new JWT service
func NewService(config Config) (*Service, error) {
	switch {
	case config.SecretKey == "":
		return nil, ErrEmptySecretKey
	case len(config.SecretKey) < minSecretLen:
		return nil, ErrWeakSecretKey
	case config.Duration <= 0:
		return nil, ErrInvalidDuration
	}

	s := &Service{
		secret:   []byte(config.SecretKey),
		duration: config.Duration,
		now:      time.Now,
	}
	s.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(cnst.AppName),
		jwt.WithTimeFunc(func() time.Time { return s.now() }),
	)
	return s, nil
}

// GenerateToken signs a token binding sessionID to user
func (s *Service) GenerateToken(sessionID string, user *dto.UserInfo) (string, error) {
	now := s.now()
	claims := &Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			Issuer:    cnst.AppName,
			Subject:   user.Username,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// ValidateToken checks signature, issuer and lifetime, and requires a session id
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	case claims.ID == "":
		return nil, ErrInvalidToken
	}
	return claims, nil
}
