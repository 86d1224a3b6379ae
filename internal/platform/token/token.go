// Package token issues and verifies the bearer tokens that carry an owner
// identity between login and subsequent API calls. Tokens are JWTs signed
// with HMAC-SHA256 using the shared secret from configuration.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ekocak/todo-service/internal/domain"
	"github.com/ekocak/todo-service/internal/platform/config"
	"github.com/ekocak/todo-service/internal/ports"
)

// Compile-time interface check.
var _ ports.IdentityResolver = (*Manager)(nil)

// Claims extends the registered JWT claims with the owner's user ID.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
}

// Manager issues and resolves HS256-signed bearer tokens.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager creates a token manager from the auth configuration.
func NewManager(cfg *config.AuthConfig) *Manager {
	return &Manager{
		secret: []byte(cfg.Secret),
		ttl:    cfg.TokenTTL,
	}
}

// Issue signs a new token carrying userID, valid for the configured TTL.
func (m *Manager) Issue(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		UserID: userID,
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Resolve verifies the credential and returns the owner ID it carries.
// Every verification failure — malformed token, wrong signing method, bad
// signature, expiry — collapses into domain.ErrUnauthorized so callers never
// leak why a credential was rejected.
func (m *Manager) Resolve(credential string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(credential, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", fmt.Errorf("token expired: %w", domain.ErrUnauthorized)
		}
		return "", fmt.Errorf("invalid token: %w", domain.ErrUnauthorized)
	}

	if !token.Valid || claims.UserID == "" {
		return "", fmt.Errorf("invalid token claims: %w", domain.ErrUnauthorized)
	}

	return claims.UserID, nil
}
