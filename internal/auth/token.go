// Package auth issues and verifies the signed session tokens that the
// API accepts in the Authorization header.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"harmony-store/internal/models"
)

var (
	ErrUnauthenticated = errors.New("missing or invalid token")
	ErrForbidden       = errors.New("admin access required")
)

// TokenTTL is how long an issued token stays valid.
const TokenTTL = 24 * time.Hour

// Identity is the verified content of a session token.
type Identity struct {
	UserID  string
	Email   string
	IsAdmin bool
}

// RequireAdmin fails with ErrForbidden unless the identity carries the
// admin flag.
func (id Identity) RequireAdmin() error {
	if !id.IsAdmin {
		return ErrForbidden
	}
	return nil
}

type claims struct {
	UserID  string `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies session tokens with a shared HMAC secret.
// Stateless: nothing is persisted server-side, tokens die by expiry.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// Issue encodes the user's identity and role into a signed, time-limited
// token.
func (i *Issuer) Issue(user *models.User) (string, error) {
	now := time.Now()
	c := claims{
		UserID:  user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the token's signature and expiry and returns the identity
// it encodes. Any failure is reported as ErrUnauthenticated.
func (i *Issuer) Verify(tokenString string) (Identity, error) {
	if tokenString == "" {
		return Identity{}, ErrUnauthenticated
	}

	token, err := jwt.ParseWithClaims(tokenString, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, ErrUnauthenticated
	}

	c, ok := token.Claims.(*claims)
	if !ok {
		return Identity{}, ErrUnauthenticated
	}

	return Identity{UserID: c.UserID, Email: c.Email, IsAdmin: c.IsAdmin}, nil
}
