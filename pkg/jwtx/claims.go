package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the default bearer token lifetime. Sessions are the
// token itself (no server-side state), so this bounds how long a login lasts.
const DefaultTokenTTL = 24 * time.Hour

// Claims are the bearer token claims shared by the admin and user namespaces.
// The account id travels in the registered "sub" claim.
type Claims struct {
	jwt.RegisteredClaims

	// Email of the authenticated account.
	Email string `json:"email,omitempty"`

	// UserType scopes the token to one account namespace: "admin" or "user".
	UserType string `json:"user_type,omitempty"`
}

// NewClaims builds minimally-correct claims for an account.
func NewClaims(id, email, userType, issuer string, ttl time.Duration, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   id,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email:    email,
		UserType: userType,
	}
}

// AccountID returns the account id carried in the subject claim.
func (c *Claims) AccountID() string { return c.Subject }

// ValidateExpiry ensures the token hasn't expired (exp) and isn't used
// before it is valid (nbf).
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}
	return nil
}
