package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
	ErrIssuer      = errors.New("jwtx: issuer mismatch")

	// ErrShortSecret rejects signing keys below 256 bits.
	ErrShortSecret = errors.New("jwtx: signing secret must be at least 32 bytes")
)

// Issuer signs claims into a compact bearer token.
type Issuer interface {
	Issue(c Claims) (string, error)
}

// Verifier validates a bearer token and gives back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// HS256 signs and verifies tokens with a single process-wide HMAC-SHA256
// secret, loaded once at startup. Rotating the secret invalidates every
// outstanding token; there is no mid-flight migration.
type HS256 struct {
	secret []byte
	issuer string
	leeway time.Duration
}

// NewHS256 builds an HS256 signer/verifier. The issuer is stamped into and
// enforced on every token; pass a zero leeway unless clock skew is expected.
func NewHS256(secret []byte, issuer string, leeway time.Duration) (*HS256, error) {
	if len(secret) < 32 {
		return nil, ErrShortSecret
	}
	return &HS256{secret: secret, issuer: issuer, leeway: leeway}, nil
}

// Issue signs the claims and returns the compact token string.
func (s *HS256) Issue(c Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
}

// Verify parses and validates a compact token. It fails with ErrMalformed for
// structurally broken input, ErrInvalidSig for tampered or foreign tokens,
// ErrExpired/ErrNotYetValid for time-window violations and ErrIssuer when the
// token was minted for a different issuer.
func (s *HS256) Verify(token string) (Claims, error) {
	var claims Claims

	parsed, err := jwt.ParseWithClaims(token, &claims,
		func(t *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(s.leeway),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return Claims{}, ErrMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrInvalidSig
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrExpired
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return Claims{}, ErrNotYetValid
		default:
			return Claims{}, ErrMalformed
		}
	}
	if !parsed.Valid {
		return Claims{}, ErrInvalidSig
	}

	if s.issuer != "" && claims.Issuer != s.issuer {
		return Claims{}, ErrIssuer
	}

	return claims, nil
}
