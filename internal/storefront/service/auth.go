package service

import (
	"time"

	"github.com/openmercato/storefront/internal/storefront/domain"
	"github.com/openmercato/storefront/pkg/jwtx"
)

// AuthResult is what a successful signup or login hands back: a ready-to-use
// Authorization header value and the account it belongs to. The account still
// carries its password hash here; the HTTP boundary strips it before
// serialization.
type AuthResult struct {
	Token   string
	Account domain.Account
}

// issueBearer signs claims for the account and prefixes the wire scheme.
func issueBearer(
	tokens jwtx.Issuer,
	issuer string,
	ttl time.Duration,
	a domain.Account,
	userType domain.UserType,
) (string, error) {
	claims := jwtx.NewClaims(a.ID, a.Email, string(userType), issuer, ttl, time.Now().UTC())
	token, err := tokens.Issue(claims)
	if err != nil {
		return "", err
	}
	return "Bearer " + token, nil
}
