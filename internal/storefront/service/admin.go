package service

import (
	"context"
	"errors"
	"time"

	"github.com/openmercato/storefront/internal/storefront/domain"
	"github.com/openmercato/storefront/internal/storefront/store"
	"github.com/openmercato/storefront/pkg/cryptox"
	"github.com/openmercato/storefront/pkg/jwtx"
	"github.com/openmercato/storefront/pkg/slogx"
)

// AdminService handles the admin account namespace: signup, login, profile
// lookup, user moderation and startup seeding.
type AdminService struct {
	Store    store.Store
	Tokens   jwtx.Issuer
	Issuer   string
	TokenTTL time.Duration
}

// SignUp hashes the password, persists the admin and returns a bearer token
// for the fresh account. A taken email fails with ErrEmailExists.
func (s *AdminService) SignUp(ctx context.Context, firstName, lastName, email, password string) (AuthResult, error) {
	log := slogx.FromContext(ctx)

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return AuthResult{}, err
	}

	admin, err := s.Store.Admins().Create(ctx, domain.Account{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return AuthResult{}, ErrEmailExists
		}
		return AuthResult{}, err
	}

	token, err := issueBearer(s.Tokens, s.Issuer, s.TokenTTL, admin, domain.UserTypeAdmin)
	if err != nil {
		return AuthResult{}, err
	}

	log.Info("admin account created", "admin_id", admin.ID)
	return AuthResult{Token: token, Account: admin}, nil
}

// Login verifies the credentials and issues a bearer token. Unknown email and
// wrong password both fail with ErrAuthFailed, and neither path signs a token.
func (s *AdminService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	log := slogx.FromContext(ctx)

	admin, err := s.Store.Admins().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return AuthResult{}, ErrAuthFailed
		}
		return AuthResult{}, err
	}

	if err := cryptox.VerifyPassword(password, admin.PasswordHash); err != nil {
		log.Info("admin login rejected", "admin_id", admin.ID)
		return AuthResult{}, ErrAuthFailed
	}

	token, err := issueBearer(s.Tokens, s.Issuer, s.TokenTTL, admin, domain.UserTypeAdmin)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Token: token, Account: admin}, nil
}

// Profile resolves the caller's own account from their token claims.
func (s *AdminService) Profile(ctx context.Context, adminID string) (domain.Account, error) {
	admin, err := s.Store.Admins().GetByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Account{}, ErrNotFound
		}
		return domain.Account{}, err
	}
	return admin, nil
}

// SetUserBanned flips the moderation flag on a user account. A banned user
// cannot log in until the flag is cleared; outstanding tokens keep working
// until they expire (stateless sessions, no revocation list).
func (s *AdminService) SetUserBanned(ctx context.Context, userID string, banned bool) error {
	if err := s.Store.Users().SetBanned(ctx, userID, banned); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	slogx.FromContext(ctx).Info("user moderation flag updated",
		"user_id", userID, "banned", banned)
	return nil
}
