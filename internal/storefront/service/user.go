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

// UserService handles the customer account namespace: signup, login, profile
// lookup and password change.
type UserService struct {
	Store    store.Store
	Tokens   jwtx.Issuer
	Issuer   string
	TokenTTL time.Duration
}

// SignUp hashes the password, persists the user and returns a bearer token
// for the fresh account. A taken email fails with ErrEmailExists.
func (s *UserService) SignUp(ctx context.Context, firstName, lastName, email, password string) (AuthResult, error) {
	log := slogx.FromContext(ctx)

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return AuthResult{}, err
	}

	user, err := s.Store.Users().Create(ctx, domain.Account{
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

	token, err := issueBearer(s.Tokens, s.Issuer, s.TokenTTL, user, domain.UserTypeUser)
	if err != nil {
		return AuthResult{}, err
	}

	log.Info("user account created", "user_id", user.ID)
	return AuthResult{Token: token, Account: user}, nil
}

// Login verifies the credentials and issues a bearer token. Unknown email and
// wrong password both fail with ErrAuthFailed; a known but banned account
// fails with ErrAccountBanned. No failure path signs a token.
func (s *UserService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	log := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return AuthResult{}, ErrAuthFailed
		}
		return AuthResult{}, err
	}

	if user.Banned {
		log.Info("login rejected for banned user", "user_id", user.ID)
		return AuthResult{}, ErrAccountBanned
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		log.Info("user login rejected", "user_id", user.ID)
		return AuthResult{}, ErrAuthFailed
	}

	token, err := issueBearer(s.Tokens, s.Issuer, s.TokenTTL, user, domain.UserTypeUser)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Token: token, Account: user}, nil
}

// Profile resolves the caller's own account from their token claims.
func (s *UserService) Profile(ctx context.Context, userID string) (domain.Account, error) {
	user, err := s.Store.Users().GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Account{}, ErrNotFound
		}
		return domain.Account{}, err
	}
	return user, nil
}

// ChangePassword verifies the old password before writing a hash of the new
// one. A wrong old password fails with ErrAuthFailed and leaves the stored
// hash untouched.
func (s *UserService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	user, err := s.Store.Users().GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := cryptox.VerifyPassword(oldPassword, user.PasswordHash); err != nil {
		return ErrAuthFailed
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := s.Store.Users().UpdatePasswordHash(ctx, user.ID, hash); err != nil {
		return err
	}

	slogx.FromContext(ctx).Info("user password changed", "user_id", user.ID)
	return nil
}
