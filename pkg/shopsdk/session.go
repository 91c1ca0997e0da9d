package shopsdk

import (
	"context"
	"net/http"
)

type sessionKind int

const (
	sessionUser sessionKind = iota
	sessionAdmin
)

// Session is an authenticated client bound to one bearer token. Tokens are
// stateless and expire server-side; there is no refresh, callers log in again
// when a session expires.
type Session struct {
	client  *SDKClient
	token   string
	account Account
	kind    sessionKind
}

// Token returns the raw Authorization header value, including the "Bearer "
// prefix.
func (s *Session) Token() string {
	return s.token
}

// Account returns the account this session was issued for, as returned at
// signup or login time.
func (s *Session) Account() Account {
	return s.account
}

// Profile fetches the caller's own account. Works for both admin and user
// sessions, each against its own namespace.
func (s *Session) Profile(ctx context.Context) (*Account, error) {
	path := "/user/profile"
	if s.isAdmin() {
		path = "/admin/profile"
	}

	resp, err := s.client.doRequest(ctx, http.MethodGet, path, nil, s.token)
	if err != nil {
		return nil, err
	}

	var account Account
	if err := decodeJSON(resp, &account, http.StatusOK); err != nil {
		return nil, err
	}
	return &account, nil
}

// ChangePassword rotates the password on a user session.
func (s *Session) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	resp, err := s.client.doRequest(ctx, http.MethodPost, "/user/change-password",
		ChangePasswordRequest{OldPassword: oldPassword, NewPassword: newPassword}, s.token)
	if err != nil {
		return err
	}

	var out SuccessResponse
	return decodeJSON(resp, &out, http.StatusOK)
}

// CreateProduct adds a catalog entry on an admin session.
func (s *Session) CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error) {
	resp, err := s.client.doRequest(ctx, http.MethodPost, "/products", req, s.token)
	if err != nil {
		return nil, err
	}

	var product Product
	if err := decodeJSON(resp, &product, http.StatusCreated); err != nil {
		return nil, err
	}
	return &product, nil
}

// BanUser flags a user account as banned on an admin session.
func (s *Session) BanUser(ctx context.Context, userID string) error {
	return s.moderate(ctx, http.MethodPost, userID)
}

// UnbanUser clears the banned flag on an admin session.
func (s *Session) UnbanUser(ctx context.Context, userID string) error {
	return s.moderate(ctx, http.MethodDelete, userID)
}

func (s *Session) moderate(ctx context.Context, method, userID string) error {
	resp, err := s.client.doRequest(ctx, method, "/admin/users/"+userID+"/ban", nil, s.token)
	if err != nil {
		return err
	}

	var out SuccessResponse
	return decodeJSON(resp, &out, http.StatusOK)
}

func (s *Session) isAdmin() bool {
	return s.kind == sessionAdmin
}
