package http

import (
	"net/http"

	"github.com/openmercato/storefront/internal/storefront/service"
	"github.com/openmercato/storefront/pkg/httpx"
)

type UserHandler struct {
	UserService *service.UserService
}

// HandleSignup godoc
//
//	@Summary		User Signup Endpoint
//	@Description	Register a new customer account and return a bearer token for it
//	@Tags			User
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SignupRequest	true	"User registration details"
//	@Success		201		{object}	AuthResponse	"token, user"
//	@Failure		400		{object}	httpx.ErrorResponse	"error, error_description, fields"
//	@Failure		409		{object}	httpx.ErrorResponse	"email already registered"
//	@Router			/user/signup [post].
func (h *UserHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.UserService.SignUp(r.Context(), req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, AuthResponse{
		Token: res.Token,
		User:  toAccountResponse(res.Account),
	})
}

// HandleLogin godoc
//
//	@Summary		User Login Endpoint
//	@Description	Exchange customer credentials for a bearer token
//	@Tags			User
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"User credentials"
//	@Success		200		{object}	AuthResponse	"token, user"
//	@Failure		400		{object}	httpx.ErrorResponse	"error, error_description, fields"
//	@Failure		401		{object}	httpx.ErrorResponse	"invalid credentials or banned account"
//	@Router			/user/login [post].
func (h *UserHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.UserService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, AuthResponse{
		Token: res.Token,
		User:  toAccountResponse(res.Account),
	})
}

// HandleProfile godoc
//
//	@Summary		User Profile Endpoint
//	@Description	Return the authenticated user's own account
//	@Tags			User
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	AccountResponse	"the caller's account"
//	@Failure		401	{object}	httpx.ErrorResponse	"missing or invalid token"
//	@Failure		403	{object}	httpx.ErrorResponse	"token is not a user token"
//	@Failure		404	{object}	httpx.ErrorResponse	"account no longer exists"
//	@Router			/user/profile [get].
func (h *UserHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := httpx.ClaimsFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, httpx.CodeUnauthorized,
			"missing bearer token")
		return
	}

	user, err := h.UserService.Profile(ctx, claims.AccountID())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toAccountResponse(user))
}

// HandleChangePassword godoc
//
//	@Summary		Change Password Endpoint
//	@Description	Rotate the authenticated user's password after verifying the current one
//	@Tags			User
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ChangePasswordRequest	true	"Old and new password"
//	@Success		200		{object}	SuccessResponse			"success"
//	@Failure		400		{object}	httpx.ErrorResponse		"error, error_description, fields"
//	@Failure		401		{object}	httpx.ErrorResponse		"wrong old password or invalid token"
//	@Router			/user/change-password [post].
func (h *UserHandler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := httpx.ClaimsFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, httpx.CodeUnauthorized,
			"missing bearer token")
		return
	}

	var req ChangePasswordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.UserService.ChangePassword(ctx, claims.AccountID(), req.OldPassword, req.NewPassword); err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, SuccessResponse{Success: true})
}
