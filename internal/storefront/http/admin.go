package http

import (
	"net/http"

	"github.com/openmercato/storefront/internal/storefront/service"
	"github.com/openmercato/storefront/pkg/httpx"
	"github.com/openmercato/storefront/pkg/slogx"
)

type AdminHandler struct {
	AdminService *service.AdminService
}

// HandleSignup godoc
//
//	@Summary		Admin Signup Endpoint
//	@Description	Register a new admin account and return a bearer token for it
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SignupRequest	true	"Admin registration details"
//	@Success		201		{object}	AuthResponse	"token, user"
//	@Failure		400		{object}	httpx.ErrorResponse	"error, error_description, fields"
//	@Failure		409		{object}	httpx.ErrorResponse	"email already registered"
//	@Router			/admin/signup [post].
func (h *AdminHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.AdminService.SignUp(r.Context(), req.FirstName, req.LastName, req.Email, req.Password)
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
//	@Summary		Admin Login Endpoint
//	@Description	Exchange admin credentials for a bearer token
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Admin credentials"
//	@Success		200		{object}	AuthResponse	"token, user"
//	@Failure		400		{object}	httpx.ErrorResponse	"error, error_description, fields"
//	@Failure		401		{object}	httpx.ErrorResponse	"invalid credentials"
//	@Router			/admin/login [post].
func (h *AdminHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.AdminService.Login(r.Context(), req.Email, req.Password)
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
//	@Summary		Admin Profile Endpoint
//	@Description	Return the authenticated admin's own account
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	AccountResponse	"the caller's account"
//	@Failure		401	{object}	httpx.ErrorResponse	"missing or invalid token"
//	@Failure		403	{object}	httpx.ErrorResponse	"token is not an admin token"
//	@Failure		404	{object}	httpx.ErrorResponse	"account no longer exists"
//	@Router			/admin/profile [get].
func (h *AdminHandler) HandleProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := httpx.ClaimsFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, httpx.CodeUnauthorized,
			"missing bearer token")
		return
	}

	admin, err := h.AdminService.Profile(ctx, claims.AccountID())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toAccountResponse(admin))
}

// HandleBanUser godoc
//
//	@Summary		Ban User Endpoint
//	@Description	Flag a user account as banned, blocking future logins
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string			true	"User ID"
//	@Success		200	{object}	SuccessResponse	"success"
//	@Failure		401	{object}	httpx.ErrorResponse	"missing or invalid token"
//	@Failure		403	{object}	httpx.ErrorResponse	"token is not an admin token"
//	@Failure		404	{object}	httpx.ErrorResponse	"no such user"
//	@Router			/admin/users/{id}/ban [post].
func (h *AdminHandler) HandleBanUser(w http.ResponseWriter, r *http.Request) {
	h.setBanned(w, r, true)
}

// HandleUnbanUser godoc
//
//	@Summary		Unban User Endpoint
//	@Description	Clear the banned flag on a user account
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string			true	"User ID"
//	@Success		200	{object}	SuccessResponse	"success"
//	@Failure		401	{object}	httpx.ErrorResponse	"missing or invalid token"
//	@Failure		403	{object}	httpx.ErrorResponse	"token is not an admin token"
//	@Failure		404	{object}	httpx.ErrorResponse	"no such user"
//	@Router			/admin/users/{id}/ban [delete].
func (h *AdminHandler) HandleUnbanUser(w http.ResponseWriter, r *http.Request) {
	h.setBanned(w, r, false)
}

func (h *AdminHandler) setBanned(w http.ResponseWriter, r *http.Request, banned bool) {
	ctx := r.Context()

	userID := r.PathValue("id")
	if userID == "" {
		httpx.WriteError(w, http.StatusBadRequest, httpx.CodeValidation,
			"user id is required")
		return
	}

	if err := h.AdminService.SetUserBanned(ctx, userID, banned); err != nil {
		writeServiceError(w, r, err)
		return
	}

	if claims, ok := httpx.ClaimsFromContext(ctx); ok {
		slogx.FromContext(ctx).Info("moderation action",
			"admin_id", claims.AccountID(), "user_id", userID, "banned", banned)
	}
	httpx.WriteJSON(w, http.StatusOK, SuccessResponse{Success: true})
}
