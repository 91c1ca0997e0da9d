package http

import (
	"net/http"

	"github.com/openmercato/storefront/internal/storefront/service"
	"github.com/openmercato/storefront/pkg/httpx"
)

type ProductsHandler struct {
	ProductService *service.ProductService
}

// HandleCreate godoc
//
//	@Summary		Create Product Endpoint
//	@Description	Add a product to the catalog, authored by the authenticated admin
//	@Tags			Products
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateProductRequest	true	"Product details"
//	@Success		201		{object}	ProductResponse			"the created product"
//	@Failure		400		{object}	httpx.ErrorResponse		"error, error_description, fields"
//	@Failure		401		{object}	httpx.ErrorResponse		"missing or invalid token"
//	@Failure		403		{object}	httpx.ErrorResponse		"token is not an admin token"
//	@Router			/products [post].
func (h *ProductsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := httpx.ClaimsFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, httpx.CodeUnauthorized,
			"missing bearer token")
		return
	}

	var req CreateProductRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	product, err := h.ProductService.Create(ctx, claims.AccountID(), req.Title, req.Description, req.PriceCents)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toProductResponse(product))
}

// HandleList godoc
//
//	@Summary		List Products Endpoint
//	@Description	Return the product catalog, newest first. Public, no authentication required
//	@Tags			Products
//	@Produce		json
//	@Success		200	{array}		ProductResponse		"the catalog"
//	@Failure		502	{object}	httpx.ErrorResponse	"storage failure"
//	@Router			/products [get].
func (h *ProductsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	products, err := h.ProductService.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toProductResponses(products))
}
