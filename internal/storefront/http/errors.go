package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/openmercato/storefront/internal/storefront/service"
	"github.com/openmercato/storefront/pkg/httpx"
	"github.com/openmercato/storefront/pkg/slogx"
	"github.com/openmercato/storefront/pkg/validatex"
)

const maxBodyBytes = 1 << 20 // 1 MiB

// decodeAndValidate reads the JSON body into dst and runs struct validation.
// It writes the error response itself and reports whether the handler should
// continue. Malformed JSON and failed validation both map to 400.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, httpx.CodeValidation,
			"request body must be valid JSON")
		return false
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		httpx.WriteError(w, http.StatusBadRequest, httpx.CodeValidation,
			"request body must contain a single JSON object")
		return false
	}

	if fields := validatex.Validate(dst); len(fields) > 0 {
		httpx.WriteValidationError(w, fields)
		return false
	}
	return true
}

// writeServiceError maps the service error taxonomy onto the wire envelope.
// Anything outside the taxonomy is a storage or infrastructure fault and maps
// to 502 so callers can tell "you messed up" from "we messed up".
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrEmailExists):
		httpx.WriteError(w, http.StatusConflict, httpx.CodeEmailExists,
			"an account with this email already exists")
	case errors.Is(err, service.ErrAccountBanned):
		httpx.WriteError(w, http.StatusUnauthorized, httpx.CodeAccountBanned,
			"this account has been disabled")
	case errors.Is(err, service.ErrAuthFailed):
		httpx.WriteError(w, http.StatusUnauthorized, httpx.CodeAuthFailed,
			"invalid email or password")
	case errors.Is(err, service.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, httpx.CodeNotFound,
			"resource not found")
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		httpx.WriteError(w, http.StatusBadGateway, httpx.CodeStorageFailure,
			"a storage error prevented the request from completing")
	}
}
