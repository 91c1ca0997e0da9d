package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/openmercato/storefront/pkg/validatex"
)

// Machine-readable reason codes carried by every error envelope.
const (
	CodeValidation     = "validation_error"
	CodeEmailExists    = "email_exists"
	CodeAuthFailed     = "auth_failed"
	CodeAccountBanned  = "account_banned"
	CodeUnauthorized   = "unauthorized"
	CodeForbidden      = "forbidden"
	CodeNotFound       = "not_found"
	CodeStorageFailure = "storage_failure"
)

// ErrorResponse is the uniform failure envelope: an HTTP status (on the
// wire), a reason code, a human-readable description and, for validation
// failures, the per-field error list.
type ErrorResponse struct {
	Error            string                 `json:"error"`
	ErrorDescription string                 `json:"error_description"`
	Fields           []validatex.FieldError `json:"fields,omitempty"`
}

// WriteJSON writes a JSON response with the given status code. It sets
// Content-Type and no-store cache headers (responses here carry tokens and
// account data).
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes the uniform error envelope.
func WriteError(w http.ResponseWriter, status int, code, description string) {
	WriteJSON(w, status, ErrorResponse{Error: code, ErrorDescription: description})
}

// WriteValidationError writes a 400 envelope carrying per-field messages.
func WriteValidationError(w http.ResponseWriter, fields []validatex.FieldError) {
	WriteJSON(w, http.StatusBadRequest, ErrorResponse{
		Error:            CodeValidation,
		ErrorDescription: "request body failed validation",
		Fields:           fields,
	})
}

// NoCache prevents intermediaries from caching sensitive responses.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}
