package shopsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a typed error decoded from the service's error envelope.
type APIError struct {
	StatusCode  int
	Code        string       `json:"error"`
	Description string       `json:"error_description"`
	Fields      []FieldError `json:"fields,omitempty"`
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d): %s", e.Code, e.StatusCode, e.Description)
	for _, f := range e.Fields {
		fmt.Fprintf(&b, "; %s: %s", f.Field, f.Message)
	}
	return b.String()
}

// Is lets callers match on the reason code with a sentinel-shaped APIError.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Sentinel errors matching the service's reason codes, for errors.Is checks.
var (
	ErrValidation     = &APIError{Code: "validation_error"}
	ErrEmailExists    = &APIError{Code: "email_exists"}
	ErrAuthFailed     = &APIError{Code: "auth_failed"}
	ErrAccountBanned  = &APIError{Code: "account_banned"}
	ErrUnauthorized   = &APIError{Code: "unauthorized"}
	ErrForbidden      = &APIError{Code: "forbidden"}
	ErrNotFound       = &APIError{Code: "not_found"}
	ErrStorageFailure = &APIError{Code: "storage_failure"}
	ErrRateLimited    = &APIError{Code: "rate_limited"}
)

// parseErrorResponse turns a non-2xx response body into an APIError. Bodies
// that are not the expected envelope still produce a usable error.
func parseErrorResponse(resp *http.Response, body []byte) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Code == "" {
		apiErr.Code = "unexpected_response"
		apiErr.Description = strings.TrimSpace(string(body))
	}
	return apiErr
}
