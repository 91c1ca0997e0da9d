package shopsdk

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func respondWith(t *testing.T, status int, body string) *http.Response {
	t.Helper()

	rr := httptest.NewRecorder()
	rr.WriteHeader(status)
	_, _ = rr.WriteString(body)
	return rr.Result()
}

func TestParseErrorResponse(t *testing.T) {
	t.Run("envelope with fields", func(t *testing.T) {
		resp := respondWith(t, http.StatusBadRequest,
			`{"error":"validation_error","error_description":"request body failed validation","fields":[{"field":"email","message":"must be a valid email address"}]}`)
		body, _ := io.ReadAll(resp.Body)

		err := parseErrorResponse(resp, body)
		require.ErrorIs(t, err, ErrValidation)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		require.Len(t, apiErr.Fields, 1)
		require.Equal(t, "email", apiErr.Fields[0].Field)
		require.Contains(t, apiErr.Error(), "email: must be a valid email address")
	})

	t.Run("reason codes match sentinels", func(t *testing.T) {
		cases := map[string]error{
			"email_exists":    ErrEmailExists,
			"auth_failed":     ErrAuthFailed,
			"account_banned":  ErrAccountBanned,
			"unauthorized":    ErrUnauthorized,
			"forbidden":       ErrForbidden,
			"not_found":       ErrNotFound,
			"storage_failure": ErrStorageFailure,
			"rate_limited":    ErrRateLimited,
		}
		for code, sentinel := range cases {
			resp := respondWith(t, http.StatusTeapot, `{"error":"`+code+`","error_description":"x"}`)
			body, _ := io.ReadAll(resp.Body)
			require.ErrorIs(t, parseErrorResponse(resp, body), sentinel, code)
		}
	})

	t.Run("non-envelope body", func(t *testing.T) {
		resp := respondWith(t, http.StatusBadGateway, "upstream exploded")
		body, _ := io.ReadAll(resp.Body)

		var apiErr *APIError
		require.ErrorAs(t, parseErrorResponse(resp, body), &apiErr)
		require.Equal(t, "unexpected_response", apiErr.Code)
		require.Contains(t, apiErr.Description, "upstream exploded")
	})

	t.Run("wrong sentinel does not match", func(t *testing.T) {
		resp := respondWith(t, http.StatusConflict, `{"error":"email_exists","error_description":"x"}`)
		body, _ := io.ReadAll(resp.Body)
		require.False(t, errors.Is(parseErrorResponse(resp, body), ErrAuthFailed))
	})
}

func TestNewSDKClientTrimsTrailingSlash(t *testing.T) {
	c := NewSDKClient("http://localhost:8080/")
	require.Equal(t, "http://localhost:8080", c.BaseURL)
	require.False(t, strings.HasSuffix(c.BaseURL, "/"))
}
