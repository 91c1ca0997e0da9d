package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/openmercato/storefront/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newGuardFixture(t *testing.T) (*jwtx.HS256, http.Handler) {
	t.Helper()

	signer, err := jwtx.NewHS256([]byte("0123456789abcdef0123456789abcdef"), "test", 0)
	require.NoError(t, err)

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		require.True(t, ok, "claims must be attached for downstream handlers")
		WriteJSON(w, http.StatusOK, map[string]string{"subject": claims.AccountID()})
	})

	return signer, Chain(inner, RequireAuth(signer, "admin"))
}

func issueToken(t *testing.T, signer *jwtx.HS256, userType string, ttl time.Duration) string {
	t.Helper()
	token, err := signer.Issue(jwtx.NewClaims("acct-1", "a@b.com", userType, "test", ttl, time.Now().UTC()))
	require.NoError(t, err)
	return token
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestRequireAuth(t *testing.T) {
	signer, guarded := newGuardFixture(t)

	t.Run("missing header is unauthorized", func(t *testing.T) {
		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/profile", nil))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, CodeUnauthorized, decodeError(t, rec).Error)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "invalid_token")
	})

	t.Run("non-bearer scheme is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/profile", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("tampered token is unauthorized", func(t *testing.T) {
		token := issueToken(t, signer, "admin", time.Hour)
		req := httptest.NewRequest(http.MethodGet, "/admin/profile", nil)
		req.Header.Set("Authorization", "Bearer "+token+"x")
		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, CodeUnauthorized, decodeError(t, rec).Error)
	})

	t.Run("expired token is unauthorized", func(t *testing.T) {
		token, err := signer.Issue(jwtx.NewClaims("acct-1", "a@b.com", "admin", "test",
			time.Minute, time.Now().UTC().Add(-time.Hour)))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/admin/profile", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong user type is forbidden", func(t *testing.T) {
		token := issueToken(t, signer, "user", time.Hour)
		req := httptest.NewRequest(http.MethodGet, "/admin/profile", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, req)

		require.Equal(t, http.StatusForbidden, rec.Code)
		require.Equal(t, CodeForbidden, decodeError(t, rec).Error)
	})

	t.Run("valid token reaches the handler with claims", func(t *testing.T) {
		token := issueToken(t, signer, "admin", time.Hour)
		req := httptest.NewRequest(http.MethodGet, "/admin/profile", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]string
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		require.Equal(t, "acct-1", body["subject"])
	})
}

func TestRequireAuthAnyType(t *testing.T) {
	signer, err := jwtx.NewHS256([]byte("0123456789abcdef0123456789abcdef"), "test", 0)
	require.NoError(t, err)

	guarded := Chain(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) }),
		RequireAuth(signer, ""),
	)

	for _, userType := range []string{"admin", "user"} {
		req := httptest.NewRequest(http.MethodGet, "/anything", nil)
		req.Header.Set("Authorization", "Bearer "+issueToken(t, signer, userType, time.Hour))
		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, req)
		require.Equal(t, http.StatusNoContent, rec.Code)
	}
}
