package httpx

import (
	"net/http"
	"strings"

	"github.com/openmercato/storefront/pkg/jwtx"
	"github.com/openmercato/storefront/pkg/slogx"
)

// RequireAuth guards a protected route. It extracts the Authorization bearer
// token, verifies it, checks the claimed user type against userType and
// attaches the resolved claims to the request context. Routes that accept any
// authenticated caller pass an empty userType.
//
// Missing, malformed, tampered or expired tokens fail with 401 unauthorized;
// a valid token of the wrong user type fails with 403 forbidden.
func RequireAuth(v jwtx.Verifier, userType string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("bearer token rejected", "err", err)
				writeBearerError(w, "token verification failed")
				return
			}

			if err := claims.ValidateExpiry(); err != nil {
				writeBearerError(w, "token expired")
				return
			}

			if userType != "" && claims.UserType != userType {
				w.Header().Set("WWW-Authenticate", `Bearer error="insufficient_scope"`)
				WriteError(w, http.StatusForbidden, CodeForbidden,
					"this route requires a "+userType+" token")
				return
			}

			next.ServeHTTP(w, r.WithContext(contextWithClaims(ctx, claims)))
		})
	}
}

// RFC 6750-style error response for bearer auth failures.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteError(w, http.StatusUnauthorized, CodeUnauthorized, desc)
}
