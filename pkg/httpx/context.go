package httpx

import (
	"context"

	"github.com/openmercato/storefront/pkg/jwtx"
)

type ctxKey string

const ctxKeyClaims ctxKey = "claims"

func contextWithClaims(ctx context.Context, c jwtx.Claims) context.Context {
	return context.WithValue(ctx, ctxKeyClaims, c)
}

// ClaimsFromContext returns the verified bearer claims attached by
// RequireAuth. The second return is false on public routes.
func ClaimsFromContext(ctx context.Context) (jwtx.Claims, bool) {
	c, ok := ctx.Value(ctxKeyClaims).(jwtx.Claims)
	return c, ok
}
