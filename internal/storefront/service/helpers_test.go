package service_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/openmercato/storefront/internal/storefront/service"
	"github.com/openmercato/storefront/internal/storefront/store"
	"github.com/openmercato/storefront/internal/storefront/store/drivers/sqlite"
	"github.com/openmercato/storefront/pkg/cryptox"
	"github.com/openmercato/storefront/pkg/jwtx"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "storefront-service-test")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper.key"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

// countingIssuer records every claim it is asked to sign so tests can assert
// that failure paths never reach the token signer.
type countingIssuer struct {
	issued []jwtx.Claims
	err    error
}

func (c *countingIssuer) Issue(claims jwtx.Claims) (string, error) {
	if c.err != nil {
		return "", c.err
	}
	c.issued = append(c.issued, claims)
	return "signed-token", nil
}

const testIssuer = "storefront-test"

// testEnv wires all services over one shared in-memory store so cross-service
// effects, like an admin ban blocking a user login, can be exercised.
type testEnv struct {
	Store    store.Store
	Tokens   *countingIssuer
	Admins   *service.AdminService
	Users    *service.UserService
	Products *service.ProductService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations())

	tokens := &countingIssuer{}
	return &testEnv{
		Store:  s,
		Tokens: tokens,
		Admins: &service.AdminService{
			Store:    s,
			Tokens:   tokens,
			Issuer:   testIssuer,
			TokenTTL: time.Hour,
		},
		Users: &service.UserService{
			Store:    s,
			Tokens:   tokens,
			Issuer:   testIssuer,
			TokenTTL: time.Hour,
		},
		Products: &service.ProductService{Store: s},
	}
}
