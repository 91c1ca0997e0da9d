package storefront_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openmercato/storefront/pkg/shopsdk"
)

// TestAccountLifecycle covers the full signup, login, profile and password
// rotation flow for both namespaces against a running service.
func TestAccountLifecycle(t *testing.T) {
	baseURL, cleanup := setupStorefrontContainer(t)
	defer cleanup()

	client := shopsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	admin := signupAdmin(t, client, adminEmail)
	user := signupUser(t, client, userEmail)

	t.Run("signup returns a usable bearer token", func(t *testing.T) {
		require.True(t, strings.HasPrefix(admin.Token(), "Bearer "))
		require.True(t, strings.HasPrefix(user.Token(), "Bearer "))
	})

	t.Run("duplicate signup is rejected", func(t *testing.T) {
		_, err := client.AdminSignup(ctx, shopsdk.SignupRequest{
			FirstName: "eve", LastName: "smith", Email: adminEmail, Password: adminPassword,
		})
		require.ErrorIs(t, err, shopsdk.ErrEmailExists)
	})

	t.Run("same email is independent across namespaces", func(t *testing.T) {
		session, err := client.UserSignup(ctx, shopsdk.SignupRequest{
			FirstName: "alice", LastName: "smith", Email: adminEmail, Password: userPassword,
		})
		require.NoError(t, err)
		require.NotNil(t, session)
	})

	t.Run("login works with correct credentials", func(t *testing.T) {
		session, err := client.AdminLogin(ctx, adminEmail, adminPassword)
		require.NoError(t, err)
		require.Equal(t, admin.Account().ID, session.Account().ID)
	})

	t.Run("login rejects bad credentials uniformly", func(t *testing.T) {
		_, errWrongPw := client.UserLogin(ctx, userEmail, "wrong-password")
		require.ErrorIs(t, errWrongPw, shopsdk.ErrAuthFailed)

		_, errUnknown := client.UserLogin(ctx, "ghost@shop.com", userPassword)
		require.ErrorIs(t, errUnknown, shopsdk.ErrAuthFailed)
	})

	t.Run("profile returns the caller's own account", func(t *testing.T) {
		account, err := user.Profile(ctx)
		require.NoError(t, err)
		require.Equal(t, userEmail, account.Email)
		require.Equal(t, "bob", account.FirstName)
	})

	t.Run("change password rotates credentials", func(t *testing.T) {
		require.ErrorIs(t,
			user.ChangePassword(ctx, "wrong-old-password", "Fresh123!pass"),
			shopsdk.ErrAuthFailed)

		require.NoError(t, user.ChangePassword(ctx, userPassword, "Fresh123!pass"))

		_, err := client.UserLogin(ctx, userEmail, userPassword)
		require.ErrorIs(t, err, shopsdk.ErrAuthFailed, "old password no longer valid")

		session, err := client.UserLogin(ctx, userEmail, "Fresh123!pass")
		require.NoError(t, err)
		require.NotNil(t, session)
	})
}

// TestAccessControl verifies the guard behaviour between the two token types.
func TestAccessControl(t *testing.T) {
	baseURL, cleanup := setupStorefrontContainer(t)
	defer cleanup()

	client := shopsdk.NewSDKClient(baseURL)
	ctx := t.Context()

	admin := signupAdmin(t, client, adminEmail)
	user := signupUser(t, client, userEmail)

	t.Run("user token cannot create products", func(t *testing.T) {
		_, err := user.CreateProduct(ctx, shopsdk.CreateProductRequest{
			Title: "Mug", PriceCents: 1000,
		})
		require.ErrorIs(t, err, shopsdk.ErrForbidden)
	})

	t.Run("user token cannot moderate", func(t *testing.T) {
		err := user.BanUser(ctx, user.Account().ID)
		require.ErrorIs(t, err, shopsdk.ErrForbidden)
	})

	t.Run("validation errors carry field detail", func(t *testing.T) {
		_, err := client.UserSignup(ctx, shopsdk.SignupRequest{
			FirstName: "x", Email: "not-an-email", Password: "short",
		})
		require.ErrorIs(t, err, shopsdk.ErrValidation)

		var apiErr *shopsdk.APIError
		require.ErrorAs(t, err, &apiErr)
		require.NotEmpty(t, apiErr.Fields)
	})

	t.Run("ban and unban gate user logins", func(t *testing.T) {
		require.NoError(t, admin.BanUser(ctx, user.Account().ID))

		_, err := client.UserLogin(ctx, userEmail, userPassword)
		require.ErrorIs(t, err, shopsdk.ErrAccountBanned)

		require.NoError(t, admin.UnbanUser(ctx, user.Account().ID))

		_, err = client.UserLogin(ctx, userEmail, userPassword)
		require.NoError(t, err)
	})
}
