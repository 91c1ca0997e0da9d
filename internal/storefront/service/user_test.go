package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openmercato/storefront/internal/storefront/domain"
	"github.com/openmercato/storefront/internal/storefront/service"
)

func TestUserSignUp(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	res, err := env.Users.SignUp(ctx, "bob", "jones", "bob@shop.com", "hunter2secret")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(res.Token, "Bearer "))
	require.NotEmpty(t, res.Account.ID)

	t.Run("claims carry the user role", func(t *testing.T) {
		require.Len(t, env.Tokens.issued, 1)
		require.Equal(t, string(domain.UserTypeUser), env.Tokens.issued[0].UserType)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		_, err := env.Users.SignUp(ctx, "other", "person", "bob@shop.com", "different9pw")
		require.ErrorIs(t, err, service.ErrEmailExists)
	})

	t.Run("admin email does not collide", func(t *testing.T) {
		_, err := env.Admins.SignUp(ctx, "bob", "jones", "bob@shop.com", "hunter2secret")
		require.NoError(t, err)
	})
}

func TestUserLogin(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	signup, err := env.Users.SignUp(ctx, "bob", "jones", "bob@shop.com", "hunter2secret")
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		res, err := env.Users.Login(ctx, "bob@shop.com", "hunter2secret")
		require.NoError(t, err)
		require.Equal(t, signup.Account.ID, res.Account.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		before := len(env.Tokens.issued)
		_, err := env.Users.Login(ctx, "bob@shop.com", "wrong-password")
		require.ErrorIs(t, err, service.ErrAuthFailed)
		require.Len(t, env.Tokens.issued, before, "no token signed on failure")
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := env.Users.Login(ctx, "nobody@shop.com", "hunter2secret")
		require.ErrorIs(t, err, service.ErrAuthFailed)
	})
}

func TestUserProfile(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	signup, err := env.Users.SignUp(ctx, "bob", "jones", "bob@shop.com", "hunter2secret")
	require.NoError(t, err)

	profile, err := env.Users.Profile(ctx, signup.Account.ID)
	require.NoError(t, err)
	require.Equal(t, "bob@shop.com", profile.Email)
	require.Equal(t, "bob", profile.FirstName)

	_, err = env.Users.Profile(ctx, "01J00000000000000000000000")
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestUserChangePassword(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	signup, err := env.Users.SignUp(ctx, "bob", "jones", "bob@shop.com", "hunter2secret")
	require.NoError(t, err)
	userID := signup.Account.ID

	t.Run("wrong old password leaves the hash untouched", func(t *testing.T) {
		err := env.Users.ChangePassword(ctx, userID, "not-the-password", "newsecret123")
		require.ErrorIs(t, err, service.ErrAuthFailed)

		_, err = env.Users.Login(ctx, "bob@shop.com", "hunter2secret")
		require.NoError(t, err, "old password still works")
	})

	t.Run("correct old password rotates the hash", func(t *testing.T) {
		require.NoError(t, env.Users.ChangePassword(ctx, userID, "hunter2secret", "newsecret123"))

		_, err := env.Users.Login(ctx, "bob@shop.com", "hunter2secret")
		require.ErrorIs(t, err, service.ErrAuthFailed, "old password no longer works")

		_, err = env.Users.Login(ctx, "bob@shop.com", "newsecret123")
		require.NoError(t, err)
	})

	t.Run("unknown user", func(t *testing.T) {
		err := env.Users.ChangePassword(ctx, "01J00000000000000000000000", "a", "b")
		require.ErrorIs(t, err, service.ErrNotFound)
	})
}
