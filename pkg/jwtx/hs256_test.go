package jwtx

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func newTestHS256(t *testing.T) *HS256 {
	t.Helper()
	s, err := NewHS256(testSecret, "storefront-test", 0)
	require.NoError(t, err)
	return s
}

func TestNewHS256RejectsShortSecrets(t *testing.T) {
	t.Parallel()

	_, err := NewHS256([]byte("too-short"), "x", 0)
	require.ErrorIs(t, err, ErrShortSecret)
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	t.Parallel()
	s := newTestHS256(t)

	now := time.Now().UTC()
	claims := NewClaims("01J0000000000000000000ACCT", "a@b.com", "admin",
		"storefront-test", time.Hour, now)

	token, err := s.Issue(claims)
	require.NoError(t, err)
	require.Equal(t, 3, len(strings.Split(token, ".")), "compact JWS form")

	got, err := s.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "01J0000000000000000000ACCT", got.AccountID())
	require.Equal(t, "a@b.com", got.Email)
	require.Equal(t, "admin", got.UserType)
	require.NoError(t, got.ValidateExpiry())
}

func TestVerifyRejectsBadTokens(t *testing.T) {
	t.Parallel()
	s := newTestHS256(t)

	now := time.Now().UTC()
	valid, err := s.Issue(NewClaims("id-1", "a@b.com", "user",
		"storefront-test", time.Hour, now))
	require.NoError(t, err)

	t.Run("malformed", func(t *testing.T) {
		_, err := s.Verify("definitely.not-a.jwt")
		require.ErrorIs(t, err, ErrMalformed)

		_, err = s.Verify("")
		require.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("tampered payload", func(t *testing.T) {
		parts := strings.Split(valid, ".")
		parts[1] = parts[1][:len(parts[1])-2] + "xx"
		_, err := s.Verify(strings.Join(parts, "."))
		require.ErrorIs(t, err, ErrInvalidSig)
	})

	t.Run("foreign signing key", func(t *testing.T) {
		other, err := NewHS256([]byte("ffffffffffffffffffffffffffffffff"), "storefront-test", 0)
		require.NoError(t, err)
		foreign, err := other.Issue(NewClaims("id-1", "a@b.com", "user",
			"storefront-test", time.Hour, now))
		require.NoError(t, err)

		_, err = s.Verify(foreign)
		require.ErrorIs(t, err, ErrInvalidSig)
	})

	t.Run("expired", func(t *testing.T) {
		stale, err := s.Issue(NewClaims("id-1", "a@b.com", "user",
			"storefront-test", time.Minute, now.Add(-time.Hour)))
		require.NoError(t, err)

		_, err = s.Verify(stale)
		require.ErrorIs(t, err, ErrExpired)
	})

	t.Run("issuer mismatch", func(t *testing.T) {
		other, err := NewHS256(testSecret, "some-other-service", 0)
		require.NoError(t, err)
		foreign, err := other.Issue(NewClaims("id-1", "a@b.com", "user",
			"some-other-service", time.Hour, now))
		require.NoError(t, err)

		_, err = s.Verify(foreign)
		require.ErrorIs(t, err, ErrIssuer)
	})
}

func TestValidateExpiry(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()

	fresh := NewClaims("id", "e", "user", "iss", time.Hour, now)
	require.NoError(t, fresh.ValidateExpiry())

	expired := NewClaims("id", "e", "user", "iss", time.Minute, now.Add(-time.Hour))
	require.ErrorIs(t, expired.ValidateExpiry(), ErrExpired)

	future := NewClaims("id", "e", "user", "iss", time.Hour, now.Add(time.Hour))
	require.ErrorIs(t, future.ValidateExpiry(), ErrNotYetValid)
}
