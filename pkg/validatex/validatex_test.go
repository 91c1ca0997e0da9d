package validatex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type signupPayload struct {
	FirstName string `json:"firstName" validate:"omitempty,max=64"`
	Email     string `json:"email"     validate:"required,email"`
	Password  string `json:"password"  validate:"required,min=6"`
}

func TestValidateAcceptsValidPayload(t *testing.T) {
	t.Parallel()

	errs := Validate(signupPayload{Email: "a@b.com", Password: "123456"})
	require.Nil(t, errs)
}

func TestValidateReportsPerFieldErrors(t *testing.T) {
	t.Parallel()

	t.Run("missing required fields", func(t *testing.T) {
		errs := Validate(signupPayload{})
		require.Len(t, errs, 2)

		fields := map[string]string{}
		for _, e := range errs {
			fields[e.Field] = e.Message
		}
		require.Equal(t, "is required", fields["email"])
		require.Equal(t, "is required", fields["password"])
	})

	t.Run("invalid email format", func(t *testing.T) {
		errs := Validate(signupPayload{Email: "not-an-email", Password: "123456"})
		require.Len(t, errs, 1)
		require.Equal(t, "email", errs[0].Field)
		require.Equal(t, "must be a valid email address", errs[0].Message)
	})

	t.Run("password too short", func(t *testing.T) {
		errs := Validate(signupPayload{Email: "a@b.com", Password: "123"})
		require.Len(t, errs, 1)
		require.Equal(t, "password", errs[0].Field)
		require.Equal(t, "must be at least 6 characters", errs[0].Message)
	})

	t.Run("uses json field names", func(t *testing.T) {
		errs := Validate(signupPayload{FirstName: string(make([]byte, 100)), Email: "a@b.com", Password: "123456"})
		require.Len(t, errs, 1)
		require.Equal(t, "firstName", errs[0].Field)
	})
}
