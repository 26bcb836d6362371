//go:build unit

package user_test

import (
	"testing"

	"storeslot/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhoneNumber(t *testing.T) {
	cases := []struct {
		name  string
		input string
		errIs error
	}{
		{name: "ten digits", input: "0312345678"},
		{name: "eleven digits", input: "09012345678"},
		{name: "surrounding whitespace is trimmed", input: " 09012345678 "},
		{name: "nine digits", input: "090123456", errIs: user.ErrInvalidPhoneNumber},
		{name: "twelve digits", input: "090123456789", errIs: user.ErrInvalidPhoneNumber},
		{name: "contains hyphens", input: "090-1234-5678", errIs: user.ErrInvalidPhoneNumber},
		{name: "contains letters", input: "0901234567a", errIs: user.ErrInvalidPhoneNumber},
		{name: "empty", input: "", errIs: user.ErrInvalidPhoneNumber},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			phone, err := user.NewPhoneNumber(tc.input)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, phone.Value())
		})
	}
}

func TestNewPassword(t *testing.T) {
	t.Run("eight characters is the minimum", func(t *testing.T) {
		_, err := user.NewPassword("12345678")
		assert.NoError(t, err)
	})

	t.Run("seven characters is too weak", func(t *testing.T) {
		_, err := user.NewPassword("1234567")
		assert.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})
}

func TestNewUser(t *testing.T) {
	phone, err := user.NewPhoneNumber("09012345678")
	require.NoError(t, err)

	t.Run("new user starts as USER", func(t *testing.T) {
		u, err := user.NewUser("Taro Yamada", phone, "hashed")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, u.ID())
		assert.Equal(t, user.RoleUser, u.Role())
		assert.False(t, u.IsPartner())
	})

	t.Run("name is trimmed", func(t *testing.T) {
		u, err := user.NewUser("  Taro Yamada  ", phone, "hashed")
		require.NoError(t, err)
		assert.Equal(t, "Taro Yamada", u.Name())
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		_, err := user.NewUser("   ", phone, "hashed")
		assert.ErrorIs(t, err, user.ErrEmptyName)
	})
}

func TestBecomePartner(t *testing.T) {
	phone, err := user.NewPhoneNumber("09012345678")
	require.NoError(t, err)

	u, err := user.NewUser("Taro Yamada", phone, "hashed")
	require.NoError(t, err)

	u.BecomePartner()

	assert.Equal(t, user.RolePartner, u.Role())
	assert.True(t, u.IsPartner())
}

func TestNewRole(t *testing.T) {
	for _, valid := range []string{"USER", "PARTNER"} {
		role, err := user.NewRole(valid)
		assert.NoError(t, err)
		assert.Equal(t, valid, role.String())
	}

	_, err := user.NewRole("ADMIN")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}
