//go:build unit

package user_test

import (
	"testing"
	"time"

	"iwparking/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "plain address", in: "ana@example.com", want: "ana@example.com"},
		{name: "whitespace trimmed", in: "  ana@example.com ", want: "ana@example.com"},
		{name: "plus tag", in: "ana+parking@example.com", want: "ana+parking@example.com"},
		{name: "missing at sign", in: "ana.example.com", wantErr: true},
		{name: "missing tld", in: "ana@example", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := user.NewEmail(c.in)
			if c.wantErr {
				require.ErrorIs(t, err, user.ErrInvalidEmail)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got.Value())
		})
	}
}

func TestNewPassword(t *testing.T) {
	_, err := user.NewPassword("short")
	require.ErrorIs(t, err, user.ErrPasswordTooWeak)

	_, err = user.NewPassword("longenough")
	require.NoError(t, err)
}

func TestNewUser(t *testing.T) {
	email, err := user.NewEmail("ana@example.com")
	require.NoError(t, err)
	now := time.Now()

	t.Run("valid user", func(t *testing.T) {
		u, err := user.NewUser(email, "hash", "Ana", user.RoleUser, now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, u.ID())
		assert.Equal(t, "ana@example.com", u.Email().Value())
		assert.False(t, u.IsAdmin())
	})

	t.Run("admin role", func(t *testing.T) {
		u, err := user.NewUser(email, "hash", "Ana", user.RoleAdmin, now)
		require.NoError(t, err)
		assert.True(t, u.IsAdmin())
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		_, err := user.NewUser(email, "hash", "Ana", user.Role("root"), now)
		require.ErrorIs(t, err, user.ErrInvalidRole)
	})
}

func TestNewRole(t *testing.T) {
	r, err := user.NewRole("admin")
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, r)

	_, err = user.NewRole("root")
	require.ErrorIs(t, err, user.ErrInvalidRole)
}
