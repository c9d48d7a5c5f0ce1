//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"iwparking/internal/domain/user"
	"iwparking/internal/infra"
	"iwparking/internal/pkg/clock"
	"iwparking/internal/pkg/errs"
	"iwparking/internal/pkg/jwt"
	"iwparking/internal/usecase/commands"
	"iwparking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	store *fakeStore
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	for _, existing := range r.store.users {
		if existing.Email().Value() == u.Email().Value() {
			return infra.NewRepoErr(infra.KindDuplicateKey, "email already registered", nil)
		}
	}
	r.store.users[u.ID()] = u
	return nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range r.store.users {
		if u.Email().Value() == email {
			return u, nil
		}
	}
	return nil, infra.NewRepoErr(infra.KindNotFound, "user not found", nil)
}

type fakeUserReadStore struct {
	store *fakeStore
}

func (s *fakeUserReadStore) FindByID(_ context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	u, ok := s.store.users[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "user not found", nil)
	}
	return userView(u), nil
}

func (s *fakeUserReadStore) FindByEmail(_ context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	for _, u := range s.store.users {
		if u.Email().Value() == email {
			return userView(u), u.PasswordHash(), nil
		}
	}
	return nil, "", infra.NewRepoErr(infra.KindNotFound, "user not found", nil)
}

func userView(u *user.User) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:    u.ID(),
		Email: u.Email().Value(),
		Name:  u.Name(),
		Role:  u.Role().String(),
	}
}

func newAuthCommands(store *fakeStore) commands.AuthCommands {
	clk := clock.NewMockClock(time.Date(2026, time.May, 10, 12, 0, 0, 0, time.UTC))
	return commands.NewAuthCommands(
		&fakeUoW{store: store},
		&fakeUserReadStore{store: store},
		jwt.NewService("test-secret", time.Hour),
		clk,
	)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a regular user", func(t *testing.T) {
		store := newFakeStore()
		auth := newAuthCommands(store)

		id, err := auth.Register(ctx, commands.RegisterRequest{
			Email:    "ana@example.com",
			Password: "supersecret",
			Name:     "Ana",
		})
		require.NoError(t, err)

		u, ok := store.users[id]
		require.True(t, ok)
		assert.Equal(t, user.RoleUser, u.Role())
		assert.NotEqual(t, "supersecret", u.PasswordHash())
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		auth := newAuthCommands(newFakeStore())

		_, err := auth.Register(ctx, commands.RegisterRequest{
			Email:    "not-an-email",
			Password: "supersecret",
			Name:     "Ana",
		})
		require.ErrorIs(t, err, user.ErrInvalidEmail)
	})

	t.Run("rejects weak password", func(t *testing.T) {
		auth := newAuthCommands(newFakeStore())

		_, err := auth.Register(ctx, commands.RegisterRequest{
			Email:    "ana@example.com",
			Password: "short",
			Name:     "Ana",
		})
		require.ErrorIs(t, err, user.ErrPasswordTooWeak)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		store := newFakeStore()
		auth := newAuthCommands(store)

		req := commands.RegisterRequest{Email: "ana@example.com", Password: "supersecret", Name: "Ana"}
		_, err := auth.Register(ctx, req)
		require.NoError(t, err)

		_, err = auth.Register(ctx, req)
		require.ErrorIs(t, err, errs.ErrEmailTaken)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	register := func(t *testing.T, auth commands.AuthCommands) uuid.UUID {
		t.Helper()
		id, err := auth.Register(ctx, commands.RegisterRequest{
			Email:    "ana@example.com",
			Password: "supersecret",
			Name:     "Ana",
		})
		require.NoError(t, err)
		return id
	}

	t.Run("returns a token for valid credentials", func(t *testing.T) {
		store := newFakeStore()
		auth := newAuthCommands(store)
		id := register(t, auth)

		result, err := auth.Login(ctx, commands.LoginRequest{Email: "ana@example.com", Password: "supersecret"})
		require.NoError(t, err)

		assert.Equal(t, id, result.UserID)
		assert.Equal(t, "user", result.Role)
		assert.NotEmpty(t, result.AccessToken)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		auth := newAuthCommands(newFakeStore())
		register(t, auth)

		_, errUnknown := auth.Login(ctx, commands.LoginRequest{Email: "bob@example.com", Password: "supersecret"})
		_, errWrongPw := auth.Login(ctx, commands.LoginRequest{Email: "ana@example.com", Password: "wrongsecret"})
		_, errMalformed := auth.Login(ctx, commands.LoginRequest{Email: "not-an-email", Password: "supersecret"})

		require.ErrorIs(t, errUnknown, errs.ErrInvalidCredentials)
		require.ErrorIs(t, errWrongPw, errs.ErrInvalidCredentials)
		require.ErrorIs(t, errMalformed, errs.ErrInvalidCredentials)
	})
}
