package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwisetya/blockchain-api/pkg/helpers"
)

func newAuthFixture(t *testing.T) (*AuthService, *memRepo) {
	t.Helper()
	repo := newMemRepo()
	jwt := helpers.NewJWTManager("testsecret", time.Hour)
	logger := logrus.New()
	return NewAuthService(repo, jwt, logger), repo
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user with hashed password", func(t *testing.T) {
		svc, repo := newAuthFixture(t)

		u, err := svc.Register(ctx, "Alice", "alice@example.com", "password123")
		require.NoError(t, err)
		assert.NotZero(t, u.ID)
		assert.Equal(t, "alice@example.com", u.Email)
		assert.NotEqual(t, "password123", u.PasswordHash)
		assert.True(t, helpers.CompareHashAndPassword(u.PasswordHash, "password123"))

		stored, err := repo.GetByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, u.ID, stored.ID)
	})

	t.Run("duplicate email is rejected without mutating the store", func(t *testing.T) {
		svc, repo := newAuthFixture(t)
		_, err := svc.Register(ctx, "Alice", "alice@example.com", "password123")
		require.NoError(t, err)

		_, err = svc.Register(ctx, "Mallory", "alice@example.com", "otherpass123")
		assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)

		users, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 1)
		assert.Equal(t, "Alice", users[0].Name)
	})

	t.Run("store failure surfaces as wrapped error", func(t *testing.T) {
		svc, repo := newAuthFixture(t)
		repo.failWith = errors.New("connection refused")

		_, err := svc.Register(ctx, "Alice", "alice@example.com", "password123")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "registration failed")
		assert.Contains(t, err.Error(), "connection refused")
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials issue a token", func(t *testing.T) {
		svc, _ := newAuthFixture(t)
		_, err := svc.Register(ctx, "Alice", "alice@example.com", "password123")
		require.NoError(t, err)

		res, err := svc.Login(ctx, "alice@example.com", "password123")
		require.NoError(t, err)
		assert.NotEmpty(t, res.Token)
		assert.Equal(t, "alice@example.com", res.User.Email)

		claims, err := svc.JWT.Parse(res.Token)
		require.NoError(t, err)
		assert.Equal(t, res.User.ID, claims.UserID)
		assert.Equal(t, "alice@example.com", claims.Email)
		assert.Equal(t, "Alice", claims.Name)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		svc, _ := newAuthFixture(t)
		_, err := svc.Register(ctx, "Alice", "alice@example.com", "password123")
		require.NoError(t, err)

		_, errUnknown := svc.Login(ctx, "nobody@example.com", "password123")
		_, errWrongPw := svc.Login(ctx, "alice@example.com", "wrongpass")

		assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
		assert.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
		assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
	})

	t.Run("store failure surfaces as wrapped error", func(t *testing.T) {
		svc, repo := newAuthFixture(t)
		repo.failWith = errors.New("connection refused")

		_, err := svc.Login(ctx, "alice@example.com", "password123")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
		assert.Contains(t, err.Error(), "authentication failed")
	})
}
