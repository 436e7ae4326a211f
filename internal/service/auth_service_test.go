package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haeun/worlds-banpick-archive/internal/repository/postgres"
	"github.com/haeun/worlds-banpick-archive/internal/service"
	"github.com/haeun/worlds-banpick-archive/internal/testutil"
)

func TestAuthService(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	authService := service.NewAuthService(repos.User, repos.Session, testutil.TestConfig())
	ctx := context.Background()

	t.Run("register then login", func(t *testing.T) {
		testDB.Truncate(t)

		user, err := authService.Register(ctx, "haeun", "archive-password")
		require.NoError(t, err)
		assert.Equal(t, "haeun", user.DisplayName)
		assert.NotEqual(t, "archive-password", user.PasswordHash)

		result, err := authService.Login(ctx, service.LoginInput{
			DisplayName: "haeun",
			Password:    "archive-password",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
		assert.NotEmpty(t, result.RefreshToken)
		assert.Equal(t, user.ID, result.User.ID)
	})

	t.Run("duplicate display name is rejected", func(t *testing.T) {
		testDB.Truncate(t)

		_, err := authService.Register(ctx, "haeun", "first")
		require.NoError(t, err)

		_, err = authService.Register(ctx, "haeun", "second")
		assert.ErrorIs(t, err, service.ErrDisplayNameExists)
	})

	t.Run("wrong password and unknown user are indistinguishable", func(t *testing.T) {
		testDB.Truncate(t)

		_, err := authService.Register(ctx, "haeun", "archive-password")
		require.NoError(t, err)

		_, err = authService.Login(ctx, service.LoginInput{DisplayName: "haeun", Password: "wrong"})
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)

		_, err = authService.Login(ctx, service.LoginInput{DisplayName: "nobody", Password: "wrong"})
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("access token validates and carries the subject", func(t *testing.T) {
		testDB.Truncate(t)

		user, err := authService.Register(ctx, "haeun", "archive-password")
		require.NoError(t, err)
		result, err := authService.Login(ctx, service.LoginInput{DisplayName: "haeun", Password: "archive-password"})
		require.NoError(t, err)

		claims, err := authService.ValidateToken(result.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), (*claims)["sub"])
		assert.Equal(t, "haeun", (*claims)["name"])
	})

	t.Run("tampered token is rejected", func(t *testing.T) {
		testDB.Truncate(t)

		_, err := authService.Register(ctx, "haeun", "archive-password")
		require.NoError(t, err)
		result, err := authService.Login(ctx, service.LoginInput{DisplayName: "haeun", Password: "archive-password"})
		require.NoError(t, err)

		_, err = authService.ValidateToken(result.AccessToken + "x")
		assert.Error(t, err)
	})

	t.Run("login replaces the previous session", func(t *testing.T) {
		testDB.Truncate(t)

		_, err := authService.Register(ctx, "haeun", "archive-password")
		require.NoError(t, err)

		_, err = authService.Login(ctx, service.LoginInput{DisplayName: "haeun", Password: "archive-password"})
		require.NoError(t, err)
		_, err = authService.Login(ctx, service.LoginInput{DisplayName: "haeun", Password: "archive-password"})
		require.NoError(t, err)

		var count int64
		require.NoError(t, testDB.DB.Table("user_sessions").Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})
}
