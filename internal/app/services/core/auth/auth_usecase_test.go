package auth

import (
	"context"
	"testing"

	"medipos-service/internal/app/config"
	"medipos-service/internal/app/contracts"
	"medipos-service/internal/app/models"
	"medipos-service/internal/app/services/shared/recordstore"
	"medipos-service/internal/app/services/shared/redis"
	"medipos-service/internal/pkg/dto/requests"
	"medipos-service/internal/pkg/exceptions"
	"medipos-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthFixture(t *testing.T) contracts.AuthUsecase {
	t.Helper()
	users := recordstore.NewUserStore()

	hash, err := utils.HashPassword("s3cret-pass")
	require.NoError(t, err)
	_, err = users.CreateUser(context.Background(), &models.User{
		Email:    "cashier@clinic.test",
		FullName: "Front Desk",
		Password: hash,
		Role:     models.RoleCashier,
	})
	require.NoError(t, err)

	return NewAuthUsecase(users, redis.NewMemoryKVRepository(), zap.NewNop(), config.JWT{
		Secret:        "test-secret",
		ExpTimeInHour: 1,
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials return a resolvable token", func(t *testing.T) {
		usecase := newAuthFixture(t)

		login, err := usecase.Login(ctx, &requests.Login{Email: "cashier@clinic.test", Password: "s3cret-pass"})
		require.NoError(t, err)
		assert.NotEmpty(t, login.Token)
		assert.Equal(t, string(models.RoleCashier), login.Role)

		session, err := usecase.ResolveSession(ctx, login.Token)
		require.NoError(t, err)
		assert.Equal(t, login.UserID, session.UserID)
		assert.Equal(t, models.RoleCashier, session.Role)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		usecase := newAuthFixture(t)

		_, err := usecase.Login(ctx, &requests.Login{Email: "cashier@clinic.test", Password: "wrong"})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, exceptions.KindUnauthorized, customErr.Kind)
	})

	t.Run("unknown email gets the same error as a wrong password", func(t *testing.T) {
		usecase := newAuthFixture(t)

		_, err := usecase.Login(ctx, &requests.Login{Email: "nobody@clinic.test", Password: "s3cret-pass"})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, exceptions.KindUnauthorized, customErr.Kind)
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	usecase := newAuthFixture(t)

	login, err := usecase.Login(ctx, &requests.Login{Email: "cashier@clinic.test", Password: "s3cret-pass"})
	require.NoError(t, err)

	session, err := usecase.ResolveSession(ctx, login.Token)
	require.NoError(t, err)

	err = usecase.Logout(ctx, session.SessionID)
	require.NoError(t, err)

	_, err = usecase.ResolveSession(ctx, login.Token)
	require.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, exceptions.KindUnauthorized, customErr.Kind)
}

func TestResolveSessionRejectsGarbageToken(t *testing.T) {
	usecase := newAuthFixture(t)

	_, err := usecase.ResolveSession(context.Background(), "not-a-jwt")
	require.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok)
	assert.Equal(t, exceptions.KindUnauthorized, customErr.Kind)
}
