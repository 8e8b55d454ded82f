package auth_test

import (
	"context"
	"testing"

	"go-orgadmin/internal/auth"
	autherrors "go-orgadmin/internal/auth/errors"
	"go-orgadmin/internal/user"
	userMock "go-orgadmin/internal/user/mock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupAuthTest(t *testing.T) (auth.Service, *userMock.MockRepository) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	ctrl := gomock.NewController(t)
	users := userMock.NewMockRepository(ctrl)
	return auth.NewService(users), users
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hashed)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success returns a parseable bearer token", func(t *testing.T) {
		svc, users := setupAuthTest(t)
		id := uuid.New()

		users.EXPECT().FindByEmail(ctx, "jane@example.com").Return(&user.User{
			ID:             id,
			Email:          "jane@example.com",
			HashedPassword: hashOf(t, "secret123"),
			IsActive:       true,
		}, nil)

		resp, err := svc.Login(ctx, "jane@example.com", "secret123")

		assert.NoError(t, err)
		assert.Equal(t, "bearer", resp.TokenType)

		token, err := jwt.Parse(resp.AccessToken, func(tok *jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		assert.NoError(t, err)
		claims := token.Claims.(jwt.MapClaims)
		assert.Equal(t, id.String(), claims["sub"])
	})

	t.Run("unknown email and wrong password look the same", func(t *testing.T) {
		svc, users := setupAuthTest(t)

		users.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

		_, errMissing := svc.Login(ctx, "ghost@example.com", "whatever1")

		users.EXPECT().FindByEmail(ctx, "jane@example.com").Return(&user.User{
			ID:             uuid.New(),
			HashedPassword: hashOf(t, "secret123"),
			IsActive:       true,
		}, nil)

		_, errWrong := svc.Login(ctx, "jane@example.com", "wrongpass")

		assert.ErrorIs(t, errMissing, autherrors.ErrInvalidCredentials)
		assert.ErrorIs(t, errWrong, autherrors.ErrInvalidCredentials)
	})

	t.Run("inactive user is rejected after password check", func(t *testing.T) {
		svc, users := setupAuthTest(t)

		users.EXPECT().FindByEmail(ctx, "off@example.com").Return(&user.User{
			ID:             uuid.New(),
			HashedPassword: hashOf(t, "secret123"),
			IsActive:       false,
		}, nil)

		_, err := svc.Login(ctx, "off@example.com", "secret123")

		assert.ErrorIs(t, err, autherrors.ErrInactiveUser)
	})
}

func TestAuthService_ResolveCaller(t *testing.T) {
	ctx := context.Background()

	t.Run("loads fresh flags from storage", func(t *testing.T) {
		svc, users := setupAuthTest(t)
		id := uuid.New()

		users.EXPECT().FindByID(ctx, id.String()).Return(&user.User{
			ID:          id,
			IsActive:    true,
			IsSuperuser: true,
		}, nil)

		caller, err := svc.ResolveCaller(ctx, id.String())

		assert.NoError(t, err)
		assert.Equal(t, id, caller.ID)
		assert.True(t, caller.IsSuperuser)
	})

	t.Run("deactivated user loses access immediately", func(t *testing.T) {
		svc, users := setupAuthTest(t)
		id := uuid.New()

		users.EXPECT().FindByID(ctx, id.String()).Return(&user.User{
			ID:       id,
			IsActive: false,
		}, nil)

		_, err := svc.ResolveCaller(ctx, id.String())

		assert.ErrorIs(t, err, autherrors.ErrInactiveUser)
	})

	t.Run("malformed subject", func(t *testing.T) {
		svc, _ := setupAuthTest(t)

		_, err := svc.ResolveCaller(ctx, "not-a-uuid")

		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})

	t.Run("deleted user", func(t *testing.T) {
		svc, users := setupAuthTest(t)
		id := uuid.New()

		users.EXPECT().FindByID(ctx, id.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.ResolveCaller(ctx, id.String())

		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})
}
