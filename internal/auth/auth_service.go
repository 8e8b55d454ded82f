package auth

import (
	"context"
	"os"
	"strconv"
	"time"

	autherrors "go-orgadmin/internal/auth/errors"
	"go-orgadmin/internal/ownership"
	"go-orgadmin/internal/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Matches the original deployment default of 8 days.
const defaultTokenTTLMinutes = 8 * 24 * 60

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (TokenResponse, error)
	ResolveCaller(ctx context.Context, userID string) (ownership.Caller, error)
}

type service struct {
	users  user.Repository
	logger *zap.Logger
}

func NewService(users user.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{users: users, logger: l}
}

func (s *service) Login(ctx context.Context, email, password string) (TokenResponse, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		// A missing account and a wrong password are indistinguishable
		// to the caller.
		return TokenResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte(password)); err != nil {
		return TokenResponse{}, autherrors.ErrInvalidCredentials
	}

	if !u.IsActive {
		return TokenResponse{}, autherrors.ErrInactiveUser
	}

	token, err := generateToken(u.ID.String(), tokenTTL())
	if err != nil {
		s.logger.Error("token generation failed", zap.Error(err))
		return TokenResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("login success", zap.String("user_id", u.ID.String()))
	return TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

// ResolveCaller loads the caller identity from storage so superuser and
// active flags are always current, not frozen into the token.
func (s *service) ResolveCaller(ctx context.Context, userID string) (ownership.Caller, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return ownership.Caller{}, autherrors.ErrInvalidToken
	}

	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return ownership.Caller{}, autherrors.ErrInvalidToken
	}

	if !u.IsActive {
		return ownership.Caller{}, autherrors.ErrInactiveUser
	}

	return ownership.Caller{ID: id, IsSuperuser: u.IsSuperuser}, nil
}

func tokenTTL() time.Duration {
	minutes := defaultTokenTTLMinutes
	if v := os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			minutes = parsed
		}
	}
	return time.Duration(minutes) * time.Minute
}

func generateToken(userID string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
