package user

import (
	"context"
	"time"

	"go-orgadmin/internal/ownership"
	usererrors "go-orgadmin/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, caller ownership.Caller, skip, limit int) (UsersResponse, error)
	Create(ctx context.Context, caller ownership.Caller, req CreateUserRequest) (UserResponse, error)
	Signup(ctx context.Context, req SignupRequest) (UserResponse, error)
	GetMe(ctx context.Context, caller ownership.Caller) (UserResponse, error)
	UpdateMe(ctx context.Context, caller ownership.Caller, req UpdateMeRequest) (UserResponse, error)
	UpdatePassword(ctx context.Context, caller ownership.Caller, req UpdatePasswordRequest) error
	GetByID(ctx context.Context, caller ownership.Caller, id string) (UserResponse, error)
	Update(ctx context.Context, caller ownership.Caller, id string, req UpdateUserRequest) (UserResponse, error)
	Delete(ctx context.Context, caller ownership.Caller, id string) error
	DeleteMe(ctx context.Context, caller ownership.Caller) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) List(ctx context.Context, caller ownership.Caller, skip, limit int) (UsersResponse, error) {
	if !caller.IsSuperuser {
		return UsersResponse{}, usererrors.ErrNotSuperuser
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		s.logger.Error("list users count failed", zap.Error(err))
		return UsersResponse{}, mapRepositoryError(err)
	}

	users, err := s.repo.FindPage(ctx, skip, limit)
	if err != nil {
		s.logger.Error("list users failed", zap.Error(err))
		return UsersResponse{}, mapRepositoryError(err)
	}

	return UsersResponse{Data: mapToListResponse(users), Count: count}, nil
}

func (s *service) Create(ctx context.Context, caller ownership.Caller, req CreateUserRequest) (UserResponse, error) {
	if !caller.IsSuperuser {
		return UserResponse{}, usererrors.ErrNotSuperuser
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserResponse{}, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	u := &User{
		ID:             uuid.New(),
		Email:          req.Email,
		HashedPassword: string(hashed),
		FullName:       req.FullName,
		IsActive:       isActive,
		IsSuperuser:    req.IsSuperuser,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		s.logger.Error("create user persist failed", zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create user success", zap.String("user_id", u.ID.String()))
	return mapToResponse(*u), nil
}

func (s *service) Signup(ctx context.Context, req SignupRequest) (UserResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return UserResponse{}, err
	}

	u := &User{
		ID:             uuid.New(),
		Email:          req.Email,
		HashedPassword: string(hashed),
		FullName:       req.FullName,
		IsActive:       true,
		IsSuperuser:    false,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		s.logger.Error("signup persist failed", zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("signup success", zap.String("user_id", u.ID.String()))
	return mapToResponse(*u), nil
}

func (s *service) GetMe(ctx context.Context, caller ownership.Caller) (UserResponse, error) {
	u, err := s.repo.FindByID(ctx, caller.ID.String())
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*u), nil
}

func (s *service) UpdateMe(ctx context.Context, caller ownership.Caller, req UpdateMeRequest) (UserResponse, error) {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return UserResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	u, err := qtx.FindByID(ctx, caller.ID.String())
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.FullName != nil {
		u.FullName = *req.FullName
	}

	if err := qtx.Update(ctx, u); err != nil {
		s.logger.Error("update me persist failed", zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return UserResponse{}, err
	}

	return mapToResponse(*u), nil
}

func (s *service) UpdatePassword(ctx context.Context, caller ownership.Caller, req UpdatePasswordRequest) error {
	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	u, err := qtx.FindByID(ctx, caller.ID.String())
	if err != nil {
		return mapRepositoryError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte(req.CurrentPassword)); err != nil {
		return usererrors.ErrIncorrectPassword
	}
	if req.CurrentPassword == req.NewPassword {
		return usererrors.ErrSamePassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.HashedPassword = string(hashed)

	if err := qtx.Update(ctx, u); err != nil {
		s.logger.Error("update password persist failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	return tx.Commit().Error
}

func (s *service) GetByID(ctx context.Context, caller ownership.Caller, id string) (UserResponse, error) {
	targetID, err := uuid.Parse(id)
	if err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	if !ownership.MayAccess(caller, targetID) {
		return UserResponse{}, usererrors.ErrNotSuperuser
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*u), nil
}

func (s *service) Update(ctx context.Context, caller ownership.Caller, id string, req UpdateUserRequest) (UserResponse, error) {
	if !caller.IsSuperuser {
		return UserResponse{}, usererrors.ErrNotSuperuser
	}
	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return UserResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	u, err := qtx.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.FullName != nil {
		u.FullName = *req.FullName
	}
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}
	if req.IsSuperuser != nil {
		u.IsSuperuser = *req.IsSuperuser
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return UserResponse{}, err
		}
		u.HashedPassword = string(hashed)
	}

	if err := qtx.Update(ctx, u); err != nil {
		s.logger.Error("update user persist failed", zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return UserResponse{}, err
	}

	s.logger.Info("update user success", zap.String("user_id", id))
	return mapToResponse(*u), nil
}

func (s *service) Delete(ctx context.Context, caller ownership.Caller, id string) error {
	if !caller.IsSuperuser {
		return usererrors.ErrNotSuperuser
	}
	if id == caller.ID.String() {
		return usererrors.ErrDeleteSelf
	}
	if _, err := uuid.Parse(id); err != nil {
		return usererrors.ErrInvalidUserID
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, id); err != nil {
		return mapRepositoryError(err)
	}

	// Owned departments, employees and items go with the user via ON
	// DELETE CASCADE.
	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete user failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	s.logger.Info("delete user success", zap.String("user_id", id))
	return nil
}

func (s *service) DeleteMe(ctx context.Context, caller ownership.Caller) error {
	if caller.IsSuperuser {
		return usererrors.ErrDeleteSelf
	}

	if err := s.repo.Delete(ctx, caller.ID.String()); err != nil {
		s.logger.Error("delete me failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete me success", zap.String("user_id", caller.ID.String()))
	return nil
}

func mapToResponse(u User) UserResponse {
	return UserResponse{
		ID:          u.ID.String(),
		Email:       u.Email,
		FullName:    u.FullName,
		IsActive:    u.IsActive,
		IsSuperuser: u.IsSuperuser,
		CreatedAt:   u.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func mapToListResponse(users []User) []UserResponse {
	res := make([]UserResponse, len(users))
	for i, u := range users {
		res[i] = mapToResponse(u)
	}
	return res
}
