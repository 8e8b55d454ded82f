package department

import (
	"context"
	"encoding/json"
	"time"

	departmenterrors "go-orgadmin/internal/department/errors"
	"go-orgadmin/internal/ownership"
	"go-orgadmin/internal/shared/apperror"
	"go-orgadmin/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// DepartmentOptionsKey caches the id/name pairs served to form dropdowns.
// Options are deliberately unscoped: employee records may reference any
// existing department, so every caller sees the same list.
const DepartmentOptionsKey = "departments:options"

const optionsCacheTTL = 30 * time.Minute

//go:generate mockgen -source=department_service.go -destination=mock/department_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, caller ownership.Caller, skip, limit int) (DepartmentsResponse, error)
	GetByID(ctx context.Context, caller ownership.Caller, id string) (DepartmentResponse, error)
	GetOptions(ctx context.Context) ([]DepartmentOption, error)
	Create(ctx context.Context, caller ownership.Caller, req CreateDepartmentRequest) (DepartmentResponse, error)
	Update(ctx context.Context, caller ownership.Caller, id string, req UpdateDepartmentRequest) (DepartmentResponse, error)
	Delete(ctx context.Context, caller ownership.Caller, id string) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) List(ctx context.Context, caller ownership.Caller, skip, limit int) (DepartmentsResponse, error) {
	s.logger.Debug("list departments requested",
		zap.String("caller_id", caller.ID.String()),
		zap.Int("skip", skip),
		zap.Int("limit", limit),
	)

	count, err := s.repo.Count(ctx, caller)
	if err != nil {
		s.logger.Error("list departments count failed", zap.Error(err))
		return DepartmentsResponse{}, mapRepositoryError(err)
	}

	depts, err := s.repo.FindPage(ctx, caller, skip, limit)
	if err != nil {
		s.logger.Error("list departments failed", zap.Error(err))
		return DepartmentsResponse{}, mapRepositoryError(err)
	}

	return DepartmentsResponse{Data: mapToListResponse(depts), Count: count}, nil
}

func (s *service) GetByID(ctx context.Context, caller ownership.Caller, id string) (DepartmentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return DepartmentResponse{}, departmenterrors.ErrInvalidDepartmentID
	}

	dept, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	if !ownership.MayAccess(caller, dept.OwnerID) {
		return DepartmentResponse{}, apperror.ErrForbidden
	}

	return mapToResponse(*dept), nil
}

func (s *service) GetOptions(ctx context.Context) ([]DepartmentOption, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, DepartmentOptionsKey).Result(); err == nil {
			var opts []DepartmentOption
			if json.Unmarshal([]byte(cached), &opts) == nil {
				return opts, nil
			}
		}
	}

	// Singleflight collapses the stampede when many admins open the form
	// right after an invalidation.
	v, err, _ := s.sf.Do(DepartmentOptionsKey, func() (interface{}, error) {
		depts, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		opts := make([]DepartmentOption, len(depts))
		for i, d := range depts {
			opts[i] = DepartmentOption{ID: d.ID.String(), Name: d.Name}
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(opts); err == nil {
				s.rdb.Set(ctx, DepartmentOptionsKey, jsonData, optionsCacheTTL)
			}
		}

		return opts, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]DepartmentOption), nil
}

func (s *service) Create(ctx context.Context, caller ownership.Caller, req CreateDepartmentRequest) (DepartmentResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create department requested",
		zap.String("request_id", rid),
		zap.String("code", req.Code),
	)

	dept := &Department{
		ID:      uuid.New(),
		Code:    req.Code,
		Name:    req.Name,
		OwnerID: caller.ID,
	}

	// No pre-check on the code: the unique constraint is the arbiter, and
	// a violation surfaces as the conflict error.
	if err := s.repo.Create(ctx, dept); err != nil {
		s.logger.Error("create department persist failed", zap.String("request_id", rid), zap.Error(err))
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptions(ctx)

	s.logger.Info("create department success",
		zap.String("request_id", rid),
		zap.String("department_id", dept.ID.String()),
	)
	return mapToResponse(*dept), nil
}

func (s *service) Update(ctx context.Context, caller ownership.Caller, id string, req UpdateDepartmentRequest) (DepartmentResponse, error) {
	s.logger.Debug("update department requested", zap.String("department_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return DepartmentResponse{}, departmenterrors.ErrInvalidDepartmentID
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("update department begin tx failed", zap.Error(tx.Error))
		return DepartmentResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	dept, err := qtx.FindByID(ctx, id)
	if err != nil {
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	if !ownership.MayAccess(caller, dept.OwnerID) {
		return DepartmentResponse{}, apperror.ErrForbidden
	}

	if req.Code != nil {
		dept.Code = *req.Code
	}
	if req.Name != nil {
		dept.Name = *req.Name
	}

	if err := qtx.Update(ctx, dept); err != nil {
		s.logger.Error("update department persist failed", zap.Error(err))
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("update department commit failed", zap.Error(err))
		return DepartmentResponse{}, err
	}

	s.invalidateOptions(ctx)

	s.logger.Info("update department success", zap.String("department_id", id))
	return mapToResponse(*dept), nil
}

func (s *service) Delete(ctx context.Context, caller ownership.Caller, id string) error {
	s.logger.Debug("delete department requested", zap.String("department_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return departmenterrors.ErrInvalidDepartmentID
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("delete department begin tx failed", zap.Error(tx.Error))
		return tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	dept, err := qtx.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	if !ownership.MayAccess(caller, dept.OwnerID) {
		return apperror.ErrForbidden
	}

	// Employees referencing this department are removed by the ON DELETE
	// CASCADE on employees.department_id.
	if err := qtx.Delete(ctx, dept); err != nil {
		s.logger.Error("delete department failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("delete department commit failed", zap.Error(err))
		return err
	}

	s.invalidateOptions(ctx)

	s.logger.Info("delete department success", zap.String("department_id", id))
	return nil
}

func (s *service) invalidateOptions(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, DepartmentOptionsKey).Err(); err != nil {
		s.logger.Error("failed to invalidate department options cache",
			zap.Error(err),
			zap.String("key", DepartmentOptionsKey),
		)
	}
}

func mapToResponse(dept Department) DepartmentResponse {
	return DepartmentResponse{
		ID:        dept.ID.String(),
		Code:      dept.Code,
		Name:      dept.Name,
		OwnerID:   dept.OwnerID.String(),
		CreatedAt: dept.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func mapToListResponse(depts []Department) []DepartmentResponse {
	res := make([]DepartmentResponse, len(depts))
	for i, d := range depts {
		res[i] = mapToResponse(d)
	}
	return res
}
