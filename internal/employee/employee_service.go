package employee

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	employeeerrors "go-orgadmin/internal/employee/errors"
	"go-orgadmin/internal/events"
	"go-orgadmin/internal/messaging/kafka"
	"go-orgadmin/internal/ownership"
	"go-orgadmin/internal/shared/apperror"
	"go-orgadmin/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, caller ownership.Caller, skip, limit int) (EmployeesResponse, error)
	GetByID(ctx context.Context, caller ownership.Caller, id string) (EmployeeResponse, error)
	Create(ctx context.Context, caller ownership.Caller, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, caller ownership.Caller, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, caller ownership.Caller, id string) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, logger...)
}

func NewServiceWithOutbox(
	db *gorm.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		logger: l,
	}
}

func (s *service) List(ctx context.Context, caller ownership.Caller, skip, limit int) (EmployeesResponse, error) {
	s.logger.Debug("list employees requested",
		zap.String("caller_id", caller.ID.String()),
		zap.Int("skip", skip),
		zap.Int("limit", limit),
	)

	count, err := s.repo.Count(ctx, caller)
	if err != nil {
		s.logger.Error("list employees count failed", zap.Error(err))
		return EmployeesResponse{}, mapRepositoryError(err)
	}

	empls, err := s.repo.FindPage(ctx, caller, skip, limit)
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return EmployeesResponse{}, mapRepositoryError(err)
	}

	return EmployeesResponse{Data: mapToListResponse(empls), Count: count}, nil
}

func (s *service) GetByID(ctx context.Context, caller ownership.Caller, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if !ownership.MayAccess(caller, empl.OwnerID) {
		return EmployeeResponse{}, apperror.ErrForbidden
	}

	return mapToResponse(*empl), nil
}

func (s *service) Create(ctx context.Context, caller ownership.Caller, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("work_email", req.WorkEmail),
	)

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(tx.Error))
		return EmployeeResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl := &Employee{
		ID:           uuid.New(),
		WorkEmail:    req.WorkEmail,
		Name:         req.Name,
		Address:      req.Address,
		MobileNumber: req.MobileNumber,
		OwnerID:      caller.ID,
	}

	// The department reference is resolved inside the transaction so the
	// snapshotted name matches the row the foreign key will point at.
	if req.DepartmentID != nil {
		depName, err := qtx.GetDepartmentName(ctx, *req.DepartmentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				s.logger.Warn("create employee department not found",
					zap.String("department_id", *req.DepartmentID),
				)
				return EmployeeResponse{}, employeeerrors.ErrDepartmentNotFound
			}
			s.logger.Error("create employee department lookup failed", zap.Error(err))
			return EmployeeResponse{}, mapRepositoryError(err)
		}

		depID := uuid.MustParse(*req.DepartmentID)
		empl.DepartmentID = &depID
		empl.DepName = &depName
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeCreatedEvent{
			EventType:  "employee_created",
			RequestID:  rid,
			EmployeeID: empl.ID.String(),
			OwnerID:    caller.ID.String(),
			WorkEmail:  empl.WorkEmail,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return EmployeeResponse{}, err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   empl.ID.String(),
			EventType:     event.EventType,
			Topic:         events.EmployeeCreatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("create employee outbox persist failed",
				zap.String("employee_id", empl.ID.String()),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)

	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, caller ownership.Caller, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested", zap.String("employee_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(tx.Error))
		return EmployeeResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if !ownership.MayAccess(caller, empl.OwnerID) {
		return EmployeeResponse{}, apperror.ErrForbidden
	}

	if req.WorkEmail != nil {
		empl.WorkEmail = *req.WorkEmail
	}
	if req.Name != nil {
		empl.Name = *req.Name
	}
	if req.Address != nil {
		empl.Address = *req.Address
	}
	if req.MobileNumber != nil {
		empl.MobileNumber = *req.MobileNumber
	}

	// A patch that does not touch department_id leaves the snapshotted
	// name exactly as it was.
	if req.DepartmentID != nil {
		depName, err := qtx.GetDepartmentName(ctx, *req.DepartmentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				s.logger.Warn("update employee department not found",
					zap.String("department_id", *req.DepartmentID),
				)
				return EmployeeResponse{}, employeeerrors.ErrDepartmentNotFound
			}
			s.logger.Error("update employee department lookup failed", zap.Error(err))
			return EmployeeResponse{}, mapRepositoryError(err)
		}

		depID := uuid.MustParse(*req.DepartmentID)
		empl.DepartmentID = &depID
		empl.DepName = &depName
	}

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update employee success", zap.String("employee_id", id))
	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, caller ownership.Caller, id string) error {
	s.logger.Debug("delete employee requested", zap.String("employee_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(tx.Error))
		return tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	if !ownership.MayAccess(caller, empl.OwnerID) {
		return apperror.ErrForbidden
	}

	if err := qtx.Delete(ctx, empl); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:           empl.ID.String(),
		WorkEmail:    empl.WorkEmail,
		Name:         empl.Name,
		Address:      empl.Address,
		MobileNumber: empl.MobileNumber,
		OwnerID:      empl.OwnerID.String(),
		CreatedAt:    empl.CreatedAt.UTC().Format(time.RFC3339),
	}
	if empl.DepName != nil {
		resp.DepName = *empl.DepName
	}
	if empl.DepartmentID != nil {
		resp.DepartmentID = empl.DepartmentID.String()
	}
	return resp
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
