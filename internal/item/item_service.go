package item

import (
	"context"
	"time"

	itemerrors "go-orgadmin/internal/item/errors"
	"go-orgadmin/internal/ownership"
	"go-orgadmin/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=item_service.go -destination=mock/item_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, caller ownership.Caller, skip, limit int) (ItemsResponse, error)
	GetByID(ctx context.Context, caller ownership.Caller, id string) (ItemResponse, error)
	Create(ctx context.Context, caller ownership.Caller, req CreateItemRequest) (ItemResponse, error)
	Update(ctx context.Context, caller ownership.Caller, id string, req UpdateItemRequest) (ItemResponse, error)
	Delete(ctx context.Context, caller ownership.Caller, id string) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("item.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("item.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) List(ctx context.Context, caller ownership.Caller, skip, limit int) (ItemsResponse, error) {
	count, err := s.repo.Count(ctx, caller)
	if err != nil {
		s.logger.Error("list items count failed", zap.Error(err))
		return ItemsResponse{}, mapRepositoryError(err)
	}

	items, err := s.repo.FindPage(ctx, caller, skip, limit)
	if err != nil {
		s.logger.Error("list items failed", zap.Error(err))
		return ItemsResponse{}, mapRepositoryError(err)
	}

	return ItemsResponse{Data: mapToListResponse(items), Count: count}, nil
}

func (s *service) GetByID(ctx context.Context, caller ownership.Caller, id string) (ItemResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ItemResponse{}, itemerrors.ErrInvalidItemID
	}

	it, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return ItemResponse{}, mapRepositoryError(err)
	}

	if !ownership.MayAccess(caller, it.OwnerID) {
		return ItemResponse{}, apperror.ErrForbidden
	}

	return mapToResponse(*it), nil
}

func (s *service) Create(ctx context.Context, caller ownership.Caller, req CreateItemRequest) (ItemResponse, error) {
	it := &Item{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		OwnerID:     caller.ID,
	}

	if err := s.repo.Create(ctx, it); err != nil {
		s.logger.Error("create item failed", zap.Error(err))
		return ItemResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create item success", zap.String("item_id", it.ID.String()))
	return mapToResponse(*it), nil
}

func (s *service) Update(ctx context.Context, caller ownership.Caller, id string, req UpdateItemRequest) (ItemResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ItemResponse{}, itemerrors.ErrInvalidItemID
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("update item begin tx failed", zap.Error(tx.Error))
		return ItemResponse{}, tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	it, err := qtx.FindByID(ctx, id)
	if err != nil {
		return ItemResponse{}, mapRepositoryError(err)
	}

	if !ownership.MayAccess(caller, it.OwnerID) {
		return ItemResponse{}, apperror.ErrForbidden
	}

	if req.Title != nil {
		it.Title = *req.Title
	}
	if req.Description != nil {
		it.Description = req.Description
	}

	if err := qtx.Update(ctx, it); err != nil {
		s.logger.Error("update item persist failed", zap.Error(err))
		return ItemResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("update item commit failed", zap.Error(err))
		return ItemResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update item success", zap.String("item_id", id))
	return mapToResponse(*it), nil
}

func (s *service) Delete(ctx context.Context, caller ownership.Caller, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return itemerrors.ErrInvalidItemID
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("delete item begin tx failed", zap.Error(tx.Error))
		return tx.Error
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	it, err := qtx.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	if !ownership.MayAccess(caller, it.OwnerID) {
		return apperror.ErrForbidden
	}

	if err := qtx.Delete(ctx, it); err != nil {
		s.logger.Error("delete item failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("delete item commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete item success", zap.String("item_id", id))
	return nil
}

func mapToResponse(it Item) ItemResponse {
	return ItemResponse{
		ID:          it.ID.String(),
		Title:       it.Title,
		Description: it.Description,
		OwnerID:     it.OwnerID.String(),
		CreatedAt:   it.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func mapToListResponse(items []Item) []ItemResponse {
	res := make([]ItemResponse, len(items))
	for i, it := range items {
		res[i] = mapToResponse(it)
	}
	return res
}
