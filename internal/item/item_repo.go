package item

import (
	"context"

	"go-orgadmin/internal/ownership"

	"gorm.io/gorm"
)

//go:generate mockgen -source=item_repo.go -destination=mock/item_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, it *Item) error
	FindByID(ctx context.Context, id string) (*Item, error)
	FindPage(ctx context.Context, caller ownership.Caller, skip, limit int) ([]Item, error)
	Count(ctx context.Context, caller ownership.Caller) (int64, error)
	Update(ctx context.Context, it *Item) error
	Delete(ctx context.Context, it *Item) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, it *Item) error {
	return r.db.WithContext(ctx).Create(it).Error
}

// FindByID fetches regardless of owner; the service applies the access
// check afterwards so probing callers see NotFound before Forbidden.
func (r *repository) FindByID(ctx context.Context, id string) (*Item, error) {
	var it Item
	err := r.db.WithContext(ctx).First(&it, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *repository) FindPage(ctx context.Context, caller ownership.Caller, skip, limit int) ([]Item, error) {
	var items []Item
	err := r.db.WithContext(ctx).
		Scopes(ownership.Scope(caller)).
		Order("created_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (r *repository) Count(ctx context.Context, caller ownership.Caller) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Item{}).
		Scopes(ownership.Scope(caller)).
		Count(&count).Error
	return count, err
}

func (r *repository) Update(ctx context.Context, it *Item) error {
	return r.db.WithContext(ctx).Save(it).Error
}

func (r *repository) Delete(ctx context.Context, it *Item) error {
	return r.db.WithContext(ctx).Delete(it).Error
}
