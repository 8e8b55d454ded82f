package department

import (
	"context"

	"go-orgadmin/internal/ownership"

	"gorm.io/gorm"
)

//go:generate mockgen -source=department_repo.go -destination=mock/department_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, dept *Department) error
	FindByID(ctx context.Context, id string) (*Department, error)
	FindPage(ctx context.Context, caller ownership.Caller, skip, limit int) ([]Department, error)
	Count(ctx context.Context, caller ownership.Caller) (int64, error)
	FindOptions(ctx context.Context) ([]Department, error)
	Update(ctx context.Context, dept *Department) error
	Delete(ctx context.Context, dept *Department) error
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

func (r *repository) Create(ctx context.Context, dept *Department) error {
	return r.db.WithContext(ctx).Create(dept).Error
}

// FindByID fetches regardless of owner; the service applies the access
// check afterwards so probing callers see NotFound before Forbidden.
func (r *repository) FindByID(ctx context.Context, id string) (*Department, error) {
	var dept Department
	err := r.db.WithContext(ctx).First(&dept, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *repository) FindPage(ctx context.Context, caller ownership.Caller, skip, limit int) ([]Department, error) {
	var depts []Department
	err := r.db.WithContext(ctx).
		Scopes(ownership.Scope(caller)).
		Order("created_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&depts).Error
	return depts, err
}

func (r *repository) Count(ctx context.Context, caller ownership.Caller) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Department{}).
		Scopes(ownership.Scope(caller)).
		Count(&count).Error
	return count, err
}

func (r *repository) FindOptions(ctx context.Context) ([]Department, error) {
	var depts []Department
	err := r.db.WithContext(ctx).
		Select("id", "name").
		Order("name ASC").
		Find(&depts).Error
	return depts, err
}

func (r *repository) Update(ctx context.Context, dept *Department) error {
	return r.db.WithContext(ctx).Save(dept).Error
}

func (r *repository) Delete(ctx context.Context, dept *Department) error {
	return r.db.WithContext(ctx).Delete(dept).Error
}
