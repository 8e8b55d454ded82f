package employee

import (
	"context"

	"go-orgadmin/internal/ownership"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, empl *Employee) error
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindPage(ctx context.Context, caller ownership.Caller, skip, limit int) ([]Employee, error)
	Count(ctx context.Context, caller ownership.Caller) (int64, error)
	GetDepartmentName(ctx context.Context, departmentID string) (string, error)
	Update(ctx context.Context, empl *Employee) error
	Delete(ctx context.Context, empl *Employee) error
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

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

// FindByID fetches regardless of owner; the service applies the access
// check afterwards so probing callers see NotFound before Forbidden.
func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).First(&empl, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) FindPage(ctx context.Context, caller ownership.Caller, skip, limit int) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Scopes(ownership.Scope(caller)).
		Order("created_at DESC").
		Offset(skip).
		Limit(limit).
		Find(&empls).Error
	return empls, err
}

func (r *repository) Count(ctx context.Context, caller ownership.Caller) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Scopes(ownership.Scope(caller)).
		Count(&count).Error
	return count, err
}

// GetDepartmentName reports a missing department as gorm.ErrRecordNotFound
// so a dangling reference is never confused with a stored name.
func (r *repository) GetDepartmentName(ctx context.Context, departmentID string) (string, error) {
	var name string
	err := r.db.WithContext(ctx).
		Table("departments").
		Select("name").
		Where("id = ?", departmentID).
		Take(&name).Error
	if err != nil {
		return "", err
	}
	return name, nil
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Save(empl).Error
}

func (r *repository) Delete(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Delete(empl).Error
}
