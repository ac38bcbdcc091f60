package employee

import (
	"context"
	"errors"

	"go-leaveai/internal/tenant"

	"gorm.io/gorm"
)

type Repository interface {
	// FindByIDAndCompany returns nil without error when the employee does not exist.
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Employee, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Employee, error) {
	var emp Employee
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("employees.*, departments.name AS department_name").
		Joins("LEFT JOIN departments ON departments.id = employees.department_id").
		Scopes(tenant.ScopeTable("employees", companyID)).
		Where("employees.id = ?", id).
		Where("employees.deleted_at IS NULL").
		Take(&emp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &emp, nil
}
