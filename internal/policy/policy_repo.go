package policy

import (
	"context"
	"errors"

	"go-leaveai/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	// FindApplicable returns nil without error when no active policy exists.
	FindApplicable(ctx context.Context, companyID string, departmentID *uuid.UUID) (*LeavePolicy, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindApplicable(ctx context.Context, companyID string, departmentID *uuid.UUID) (*LeavePolicy, error) {
	if departmentID != nil {
		p, err := r.findOne(ctx, companyID, func(db *gorm.DB) *gorm.DB {
			return db.Where("department_id = ?", *departmentID)
		})
		if err != nil || p != nil {
			return p, err
		}
	}

	return r.findOne(ctx, companyID, func(db *gorm.DB) *gorm.DB {
		return db.Where("department_id IS NULL")
	})
}

func (r *repository) findOne(ctx context.Context, companyID string, scope func(*gorm.DB) *gorm.DB) (*LeavePolicy, error) {
	var p LeavePolicy
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID), scope).
		Where("is_active = ?", true).
		Order("updated_at DESC").
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
