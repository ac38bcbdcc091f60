package company

import (
	"context"
	"errors"

	"go-leaveai/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -destination=mock/company_repo_mock.go -package=mock . Repository
type Repository interface {
	FindLatestPolicy(ctx context.Context, companyID string) (*Policy, error)
	CreatePolicy(ctx context.Context, p *Policy) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindLatestPolicy returns nil without error when nothing is configured.
func (r *repository) FindLatestPolicy(ctx context.Context, companyID string) (*Policy, error) {
	var p Policy
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("effective_from <= CURRENT_DATE").
		Order("effective_from DESC, updated_at DESC").
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) CreatePolicy(ctx context.Context, p *Policy) error {
	return r.db.WithContext(ctx).Create(p).Error
}
