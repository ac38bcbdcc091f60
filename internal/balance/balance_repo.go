package balance

import (
	"context"
	"database/sql"
	"errors"

	"go-leaveai/internal/shared/dbtx"
	"go-leaveai/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Find(ctx context.Context, companyID, employeeID, leaveType string, year int) (*LeaveBalance, error)
	FindForUpdate(ctx context.Context, companyID, employeeID, leaveType string, year int) (*LeaveBalance, error)
	Update(ctx context.Context, b *LeaveBalance) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

// Find returns nil without error when the employee has no balance row.
func (r *repository) Find(ctx context.Context, companyID, employeeID, leaveType string, year int) (*LeaveBalance, error) {
	return r.find(dbtx.Bind(ctx, r.db, r.tx), companyID, employeeID, leaveType, year)
}

// FindForUpdate row-locks the balance until the surrounding transaction ends.
func (r *repository) FindForUpdate(ctx context.Context, companyID, employeeID, leaveType string, year int) (*LeaveBalance, error) {
	db := dbtx.Bind(ctx, r.db, r.tx).Clauses(clause.Locking{Strength: "UPDATE"})
	return r.find(db, companyID, employeeID, leaveType, year)
}

func (r *repository) find(db *gorm.DB, companyID, employeeID, leaveType string, year int) (*LeaveBalance, error) {
	var b LeaveBalance
	err := db.
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ? AND leave_type = ? AND year = ?", employeeID, leaveType, year).
		First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) Update(ctx context.Context, b *LeaveBalance) error {
	return dbtx.Bind(ctx, r.db, r.tx).
		Model(b).
		Select("used_days", "pending_days", "remaining_days", "updated_at").
		Updates(b).Error
}
