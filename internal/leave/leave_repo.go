package leave

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go-leaveai/internal/shared/counter"
	"go-leaveai/internal/shared/dbtx"
	"go-leaveai/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const requestNumberPrefix = "LR"

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	// FindByIDAndCompany returns nil without error when the request does not exist.
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*LeaveRequest, error)
	FindByIDForUpdate(ctx context.Context, companyID, id string) (*LeaveRequest, error)
	// FindHistory returns the employee's requests created at or after since,
	// excluding excludeID, in counted statuses only.
	FindHistory(ctx context.Context, companyID, employeeID string, since time.Time, excludeID string) ([]LeaveRequest, error)
	UpdateDecision(ctx context.Context, l *LeaveRequest) error
	NextRequestNumber(ctx context.Context, companyID string, day time.Time) (string, error)
}

type repository struct {
	db       *gorm.DB
	tx       *sql.Tx
	counters counter.Repository
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db, counters: counter.NewRepository(db)}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx, counters: r.counters.WithTx(tx)}
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*LeaveRequest, error) {
	return r.find(dbtx.Bind(ctx, r.db, r.tx), companyID, id)
}

func (r *repository) FindByIDForUpdate(ctx context.Context, companyID, id string) (*LeaveRequest, error) {
	db := dbtx.Bind(ctx, r.db, r.tx).Clauses(clause.Locking{Strength: "UPDATE"})
	return r.find(db, companyID, id)
}

func (r *repository) find(db *gorm.DB, companyID, id string) (*LeaveRequest, error) {
	var l LeaveRequest
	err := db.
		Scopes(tenant.Scope(companyID)).
		First(&l, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) FindHistory(ctx context.Context, companyID, employeeID string, since time.Time, excludeID string) ([]LeaveRequest, error) {
	var out []LeaveRequest
	err := dbtx.Bind(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("created_at >= ?", since).
		Where("id <> ?", excludeID).
		Where("status IN ?", []string{string(StatusApproved), string(StatusPending), string(StatusPendingReview)}).
		Order("start_date ASC").
		Find(&out).Error
	return out, err
}

func (r *repository) UpdateDecision(ctx context.Context, l *LeaveRequest) error {
	return dbtx.Bind(ctx, r.db, r.tx).
		Model(l).
		Select(
			"request_number", "total_days", "status", "risk_level",
			"ai_validity_score", "ai_risk_flags", "ai_recommended_action", "ai_rationale", "ai_reason_category",
			"decision_engine", "decision_explanation",
			"reviewed_by", "reviewed_at", "reviewer_comments", "updated_at",
		).
		Updates(l).Error
}

// NextRequestNumber allocates LR-YYYYMMDD-NNNN from a per-company daily counter.
func (r *repository) NextRequestNumber(ctx context.Context, companyID string, day time.Time) (string, error) {
	seq, err := r.counters.GetNextValue(ctx, companyID, "leave_request:"+day.Format("20060102"))
	if err != nil {
		return "", err
	}
	return FormatRequestNumber(day, seq), nil
}

func FormatRequestNumber(day time.Time, seq int64) string {
	return fmt.Sprintf("%s-%s-%04d", requestNumberPrefix, day.Format("20060102"), seq)
}
