package audit

import (
	"context"
	"database/sql"

	"go-leaveai/internal/shared/dbtx"
	"go-leaveai/internal/tenant"

	"gorm.io/gorm"
)

// Repository is append-only; entries are never updated or deleted.
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Append(ctx context.Context, e *Entry) error
	ListByLeave(ctx context.Context, companyID, leaveRequestID string) ([]Entry, error)
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

func (r *repository) Append(ctx context.Context, e *Entry) error {
	return dbtx.Bind(ctx, r.db, r.tx).Create(e).Error
}

func (r *repository) ListByLeave(ctx context.Context, companyID, leaveRequestID string) ([]Entry, error) {
	var entries []Entry
	err := dbtx.Bind(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		Where("leave_request_id = ?", leaveRequestID).
		Order("created_at ASC").
		Find(&entries).Error
	return entries, err
}
