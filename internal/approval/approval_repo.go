package approval

import (
	"context"
	"database/sql"
	"errors"
	"time"

	approvalerrors "go-leaveai/internal/approval/errors"
	"go-leaveai/internal/shared/dbtx"
	"go-leaveai/internal/tenant"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, t *Task) error
	CompleteOpenForLeave(ctx context.Context, companyID, leaveRequestID string, completedBy *uuid.UUID, at time.Time) (int64, error)
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

func (r *repository) Create(ctx context.Context, t *Task) error {
	err := dbtx.Bind(ctx, r.db, r.tx).Create(t).Error
	if isUniqueViolation(err) {
		return approvalerrors.ErrOpenTaskExists
	}
	return err
}

func (r *repository) CompleteOpenForLeave(ctx context.Context, companyID, leaveRequestID string, completedBy *uuid.UUID, at time.Time) (int64, error) {
	res := dbtx.Bind(ctx, r.db, r.tx).
		Model(&Task{}).
		Scopes(tenant.Scope(companyID)).
		Where("leave_request_id = ?", leaveRequestID).
		Where("status <> ?", StatusCompleted).
		Updates(map[string]any{
			"status":       StatusCompleted,
			"completed_by": completedBy,
			"completed_at": at,
			"updated_at":   at,
		})
	return res.RowsAffected, res.Error
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
