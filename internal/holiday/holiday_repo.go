package holiday

import (
	"context"
	"database/sql"
	"time"

	"go-leaveai/internal/calendar"
	"go-leaveai/internal/shared/dbtx"
	"go-leaveai/internal/tenant"

	"gorm.io/gorm"
)

const insertBatchSize = 100

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	// ReplaceAll removes every holiday of the company and stores the given set.
	ReplaceAll(ctx context.Context, companyID string, holidays []Holiday) (deleted int64, err error)
	ListByYear(ctx context.Context, companyID string, year int) ([]Holiday, error)
	ListDates(ctx context.Context, companyID string, from, to time.Time) ([]time.Time, error)
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

func (r *repository) ReplaceAll(ctx context.Context, companyID string, holidays []Holiday) (int64, error) {
	db := dbtx.Bind(ctx, r.db, r.tx)

	res := db.Scopes(tenant.Scope(companyID)).Delete(&Holiday{})
	if res.Error != nil {
		return 0, res.Error
	}

	if len(holidays) == 0 {
		return res.RowsAffected, nil
	}
	if err := db.CreateInBatches(holidays, insertBatchSize).Error; err != nil {
		return 0, err
	}
	return res.RowsAffected, nil
}

func (r *repository) ListByYear(ctx context.Context, companyID string, year int) ([]Holiday, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	var out []Holiday
	err := dbtx.Bind(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		Where("is_active = ?", true).
		Where("date BETWEEN ? AND ?", from.Format(calendar.DateLayout), to.Format(calendar.DateLayout)).
		Order("date ASC").
		Find(&out).Error
	return out, err
}

func (r *repository) ListDates(ctx context.Context, companyID string, from, to time.Time) ([]time.Time, error) {
	var dates []time.Time
	err := dbtx.Bind(ctx, r.db, r.tx).
		Model(&Holiday{}).
		Scopes(tenant.Scope(companyID)).
		Where("is_active = ?", true).
		Where("date BETWEEN ? AND ?", from.Format(calendar.DateLayout), to.Format(calendar.DateLayout)).
		Order("date ASC").
		Pluck("date", &dates).Error
	return dates, err
}
