package balance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LeaveBalance is one employee's allowance for a leave type in a calendar year.
type LeaveBalance struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID     uuid.UUID       `gorm:"type:uuid;not null"`
	EmployeeID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_leave_balance_employee_type_year"`
	LeaveType     string          `gorm:"type:varchar(20);not null;uniqueIndex:uq_leave_balance_employee_type_year"`
	Year          int             `gorm:"not null;uniqueIndex:uq_leave_balance_employee_type_year"`
	TotalDays     decimal.Decimal `gorm:"type:numeric(6,1);not null;default:0"`
	UsedDays      decimal.Decimal `gorm:"type:numeric(6,1);not null;default:0"`
	PendingDays   decimal.Decimal `gorm:"type:numeric(6,1);not null;default:0"`
	RemainingDays decimal.Decimal `gorm:"type:numeric(6,1);not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (LeaveBalance) TableName() string {
	return "leave_balances"
}

// ApplyApproval books days as used: pending is released without going
// negative and remaining is recomputed from the allocation.
func ApplyApproval(b LeaveBalance, days decimal.Decimal) LeaveBalance {
	b.UsedDays = b.UsedDays.Add(days)
	b.PendingDays = decimal.Max(decimal.Zero, b.PendingDays.Sub(days))
	b.RemainingDays = b.TotalDays.Sub(b.UsedDays)
	return b
}
