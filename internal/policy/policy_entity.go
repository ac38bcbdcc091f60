package policy

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type DateRange struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// LeavePolicy with a nil DepartmentID is the company-wide default.
type LeavePolicy struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID    uuid.UUID  `gorm:"type:uuid;not null;index:idx_leave_policies_scope"`
	DepartmentID *uuid.UUID `gorm:"type:uuid;index:idx_leave_policies_scope"`
	Location     *string    `gorm:"type:varchar(100)"`
	Grade        *string    `gorm:"type:varchar(50)"`
	Name         string     `gorm:"type:varchar(100);not null"`

	AnnualLeaveDays    int `gorm:"not null;default:22"`
	SickLeaveDays      int `gorm:"not null;default:10"`
	CasualLeaveDays    int `gorm:"not null;default:5"`
	MaternityLeaveDays int `gorm:"not null;default:90"`
	PaternityLeaveDays int `gorm:"not null;default:15"`

	AllowNegativeBalance   bool `gorm:"not null;default:false"`
	ReasonMandatory        bool `gorm:"not null;default:true"`
	RequireManagerApproval bool `gorm:"not null;default:true"`

	LongLeaveThresholdDays     int     `gorm:"not null;default:5"`
	MinAdvanceDaysForLongLeave int     `gorm:"not null;default:7"`
	MaxConsecutiveLeaveDays    int     `gorm:"not null;default:15"`
	MaxUnplannedLeaves30Days   int     `gorm:"column:max_unplanned_leaves_30_days;not null;default:3"`
	MaxLeaves90Days            int     `gorm:"column:max_leaves_90_days;not null;default:10"`
	MaxPatternScore            float64 `gorm:"not null;default:0.7"`
	HistoryWindowDays          int     `gorm:"not null;default:180"`

	BlackoutPeriods datatypes.JSONSlice[DateRange] `gorm:"type:jsonb"`
	Holidays        datatypes.JSONSlice[string]    `gorm:"type:jsonb"`

	IsActive  bool `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LeavePolicy) TableName() string {
	return "leave_policies"
}

// Allocation returns the yearly entitlement for a leave type; UNPAID has none.
func (p LeavePolicy) Allocation(leaveType string) int {
	switch strings.ToUpper(leaveType) {
	case "ANNUAL":
		return p.AnnualLeaveDays
	case "SICK":
		return p.SickLeaveDays
	case "CASUAL":
		return p.CasualLeaveDays
	case "MATERNITY":
		return p.MaternityLeaveDays
	case "PATERNITY":
		return p.PaternityLeaveDays
	default:
		return 0
	}
}
