package leave

import (
	"time"

	"go-leaveai/internal/judgment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

const (
	TypeAnnual    = "ANNUAL"
	TypeSick      = "SICK"
	TypeCasual    = "CASUAL"
	TypeMaternity = "MATERNITY"
	TypePaternity = "PATERNITY"
	TypeUnpaid    = "UNPAID"
)

// LeaveRequest is created PENDING by the intake API. TotalDays is only ever
// written by Process from the working-day calculation.
type LeaveRequest struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID     uuid.UUID `gorm:"type:uuid;not null;index:idx_leave_requests_company_status"`
	EmployeeID    uuid.UUID `gorm:"type:uuid;not null;index:idx_leave_requests_employee_created"`
	RequestNumber string    `gorm:"type:varchar(30)"`

	LeaveType  string          `gorm:"type:varchar(20);not null"`
	StartDate  time.Time       `gorm:"type:date;not null"`
	EndDate    time.Time       `gorm:"type:date;not null"`
	TotalDays  decimal.Decimal `gorm:"type:numeric(6,1);not null;default:0"`
	ReasonText string          `gorm:"type:text"`

	CertificateURL        *string           `gorm:"type:text"`
	CertificateFilename   *string           `gorm:"type:varchar(255)"`
	CertificateSize       *int64
	CertificateValidation datatypes.JSONMap `gorm:"type:jsonb"`

	Status              string                      `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_leave_requests_company_status"`
	RiskLevel           string                      `gorm:"type:varchar(10)"`
	AIValidityScore     *float64                    `gorm:"column:ai_validity_score"`
	AIRiskFlags         datatypes.JSONSlice[string] `gorm:"column:ai_risk_flags;type:jsonb"`
	AIRecommendedAction string                      `gorm:"column:ai_recommended_action;type:varchar(20)"`
	AIRationale         string                      `gorm:"column:ai_rationale;type:text"`
	AIReasonCategory    string                      `gorm:"column:ai_reason_category;type:varchar(50)"`
	DecisionEngine      string                      `gorm:"type:varchar(20)"`
	DecisionExplanation string                      `gorm:"type:text"`

	ReviewedBy       *uuid.UUID `gorm:"type:uuid"`
	ReviewedAt       *time.Time
	ReviewerComments *string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"index:idx_leave_requests_employee_created"`
	UpdatedAt time.Time
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

// Certificate returns the stored validation result, or nil when no
// certificate was checked.
func (l LeaveRequest) Certificate() *judgment.CertificateValidation {
	if len(l.CertificateValidation) == 0 {
		return nil
	}

	cv := &judgment.CertificateValidation{}
	if v, ok := l.CertificateValidation["is_valid"].(bool); ok {
		cv.IsValid = v
	}
	switch v := l.CertificateValidation["confidence_score"].(type) {
	case float64:
		cv.ConfidenceScore = v
	case int:
		cv.ConfidenceScore = float64(v)
	}
	if v, ok := l.CertificateValidation["notes"].(string); ok {
		cv.Notes = v
	}
	return cv
}
