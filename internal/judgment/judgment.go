package judgment

import (
	"context"
	"errors"
	"strings"

	"go-leaveai/internal/leavestats"
)

type Action string

const (
	ActionApprove      Action = "APPROVE"
	ActionReject       Action = "REJECT"
	ActionManualReview Action = "MANUAL_REVIEW"
)

func (a Action) Valid() bool {
	switch a {
	case ActionApprove, ActionReject, ActionManualReview:
		return true
	}
	return false
}

const (
	CategorySecurityViolation = "SECURITY_VIOLATION"
	CategoryInvalidInput      = "INVALID_INPUT"
	CategoryInsufficientInfo  = "INSUFFICIENT_INFO"
	CategoryExcessiveInfo     = "EXCESSIVE_INFO"
)

// Categories an external service may assign to a reason.
const (
	CategoryPersonal  = "PERSONAL"
	CategoryMedical   = "MEDICAL"
	CategoryFamily    = "FAMILY"
	CategoryVacation  = "VACATION"
	CategoryEmergency = "EMERGENCY"
	CategoryOther     = "OTHER"
)

// normalizeCategory folds case and maps anything unrecognised to OTHER.
func normalizeCategory(c string) string {
	c = strings.ToUpper(strings.TrimSpace(c))
	switch c {
	case CategoryPersonal, CategoryMedical, CategoryFamily, CategoryVacation, CategoryEmergency, CategoryOther:
		return c
	}
	return CategoryOther
}

const (
	ErrMarkerNotConfigured = "AI not configured"
	ErrMarkerTimeout       = "AI timeout"
)

var ErrMalformedResponse = errors.New("malformed judgment response")

type PolicySummary struct {
	ReasonMandatory          bool `json:"reason_mandatory"`
	LongLeaveThresholdDays   int  `json:"long_leave_threshold_days"`
	MaxUnplannedLeaves30Days int  `json:"max_unplanned_leaves_30_days"`
}

type EmployeeContext struct {
	TenureMonths int    `json:"tenure_months"`
	RoleLevel    string `json:"role_level"`
	Department   string `json:"department"`
}

type CertificateValidation struct {
	IsValid         bool    `json:"is_valid"`
	ConfidenceScore float64 `json:"confidence_score"`
	Notes           string  `json:"notes,omitempty"`
}

type Input struct {
	LeaveType     string                 `json:"leave_type"`
	StartDate     string                 `json:"start_date"`
	EndDate       string                 `json:"end_date"`
	RequestedDays int                    `json:"requested_days"`
	ReasonText    string                 `json:"reason_text"`
	Policy        PolicySummary          `json:"company_policy"`
	History       leavestats.Stats       `json:"history_stats"`
	Employee      EmployeeContext        `json:"employee_context"`
	Certificate   *CertificateValidation `json:"certificate_validation,omitempty"`
}

// Judgment is the structured answer of an external judgment service.
type Judgment struct {
	ReasonCategory    string   `json:"reason_category"`
	ValidityScore     float64  `json:"validity_score"`
	RiskFlags         []string `json:"risk_flags"`
	RecommendedAction Action   `json:"recommended_action"`
	Rationale         string   `json:"rationale"`
}

// Result is what the adapter hands back to callers. Err is non-empty when
// the service could not produce a usable judgment; callers must check it.
type Result struct {
	Judgment
	Err      string `json:"error,omitempty"`
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

func (r Result) Failed() bool {
	return r.Err != ""
}

//go:generate mockgen -source=judgment.go -destination=mock/judgment_mock.go -package=mock
type Client interface {
	Evaluate(ctx context.Context, in Input) (Judgment, error)
}
