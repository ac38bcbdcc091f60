package leave

import "go-leaveai/internal/calendar"

type ApproveLeaveRequest struct {
	Comments string `json:"comments"`
}

type RejectLeaveRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type PreviewWorkingDaysRequest struct {
	StartDate string `form:"start_date" binding:"required"`
	EndDate   string `form:"end_date" binding:"required"`
}

type ProcessResponse struct {
	LeaveID string  `json:"leave_id"`
	Outcome Outcome `json:"outcome"`
}

type LeaveResponse struct {
	ID                  string   `json:"id"`
	RequestNumber       string   `json:"request_number"`
	CompanyID           string   `json:"company_id"`
	EmployeeID          string   `json:"employee_id"`
	LeaveType           string   `json:"leave_type"`
	StartDate           string   `json:"start_date"`
	EndDate             string   `json:"end_date"`
	TotalDays           string   `json:"total_days"`
	ReasonText          string   `json:"reason_text"`
	Status              string   `json:"status"`
	RiskLevel           string   `json:"risk_level,omitempty"`
	AIValidityScore     *float64 `json:"ai_validity_score,omitempty"`
	AIRiskFlags         []string `json:"ai_risk_flags,omitempty"`
	AIRecommendedAction string   `json:"ai_recommended_action,omitempty"`
	AIRationale         string   `json:"ai_rationale,omitempty"`
	AIReasonCategory    string   `json:"ai_reason_category,omitempty"`
	DecisionEngine      string   `json:"decision_engine,omitempty"`
	DecisionExplanation string   `json:"decision_explanation,omitempty"`
	ReviewedBy          *string  `json:"reviewed_by,omitempty"`
	ReviewedAt          *string  `json:"reviewed_at,omitempty"`
	ReviewerComments    *string  `json:"reviewer_comments,omitempty"`
}

type AuditEntryResponse struct {
	ID             string         `json:"id"`
	Action         string         `json:"action"`
	ActorID        *string        `json:"actor_id,omitempty"`
	ActorType      string         `json:"actor_type"`
	PreviousStatus string         `json:"previous_status,omitempty"`
	NewStatus      string         `json:"new_status,omitempty"`
	Details        string         `json:"details,omitempty"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	CreatedAt      string         `json:"created_at"`
}

type WorkingDaysPreviewResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	calendar.Breakdown
}
