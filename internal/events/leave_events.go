package events

import "time"

const (
	LeaveSubmittedTopic = "hr.leave.submitted.v1"
	LeaveDecidedTopic   = "hr.leave.decided.v1"
	LeaveAuditTopic     = "hr.leave.audit.v1"
)

// LeaveSubmittedEvent asks the evaluation pipeline to process a request
// created by the intake API.
type LeaveSubmittedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	LeaveRequestID string    `json:"leave_request_id"`
	CompanyID      string    `json:"company_id"`
	EmployeeID     string    `json:"employee_id"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// LeaveDecidedEvent is the employee notification for any status change.
type LeaveDecidedEvent struct {
	EventType      string    `json:"event_type"`
	LeaveRequestID string    `json:"leave_request_id"`
	RequestNumber  string    `json:"request_number"`
	CompanyID      string    `json:"company_id"`
	EmployeeID     string    `json:"employee_id"`
	EmployeeEmail  string    `json:"employee_email,omitempty"`
	Outcome        string    `json:"outcome"`
	LeaveType      string    `json:"leave_type"`
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`
	TotalDays      string    `json:"total_days"`
	Explanation    string    `json:"explanation"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// LeaveAuditRecordedEvent mirrors an appended audit log entry.
type LeaveAuditRecordedEvent struct {
	EventType      string         `json:"event_type"`
	RequestID      string         `json:"request_id,omitempty"`
	AuditID        string         `json:"audit_id"`
	LeaveRequestID string         `json:"leave_request_id"`
	CompanyID      string         `json:"company_id"`
	Action         string         `json:"action"`
	ActorID        string         `json:"actor_id,omitempty"`
	ActorType      string         `json:"actor_type"`
	PreviousStatus string         `json:"previous_status"`
	NewStatus      string         `json:"new_status"`
	Details        string         `json:"details"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	OccurredAt     time.Time      `json:"occurred_at"`
}
