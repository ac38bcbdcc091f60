package leave

type Status string

const (
	StatusPending       Status = "PENDING"
	StatusPendingReview Status = "PENDING_REVIEW"
	StatusApproved      Status = "APPROVED"
	StatusRejected      Status = "REJECTED"
	StatusCancelled     Status = "CANCELLED"
)

// Trigger is who drives a transition.
type Trigger string

const (
	TriggerSystem   Trigger = "SYSTEM"
	TriggerHR       Trigger = "HR"
	TriggerEmployee Trigger = "EMPLOYEE"
)

type edge struct {
	to Status
	by Trigger
}

// transitions lists every legal move. Anything absent is illegal, which makes
// APPROVED, REJECTED and CANCELLED terminal.
var transitions = map[Status]map[edge]bool{
	StatusPending: {
		{StatusApproved, TriggerSystem}:      true,
		{StatusRejected, TriggerSystem}:      true,
		{StatusPendingReview, TriggerSystem}: true,
		{StatusApproved, TriggerHR}:          true,
		{StatusRejected, TriggerHR}:          true,
		{StatusCancelled, TriggerEmployee}:   true,
	},
	StatusPendingReview: {
		{StatusApproved, TriggerHR}:        true,
		{StatusRejected, TriggerHR}:        true,
		{StatusCancelled, TriggerEmployee}: true,
	},
	StatusApproved:  {},
	StatusRejected:  {},
	StatusCancelled: {},
}

func CanTransition(from, to Status, by Trigger) bool {
	return transitions[from][edge{to, by}]
}

func IsTerminal(s Status) bool {
	next, known := transitions[s]
	return known && len(next) == 0
}

// Outcome is what Process reports to its caller.
type Outcome string

const (
	OutcomeApproved         Outcome = "APPROVED"
	OutcomeRejected         Outcome = "REJECTED"
	OutcomePendingReview    Outcome = "PENDING_REVIEW"
	OutcomeCancelled        Outcome = "CANCELLED"
	OutcomeNoAction         Outcome = "NO_ACTION"
	OutcomeNotFound         Outcome = "NOT_FOUND"
	OutcomeEmployeeNotFound Outcome = "EMPLOYEE_NOT_FOUND"
)

func outcomeFor(s Status) Outcome {
	switch s {
	case StatusApproved:
		return OutcomeApproved
	case StatusRejected:
		return OutcomeRejected
	case StatusPendingReview:
		return OutcomePendingReview
	case StatusCancelled:
		return OutcomeCancelled
	default:
		return OutcomeNoAction
	}
}
