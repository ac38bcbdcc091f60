package approval

import "go-leaveai/internal/leavestats"

// PriorityFor ranks a review task by risk level and requested working days.
func PriorityFor(risk leavestats.RiskLevel, requestedDays int) string {
	switch {
	case risk == leavestats.RiskHigh || requestedDays >= 10:
		return PriorityHigh
	case risk == leavestats.RiskMedium || requestedDays >= 5:
		return PriorityMedium
	default:
		return PriorityNormal
	}
}
