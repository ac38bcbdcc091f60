package policy

import (
	"fmt"
	"strings"
	"time"

	"go-leaveai/internal/calendar"
	"go-leaveai/internal/leavestats"

	"github.com/shopspring/decimal"
)

const (
	CodeInsufficientBalance = "INSUFFICIENT_BALANCE"
	CodeInsufficientNotice  = "INSUFFICIENT_NOTICE"
	CodeBlackoutPeriod      = "BLACKOUT_PERIOD"
	CodeUnplannedLimit      = "UNPLANNED_LIMIT"
	CodeSuspiciousPattern   = "SUSPICIOUS_PATTERN"
	CodeConsecutiveLimit    = "CONSECUTIVE_LIMIT"
	CodeReasonRequired      = "REASON_REQUIRED"
	CodeInvalidDateRange    = "INVALID_DATE_RANGE"
)

var blockingCodes = map[string]bool{
	CodeInsufficientBalance: true,
	CodeInvalidDateRange:    true,
	CodeBlackoutPeriod:      true,
	CodeReasonRequired:      true,
}

type Violation struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Blocking bool   `json:"blocking"`
}

func newViolation(code, message string) Violation {
	return Violation{Code: code, Message: message, Blocking: blockingCodes[code]}
}

// Candidate is the request under evaluation. RequestedDays must already be
// the working-day count for the range.
type Candidate struct {
	StartDate     time.Time
	EndDate       time.Time
	RequestedDays int
	ReasonText    string
}

// Check runs every rule in a fixed order and returns all violations found.
func Check(c Candidate, p LeavePolicy, remaining decimal.Decimal, stats leavestats.Stats, now time.Time) []Violation {
	var out []Violation
	requested := decimal.NewFromInt(int64(c.RequestedDays))

	if remaining.LessThan(requested) && !p.AllowNegativeBalance {
		out = append(out, newViolation(CodeInsufficientBalance, "Insufficient leave balance"))
	}

	if c.RequestedDays >= p.LongLeaveThresholdDays &&
		calendar.DaysBetween(now, c.StartDate) < p.MinAdvanceDaysForLongLeave {
		out = append(out, newViolation(CodeInsufficientNotice,
			fmt.Sprintf("Long leave requires %d days advance notice", p.MinAdvanceDaysForLongLeave)))
	}

	if InBlackout(c.StartDate, c.EndDate, p.BlackoutPeriods) {
		out = append(out, newViolation(CodeBlackoutPeriod, "Leave requested in blackout period"))
	}

	if stats.UnplannedLeaves30Days >= p.MaxUnplannedLeaves30Days {
		out = append(out, newViolation(CodeUnplannedLimit, "Too many unplanned leaves in last 30 days"))
	}

	if stats.PatternScore >= p.MaxPatternScore {
		out = append(out, newViolation(CodeSuspiciousPattern, "Suspicious Monday/Friday leave pattern detected"))
	}

	if stats.ConsecutiveStreakDays+c.RequestedDays > p.MaxConsecutiveLeaveDays {
		out = append(out, newViolation(CodeConsecutiveLimit,
			fmt.Sprintf("Exceeds maximum consecutive leave days (%d)", p.MaxConsecutiveLeaveDays)))
	}

	if p.ReasonMandatory && strings.TrimSpace(c.ReasonText) == "" {
		out = append(out, newViolation(CodeReasonRequired, "Leave reason is required"))
	}

	if c.StartDate.After(c.EndDate) {
		out = append(out, newViolation(CodeInvalidDateRange, "Invalid date range: start date after end date"))
	}

	return out
}

func IsBlocking(violations []Violation) bool {
	for _, v := range violations {
		if v.Blocking {
			return true
		}
	}
	return false
}

func Advisory(violations []Violation) []Violation {
	var out []Violation
	for _, v := range violations {
		if !v.Blocking {
			out = append(out, v)
		}
	}
	return out
}

func Messages(violations []Violation) []string {
	out := make([]string, len(violations))
	for i, v := range violations {
		out[i] = v.Message
	}
	return out
}

// InBlackout reports whether [start, end] intersects any period. Periods
// with unparseable dates are skipped.
func InBlackout(start, end time.Time, periods []DateRange) bool {
	start, end = calendar.DateOf(start), calendar.DateOf(end)
	for _, p := range periods {
		bs, err := time.Parse(calendar.DateLayout, p.StartDate)
		if err != nil {
			continue
		}
		be, err := time.Parse(calendar.DateLayout, p.EndDate)
		if err != nil {
			continue
		}
		if !start.After(be) && !end.Before(bs) {
			return true
		}
	}
	return false
}
