package policy_test

import (
	"testing"
	"time"

	"go-leaveai/internal/leavestats"
	"go-leaveai/internal/policy"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var now = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

func basePolicy() policy.LeavePolicy {
	return policy.LeavePolicy{
		AnnualLeaveDays:            22,
		ReasonMandatory:            true,
		LongLeaveThresholdDays:     5,
		MinAdvanceDaysForLongLeave: 7,
		MaxConsecutiveLeaveDays:    15,
		MaxUnplannedLeaves30Days:   3,
		MaxLeaves90Days:            10,
		MaxPatternScore:            0.7,
		HistoryWindowDays:          180,
	}
}

func day(v string) time.Time {
	d, _ := time.Parse("2006-01-02", v)
	return d
}

func codes(vs []policy.Violation) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.Code
	}
	return out
}

func TestCheck(t *testing.T) {
	validCandidate := policy.Candidate{
		StartDate:     day("2026-03-10"),
		EndDate:       day("2026-03-11"),
		RequestedDays: 2,
		ReasonText:    "Attending my sister's wedding ceremony out of town",
	}

	t.Run("clean request has no violations", func(t *testing.T) {
		vs := policy.Check(validCandidate, basePolicy(), decimal.NewFromInt(10), leavestats.Empty(), now)
		assert.Empty(t, vs)
		assert.False(t, policy.IsBlocking(vs))
	})

	t.Run("insufficient balance is blocking", func(t *testing.T) {
		vs := policy.Check(validCandidate, basePolicy(), decimal.NewFromInt(1), leavestats.Empty(), now)
		assert.Equal(t, []string{policy.CodeInsufficientBalance}, codes(vs))
		assert.Equal(t, "Insufficient leave balance", vs[0].Message)
		assert.True(t, policy.IsBlocking(vs))
	})

	t.Run("negative balance allowed", func(t *testing.T) {
		p := basePolicy()
		p.AllowNegativeBalance = true
		vs := policy.Check(validCandidate, p, decimal.Zero, leavestats.Empty(), now)
		assert.Empty(t, vs)
	})

	t.Run("long leave without notice is advisory", func(t *testing.T) {
		c := validCandidate
		c.StartDate = day("2026-03-05")
		c.EndDate = day("2026-03-11")
		c.RequestedDays = 5
		vs := policy.Check(c, basePolicy(), decimal.NewFromInt(20), leavestats.Empty(), now)
		assert.Equal(t, []string{policy.CodeInsufficientNotice}, codes(vs))
		assert.Equal(t, "Long leave requires 7 days advance notice", vs[0].Message)
		assert.False(t, policy.IsBlocking(vs))
	})

	t.Run("blackout overlap is blocking", func(t *testing.T) {
		p := basePolicy()
		p.BlackoutPeriods = []policy.DateRange{
			{StartDate: "bad", EndDate: "2026-03-31"},
			{StartDate: "2026-03-11", EndDate: "2026-03-20"},
		}
		vs := policy.Check(validCandidate, p, decimal.NewFromInt(10), leavestats.Empty(), now)
		assert.Equal(t, []string{policy.CodeBlackoutPeriod}, codes(vs))
		assert.True(t, policy.IsBlocking(vs))
	})

	t.Run("stats driven violations are advisory", func(t *testing.T) {
		stats := leavestats.Stats{UnplannedLeaves30Days: 3, PatternScore: 0.8, ConsecutiveStreakDays: 14, RiskLevel: leavestats.RiskHigh}
		vs := policy.Check(validCandidate, basePolicy(), decimal.NewFromInt(10), stats, now)
		assert.Equal(t, []string{
			policy.CodeUnplannedLimit,
			policy.CodeSuspiciousPattern,
			policy.CodeConsecutiveLimit,
		}, codes(vs))
		assert.Equal(t, "Exceeds maximum consecutive leave days (15)", vs[2].Message)
		assert.False(t, policy.IsBlocking(vs))
		assert.Len(t, policy.Advisory(vs), 3)
	})

	t.Run("missing reason is blocking", func(t *testing.T) {
		c := validCandidate
		c.ReasonText = "   "
		vs := policy.Check(c, basePolicy(), decimal.NewFromInt(10), leavestats.Empty(), now)
		assert.Equal(t, []string{policy.CodeReasonRequired}, codes(vs))
		assert.True(t, policy.IsBlocking(vs))
	})

	t.Run("reason optional", func(t *testing.T) {
		p := basePolicy()
		p.ReasonMandatory = false
		c := validCandidate
		c.ReasonText = ""
		assert.Empty(t, policy.Check(c, p, decimal.NewFromInt(10), leavestats.Empty(), now))
	})

	t.Run("inverted range is blocking and reported last", func(t *testing.T) {
		c := validCandidate
		c.StartDate, c.EndDate = c.EndDate, c.StartDate
		c.ReasonText = ""
		vs := policy.Check(c, basePolicy(), decimal.NewFromInt(10), leavestats.Empty(), now)
		assert.Equal(t, []string{policy.CodeReasonRequired, policy.CodeInvalidDateRange}, codes(vs))
		assert.Equal(t, []string{"Leave reason is required", "Invalid date range: start date after end date"}, policy.Messages(vs))
	})
}

func TestAllocation(t *testing.T) {
	p := basePolicy()
	p.SickLeaveDays = 10
	assert.Equal(t, 22, p.Allocation("ANNUAL"))
	assert.Equal(t, 10, p.Allocation("sick"))
	assert.Equal(t, 0, p.Allocation("UNPAID"))
}
