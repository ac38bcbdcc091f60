package leavestats_test

import (
	"testing"
	"time"

	"go-leaveai/internal/leavestats"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC)

var defaultThresholds = leavestats.Thresholds{
	MaxUnplannedLeaves30Days: 3,
	MaxLeaves90Days:          10,
	MaxPatternScore:          0.7,
}

func day(v string) time.Time {
	d, _ := time.Parse("2006-01-02", v)
	return d
}

func record(leaveType, status, start, end string, total int, createdAt time.Time) leavestats.Record {
	return leavestats.Record{
		LeaveType: leaveType,
		Status:    status,
		StartDate: day(start),
		EndDate:   day(end),
		TotalDays: total,
		CreatedAt: createdAt,
	}
}

func TestCompute(t *testing.T) {
	t.Run("empty history is low risk", func(t *testing.T) {
		s := leavestats.Compute(nil, defaultThresholds, now)
		assert.Equal(t, leavestats.Empty(), s)
	})

	t.Run("ignores rejected and cancelled", func(t *testing.T) {
		history := []leavestats.Record{
			record("SICK", "REJECTED", "2026-06-10", "2026-06-10", 1, now.AddDate(0, 0, -5)),
			record("SICK", "CANCELLED", "2026-06-11", "2026-06-11", 1, now.AddDate(0, 0, -4)),
		}
		s := leavestats.Compute(history, defaultThresholds, now)
		assert.Equal(t, 0, s.TotalLeaves90Days)
		assert.Equal(t, leavestats.RiskLow, s.RiskLevel)
	})

	t.Run("counts unplanned by notice or sick", func(t *testing.T) {
		history := []leavestats.Record{
			// same-day notice
			record("CASUAL", "APPROVED", "2026-06-01", "2026-06-01", 1, day("2026-06-01").Add(8*time.Hour)),
			// planned sick leave still counts
			record("SICK", "APPROVED", "2026-06-20", "2026-06-20", 1, day("2026-06-05")),
			// planned annual leave does not
			record("ANNUAL", "PENDING", "2026-06-25", "2026-06-26", 2, day("2026-06-05")),
			// outside 30 days
			record("SICK", "APPROVED", "2026-04-01", "2026-04-01", 1, day("2026-04-01")),
		}
		s := leavestats.Compute(history, defaultThresholds, now)
		assert.Equal(t, 2, s.UnplannedLeaves30Days)
		assert.Equal(t, 4, s.TotalLeaves90Days)
		assert.Equal(t, leavestats.RiskLow, s.RiskLevel)
	})

	t.Run("monday friday counts by start weekday", func(t *testing.T) {
		history := []leavestats.Record{
			record("ANNUAL", "APPROVED", "2026-06-01", "2026-06-01", 1, day("2026-05-01")), // Monday
			record("ANNUAL", "APPROVED", "2026-06-05", "2026-06-05", 1, day("2026-05-01")), // Friday
			record("ANNUAL", "APPROVED", "2026-06-08", "2026-06-08", 1, day("2026-05-01")), // Monday
			record("ANNUAL", "APPROVED", "2026-06-10", "2026-06-10", 1, day("2026-05-01")), // Wednesday
		}
		s := leavestats.Compute(history, defaultThresholds, now)
		assert.Equal(t, 2, s.MondayLeaves90Days)
		assert.Equal(t, 1, s.FridayLeaves90Days)
		assert.InDelta(t, 0.3, s.PatternScore, 1e-9)
	})
}

func TestPatternScore(t *testing.T) {
	assert.Equal(t, 0.0, leavestats.PatternScore(0, 0))
	assert.InDelta(t, 0.2, leavestats.PatternScore(1, 1), 1e-9)
	// total 4 > 3: 0.4 * (1 + 0.5*4/4) = 0.6
	assert.InDelta(t, 0.6, leavestats.PatternScore(4, 0), 1e-9)
	// balanced: no imbalance weight
	assert.InDelta(t, 0.4, leavestats.PatternScore(2, 2), 1e-9)
	assert.Equal(t, 1.0, leavestats.PatternScore(9, 3))
}

func TestMaxStreak(t *testing.T) {
	records := []leavestats.Record{
		record("ANNUAL", "APPROVED", "2026-05-11", "2026-05-12", 2, now),
		record("ANNUAL", "APPROVED", "2026-05-04", "2026-05-08", 5, now),
		record("ANNUAL", "APPROVED", "2026-05-13", "2026-05-13", 1, now),
		record("ANNUAL", "APPROVED", "2026-05-20", "2026-05-20", 1, now),
	}
	// 05-04..05-08 then 05-11 starts three days later: streak resets to 2, then 05-13 joins.
	assert.Equal(t, 5, leavestats.MaxStreak(records))

	records = append(records, record("ANNUAL", "APPROVED", "2026-05-09", "2026-05-10", 2, now))
	assert.Equal(t, 10, leavestats.MaxStreak(records))
	assert.Equal(t, 0, leavestats.MaxStreak(nil))
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name  string
		stats leavestats.Stats
		want  leavestats.RiskLevel
	}{
		{"low", leavestats.Stats{UnplannedLeaves30Days: 2, TotalLeaves90Days: 9, PatternScore: 0.69}, leavestats.RiskLow},
		{"medium by volume", leavestats.Stats{TotalLeaves90Days: 10}, leavestats.RiskMedium},
		{"medium by pattern", leavestats.Stats{PatternScore: 0.7}, leavestats.RiskMedium},
		{"high wins over medium", leavestats.Stats{UnplannedLeaves30Days: 3, TotalLeaves90Days: 20, PatternScore: 1}, leavestats.RiskHigh},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, leavestats.Classify(tc.stats, defaultThresholds))
		})
	}
}

func TestRiskIsMonotonicInUnplannedLeaves(t *testing.T) {
	base := leavestats.Stats{TotalLeaves90Days: 4, PatternScore: 0.2}
	seenHigh := false
	for unplanned := 0; unplanned <= 10; unplanned++ {
		s := base
		s.UnplannedLeaves30Days = unplanned
		level := leavestats.Classify(s, defaultThresholds)
		if unplanned >= defaultThresholds.MaxUnplannedLeaves30Days {
			assert.Equal(t, leavestats.RiskHigh, level)
			seenHigh = true
		} else {
			assert.False(t, seenHigh)
			assert.NotEqual(t, leavestats.RiskHigh, level)
		}
	}
	assert.True(t, seenHigh)
}
