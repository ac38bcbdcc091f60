package leavestats

import (
	"math"
	"sort"
	"time"

	"go-leaveai/internal/calendar"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

const (
	DefaultHistoryWindowDays = 180

	unplannedWindowDays = 30
	patternWindowDays   = 90
	patternExpectedMax  = 10.0
)

// Record is the slice of a past leave request the engine needs.
type Record struct {
	LeaveType string
	Status    string
	StartDate time.Time
	EndDate   time.Time
	TotalDays int
	CreatedAt time.Time
}

type Thresholds struct {
	MaxUnplannedLeaves30Days int
	MaxLeaves90Days          int
	MaxPatternScore          float64
}

type Stats struct {
	UnplannedLeaves30Days int       `json:"unplanned_leaves_last_30_days"`
	TotalLeaves90Days     int       `json:"total_leaves_last_90_days"`
	MondayLeaves90Days    int       `json:"monday_leaves_last_90_days"`
	FridayLeaves90Days    int       `json:"friday_leaves_last_90_days"`
	ConsecutiveStreakDays int       `json:"consecutive_leave_streak_days"`
	PatternScore          float64   `json:"monday_friday_pattern_score"`
	RiskLevel             RiskLevel `json:"risk_level"`
}

func Empty() Stats {
	return Stats{RiskLevel: RiskLow}
}

var countedStatuses = map[string]bool{
	"APPROVED":       true,
	"PENDING":        true,
	"PENDING_REVIEW": true,
}

// Counted reports whether a request in this status contributes to statistics.
func Counted(status string) bool {
	return countedStatuses[status]
}

// Compute derives statistics from history as of now. Records in other
// statuses are ignored.
func Compute(history []Record, th Thresholds, now time.Time) Stats {
	stats := Empty()

	counted := make([]Record, 0, len(history))
	for _, r := range history {
		if Counted(r.Status) {
			counted = append(counted, r)
		}
	}
	if len(counted) == 0 {
		return stats
	}

	cutoff30 := now.AddDate(0, 0, -unplannedWindowDays)
	cutoff90 := now.AddDate(0, 0, -patternWindowDays)
	for _, r := range counted {
		if !r.CreatedAt.Before(cutoff90) {
			stats.TotalLeaves90Days++
			switch r.StartDate.Weekday() {
			case time.Monday:
				stats.MondayLeaves90Days++
			case time.Friday:
				stats.FridayLeaves90Days++
			}
		}
		if !r.CreatedAt.Before(cutoff30) && IsUnplanned(r) {
			stats.UnplannedLeaves30Days++
		}
	}

	stats.ConsecutiveStreakDays = MaxStreak(counted)
	stats.PatternScore = PatternScore(stats.MondayLeaves90Days, stats.FridayLeaves90Days)
	stats.RiskLevel = Classify(stats, th)
	return stats
}

// IsUnplanned is true for less than a day of notice or any SICK leave.
// A pre-booked medical appointment filed as SICK therefore counts as unplanned.
func IsUnplanned(r Record) bool {
	return calendar.DaysBetween(r.CreatedAt, r.StartDate) < 1 || r.LeaveType == "SICK"
}

func MaxStreak(records []Record) int {
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartDate.Before(sorted[j].StartDate)
	})

	var maxStreak, current int
	var lastEnd time.Time
	for i, r := range sorted {
		if i > 0 && calendar.DaysBetween(calendar.DateOf(lastEnd), calendar.DateOf(r.StartDate)) <= 1 {
			current += r.TotalDays
		} else {
			current = r.TotalDays
		}
		if current > maxStreak {
			maxStreak = current
		}
		lastEnd = r.EndDate
	}
	return maxStreak
}

func PatternScore(monday, friday int) float64 {
	total := monday + friday
	if total == 0 {
		return 0
	}
	score := math.Min(float64(total)/patternExpectedMax, 1)
	if total > 3 {
		imbalance := math.Abs(float64(monday-friday)) / float64(total)
		score *= 1 + imbalance*0.5
	}
	return math.Min(score, 1)
}

func Classify(s Stats, th Thresholds) RiskLevel {
	switch {
	case s.UnplannedLeaves30Days >= th.MaxUnplannedLeaves30Days:
		return RiskHigh
	case s.TotalLeaves90Days >= th.MaxLeaves90Days, s.PatternScore >= th.MaxPatternScore:
		return RiskMedium
	default:
		return RiskLow
	}
}
