package leave

import (
	"strconv"
	"strings"

	"go-leaveai/internal/approval"
	"go-leaveai/internal/judgment"
	"go-leaveai/internal/leavestats"
	"go-leaveai/internal/policy"
)

const (
	EngineRules     = "RULES"
	EngineRulesOnly = "RULES_ONLY"
	EngineFallback  = "FALLBACK"
	EngineRulesAI   = "RULES+AI"

	FallbackManualReview = "MANUAL_REVIEW"
	FallbackRulesOnly    = "RULES_ONLY"

	DefaultApproveThreshold = 75
	DefaultRejectThreshold  = 25
)

const (
	noteAIFailed      = "AI evaluation failed"
	noteAIUnavailable = "AI unavailable"
)

// Thresholds holds the score cut-offs for combining rule and AI signals.
type Thresholds struct {
	Approve      float64
	Reject       float64
	FallbackMode string
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		Approve:      DefaultApproveThreshold,
		Reject:       DefaultRejectThreshold,
		FallbackMode: FallbackManualReview,
	}
}

// Decision is the full effect of one evaluation, computed without touching
// storage.
type Decision struct {
	Status       Status
	Engine       string
	Explanation  string
	AuditAction  string
	AuditDetails string
	Metadata     map[string]any
	TaskPriority string
	TaskNotes    string
}

func decisionAction(s Status) string {
	return "Decision: " + string(s)
}

func InvalidRangeDecision() Decision {
	return Decision{
		Status:       StatusRejected,
		Engine:       EngineRules,
		Explanation:  "Invalid date range",
		AuditAction:  decisionAction(StatusRejected),
		AuditDetails: "Invalid date range",
		Metadata:     map[string]any{"engine": EngineRules},
	}
}

// BlockedDecision rejects on rules alone, listing every violation found.
func BlockedDecision(violations []policy.Violation) Decision {
	explanation := "Rule violations: " + strings.Join(policy.Messages(violations), "; ")
	return Decision{
		Status:       StatusRejected,
		Engine:       EngineRules,
		Explanation:  explanation,
		AuditAction:  decisionAction(StatusRejected),
		AuditDetails: explanation,
		Metadata: map[string]any{
			"engine":     EngineRules,
			"violations": violationCodes(violations),
		},
	}
}

// FallbackDecision handles a failed judgment. Only RULES_ONLY mode with a
// clean rule check and LOW risk approves; everything else goes to a human.
// The metadata keeps the stats and service identity the decision was made with.
func FallbackDecision(
	th Thresholds,
	violations []policy.Violation,
	stats leavestats.Stats,
	res judgment.Result,
	historyWindowDays int,
) Decision {
	metadata := func(engine string) map[string]any {
		return map[string]any{
			"engine":              engine,
			"ai_error":            res.Err,
			"ai_provider":         res.Provider,
			"ai_model":            res.Model,
			"violations":          violationCodes(violations),
			"history_window_days": historyWindowDays,
			"computed_stats":      stats,
		}
	}

	note := noteAIFailed
	if th.FallbackMode == FallbackRulesOnly && len(violations) == 0 {
		if stats.RiskLevel == leavestats.RiskLow {
			return Decision{
				Status:       StatusApproved,
				Engine:       EngineRulesOnly,
				Explanation:  noteAIUnavailable + " - Approved by rules only",
				AuditAction:  "Approved by rules (AI unavailable)",
				AuditDetails: noteAIUnavailable,
				Metadata:     metadata(EngineRulesOnly),
			}
		}
		note = noteAIUnavailable
	}

	return Decision{
		Status:       StatusPendingReview,
		Engine:       EngineFallback,
		Explanation:  note,
		AuditAction:  "Routed to manual review",
		AuditDetails: note,
		Metadata:     metadata(EngineFallback),
		TaskPriority: approval.PriorityHigh,
		TaskNotes:    note,
	}
}

// Combine maps a validity score and risk level to a status before guardrails.
func Combine(score float64, risk leavestats.RiskLevel, th Thresholds) Status {
	switch {
	case score >= th.Approve && risk != leavestats.RiskHigh:
		return StatusApproved
	case score <= th.Reject && risk == leavestats.RiskHigh:
		return StatusRejected
	default:
		return StatusPendingReview
	}
}

// ApplyGuardrails can only move a decision to PENDING_REVIEW.
func ApplyGuardrails(s Status, requestedDays int, p *policy.LeavePolicy) Status {
	if p == nil {
		return s
	}
	if requestedDays >= p.LongLeaveThresholdDays || p.RequireManagerApproval {
		return StatusPendingReview
	}
	return s
}

// Explain renders the rule outcome, AI score and AI flags joined by " | ".
func Explain(violations []policy.Violation, res judgment.Result) string {
	parts := make([]string, 0, 3)
	if len(violations) > 0 {
		parts = append(parts, "Rule warnings: "+strings.Join(policy.Messages(violations), "; "))
	} else {
		parts = append(parts, "Rules check: PASSED")
	}
	parts = append(parts, "AI validity score: "+strconv.FormatFloat(res.ValidityScore, 'f', -1, 64))
	if len(res.RiskFlags) > 0 {
		parts = append(parts, "AI flags: "+strings.Join(res.RiskFlags, ", "))
	}
	return strings.Join(parts, " | ")
}

// CombinedDecision is the normal path when the judgment service answered.
func CombinedDecision(
	th Thresholds,
	p *policy.LeavePolicy,
	violations []policy.Violation,
	stats leavestats.Stats,
	res judgment.Result,
	requestedDays int,
	historyWindowDays int,
) Decision {
	status := ApplyGuardrails(Combine(res.ValidityScore, stats.RiskLevel, th), requestedDays, p)
	explanation := Explain(violations, res)

	d := Decision{
		Status:       status,
		Engine:       EngineRulesAI,
		Explanation:  explanation,
		AuditAction:  decisionAction(status),
		AuditDetails: explanation,
		Metadata: map[string]any{
			"engine":                EngineRulesAI,
			"ai_provider":           res.Provider,
			"ai_model":              res.Model,
			"ai_validity_score":     res.ValidityScore,
			"ai_recommended_action": string(res.RecommendedAction),
			"history_window_days":   historyWindowDays,
			"computed_stats":        stats,
		},
	}
	if status == StatusPendingReview {
		d.TaskPriority = approval.PriorityFor(stats.RiskLevel, requestedDays)
		d.TaskNotes = explanation
	}
	return d
}

func violationCodes(violations []policy.Violation) []string {
	codes := make([]string, 0, len(violations))
	for _, v := range violations {
		codes = append(codes, v.Code)
	}
	return codes
}
