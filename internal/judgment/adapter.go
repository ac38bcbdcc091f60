package judgment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
)

const DefaultTimeout = 30 * time.Second

type AdapterConfig struct {
	Timeout  time.Duration
	Provider string
	Model    string
}

// Adapter screens reason text, calls the external client and normalises
// whatever comes back. Evaluate never returns an error: every failure is
// reported through Result.Err with a MANUAL_REVIEW recommendation.
type Adapter struct {
	client Client
	cfg    AdapterConfig
	logger *zap.Logger
}

// NewAdapter accepts a nil client, which is treated as an unconfigured service.
func NewAdapter(client Client, cfg AdapterConfig, logger ...*zap.Logger) *Adapter {
	l := zap.L().Named("judgment.adapter")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("judgment.adapter")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Adapter{client: client, cfg: cfg, logger: l}
}

type callResult struct {
	judgment Judgment
	err      error
}

func (a *Adapter) Evaluate(ctx context.Context, in Input) Result {
	if verdict, matched := Screen(in.ReasonText); matched {
		a.logger.Info("reason text rejected by screening",
			zap.String("category", verdict.ReasonCategory),
		)
		return a.result(verdict)
	}

	if a.client == nil {
		return a.failure(ErrMarkerNotConfigured, "AI evaluation unavailable", "AI service is not configured. Routing to manual review.")
	}

	callCtx, cancel := context.WithTimeout(ctx, a.cfg.Timeout)
	defer cancel()

	done := make(chan callResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- callResult{err: fmt.Errorf("judgment client panic: %v", r)}
			}
		}()
		j, err := a.client.Evaluate(callCtx, in)
		done <- callResult{judgment: j, err: err}
	}()

	var res callResult
	select {
	case <-callCtx.Done():
		res.err = callCtx.Err()
	case res = <-done:
	}

	if res.err != nil {
		switch {
		case errors.Is(res.err, context.DeadlineExceeded):
			a.logger.Warn("judgment call timed out", zap.Duration("timeout", a.cfg.Timeout))
			return a.failure(ErrMarkerTimeout, "AI evaluation timed out", "AI evaluation timed out. Routing to manual review.")
		case errors.Is(res.err, ErrMalformedResponse):
			a.logger.Warn("judgment response malformed", zap.Error(res.err))
			return a.failure("Invalid AI response format: "+res.err.Error(), "AI returned invalid response", "Could not parse AI response. Routing to manual review.")
		default:
			a.logger.Error("judgment call failed", zap.Error(res.err))
			return a.failure(res.err.Error(), "AI error: "+res.err.Error(), "AI evaluation failed. Routing to manual review.")
		}
	}

	return a.result(Normalize(res.judgment))
}

// Normalize clamps the score, replaces a nil flag list, maps unknown reason
// categories to OTHER and downgrades unknown actions to MANUAL_REVIEW.
func Normalize(j Judgment) Judgment {
	if math.IsNaN(j.ValidityScore) {
		j.ValidityScore = 0
	}
	j.ValidityScore = math.Max(0, math.Min(100, j.ValidityScore))
	if j.RiskFlags == nil {
		j.RiskFlags = []string{}
	}
	j.ReasonCategory = normalizeCategory(j.ReasonCategory)
	if !j.RecommendedAction.Valid() {
		j.RecommendedAction = ActionManualReview
	}
	return j
}

func (a *Adapter) result(j Judgment) Result {
	return Result{Judgment: j, Provider: a.cfg.Provider, Model: a.cfg.Model}
}

func (a *Adapter) failure(marker, flag, rationale string) Result {
	return Result{
		Judgment: Judgment{
			RiskFlags:         []string{flag},
			RecommendedAction: ActionManualReview,
			Rationale:         rationale,
		},
		Err:      marker,
		Provider: a.cfg.Provider,
		Model:    a.cfg.Model,
	}
}
