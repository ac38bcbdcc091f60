package leave

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"go-leaveai/internal/approval"
	approvalerrors "go-leaveai/internal/approval/errors"
	"go-leaveai/internal/audit"
	"go-leaveai/internal/balance"
	"go-leaveai/internal/calendar"
	"go-leaveai/internal/employee"
	employeeerrors "go-leaveai/internal/employee/errors"
	"go-leaveai/internal/holiday"
	"go-leaveai/internal/judgment"
	leaveerrors "go-leaveai/internal/leave/errors"
	"go-leaveai/internal/leavestats"
	"go-leaveai/internal/notification"
	"go-leaveai/internal/policy"
	"go-leaveai/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const maxPreviewDays = 366

// WeeklyOffConfig resolves the company's weekend rule.
type WeeklyOffConfig interface {
	WeeklyOff(ctx context.Context, companyID string) (calendar.WeeklyOff, error)
}

// Evaluator is the judgment adapter as seen by the pipeline. It never fails;
// problems surface through Result.Err.
type Evaluator interface {
	Evaluate(ctx context.Context, in judgment.Input) judgment.Result
}

//go:generate mockgen -destination=mock/leave_service_mock.go -package=mock . Service
type Service interface {
	Process(ctx context.Context, companyID, id string) (Outcome, error)
	Approve(ctx context.Context, companyID, actorID, id, comments string) (LeaveResponse, error)
	Reject(ctx context.Context, companyID, actorID, id, reason string) (LeaveResponse, error)
	Cancel(ctx context.Context, companyID, employeeID, id string) (LeaveResponse, error)
	GetByID(ctx context.Context, companyID string, viewer Viewer, id string) (LeaveResponse, error)
	GetAuditTrail(ctx context.Context, companyID string, viewer Viewer, id string) ([]AuditEntryResponse, error)
	PreviewWorkingDays(ctx context.Context, companyID string, req PreviewWorkingDaysRequest) (WorkingDaysPreviewResponse, error)
}

// Viewer is the caller of a read operation. Reviewers see every request in
// the company, anyone else only their own.
type Viewer struct {
	EmployeeID string
	Reviewer   bool
}

func (v Viewer) canRead(l *LeaveRequest) bool {
	return v.Reviewer || (v.EmployeeID != "" && v.EmployeeID == l.EmployeeID.String())
}

// Deps wires the pipeline's collaborators. Holidays, WeeklyOff, Notifier and
// Locker are optional.
type Deps struct {
	DB         *sql.DB
	Repo       Repository
	Employees  employee.Repository
	Policies   policy.Repository
	Balances   balance.Repository
	Holidays   holiday.Repository
	WeeklyOff  WeeklyOffConfig
	Approvals  approval.Repository
	Audit      *audit.Trail
	Judge      Evaluator
	Notifier   notification.Notifier
	Locker     Locker
	Thresholds Thresholds
	LockTTL    time.Duration
	Now        func() time.Time
}

type service struct {
	Deps
	logger *zap.Logger
}

func NewService(deps Deps, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	if deps.Judge == nil {
		deps.Judge = judgment.NewAdapter(nil, judgment.AdapterConfig{}, l)
	}
	if deps.Thresholds == (Thresholds{}) {
		deps.Thresholds = DefaultThresholds()
	}
	if deps.LockTTL <= 0 {
		deps.LockTTL = DefaultLockTTL
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &service{Deps: deps, logger: l}
}

// snapshot is the configuration read once per evaluation.
type snapshot struct {
	policy    *policy.LeavePolicy
	weeklyOff calendar.WeeklyOff
	holidays  calendar.HolidaySet
	now       time.Time
}

// Process evaluates a PENDING request end to end. It only returns an error for
// infrastructure failures; every business result is an Outcome.
func (s *service) Process(ctx context.Context, companyID, id string) (Outcome, error) {
	logger := contextutil.Logger(ctx, s.logger).With(
		zap.String("leave_id", id),
		zap.String("company_id", companyID),
	)
	logger.Debug("process leave requested")

	if _, err := uuid.Parse(id); err != nil {
		return OutcomeNotFound, nil
	}

	if s.Locker != nil {
		release, ok, err := s.Locker.Acquire(ctx, ProcessLockKey(id), s.LockTTL)
		if err != nil {
			logger.Warn("process lock unavailable, continuing on row lock", zap.Error(err))
		} else if !ok {
			logger.Info("leave already being processed")
			return OutcomeNoAction, nil
		}
		defer release()
	}

	l, err := s.Repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		logger.Error("process leave load failed", zap.Error(err))
		return "", err
	}
	if l == nil {
		logger.Warn("process leave not found")
		return OutcomeNotFound, nil
	}

	emp, err := s.Employees.FindByIDAndCompany(ctx, companyID, l.EmployeeID.String())
	if err != nil {
		logger.Error("process leave employee load failed", zap.Error(err))
		return "", err
	}
	if emp == nil {
		logger.Warn("process leave employee not found", zap.String("employee_id", l.EmployeeID.String()))
		return OutcomeEmployeeNotFound, nil
	}

	if !CanTransition(Status(l.Status), StatusPendingReview, TriggerSystem) {
		logger.Debug("process leave skipped", zap.String("status", l.Status))
		return OutcomeNoAction, nil
	}

	snap, err := s.loadSnapshot(ctx, companyID, emp, l)
	if err != nil {
		logger.Error("process leave config load failed", zap.Error(err))
		return "", err
	}

	d, err := s.evaluate(ctx, l, emp, snap)
	if err != nil {
		logger.Error("process leave evaluation failed", zap.Error(err))
		return "", err
	}

	return s.persistDecision(ctx, logger, l, emp, d, snap.now)
}

func (s *service) loadSnapshot(ctx context.Context, companyID string, emp *employee.Employee, l *LeaveRequest) (snapshot, error) {
	snap := snapshot{
		weeklyOff: calendar.WeeklyOffSatSun,
		holidays:  calendar.HolidaySet{},
		now:       s.Now().UTC(),
	}

	p, err := s.Policies.FindApplicable(ctx, companyID, emp.DepartmentID)
	if err != nil {
		return snapshot{}, err
	}
	snap.policy = p
	if p != nil {
		snap.holidays = calendar.ParseHolidaySet(p.Holidays)
	}

	if s.WeeklyOff != nil {
		w, err := s.WeeklyOff.WeeklyOff(ctx, companyID)
		if err != nil {
			return snapshot{}, err
		}
		snap.weeklyOff = w
	}

	if s.Holidays != nil && !l.StartDate.After(l.EndDate) {
		dates, err := s.Holidays.ListDates(ctx, companyID, l.StartDate, l.EndDate)
		if err != nil {
			return snapshot{}, err
		}
		for _, d := range dates {
			snap.holidays[d.Format(calendar.DateLayout)] = struct{}{}
		}
	}
	return snap, nil
}

// evaluate runs the rule, statistics and judgment stages and fills the
// computed fields on l. Nothing is written to storage here.
func (s *service) evaluate(ctx context.Context, l *LeaveRequest, emp *employee.Employee, snap snapshot) (Decision, error) {
	if l.StartDate.After(l.EndDate) {
		return InvalidRangeDecision(), nil
	}

	requested, err := calendar.Calculate(l.StartDate, l.EndDate, snap.weeklyOff, snap.holidays)
	if err != nil {
		return Decision{}, err
	}
	l.TotalDays = decimal.NewFromInt(int64(requested))

	p := snap.policy
	window := leavestats.DefaultHistoryWindowDays
	if p != nil && p.HistoryWindowDays > 0 {
		window = p.HistoryWindowDays
	}

	companyID := l.CompanyID.String()
	employeeID := l.EmployeeID.String()

	stats := leavestats.Empty()
	var violations []policy.Violation
	if p != nil {
		history, err := s.Repo.FindHistory(ctx, companyID, employeeID, snap.now.AddDate(0, 0, -window), l.ID.String())
		if err != nil {
			return Decision{}, err
		}

		remaining := decimal.Zero
		b, err := s.Balances.Find(ctx, companyID, employeeID, l.LeaveType, snap.now.Year())
		if err != nil {
			return Decision{}, err
		}
		if b != nil {
			remaining = b.RemainingDays
		}

		stats = leavestats.Compute(toRecords(history), leavestats.Thresholds{
			MaxUnplannedLeaves30Days: p.MaxUnplannedLeaves30Days,
			MaxLeaves90Days:          p.MaxLeaves90Days,
			MaxPatternScore:          p.MaxPatternScore,
		}, snap.now)

		violations = policy.Check(policy.Candidate{
			StartDate:     l.StartDate,
			EndDate:       l.EndDate,
			RequestedDays: requested,
			ReasonText:    l.ReasonText,
		}, *p, remaining, stats, snap.now)
	}
	l.RiskLevel = string(stats.RiskLevel)

	if policy.IsBlocking(violations) {
		return BlockedDecision(violations), nil
	}

	in := buildJudgmentInput(l, emp, p, stats, requested, snap.now)
	res := s.Judge.Evaluate(ctx, in)

	score := res.ValidityScore
	l.AIValidityScore = &score
	l.AIRiskFlags = res.RiskFlags
	l.AIRecommendedAction = string(res.RecommendedAction)
	l.AIRationale = res.Rationale
	l.AIReasonCategory = res.ReasonCategory

	var d Decision
	if res.Failed() {
		d = FallbackDecision(s.Thresholds, violations, stats, res, window)
	} else {
		d = CombinedDecision(s.Thresholds, p, violations, stats, res, requested, window)
	}
	if in.Certificate != nil {
		d.Metadata["certificate_validation"] = in.Certificate
	}
	return d, nil
}

func (s *service) persistDecision(ctx context.Context, logger *zap.Logger, l *LeaveRequest, emp *employee.Employee, d Decision, now time.Time) (Outcome, error) {
	companyID := l.CompanyID.String()
	id := l.ID.String()

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("process leave begin tx failed", zap.Error(err))
		return "", err
	}
	defer tx.Rollback()

	qtx := s.Repo.WithTx(tx)

	current, err := qtx.FindByIDForUpdate(ctx, companyID, id)
	if err != nil {
		logger.Error("process leave lock row failed", zap.Error(err))
		return "", err
	}
	if current == nil {
		return OutcomeNotFound, nil
	}
	prev := Status(current.Status)
	if !CanTransition(prev, d.Status, TriggerSystem) {
		logger.Info("leave changed during evaluation", zap.String("status", current.Status))
		return OutcomeNoAction, nil
	}

	if l.RequestNumber == "" {
		number, err := qtx.NextRequestNumber(ctx, companyID, now)
		if err != nil {
			logger.Error("allocate request number failed", zap.Error(err))
			return "", err
		}
		l.RequestNumber = number
	}

	l.Status = string(d.Status)
	l.DecisionEngine = d.Engine
	l.DecisionExplanation = d.Explanation
	l.UpdatedAt = now

	if err := qtx.UpdateDecision(ctx, l); err != nil {
		logger.Error("process leave persist failed", zap.Error(err))
		return "", err
	}

	if err := s.Audit.Append(ctx, tx, &audit.Entry{
		CompanyID:      l.CompanyID,
		LeaveRequestID: l.ID,
		Action:         d.AuditAction,
		ActorType:      audit.ActorSystem,
		PreviousStatus: string(prev),
		NewStatus:      string(d.Status),
		Details:        d.AuditDetails,
		Metadata:       d.Metadata,
	}); err != nil {
		return "", err
	}

	if d.Status == StatusPendingReview {
		err := s.Approvals.WithTx(tx).Create(ctx, &approval.Task{
			ID:             uuid.New(),
			CompanyID:      l.CompanyID,
			LeaveRequestID: l.ID,
			Queue:          approval.QueueHRManager,
			Priority:       d.TaskPriority,
			Notes:          d.TaskNotes,
			Status:         approval.StatusOpen,
		})
		switch {
		case errors.Is(err, approvalerrors.ErrOpenTaskExists):
			logger.Warn("open approval task already exists")
		case err != nil:
			logger.Error("create approval task failed", zap.Error(err))
			return "", err
		}
	}

	if err := tx.Commit(); err != nil {
		logger.Error("process leave commit failed", zap.Error(err))
		return "", err
	}

	logger.Info("process leave decided",
		zap.String("status", l.Status),
		zap.String("engine", d.Engine),
		zap.String("risk_level", l.RiskLevel),
	)

	s.notify(ctx, l, emp.Email, d.Explanation)
	return outcomeFor(d.Status), nil
}

func (s *service) Approve(ctx context.Context, companyID, actorID, id, comments string) (LeaveResponse, error) {
	details := strings.TrimSpace(comments)
	var reviewerComments *string
	if details != "" {
		reviewerComments = &details
	} else {
		details = "Leave request approved by HR"
	}
	return s.manualTransition(ctx, companyID, actorID, id, manualAction{
		to:       StatusApproved,
		by:       TriggerHR,
		action:   "Approved",
		details:  details,
		comments: reviewerComments,
	})
}

func (s *service) Reject(ctx context.Context, companyID, actorID, id, reason string) (LeaveResponse, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return LeaveResponse{}, leaveerrors.ErrRejectionReasonRequired
	}
	return s.manualTransition(ctx, companyID, actorID, id, manualAction{
		to:       StatusRejected,
		by:       TriggerHR,
		action:   "Rejected",
		details:  reason,
		comments: &reason,
	})
}

func (s *service) Cancel(ctx context.Context, companyID, employeeID, id string) (LeaveResponse, error) {
	return s.manualTransition(ctx, companyID, employeeID, id, manualAction{
		to:      StatusCancelled,
		by:      TriggerEmployee,
		action:  "Cancelled",
		details: "Leave request cancelled by employee",
	})
}

type manualAction struct {
	to       Status
	by       Trigger
	action   string
	details  string
	comments *string
}

func (s *service) manualTransition(ctx context.Context, companyID, actorID, id string, a manualAction) (LeaveResponse, error) {
	logger := contextutil.Logger(ctx, s.logger).With(
		zap.String("leave_id", id),
		zap.String("company_id", companyID),
		zap.String("actor_id", actorID),
		zap.String("target_status", string(a.to)),
	)
	logger.Debug("manual leave transition requested")

	if _, err := uuid.Parse(companyID); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidCompanyID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidActorID
	}
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		logger.Error("manual leave transition begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.Repo.WithTx(tx)

	l, err := qtx.FindByIDForUpdate(ctx, companyID, id)
	if err != nil {
		logger.Error("manual leave transition load failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if l == nil {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
	}
	if a.by == TriggerEmployee && l.EmployeeID != actorUUID {
		logger.Warn("cancel by non owner", zap.String("owner_id", l.EmployeeID.String()))
		return LeaveResponse{}, leaveerrors.ErrNotLeaveOwner
	}

	prev := Status(l.Status)
	if !CanTransition(prev, a.to, a.by) {
		logger.Warn("manual leave transition invalid", zap.String("from_status", l.Status))
		return LeaveResponse{}, leaveerrors.ErrInvalidStatusTransition
	}

	now := s.Now().UTC()
	if a.to == StatusApproved {
		if prev == StatusPending || l.TotalDays.IsZero() {
			if err := s.resolveTotalDays(ctx, companyID, l); err != nil {
				logger.Error("resolve working days failed", zap.Error(err))
				return LeaveResponse{}, err
			}
		}
		if err := s.bookApproval(ctx, tx, l, now); err != nil {
			logger.Error("book approved days failed", zap.Error(err))
			return LeaveResponse{}, err
		}
	}

	l.Status = string(a.to)
	l.UpdatedAt = now
	if a.by == TriggerHR {
		l.ReviewedBy = &actorUUID
		l.ReviewedAt = &now
		l.ReviewerComments = a.comments
	}

	if err := qtx.UpdateDecision(ctx, l); err != nil {
		logger.Error("manual leave transition persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if _, err := s.Approvals.WithTx(tx).CompleteOpenForLeave(ctx, companyID, id, &actorUUID, now); err != nil {
		logger.Error("complete approval task failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := s.Audit.Append(ctx, tx, &audit.Entry{
		CompanyID:      l.CompanyID,
		LeaveRequestID: l.ID,
		Action:         a.action,
		ActorID:        &actorUUID,
		ActorType:      audit.ActorUser,
		PreviousStatus: string(prev),
		NewStatus:      string(a.to),
		Details:        a.details,
	}); err != nil {
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		logger.Error("manual leave transition commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	logger.Info("manual leave transition success")

	s.notify(ctx, l, s.employeeEmail(ctx, companyID, l.EmployeeID.String()), a.details)
	return mapToResponse(*l), nil
}

// resolveTotalDays fills TotalDays for a request HR approves before the
// pipeline has evaluated it, using the same calendar Process would.
func (s *service) resolveTotalDays(ctx context.Context, companyID string, l *LeaveRequest) error {
	if l.StartDate.After(l.EndDate) {
		return leaveerrors.ErrInvalidDateRange
	}
	emp, err := s.Employees.FindByIDAndCompany(ctx, companyID, l.EmployeeID.String())
	if err != nil {
		return err
	}
	if emp == nil {
		return employeeerrors.ErrEmployeeNotFound
	}
	snap, err := s.loadSnapshot(ctx, companyID, emp, l)
	if err != nil {
		return err
	}
	days, err := calendar.Calculate(l.StartDate, l.EndDate, snap.weeklyOff, snap.holidays)
	if err != nil {
		return err
	}
	l.TotalDays = decimal.NewFromInt(int64(days))
	return nil
}

// bookApproval applies the approved days to the current year's balance row,
// holding its row lock until the transaction ends. A missing row is skipped.
func (s *service) bookApproval(ctx context.Context, tx *sql.Tx, l *LeaveRequest, now time.Time) error {
	btx := s.Balances.WithTx(tx)
	b, err := btx.FindForUpdate(ctx, l.CompanyID.String(), l.EmployeeID.String(), l.LeaveType, now.Year())
	if err != nil {
		return err
	}
	if b == nil {
		s.logger.Warn("no leave balance row, approval not booked",
			zap.String("leave_id", l.ID.String()),
			zap.String("employee_id", l.EmployeeID.String()),
			zap.String("leave_type", l.LeaveType),
		)
		return nil
	}

	updated := balance.ApplyApproval(*b, l.TotalDays)
	updated.UpdatedAt = now
	return btx.Update(ctx, &updated)
}

func (s *service) employeeEmail(ctx context.Context, companyID, employeeID string) string {
	emp, err := s.Employees.FindByIDAndCompany(ctx, companyID, employeeID)
	if err != nil || emp == nil {
		return ""
	}
	return emp.Email
}

func (s *service) notify(ctx context.Context, l *LeaveRequest, email, explanation string) {
	if s.Notifier == nil {
		return
	}
	err := s.Notifier.Notify(ctx, notification.Notice{
		LeaveRequestID: l.ID.String(),
		RequestNumber:  l.RequestNumber,
		CompanyID:      l.CompanyID.String(),
		EmployeeID:     l.EmployeeID.String(),
		EmployeeEmail:  email,
		Outcome:        l.Status,
		LeaveType:      l.LeaveType,
		StartDate:      l.StartDate.Format(calendar.DateLayout),
		EndDate:        l.EndDate.Format(calendar.DateLayout),
		TotalDays:      l.TotalDays.String(),
		Explanation:    explanation,
	})
	if err != nil {
		s.logger.Warn("notify employee failed",
			zap.String("leave_id", l.ID.String()),
			zap.String("status", l.Status),
			zap.Error(err),
		)
	}
}

// findReadable loads a request for viewer, hiding other employees' requests
// from non-reviewers.
func (s *service) findReadable(ctx context.Context, companyID string, viewer Viewer, id string) (*LeaveRequest, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, leaveerrors.ErrInvalidLeaveID
	}
	l, err := s.Repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, leaveerrors.ErrLeaveNotFound
	}
	if !viewer.canRead(l) {
		s.logger.Warn("leave read by non owner",
			zap.String("leave_id", id),
			zap.String("viewer_id", viewer.EmployeeID),
		)
		return nil, leaveerrors.ErrNotLeaveOwner
	}
	return l, nil
}

func (s *service) GetByID(ctx context.Context, companyID string, viewer Viewer, id string) (LeaveResponse, error) {
	l, err := s.findReadable(ctx, companyID, viewer, id)
	if err != nil {
		return LeaveResponse{}, err
	}
	return mapToResponse(*l), nil
}

func (s *service) GetAuditTrail(ctx context.Context, companyID string, viewer Viewer, id string) ([]AuditEntryResponse, error) {
	if _, err := s.findReadable(ctx, companyID, viewer, id); err != nil {
		return nil, err
	}

	entries, err := s.Audit.List(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	out := make([]AuditEntryResponse, 0, len(entries))
	for _, e := range entries {
		r := AuditEntryResponse{
			ID:             e.ID.String(),
			Action:         e.Action,
			ActorType:      e.ActorType,
			PreviousStatus: e.PreviousStatus,
			NewStatus:      e.NewStatus,
			Details:        e.Details,
			Metadata:       e.Metadata,
			CreatedAt:      e.CreatedAt.Format(time.RFC3339),
		}
		if e.ActorID != nil {
			v := e.ActorID.String()
			r.ActorID = &v
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *service) PreviewWorkingDays(ctx context.Context, companyID string, req PreviewWorkingDaysRequest) (WorkingDaysPreviewResponse, error) {
	start, err := parseDate(req.StartDate)
	if err != nil {
		return WorkingDaysPreviewResponse{}, err
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return WorkingDaysPreviewResponse{}, err
	}
	if start.After(end) {
		return WorkingDaysPreviewResponse{}, leaveerrors.ErrInvalidDateRange
	}
	if calendar.DaysBetween(start, end) >= maxPreviewDays {
		return WorkingDaysPreviewResponse{}, leaveerrors.ErrPreviewRangeTooLong
	}

	weeklyOff := calendar.WeeklyOffSatSun
	if s.WeeklyOff != nil {
		if weeklyOff, err = s.WeeklyOff.WeeklyOff(ctx, companyID); err != nil {
			return WorkingDaysPreviewResponse{}, err
		}
	}

	holidays := calendar.HolidaySet{}
	if s.Holidays != nil {
		dates, err := s.Holidays.ListDates(ctx, companyID, start, end)
		if err != nil {
			return WorkingDaysPreviewResponse{}, err
		}
		holidays = calendar.NewHolidaySet(dates...)
	}

	b, err := calendar.CalculateDetailed(start, end, weeklyOff, holidays)
	if err != nil {
		return WorkingDaysPreviewResponse{}, leaveerrors.ErrInvalidDateRange
	}
	return WorkingDaysPreviewResponse{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Breakdown: b,
	}, nil
}

func buildJudgmentInput(l *LeaveRequest, emp *employee.Employee, p *policy.LeavePolicy, stats leavestats.Stats, requested int, now time.Time) judgment.Input {
	summary := judgment.PolicySummary{
		ReasonMandatory:          true,
		LongLeaveThresholdDays:   5,
		MaxUnplannedLeaves30Days: 3,
	}
	if p != nil {
		summary = judgment.PolicySummary{
			ReasonMandatory:          p.ReasonMandatory,
			LongLeaveThresholdDays:   p.LongLeaveThresholdDays,
			MaxUnplannedLeaves30Days: p.MaxUnplannedLeaves30Days,
		}
	}

	in := judgment.Input{
		LeaveType:     l.LeaveType,
		StartDate:     l.StartDate.Format(calendar.DateLayout),
		EndDate:       l.EndDate.Format(calendar.DateLayout),
		RequestedDays: requested,
		ReasonText:    l.ReasonText,
		Policy:        summary,
		History:       stats,
		Employee: judgment.EmployeeContext{
			TenureMonths: emp.TenureMonths(now),
			RoleLevel:    emp.RoleLevel(),
			Department:   emp.Department(),
		},
	}
	if strings.EqualFold(l.LeaveType, TypeSick) {
		in.Certificate = l.Certificate()
	}
	return in
}

func toRecords(history []LeaveRequest) []leavestats.Record {
	out := make([]leavestats.Record, 0, len(history))
	for _, h := range history {
		out = append(out, leavestats.Record{
			LeaveType: h.LeaveType,
			Status:    h.Status,
			StartDate: h.StartDate,
			EndDate:   h.EndDate,
			TotalDays: int(h.TotalDays.IntPart()),
			CreatedAt: h.CreatedAt,
		})
	}
	return out
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(calendar.DateLayout, v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(l LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:                  l.ID.String(),
		RequestNumber:       l.RequestNumber,
		CompanyID:           l.CompanyID.String(),
		EmployeeID:          l.EmployeeID.String(),
		LeaveType:           l.LeaveType,
		StartDate:           l.StartDate.Format(calendar.DateLayout),
		EndDate:             l.EndDate.Format(calendar.DateLayout),
		TotalDays:           l.TotalDays.String(),
		ReasonText:          l.ReasonText,
		Status:              l.Status,
		RiskLevel:           l.RiskLevel,
		AIValidityScore:     l.AIValidityScore,
		AIRiskFlags:         l.AIRiskFlags,
		AIRecommendedAction: l.AIRecommendedAction,
		AIRationale:         l.AIRationale,
		AIReasonCategory:    l.AIReasonCategory,
		DecisionEngine:      l.DecisionEngine,
		DecisionExplanation: l.DecisionExplanation,
		ReviewerComments:    l.ReviewerComments,
	}
	if l.ReviewedBy != nil {
		v := l.ReviewedBy.String()
		resp.ReviewedBy = &v
	}
	if l.ReviewedAt != nil {
		v := l.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &v
	}
	return resp
}
