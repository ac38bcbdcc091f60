package audit

import (
	"context"
	"database/sql"
	"time"

	"go-leaveai/internal/events"
	"go-leaveai/internal/messaging/kafka"
	"go-leaveai/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Trail appends entries and queues a copy of each one on the outbox inside
// the caller's transaction, so an entry exists if and only if the state
// change it describes was committed.
type Trail struct {
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewTrail accepts a nil outbox, in which case entries are only stored.
func NewTrail(repo Repository, outbox kafka.OutboxRepository, logger ...*zap.Logger) *Trail {
	l := zap.L().Named("audit.trail")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit.trail")
	}
	return &Trail{repo: repo, outbox: outbox, logger: l, now: time.Now}
}

func (t *Trail) Append(ctx context.Context, tx *sql.Tx, e *Entry) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = t.now().UTC()
	}

	if err := t.repo.WithTx(tx).Append(ctx, e); err != nil {
		t.logger.Error("append audit entry failed",
			zap.String("leave_id", e.LeaveRequestID.String()),
			zap.String("action", e.Action),
			zap.Error(err),
		)
		return err
	}

	if t.outbox == nil {
		return nil
	}

	rid := contextutil.GetRequestID(ctx)
	event := events.LeaveAuditRecordedEvent{
		EventType:      "leave_audit_recorded",
		RequestID:      rid,
		AuditID:        e.ID.String(),
		LeaveRequestID: e.LeaveRequestID.String(),
		CompanyID:      e.CompanyID.String(),
		Action:         e.Action,
		ActorType:      e.ActorType,
		PreviousStatus: e.PreviousStatus,
		NewStatus:      e.NewStatus,
		Details:        e.Details,
		Metadata:       e.Metadata,
		OccurredAt:     e.CreatedAt,
	}
	if e.ActorID != nil {
		event.ActorID = e.ActorID.String()
	}

	outboxEvent, err := kafka.NewEvent(rid, kafka.AggregateLeaveRequest, event.LeaveRequestID, event.EventType, events.LeaveAuditTopic, event)
	if err != nil {
		return err
	}
	if err := t.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
		t.logger.Error("queue audit entry failed",
			zap.String("leave_id", event.LeaveRequestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (t *Trail) List(ctx context.Context, companyID, leaveRequestID string) ([]Entry, error) {
	return t.repo.ListByLeave(ctx, companyID, leaveRequestID)
}
