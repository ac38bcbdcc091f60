package consumer

import (
	"context"
	"encoding/json"
	"time"

	"go-leaveai/internal/events"
	"go-leaveai/internal/leave"
	"go-leaveai/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumers use.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// LeaveProcessor runs the evaluation pipeline for one request.
type LeaveProcessor interface {
	Process(ctx context.Context, companyID, id string) (leave.Outcome, error)
}

// Backoff bounds the wait between attempts at the same message. Zero fields
// take the defaults.
type Backoff struct {
	Initial time.Duration
	Max     time.Duration
}

const (
	defaultRetryInitial = 500 * time.Millisecond
	defaultRetryMax     = 30 * time.Second
)

func (b Backoff) withDefaults() Backoff {
	if b.Initial <= 0 {
		b.Initial = defaultRetryInitial
	}
	if b.Max < b.Initial {
		b.Max = defaultRetryMax
	}
	return b
}

// ConsumeLeaveSubmitted evaluates every submitted request. The reader keeps
// advancing within a session, so an infrastructure error is retried on the
// same message until Process reports an outcome; the offset is committed only
// after that. On shutdown the message stays uncommitted for the next session.
func ConsumeLeaveSubmitted(
	ctx context.Context,
	reader MessageReader,
	processor LeaveProcessor,
	logger *zap.Logger,
	backoff Backoff,
) {
	backoff = backoff.withDefaults()
	log := logger.Named("kafka.consumer.leave_submitted")
	log.Info("leave submitted consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("leave submitted consumer stopped")
				return
			}
			log.Error("fetch leave submitted message failed", zap.Error(err))
			continue
		}

		var event events.LeaveSubmittedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil || event.LeaveRequestID == "" {
			log.Error("decode leave submitted event failed", zap.Error(err), zap.Int64("offset", msg.Offset))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		msgCtx := ctx
		if rid := requestIDOf(msg, event); rid != "" {
			msgCtx = contextutil.WithRequestID(ctx, rid)
		}

		outcome, ok := processWithRetry(msgCtx, processor, event, backoff, log)
		if !ok {
			log.Info("leave submitted consumer stopped", zap.Int64("uncommitted_offset", msg.Offset))
			return
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit leave submitted message failed", zap.Error(err))
			continue
		}

		log.Info("leave processed from leave_submitted event",
			zap.String("leave_id", event.LeaveRequestID),
			zap.String("company_id", event.CompanyID),
			zap.String("outcome", string(outcome)),
		)
	}
}

// processWithRetry returns false only when ctx ends before Process succeeds.
func processWithRetry(
	ctx context.Context,
	processor LeaveProcessor,
	event events.LeaveSubmittedEvent,
	backoff Backoff,
	log *zap.Logger,
) (leave.Outcome, bool) {
	wait := backoff.Initial
	for attempt := 1; ; attempt++ {
		outcome, err := processor.Process(ctx, event.CompanyID, event.LeaveRequestID)
		if err == nil {
			return outcome, true
		}
		log.Error("process leave failed, retrying",
			zap.String("leave_id", event.LeaveRequestID),
			zap.String("company_id", event.CompanyID),
			zap.Int("attempt", attempt),
			zap.Duration("retry_in", wait),
			zap.Error(err),
		)

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return "", false
		case <-timer.C:
		}
		wait = min(wait*2, backoff.Max)
	}
}

func requestIDOf(msg kafkago.Message, event events.LeaveSubmittedEvent) string {
	if event.RequestID != "" {
		return event.RequestID
	}
	for _, h := range msg.Headers {
		if h.Key == "request_id" {
			return string(h.Value)
		}
	}
	return ""
}
