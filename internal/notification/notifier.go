package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-leaveai/internal/events"
	"go-leaveai/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const EventLeaveDecided = "LeaveDecided"

// Notice describes one outcome to deliver to the employee.
type Notice struct {
	LeaveRequestID string
	RequestNumber  string
	CompanyID      string
	EmployeeID     string
	EmployeeEmail  string
	Outcome        string
	LeaveType      string
	StartDate      string
	EndDate        string
	TotalDays      string
	Explanation    string
}

// Notifier delivers outcomes to employees. Callers treat a returned error as
// informational only; a decision is never rolled back because of it.
//
//go:generate mockgen -source=notifier.go -destination=mock/notifier_mock.go -package=mock
type Notifier interface {
	Notify(ctx context.Context, n Notice) error
}

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type kafkaNotifier struct {
	writer MessageWriter
	topic  string
	logger *zap.Logger
	now    func() time.Time
}

// NewKafkaNotifier publishes notices on the decided topic, keyed by leave
// request so that all notices for one request stay ordered.
func NewKafkaNotifier(writer MessageWriter, topic string, logger ...*zap.Logger) Notifier {
	l := zap.L().Named("notification.kafka")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.kafka")
	}
	if topic == "" {
		topic = events.LeaveDecidedTopic
	}
	return &kafkaNotifier{writer: writer, topic: topic, logger: l, now: time.Now}
}

func (n *kafkaNotifier) Notify(ctx context.Context, notice Notice) error {
	payload, err := json.Marshal(events.LeaveDecidedEvent{
		EventType:      EventLeaveDecided,
		LeaveRequestID: notice.LeaveRequestID,
		RequestNumber:  notice.RequestNumber,
		CompanyID:      notice.CompanyID,
		EmployeeID:     notice.EmployeeID,
		EmployeeEmail:  notice.EmployeeEmail,
		Outcome:        notice.Outcome,
		LeaveType:      notice.LeaveType,
		StartDate:      notice.StartDate,
		EndDate:        notice.EndDate,
		TotalDays:      notice.TotalDays,
		Explanation:    notice.Explanation,
		OccurredAt:     n.now().UTC(),
	})
	if err != nil {
		return err
	}

	requestID := contextutil.GetRequestID(ctx)
	msg := kafkago.Message{
		Topic: n.topic,
		Key:   []byte(notice.LeaveRequestID),
		Value: payload,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(EventLeaveDecided)},
			{Key: "request_id", Value: []byte(requestID)},
		},
	}

	if err := n.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish leave notice: %w", err)
	}

	n.logger.Debug("leave notice published",
		zap.String("leave_id", notice.LeaveRequestID),
		zap.String("outcome", notice.Outcome),
	)
	return nil
}

type logNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier only logs notices. Used when no broker is configured.
func NewLogNotifier(logger ...*zap.Logger) Notifier {
	l := zap.L().Named("notification.log")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.log")
	}
	return &logNotifier{logger: l}
}

func (n *logNotifier) Notify(_ context.Context, notice Notice) error {
	n.logger.Info("leave notice",
		zap.String("leave_id", notice.LeaveRequestID),
		zap.String("employee_id", notice.EmployeeID),
		zap.String("outcome", notice.Outcome),
	)
	return nil
}
