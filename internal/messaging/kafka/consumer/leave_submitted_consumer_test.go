package consumer_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"go-leaveai/internal/events"
	"go-leaveai/internal/leave"
	"go-leaveai/internal/messaging/kafka/consumer"
	"go-leaveai/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeReader struct {
	mu        sync.Mutex
	msgs      []kafkago.Message
	committed []int64
	cancel    context.CancelFunc
}

func (f *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.msgs) == 0 {
		f.cancel()
		return kafkago.Message{}, ctx.Err()
	}
	msg := f.msgs[0]
	f.msgs = f.msgs[1:]
	return msg, nil
}

func (f *fakeReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range msgs {
		f.committed = append(f.committed, m.Offset)
	}
	return nil
}

type processorFunc func(ctx context.Context, companyID, id string) (leave.Outcome, error)

func (f processorFunc) Process(ctx context.Context, companyID, id string) (leave.Outcome, error) {
	return f(ctx, companyID, id)
}

func submitted(t *testing.T, offset int64, leaveID, requestID string) kafkago.Message {
	t.Helper()
	payload, err := json.Marshal(events.LeaveSubmittedEvent{
		EventType:      "leave_submitted",
		RequestID:      requestID,
		LeaveRequestID: leaveID,
		CompanyID:      "c-1",
	})
	assert.NoError(t, err)
	return kafkago.Message{Offset: offset, Value: payload}
}

var fastRetry = consumer.Backoff{Initial: time.Millisecond, Max: 4 * time.Millisecond}

func TestConsumeLeaveSubmitted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{
		cancel: cancel,
		msgs: []kafkago.Message{
			submitted(t, 1, "l-1", "rid-1"),
			{Offset: 2, Value: []byte("not json")},
			submitted(t, 3, "l-3", ""),
		},
	}
	reader.msgs[2].Headers = []kafkago.Header{{Key: "request_id", Value: []byte("rid-3")}}

	var seen []string
	processor := processorFunc(func(ctx context.Context, companyID, id string) (leave.Outcome, error) {
		assert.Equal(t, "c-1", companyID)
		seen = append(seen, id+"/"+contextutil.GetRequestID(ctx))
		return leave.OutcomeApproved, nil
	})

	consumer.ConsumeLeaveSubmitted(ctx, reader, processor, zap.NewNop(), fastRetry)

	assert.Equal(t, []string{"l-1/rid-1", "l-3/rid-3"}, seen)
	assert.Equal(t, []int64{1, 2, 3}, reader.committed)
}

func TestConsumeLeaveSubmitted_RetriesTransientFailure(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{
		cancel: cancel,
		msgs:   []kafkago.Message{submitted(t, 4, "l-4", ""), submitted(t, 5, "l-5", "")},
	}

	attempts := map[string]int{}
	processor := processorFunc(func(_ context.Context, _, id string) (leave.Outcome, error) {
		attempts[id]++
		if id == "l-4" && attempts[id] == 1 {
			return "", errors.New("db down")
		}
		return leave.OutcomePendingReview, nil
	})

	consumer.ConsumeLeaveSubmitted(ctx, reader, processor, zap.NewNop(), fastRetry)

	assert.Equal(t, map[string]int{"l-4": 2, "l-5": 1}, attempts)
	assert.Equal(t, []int64{4, 5}, reader.committed)
}

func TestConsumeLeaveSubmitted_ShutdownLeavesFailedMessageUncommitted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{
		cancel: cancel,
		msgs:   []kafkago.Message{submitted(t, 6, "l-6", ""), submitted(t, 7, "l-7", "")},
	}

	var calls []string
	processor := processorFunc(func(_ context.Context, _, id string) (leave.Outcome, error) {
		calls = append(calls, id)
		if len(calls) == 3 {
			cancel()
		}
		return "", errors.New("db down")
	})

	consumer.ConsumeLeaveSubmitted(ctx, reader, processor, zap.NewNop(), fastRetry)

	assert.Equal(t, []string{"l-6", "l-6", "l-6"}, calls)
	assert.Empty(t, reader.committed)
}
