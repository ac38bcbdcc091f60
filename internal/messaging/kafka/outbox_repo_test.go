package kafka_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"go-leaveai/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	ev, err := kafka.NewEvent("rid-1", kafka.AggregateLeaveRequest, "leave-1", "leave_decided", "hr.leave.decided.v1", map[string]string{"outcome": "APPROVED"})
	require.NoError(t, err)
	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, kafka.OutboxStatusPending, ev.Status)
	assert.JSONEq(t, `{"outcome":"APPROVED"}`, string(ev.Payload))
	assert.NoError(t, kafka.ValidateOutboxEvent(ev))

	_, err = kafka.NewEvent("", kafka.AggregateLeaveRequest, "leave-1", "leave_decided", "t", make(chan int))
	assert.Error(t, err)
}

func TestValidateOutboxEvent(t *testing.T) {
	valid := kafka.OutboxEvent{ID: "1", AggregateID: "leave-1", Topic: "t", Payload: []byte("{}"), Status: kafka.OutboxStatusPending}

	cases := []struct {
		name   string
		mutate func(*kafka.OutboxEvent)
	}{
		{"missing id", func(e *kafka.OutboxEvent) { e.ID = "" }},
		{"missing aggregate", func(e *kafka.OutboxEvent) { e.AggregateID = "" }},
		{"missing topic", func(e *kafka.OutboxEvent) { e.Topic = "" }},
		{"missing payload", func(e *kafka.OutboxEvent) { e.Payload = nil }},
		{"already sent", func(e *kafka.OutboxEvent) { e.Status = kafka.OutboxStatusSent }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ev := valid
			tc.mutate(&ev)
			assert.Error(t, kafka.ValidateOutboxEvent(ev))
		})
	}
}

func TestOutboxRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create inside transaction", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		ev, _ := kafka.NewEvent("", kafka.AggregateLeaveRequest, "leave-1", "leave_audit_recorded", "hr.leave.audit.v1", map[string]int{"n": 1})

		sqlMock.ExpectBegin()
		sqlMock.ExpectExec(regexp.QuoteMeta("INSERT INTO outbox_events")).
			WithArgs(ev.ID, "", kafka.AggregateLeaveRequest, "leave-1", "leave_audit_recorded", "hr.leave.audit.v1", ev.Payload, kafka.OutboxStatusPending).
			WillReturnResult(sqlmock.NewResult(0, 1))
		sqlMock.ExpectCommit()

		tx, err := db.Begin()
		require.NoError(t, err)
		require.NoError(t, kafka.NewOutboxRepository(db).WithTx(tx).Create(ctx, ev))
		require.NoError(t, tx.Commit())
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("claim pending batch", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		next := time.Date(2026, 3, 2, 9, 0, 30, 0, time.UTC)
		rows := sqlmock.NewRows([]string{"id", "request_id", "aggregate_type", "aggregate_id", "event_type", "topic", "payload", "status", "retry_count", "next_retry_at"}).
			AddRow("ev-1", "rid-1", kafka.AggregateLeaveRequest, "leave-1", "leave_audit_recorded", "hr.leave.audit.v1", []byte(`{}`), kafka.OutboxStatusFailed, 2, next)

		sqlMock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE SKIP LOCKED")).
			WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, 30.0, 50).
			WillReturnRows(rows)

		got, err := kafka.NewOutboxRepository(db).ClaimPending(ctx, 50, 30*time.Second)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, 2, got[0].RetryCount)
		assert.Equal(t, next, got[0].NextRetryAt)
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("mark failed parks after max attempts", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		sqlMock.ExpectExec(regexp.QuoteMeta("UPDATE outbox_events")).
			WithArgs("ev-1", kafka.OutboxStatusFailed, kafka.OutboxStatusDead, kafka.MaxOutboxAttempts, "broker unavailable").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, kafka.NewOutboxRepository(db).MarkFailed(ctx, "ev-1", "broker unavailable"))
		assert.NoError(t, sqlMock.ExpectationsWereMet())
	})

	t.Run("claim error", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		sqlMock.ExpectQuery("UPDATE outbox_events").WillReturnError(errors.New("db down"))

		_, err = kafka.NewOutboxRepository(db).ClaimPending(ctx, 10, time.Minute)
		assert.EqualError(t, err, "db down")
	})
}
