package app

import (
	"context"

	"go-leaveai/internal/config"
	"go-leaveai/internal/messaging/kafka"
	"go-leaveai/internal/messaging/kafka/producer"

	"go.uber.org/zap"
)

// RunWorker relays queued audit events from the outbox to Kafka.
func RunWorker(ctx context.Context, cfg *config.Config) error {
	logger := zap.L().Named("app.worker")

	in, err := connectInfra(cfg, false, true)
	if err != nil {
		return err
	}
	defer in.Close()

	outboxRepo := kafka.NewOutboxRepository(in.sqlDB)

	producer.ProcessOutboxEvents(
		ctx,
		outboxRepo,
		in.kafka,
		logger,
		cfg.Kafka.PollInterval,
	)

	logger.Info("worker stopped")
	return nil
}
