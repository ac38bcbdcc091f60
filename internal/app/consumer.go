package app

import (
	"context"

	"go-leaveai/internal/config"
	"go-leaveai/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer evaluates every request announced on the submitted topic.
func RunConsumer(ctx context.Context, cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	in, err := connectInfra(cfg, true, true)
	if err != nil {
		return err
	}
	defer in.Close()

	m, err := buildModules(in)
	if err != nil {
		return err
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     []string{cfg.Kafka.Broker},
		Topic:       cfg.Kafka.SubmittedTopic,
		GroupID:     cfg.Kafka.GroupID,
		StartOffset: kafkago.FirstOffset,
	})
	defer reader.Close()

	consumer.ConsumeLeaveSubmitted(ctx, reader, m.leave, logger, consumer.Backoff{})

	logger.Info("consumer stopped")
	return nil
}
