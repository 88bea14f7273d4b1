package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"go-farmbook/internal/config"
	"go-farmbook/internal/dashboard"
	"go-farmbook/internal/events"
	"go-farmbook/internal/messaging/kafka/consumer"
	"go-farmbook/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer drops a farm's cached dashboard views whenever one of its
// records changes, until SIGINT or SIGTERM.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Redis.MaxRetries)
	if err != nil {
		return err
	}
	defer rdb.Close()

	// Invalidate only touches Redis, so the dashboard needs no snapshot source here.
	cache := dashboard.NewService(nil, rdb, cfg.Dashboard.CacheTTL, zap.L())

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          events.RecordsChangedTopic,
		GroupID:        cfg.Kafka.GroupID,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer.ConsumeRecordsChanged(ctx, reader, cache, cfg.Kafka.RetryBackoff, logger)

	logger.Info("consumer shut down")
	return nil
}
