package producer

import (
	"context"
	"time"

	"go-farmbook/internal/messaging/kafka"

	"go.uber.org/zap"
)

const (
	batchSize     = 50
	purgeInterval = time.Hour
)

type WorkerConfig struct {
	PollInterval time.Duration
	// SentRetention is how long published events are kept. Zero keeps them.
	SentRetention time.Duration
}

// ProcessOutboxEvents polls the outbox until ctx is cancelled. Failed events
// are marked for a delayed retry; the row keeps its place in the queue.
// Published events older than cfg.SentRetention are purged once an hour.
func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
	cfg WorkerConfig,
) {
	pollInterval := cfg.PollInterval
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}

	log := logger.Named("kafka.producer.worker")
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	log.Info("outbox worker started",
		zap.Duration("poll_interval", pollInterval),
		zap.Duration("sent_retention", cfg.SentRetention),
	)

	var lastPurge time.Time
	for {
		select {
		case <-ctx.Done():
			log.Info("outbox worker stopped")
			return
		case now := <-ticker.C:
			if err := processPendingEvents(ctx, repo, writer, log); err != nil {
				log.Error("process outbox events failed", zap.Error(err))
			}
			if cfg.SentRetention > 0 && now.Sub(lastPurge) >= purgeInterval {
				PurgeSent(ctx, repo, now.Add(-cfg.SentRetention), log)
				lastPurge = now
			}
		}
	}
}

// PurgeSent drops published events older than before. Failures are logged
// and retried on the next purge.
func PurgeSent(ctx context.Context, repo kafka.OutboxRepository, before time.Time, logger *zap.Logger) {
	n, err := repo.PurgeSent(ctx, before)
	if err != nil {
		logger.Error("purge sent outbox events failed", zap.Error(err))
		return
	}
	if n > 0 {
		logger.Info("purged sent outbox events", zap.Int64("count", n), zap.Time("before", before))
	}
}

// ProcessPending publishes one batch of pending events.
func ProcessPending(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
) error {
	return processPendingEvents(ctx, repo, writer, logger)
}

func processPendingEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
) error {
	events, err := repo.ListPending(ctx, batchSize)
	if err != nil {
		return err
	}

	if len(events) == 0 {
		return nil
	}

	logger.Info("processing pending outbox events", zap.Int("count", len(events)))

	for _, event := range events {
		if err := publishEvent(ctx, writer, event); err != nil {
			if event.Attempts+1 >= kafka.MaxPublishAttempts {
				logger.Warn("outbox event parked as dead", zap.String("outbox_id", event.ID))
			}
			logger.Error("publish outbox event failed",
				zap.String("outbox_id", event.ID),
				zap.String("farm_id", event.FarmID),
				zap.String("event_type", event.EventType),
				zap.Int("attempt", event.Attempts+1),
				zap.String("request_id", event.RequestID),
				zap.Error(err),
			)
			if markErr := repo.MarkFailed(ctx, event.ID, err.Error()); markErr != nil {
				logger.Error("mark outbox failed failed", zap.String("outbox_id", event.ID), zap.Error(markErr))
			}
			continue
		}

		if err := repo.MarkSent(ctx, event.ID); err != nil {
			logger.Error("mark outbox sent failed",
				zap.String("outbox_id", event.ID),
				zap.Error(err),
			)
			continue
		}

		logger.Info("outbox event sent",
			zap.String("outbox_id", event.ID),
			zap.String("event_type", event.EventType),
			zap.String("topic", event.Topic),
		)
	}

	return nil
}
