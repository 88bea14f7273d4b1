package consumer

import (
	"context"
	"encoding/json"
	"time"

	"go-farmbook/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	defaultRetryBackoff = 500 * time.Millisecond
	maxRetryBackoff     = 30 * time.Second
)

// MessageReader is the part of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// CacheInvalidator drops whatever was derived from a farm's records.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, farmID string) error
}

// ConsumeRecordsChanged invalidates a farm's cached aggregates for every
// change event until ctx is cancelled. A failed invalidation is retried with
// doubling backoff before the next message is fetched, and a message is
// committed only after its invalidation succeeded. Undecodable messages are
// committed and dropped.
func ConsumeRecordsChanged(
	ctx context.Context,
	reader MessageReader,
	cache CacheInvalidator,
	retryBackoff time.Duration,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.records_changed")
	log.Info("records changed consumer started")

	if retryBackoff <= 0 {
		retryBackoff = defaultRetryBackoff
	}

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("records changed consumer stopped")
				return
			}
			log.Error("fetch records changed message failed", zap.Error(err))
			continue
		}

		handleRecordsChanged(ctx, reader, cache, msg, retryBackoff, log)
	}
}

func handleRecordsChanged(
	ctx context.Context,
	reader MessageReader,
	cache CacheInvalidator,
	msg kafkago.Message,
	retryBackoff time.Duration,
	log *zap.Logger,
) {
	var event events.RecordsChangedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil || event.FarmID == "" {
		log.Error("decode records changed event failed", zap.Error(err), zap.Int64("offset", msg.Offset))
		if commitErr := reader.CommitMessages(ctx, msg); commitErr != nil {
			log.Error("commit invalid records changed event failed", zap.Error(commitErr))
		}
		return
	}

	if err := invalidateWithRetry(ctx, cache, event, retryBackoff, log); err != nil {
		// only reached on shutdown; the uncommitted message is redelivered
		log.Warn("invalidate farm cache abandoned",
			zap.String("farm_id", event.FarmID),
			zap.Int64("offset", msg.Offset),
			zap.Error(err),
		)
		return
	}

	if err := reader.CommitMessages(ctx, msg); err != nil {
		log.Error("commit records changed message failed", zap.Error(err))
		return
	}

	log.Debug("farm cache invalidated",
		zap.String("farm_id", event.FarmID),
		zap.String("collection", event.Collection),
		zap.String("record_id", event.RecordID),
	)
}

func invalidateWithRetry(
	ctx context.Context,
	cache CacheInvalidator,
	event events.RecordsChangedEvent,
	backoff time.Duration,
	log *zap.Logger,
) error {
	for attempt := 1; ; attempt++ {
		err := cache.Invalidate(ctx, event.FarmID)
		if err == nil {
			return nil
		}
		log.Error("invalidate farm cache failed",
			zap.String("farm_id", event.FarmID),
			zap.String("event_type", event.EventType),
			zap.String("request_id", event.RequestID),
			zap.Int("attempt", attempt),
			zap.Duration("retry_in", backoff),
			zap.Error(err),
		)
		if ctx.Err() != nil {
			return ctx.Err()
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		backoff = min(backoff*2, maxRetryBackoff)
	}
}
