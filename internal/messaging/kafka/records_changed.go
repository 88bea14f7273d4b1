package kafka

import (
	"context"
	"database/sql"
	"encoding/json"

	"go-farmbook/internal/events"

	"github.com/google/uuid"
)

// EnqueueRecordsChanged writes the event to the outbox inside tx. A nil
// repository means event publishing is disabled and is not an error.
func EnqueueRecordsChanged(ctx context.Context, repo OutboxRepository, tx *sql.Tx, event events.RecordsChangedEvent) error {
	if repo == nil {
		return nil
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return repo.WithTx(tx).Create(ctx, OutboxEvent{
		ID:         uuid.NewString(),
		FarmID:     event.FarmID,
		Collection: event.Collection,
		RecordID:   event.RecordID,
		EventType:  event.EventType,
		RequestID:  event.RequestID,
		Topic:      events.RecordsChangedTopic,
		Payload:    payload,
		Status:     OutboxStatusPending,
	})
}
