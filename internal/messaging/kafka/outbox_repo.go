package kafka

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const (
	OutboxStatusPending = "pending"
	OutboxStatusSent    = "sent"
	OutboxStatusFailed  = "failed"
	// OutboxStatusDead rows are never picked up again.
	OutboxStatusDead = "dead"
)

// MaxPublishAttempts is how many failed publishes an event survives before
// it is parked as dead.
const MaxPublishAttempts = 10

// OutboxEvent is one pending change notification for a farm. Events of the
// same farm are published with the farm id as key, so they stay ordered on
// a single partition.
type OutboxEvent struct {
	ID          string
	FarmID      string
	Collection  string
	RecordID    string
	EventType   string
	RequestID   string
	Topic       string
	Payload     []byte
	Status      string
	Attempts    int
	NextRetryAt time.Time
}

// OutboxRepository stores events next to the records they describe so both
// commit or roll back together.
//
//go:generate mockgen -source=outbox_repo.go -destination=mock/outbox_repo_mock.go -package=mock
type OutboxRepository interface {
	WithTx(tx *sql.Tx) OutboxRepository
	Create(ctx context.Context, event OutboxEvent) error
	ListPending(ctx context.Context, limit int) ([]OutboxEvent, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, reason string) error
	PurgeSent(ctx context.Context, before time.Time) (int64, error)
}

type outboxRepository struct {
	db *sql.DB
	tx *sql.Tx
}

func NewOutboxRepository(db *sql.DB) OutboxRepository {
	return &outboxRepository{db: db}
}

func (r *outboxRepository) WithTx(tx *sql.Tx) OutboxRepository {
	return &outboxRepository{db: r.db, tx: tx}
}

func (r *outboxRepository) Create(ctx context.Context, event OutboxEvent) error {
	if err := ValidateOutboxEvent(event); err != nil {
		return err
	}

	const query = `
INSERT INTO outbox_events (
	id, farm_id, collection, record_id, event_type, request_id, topic, payload, status
) VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9)
`
	_, err := r.execer().ExecContext(
		ctx, query,
		event.ID, event.FarmID, event.Collection, event.RecordID, event.EventType,
		event.RequestID, event.Topic, event.Payload, event.Status,
	)
	return err
}

// ListPending returns events due for a publish attempt, oldest first.
func (r *outboxRepository) ListPending(ctx context.Context, limit int) ([]OutboxEvent, error) {
	const query = `
SELECT id::text, farm_id, collection, record_id, event_type,
	COALESCE(request_id, ''), topic, payload, status, attempts,
	COALESCE(next_retry_at, created_at)
FROM outbox_events
WHERE status IN ($1, $2)
	AND (next_retry_at IS NULL OR next_retry_at <= NOW())
ORDER BY created_at ASC
LIMIT $3
`
	rows, err := r.db.QueryContext(ctx, query, OutboxStatusPending, OutboxStatusFailed, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]OutboxEvent, 0, limit)
	for rows.Next() {
		var e OutboxEvent
		if err := rows.Scan(
			&e.ID, &e.FarmID, &e.Collection, &e.RecordID, &e.EventType,
			&e.RequestID, &e.Topic, &e.Payload, &e.Status, &e.Attempts,
			&e.NextRetryAt,
		); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *outboxRepository) MarkSent(ctx context.Context, id string) error {
	const query = `
UPDATE outbox_events
SET status = $2, sent_at = NOW(), last_error = NULL
WHERE id = $1
`
	_, err := r.db.ExecContext(ctx, query, id, OutboxStatusSent)
	return err
}

// MarkFailed schedules another attempt 15s later per failure so far, capped
// at 150s. The attempt that reaches MaxPublishAttempts parks the event.
func (r *outboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	const query = `
UPDATE outbox_events
SET attempts = attempts + 1,
	status = CASE WHEN attempts + 1 >= $4 THEN $3 ELSE $2 END,
	last_error = LEFT($5, 500),
	next_retry_at = NOW() + (LEAST(attempts + 1, 10) * INTERVAL '15 seconds')
WHERE id = $1
`
	_, err := r.db.ExecContext(ctx, query, id, OutboxStatusFailed, OutboxStatusDead, MaxPublishAttempts, reason)
	return err
}

// PurgeSent deletes events published before the cutoff.
func (r *outboxRepository) PurgeSent(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM outbox_events WHERE status = $1 AND sent_at < $2`,
		OutboxStatusSent, before,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *outboxRepository) execer() interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func ValidateOutboxEvent(event OutboxEvent) error {
	switch {
	case event.ID == "":
		return errors.New("outbox id is required")
	case event.FarmID == "":
		return errors.New("outbox farm id is required")
	case event.Topic == "":
		return errors.New("outbox topic is required")
	case len(event.Payload) == 0:
		return errors.New("outbox payload is required")
	}
	if event.Status != OutboxStatusPending {
		return fmt.Errorf("new outbox events must be %s, got %q", OutboxStatusPending, event.Status)
	}
	return nil
}
