package consumer_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-farmbook/internal/events"
	"go-farmbook/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeReader struct {
	msgs      []kafkago.Message
	committed []int64
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if err := ctx.Err(); err != nil {
		return kafkago.Message{}, err
	}
	if len(r.msgs) == 0 {
		r.cancel()
		<-ctx.Done()
		return kafkago.Message{}, ctx.Err()
	}
	m := r.msgs[0]
	r.msgs = r.msgs[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

// fakeCache fails the first failures[farm] invalidations of a farm.
type fakeCache struct {
	invalidated []string
	attempts    map[string]int
	failures    map[string]int
	onFailure   func()
}

func (c *fakeCache) Invalidate(ctx context.Context, farmID string) error {
	if c.attempts == nil {
		c.attempts = map[string]int{}
	}
	c.attempts[farmID]++
	if c.failures[farmID] < 0 || c.attempts[farmID] <= c.failures[farmID] {
		if c.onFailure != nil {
			c.onFailure()
		}
		return errors.New("redis down")
	}
	c.invalidated = append(c.invalidated, farmID)
	return nil
}

func message(t *testing.T, offset int64, farmID string) kafkago.Message {
	t.Helper()
	ev := events.RecordsChangedEvent{
		EventType:  "travels.created",
		FarmID:     farmID,
		Collection: events.CollectionTravels,
		OccurredAt: time.Now(),
	}
	b, err := json.Marshal(ev)
	assert.NoError(t, err)
	return kafkago.Message{Offset: offset, Value: b}
}

func TestConsumeRecordsChanged(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{cancel: cancel, msgs: []kafkago.Message{
		message(t, 1, "farm-a"),
		{Offset: 2, Value: []byte("not json")},
		message(t, 3, "farm-flaky"),
		message(t, 4, "farm-b"),
	}}
	cache := &fakeCache{failures: map[string]int{"farm-flaky": 2}}

	consumer.ConsumeRecordsChanged(ctx, reader, cache, time.Millisecond, zap.NewNop())

	// the flaky farm is retried in place, before offset 4 is fetched
	assert.Equal(t, []string{"farm-a", "farm-flaky", "farm-b"}, cache.invalidated)
	assert.Equal(t, 3, cache.attempts["farm-flaky"])
	assert.Equal(t, []int64{1, 2, 3, 4}, reader.committed)
}

func TestConsumeRecordsChanged_ShutdownDuringRetry(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &fakeReader{cancel: cancel, msgs: []kafkago.Message{
		message(t, 1, "farm-a"),
		message(t, 2, "farm-down"),
		message(t, 3, "farm-b"),
	}}
	cache := &fakeCache{failures: map[string]int{"farm-down": -1}}
	cache.onFailure = func() {
		if cache.attempts["farm-down"] == 3 {
			cancel()
		}
	}

	consumer.ConsumeRecordsChanged(ctx, reader, cache, time.Millisecond, zap.NewNop())

	assert.Equal(t, 3, cache.attempts["farm-down"])
	assert.Equal(t, []string{"farm-a"}, cache.invalidated)
	// neither the failed message nor anything after it is committed
	assert.Equal(t, []int64{1}, reader.committed)
}
