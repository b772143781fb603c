package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payment_sync/internal/domain/entities"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestNewClient(t *testing.T) {
	c := NewClient(" kafka-1:9092, ,kafka-2:9092 ")
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, c.Brokers)
	assert.True(t, c.Enabled())
	assert.False(t, NewClient("").Enabled())
}

func TestPublisher_LogOnly(t *testing.T) {
	p := NewPublisher(NewClient(""), "events", "notifications")
	assert.NoError(t, p.PublishOrderEvent(context.Background(), entities.OrderEvent{Type: entities.OrderEventCreated}))
	assert.NoError(t, p.Notify(context.Background(), entities.CustomerNotification{OrderCode: "100001"}))
	assert.NoError(t, p.Close())
}

func TestPublisher_PublishOrderEvent(t *testing.T) {
	events := &fakeWriter{}
	p := &Publisher{events: events, notifications: &fakeWriter{}}

	err := p.PublishOrderEvent(context.Background(), entities.OrderEvent{
		ID:        "ev_1",
		Type:      entities.OrderEventCanceled,
		GatewayID: "or_1",
		Status:    entities.OrderStatusCanceled,
	})
	require.NoError(t, err)
	require.Len(t, events.messages, 1)
	assert.Equal(t, "or_1", string(events.messages[0].Key))

	var decoded entities.OrderEvent
	require.NoError(t, json.Unmarshal(events.messages[0].Value, &decoded))
	assert.Equal(t, entities.OrderEventCanceled, decoded.Type)

	require.NoError(t, p.Close())
	assert.True(t, events.closed)
}

func TestPublisher_Notify(t *testing.T) {
	notifications := &fakeWriter{err: errors.New("broker down")}
	p := &Publisher{events: &fakeWriter{}, notifications: notifications}

	err := p.Notify(context.Background(), entities.CustomerNotification{OrderCode: "100001", Email: "ana@example.com"})
	assert.EqualError(t, err, "broker down")
}
