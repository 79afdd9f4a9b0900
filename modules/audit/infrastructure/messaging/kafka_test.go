package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BasavarajuVB/User-management-backend/internal/platform/config"
	"github.com/BasavarajuVB/User-management-backend/modules/shared/events"
	"github.com/BasavarajuVB/User-management-backend/modules/shared/events/contracts"
)

type mockWriter struct {
	messages []writerMessage
	err      error
	closed   bool
	ctxErr   error
	deadline time.Time
}

func (m *mockWriter) WriteMessages(ctx context.Context, msgs ...writerMessage) error {
	m.ctxErr = ctx.Err()
	m.deadline, _ = ctx.Deadline()
	if m.err != nil {
		return m.err
	}
	m.messages = append(m.messages, msgs...)
	return nil
}

func (m *mockWriter) Close() error {
	m.closed = true
	return nil
}

func createdEvent() contracts.UserCreatedEvent {
	return contracts.UserCreatedEvent{
		BaseEvent: events.NewBaseEvent(contracts.UserCreatedEventType, "12"),
		UserSnapshot: contracts.UserSnapshot{
			UserID:     12,
			FirstName:  "Ada",
			LastName:   "Lovelace",
			Email:      "ada@example.com",
			Department: "Research",
		},
	}
}

func TestForward_Serialization(t *testing.T) {
	mock := &mockWriter{}
	f := &KafkaForwarder{writer: mock, topic: "users.events"}

	event := createdEvent()
	require.NoError(t, f.Forward(context.Background(), event))

	require.Len(t, mock.messages, 1)
	msg := mock.messages[0]

	var decoded contracts.UserCreatedEvent
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, event.ID, decoded.ID)
	assert.Equal(t, contracts.UserCreatedEventType, decoded.Type)
	assert.Equal(t, int64(12), decoded.UserID)
	assert.Equal(t, "ada@example.com", decoded.Email)
}

func TestForward_KeyTopicAndHeaders(t *testing.T) {
	mock := &mockWriter{}
	f := &KafkaForwarder{writer: mock, topic: "users.events"}

	event := createdEvent()
	require.NoError(t, f.Forward(context.Background(), event))

	msg := mock.messages[0]
	assert.Equal(t, "users.events", msg.Topic)
	assert.Equal(t, []byte("12"), msg.Key)
	assert.Equal(t, "users.UserCreated", msg.Headers["event_type"])
	assert.Equal(t, event.ID, msg.Headers["event_id"])
}

func TestForward_WriteError(t *testing.T) {
	mock := &mockWriter{err: errors.New("connection refused")}
	f := &KafkaForwarder{writer: mock, topic: "users.events"}

	err := f.Forward(context.Background(), createdEvent())

	assert.ErrorContains(t, err, "failed to publish event to kafka")
}

func TestClose(t *testing.T) {
	mock := &mockWriter{}
	f := &KafkaForwarder{writer: mock, topic: "users.events"}

	require.NoError(t, f.Close())
	assert.True(t, mock.closed)
}

func TestForward_SurvivesCancelledRequest(t *testing.T) {
	mock := &mockWriter{}
	f := &KafkaForwarder{writer: mock, topic: "users.events"}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, f.Forward(ctx, createdEvent()))
	assert.Len(t, mock.messages, 1)
	assert.NoError(t, mock.ctxErr)
	assert.False(t, mock.deadline.IsZero())
	assert.WithinDuration(t, time.Now().Add(forwardTimeout), mock.deadline, time.Second)
}

func TestNewKafkaForwarder(t *testing.T) {
	f := NewKafkaForwarder(config.KafkaConfig{Brokers: []string{"localhost:9092"}, Topic: "users.events"})

	assert.Equal(t, "users.events", f.topic)
	require.IsType(t, &kafkaGoWriter{}, f.writer)

	w := f.writer.(*kafkaGoWriter).w
	assert.Equal(t, batchTimeout, w.BatchTimeout)
	assert.Less(t, w.BatchTimeout, 100*time.Millisecond)
	assert.False(t, w.Async)
}
