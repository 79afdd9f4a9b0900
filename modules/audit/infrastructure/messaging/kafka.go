// Package messaging forwards user events to Kafka.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kafka "github.com/segmentio/kafka-go"

	"github.com/BasavarajuVB/User-management-backend/internal/platform/config"
	"github.com/BasavarajuVB/User-management-backend/modules/audit/application/eventhandlers"
	"github.com/BasavarajuVB/User-management-backend/modules/shared/events"
)

// messageWriter abstracts kafka.Writer so tests can swap in a mock.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...writerMessage) error
	Close() error
}

type writerMessage struct {
	Topic   string
	Key     []byte
	Value   []byte
	Headers map[string]string
}

type kafkaGoWriter struct {
	w *kafka.Writer
}

func (k *kafkaGoWriter) WriteMessages(ctx context.Context, msgs ...writerMessage) error {
	kafkaMsgs := make([]kafka.Message, len(msgs))
	for i, m := range msgs {
		headers := make([]kafka.Header, 0, len(m.Headers))
		for key, value := range m.Headers {
			headers = append(headers, kafka.Header{Key: key, Value: []byte(value)})
		}
		kafkaMsgs[i] = kafka.Message{
			Topic:   m.Topic,
			Key:     m.Key,
			Value:   m.Value,
			Headers: headers,
		}
	}
	return k.w.WriteMessages(ctx, kafkaMsgs...)
}

func (k *kafkaGoWriter) Close() error {
	return k.w.Close()
}

// KafkaForwarder publishes user events as JSON, keyed by user id so every
// event of one user lands on the same partition in order.
type KafkaForwarder struct {
	writer messageWriter
	topic  string
}

var _ eventhandlers.Forwarder = (*KafkaForwarder)(nil)

const (
	// batchTimeout caps how long a synchronous write waits for more messages
	// to fill a batch; kafka-go defaults to one second.
	batchTimeout = 10 * time.Millisecond

	// forwardTimeout bounds one write once it is detached from the request.
	forwardTimeout = 5 * time.Second
)

func NewKafkaForwarder(cfg config.KafkaConfig) *KafkaForwarder {
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		BatchTimeout: batchTimeout,
		Async:        false,
	}
	return &KafkaForwarder{
		writer: &kafkaGoWriter{w: w},
		topic:  cfg.Topic,
	}
}

// Forward implements eventhandlers.Forwarder. The write ignores cancellation
// of ctx and is bounded by forwardTimeout instead.
func (f *KafkaForwarder) Forward(ctx context.Context, event events.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to serialize event: %w", err)
	}

	msg := writerMessage{
		Topic: f.topic,
		Key:   []byte(event.AggregateID()),
		Value: data,
		Headers: map[string]string{
			"event_type": event.EventType().String(),
			"event_id":   event.EventID(),
		},
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), forwardTimeout)
	defer cancel()

	if err := f.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish event to kafka: %w", err)
	}
	return nil
}

func (f *KafkaForwarder) Close() error {
	return f.writer.Close()
}
