package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

type amqpPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// AMQPSink publishes events as persistent JSON messages to a durable queue
// on the default exchange.
type AMQPSink struct {
	mu    sync.Mutex
	conn  *amqp.Connection
	ch    amqpPublisher
	queue string
}

func NewAMQPSink(url, queue string) (*AMQPSink, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("amqp channel: %w", err)
	}

	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("amqp declare %s: %w", queue, err)
	}

	return &AMQPSink{conn: conn, ch: ch, queue: queue}, nil
}

func (s *AMQPSink) Write(ctx context.Context, ev Event) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	// amqp channels are not safe for concurrent publishing.
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ch.PublishWithContext(ctx, "", s.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    ev.At,
		Type:         ev.Action,
		Body:         body,
	})
}

func (s *AMQPSink) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}
