package messaging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

var (
	ErrPublishNacked = errors.New("broker rejected the message")
	errNotConfirming = errors.New("channel is not in confirm mode")
)

// RabbitPublisher publishes outbox jobs to a durable topic exchange, using the
// job topic as routing key. A publish succeeds only once the broker has
// confirmed the message, so the relay never marks an unconfirmed job sent.
type RabbitPublisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
}

func NewRabbitPublisher(url, exchange string) (*RabbitPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to broker: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %q: %w", exchange, err)
	}
	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to enable publisher confirms: %w", err)
	}
	return &RabbitPublisher{conn: conn, ch: ch, exchange: exchange}, nil
}

// Publish is safe for concurrent use; amqp channels are not. It blocks until
// the broker acks or nacks the message or ctx is done.
func (r *RabbitPublisher) Publish(ctx context.Context, topic string, body []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	dc, err := r.ch.PublishWithDeferredConfirmWithContext(ctx, r.exchange, topic, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish %q: %w", topic, err)
	}
	if dc == nil {
		return errNotConfirming
	}
	return awaitConfirm(ctx, topic, dc)
}

type confirmation interface {
	WaitContext(ctx context.Context) (bool, error)
}

func awaitConfirm(ctx context.Context, topic string, c confirmation) error {
	acked, err := c.WaitContext(ctx)
	if err != nil {
		return fmt.Errorf("no confirm for %q: %w", topic, err)
	}
	if !acked {
		return fmt.Errorf("%w: %s", ErrPublishNacked, topic)
	}
	return nil
}

func (r *RabbitPublisher) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var firstErr error
	if r.ch != nil {
		if err := r.ch.Close(); err != nil {
			firstErr = err
		}
	}
	if r.conn != nil {
		if err := r.conn.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// LogPublisher stands in for the broker when none is configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, topic string, body []byte) error {
	p.logger.InfoContext(ctx, "notification published",
		slog.String("topic", topic),
		slog.String("payload", string(body)),
	)
	return nil
}

func (p *LogPublisher) Close() error { return nil }
