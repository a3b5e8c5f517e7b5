package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/johnquangdev/interview-practice/internal/domain/entities"
)

// Publisher publishes session events and releases its connection on Close
type Publisher interface {
	Publish(ctx context.Context, event entities.SessionEvent) error
	Close() error
}

// AMQPPublisher publishes session events to a durable topic exchange.
// The routing key is the event type, e.g. session.completed.
type AMQPPublisher struct {
	mu       sync.Mutex
	conn     *amqp091.Connection
	channel  *amqp091.Channel
	exchange string
	logger   *zap.Logger
}

// NewAMQPPublisher dials the broker and declares the exchange
func NewAMQPPublisher(url, exchange string, logger *zap.Logger) (*AMQPPublisher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	logger.Info("event publisher initialized", zap.String("exchange", exchange))

	return &AMQPPublisher{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
		logger:   logger,
	}, nil
}

// Publish sends one event as a persistent JSON message
func (p *AMQPPublisher) Publish(ctx context.Context, event entities.SessionEvent) error {
	routingKey, msg, err := buildMessage(event)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.channel.PublishWithContext(ctx,
		p.exchange, // exchange
		routingKey, // routing key
		false,      // mandatory
		false,      // immediate
		msg,
	); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	p.logger.Debug("published event",
		zap.String("event", routingKey),
		zap.String("session_id", event.SessionID),
	)
	return nil
}

// Close closes the channel and the connection
func (p *AMQPPublisher) Close() error {
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			p.logger.Warn("error closing RabbitMQ channel", zap.Error(err))
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			return fmt.Errorf("error closing RabbitMQ connection: %w", err)
		}
	}
	return nil
}

func buildMessage(event entities.SessionEvent) (string, amqp091.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return "", amqp091.Publishing{}, fmt.Errorf("failed to marshal event: %w", err)
	}

	return string(event.Type), amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Timestamp:    event.OccurredAt,
		MessageId:    fmt.Sprintf("%s:%s:%d", event.SessionID, event.Type, event.OccurredAt.UnixNano()),
		Body:         body,
		Headers: amqp091.Table{
			"event_type": string(event.Type),
			"session_id": event.SessionID,
			"user_id":    event.UserID,
		},
	}, nil
}

// NoopPublisher drops every event. It is used when the broker is disabled.
type NoopPublisher struct{}

// Publish does nothing
func (NoopPublisher) Publish(context.Context, entities.SessionEvent) error { return nil }

// Close does nothing
func (NoopPublisher) Close() error { return nil }
