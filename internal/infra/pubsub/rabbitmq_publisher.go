package pubsub

import (
	"context"
	"log/slog"

	"loyalty/internal/domain/service"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

// amqpChannel is the subset of *amqp.Channel used by the publisher
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// rabbitMQPublisher implements EventPublisher on a durable RabbitMQ queue
type rabbitMQPublisher struct {
	conn    *amqp.Connection
	channel amqpChannel
	queue   string
	logger  *slog.Logger
}

// NewRabbitMQPublisher dials the broker and declares the durable queue
func NewRabbitMQPublisher(url, queue string, logger *slog.Logger) (service.EventPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to RabbitMQ")
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()

		return nil, errors.Wrap(err, "failed to open RabbitMQ channel")
	}

	_, err = ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()

		return nil, errors.Wrapf(err, "failed to declare queue %s", queue)
	}

	logger.Info("RabbitMQ publisher initialized", slog.String("queue", queue))

	publisher := newRabbitMQPublisher(ch, queue, logger)
	publisher.conn = conn

	return publisher, nil
}

func newRabbitMQPublisher(channel amqpChannel, queue string, logger *slog.Logger) *rabbitMQPublisher {
	return &rabbitMQPublisher{channel: channel, queue: queue, logger: logger}
}

// PublishLedgerEvent publishes a persistent message on the default exchange
func (p *rabbitMQPublisher) PublishLedgerEvent(ctx context.Context, event *service.LedgerEvent) error {
	data, attributes, err := encodeLedgerEvent(event)
	if err != nil {
		return err
	}

	headers := amqp.Table{}
	for key, value := range attributes {
		headers[key] = value
	}

	err = p.channel.PublishWithContext(ctx,
		"",      // exchange
		p.queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    event.ID,
			Timestamp:    event.OccurredAt,
			Headers:      headers,
			Body:         data,
		})
	if err != nil {
		return errors.Wrapf(err, "failed to publish ledger event %s", event.ID)
	}

	p.logger.Debug("[RabbitMQ] Ledger event published",
		slog.String("event_id", event.ID),
		slog.String("kind", event.Kind),
	)

	return nil
}

// Close closes the channel and the connection
func (p *rabbitMQPublisher) Close() error {
	chErr := p.channel.Close()
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			return errors.WithStack(err)
		}
	}

	return errors.WithStack(chErr)
}
