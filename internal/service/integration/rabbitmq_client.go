package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"

	"github.com/placementcell/placement-dashboard/internal/models"
)

type RabbitMQClient interface {
	PublishEntityCreated(ctx context.Context, event *models.EntityCreatedEvent) error
	Close() error
}

type rabbitMQClient struct {
	conn      *amqp091.Connection
	channel   *amqp091.Channel
	exchange  string
	queueName string
	logger    zerolog.Logger
}

// NewRabbitMQClient declares a durable topic exchange and binds queueName to it with
// bindingKey. Events are published with "<entity>.created" routing keys.
func NewRabbitMQClient(url, exchange, bindingKey, queueName string, logger zerolog.Logger) (RabbitMQClient, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(exchange, amqp091.ExchangeTopic, true, false, false, false, nil)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	queue, err := channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	err = channel.QueueBind(queue.Name, bindingKey, exchange, false, nil)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to bind queue: %w", err)
	}

	logger.Info().
		Str("exchange", exchange).
		Str("queue", queue.Name).
		Str("binding_key", bindingKey).
		Msg("Connected to RabbitMQ")

	return &rabbitMQClient{
		conn:      conn,
		channel:   channel,
		exchange:  exchange,
		queueName: queue.Name,
		logger:    logger,
	}, nil
}

func (c *rabbitMQClient) PublishEntityCreated(ctx context.Context, event *models.EntityCreatedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	publishCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = c.channel.PublishWithContext(
		publishCtx,
		c.exchange,
		event.RoutingKey(),
		false,
		false,
		amqp091.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp091.Persistent,
			Timestamp:    event.CreatedAt,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	c.logger.Debug().
		Str("entity", event.Entity).
		Int64("id", event.ID).
		Msg("Entity created event published")

	return nil
}

func (c *rabbitMQClient) Close() error {
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			c.logger.Error().Err(err).Msg("Failed to close RabbitMQ channel")
		}
	}

	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			c.logger.Error().Err(err).Msg("Failed to close RabbitMQ connection")
		}
	}

	return nil
}
