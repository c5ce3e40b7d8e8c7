package webhook

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

var _ Publisher = (*RabbitPublisher)(nil)

const (
	exchangeName = "caregiving.events"
	queueName    = "geofence_alerts"
)

// RabbitPublisher публикует события в fanout-обменник RabbitMQ
type RabbitPublisher struct {
	ch *amqp.Channel
}

// NewRabbitPublisher объявляет обменник и очередь и возвращает издателя
func NewRabbitPublisher(conn *amqp.Connection) (*RabbitPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchangeName, "fanout", true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	if err := ch.QueueBind(queueName, "", exchangeName, false, nil); err != nil {
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	return &RabbitPublisher{ch: ch}, nil
}

func (p *RabbitPublisher) Publish(ctx context.Context, event AlertEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal alert event: %w", err)
	}

	return p.ch.PublishWithContext(ctx, exchangeName, "", false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
}

// Close закрывает канал
func (p *RabbitPublisher) Close() error {
	return p.ch.Close()
}
