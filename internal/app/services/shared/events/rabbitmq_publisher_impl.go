package events

import (
	"context"
	"medipos-service/internal/app/contracts"
	"medipos-service/internal/pkg/constvars"
	"medipos-service/internal/pkg/exceptions"
	"medipos-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type envelope struct {
	EventType  string      `json:"event_type"`
	OccurredAt time.Time   `json:"occurred_at"`
	RequestID  string      `json:"request_id,omitempty"`
	Payload    interface{} `json:"payload"`
}

type rabbitMQPublisher struct {
	conn      *amqp091.Connection
	queueName string
	Log       *zap.Logger
}

// NewRabbitMQPublisher declares the event queue once and publishes
// workflow events to it. Consumers (receipt printer, audit trail) are
// separate processes.
func NewRabbitMQPublisher(conn *amqp091.Connection, queueName string, logger *zap.Logger) (contracts.EventPublisher, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, exceptions.ErrRabbitMQPublish(err)
	}
	defer channel.Close()

	_, err = channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		return nil, exceptions.ErrRabbitMQPublish(err)
	}

	return &rabbitMQPublisher{
		conn:      conn,
		queueName: queueName,
		Log:       logger,
	}, nil
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, eventType string, payload interface{}) error {
	body, err := json.Marshal(envelope{
		EventType:  eventType,
		OccurredAt: time.Now(),
		RequestID:  utils.GetRequestID(ctx),
		Payload:    payload,
	})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	channel, err := p.conn.Channel()
	if err != nil {
		return exceptions.ErrRabbitMQPublish(err)
	}
	defer channel.Close()

	err = channel.PublishWithContext(ctx, "", p.queueName, false, false, amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		DeliveryMode: amqp091.Persistent,
		Body:         body,
	})
	if err != nil {
		p.Log.Error("rabbitMQPublisher.Publish failed",
			zap.String(constvars.LoggingQueueKey, p.queueName),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublish(err)
	}
	return nil
}
