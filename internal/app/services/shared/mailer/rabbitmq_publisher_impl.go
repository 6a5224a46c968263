package mailer

import (
	"clinicdesk-service/internal/app/contracts"
	"clinicdesk-service/internal/pkg/exceptions"
	"context"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

type rabbitMQPublisher struct {
	connection *amqp091.Connection
	queueName  string
}

func NewRabbitMQPublisher(connection *amqp091.Connection, queueName string) contracts.MailPublisher {
	return &rabbitMQPublisher{
		connection: connection,
		queueName:  queueName,
	}
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, message contracts.MailMessage) error {
	channel, err := p.connection.Channel()
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}
	defer channel.Close()

	_, err = channel.QueueDeclare(p.queueName, true, false, false, false, nil)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}

	body, err := json.Marshal(message)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = channel.PublishWithContext(ctx, "", p.queueName, false, false, amqp091.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}
	return nil
}
