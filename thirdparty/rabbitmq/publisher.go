package rabbitmq

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/muhammadheryan/food-storefront/model"
	"github.com/rabbitmq/amqp091-go"
)

const (
	orderEventsExchange    = "order_events_exchange"
	orderNotificationQueue = "order_notification_queue"
	orderNotificationKey   = "order_notification"
)

type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	// amqp channels are not safe for concurrent publishing
	mu sync.Mutex
}

func NewPublisher(url string) (*Publisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if err := declareTopology(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &Publisher{conn: conn, channel: channel}, nil
}

func declareTopology(channel *amqp091.Channel) error {
	err := channel.ExchangeDeclare(
		orderEventsExchange, // name
		"direct",            // type
		true,                // durable
		false,               // auto-delete
		false,               // internal
		false,               // no-wait
		nil,                 // arguments
	)
	if err != nil {
		return err
	}

	_, err = channel.QueueDeclare(
		orderNotificationQueue, // name
		true,                   // durable
		false,                  // auto-delete
		false,                  // exclusive
		false,                  // no-wait
		nil,                    // arguments
	)
	if err != nil {
		return err
	}

	return channel.QueueBind(
		orderNotificationQueue, // queue name
		orderNotificationKey,   // routing key
		orderEventsExchange,    // exchange
		false,                  // no-wait
		nil,                    // arguments
	)
}

func (p *Publisher) PublishOrderEvent(ctx context.Context, msg *model.OrderNotification) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.channel.PublishWithContext(ctx,
		orderEventsExchange,  // exchange
		orderNotificationKey, // routing key
		false,                // mandatory
		false,                // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Type:         string(msg.Event),
			Body:         body,
		},
	)
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
