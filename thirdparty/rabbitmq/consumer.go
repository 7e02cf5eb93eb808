package rabbitmq

import (
	"context"
	"encoding/json"

	"github.com/muhammadheryan/food-storefront/model"
	"github.com/muhammadheryan/food-storefront/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Handler processes one order notification. A returned error requeues the message
// unless it was already redelivered once.
type Handler func(ctx context.Context, msg *model.OrderNotification) error

type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	handler Handler
}

func NewConsumer(url string, handler Handler) (*Consumer, error) {
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

	return &Consumer{
		conn:    conn,
		channel: channel,
		handler: handler,
	}, nil
}

func (c *Consumer) Start(ctx context.Context) error {
	// Set QoS to 1 - process one message at a time
	err := c.channel.Qos(1, 0, false)
	if err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		orderNotificationQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				c.handle(ctx, msg)
			}
		}
	}()

	return nil
}

func (c *Consumer) handle(ctx context.Context, msg amqp091.Delivery) {
	var notification model.OrderNotification
	if err := json.Unmarshal(msg.Body, &notification); err != nil {
		logger.Error("[Consumer] unmarshal order notification", zap.String("error", err.Error()))
		_ = msg.Ack(false)
		return
	}

	if err := c.handler(ctx, &notification); err != nil {
		logger.Error("[Consumer] handle order notification",
			zap.String("order_id", notification.OrderID),
			zap.String("event", string(notification.Event)),
			zap.Bool("redelivered", msg.Redelivered),
			zap.String("error", err.Error()),
		)
		// notifications are best effort: retry once, then drop
		_ = msg.Nack(false, !msg.Redelivered)
		return
	}

	_ = msg.Ack(false)
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
