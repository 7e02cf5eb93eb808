package notification

import (
	"context"

	"github.com/muhammadheryan/food-storefront/constant"
	"github.com/muhammadheryan/food-storefront/model"
	"github.com/muhammadheryan/food-storefront/thirdparty/mailer"
	"github.com/muhammadheryan/food-storefront/utils/errors"
	"github.com/muhammadheryan/food-storefront/utils/logger"
	"go.uber.org/zap"
)

type NotificationApp interface {
	// HandleOrderEvent emails the customer about an order event. A returned error asks
	// the consumer to redeliver.
	HandleOrderEvent(ctx context.Context, n *model.OrderNotification) error
	MailHealth(ctx context.Context) error
}

type notificationAppImpl struct {
	mailer mailer.Mailer
}

func NewNotificationApp(m mailer.Mailer) NotificationApp {
	return &notificationAppImpl{mailer: m}
}

func (s *notificationAppImpl) HandleOrderEvent(ctx context.Context, n *model.OrderNotification) error {
	if n == nil || n.CustomerEmail == "" {
		logger.Warn("[HandleOrderEvent] notification without recipient dropped")
		return nil
	}

	subject, body, err := mailer.OrderEmail(n)
	if err != nil {
		// unknown event or bad template, a retry cannot fix it
		logger.Error("[HandleOrderEvent] err mailer.OrderEmail", zap.String("event", string(n.Event)), zap.String("error", err.Error()))
		return nil
	}

	if err := s.mailer.Send(ctx, n.CustomerEmail, subject, body); err != nil {
		logger.Error("[HandleOrderEvent] err mailer.Send",
			zap.String("order_id", n.OrderID),
			zap.String("event", string(n.Event)),
			zap.String("error", err.Error()),
		)
		return err
	}

	logger.Info("[HandleOrderEvent] notification sent", zap.String("order_id", n.OrderID), zap.String("event", string(n.Event)))
	return nil
}

func (s *notificationAppImpl) MailHealth(ctx context.Context) error {
	if err := s.mailer.Check(ctx); err != nil {
		logger.Error("[MailHealth] err mailer.Check", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrEmailDelivery)
	}
	return nil
}
