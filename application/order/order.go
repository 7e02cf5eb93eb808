package order

import (
	"context"
	"time"

	"github.com/muhammadheryan/food-storefront/cmd/config"
	"github.com/muhammadheryan/food-storefront/constant"
	"github.com/muhammadheryan/food-storefront/model"
	orderrepo "github.com/muhammadheryan/food-storefront/repository/order"
	txrepo "github.com/muhammadheryan/food-storefront/repository/tx"
	"github.com/muhammadheryan/food-storefront/utils/errors"
	"github.com/muhammadheryan/food-storefront/utils/logger"
	"github.com/muhammadheryan/food-storefront/utils/metrics"
	"github.com/muhammadheryan/food-storefront/utils/otpcode"
	"go.uber.org/zap"
)

// EventPublisher announces order events to customers. It may be nil.
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, msg *model.OrderNotification) error
}

type OrderApp interface {
	CreateOrder(ctx context.Context, req *model.CreateOrderRequest) (*model.Order, error)
	ListOrders(ctx context.Context, filter *model.OrderFilter) ([]model.Order, error)
	GetOrder(ctx context.Context, orderID string) (*model.Order, error)
	GetOrderStatus(ctx context.Context, orderID string) (*model.OrderStatusView, error)
	DeleteOrder(ctx context.Context, orderID string) error
	MarkReady(ctx context.Context, orderID string) (*model.Order, error)
	CompleteOrder(ctx context.Context, orderID, otp string) (*model.Order, error)
	ForceComplete(ctx context.Context, orderID string) (*model.Order, error)
	CleanupCompleted(ctx context.Context) (*model.CleanupResponse, error)
}

type orderAppImpl struct {
	config    *config.Config
	txRepo    txrepo.TxRepository
	orderRepo orderrepo.OrderRepository
	publisher EventPublisher
	metrics   *metrics.Metrics
	now       func() time.Time
	gen       func() (string, error)
}

func NewOrderApp(config *config.Config, txRepo txrepo.TxRepository, orderRepo orderrepo.OrderRepository, publisher EventPublisher, mt *metrics.Metrics) OrderApp {
	return &orderAppImpl{
		config:    config,
		txRepo:    txRepo,
		orderRepo: orderRepo,
		publisher: publisher,
		metrics:   mt,
		now:       time.Now,
		gen:       otpcode.Generate,
	}
}

func (s *orderAppImpl) CreateOrder(ctx context.Context, req *model.CreateOrderRequest) (*model.Order, error) {
	if len(req.Items) == 0 {
		return nil, errors.SetCustomError(constant.ErrEmptyCart)
	}
	for _, item := range req.Items {
		if !item.Consistent() {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
	}
	if req.CustomerInfo.Name == "" || req.CustomerInfo.Email == "" {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	total := model.SumLines(req.Items)
	if !total.IsPositive() {
		return nil, errors.SetCustomError(constant.ErrInvalidAmount)
	}

	pickupOTP, err := s.gen()
	if err != nil {
		logger.Error("[CreateOrder] generate pickup otp", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateOrder] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	seq, err := s.orderRepo.NextSequenceTx(ctx, tx)
	if err != nil {
		logger.Error("[CreateOrder] next sequence", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	var paymentID *string
	if req.PaymentID != "" {
		p := req.PaymentID
		paymentID = &p
	}
	insert := &model.InsertOrderTxItem{
		OrderID:      FormatOrderID(s.config.Order.IDPrefix, s.config.Order.IDPadding, seq),
		TotalAmount:  total,
		CustomerInfo: req.CustomerInfo,
		PaymentID:    paymentID,
		PickupOTP:    pickupOTP,
		Status:       constant.OrderStatusPending,
	}
	id, err := s.orderRepo.InsertOrderTx(ctx, tx, insert)
	if err != nil {
		logger.Error("[CreateOrder] insert order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.orderRepo.InsertOrderItemsTx(ctx, tx, id, req.Items); err != nil {
		logger.Error("[CreateOrder] insert items", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateOrder] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	now := s.now()
	order := &model.Order{
		ID:           id,
		OrderID:      insert.OrderID,
		Items:        req.Items,
		TotalAmount:  total,
		CustomerInfo: req.CustomerInfo,
		PaymentID:    paymentID,
		PickupOTP:    pickupOTP,
		Status:       constant.OrderStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.metrics.IncOrderTransition(string(order.Status))
	s.publish(ctx, constant.OrderEventPlaced, order)

	return order, nil
}

func (s *orderAppImpl) ListOrders(ctx context.Context, filter *model.OrderFilter) ([]model.Order, error) {
	if filter != nil && filter.Status != "" && !filter.Status.Valid() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	orders, err := s.orderRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListOrders] err orderRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return orders, nil
}

func (s *orderAppImpl) GetOrder(ctx context.Context, orderID string) (*model.Order, error) {
	order, err := s.orderRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		logger.Error("[GetOrder] err orderRepo.GetByOrderID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return order, nil
}

func (s *orderAppImpl) GetOrderStatus(ctx context.Context, orderID string) (*model.OrderStatusView, error) {
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return &model.OrderStatusView{
		OrderID:     order.OrderID,
		Status:      order.Status,
		ReadyAt:     order.ReadyAt,
		CompletedAt: order.CompletedAt,
		CreatedAt:   order.CreatedAt,
	}, nil
}

func (s *orderAppImpl) DeleteOrder(ctx context.Context, orderID string) error {
	deleted, err := s.orderRepo.Delete(ctx, orderID)
	if err != nil {
		logger.Error("[DeleteOrder] err orderRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !deleted {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}

func (s *orderAppImpl) MarkReady(ctx context.Context, orderID string) (*model.Order, error) {
	return s.transition(ctx, "MarkReady", orderID, constant.OrderEventReady, MarkReady)
}

func (s *orderAppImpl) CompleteOrder(ctx context.Context, orderID, otp string) (*model.Order, error) {
	return s.transition(ctx, "CompleteOrder", orderID, constant.OrderEventCompleted, func(o *model.Order, now time.Time) error {
		return Complete(o, otp, now)
	})
}

func (s *orderAppImpl) ForceComplete(ctx context.Context, orderID string) (*model.Order, error) {
	return s.transition(ctx, "ForceComplete", orderID, constant.OrderEventCompleted, ForceComplete)
}

// transition locks the order row, applies rule and persists the result in one tx.
func (s *orderAppImpl) transition(ctx context.Context, op, orderID string, event constant.OrderEvent, rule func(o *model.Order, now time.Time) error) (*model.Order, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("["+op+"] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	order, err := s.orderRepo.GetOrderForUpdateTx(ctx, tx, orderID)
	if err != nil {
		logger.Error("["+op+"] get order", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if order == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if err := rule(order, s.now()); err != nil {
		return nil, err
	}

	if err := s.orderRepo.UpdateOrderStatusTx(ctx, tx, &model.OrderStatusUpdate{
		ID:                  order.ID,
		Status:              order.Status,
		ReadyAt:             order.ReadyAt,
		CompletedAt:         order.CompletedAt,
		ForceCompleteReason: order.ForceCompleteReason,
	}); err != nil {
		logger.Error("["+op+"] update status", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("["+op+"] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	logger.Info("["+op+"] order transitioned", zap.String("order_id", order.OrderID), zap.String("status", string(order.Status)))
	s.metrics.IncOrderTransition(string(order.Status))
	s.publish(ctx, event, order)
	return order, nil
}

func (s *orderAppImpl) CleanupCompleted(ctx context.Context) (*model.CleanupResponse, error) {
	cutoff := RetentionCutoff(s.now(), s.config.Order.RetentionWindow)
	n, err := s.orderRepo.DeleteCompletedBefore(ctx, cutoff)
	if err != nil {
		logger.Error("[CleanupCompleted] err orderRepo.DeleteCompletedBefore", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	s.metrics.AddOrdersPurged(n)
	logger.Info("[CleanupCompleted] purged completed orders", zap.Int64("deleted", n), zap.Time("cutoff", cutoff))
	return &model.CleanupResponse{DeletedCount: n, Cutoff: cutoff}, nil
}

// publish is best effort; a broker failure never affects the order.
func (s *orderAppImpl) publish(ctx context.Context, event constant.OrderEvent, order *model.Order) {
	if s.publisher == nil {
		return
	}
	msg := &model.OrderNotification{
		Event:         event,
		OrderID:       order.OrderID,
		CustomerName:  order.CustomerInfo.Name,
		CustomerEmail: order.CustomerInfo.Email,
		TotalAmount:   order.TotalAmount,
		OccurredAt:    s.now(),
	}
	if event != constant.OrderEventCompleted {
		msg.PickupOTP = order.PickupOTP
	}
	if err := s.publisher.PublishOrderEvent(ctx, msg); err != nil {
		logger.Error("[publish] publish order event", zap.String("order_id", order.OrderID), zap.String("error", err.Error()))
	}
}
