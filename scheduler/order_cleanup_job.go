package scheduler

import (
	"context"

	"github.com/muhammadheryan/food-storefront/constant"
	"github.com/muhammadheryan/food-storefront/model"
)

type orderCleaner interface {
	CleanupCompleted(ctx context.Context) (*model.CleanupResponse, error)
}

// OrderCleanupJob purges completed orders that are past the retention window.
type OrderCleanupJob struct {
	orders orderCleaner
}

func NewOrderCleanupJob(orders orderCleaner) *OrderCleanupJob {
	return &OrderCleanupJob{orders: orders}
}

func (j *OrderCleanupJob) Name() string { return constant.OrderCleanupJobName }

func (j *OrderCleanupJob) Run(ctx context.Context) error {
	_, err := j.orders.CleanupCompleted(ctx)
	return err
}
