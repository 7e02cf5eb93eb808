package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/muhammadheryan/food-storefront/utils/logger"
	"github.com/muhammadheryan/food-storefront/utils/metrics"
	"go.uber.org/zap"
)

type ServiceParams struct {
	Logger   *zap.Logger
	Registry *Registry
	Lock     Lock
	Metrics  *metrics.Metrics
	Interval time.Duration
}

// Service runs every registered job once at start and then on each tick.
type Service struct {
	log      *zap.Logger
	registry *Registry
	lock     Lock
	metrics  *metrics.Metrics
	interval time.Duration
}

func NewService(params ServiceParams) (*Service, error) {
	if params.Lock == nil {
		return nil, errors.New("lock required")
	}
	log := params.Logger
	if log == nil {
		log = logger.Get()
	}
	registry := params.Registry
	if registry == nil {
		registry = NewRegistry()
	}
	interval := params.Interval
	if interval <= 0 {
		interval = time.Hour
	}
	return &Service{
		log:      log.Named("scheduler"),
		registry: registry,
		lock:     params.Lock,
		metrics:  params.Metrics,
		interval: interval,
	}, nil
}

// Run blocks until ctx is cancelled.
func (s *Service) Run(ctx context.Context) error {
	s.runCycle(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runCycle(ctx)
		}
	}
}

func (s *Service) runCycle(ctx context.Context) {
	locked, err := s.lock.Acquire(ctx)
	if err != nil {
		s.log.Error("lock acquire", zap.String("error", err.Error()))
		return
	}
	if !locked {
		s.log.Info("another instance holds the scheduler lock, skipping cycle")
		return
	}
	defer func() {
		if err := s.lock.Release(context.WithoutCancel(ctx)); err != nil {
			s.log.Error("lock release", zap.String("error", err.Error()))
		}
	}()

	for _, job := range s.registry.Jobs() {
		s.runJob(ctx, job)
	}
}

func (s *Service) runJob(ctx context.Context, job Job) {
	start := time.Now()
	err := job.Run(ctx)
	duration := time.Since(start)
	s.metrics.ObserveJob(job.Name(), duration, err)

	fields := []zap.Field{zap.String("job", job.Name()), zap.Int64("duration_ms", duration.Milliseconds())}
	if err != nil {
		s.log.Error("job failed", append(fields, zap.String("error", err.Error()))...)
		return
	}
	s.log.Info("job completed", fields...)
}
