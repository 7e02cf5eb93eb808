package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	redismocks "github.com/muhammadheryan/food-storefront/mocks/repository/redis"
	"github.com/muhammadheryan/food-storefront/model"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeLock struct {
	mu         sync.Mutex
	acquireOK  bool
	acquireErr error
	acquired   int
	released   int
}

func (l *fakeLock) Acquire(context.Context) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.acquireErr != nil {
		return false, l.acquireErr
	}
	if l.acquireOK {
		l.acquired++
	}
	return l.acquireOK, nil
}

func (l *fakeLock) Release(context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.released++
	return nil
}

type testJob struct {
	name string
	err  error
	runs chan struct{}
}

func (j *testJob) Name() string { return j.name }

func (j *testJob) Run(context.Context) error {
	j.runs <- struct{}{}
	return j.err
}

func TestNewServiceRequiresLock(t *testing.T) {
	_, err := NewService(ServiceParams{Logger: zaptest.NewLogger(t)})
	require.Error(t, err)
}

func TestService_RunsJobsImmediatelyUnderLock(t *testing.T) {
	lock := &fakeLock{acquireOK: true}
	failing := &testJob{name: "failing", err: errors.New("boom"), runs: make(chan struct{}, 4)}
	ok := &testJob{name: "ok", runs: make(chan struct{}, 4)}

	svc, err := NewService(ServiceParams{
		Logger:   zaptest.NewLogger(t),
		Registry: NewRegistry(failing, nil, ok),
		Lock:     lock,
		Interval: time.Hour,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- svc.Run(ctx) }()

	// a failing job does not stop the ones after it
	for _, j := range []*testJob{failing, ok} {
		select {
		case <-j.runs:
		case <-time.After(2 * time.Second):
			t.Fatalf("job %s did not run", j.name)
		}
	}
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	lock.mu.Lock()
	defer lock.mu.Unlock()
	assert.Equal(t, 1, lock.acquired)
	assert.Equal(t, 1, lock.released)
}

func TestService_SkipsCycleWhenLockHeld(t *testing.T) {
	tests := []struct {
		name string
		lock *fakeLock
	}{
		{name: "held elsewhere", lock: &fakeLock{acquireOK: false}},
		{name: "acquire error", lock: &fakeLock{acquireErr: errors.New("redis down")}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			job := &testJob{name: "cleanup", runs: make(chan struct{}, 1)}
			svc, err := NewService(ServiceParams{Logger: zaptest.NewLogger(t), Registry: NewRegistry(job), Lock: tt.lock})
			require.NoError(t, err)

			svc.runCycle(context.Background())

			assert.Empty(t, job.runs)
			assert.Equal(t, 0, tt.lock.released)
		})
	}
}

func TestRedisLock(t *testing.T) {
	ctx := context.Background()

	t.Run("release deletes only our own key", func(t *testing.T) {
		store := redismocks.NewRedisRepository(t)
		var owner string
		store.On("SetNX", mock.Anything, "cron:lock", mock.AnythingOfType("string"), time.Hour).
			Run(func(args mock.Arguments) { owner = args.String(2) }).
			Return(true, nil).
			Once()

		lock, err := NewRedisLock(store, "cron:lock", time.Hour)
		require.NoError(t, err)
		ok, err := lock.Acquire(ctx)
		require.NoError(t, err)
		require.True(t, ok)

		store.On("Get", mock.Anything, "cron:lock").Return(owner, nil).Once()
		store.On("Delete", mock.Anything, "cron:lock").Return(nil).Once()
		require.NoError(t, lock.Release(ctx))

		// second release is a no-op
		require.NoError(t, lock.Release(ctx))
	})

	t.Run("expired and taken over by another owner", func(t *testing.T) {
		store := redismocks.NewRedisRepository(t)
		store.On("SetNX", mock.Anything, "cron:lock", mock.Anything, defaultLockTTL).Return(true, nil).Once()
		store.On("Get", mock.Anything, "cron:lock").Return("someone-else", nil).Once()

		lock, err := NewRedisLock(store, "cron:lock", 0)
		require.NoError(t, err)
		_, err = lock.Acquire(ctx)
		require.NoError(t, err)
		require.NoError(t, lock.Release(ctx))
	})

	t.Run("key already gone", func(t *testing.T) {
		store := redismocks.NewRedisRepository(t)
		store.On("SetNX", mock.Anything, "cron:lock", mock.Anything, mock.Anything).Return(true, nil).Once()
		store.On("Get", mock.Anything, "cron:lock").Return("", goredis.Nil).Once()

		lock, err := NewRedisLock(store, "cron:lock", time.Minute)
		require.NoError(t, err)
		_, err = lock.Acquire(ctx)
		require.NoError(t, err)
		require.NoError(t, lock.Release(ctx))
	})

	t.Run("not acquired", func(t *testing.T) {
		store := redismocks.NewRedisRepository(t)
		store.On("SetNX", mock.Anything, "cron:lock", mock.Anything, mock.Anything).Return(false, nil).Once()

		lock, err := NewRedisLock(store, "cron:lock", time.Minute)
		require.NoError(t, err)
		ok, err := lock.Acquire(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
		require.NoError(t, lock.Release(ctx))
	})

	t.Run("invalid arguments", func(t *testing.T) {
		_, err := NewRedisLock(nil, "k", time.Minute)
		assert.Error(t, err)
		_, err = NewRedisLock(redismocks.NewRedisRepository(t), "", time.Minute)
		assert.Error(t, err)
	})
}

type cleanerFunc func(ctx context.Context) (*model.CleanupResponse, error)

func (f cleanerFunc) CleanupCompleted(ctx context.Context) (*model.CleanupResponse, error) {
	return f(ctx)
}

func TestOrderCleanupJob(t *testing.T) {
	calls := 0
	job := NewOrderCleanupJob(cleanerFunc(func(context.Context) (*model.CleanupResponse, error) {
		calls++
		return &model.CleanupResponse{DeletedCount: 1}, nil
	}))
	require.NoError(t, job.Run(context.Background()))
	assert.Equal(t, 1, calls)
	assert.NotEmpty(t, job.Name())

	failing := NewOrderCleanupJob(cleanerFunc(func(context.Context) (*model.CleanupResponse, error) {
		return nil, errors.New("db down")
	}))
	assert.Error(t, failing.Run(context.Background()))
}
