package checkout

import (
	"context"
	"time"

	"github.com/muhammadheryan/food-storefront/model"
	redisrepo "github.com/muhammadheryan/food-storefront/repository/redis"
	goredis "github.com/redis/go-redis/v9"
)

type CheckoutRepository interface {
	Create(ctx context.Context, session *model.CheckoutSession, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (*model.CheckoutSession, error)
	// Update applies fn atomically to an existing session.
	Update(ctx context.Context, sessionID string, ttl time.Duration, fn func(session *model.CheckoutSession, exists bool) error) (*model.CheckoutSession, error)
}

type Redis struct {
	client goredis.UniversalClient
}

func NewCheckoutRepository(client goredis.UniversalClient) CheckoutRepository {
	return &Redis{client: client}
}

func key(sessionID string) string {
	return "checkout:" + sessionID
}

func (r *Redis) Create(ctx context.Context, session *model.CheckoutSession, ttl time.Duration) error {
	return redisrepo.SetJSON(ctx, r.client, key(session.ID), session, ttl)
}

func (r *Redis) Get(ctx context.Context, sessionID string) (*model.CheckoutSession, error) {
	var s model.CheckoutSession
	found, err := redisrepo.GetJSON(ctx, r.client, key(sessionID), &s)
	if err != nil || !found {
		return nil, err
	}
	return &s, nil
}

func (r *Redis) Update(ctx context.Context, sessionID string, ttl time.Duration, fn func(session *model.CheckoutSession, exists bool) error) (*model.CheckoutSession, error) {
	return redisrepo.UpdateJSON(ctx, r.client, key(sessionID), ttl, fn)
}
