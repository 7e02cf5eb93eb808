package cart

import (
	"context"
	"time"

	"github.com/muhammadheryan/food-storefront/model"
	redisrepo "github.com/muhammadheryan/food-storefront/repository/redis"
	goredis "github.com/redis/go-redis/v9"
)

type CartRepository interface {
	Get(ctx context.Context, cartID string) (*model.Cart, error)
	Save(ctx context.Context, cart *model.Cart, ttl time.Duration) error
	// Update applies fn atomically; exists is false when the cart is not stored yet.
	Update(ctx context.Context, cartID string, ttl time.Duration, fn func(cart *model.Cart, exists bool) error) (*model.Cart, error)
	Delete(ctx context.Context, cartID string) error
}

type Redis struct {
	client goredis.UniversalClient
}

func NewCartRepository(client goredis.UniversalClient) CartRepository {
	return &Redis{client: client}
}

func key(cartID string) string {
	return "cart:" + cartID
}

func (r *Redis) Get(ctx context.Context, cartID string) (*model.Cart, error) {
	var c model.Cart
	found, err := redisrepo.GetJSON(ctx, r.client, key(cartID), &c)
	if err != nil || !found {
		return nil, err
	}
	return &c, nil
}

func (r *Redis) Save(ctx context.Context, cart *model.Cart, ttl time.Duration) error {
	return redisrepo.SetJSON(ctx, r.client, key(cart.ID), cart, ttl)
}

func (r *Redis) Update(ctx context.Context, cartID string, ttl time.Duration, fn func(cart *model.Cart, exists bool) error) (*model.Cart, error) {
	return redisrepo.UpdateJSON(ctx, r.client, key(cartID), ttl, fn)
}

func (r *Redis) Delete(ctx context.Context, cartID string) error {
	return r.client.Del(ctx, key(cartID)).Err()
}
