package otp

import (
	"context"
	"strings"
	"time"

	"github.com/muhammadheryan/food-storefront/model"
	redisrepo "github.com/muhammadheryan/food-storefront/repository/redis"
	goredis "github.com/redis/go-redis/v9"
)

// OTPRepository keeps at most one live OTP record per email.
type OTPRepository interface {
	// Replace stores rec, discarding any previous record for the same email.
	Replace(ctx context.Context, rec *model.OTPRecord, ttl time.Duration) error
	// Get returns nil when no record exists.
	Get(ctx context.Context, email string) (*model.OTPRecord, error)
	// Delete reports whether a record was actually removed by this call.
	Delete(ctx context.Context, email string) (bool, error)
}

type Redis struct {
	client goredis.UniversalClient
}

func NewOTPRepository(client goredis.UniversalClient) OTPRepository {
	return &Redis{client: client}
}

func key(email string) string {
	return "otp:" + strings.ToLower(strings.TrimSpace(email))
}

func (r *Redis) Replace(ctx context.Context, rec *model.OTPRecord, ttl time.Duration) error {
	return redisrepo.SetJSON(ctx, r.client, key(rec.Email), rec, ttl)
}

func (r *Redis) Get(ctx context.Context, email string) (*model.OTPRecord, error) {
	var rec model.OTPRecord
	found, err := redisrepo.GetJSON(ctx, r.client, key(email), &rec)
	if err != nil || !found {
		return nil, err
	}
	return &rec, nil
}

func (r *Redis) Delete(ctx context.Context, email string) (bool, error) {
	n, err := r.client.Del(ctx, key(email)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
