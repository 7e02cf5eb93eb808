package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const maxWatchRetries = 5

var ErrConcurrentUpdate = errors.New("redis: concurrent update, retries exhausted")

// GetJSON decodes key into v. It reports false when the key does not exist.
func GetJSON(ctx context.Context, client goredis.UniversalClient, key string, v any) (bool, error) {
	raw, err := client.Get(ctx, key).Bytes()
	if err != nil {
		if IsNil(err) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func SetJSON(ctx context.Context, client goredis.UniversalClient, key string, v any, ttl time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return client.Set(ctx, key, raw, ttl).Err()
}

// UpdateJSON runs a read-modify-write of key under WATCH. fn receives the current
// value (zero when missing) and mutates it in place; an error from fn aborts the
// write and is returned as is.
func UpdateJSON[T any](ctx context.Context, client goredis.UniversalClient, key string, ttl time.Duration, fn func(v *T, exists bool) error) (*T, error) {
	var result *T
	txf := func(tx *goredis.Tx) error {
		var current T
		raw, err := tx.Get(ctx, key).Bytes()
		exists := true
		if err != nil {
			if !IsNil(err) {
				return err
			}
			exists = false
		} else if err := json.Unmarshal(raw, &current); err != nil {
			return fmt.Errorf("decode %s: %w", key, err)
		}

		if err := fn(&current, exists); err != nil {
			return err
		}

		encoded, err := json.Marshal(&current)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, key, encoded, ttl)
			return nil
		})
		if err != nil {
			return err
		}
		result = &current
		return nil
	}

	for i := 0; i < maxWatchRetries; i++ {
		err := client.Watch(ctx, txf, key)
		if errors.Is(err, goredis.TxFailedErr) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return result, nil
	}
	return nil, ErrConcurrentUpdate
}
