package locks

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/rueidis"
)

// Deletes the key only while it still holds our token.
var releaseScript = rueidis.NewLuaScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type RedisLocker struct {
	client rueidis.Client
	prefix string
	ttl    time.Duration
	wait   time.Duration
	retry  time.Duration
}

func NewRedisLocker(client rueidis.Client, prefix string, ttl, wait time.Duration) *RedisLocker {
	return &RedisLocker{
		client: client,
		prefix: prefix,
		ttl:    ttl,
		wait:   wait,
		retry:  25 * time.Millisecond,
	}
}

func (r *RedisLocker) Acquire(ctx context.Context, key string) (Release, error) {
	fullKey := r.prefix + ":" + key
	token := uuid.NewString()
	deadline := time.Now().Add(r.wait)

	for {
		err := r.tryAcquire(ctx, fullKey, token)
		if err == nil {
			return r.releaser(fullKey, token), nil
		}
		if !errors.Is(err, ErrLockBusy) {
			return nil, err
		}
		if time.Now().After(deadline) {
			return nil, ErrLockBusy
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.retry):
		}
	}
}

func (r *RedisLocker) tryAcquire(ctx context.Context, key, token string) error {
	cmd := r.client.B().Set().Key(key).Value(token).Nx().PxMilliseconds(r.ttl.Milliseconds()).Build()
	if err := r.client.Do(ctx, cmd).Error(); err != nil {
		if rueidis.IsRedisNil(err) {
			return ErrLockBusy
		}
		return err
	}
	return nil
}

func (r *RedisLocker) releaser(key, token string) Release {
	return func(ctx context.Context) error {
		return releaseScript.Exec(ctx, r.client, []string{key}, []string{token}).Error()
	}
}
