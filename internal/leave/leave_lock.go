package leave

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	processLockPrefix = "leave:process:"
	DefaultLockTTL    = 2 * time.Minute
)

func ProcessLockKey(leaveID string) string {
	return processLockPrefix + leaveID
}

// Locker guards one evaluation per request across API and consumer.
type Locker interface {
	// Acquire reports false when another holder owns the key.
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(), ok bool, err error)
}

type redisLocker struct {
	rdb *redis.Client
}

func NewRedisLocker(rdb *redis.Client) Locker {
	return &redisLocker{rdb: rdb}
}

func (l *redisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (func(), bool, error) {
	ok, err := l.rdb.SetNX(ctx, key, "locked", ttl).Result()
	if err != nil || !ok {
		return func() {}, ok, err
	}
	return func() {
		releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = l.rdb.Del(releaseCtx, key).Err()
	}, true, nil
}
