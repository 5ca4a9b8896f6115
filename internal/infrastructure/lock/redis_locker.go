// Package lock serialises writes to a single health check across instances.
package lock

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vhc_service/internal/infrastructure/logging"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
)

// ErrNotObtained is returned when another request holds the lock.
var ErrNotObtained = errors.New("health check is locked by another request")

const keyPrefix = "vhc:lock:health_check:"

// RedisLocker takes short redislock leases keyed by health check ID.
type RedisLocker struct {
	client *redislock.Client
	ttl    time.Duration
}

func NewRedisLocker(rdb redis.UniversalClient, ttl time.Duration) *RedisLocker {
	return &RedisLocker{client: redislock.New(rdb), ttl: ttl}
}

// Connect pings Redis once and returns a locker, or a NoopLocker when addr is
// empty. A failed ping is returned to the caller.
func Connect(ctx context.Context, addr, password string, ttl time.Duration) (Locker, error) {
	if addr == "" {
		logging.GetLogger().Info("REDIS_ADDR not set; health check locking disabled")
		return NoopLocker{}, nil
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr, Password: password})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return NewRedisLocker(rdb, ttl), nil
}

// Locker is what usecases depend on; both implementations satisfy it.
type Locker interface {
	Obtain(ctx context.Context, healthCheckID string) (release func(), err error)
}

func (l *RedisLocker) Obtain(ctx context.Context, healthCheckID string) (func(), error) {
	lk, err := l.client.Obtain(ctx, keyPrefix+healthCheckID, l.ttl, nil)
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, ErrNotObtained
	}
	if err != nil {
		return nil, err
	}
	return func() {
		// a fresh context so a cancelled request still releases its lease
		if err := lk.Release(context.Background()); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			logging.LogError(logging.GetLogger(), "lock", "Release", "release failed", healthCheckID, err)
		}
	}, nil
}

// NoopLocker is used when Redis is not configured.
type NoopLocker struct{}

func (NoopLocker) Obtain(context.Context, string) (func(), error) {
	return func() {}, nil
}
