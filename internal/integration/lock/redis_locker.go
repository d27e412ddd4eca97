// Package lock implements per-business critical sections.
package lock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bsm/redislock"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/korven/backend/internal/application/adapter"
)

// Config tunes lock acquisition.
type Config struct {
	TTL           time.Duration
	RetryInterval time.Duration
	MaxRetries    int
}

// DefaultConfig returns the default lock configuration.
func DefaultConfig() Config {
	return Config{
		TTL:           30 * time.Second,
		RetryInterval: 100 * time.Millisecond,
		MaxRetries:    50,
	}
}

// RedisLocker implements adapter.BusinessLocker with bsm/redislock.
type RedisLocker struct {
	client *redislock.Client
	config Config
}

// NewRedisLocker creates a locker over the given Redis client.
func NewRedisLocker(rdb redis.UniversalClient, config Config) *RedisLocker {
	return &RedisLocker{
		client: redislock.New(rdb),
		config: config,
	}
}

// WithLock obtains scope:businessID, runs fn and releases the lock.
func (l *RedisLocker) WithLock(ctx context.Context, scope string, businessID uuid.UUID, fn func(ctx context.Context) error) error {
	key := lockKey(scope, businessID)

	lock, err := l.client.Obtain(ctx, key, l.config.TTL, &redislock.Options{
		RetryStrategy: redislock.LimitRetry(redislock.LinearBackoff(l.config.RetryInterval), l.config.MaxRetries),
	})
	if errors.Is(err, redislock.ErrNotObtained) {
		slog.Warn("Business lock busy", "lock", key)
		return adapter.ErrLockNotObtained
	}
	if err != nil {
		return fmt.Errorf("failed to obtain lock %s: %w", key, err)
	}
	defer func() {
		// Releasing with a cancelled ctx would leave the key until TTL.
		if err := lock.Release(context.WithoutCancel(ctx)); err != nil && !errors.Is(err, redislock.ErrLockNotHeld) {
			slog.Error("Failed to release business lock", "lock", key, "error", err)
		}
	}()

	return fn(ctx)
}

func lockKey(scope string, businessID uuid.UUID) string {
	return fmt.Sprintf("%s:%s", scope, businessID)
}

var _ adapter.BusinessLocker = (*RedisLocker)(nil)
