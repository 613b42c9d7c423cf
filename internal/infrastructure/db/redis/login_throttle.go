package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	DefaultMaxFailures = 5
	DefaultLockout     = 15 * time.Minute
)

// LoginThrottle counts failed logins per identifier in Redis.
// Key format: login:failures:<lowercased identifier>
// The counter expires lockout after the first failure of a window.
type LoginThrottle struct {
	client      redis.Cmdable
	maxFailures int64
	lockout     time.Duration
}

// NewLoginThrottle returns a throttle. maxFailures == 0 disables it and a
// negative value uses DefaultMaxFailures.
func NewLoginThrottle(client redis.Cmdable, maxFailures int, lockout time.Duration) *LoginThrottle {
	if maxFailures < 0 {
		maxFailures = DefaultMaxFailures
	}
	if lockout <= 0 {
		lockout = DefaultLockout
	}
	return &LoginThrottle{client: client, maxFailures: int64(maxFailures), lockout: lockout}
}

// Enabled reports whether failures are counted at all.
func (t *LoginThrottle) Enabled() bool {
	return t.maxFailures > 0
}

func (t *LoginThrottle) Locked(ctx context.Context, identifier string) (bool, error) {
	if !t.Enabled() {
		return false, nil
	}
	n, err := t.client.Get(ctx, t.key(identifier)).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("throttle check: %w", err)
	}
	return n >= t.maxFailures, nil
}

func (t *LoginThrottle) RecordFailure(ctx context.Context, identifier string) error {
	if !t.Enabled() {
		return nil
	}
	key := t.key(identifier)
	pipe := t.client.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, t.lockout)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("throttle record: %w", err)
	}
	return nil
}

func (t *LoginThrottle) Reset(ctx context.Context, identifier string) error {
	return t.client.Del(ctx, t.key(identifier)).Err()
}

func (t *LoginThrottle) key(identifier string) string {
	return "login:failures:" + strings.ToLower(identifier)
}
