package redis

import (
	"context"
	"errors"
	"time"

	redisclient "github.com/muhammadheryan/home-service/cmd/redis"
)

const (
	sessionPrefix  = "session:"
	cooldownPrefix = "otp:cooldown:"
	attemptsPrefix = "otp:attempts:"
)

// RedisRepository defines the key-value operations used by admin sessions and OTP throttling.
type RedisRepository interface {
	SetIfAbsent(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	Delete(ctx context.Context, key string) error
	Increment(ctx context.Context, key string, ttl time.Duration) (int64, error)
	SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (uint64, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

var errNoClient = errors.New("redis client not initialized")

type redis struct{}

// NewRepository returns a Redis Repository implementation
func NewRepository() RedisRepository {
	return &redis{}
}

// CooldownKey is the resend throttle key for a normalized contact.
func CooldownKey(contact string) string {
	return cooldownPrefix + contact
}

// AttemptsKey counts verification tries against one issued code.
func AttemptsKey(code string) string {
	return attemptsPrefix + code
}

// SetIfAbsent stores value only when key does not exist yet.
// Without a client every call is allowed.
func (r *redis) SetIfAbsent(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	client := redisclient.Get()
	if client == nil {
		return true, nil
	}
	return client.SetNX(ctx, key, value, ttl).Result()
}

// Delete removes a key from Redis
func (r *redis) Delete(ctx context.Context, key string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, key).Err()
}

// Increment bumps a counter and starts its TTL on the first hit.
// Without a client the counter stays at zero.
func (r *redis) Increment(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	client := redisclient.Get()
	if client == nil {
		return 0, nil
	}

	n, err := client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if n == 1 && ttl > 0 {
		if err := client.Expire(ctx, key, ttl).Err(); err != nil {
			return n, err
		}
	}
	return n, nil
}

// SetSession stores a session with userID and TTL
func (r *redis) SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, sessionPrefix+sessionID, userID, ttl).Err()
}

// GetSession retrieves userID from session
func (r *redis) GetSession(ctx context.Context, sessionID string) (uint64, error) {
	client := redisclient.Get()
	if client == nil {
		return 0, errNoClient
	}
	return client.Get(ctx, sessionPrefix+sessionID).Uint64()
}

// DeleteSession removes a session from Redis
func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, sessionPrefix+sessionID).Err()
}
