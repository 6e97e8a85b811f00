package cache

import (
	"context"
	"fmt"
	"time"

	syncapp "github.com/comunidad/backend/internal/application/sync"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisSyncLock implements the reconciliation run lock on Redis. It is
// suitable for deployments with multiple instances that must not run full
// reconciliation sweeps concurrently.
//
// The lock carries a per-instance token so Release only removes a lock this
// instance still holds; a lock lost to TTL expiry is left alone.
type RedisSyncLock struct {
	client *redis.Client
	key    string
	token  string
	ttl    time.Duration
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// releaseScript deletes the lock only when it still holds this instance's token
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// NewRedisSyncLock creates a new Redis-backed run lock
func NewRedisSyncLock(cfg RedisConfig, key string, ttl time.Duration) (*RedisSyncLock, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisSyncLockWithClient(client, key, ttl), nil
}

// NewRedisSyncLockWithClient creates a run lock with an existing Redis client.
// This is useful for testing or when sharing a client across components.
func NewRedisSyncLockWithClient(client *redis.Client, key string, ttl time.Duration) *RedisSyncLock {
	if key == "" {
		key = "sync:reconcile:lock"
	}
	return &RedisSyncLock{
		client: client,
		key:    key,
		token:  uuid.NewString(),
		ttl:    ttl,
	}
}

// Acquire attempts to take the run lock. Returns false when another run
// already holds it. The TTL bounds how long a crashed run can block others.
func (l *RedisSyncLock) Acquire(ctx context.Context) (bool, error) {
	acquired, err := l.client.SetNX(ctx, l.key, l.token, l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire sync lock: %w", err)
	}
	return acquired, nil
}

// Release frees the run lock if this instance still holds it
func (l *RedisSyncLock) Release(ctx context.Context) error {
	if err := releaseScript.Run(ctx, l.client, []string{l.key}, l.token).Err(); err != nil {
		return fmt.Errorf("failed to release sync lock: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (l *RedisSyncLock) Close() error {
	return l.client.Close()
}

// Ensure RedisSyncLock implements the reconciler's RunLock
var _ syncapp.RunLock = (*RedisSyncLock)(nil)
