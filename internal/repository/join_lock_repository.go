package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// releaseScript deletes the key only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// JoinLockRepository serialises join attempts across instances with Redis
// SET NX locks. Without a client every lock is granted locally.
type JoinLockRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewJoinLockRepository constructs a lock repository; client may be nil.
func NewJoinLockRepository(client *redis.Client, logger *zap.Logger) *JoinLockRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JoinLockRepository{client: client, logger: logger}
}

// Enabled reports whether a Redis client backs the locks.
func (r *JoinLockRepository) Enabled() bool {
	return r != nil && r.client != nil
}

// Acquire tries to take key for ttl. When acquired, the returned release func
// must be called once the guarded work is done.
func (r *JoinLockRepository) Acquire(ctx context.Context, key string, ttl time.Duration) (func(), bool, error) {
	if !r.Enabled() {
		return func() {}, true, nil
	}

	token := uuid.NewString()
	ok, err := r.client.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("redis setnx %s: %w", key, err)
	}
	if !ok {
		return nil, false, nil
	}

	release := func() {
		// The request context may already be cancelled.
		releaseCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := releaseScript.Run(releaseCtx, r.client, []string{key}, token).Err(); err != nil {
			r.logger.Warn("release join lock", zap.String("key", key), zap.Error(err))
		}
	}
	return release, true, nil
}

// Ping checks Redis connectivity. A disabled repository is always healthy.
func (r *JoinLockRepository) Ping(ctx context.Context) error {
	if !r.Enabled() {
		return nil
	}
	return r.client.Ping(ctx).Err()
}

// Close releases the underlying Redis connection if present.
func (r *JoinLockRepository) Close() error {
	if !r.Enabled() {
		return nil
	}
	return r.client.Close()
}
