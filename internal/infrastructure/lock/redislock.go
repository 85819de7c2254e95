package lock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"titledesk/internal/shared/logger"
)

const (
	lockTTL       = 30 * time.Second
	retryInterval = 50 * time.Millisecond
)

// releaseScript deletes the key only if this holder still owns it.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// RedisLocker implements Locker over redis SET NX, for deployments running
// more than one instance against the same database.
type RedisLocker struct {
	client *redis.Client
	prefix string
	logger logger.Interface
}

// NewRedisLocker creates a redis-backed keyed locker.
func NewRedisLocker(client *redis.Client, prefix string) *RedisLocker {
	return &RedisLocker{
		client: client,
		prefix: prefix,
		logger: logger.NewLogger().With("component", "lock.redis"),
	}
}

// Acquire polls SET NX until the key is claimed or ctx is done. Locks expire
// after lockTTL so a crashed holder cannot wedge the key forever.
func (l *RedisLocker) Acquire(ctx context.Context, key string) (func(), error) {
	fullKey := l.prefix + ":" + key
	holder := uuid.NewString()

	ticker := time.NewTicker(retryInterval)
	defer ticker.Stop()

	for {
		ok, err := l.client.SetNX(ctx, fullKey, holder, lockTTL).Result()
		if err != nil {
			return nil, err
		}
		if ok {
			release := func() {
				if _, err := releaseScript.Run(context.Background(), l.client, []string{fullKey}, holder).Result(); err != nil {
					l.logger.Warnw("failed to release lock", "key", fullKey, "error", err)
				}
			}
			return release, nil
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}
