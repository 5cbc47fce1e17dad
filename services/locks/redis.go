package locks

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	// PrefixLock namespaces lock keys in Redis.
	PrefixLock = "coursehub:lock:"

	defaultLockTTL   = 10 * time.Second
	defaultRetryWait = 25 * time.Millisecond
	defaultWaitLimit = 5 * time.Second
)

// ErrLockTimeout is returned when a lock could not be acquired within the wait limit.
var ErrLockTimeout = errors.New("locks: timed out waiting for lock")

// releaseScript deletes the key only if we still own it.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Redis is a Locker shared by every instance talking to the same Redis server.
type Redis struct {
	client    redis.UniversalClient
	ttl       time.Duration
	retryWait time.Duration
	waitLimit time.Duration
}

func NewRedis(client redis.UniversalClient) *Redis {
	return &Redis{
		client:    client,
		ttl:       defaultLockTTL,
		retryWait: defaultRetryWait,
		waitLimit: defaultWaitLimit,
	}
}

func (r *Redis) Lock(ctx context.Context, key string) (func(), error) {
	token := uuid.NewString()
	redisKey := PrefixLock + key

	ctx, cancel := context.WithTimeout(ctx, r.waitLimit)
	defer cancel()

	for {
		ok, err := r.client.SetNX(ctx, redisKey, token, r.ttl).Result()
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return nil, ErrLockTimeout
			}
			return nil, err
		}
		if ok {
			break
		}

		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return nil, ErrLockTimeout
			}
			return nil, ctx.Err()
		case <-time.After(r.retryWait):
		}
	}

	return func() {
		// The caller's context may already be done; release on a fresh one.
		releaseCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := releaseScript.Run(releaseCtx, r.client, []string{redisKey}, token).Err(); err != nil {
			zap.L().Warn("failed to release lock", zap.String("key", redisKey), zap.Error(err))
		}
	}, nil
}
