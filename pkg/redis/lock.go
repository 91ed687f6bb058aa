package redis

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrLockNotAcquired is returned when the lock is held by another request.
var ErrLockNotAcquired = errors.New("lock not acquired")

const releaseScript = `
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`

// LockOptions tunes keyed-mutex acquisition.
type LockOptions struct {
	TTL        time.Duration
	RetryDelay time.Duration
	MaxRetries int
}

func (o LockOptions) withDefaults() LockOptions {
	if o.TTL <= 0 {
		o.TTL = 30 * time.Second
	}
	if o.RetryDelay <= 0 {
		o.RetryDelay = 100 * time.Millisecond
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = 20
	}
	return o
}

// AcquireLock takes a per-key mutex and returns a release func. Callers
// serialize read-modify-write cycles on shared rows with it. The lock is
// token-fenced so only the holder can release it.
func (c *Client) AcquireLock(ctx context.Context, scope, id string, opts LockOptions) (func(context.Context) error, error) {
	if c == nil || c.store == nil {
		return nil, errors.New("redis client not initialized")
	}
	opts = opts.withDefaults()

	key := c.LockKey(scope, id)
	token := uuid.NewString()

	for attempt := 0; attempt <= opts.MaxRetries; attempt++ {
		ok, err := c.SetNX(ctx, key, token, opts.TTL)
		if err != nil {
			return nil, err
		}
		if ok {
			release := func(relCtx context.Context) error {
				return c.store.Eval(relCtx, releaseScript, []string{key}, token).Err()
			}
			return release, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(opts.RetryDelay):
		}
	}

	return nil, ErrLockNotAcquired
}
