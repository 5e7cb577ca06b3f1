// Package lock provides redis-backed mutexes used to serialise writers on a
// single aggregate (a screening session, a patient order's triage log) across
// process replicas, plus a coarser lock for cluster-wide background jobs.
package lock

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

var ErrNotAcquired = errors.New("lock: not acquired")

// releaseScript deletes the key only if it still holds our token, so an
// expired lock re-acquired by someone else is never released by us.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type Locker struct {
	rdb *goredis.Client
	ttl time.Duration
}

func New(rdb *goredis.Client, ttl time.Duration) *Locker {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &Locker{rdb: rdb, ttl: ttl}
}

// Acquire takes the named lock, retrying once after a short wait before
// giving up with ErrNotAcquired. The returned function releases the lock;
// it is safe to call after expiry.
func (l *Locker) Acquire(ctx context.Context, name string) (func(), error) {
	key := "lock:" + name
	token, err := newToken()
	if err != nil {
		return nil, err
	}

	for attempt := 0; attempt < 2; attempt++ {
		ok, err := l.rdb.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("acquire lock %q: %w", name, err)
		}
		if ok {
			return func() {
				releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = releaseScript.Run(releaseCtx, l.rdb, []string{key}, token).Err()
			}, nil
		}
		if attempt == 0 {
			select {
			case <-time.After(200 * time.Millisecond):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrNotAcquired, name)
}

// AcquireJob takes a cluster-wide lock for a background job run. Unlike
// Acquire it does not retry: if another replica holds the lock the caller
// should skip this run.
func (l *Locker) AcquireJob(ctx context.Context, job string, ttl time.Duration) (func(), error) {
	key := "joblock:" + job
	token, err := newToken()
	if err != nil {
		return nil, err
	}

	ok, err := l.rdb.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("acquire job lock %q: %w", job, err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotAcquired, job)
	}

	return func() {
		releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = releaseScript.Run(releaseCtx, l.rdb, []string{key}, token).Err()
	}, nil
}

func newToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("lock token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
