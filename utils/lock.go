// File: utils/lock.go
package utils

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// ProviderLocker serializes check-then-write sequences per provider so that
// two concurrent writers cannot both pass an overlap check before either
// commits. Release must be safe to call exactly once on every exit path.
type ProviderLocker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

const (
	lockTTL           = 10 * time.Second
	lockRetryInterval = 50 * time.Millisecond
	lockAcquireWindow = 5 * time.Second
)

// releaseScript deletes the lock only if the caller still holds it.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// RedisLocker is the production ProviderLocker: SETNX with a TTL so a crashed
// holder cannot wedge a provider, and a token-checked release so an expired
// holder cannot delete a successor's lock.
type RedisLocker struct {
	Client *redis.Client
}

func NewRedisLocker(client *redis.Client) *RedisLocker {
	return &RedisLocker{Client: client}
}

func (l *RedisLocker) Acquire(ctx context.Context, key string) (func(), error) {
	token := uuid.New().String()
	deadline := time.Now().Add(lockAcquireWindow)

	for {
		ok, err := l.Client.SetNX(ctx, "lock:"+key, token, lockTTL).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire lock %s: %w", key, err)
		}
		if ok {
			break
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("timed out acquiring lock %s", key)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(lockRetryInterval):
		}
	}

	release := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := releaseScript.Run(ctx, l.Client, []string{"lock:" + key}, token).Err(); err != nil && err != redis.Nil {
			GetLogger().Sugar().Warnf("failed to release lock %s: %v", key, err)
		}
	}
	return release, nil
}

// LocalLocker is an in-process ProviderLocker backed by keyed mutexes.
// Suitable for single-node deployments and tests.
type LocalLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{locks: make(map[string]*sync.Mutex)}
}

func (l *LocalLocker) Acquire(ctx context.Context, key string) (func(), error) {
	l.mu.Lock()
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	l.mu.Unlock()

	m.Lock()
	var once sync.Once
	return func() { once.Do(m.Unlock) }, nil
}
