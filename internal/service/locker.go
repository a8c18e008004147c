package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"cargodeploy-backend/internal/logger"

	"github.com/google/uuid"
	redis "github.com/redis/go-redis/v9"
)

// KeyedLocker is an in-process mutex per project
type KeyedLocker struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*keyedEntry
}

type keyedEntry struct {
	sem  chan struct{}
	refs int
}

// NewKeyedLocker creates an in-process project locker
func NewKeyedLocker() *KeyedLocker {
	return &KeyedLocker{locks: make(map[uuid.UUID]*keyedEntry)}
}

// Lock blocks until the project's lock is held or ctx is done
func (l *KeyedLocker) Lock(ctx context.Context, projectID uuid.UUID) (func(), error) {
	l.mu.Lock()
	entry, ok := l.locks[projectID]
	if !ok {
		entry = &keyedEntry{sem: make(chan struct{}, 1)}
		l.locks[projectID] = entry
	}
	entry.refs++
	l.mu.Unlock()

	select {
	case entry.sem <- struct{}{}:
	case <-ctx.Done():
		l.release(projectID, entry, false)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() { l.release(projectID, entry, true) })
	}, nil
}

func (l *KeyedLocker) release(projectID uuid.UUID, entry *keyedEntry, held bool) {
	if held {
		<-entry.sem
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	entry.refs--
	if entry.refs == 0 {
		delete(l.locks, projectID)
	}
}

const (
	redisLockPrefix = "cargodeploy:lock:project:"
	defaultLockTTL  = 30 * time.Second
	lockRetryDelay  = 25 * time.Millisecond
)

// Deletes the key only while it still holds our token
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker serializes project decisions across replicas with SET NX PX
type RedisLocker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisLocker creates a distributed project locker. ttl bounds how long a crashed holder blocks others.
func NewRedisLocker(client *redis.Client, ttl time.Duration) *RedisLocker {
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	return &RedisLocker{client: client, ttl: ttl}
}

// Lock retries until the key is acquired or ctx is done
func (l *RedisLocker) Lock(ctx context.Context, projectID uuid.UUID) (func(), error) {
	key := redisLockPrefix + projectID.String()
	token := uuid.NewString()

	timer := time.NewTimer(0)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}

		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("acquire project lock: %w", err)
		}
		if ok {
			break
		}
		timer.Reset(lockRetryDelay)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
			defer cancel()
			if err := unlockScript.Run(releaseCtx, l.client, []string{key}, token).Err(); err != nil {
				logger.WithContext(ctx).WithField("project_id", projectID).Warnf("Failed to release project lock: %v", err)
			}
		})
	}, nil
}
