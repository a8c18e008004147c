//go:build integration
// +build integration

package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"cargodeploy-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisLocker_SerializesAcrossLockers(t *testing.T) {
	client := testutils.SetupRedis(t)
	// Two lockers stand in for two replicas
	a := NewRedisLocker(client, time.Second)
	b := NewRedisLocker(client, time.Second)
	projectID := uuid.New()

	var active, maxActive int32
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		locker := a
		if i%2 == 1 {
			locker = b
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := locker.Lock(context.Background(), projectID)
			require.NoError(t, err)
			defer unlock()

			n := atomic.AddInt32(&active, 1)
			for {
				m := atomic.LoadInt32(&maxActive)
				if n <= m || atomic.CompareAndSwapInt32(&maxActive, m, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			atomic.AddInt32(&active, -1)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxActive)
}

func TestRedisLocker_ExpiredLockIsNotReleasedByOldHolder(t *testing.T) {
	client := testutils.SetupRedis(t)
	locker := NewRedisLocker(client, 50*time.Millisecond)
	projectID := uuid.New()

	unlockStale, err := locker.Lock(context.Background(), projectID)
	require.NoError(t, err)
	time.Sleep(100 * time.Millisecond)

	unlockFresh, err := locker.Lock(context.Background(), projectID)
	require.NoError(t, err)
	defer unlockFresh()

	// The stale holder's release must not free the fresh holder's lock
	unlockStale()
	exists, err := client.Exists(context.Background(), redisLockPrefix+projectID.String()).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(1), exists)
}

func TestRedisLocker_ContextCancelled(t *testing.T) {
	client := testutils.SetupRedis(t)
	locker := NewRedisLocker(client, time.Second)
	projectID := uuid.New()

	unlock, err := locker.Lock(context.Background(), projectID)
	require.NoError(t, err)
	defer unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = locker.Lock(ctx, projectID)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
