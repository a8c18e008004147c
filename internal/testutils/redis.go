package testutils

import (
	"context"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	redis "github.com/redis/go-redis/v9"
)

var redisAddr string

// SetupRedis starts (once) a shared Redis container and returns a client that
// flushes the database when the test ends.
func SetupRedis(t *testing.T) *redis.Client {
	err := redisContainer.start(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7-alpine",
	}, "6379/tcp", time.Minute, func(hostPort string) error {
		redisAddr = "127.0.0.1:" + hostPort
		client := redis.NewClient(&redis.Options{Addr: redisAddr})
		defer client.Close()
		return client.Ping(context.Background()).Err()
	})
	if err != nil {
		t.Fatalf("failed to initialize redis container: %v", err)
	}

	client := redis.NewClient(&redis.Options{Addr: redisAddr})
	t.Cleanup(func() {
		_ = client.FlushDB(context.Background()).Err()
		_ = client.Close()
	})
	return client
}
