//go:build integration
// +build integration

package stream

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"cargodeploy-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisBridgeRelaysAcrossHubs(t *testing.T) {
	client := testutils.SetupRedis(t)

	// Two hubs with their own bridges stand in for two replicas
	local, remote := NewHub(), NewHub()
	defer local.Close()
	defer remote.Close()
	publisher := NewRedisBridge(client, local)
	relay := NewRedisBridge(client, remote)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- relay.Run(ctx) }()

	require.Eventually(t, func() bool {
		n, err := client.PubSubNumPat(context.Background()).Result()
		return err == nil && n > 0
	}, 5*time.Second, 20*time.Millisecond)

	watcher := newRecordingSubscriber()
	remote.Register("d-1", watcher)
	require.Eventually(t, func() bool { return remote.Subscribers("d-1") == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, publisher.Publish(context.Background(), Event{
		Type:         EventStatus,
		DeploymentID: "d-1",
		Status:       "SUCCESS",
	}))
	watcher.wait(t)

	watcher.mu.Lock()
	var got Event
	require.NoError(t, json.Unmarshal(watcher.messages[0], &got))
	watcher.mu.Unlock()
	assert.Equal(t, EventStatus, got.Type)
	assert.Equal(t, "SUCCESS", got.Status)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("bridge did not stop after cancel")
	}
}
