package stream

import (
	"context"
	"encoding/json"
	"strings"

	redis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const channelPrefix = "cargodeploy:deployments:"

// RedisBridge fans events out across replicas: Publish goes to Redis and Run
// relays every event received from Redis into the local hub.
type RedisBridge struct {
	client *redis.Client
	hub    *Hub
}

// NewRedisBridge creates a bridge between client and hub
func NewRedisBridge(client *redis.Client, hub *Hub) *RedisBridge {
	return &RedisBridge{client: client, hub: hub}
}

// Publish sends the event to every replica, including this one
func (b *RedisBridge) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return b.client.Publish(ctx, channelPrefix+event.DeploymentID, payload).Err()
}

// Run relays Redis messages into the hub until ctx is cancelled
func (b *RedisBridge) Run(ctx context.Context) error {
	sub := b.client.PSubscribe(ctx, channelPrefix+"*")
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return err
	}

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			deploymentID := strings.TrimPrefix(msg.Channel, channelPrefix)
			if deploymentID == "" {
				logrus.WithField("channel", msg.Channel).Warn("dropping stream message without deployment id")
				continue
			}
			b.hub.Broadcast(deploymentID, []byte(msg.Payload))
		}
	}
}
