package stream

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"
)

// EventType names what an Event carries
type EventType string

const (
	EventLog    EventType = "log"
	EventStatus EventType = "status"
)

// Event is one message pushed to live subscribers of a deployment
type Event struct {
	Type         EventType `json:"type"`
	DeploymentID string    `json:"deployment_id"`
	Lines        []string  `json:"lines,omitempty"`
	Status       string    `json:"status,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// Publisher delivers events to whoever is watching a deployment
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Subscriber abstracts a streaming client.
type Subscriber interface {
	Send([]byte) error
	Close()
}

const broadcastBuffer = 256

// Hub manages stream subscriptions by deployment ID. Subscribers must not block
// in Send; a failed Send drops the subscriber.
type Hub struct {
	clients   map[string]map[Subscriber]struct{}
	register  chan subscription
	unreg     chan subscription
	broadcast chan message
	count     chan countRequest
	done      chan struct{}
}

type message struct {
	deploymentID string
	payload      []byte
}

type subscription struct {
	deploymentID string
	client       Subscriber
}

type countRequest struct {
	deploymentID string
	reply        chan int
}

// NewHub creates an initialized Hub.
func NewHub() *Hub {
	h := &Hub{
		clients:   make(map[string]map[Subscriber]struct{}),
		register:  make(chan subscription),
		unreg:     make(chan subscription),
		broadcast: make(chan message, broadcastBuffer),
		count:     make(chan countRequest),
		done:      make(chan struct{}),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case <-h.done:
			for _, clients := range h.clients {
				for c := range clients {
					c.Close()
				}
			}
			return
		case sub := <-h.register:
			if _, ok := h.clients[sub.deploymentID]; !ok {
				h.clients[sub.deploymentID] = make(map[Subscriber]struct{})
			}
			h.clients[sub.deploymentID][sub.client] = struct{}{}
		case sub := <-h.unreg:
			if clients, ok := h.clients[sub.deploymentID]; ok {
				delete(clients, sub.client)
				if len(clients) == 0 {
					delete(h.clients, sub.deploymentID)
				}
			}
		case msg := <-h.broadcast:
			if clients, ok := h.clients[msg.deploymentID]; ok {
				for c := range clients {
					if err := c.Send(msg.payload); err != nil {
						c.Close()
						delete(clients, c)
					}
				}
				if len(clients) == 0 {
					delete(h.clients, msg.deploymentID)
				}
			}
		case req := <-h.count:
			req.reply <- len(h.clients[req.deploymentID])
		}
	}
}

// Register adds a client to a deployment stream.
func (h *Hub) Register(deploymentID string, client Subscriber) {
	select {
	case h.register <- subscription{deploymentID: deploymentID, client: client}:
	case <-h.done:
		client.Close()
	}
}

// Unregister removes a client.
func (h *Hub) Unregister(deploymentID string, client Subscriber) {
	select {
	case h.unreg <- subscription{deploymentID: deploymentID, client: client}:
	case <-h.done:
	}
}

// Broadcast sends payload to all deployment clients. It never blocks: when the
// backlog is full the message is dropped.
func (h *Hub) Broadcast(deploymentID string, payload []byte) {
	select {
	case h.broadcast <- message{deploymentID: deploymentID, payload: payload}:
	case <-h.done:
	default:
		logrus.WithField("deployment_id", deploymentID).Warn("Stream backlog full, dropping event")
	}
}

// Subscribers returns how many clients watch a deployment.
func (h *Hub) Subscribers(deploymentID string) int {
	select {
	case <-h.done:
		return 0
	default:
	}
	reply := make(chan int, 1)
	select {
	case h.count <- countRequest{deploymentID: deploymentID, reply: reply}:
		return <-reply
	case <-h.done:
		return 0
	}
}

// Publish encodes the event and broadcasts it locally.
func (h *Hub) Publish(_ context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	h.Broadcast(event.DeploymentID, payload)
	return nil
}

// Close disconnects every client and stops the hub.
func (h *Hub) Close() {
	select {
	case <-h.done:
	default:
		close(h.done)
	}
}
