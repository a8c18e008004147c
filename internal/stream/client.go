package stream

import (
	"errors"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBuffer     = 64
)

var (
	// ErrSlowConsumer is returned by Send when the client's buffer is full
	ErrSlowConsumer = errors.New("stream: subscriber is not keeping up")
	// ErrClientClosed is returned by Send after Close
	ErrClientClosed = errors.New("stream: client closed")
)

// Client represents a websocket client connection. Writes happen on a single
// goroutine fed by a bounded buffer, so Send never waits on the network.
type Client struct {
	conn *websocket.Conn
	log  *logrus.Entry
	send chan []byte
	done chan struct{}
	once sync.Once
}

// NewClient constructs a client wrapper and starts its writer.
func NewClient(conn *websocket.Conn, log *logrus.Entry) *Client {
	c := &Client{
		conn: conn,
		log:  log,
		send: make(chan []byte, sendBuffer),
		done: make(chan struct{}),
	}
	go c.writePump()
	return c
}

// Send queues a message for the connection. A full buffer means the peer is
// not reading; the caller should drop the client.
func (c *Client) Send(payload []byte) error {
	select {
	case <-c.done:
		return ErrClientClosed
	default:
	}
	select {
	case c.send <- payload:
		return nil
	default:
		c.log.Warn("websocket subscriber too slow, dropping")
		return ErrSlowConsumer
	}
}

// Close stops the writer, which sends a close frame and closes the connection.
func (c *Client) Close() {
	c.once.Do(func() { close(c.done) })
}

// Wait blocks until the peer closes the connection or stops answering pings;
// incoming messages are discarded.
func (c *Client) Wait() {
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case payload := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				c.log.WithError(err).Warn("websocket send failed")
				c.Close()
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.Close()
				return
			}
		case <-c.done:
			// Flush what was queued before the close so replayed snapshots are not lost
			c.drain()
			_ = c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
			return
		}
	}
}

func (c *Client) drain() {
	for {
		select {
		case payload := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		default:
			return
		}
	}
}
