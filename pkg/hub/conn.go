package hub

import (
	"errors"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

var (
	ErrQueueFull  = errors.New("send queue is full")
	ErrConnClosed = errors.New("connection is closed")
)

const (
	defaultQueueSize = 32               // 每个连接的发送队列长度
	writeWait        = 10 * time.Second // 单次写入的超时
)

// Conn wraps one WebSocket client behind a bounded write queue. Send
// marshals the payload and enqueues it without ever blocking the
// caller; a dedicated goroutine drains the queue onto the wire.
// Delivery is fire-and-forget: any failure (queue overflow, write
// error, closed peer) closes the connection, and the error Send
// returns is only used by the caller to mark the recipient
// unreachable.
type Conn struct {
	id    uuid.UUID
	ws    *websocket.Conn
	queue chan []byte
	done  chan struct{}
	once  sync.Once
}

// NewConn wraps an upgraded WebSocket connection and starts its write
// loop
func NewConn(ws *websocket.Conn) *Conn {
	c := &Conn{
		id:    uuid.New(),
		ws:    ws,
		queue: make(chan []byte, defaultQueueSize),
		done:  make(chan struct{}),
	}

	go c.writeLoop()
	return c
}

// ID returns the connection's correlation id for logging
func (c *Conn) ID() uuid.UUID {
	return c.id
}

// Send marshals and enqueues one payload. A full queue means the
// client cannot keep up; the connection is dropped rather than
// stalling the game loop.
func (c *Conn) Send(payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	select {
	case <-c.done:
		return ErrConnClosed
	default:
	}

	select {
	case c.queue <- data:
		return nil
	default:
		log.Warn().Stringer("conn_id", c.id).Msg("send queue full, dropping connection")
		c.Close()
		return ErrQueueFull
	}
}

func (c *Conn) writeLoop() {
	defer c.ws.Close()

	for {
		select {
		case <-c.done:
			return
		case data := <-c.queue:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Debug().Stringer("conn_id", c.id).Err(err).Msg("write failed")
				c.Close()
				return
			}
		}
	}
}

// Close shuts the connection down. Safe to call more than once.
func (c *Conn) Close() {
	c.once.Do(func() {
		close(c.done)
	})
}
