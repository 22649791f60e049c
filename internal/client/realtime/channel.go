// Package realtime maintains the websocket channel used for chat delivery
// and presence. The channel is best effort: messages are fire-and-forget,
// unknown events are ignored, and a dropped connection simply leaves the
// channel disconnected until the caller reconnects.
package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/dmitrijs2005/expotacna/internal/client/models"
	"github.com/dmitrijs2005/expotacna/internal/logging"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// Channel states. The channel moves Disconnected -> Connecting ->
// Connected -> Authenticated and falls back to Disconnected on any failure.
type State int32

const (
	Disconnected State = iota
	Connecting
	Connected
	Authenticated
)

func (s State) String() string {
	switch s {
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	case Authenticated:
		return "authenticated"
	default:
		return "disconnected"
	}
}

// Event is the wire envelope. Data carries the event-specific payload.
type Event struct {
	Name string          `json:"event"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Wire event names.
const (
	EventAuthenticate      = "authenticate"
	EventJoinAdminRoom     = "join_admin_room"
	EventPrivateMessage    = "private_message"
	EventNewMessage        = "new_message"
	EventUserStatusChanged = "user_status_changed"
)

// Handlers receives pushed events. Nil fields are skipped. Callbacks run on
// the read loop goroutine, so they must not block.
type Handlers struct {
	OnUserStatusChanged func(userID int, isActive bool)
	OnNewMessage        func(msg models.Message)
	OnDisconnect        func(err error)
}

var ErrNotConnected = errors.New("realtime channel not connected")

type Channel struct {
	url      string
	dialer   *websocket.Dialer
	logger   logging.Logger
	handlers Handlers

	state atomic.Int32

	mu   sync.Mutex
	conn *websocket.Conn
	send chan Event
	done chan struct{}
}

func NewChannel(url string, handlers Handlers, logger logging.Logger) *Channel {
	return &Channel{
		url:      url,
		dialer:   websocket.DefaultDialer,
		logger:   logger.With("component", "realtime"),
		handlers: handlers,
	}
}

func (c *Channel) State() State {
	return State(c.state.Load())
}

// Connect dials the channel, authenticates with the given token and joins
// the admin room when asked. It returns once the handshake writes are done;
// pushed events flow to the handlers from that point on.
func (c *Channel) Connect(ctx context.Context, token string, joinAdminRoom bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		return nil
	}

	c.state.Store(int32(Connecting))
	conn, _, err := c.dialer.DialContext(ctx, c.url, nil)
	if err != nil {
		c.state.Store(int32(Disconnected))
		return fmt.Errorf("failed to connect realtime channel: %w", err)
	}
	c.state.Store(int32(Connected))

	auth, err := marshalEvent(EventAuthenticate, map[string]string{"token": token})
	if err != nil {
		conn.Close()
		c.state.Store(int32(Disconnected))
		return err
	}
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(auth); err != nil {
		conn.Close()
		c.state.Store(int32(Disconnected))
		return fmt.Errorf("failed to authenticate realtime channel: %w", err)
	}

	if joinAdminRoom {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(Event{Name: EventJoinAdminRoom}); err != nil {
			conn.Close()
			c.state.Store(int32(Disconnected))
			return fmt.Errorf("failed to join admin room: %w", err)
		}
	}

	c.conn = conn
	c.send = make(chan Event, 16)
	c.done = make(chan struct{})
	c.state.Store(int32(Authenticated))

	go c.readPump(conn, c.done)
	go c.writePump(conn, c.send, c.done)

	c.logger.Debug(ctx, "realtime channel connected", "url", c.url)
	return nil
}

// Send queues an event without waiting for delivery. A full queue or a
// disconnected channel returns ErrNotConnected so the caller can mark the
// local echo as failed.
func (c *Channel) Send(name string, data any) error {
	event, err := marshalEvent(name, data)
	if err != nil {
		return err
	}

	// The enqueue happens under the lock. Teardown nils the queue under the
	// same lock, so a dead channel can never accept an event it will not
	// deliver. The select never blocks: the queue is buffered and a full
	// queue falls through to the default case.
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.send == nil || c.State() != Authenticated {
		return ErrNotConnected
	}

	select {
	case c.send <- event:
		return nil
	default:
		return ErrNotConnected
	}
}

// SendPrivateMessage pushes one chat message. Delivery is confirmed only by
// the server echoing it back as a new_message event.
func (c *Channel) SendPrivateMessage(token string, recipientID int, content string) error {
	payload := struct {
		Token       string `json:"token"`
		RecipientID int    `json:"recipient_id"`
		Content     string `json:"content"`
		AutoDelete  bool   `json:"auto_delete"`
	}{Token: token, RecipientID: recipientID, Content: content}
	return c.Send(EventPrivateMessage, payload)
}

// Close tears the connection down and moves the channel to Disconnected.
func (c *Channel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closeLocked()
}

func (c *Channel) closeLocked() error {
	if c.conn == nil {
		return nil
	}
	close(c.done)
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	err := c.conn.Close()
	c.conn = nil
	c.send = nil
	c.done = nil
	c.state.Store(int32(Disconnected))
	return err
}

func (c *Channel) readPump(conn *websocket.Conn, done chan struct{}) {
	ctx := context.Background()

	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		var event Event
		if err := conn.ReadJSON(&event); err != nil {
			c.teardown(conn, err)
			return
		}
		conn.SetReadDeadline(time.Now().Add(pongWait))
		c.dispatch(ctx, event)
	}
}

func (c *Channel) dispatch(ctx context.Context, event Event) {
	switch event.Name {
	case EventUserStatusChanged:
		var payload struct {
			UserID   int  `json:"user_id"`
			IsActive bool `json:"is_active"`
		}
		if err := json.Unmarshal(event.Data, &payload); err != nil {
			c.logger.Warn(ctx, "invalid user_status_changed payload", "error", err)
			return
		}
		if c.handlers.OnUserStatusChanged != nil {
			c.handlers.OnUserStatusChanged(payload.UserID, payload.IsActive)
		}
	case EventNewMessage:
		var msg models.Message
		if err := json.Unmarshal(event.Data, &msg); err != nil {
			c.logger.Warn(ctx, "invalid new_message payload", "error", err)
			return
		}
		if c.handlers.OnNewMessage != nil {
			c.handlers.OnNewMessage(msg)
		}
	default:
		c.logger.Debug(ctx, "ignoring unknown realtime event", "event", event.Name)
	}
}

func (c *Channel) writePump(conn *websocket.Conn, send chan Event, done chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case event := <-send:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(event); err != nil {
				c.teardown(conn, err)
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.teardown(conn, err)
				return
			}
		case <-done:
			return
		}
	}
}

// teardown handles a connection lost from inside a pump. Only the first
// pump to fail runs the close; the second sees a replaced conn and exits.
func (c *Channel) teardown(conn *websocket.Conn, err error) {
	c.mu.Lock()
	if c.conn != conn {
		c.mu.Unlock()
		return
	}
	c.closeLocked()
	c.mu.Unlock()

	if c.handlers.OnDisconnect != nil && !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
		c.handlers.OnDisconnect(err)
	}
}

func marshalEvent(name string, data any) (Event, error) {
	if data == nil {
		return Event{Name: name}, nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return Event{}, fmt.Errorf("failed to encode %s event: %w", name, err)
	}
	return Event{Name: name, Data: raw}, nil
}
