package realtime

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/expotacna/internal/client/models"
	"github.com/dmitrijs2005/expotacna/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// testServer upgrades one connection and hands it to fn.
func testServer(t *testing.T, fn func(conn *websocket.Conn)) string {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		fn(conn)
	}))
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

// holdOpen keeps the server side open until the peer closes.
func holdOpen(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func readEvent(t *testing.T, conn *websocket.Conn) Event {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var event Event
	require.NoError(t, conn.ReadJSON(&event))
	return event
}

func TestConnect_AuthenticatesFirst(t *testing.T) {
	gotAuth := make(chan Event, 1)
	url := testServer(t, func(conn *websocket.Conn) {
		gotAuth <- readEvent(t, conn)
		holdOpen(conn)
	})

	c := NewChannel(url, Handlers{}, testLogger())
	require.NoError(t, c.Connect(context.Background(), "tok-1", false))
	defer c.Close()

	event := <-gotAuth
	assert.Equal(t, EventAuthenticate, event.Name)
	assert.JSONEq(t, `{"token":"tok-1"}`, string(event.Data))
	assert.Equal(t, Authenticated, c.State())
}

func TestConnect_AdminJoinsAdminRoom(t *testing.T) {
	events := make(chan Event, 2)
	url := testServer(t, func(conn *websocket.Conn) {
		events <- readEvent(t, conn)
		events <- readEvent(t, conn)
		holdOpen(conn)
	})

	c := NewChannel(url, Handlers{}, testLogger())
	require.NoError(t, c.Connect(context.Background(), "tok-1", true))
	defer c.Close()

	assert.Equal(t, EventAuthenticate, (<-events).Name)
	assert.Equal(t, EventJoinAdminRoom, (<-events).Name)
}

func TestConnect_DialFailure(t *testing.T) {
	c := NewChannel("ws://127.0.0.1:1", Handlers{}, testLogger())
	err := c.Connect(context.Background(), "tok", false)
	require.Error(t, err)
	assert.Equal(t, Disconnected, c.State())
}

func TestDispatch_NewMessage(t *testing.T) {
	url := testServer(t, func(conn *websocket.Conn) {
		readEvent(t, conn) // authenticate
		data, _ := json.Marshal(models.Message{SenderID: 2, RecipientID: 1, Content: "hola"})
		require.NoError(t, conn.WriteJSON(Event{Name: EventNewMessage, Data: data}))
		holdOpen(conn)
	})

	received := make(chan models.Message, 1)
	c := NewChannel(url, Handlers{
		OnNewMessage: func(msg models.Message) { received <- msg },
	}, testLogger())
	require.NoError(t, c.Connect(context.Background(), "tok", false))
	defer c.Close()

	select {
	case msg := <-received:
		assert.Equal(t, 2, msg.SenderID)
		assert.Equal(t, "hola", msg.Content)
	case <-time.After(2 * time.Second):
		t.Fatal("message was not dispatched")
	}
}

func TestDispatch_UserStatusChanged(t *testing.T) {
	url := testServer(t, func(conn *websocket.Conn) {
		readEvent(t, conn)
		require.NoError(t, conn.WriteJSON(Event{
			Name: EventUserStatusChanged,
			Data: json.RawMessage(`{"user_id":5,"is_active":true}`),
		}))
		holdOpen(conn)
	})

	type status struct {
		userID   int
		isActive bool
	}
	received := make(chan status, 1)
	c := NewChannel(url, Handlers{
		OnUserStatusChanged: func(userID int, isActive bool) {
			received <- status{userID, isActive}
		},
	}, testLogger())
	require.NoError(t, c.Connect(context.Background(), "tok", false))
	defer c.Close()

	select {
	case s := <-received:
		assert.Equal(t, 5, s.userID)
		assert.True(t, s.isActive)
	case <-time.After(2 * time.Second):
		t.Fatal("status was not dispatched")
	}
}

func TestDispatch_IgnoresUnknownEvents(t *testing.T) {
	url := testServer(t, func(conn *websocket.Conn) {
		readEvent(t, conn)
		require.NoError(t, conn.WriteJSON(Event{Name: "totally_new_event"}))
		data, _ := json.Marshal(models.Message{SenderID: 9, Content: "sigue vivo"})
		require.NoError(t, conn.WriteJSON(Event{Name: EventNewMessage, Data: data}))
		holdOpen(conn)
	})

	received := make(chan models.Message, 1)
	c := NewChannel(url, Handlers{
		OnNewMessage: func(msg models.Message) { received <- msg },
	}, testLogger())
	require.NoError(t, c.Connect(context.Background(), "tok", false))
	defer c.Close()

	select {
	case msg := <-received:
		assert.Equal(t, 9, msg.SenderID)
	case <-time.After(2 * time.Second):
		t.Fatal("channel stopped after unknown event")
	}
}

func TestSendPrivateMessage(t *testing.T) {
	got := make(chan Event, 2)
	url := testServer(t, func(conn *websocket.Conn) {
		got <- readEvent(t, conn) // authenticate
		got <- readEvent(t, conn) // private_message
		holdOpen(conn)
	})

	c := NewChannel(url, Handlers{}, testLogger())
	require.NoError(t, c.Connect(context.Background(), "tok", false))
	defer c.Close()

	<-got // authenticate
	require.NoError(t, c.SendPrivateMessage("tok", 7, "hola Pedro"))

	select {
	case event := <-got:
		assert.Equal(t, EventPrivateMessage, event.Name)
		assert.JSONEq(t, `{"token":"tok","recipient_id":7,"content":"hola Pedro","auto_delete":false}`, string(event.Data))
	case <-time.After(2 * time.Second):
		t.Fatal("private message was not written")
	}
}

func TestSend_AfterServerDropReportsNotConnected(t *testing.T) {
	url := testServer(t, func(conn *websocket.Conn) {
		readEvent(t, conn) // authenticate
		conn.Close()
	})

	lost := make(chan struct{})
	c := NewChannel(url, Handlers{
		OnDisconnect: func(error) { close(lost) },
	}, testLogger())
	require.NoError(t, c.Connect(context.Background(), "tok", false))

	select {
	case <-lost:
	case <-time.After(2 * time.Second):
		t.Fatal("channel never noticed the dropped connection")
	}

	// The queue has room, but a torn-down channel must refuse the event
	// instead of buffering it for a pump that no longer runs.
	err := c.SendPrivateMessage("tok", 7, "hola")
	assert.ErrorIs(t, err, ErrNotConnected)
	assert.Equal(t, Disconnected, c.State())
}

func TestSend_WhenDisconnected(t *testing.T) {
	c := NewChannel("ws://127.0.0.1:1", Handlers{}, testLogger())
	err := c.SendPrivateMessage("tok", 1, "hola")
	assert.ErrorIs(t, err, ErrNotConnected)
}
