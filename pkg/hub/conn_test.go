package hub

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// dialTestConn upgrades a loopback WebSocket pair: the server side is
// wrapped in a Conn, the client side reads what the Conn writes.
func dialTestConn(t *testing.T) (*Conn, *websocket.Conn) {
	t.Helper()

	upgrader := websocket.Upgrader{}
	serverSide := make(chan *Conn, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		serverSide <- NewConn(ws)
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/"
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return <-serverSide, client
}

func TestConnSend(t *testing.T) {
	conn, client := dialTestConn(t)
	defer conn.Close()

	require.NoError(t, conn.Send(map[string]string{"message": "Server running"}))

	client.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := client.ReadMessage()
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "Server running", got["message"])
}

func TestConnSendAfterClose(t *testing.T) {
	conn, _ := dialTestConn(t)

	conn.Close()
	err := conn.Send("late")
	assert.ErrorIs(t, err, ErrConnClosed)

	// Close is idempotent
	conn.Close()
}

func TestConnSendUnmarshalable(t *testing.T) {
	conn, _ := dialTestConn(t)
	defer conn.Close()

	err := conn.Send(func() {})
	assert.Error(t, err, "functions cannot be marshaled")
}

func TestConnQueueOverflow(t *testing.T) {
	conn, client := dialTestConn(t)
	// the client never reads, so the write side eventually backs up
	_ = client

	var overflowed bool
	for range 10000 {
		if err := conn.Send(strings.Repeat("x", 4096)); err != nil {
			assert.ErrorIs(t, err, ErrQueueFull)
			overflowed = true
			break
		}
	}

	if overflowed {
		// overflow drops the connection, so it reads as closed
		assert.ErrorIs(t, conn.Send("more"), ErrConnClosed)
	}
}

func TestConnID(t *testing.T) {
	a, _ := dialTestConn(t)
	defer a.Close()
	b, _ := dialTestConn(t)
	defer b.Close()

	assert.NotEqual(t, a.ID(), b.ID())
}
