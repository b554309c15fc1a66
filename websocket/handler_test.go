package websocket

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

func dialTestHub(t *testing.T) (*Hub, *websocket.Conn) {
	t.Helper()

	hub := NewHub()
	go hub.Run()

	e := echo.New()
	e.GET("/ws", func(c echo.Context) error {
		return HandleWebSocket(c, hub)
	})
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return hub, conn
}

func TestHandleWebSocketGreetsBeforeRegistering(t *testing.T) {
	hub, conn := dialTestHub(t)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	// The greeting must be the first frame on the wire; it is written before
	// the hub can start broadcasting to this connection.
	var greeting Notification
	if err := conn.ReadJSON(&greeting); err != nil {
		t.Fatalf("read greeting: %v", err)
	}
	if greeting.Type != "connected" {
		t.Errorf("first frame type = %q, want connected", greeting.Type)
	}

	// Wait until the hub has picked up the registration before broadcasting
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered with hub")
		}
		time.Sleep(5 * time.Millisecond)
	}

	hub.NotifyRequestCreated(map[string]interface{}{"requestId": "abc123"})

	var event Notification
	if err := conn.ReadJSON(&event); err != nil {
		t.Fatalf("read broadcast: %v", err)
	}
	if event.Type != NotificationTypeRequestCreated {
		t.Errorf("broadcast type = %q, want %q", event.Type, NotificationTypeRequestCreated)
	}
}
