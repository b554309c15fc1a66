package websocket

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Notification types pushed to connected dashboards
const (
	NotificationTypeRequestCreated = "request_created"
	NotificationTypeRequestStatus  = "request_status"
	NotificationTypeAgentAssigned  = "agent_assigned"
)

// Notification represents a message sent over WebSocket
type Notification struct {
	Type    string      `json:"type"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Client represents a connected WebSocket client
type Client struct {
	Conn *websocket.Conn
}

// Hub maintains the set of active clients and broadcasts lifecycle events
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan Notification
	mu         sync.RWMutex
}

// NewHub creates a new Hub instance
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Notification, 64),
	}
}

// Run starts the hub's event loop
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.Conn.Close()
			}
			h.mu.Unlock()
		case notification := <-h.broadcast:
			h.mu.RLock()
			for client := range h.clients {
				client.Conn.WriteJSON(notification)
			}
			h.mu.RUnlock()
		}
	}
}

// ClientCount reports the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast queues a notification for all connected clients without blocking
// the caller. Events are dropped when the queue is full.
func (h *Hub) Broadcast(notification Notification) {
	select {
	case h.broadcast <- notification:
	default:
	}
}

// NotifyRequestCreated announces a newly created service request
func (h *Hub) NotifyRequestCreated(data interface{}) {
	h.Broadcast(Notification{
		Type:    NotificationTypeRequestCreated,
		Message: "New service request received",
		Data:    data,
	})
}

// NotifyRequestStatus announces a lifecycle status change
func (h *Hub) NotifyRequestStatus(data interface{}) {
	h.Broadcast(Notification{
		Type:    NotificationTypeRequestStatus,
		Message: "Service request status updated",
		Data:    data,
	})
}

// NotifyAgentAssigned announces an agent assignment change
func (h *Hub) NotifyAgentAssigned(data interface{}) {
	h.Broadcast(Notification{
		Type:    NotificationTypeAgentAssigned,
		Message: "Agent assignment updated",
		Data:    data,
	})
}
