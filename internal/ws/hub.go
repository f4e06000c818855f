// Package ws pushes donation request lifecycle events to connected board
// clients over WebSocket. Every event is broadcast to every client; there
// are no per-client subscriptions.
package ws

import (
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"bloodconnect/backend/internal/dto"
)

// Message is the wire envelope for one event.
type Message struct {
	Event string               `json:"event"`
	Data  *dto.RequestResponse `json:"data"`
}

// Hub owns the client set. All mutation goes through the run loop; the
// exported methods only post to channels and never block on slow clients.
type Hub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan []byte
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	logger     *zap.Logger
}

// NewHub creates a hub. Call Run in its own goroutine before registering
// any client.
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		logger:     logger,
	}
}

// Run processes register/unregister/broadcast traffic until the process
// exits. Dead connections are swept on a timer.
func (h *Hub) Run() {
	ping := time.NewTicker(30 * time.Second)
	defer ping.Stop()

	for {
		select {
		case conn := <-h.register:
			h.clients[conn] = true
			h.logger.Info("websocket client connected",
				zap.Int("clients", len(h.clients)))

		case conn := <-h.unregister:
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.logger.Info("websocket client disconnected",
				zap.Int("clients", len(h.clients)))

		case message := <-h.broadcast:
			for conn := range h.clients {
				conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					h.logger.Warn("websocket write failed, dropping client", zap.Error(err))
					conn.Close()
					delete(h.clients, conn)
				}
			}

		case <-ping.C:
			for conn := range h.clients {
				conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					conn.Close()
					delete(h.clients, conn)
				}
			}
		}
	}
}

// Register hands a freshly upgraded connection to the hub.
func (h *Hub) Register(conn *websocket.Conn) {
	h.register <- conn
}

// Unregister removes a connection; safe to call more than once.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.unregister <- conn
}

// PublishRequestEvent broadcasts one lifecycle event. The event is dropped
// when the broadcast buffer is full rather than stalling the caller.
func (h *Hub) PublishRequestEvent(event string, req *dto.RequestResponse) {
	payload, err := json.Marshal(Message{Event: event, Data: req})
	if err != nil {
		h.logger.Error("marshal event failed", zap.Error(err))
		return
	}
	select {
	case h.broadcast <- payload:
	default:
		h.logger.Warn("event dropped, broadcast buffer full",
			zap.String("event", event))
	}
}
