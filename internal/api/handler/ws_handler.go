package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"bloodconnect/backend/internal/ws"
	"bloodconnect/backend/pkg/response"
)

// WSHandler upgrades board clients onto the live request-event feed.
type WSHandler struct {
	hub      *ws.Hub
	upgrader websocket.Upgrader
}

// NewWSHandler creates a WSHandler. hub may be nil when the feed is
// disabled; connections are then refused.
func NewWSHandler(hub *ws.Hub) *WSHandler {
	return &WSHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// origin policy is enforced by the CORS middleware layer
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Subscribe upgrades the connection and parks it on the hub. The read loop
// only consumes control frames; clients never send data.
// GET /api/v1/ws/donation-requests
func (h *WSHandler) Subscribe(c *gin.Context) {
	if h.hub == nil {
		response.Error(c, http.StatusServiceUnavailable, 15001, "live feed is disabled")
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error
		return
	}

	h.hub.Register(conn)

	go func() {
		defer h.hub.Unregister(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
