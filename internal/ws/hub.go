package ws

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"medequip_server/internal/models"
	"medequip_server/pkg/colors"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Alert lifecycle events broadcast over the feed
const (
	AlertEventCreated           = "created"
	AlertEventUpdated           = "updated"
	AlertEventCanceled          = "canceled"
	AlertEventDispatchAttempted = "dispatch_attempted"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow connections from any origin in development
		return true
	},
}

// AlertEvent is the message sent to feed subscribers
type AlertEvent struct {
	Type      string        `json:"type"`
	Event     string        `json:"event"`
	Timestamp string        `json:"timestamp"`
	Data      *models.Alert `json:"data"`
}

type hub struct {
	clients map[*websocket.Conn]bool
	mutex   sync.RWMutex
}

var feed = &hub{clients: make(map[*websocket.Conn]bool)}

// HandleAlertFeed upgrades the connection and keeps it subscribed until the
// client goes away
func HandleAlertFeed(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		colors.PrintError("WebSocket upgrade failed: %v", err)
		return
	}

	feed.mutex.Lock()
	feed.clients[conn] = true
	clientCount := len(feed.clients)
	feed.mutex.Unlock()

	colors.PrintConnection("🔌", "Alert feed client connected (%d active)", clientCount)

	defer func() {
		feed.mutex.Lock()
		delete(feed.clients, conn)
		feed.mutex.Unlock()
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// BroadcastAlertEvent publishes an alert lifecycle event to all subscribers.
// Send failures drop the client; nothing here blocks the caller's request.
func BroadcastAlertEvent(event string, alert *models.Alert) {
	message := AlertEvent{
		Type:      "alert_event",
		Event:     event,
		Timestamp: time.Now().Format(time.RFC3339),
		Data:      alert,
	}

	payload, err := json.Marshal(message)
	if err != nil {
		colors.PrintError("Failed to encode alert event: %v", err)
		return
	}

	feed.mutex.Lock()
	defer feed.mutex.Unlock()
	for conn := range feed.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			conn.Close()
			delete(feed.clients, conn)
		}
	}
}
