package broadcast

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Event is the frame pushed to every subscriber.
type Event struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub fans events out to all connected websocket subscribers. Delivery is
// best-effort: a failed write drops the connection, and subscribers that
// connect later never see earlier events.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]bool)}
}

// ServeWS upgrades the request and keeps the connection registered until the
// client goes away. Incoming frames are read only to detect disconnects.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logrus.WithError(err).Error("WebSocket upgrade failed")
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()
	logrus.WithField("remote", conn.RemoteAddr().String()).Info("subscriber connected")

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
		conn.Close()
		logrus.WithField("remote", conn.RemoteAddr().String()).Info("subscriber disconnected")
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// Publish sends the event to every connected subscriber. There is no ack and
// no retry; connections that fail to take the write are closed.
func (h *Hub) Publish(event string, payload interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		if err := conn.WriteJSON(Event{Event: event, Payload: payload}); err != nil {
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

// Count reports the number of connected subscribers.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}
