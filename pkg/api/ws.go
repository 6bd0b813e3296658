package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/statuskite/statuskite/pkg/models"
)

const clientBuffer = 16

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The status stream is public, same as the status page itself.
	CheckOrigin: func(*http.Request) bool { return true },
}

// transitionEvent is the wire format pushed to websocket subscribers.
type transitionEvent struct {
	Type        string  `json:"type"`
	MonitorID   int64   `json:"monitor_id"`
	MonitorName string  `json:"monitor_name"`
	Status      string  `json:"status"`
	Uptime      float64 `json:"uptime"`
	Timestamp   string  `json:"timestamp"`
}

// Hub fans status transitions out to connected websocket clients. It
// implements monitoring.TransitionListener. Slow clients are dropped
// rather than allowed to stall the broadcast.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]chan []byte
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]chan []byte)}
}

// NotifyTransition broadcasts the transition to all subscribers.
func (h *Hub) NotifyTransition(_ context.Context, monitor *models.Monitor, transition *models.StatusTransition) {
	event := transitionEvent{
		Type:        "status_change",
		MonitorID:   monitor.ID,
		MonitorName: monitor.Name,
		Status:      transition.Status,
		Uptime:      monitor.Uptime,
		Timestamp:   transition.Timestamp.UTC().Format(time.RFC3339),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("Error marshaling transition event: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for conn, send := range h.clients {
		select {
		case send <- payload:
		default:
			log.Printf("Dropping slow websocket client %s", conn.RemoteAddr())
			h.removeLocked(conn)
		}
	}
}

// ServeHTTP upgrades the connection and streams transition events until
// the client goes away.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Error upgrading websocket: %v", err)
		return
	}

	send := make(chan []byte, clientBuffer)

	h.mu.Lock()
	h.clients[conn] = send
	h.mu.Unlock()

	go h.writeLoop(conn, send)
	h.readLoop(conn)
}

// ClientCount reports the number of connected subscribers.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.clients)
}

func (h *Hub) writeLoop(conn *websocket.Conn, send chan []byte) {
	for payload := range send {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.remove(conn)
			return
		}
	}
}

// readLoop drains client frames so pings are answered; any read error
// means the client is gone.
func (h *Hub) readLoop(conn *websocket.Conn) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.remove(conn)
			return
		}
	}
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.removeLocked(conn)
}

func (h *Hub) removeLocked(conn *websocket.Conn) {
	if send, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		close(send)
	}

	_ = conn.Close()
}
