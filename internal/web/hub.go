package web

import (
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const hubWriteTimeout = 5 * time.Second

var hubUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		host := strings.ToLower(strings.TrimSpace(r.Host))
		originHost := strings.ToLower(strings.TrimSpace(u.Host))
		return host == originHost
	},
}

// Hub fans rebuild events out to connected browsers so an open status
// page can refresh itself without polling.
type Hub struct {
	logger *zap.Logger
	mu     sync.Mutex
	conns  map[*websocket.Conn]struct{}
}

func NewHub(l *zap.Logger) *Hub {
	return &Hub{
		logger: l,
		conns:  make(map[*websocket.Conn]struct{}),
	}
}

func (h *Hub) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := hubUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	h.add(conn)
	defer h.remove(conn)

	// Block until the client goes away; inbound frames are ignored.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

type rebuildEvent struct {
	Event string    `json:"event"`
	At    time.Time `json:"at"`
}

// Rebuilt notifies every connected client that the page was regenerated.
// Dead connections are dropped on write failure.
func (h *Hub) Rebuilt(at time.Time) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.conns {
		_ = conn.SetWriteDeadline(time.Now().Add(hubWriteTimeout))
		if err := conn.WriteJSON(rebuildEvent{Event: "rebuilt", At: at.UTC()}); err != nil {
			h.logger.Debug("hub_write_error", zap.Error(err))
			conn.Close()
			delete(h.conns, conn)
		}
	}
}

// ClientCount reports the number of connected listeners.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

func (h *Hub) add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = struct{}{}
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	conn.Close()
	delete(h.conns, conn)
}
