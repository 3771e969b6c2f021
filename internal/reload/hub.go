// Package reload pushes a reload signal to open pages when the theme file
// or the public directory changes on disk.
package reload

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const writeWait = 5 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Message is the frame sent to connected pages.
type Message struct {
	Type string `json:"type"`
}

type client struct {
	id   string
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) send(msg Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(msg)
}

// Hub tracks connected pages.
type Hub struct {
	mu      sync.Mutex
	clients map[string]*client
	logger  *slog.Logger
}

// NewHub returns an empty hub. A nil logger uses slog.Default.
func NewHub(logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		clients: make(map[string]*client),
		logger:  logger,
	}
}

// Handler upgrades the request and keeps the connection registered until the
// page goes away.
func (h *Hub) Handler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("reload: websocket upgrade", "err", err)
		return
	}

	c := &client{id: uuid.NewString(), conn: conn}
	h.add(c)
	defer func() {
		h.remove(c.id)
		conn.Close()
	}()

	// Pages never send anything; reading only detects the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("reload: websocket read", "client", c.id, "err", err)
			}
			return
		}
	}
}

// Broadcast tells every connected page to reload and returns how many
// pages were reached.
func (h *Hub) Broadcast() int {
	h.mu.Lock()
	clients := make([]*client, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	sent := 0
	for _, c := range clients {
		if err := c.send(Message{Type: "reload"}); err != nil {
			h.logger.Debug("reload: send failed", "client", c.id, "err", err)
			h.remove(c.id)
			c.conn.Close()
			continue
		}
		sent++
	}
	h.logger.Info("reload broadcast", "clients", sent)
	return sent
}

// Len reports the number of connected pages.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) add(c *client) {
	h.mu.Lock()
	h.clients[c.id] = c
	h.mu.Unlock()
	h.logger.Debug("reload: client connected", "client", c.id)
}

func (h *Hub) remove(id string) {
	h.mu.Lock()
	delete(h.clients, id)
	h.mu.Unlock()
}
