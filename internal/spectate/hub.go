// Package spectate streams game frames to read-only watchers over
// WebSocket.
package spectate

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/frog-chase/internal/games/frogchase"
	"github.com/vovakirdan/frog-chase/internal/registry"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Watchers never send anything but control frames.
	maxMessageSize = 512

	sendBuffer = 64
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// Message is what watchers receive.
type Message struct {
	Event string           `json:"event"`
	Frame *frogchase.Frame `json:"frame,omitempty"`
}

type client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// Hub fans frames out to connected watchers. Publish never blocks the
// game loop; if the hub falls behind only the newest frame is kept.
type Hub struct {
	clients    map[*client]bool
	frames     chan frogchase.Frame
	register   chan *client
	unregister chan *client
	done       chan struct{}
	logger     *log.Logger

	mu     sync.RWMutex
	latest *frogchase.Frame
}

// NewHub creates an idle hub. Call Run to start it.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.Default()
	}
	return &Hub{
		clients:    make(map[*client]bool),
		frames:     make(chan frogchase.Frame, 1),
		register:   make(chan *client),
		unregister: make(chan *client),
		done:       make(chan struct{}),
		logger:     logger.WithPrefix("spectate"),
	}
}

// Run is the hub's event loop. It returns when ctx is done, closing
// every watcher.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				h.drop(c)
			}
			return

		case c := <-h.register:
			h.clients[c] = true
			h.logger.Info("watcher joined", "remote", c.conn.RemoteAddr().String(), "watchers", len(h.clients))
			if f := h.Latest(); f != nil {
				h.deliver(c, encode(f))
			}

		case c := <-h.unregister:
			if h.clients[c] {
				h.drop(c)
				h.logger.Info("watcher left", "watchers", len(h.clients))
			}

		case f := <-h.frames:
			data := encode(&f)
			for c := range h.clients {
				h.deliver(c, data)
			}
		}
	}
}

func encode(f *frogchase.Frame) []byte {
	data, _ := json.Marshal(Message{Event: "frame", Frame: f})
	return data
}

// deliver drops watchers that stopped reading.
func (h *Hub) deliver(c *client, data []byte) {
	select {
	case c.send <- data:
	default:
		h.drop(c)
	}
}

func (h *Hub) drop(c *client) {
	delete(h.clients, c)
	close(c.send)
}

// Publish records f as the latest frame and queues it for watchers.
func (h *Hub) Publish(f frogchase.Frame) {
	h.mu.Lock()
	h.latest = &f
	h.mu.Unlock()

	select {
	case h.frames <- f:
		return
	default:
	}
	// Replace the stale queued frame.
	select {
	case <-h.frames:
	default:
	}
	select {
	case h.frames <- f:
	default:
	}
}

// Observe publishes the frame of a Frog Chase game; other games are ignored.
// It matches the hosts' per-tick observer hook.
func (h *Hub) Observe(g registry.Game) {
	if fg, ok := g.(*frogchase.Game); ok {
		h.Publish(fg.Frame())
	}
}

// Latest returns the last published frame, or nil before the first one.
func (h *Hub) Latest() *frogchase.Frame {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.latest
}

// ServeWS upgrades the request and registers the connection as a watcher.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "err", err)
		return
	}

	c := &client{hub: h, conn: conn, send: make(chan []byte, sendBuffer)}
	select {
	case h.register <- c:
	case <-h.done:
		conn.Close()
		return
	case <-r.Context().Done():
		conn.Close()
		return
	}

	go c.writePump()
	go c.readPump()
}

// readPump only services control frames and notices disconnects.
func (c *client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Debug("watcher read error", "err", err)
			}
			return
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
