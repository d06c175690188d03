package network

import (
	"io"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lixenwraith/orbit-defense/core"
)

// ViewerID identifies a connected spectator
type ViewerID uint32

// viewer is one websocket spectator
type viewer struct {
	id   ViewerID
	conn *websocket.Conn
	send chan []byte

	done      chan struct{}
	closeOnce sync.Once
}

func (v *viewer) close() {
	v.closeOnce.Do(func() {
		close(v.done)
	})
}

// Hub fans frames out to websocket spectators
// Viewers are read-only, inbound messages are discarded
type Hub struct {
	config   *Config
	upgrader websocket.Upgrader
	logger   *log.Logger

	mu      sync.RWMutex
	viewers map[ViewerID]*viewer
	nextID  atomic.Uint32
	dropped atomic.Uint64
}

// NewHub creates a hub, nil config uses defaults
func NewHub(cfg *Config, logger *log.Logger) *Hub {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Hub{
		config: cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		logger:  logger,
		viewers: make(map[ViewerID]*viewer),
	}
}

// ServeHTTP upgrades a request into a spectator connection
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.Viewers() >= h.config.MaxViewers {
		http.Error(w, "too many viewers", http.StatusServiceUnavailable)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Printf("network: upgrade: %v", err)
		return
	}

	v := h.register(conn)
	h.logger.Printf("network: viewer %d connected from %s", v.id, conn.RemoteAddr())

	core.Go(func() { h.writePump(v) })
	core.Go(func() { h.readPump(v) })
}

// Broadcast encodes a frame once and queues it to every viewer
// Viewers whose queue is full are disconnected
func (h *Hub) Broadcast(f Frame) error {
	if h.Viewers() == 0 {
		return nil
	}
	data, err := f.Encode()
	if err != nil {
		return err
	}

	var slow []*viewer
	h.mu.RLock()
	for _, v := range h.viewers {
		select {
		case v.send <- data:
		default:
			slow = append(slow, v)
		}
	}
	h.mu.RUnlock()

	for _, v := range slow {
		h.logger.Printf("network: dropping slow viewer %d", v.id)
		h.dropped.Add(1)
		h.unregister(v)
	}
	return nil
}

// Viewers returns the number of connected spectators
func (h *Hub) Viewers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.viewers)
}

// Dropped returns the number of viewers disconnected for falling behind
func (h *Hub) Dropped() uint64 {
	return h.dropped.Load()
}

// Close disconnects every viewer
func (h *Hub) Close() {
	h.mu.Lock()
	viewers := h.viewers
	h.viewers = make(map[ViewerID]*viewer)
	h.mu.Unlock()

	for _, v := range viewers {
		v.close()
	}
}

func (h *Hub) register(conn *websocket.Conn) *viewer {
	v := &viewer{
		id:   ViewerID(h.nextID.Add(1)),
		conn: conn,
		send: make(chan []byte, h.config.SendQueueSize),
		done: make(chan struct{}),
	}
	h.mu.Lock()
	h.viewers[v.id] = v
	h.mu.Unlock()
	return v
}

func (h *Hub) unregister(v *viewer) {
	h.mu.Lock()
	delete(h.viewers, v.id)
	h.mu.Unlock()
	v.close()
}

// readPump discards inbound data and detects disconnects
func (h *Hub) readPump(v *viewer) {
	defer h.unregister(v)

	v.conn.SetReadLimit(512)
	_ = v.conn.SetReadDeadline(time.Now().Add(h.config.PongWait))
	v.conn.SetPongHandler(func(string) error {
		return v.conn.SetReadDeadline(time.Now().Add(h.config.PongWait))
	})

	for {
		if _, _, err := v.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(v *viewer) {
	ticker := time.NewTicker(h.config.PingInterval)
	defer func() {
		ticker.Stop()
		v.conn.Close()
		h.logger.Printf("network: viewer %d disconnected", v.id)
	}()

	for {
		select {
		case <-v.done:
			_ = v.conn.SetWriteDeadline(time.Now().Add(h.config.WriteTimeout))
			_ = v.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		case data := <-v.send:
			_ = v.conn.SetWriteDeadline(time.Now().Add(h.config.WriteTimeout))
			if err := v.conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
				h.unregister(v)
				return
			}
		case <-ticker.C:
			_ = v.conn.SetWriteDeadline(time.Now().Add(h.config.WriteTimeout))
			if err := v.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.unregister(v)
				return
			}
		}
	}
}
