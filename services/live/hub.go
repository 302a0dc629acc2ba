// Package live pushes schedule views to the browser tabs of a session over websockets.
package live

import (
	"net/http"
	"sync"
	"time"

	"dayplanner/models"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait = 5 * time.Second
	pongWait  = 60 * time.Second
)

// Message is the JSON frame sent to clients.
type Message struct {
	Type     string               `json:"type"`
	Schedule *models.ScheduleView `json:"schedule"`
}

// client is one open connection. mu serializes data frames; pings go
// through WriteControl, which gorilla allows concurrently with writers.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
	done chan struct{}
	once sync.Once
}

func (c *client) close() {
	c.once.Do(func() {
		close(c.done)
		c.conn.Close()
	})
}

func (c *client) write(msg Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(msg)
}

// Hub tracks the open connections of every session.
type Hub struct {
	upgrader websocket.Upgrader
	logger   *zap.Logger

	// pongWait bounds how long a silent peer is kept; pings go out every pingPeriod.
	pongWait   time.Duration
	pingPeriod time.Duration

	mu      sync.Mutex
	clients map[string]map[*client]struct{}
}

func NewHub(logger *zap.Logger, checkOrigin func(r *http.Request) bool) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		upgrader:   websocket.Upgrader{CheckOrigin: checkOrigin},
		logger:     logger,
		pongWait:   pongWait,
		pingPeriod: pongWait * 9 / 10,
		clients:    make(map[string]map[*client]struct{}),
	}
}

// Serve upgrades the request, sends initial and keeps the connection
// registered under sessionID until the client goes away.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, sessionID string, initial *models.ScheduleView) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	c := &client{conn: conn, done: make(chan struct{})}

	// A Publish that sees c blocks on c.mu until the snapshot is out.
	c.mu.Lock()
	h.mu.Lock()
	if h.clients[sessionID] == nil {
		h.clients[sessionID] = make(map[*client]struct{})
	}
	h.clients[sessionID][c] = struct{}{}
	h.mu.Unlock()
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	err = conn.WriteJSON(Message{Type: "snapshot", Schedule: initial})
	c.mu.Unlock()
	if err != nil {
		h.remove(sessionID, c)
		return err
	}
	h.logger.Debug("Live client connected", zap.String("session_id", sessionID))

	conn.SetReadDeadline(time.Now().Add(h.pongWait))
	conn.SetPongHandler(func(string) error { return conn.SetReadDeadline(time.Now().Add(h.pongWait)) })

	go h.ping(sessionID, c)
	go func() {
		defer h.remove(sessionID, c)
		for {
			// Clients never send anything meaningful; reading only processes pongs and detects close.
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
	return nil
}

func (h *Hub) ping(sessionID string, c *client) {
	ticker := time.NewTicker(h.pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				h.remove(sessionID, c)
				return
			}
		}
	}
}

// Publish sends view to every connection of sessionID. Connections that fail are dropped.
func (h *Hub) Publish(sessionID string, view *models.ScheduleView) {
	h.mu.Lock()
	targets := make([]*client, 0, len(h.clients[sessionID]))
	for c := range h.clients[sessionID] {
		targets = append(targets, c)
	}
	h.mu.Unlock()

	msg := Message{Type: "update", Schedule: view}
	for _, c := range targets {
		if err := c.write(msg); err != nil {
			h.logger.Debug("Dropping live client", zap.String("session_id", sessionID), zap.Error(err))
			h.remove(sessionID, c)
		}
	}
}

// Count returns the number of open connections for sessionID.
func (h *Hub) Count(sessionID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients[sessionID])
}

// Close disconnects every client.
func (h *Hub) Close() {
	h.mu.Lock()
	var all []*client
	for sid, conns := range h.clients {
		for c := range conns {
			all = append(all, c)
		}
		delete(h.clients, sid)
	}
	h.mu.Unlock()

	for _, c := range all {
		c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(writeWait))
		c.close()
	}
}

func (h *Hub) remove(sessionID string, c *client) {
	h.mu.Lock()
	if conns, ok := h.clients[sessionID]; ok {
		if _, registered := conns[c]; registered {
			delete(conns, c)
			h.logger.Debug("Live client disconnected", zap.String("session_id", sessionID))
		}
		if len(conns) == 0 {
			delete(h.clients, sessionID)
		}
	}
	h.mu.Unlock()
	c.close()
}
