package services

import (
	"encoding/json"
	"sync"

	"healthscan/models"

	"github.com/gorilla/websocket"
)

// Event kinds pushed to chat sockets.
const (
	EventSession = "session"
	EventMessage = "message"
	EventTyping  = "typing"
	EventError   = "error"
)

type ChatEvent struct {
	Kind      string              `json:"kind"`
	SessionID string              `json:"session_id,omitempty"`
	Message   *models.ChatMessage `json:"message,omitempty"`
	Session   *models.ChatSession `json:"session,omitempty"`
	Error     string              `json:"error,omitempty"`
}

// WSClient is one socket attached to a chat session. Writes are serialised
// because a websocket connection supports a single concurrent writer.
type WSClient struct {
	SessionID string
	Conn      *websocket.Conn
	writeMu   sync.Mutex
}

func (c *WSClient) Send(ev ChatEvent) error {
	msg, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return c.write(websocket.TextMessage, msg)
}

func (c *WSClient) Ping() error {
	return c.write(websocket.PingMessage, nil)
}

func (c *WSClient) write(kind int, data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.Conn.WriteMessage(kind, data)
}

// ChatHub fans session events out to every socket watching that session, so
// a reply sent over REST also shows up on open sockets.
type ChatHub struct {
	mu      sync.RWMutex
	clients map[string]map[*WSClient]struct{}
}

func NewChatHub() *ChatHub {
	return &ChatHub{clients: make(map[string]map[*WSClient]struct{})}
}

func (h *ChatHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.SessionID] == nil {
		h.clients[c.SessionID] = make(map[*WSClient]struct{})
	}
	h.clients[c.SessionID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *ChatHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.SessionID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.SessionID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

// Watchers returns how many sockets are attached to sessionID.
func (h *ChatHub) Watchers(sessionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[sessionID])
}

func (h *ChatHub) Broadcast(sessionID string, ev ChatEvent) {
	ev.SessionID = sessionID
	h.mu.RLock()
	targets := make([]*WSClient, 0, len(h.clients[sessionID]))
	for c := range h.clients[sessionID] {
		targets = append(targets, c)
	}
	h.mu.RUnlock()
	for _, c := range targets {
		_ = c.Send(ev)
	}
}
