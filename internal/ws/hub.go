package ws

import (
	"encoding/json"
	"sync"

	"focusflow/internal/logger"
)

// Hub fans progression events out to every connection a user has open.
// It implements service.Notifier; publishing to a user with no connections
// is a no-op.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[string]map[*Client]struct{})}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.clients[c.UserID]
	if !ok {
		set = make(map[*Client]struct{})
		h.clients[c.UserID] = set
	}
	set[c] = struct{}{}
}

func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set, ok := h.clients[c.UserID]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
}

// Publish marshals the event and queues it on every open connection of the
// user. A connection with a full send buffer is skipped rather than blocked
// on; the write pump's deadline will reap it if it is truly stuck.
func (h *Hub) Publish(userID string, event any) {
	msg, err := json.Marshal(event)
	if err != nil {
		logger.Error("ws event marshal failed", "user_id", userID, "err", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients[userID] {
		select {
		case c.Send <- msg:
		default:
			logger.Warn("ws send buffer full, dropping event", "user_id", userID)
		}
	}
}
