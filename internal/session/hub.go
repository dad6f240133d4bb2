// Package session serves editor sessions over websockets. Every connection
// gets its own Editor, driven only by that connection's read loop.
package session

import (
	"log/slog"
	"sync"
)

// Hub tracks live sessions. Registration goes through channels consumed by
// Run so the registry has a single writer.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client // sessionID -> client

	register   chan *Client
	unregister chan *Client

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

// Run processes registrations until Stop is called.
func (h *Hub) Run() {
	defer close(h.done)
	for {
		select {
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		case <-h.stop:
			h.closeAll()
			return
		}
	}
}

// Stop closes every session and waits for Run to return.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.stop) })
	<-h.done
}

func (h *Hub) Register(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
		client.close()
	}
}

func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// Count returns the number of live sessions.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	h.clients[client.SessionID] = client
	n := len(h.clients)
	h.mu.Unlock()

	slog.Info("session opened", "session", client.SessionID, "client", client.ClientID, "sessions", n)
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	if _, ok := h.clients[client.SessionID]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.clients, client.SessionID)
	n := len(h.clients)
	h.mu.Unlock()

	client.close()
	slog.Info("session closed", "session", client.SessionID, "sessions", n)
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	clients := make([]*Client, 0, len(h.clients))
	for id, c := range h.clients {
		clients = append(clients, c)
		delete(h.clients, id)
	}
	h.mu.Unlock()

	for _, c := range clients {
		c.close()
	}
	slog.Info("all sessions closed", "count", len(clients))
}
