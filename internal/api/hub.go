package api

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub fans every message of the WebSocket lab out to all connected
// clients, verbatim.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]*sync.Mutex
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]*sync.Mutex)}
}

func (h *Hub) add(ws *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[ws] = &sync.Mutex{}
}

func (h *Hub) remove(ws *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, ws)
}

// Len returns the number of connected clients.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) Broadcast(msg []byte) {
	h.mu.Lock()
	targets := make(map[*websocket.Conn]*sync.Mutex, len(h.clients))
	for ws, wmu := range h.clients {
		targets[ws] = wmu
	}
	h.mu.Unlock()

	for ws, wmu := range targets {
		wmu.Lock()
		err := ws.WriteMessage(websocket.TextMessage, msg)
		wmu.Unlock()
		if err != nil {
			log.Printf("AVISO [Hub]: Erro ao escrever no ws: %v", err)
			h.remove(ws)
			ws.Close()
		}
	}
}
