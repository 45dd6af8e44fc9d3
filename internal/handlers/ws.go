package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Hub fans card events out to every connected WebSocket client.
type Hub struct {
	connections map[*websocket.Conn]bool
	mutex       sync.Mutex
}

func NewHub() *Hub {
	return &Hub{connections: make(map[*websocket.Conn]bool)}
}

// BroadcastCardCreated notifies every client that a card was created.
// Connections that fail to take the write are dropped.
func (hub *Hub) BroadcastCardCreated(id uuid.UUID, title string) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	message, err := json.Marshal(map[string]any{
		"event": "card_created",
		"id":    id,
		"title": title,
	})
	if err != nil {
		log.Printf("Failed to marshal card event: %v", err)
		return
	}

	for conn := range hub.connections {
		if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("Failed to send WebSocket message: %v", err)
			delete(hub.connections, conn)
			conn.Close()
		}
	}
}

func (hub *Hub) add(conn *websocket.Conn) {
	hub.mutex.Lock()
	hub.connections[conn] = true
	hub.mutex.Unlock()
}

func (hub *Hub) remove(conn *websocket.Conn) {
	hub.mutex.Lock()
	delete(hub.connections, conn)
	hub.mutex.Unlock()
}

func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true // Adjust for production (e.g., check specific origins)
		},
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	h.Hub.add(conn)

	// Drain the connection until the client goes away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.Hub.remove(conn)
			conn.Close()
			return
		}
	}
}
