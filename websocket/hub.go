package websocket

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

// Client is one connected dashboard session.
type Client struct {
	ID   uuid.UUID
	Conn *websocket.Conn
}

// Event is what the dashboard receives: new bookings appearing and booking
// status changes.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

var clients = make(map[uuid.UUID]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Broadcast = make(chan *Event, 16)

// RunHub fans events out to every connected dashboard. Start it once from
// main.
func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Dashboard client connected: %s", client.ID)
			clientsMu.Lock()
			clients[client.ID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Dashboard client disconnected: %s", client.ID)
			clientsMu.Lock()
			if conn, ok := clients[client.ID]; ok && conn == client.Conn {
				delete(clients, client.ID)
			}
			clientsMu.Unlock()
		case event := <-Broadcast:
			var stale []uuid.UUID
			clientsMu.RLock()
			for id, conn := range clients {
				if err := conn.WriteJSON(event); err != nil {
					log.Printf("Error sending event to client %s: %v", id, err)
					conn.Close()
					stale = append(stale, id)
				}
			}
			clientsMu.RUnlock()
			if len(stale) > 0 {
				clientsMu.Lock()
				for _, id := range stale {
					delete(clients, id)
				}
				clientsMu.Unlock()
			}
		}
	}
}
