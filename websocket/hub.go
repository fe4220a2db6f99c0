// Package websocket pushes booking and team lifecycle events to connected
// admin dashboards.
package websocket

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

type Client struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
}

// Event is one dashboard update. Type is "booking.created",
// "booking.cancelled", "team.created", "team.cancelled" or
// "user.status_changed"; Payload is the affected record.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

var clients = make(map[uuid.UUID]*websocket.Conn)
var clientsMu sync.RWMutex
var Register = make(chan *Client)
var Unregister = make(chan *Client)
var Broadcast = make(chan *Event, 16)

func RunHub() {
	for {
		select {
		case client := <-Register:
			log.Printf("Admin dashboard connected: %s", client.UserID)
			clientsMu.Lock()
			clients[client.UserID] = client.Conn
			clientsMu.Unlock()
		case client := <-Unregister:
			log.Printf("Admin dashboard disconnected: %s", client.UserID)
			clientsMu.Lock()
			if conn, ok := clients[client.UserID]; ok && conn == client.Conn {
				delete(clients, client.UserID)
			}
			clientsMu.Unlock()
		case event := <-Broadcast:
			clientsMu.RLock()
			var stale []uuid.UUID
			for userID, conn := range clients {
				if err := conn.WriteJSON(event); err != nil {
					log.Printf("Error sending event to admin %s: %v", userID, err)
					conn.Close()
					stale = append(stale, userID)
				}
			}
			clientsMu.RUnlock()
			if len(stale) > 0 {
				clientsMu.Lock()
				for _, userID := range stale {
					delete(clients, userID)
				}
				clientsMu.Unlock()
			}
		}
	}
}

// Publish hands an event to the hub without blocking the caller; events are
// dropped if the hub's buffer is full.
func Publish(eventType string, payload interface{}) {
	select {
	case Broadcast <- &Event{Type: eventType, Payload: payload}:
	default:
		log.Printf("Event buffer full, dropping %s event", eventType)
	}
}
