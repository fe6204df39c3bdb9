package websocket

import (
	"context"
	"log"

	"github.com/anjiri1684/trivia_api/services"
)

const broadcastBuffer = 64

// Client is the part of a websocket connection the hub writes to.
type Client interface {
	WriteJSON(v interface{}) error
	Close() error
}

// Hub fans question events out to every connected feed client.
type Hub struct {
	clients    map[Client]struct{}
	register   chan Client
	unregister chan Client
	broadcast  chan services.QuestionEvent
	done       chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[Client]struct{}),
		register:   make(chan Client),
		unregister: make(chan Client),
		broadcast:  make(chan services.QuestionEvent, broadcastBuffer),
		done:       make(chan struct{}),
	}
}

// Register adds c to the feed. After Run has returned, c is closed instead.
func (h *Hub) Register(c Client) {
	select {
	case h.register <- c:
	case <-h.done:
		c.Close()
	}
}

func (h *Hub) Unregister(c Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Publish queues an event for delivery, dropping it if the hub is backed up.
func (h *Hub) Publish(event services.QuestionEvent) {
	select {
	case h.broadcast <- event:
	default:
		log.Printf("Feed backlog full, dropping %s for question %d", event.Event, event.Question.ID)
	}
}

// Run owns the client set until ctx is done, then closes every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				client.Close()
				delete(h.clients, client)
			}
			return
		case client := <-h.register:
			h.clients[client] = struct{}{}
			log.Printf("Feed client registered (%d connected)", len(h.clients))
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				log.Printf("Feed client unregistered (%d connected)", len(h.clients))
			}
		case event := <-h.broadcast:
			for client := range h.clients {
				if err := client.WriteJSON(event); err != nil {
					log.Printf("Error sending %s to feed client: %v", event.Event, err)
					client.Close()
					delete(h.clients, client)
				}
			}
		}
	}
}
