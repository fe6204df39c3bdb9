package handlers

import (
	"fmt"

	"github.com/anjiri1684/trivia_api/services"
	feed "github.com/anjiri1684/trivia_api/websocket"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func RequireUpgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fmt.Errorf("%w: websocket upgrade required", services.ErrBadRequest)
	}
	return c.Next()
}

// ServeFeed keeps conn registered on hub until the peer goes away. Inbound
// messages are read and discarded.
func ServeFeed(hub *feed.Hub) func(*websocket.Conn) {
	return func(conn *websocket.Conn) {
		hub.Register(conn)
		defer hub.Unregister(conn)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}
}
