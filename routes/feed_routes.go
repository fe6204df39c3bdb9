package routes

import (
	"github.com/anjiri1684/trivia_api/handlers"
	feed "github.com/anjiri1684/trivia_api/websocket"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func FeedRoutes(app *fiber.App, hub *feed.Hub) {
	app.Use("/ws", handlers.RequireUpgrade)
	app.Get("/ws/questions", websocket.New(handlers.ServeFeed(hub)))
}
