package routes

import (
	"github.com/anjiri1684/trivia_api/handlers"
	"github.com/gofiber/fiber/v2"
)

func QuizRoutes(app *fiber.App, h *handlers.QuizHandler) {
	app.Post("/quizzes", h.Play)
}
