package routes

import (
	"github.com/anjiri1684/trivia_api/handlers"
	"github.com/gofiber/fiber/v2"
)

func CategoryRoutes(app *fiber.App, h *handlers.CategoryHandler) {
	categories := app.Group("/categories")
	categories.Get("", h.ListCategories)
	categories.Get("/:id<int>/questions", h.ListCategoryQuestions)
}
