package routes

import (
	"github.com/anjiri1684/trivia_api/handlers"
	"github.com/anjiri1684/trivia_api/middleware"
	"github.com/gofiber/fiber/v2"
)

// QuestionRoutes mounts the question endpoints. With an admin secret set,
// deleting and creating questions needs an admin token; searching never does.
func QuestionRoutes(app *fiber.App, h *handlers.QuestionHandler, adminSecret string) {
	questions := app.Group("/questions")

	questions.Get("", h.ListQuestions)
	questions.Post("", chain(middleware.AdminOnly(adminSecret, handlers.IsSearchRequest), h.PostQuestions)...)
	questions.Post("/create", chain(middleware.AdminOnly(adminSecret, nil), h.CreateQuestion)...)
	questions.Post("/search", h.SearchQuestions)
	questions.Delete("/:id<int>", chain(middleware.AdminOnly(adminSecret, nil), h.DeleteQuestion)...)
}

func chain(guards []fiber.Handler, handler fiber.Handler) []fiber.Handler {
	return append(guards, handler)
}
