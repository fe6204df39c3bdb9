package routes

import (
	"time"

	"github.com/anjiri1684/trivia_api/handlers"
	"github.com/anjiri1684/trivia_api/middleware"
	"github.com/anjiri1684/trivia_api/services"
	feed "github.com/anjiri1684/trivia_api/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// Deps is everything the HTTP layer needs from the composition root.
type Deps struct {
	Questions      *services.QuestionService
	Quiz           *services.QuizService
	Hub            *feed.Hub
	AdminJWTSecret string
	PrintRoutes    bool
}

func NewApp(deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:           "Trivia API",
		CaseSensitive:     true,
		StrictRouting:     true,
		EnablePrintRoutes: deps.PrintRoutes,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorHandler:      handlers.ErrorHandler,
	})

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(middleware.AccessControl())
	app.Use(middleware.CORS())
	app.Use(recover.New())

	app.Get("/health", handlers.Health(deps.Questions))

	CategoryRoutes(app, handlers.NewCategoryHandler(deps.Questions))
	QuestionRoutes(app, handlers.NewQuestionHandler(deps.Questions), deps.AdminJWTSecret)
	QuizRoutes(app, handlers.NewQuizHandler(deps.Quiz))
	if deps.Hub != nil {
		FeedRoutes(app, deps.Hub)
	}

	return app
}
