package handlers

import (
	"github.com/anjiri1684/trivia_api/services"
	"github.com/gofiber/fiber/v2"
)

func Health(questions *services.QuestionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := questions.Ping(c.UserContext()); err != nil {
			return err
		}
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	}
}
