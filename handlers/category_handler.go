package handlers

import (
	"github.com/anjiri1684/trivia_api/services"
	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	questions *services.QuestionService
}

func NewCategoryHandler(questions *services.QuestionService) *CategoryHandler {
	return &CategoryHandler{questions: questions}
}

func (h *CategoryHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := h.questions.ListCategories(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"categories": categories,
	})
}

func (h *CategoryHandler) ListCategoryQuestions(c *fiber.Ctx) error {
	categoryID, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrNotFound
	}

	questions, err := h.questions.QuestionsByCategory(c.UserContext(), categoryID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"questions":       questions,
		"totalQuestions":  len(questions),
		"currentCategory": categoryID,
	})
}
