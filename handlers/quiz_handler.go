package handlers

import (
	"fmt"
	"strconv"

	"github.com/anjiri1684/trivia_api/services"
	"github.com/gofiber/fiber/v2"
)

type QuizHandler struct {
	quiz *services.QuizService
}

func NewQuizHandler(quiz *services.QuizService) *QuizHandler {
	return &QuizHandler{quiz: quiz}
}

type QuizRequest struct {
	PreviousQuestions []uint `json:"previous_questions"`
	QuizCategory      *struct {
		ID looseText `json:"id"`
	} `json:"quiz_category"`
}

// Play returns the next quiz question. Category id 0 draws from every
// category.
func (h *QuizHandler) Play(c *fiber.Ctx) error {
	var req QuizRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if req.QuizCategory == nil {
		return fmt.Errorf("%w: quiz_category is required", services.ErrBadRequest)
	}

	categoryID, err := strconv.Atoi(string(req.QuizCategory.ID))
	if err != nil {
		return fmt.Errorf("%w: quiz_category.id: %v", services.ErrBadRequest, err)
	}

	question, err := h.quiz.NextQuestion(c.UserContext(), categoryID, req.PreviousQuestions)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"question": question,
	})
}
