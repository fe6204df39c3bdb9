package handlers

import (
	"fmt"

	"github.com/anjiri1684/trivia_api/services"
	"github.com/gofiber/fiber/v2"
)

type QuestionHandler struct {
	questions *services.QuestionService
}

func NewQuestionHandler(questions *services.QuestionService) *QuestionHandler {
	return &QuestionHandler{questions: questions}
}

// QuestionRequest is the body of POST /questions. A present searchTerm key
// turns the request into a search.
type QuestionRequest struct {
	SearchTerm *string   `json:"searchTerm"`
	Question   looseText `json:"question"`
	Answer     looseText `json:"answer"`
	Difficulty looseText `json:"difficulty"`
	Category   looseText `json:"category"`
}

func (r QuestionRequest) toNewQuestion() services.NewQuestion {
	return services.NewQuestion{
		Question:   string(r.Question),
		Answer:     string(r.Answer),
		Difficulty: string(r.Difficulty),
		Category:   string(r.Category),
	}
}

// IsSearchRequest reports whether the body of c carries a searchTerm key.
func IsSearchRequest(c *fiber.Ctx) bool {
	var req struct {
		SearchTerm *string `json:"searchTerm"`
	}
	if err := c.App().Config().JSONDecoder(c.Body(), &req); err != nil {
		return false
	}
	return req.SearchTerm != nil
}

func (h *QuestionHandler) ListQuestions(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)

	result, err := h.questions.ListQuestions(c.UserContext(), page)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"questions":       result.Questions,
		"total_questions": result.TotalQuestions,
		"categories":      result.Categories,
	})
}

func (h *QuestionHandler) DeleteQuestion(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrNotFound
	}
	if id < 0 {
		return fmt.Errorf("%w: question %d does not exist", services.ErrUnprocessable, id)
	}

	if err := h.questions.DeleteQuestion(c.UserContext(), uint(id)); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Successfully deleted",
	})
}

// PostQuestions serves both creation and search on POST /questions.
func (h *QuestionHandler) PostQuestions(c *fiber.Ctx) error {
	var req QuestionRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	if req.SearchTerm != nil {
		return h.search(c, *req.SearchTerm)
	}
	return h.create(c, req)
}

func (h *QuestionHandler) CreateQuestion(c *fiber.Ctx) error {
	var req QuestionRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	return h.create(c, req)
}

func (h *QuestionHandler) SearchQuestions(c *fiber.Ctx) error {
	var req QuestionRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	term := ""
	if req.SearchTerm != nil {
		term = *req.SearchTerm
	}
	return h.search(c, term)
}

func (h *QuestionHandler) create(c *fiber.Ctx, req QuestionRequest) error {
	if _, err := h.questions.CreateQuestion(c.UserContext(), req.toNewQuestion()); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Successfully Created!",
	})
}

func (h *QuestionHandler) search(c *fiber.Ctx, term string) error {
	questions, err := h.questions.SearchQuestions(c.UserContext(), term)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"questions": questions,
	})
}
