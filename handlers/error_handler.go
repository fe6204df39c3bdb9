package handlers

import (
	"errors"
	"log"

	"github.com/anjiri1684/trivia_api/services"
	"github.com/gofiber/fiber/v2"
)

const (
	MsgBadRequest    = "Bad Request, pls check your inputs"
	MsgNotFound      = "Resource not found"
	MsgUnprocessable = "Unprocessable Entity"
	MsgInternal      = "Unable to load questions. Please try your request again"
)

var messages = map[int]string{
	fiber.StatusBadRequest:          MsgBadRequest,
	fiber.StatusNotFound:            MsgNotFound,
	fiber.StatusUnprocessableEntity: MsgUnprocessable,
	fiber.StatusInternalServerError: MsgInternal,
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorHandler is the app-wide Fiber error handler. Every error ends up as
// one of four fixed responses.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := StatusFor(err)

	log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
	return c.Status(code).JSON(ErrorResponse{Success: false, Message: messages[code]})
}

// StatusFor maps service and framework errors onto 400, 404, 422 or 500.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrBadRequest):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrUnprocessable):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, services.ErrInternal):
		return fiber.StatusInternalServerError
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		switch {
		case fe.Code == fiber.StatusNotFound, fe.Code == fiber.StatusMethodNotAllowed:
			return fiber.StatusNotFound
		case fe.Code == fiber.StatusUnprocessableEntity:
			return fiber.StatusUnprocessableEntity
		case fe.Code >= 400 && fe.Code < 500:
			return fiber.StatusBadRequest
		}
	}
	return fiber.StatusInternalServerError
}
