package handlers

import (
	"errors"
	"log/slog"

	"github.com/Dicon-MoodLight/moodlight-server/internal/dto"
	"github.com/Dicon-MoodLight/moodlight-server/internal/services"
	"github.com/gofiber/fiber/v2"
)

// statusFor is the single translation point from workflow errors to HTTP
// statuses. Anything unrecognized is an internal error.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrNicknameTaken),
		errors.Is(err, services.ErrQuestionTaken),
		errors.Is(err, services.ErrAlreadyAnswered):
		return fiber.StatusConflict
	case errors.Is(err, services.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	case errors.Is(err, services.ErrNotOwner):
		return fiber.StatusForbidden
	case errors.Is(err, services.ErrCodeNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrQuestionNotFound),
		errors.Is(err, services.ErrAnswerNotFound),
		errors.Is(err, services.ErrCommentNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

func fail(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	message := err.Error()
	if status >= fiber.StatusInternalServerError {
		slog.Error("unhandled workflow error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Error: true, Message: message})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: message})
}
