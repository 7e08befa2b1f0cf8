package handlers

import (
	"strconv"

	"github.com/Dicon-MoodLight/moodlight-server/internal/dto"
	"github.com/Dicon-MoodLight/moodlight-server/internal/middleware"
	"github.com/Dicon-MoodLight/moodlight-server/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AnswerHandler struct {
	answerService *services.AnswerService
}

func NewAnswerHandler(answerService *services.AnswerService) *AnswerHandler {
	return &AnswerHandler{answerService: answerService}
}

func (h *AnswerHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Content == "" {
		return badRequest(c, "content is required")
	}

	a, err := h.answerService.Create(c.Context(), userID, req.QuestionID, req.Content, req.MoodColor)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(a)
}

func (h *AnswerHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid answer ID")
	}

	a, err := h.answerService.Get(c.Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(a)
}

func (h *AnswerHandler) ListByQuestion(c *fiber.Ctx) error {
	questionID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return badRequest(c, "Invalid question ID")
	}

	limit, offset := pagination(c)
	answers, total, err := h.answerService.ListByQuestion(c.Context(), uint(questionID), limit, offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.AnswerListResponse{
		Answers: answers,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	})
}

func (h *AnswerHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid answer ID")
	}

	if err := h.answerService.Delete(c.Context(), userID, id); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Answer deleted"})
}

func pagination(c *fiber.Ctx) (limit, offset int) {
	limit, _ = strconv.Atoi(c.Query("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset, _ = strconv.Atoi(c.Query("offset", "0"))
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
