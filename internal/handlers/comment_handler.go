package handlers

import (
	"github.com/Dicon-MoodLight/moodlight-server/internal/dto"
	"github.com/Dicon-MoodLight/moodlight-server/internal/middleware"
	"github.com/Dicon-MoodLight/moodlight-server/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CommentHandler struct {
	commentService *services.CommentService
}

func NewCommentHandler(commentService *services.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Content == "" {
		return badRequest(c, "content is required")
	}

	comment, err := h.commentService.Create(c.Context(), userID, req.AnswerID, req.Content)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

func (h *CommentHandler) ListByAnswer(c *fiber.Ctx) error {
	answerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid answer ID")
	}

	limit, offset := pagination(c)
	comments, total, err := h.commentService.ListByAnswer(c.Context(), answerID, limit, offset)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.CommentListResponse{
		Comments: comments,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	})
}

func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid comment ID")
	}

	if err := h.commentService.Delete(c.Context(), userID, id); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Comment deleted"})
}
