package handlers

import (
	"regexp"
	"strconv"

	"github.com/Dicon-MoodLight/moodlight-server/internal/dto"
	"github.com/Dicon-MoodLight/moodlight-server/internal/services"
	"github.com/gofiber/fiber/v2"
)

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type QuestionHandler struct {
	questionService *services.QuestionService
}

func NewQuestionHandler(questionService *services.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// Today returns the currently activated question.
func (h *QuestionHandler) Today(c *fiber.Ctx) error {
	q, err := h.questionService.FindActivated(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(q)
}

func (h *QuestionHandler) Get(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return badRequest(c, "Invalid question ID")
	}

	q, err := h.questionService.FindByID(c.Context(), uint(id))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(q)
}

func (h *QuestionHandler) GetByDate(c *fiber.Ctx) error {
	date := c.Params("date")
	if !dateRe.MatchString(date) {
		return badRequest(c, "date must be YYYY-MM-DD")
	}

	q, err := h.questionService.FindByActivatedDate(c.Context(), date)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(q)
}

// Create submits a new question to the pool. Admin only (route-gated).
func (h *QuestionHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Content == "" {
		return badRequest(c, "content is required")
	}

	q, err := h.questionService.Create(c.Context(), req.Content)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(q)
}
