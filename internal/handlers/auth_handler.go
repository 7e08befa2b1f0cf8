package handlers

import (
	"github.com/Dicon-MoodLight/moodlight-server/internal/dto"
	"github.com/Dicon-MoodLight/moodlight-server/internal/middleware"
	"github.com/Dicon-MoodLight/moodlight-server/internal/models"
	"github.com/Dicon-MoodLight/moodlight-server/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Join(c *fiber.Ctx) error {
	var req dto.JoinRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Email == "" || len(req.Password) < 8 || req.Nickname == "" {
		return badRequest(c, "email, nickname and a password of at least 8 characters are required")
	}

	if err := h.authService.Join(c.Context(), req.Email, req.Password, req.Nickname, req.AdminKey); err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{
		Message: "Confirmation code sent",
	})
}

func (h *AuthHandler) Confirm(c *fiber.Ctx) error {
	var req dto.ConfirmRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	user, err := h.authService.Confirm(c.Context(), req.Email, req.Code)
	if err != nil {
		return fail(c, err)
	}

	token, err := h.authService.CreateAccessToken(user)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(authResponse(token, user))
}

func (h *AuthHandler) CheckConfirmCode(c *fiber.Ctx) error {
	email := c.Query("email")
	code := c.Query("code")
	mode := models.VerificationMode(c.Query("mode", string(models.ModeJoin)))
	if mode != models.ModeJoin && mode != models.ModeChangePassword {
		return badRequest(c, "invalid verification mode")
	}

	if err := h.authService.CheckConfirmCode(c.Context(), email, code, mode); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Code valid"})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	user, err := h.authService.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return fail(c, err)
	}

	token, err := h.authService.CreateAccessToken(user)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(authResponse(token, user))
}

func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if len(req.NewPassword) < 8 {
		return badRequest(c, "new password must be at least 8 characters")
	}

	if err := h.authService.ChangePassword(c.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Password changed"})
}

func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.authService.ChangePasswordNotLoggedIn(c.Context(), req.Email); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Confirmation code sent"})
}

func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if len(req.NewPassword) < 8 {
		return badRequest(c, "new password must be at least 8 characters")
	}

	if err := h.authService.ConfirmChangePasswordNotLoggedIn(c.Context(), req.Email, req.Code, req.NewPassword); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Password changed"})
}

func (h *AuthHandler) UpdateFirebaseToken(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.FirebaseTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.authService.UpdateFirebaseToken(c.Context(), userID, req.Token); err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Token updated"})
}

func authResponse(token string, user *models.User) dto.AuthResponse {
	return dto.AuthResponse{
		AccessToken: token,
		User: dto.UserResponse{
			ID:       user.ID,
			Email:    user.Email,
			Nickname: user.Nickname,
			IsAdmin:  user.IsAdmin,
		},
	}
}
