package routes

import (
	"time"

	"github.com/Dicon-MoodLight/moodlight-server/internal/config"
	"github.com/Dicon-MoodLight/moodlight-server/internal/handlers"
	"github.com/Dicon-MoodLight/moodlight-server/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	questionHandler *handlers.QuestionHandler,
	answerHandler *handlers.AnswerHandler,
	commentHandler *handlers.CommentHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/join", authHandler.Join)
	auth.Post("/confirm", authHandler.Confirm)
	auth.Get("/confirm-code", authHandler.CheckConfirmCode)
	auth.Post("/login", authHandler.Login)
	auth.Post("/password/forgot", authHandler.ForgotPassword)
	auth.Post("/password/reset", authHandler.ResetPassword)

	// Protected auth routes
	api.Put("/auth/password", middleware.JWTProtected(cfg), authHandler.ChangePassword)
	api.Put("/auth/firebase-token", middleware.JWTProtected(cfg), authHandler.UpdateFirebaseToken)

	// Questions — public reads
	api.Get("/questions/today", questionHandler.Today)
	api.Get("/questions/date/:date", questionHandler.GetByDate)
	api.Get("/questions/:id", questionHandler.Get)
	api.Get("/questions/:id/answers", answerHandler.ListByQuestion)

	// Admin question submission
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db))
	admin.Post("/questions", questionHandler.Create)

	// Answers and comments (JWT required for mutations)
	api.Get("/answers/:id", answerHandler.Get)
	api.Get("/answers/:id/comments", commentHandler.ListByAnswer)
	api.Post("/answers", middleware.JWTProtected(cfg), answerHandler.Create)
	api.Delete("/answers/:id", middleware.JWTProtected(cfg), answerHandler.Delete)
	api.Post("/comments", middleware.JWTProtected(cfg), commentHandler.Create)
	api.Delete("/comments/:id", middleware.JWTProtected(cfg), commentHandler.Delete)
}
