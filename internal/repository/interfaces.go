package repository

import (
	"context"
	"errors"

	"github.com/Dicon-MoodLight/moodlight-server/internal/models"
	"github.com/google/uuid"
)

// Store-level errors. GORM implementations translate driver errors into
// these so services never see persistence details.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// UserStore persists confirmed accounts.
type UserStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByNickname(ctx context.Context, nickname string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error
	UpdateFirebaseToken(ctx context.Context, id uuid.UUID, token string) error

	// CreateFromVerification materializes the pending user and deletes the
	// verification in a single transaction.
	CreateFromVerification(ctx context.Context, v *models.Verification) (*models.User, error)
	// ResetPasswordFromVerification updates the password of the user the
	// verification's email belongs to and deletes the verification, in a
	// single transaction.
	ResetPasswordFromVerification(ctx context.Context, v *models.Verification, hash string) error
}

// VerificationStore persists pending email verifications keyed by (email, mode).
type VerificationStore interface {
	FindByEmailAndMode(ctx context.Context, email string, mode models.VerificationMode) (*models.Verification, error)
	FindByNickname(ctx context.Context, nickname string) (*models.Verification, error)
	FindByCode(ctx context.Context, email, code string, mode models.VerificationMode) (*models.Verification, error)
	// Upsert updates the row for (email, mode) in place preserving its id,
	// or inserts when none exists.
	Upsert(ctx context.Context, v *models.Verification) error
	Delete(ctx context.Context, email string, mode models.VerificationMode) error
}

// QuestionStore persists daily questions. Transaction runs fn against a
// store view bound to one serialized database transaction; the rotation
// invariant (at most one activated question) depends on it.
type QuestionStore interface {
	FindByID(ctx context.Context, id uint) (*models.Question, error)
	FindByActivatedDate(ctx context.Context, date string) (*models.Question, error)
	FindActivated(ctx context.Context) (*models.Question, error)
	FindNextInactive(ctx context.Context) (*models.Question, error)
	Create(ctx context.Context, q *models.Question) error
	SetActivated(ctx context.Context, id uint, activated bool, date string) error
	Transaction(ctx context.Context, fn func(QuestionStore) error) error
}

// AnswerStore persists answers to daily questions.
type AnswerStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Answer, error)
	ListByQuestion(ctx context.Context, questionID uint, limit, offset int) ([]models.Answer, int64, error)
	Create(ctx context.Context, a *models.Answer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CommentStore persists comments on answers.
type CommentStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Comment, error)
	ListByAnswer(ctx context.Context, answerID uuid.UUID, limit, offset int) ([]models.Comment, int64, error)
	Create(ctx context.Context, c *models.Comment) error
	Delete(ctx context.Context, id uuid.UUID) error
}
