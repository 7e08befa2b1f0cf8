package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Answer is a user's response to a daily question, one per user per question.
type Answer struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	QuestionID uint           `gorm:"not null;uniqueIndex:idx_answers_question_user" json:"question_id"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_answers_question_user" json:"user_id"`
	Content    string         `gorm:"not null;type:text" json:"content"`
	MoodColor  string         `gorm:"size:7" json:"mood_color"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
