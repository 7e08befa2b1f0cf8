package dto

import (
	"github.com/Dicon-MoodLight/moodlight-server/internal/models"
	"github.com/google/uuid"
)

type CreateQuestionRequest struct {
	Content string `json:"content"`
}

type CreateAnswerRequest struct {
	QuestionID uint   `json:"question_id"`
	Content    string `json:"content"`
	MoodColor  string `json:"mood_color"`
}

type AnswerListResponse struct {
	Answers []models.Answer `json:"answers"`
	Total   int64           `json:"total"`
	Limit   int             `json:"limit"`
	Offset  int             `json:"offset"`
}

type CreateCommentRequest struct {
	AnswerID uuid.UUID `json:"answer_id"`
	Content  string    `json:"content"`
}

type CommentListResponse struct {
	Comments []models.Comment `json:"comments"`
	Total    int64            `json:"total"`
	Limit    int              `json:"limit"`
	Offset   int              `json:"offset"`
}
