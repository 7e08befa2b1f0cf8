package services

import (
	"context"
	"errors"

	"github.com/Dicon-MoodLight/moodlight-server/internal/models"
	"github.com/Dicon-MoodLight/moodlight-server/internal/repository"
	"github.com/google/uuid"
)

// CommentService is plain create/read persistence over comments.
type CommentService struct {
	comments repository.CommentStore
	answers  repository.AnswerStore
}

func NewCommentService(comments repository.CommentStore, answers repository.AnswerStore) *CommentService {
	return &CommentService{comments: comments, answers: answers}
}

func (s *CommentService) Create(ctx context.Context, userID, answerID uuid.UUID, content string) (*models.Comment, error) {
	if _, err := s.answers.FindByID(ctx, answerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAnswerNotFound
		}
		return nil, err
	}

	c := &models.Comment{
		AnswerID: answerID,
		UserID:   userID,
		Content:  content,
	}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CommentService) ListByAnswer(ctx context.Context, answerID uuid.UUID, limit, offset int) ([]models.Comment, int64, error) {
	return s.comments.ListByAnswer(ctx, answerID, limit, offset)
}

func (s *CommentService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	c, err := s.comments.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCommentNotFound
		}
		return err
	}
	if c.UserID != userID {
		return ErrNotOwner
	}
	return s.comments.Delete(ctx, id)
}
