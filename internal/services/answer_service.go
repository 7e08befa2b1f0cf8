package services

import (
	"context"
	"errors"

	"github.com/Dicon-MoodLight/moodlight-server/internal/models"
	"github.com/Dicon-MoodLight/moodlight-server/internal/repository"
	"github.com/google/uuid"
)

// AnswerService is plain create/read persistence over answers.
type AnswerService struct {
	answers   repository.AnswerStore
	questions repository.QuestionStore
}

func NewAnswerService(answers repository.AnswerStore, questions repository.QuestionStore) *AnswerService {
	return &AnswerService{answers: answers, questions: questions}
}

func (s *AnswerService) Create(ctx context.Context, userID uuid.UUID, questionID uint, content, moodColor string) (*models.Answer, error) {
	if _, err := s.questions.FindByID(ctx, questionID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}

	a := &models.Answer{
		QuestionID: questionID,
		UserID:     userID,
		Content:    content,
		MoodColor:  moodColor,
	}
	if err := s.answers.Create(ctx, a); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyAnswered
		}
		return nil, err
	}
	return a, nil
}

func (s *AnswerService) Get(ctx context.Context, id uuid.UUID) (*models.Answer, error) {
	a, err := s.answers.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrAnswerNotFound
	}
	return a, err
}

func (s *AnswerService) ListByQuestion(ctx context.Context, questionID uint, limit, offset int) ([]models.Answer, int64, error) {
	return s.answers.ListByQuestion(ctx, questionID, limit, offset)
}

func (s *AnswerService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	a, err := s.answers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAnswerNotFound
		}
		return err
	}
	if a.UserID != userID {
		return ErrNotOwner
	}
	return s.answers.Delete(ctx, id)
}
