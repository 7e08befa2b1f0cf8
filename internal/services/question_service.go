package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Dicon-MoodLight/moodlight-server/internal/models"
	"github.com/Dicon-MoodLight/moodlight-server/internal/repository"
)

const dateLayout = "2006-01-02"

// QuestionService owns the daily question pool and its rotation.
type QuestionService struct {
	store repository.QuestionStore
	loc   *time.Location
}

func NewQuestionService(store repository.QuestionStore, tz string) (*QuestionService, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid rotation timezone %q: %w", tz, err)
	}
	return &QuestionService{store: store, loc: loc}, nil
}

// Today returns the current date in the rotation timezone.
func (s *QuestionService) Today() string {
	return time.Now().In(s.loc).Format(dateLayout)
}

// Rotate flips the activated question: the current one is deactivated and
// the most recently submitted never-activated question takes its place,
// both stamped with today's date. The whole flip runs in one serialized
// transaction, and the successor is selected before the current question is
// touched, so the set of activated questions never holds more than one row
// and is never emptied by a rotation — even when two rotations race.
func (s *QuestionService) Rotate(ctx context.Context) error {
	date := s.Today()
	return s.store.Transaction(ctx, func(tx repository.QuestionStore) error {
		next, err := tx.FindNextInactive(ctx)
		if errors.Is(err, repository.ErrNotFound) {
			slog.Warn("question rotation found no question to activate, keeping current", "date", date)
			return nil
		}
		if err != nil {
			return err
		}

		current, err := tx.FindActivated(ctx)
		switch {
		case err == nil:
			if err := tx.SetActivated(ctx, current.ID, false, date); err != nil {
				return err
			}
		case errors.Is(err, repository.ErrNotFound):
			// nothing active yet, first rotation
		default:
			return err
		}

		if err := tx.SetActivated(ctx, next.ID, true, date); err != nil {
			return err
		}
		slog.Info("daily question rotated", "question_id", next.ID, "date", date)
		return nil
	})
}

// StartRotation runs Rotate once per day at local midnight until done closes.
func (s *QuestionService) StartRotation(done chan struct{}) {
	go func() {
		for {
			now := time.Now().In(s.loc)
			midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc).AddDate(0, 0, 1)
			timer := time.NewTimer(time.Until(midnight))

			select {
			case <-timer.C:
				if err := s.Rotate(context.Background()); err != nil {
					slog.Error("question rotation failed", "error", err)
				}
			case <-done:
				timer.Stop()
				return
			}
		}
	}()
}

// Create submits a new question to the pool. Admin only; duplicate content
// is rejected.
func (s *QuestionService) Create(ctx context.Context, content string) (*models.Question, error) {
	q := &models.Question{Content: content}
	if err := s.store.Create(ctx, q); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrQuestionTaken
		}
		return nil, err
	}
	return q, nil
}

func (s *QuestionService) FindByID(ctx context.Context, id uint) (*models.Question, error) {
	q, err := s.store.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrQuestionNotFound
	}
	return q, err
}

func (s *QuestionService) FindByActivatedDate(ctx context.Context, date string) (*models.Question, error) {
	q, err := s.store.FindByActivatedDate(ctx, date)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrQuestionNotFound
	}
	return q, err
}

// FindActivated returns the question currently open for answers.
func (s *QuestionService) FindActivated(ctx context.Context) (*models.Question, error) {
	q, err := s.store.FindActivated(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrQuestionNotFound
	}
	return q, err
}
