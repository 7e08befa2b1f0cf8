package services

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/Dicon-MoodLight/moodlight-server/internal/models"
	"github.com/Dicon-MoodLight/moodlight-server/internal/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAnswerStore struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*models.Answer
}

func newFakeAnswerStore() *fakeAnswerStore {
	return &fakeAnswerStore{rows: make(map[uuid.UUID]*models.Answer)}
}

func (f *fakeAnswerStore) FindByID(_ context.Context, id uuid.UUID) (*models.Answer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a, ok := f.rows[id]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeAnswerStore) ListByQuestion(_ context.Context, questionID uint, limit, offset int) ([]models.Answer, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []models.Answer
	for _, a := range f.rows {
		if a.QuestionID == questionID {
			all = append(all, *a)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	total := int64(len(all))
	if offset >= len(all) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (f *fakeAnswerStore) Create(_ context.Context, a *models.Answer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.rows {
		if existing.QuestionID == a.QuestionID && existing.UserID == a.UserID {
			return repository.ErrDuplicate
		}
	}
	a.ID = uuid.New()
	copied := *a
	f.rows[a.ID] = &copied
	return nil
}

func (f *fakeAnswerStore) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

func newAnswerFixture(t *testing.T) (*AnswerService, *fakeQuestionStore, uint) {
	t.Helper()
	questions := newFakeQuestionStore()
	q := &models.Question{Content: "How do you feel?"}
	require.NoError(t, questions.Create(context.Background(), q))
	return NewAnswerService(newFakeAnswerStore(), questions), questions, q.ID
}

func TestAnswerCreate(t *testing.T) {
	svc, _, questionID := newAnswerFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	a, err := svc.Create(ctx, userID, questionID, "pretty good", "#ffcc00")
	require.NoError(t, err)
	assert.Equal(t, questionID, a.QuestionID)
	assert.Equal(t, userID, a.UserID)

	// one answer per user per question
	_, err = svc.Create(ctx, userID, questionID, "changed my mind", "#000000")
	assert.ErrorIs(t, err, ErrAlreadyAnswered)

	// unknown question
	_, err = svc.Create(ctx, userID, 999, "hello", "")
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestAnswerDeleteOwnerOnly(t *testing.T) {
	svc, _, questionID := newAnswerFixture(t)
	ctx := context.Background()
	owner := uuid.New()

	a, err := svc.Create(ctx, owner, questionID, "mine", "")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, uuid.New(), a.ID), ErrNotOwner)
	require.NoError(t, svc.Delete(ctx, owner, a.ID))
	assert.ErrorIs(t, svc.Delete(ctx, owner, a.ID), ErrAnswerNotFound)
}

func TestAnswerListByQuestion(t *testing.T) {
	svc, _, questionID := newAnswerFixture(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, uuid.New(), questionID, "answer", "")
		require.NoError(t, err)
	}

	answers, total, err := svc.ListByQuestion(ctx, questionID, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, answers, 2)
}
