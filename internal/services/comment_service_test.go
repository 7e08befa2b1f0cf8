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

type fakeCommentStore struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*models.Comment
}

func newFakeCommentStore() *fakeCommentStore {
	return &fakeCommentStore{rows: make(map[uuid.UUID]*models.Comment)}
}

func (f *fakeCommentStore) FindByID(_ context.Context, id uuid.UUID) (*models.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.rows[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeCommentStore) ListByAnswer(_ context.Context, answerID uuid.UUID, limit, offset int) ([]models.Comment, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var all []models.Comment
	for _, c := range f.rows {
		if c.AnswerID == answerID {
			all = append(all, *c)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
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

func (f *fakeCommentStore) Create(_ context.Context, c *models.Comment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c.ID = uuid.New()
	copied := *c
	f.rows[c.ID] = &copied
	return nil
}

func (f *fakeCommentStore) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

func newCommentFixture(t *testing.T) (*CommentService, uuid.UUID) {
	t.Helper()
	answers := newFakeAnswerStore()
	a := &models.Answer{QuestionID: 1, UserID: uuid.New(), Content: "an answer"}
	require.NoError(t, answers.Create(context.Background(), a))
	return NewCommentService(newFakeCommentStore(), answers), a.ID
}

func TestCommentCreate(t *testing.T) {
	svc, answerID := newCommentFixture(t)
	ctx := context.Background()

	c, err := svc.Create(ctx, uuid.New(), answerID, "nice one")
	require.NoError(t, err)
	assert.Equal(t, answerID, c.AnswerID)

	_, err = svc.Create(ctx, uuid.New(), uuid.New(), "orphan")
	assert.ErrorIs(t, err, ErrAnswerNotFound)
}

func TestCommentDeleteOwnerOnly(t *testing.T) {
	svc, answerID := newCommentFixture(t)
	ctx := context.Background()
	owner := uuid.New()

	c, err := svc.Create(ctx, owner, answerID, "mine")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, uuid.New(), c.ID), ErrNotOwner)
	require.NoError(t, svc.Delete(ctx, owner, c.ID))
	assert.ErrorIs(t, svc.Delete(ctx, owner, c.ID), ErrCommentNotFound)
}

func TestCommentList(t *testing.T) {
	svc, answerID := newCommentFixture(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Create(ctx, uuid.New(), answerID, "comment")
		require.NoError(t, err)
	}

	comments, total, err := svc.ListByAnswer(ctx, answerID, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, comments, 3)
}
