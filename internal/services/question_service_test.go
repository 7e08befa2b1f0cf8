package services

import (
	"context"
	"sync"
	"testing"

	"github.com/Dicon-MoodLight/moodlight-server/internal/models"
	"github.com/Dicon-MoodLight/moodlight-server/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeQuestionStore serializes Transaction calls with a mutex, mirroring the
// database transaction the real store runs rotations in.
type fakeQuestionStore struct {
	mu   sync.Mutex
	data *questionData
}

type questionData struct {
	rows   map[uint]*models.Question
	nextID uint
}

func newFakeQuestionStore() *fakeQuestionStore {
	return &fakeQuestionStore{data: &questionData{rows: make(map[uint]*models.Question), nextID: 1}}
}

func (f *fakeQuestionStore) FindByID(ctx context.Context, id uint) (*models.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data.findByID(id)
}

func (f *fakeQuestionStore) FindByActivatedDate(ctx context.Context, date string) (*models.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data.findByActivatedDate(date)
}

func (f *fakeQuestionStore) FindActivated(ctx context.Context) (*models.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data.findActivated()
}

func (f *fakeQuestionStore) FindNextInactive(ctx context.Context) (*models.Question, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data.findNextInactive()
}

func (f *fakeQuestionStore) Create(ctx context.Context, q *models.Question) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data.create(q)
}

func (f *fakeQuestionStore) SetActivated(ctx context.Context, id uint, activated bool, date string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data.setActivated(id, activated, date)
}

func (f *fakeQuestionStore) Transaction(ctx context.Context, fn func(repository.QuestionStore) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(&questionTx{data: f.data})
}

// questionTx is the store view handed to a transaction body; the outer lock
// is already held.
type questionTx struct {
	data *questionData
}

func (t *questionTx) FindByID(ctx context.Context, id uint) (*models.Question, error) {
	return t.data.findByID(id)
}

func (t *questionTx) FindByActivatedDate(ctx context.Context, date string) (*models.Question, error) {
	return t.data.findByActivatedDate(date)
}

func (t *questionTx) FindActivated(ctx context.Context) (*models.Question, error) {
	return t.data.findActivated()
}

func (t *questionTx) FindNextInactive(ctx context.Context) (*models.Question, error) {
	return t.data.findNextInactive()
}

func (t *questionTx) Create(ctx context.Context, q *models.Question) error {
	return t.data.create(q)
}

func (t *questionTx) SetActivated(ctx context.Context, id uint, activated bool, date string) error {
	return t.data.setActivated(id, activated, date)
}

func (t *questionTx) Transaction(ctx context.Context, fn func(repository.QuestionStore) error) error {
	return fn(t)
}

func (d *questionData) findByID(id uint) (*models.Question, error) {
	if q, ok := d.rows[id]; ok {
		copied := *q
		return &copied, nil
	}
	return nil, repository.ErrNotFound
}

func (d *questionData) findByActivatedDate(date string) (*models.Question, error) {
	var found *models.Question
	for _, q := range d.rows {
		if q.ActivatedDate == date && (found == nil || q.ID > found.ID) {
			found = q
		}
	}
	if found == nil {
		return nil, repository.ErrNotFound
	}
	copied := *found
	return &copied, nil
}

func (d *questionData) findActivated() (*models.Question, error) {
	for _, q := range d.rows {
		if q.Activated {
			copied := *q
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (d *questionData) findNextInactive() (*models.Question, error) {
	var found *models.Question
	for _, q := range d.rows {
		if !q.Activated && q.ActivatedDate == "" && (found == nil || q.ID > found.ID) {
			found = q
		}
	}
	if found == nil {
		return nil, repository.ErrNotFound
	}
	copied := *found
	return &copied, nil
}

func (d *questionData) create(q *models.Question) error {
	for _, existing := range d.rows {
		if existing.Content == q.Content {
			return repository.ErrDuplicate
		}
	}
	q.ID = d.nextID
	d.nextID++
	copied := *q
	d.rows[q.ID] = &copied
	return nil
}

func (d *questionData) setActivated(id uint, activated bool, date string) error {
	q, ok := d.rows[id]
	if !ok {
		return repository.ErrNotFound
	}
	q.Activated = activated
	q.ActivatedDate = date
	return nil
}

func (f *fakeQuestionStore) activatedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, q := range f.data.rows {
		if q.Activated {
			count++
		}
	}
	return count
}

// ---- tests ----

func newQuestionFixture(t *testing.T) (*QuestionService, *fakeQuestionStore) {
	t.Helper()
	store := newFakeQuestionStore()
	svc, err := NewQuestionService(store, "Asia/Seoul")
	require.NoError(t, err)
	return svc, store
}

func TestNewQuestionService_RejectsBadTimezone(t *testing.T) {
	_, err := NewQuestionService(newFakeQuestionStore(), "Not/AZone")
	assert.Error(t, err)
}

func TestRotate_FlipsActivation(t *testing.T) {
	svc, store := newQuestionFixture(t)
	ctx := context.Background()

	q1, err := svc.Create(ctx, "What made you smile today?")
	require.NoError(t, err)
	require.NoError(t, store.SetActivated(ctx, q1.ID, true, "2026-08-28"))

	q2, err := svc.Create(ctx, "What are you grateful for?")
	require.NoError(t, err)

	require.NoError(t, svc.Rotate(ctx))

	today := svc.Today()
	old, err := store.FindByID(ctx, q1.ID)
	require.NoError(t, err)
	assert.False(t, old.Activated)
	assert.Equal(t, today, old.ActivatedDate)

	current, err := svc.FindActivated(ctx)
	require.NoError(t, err)
	assert.Equal(t, q2.ID, current.ID)
	assert.Equal(t, today, current.ActivatedDate)
}

func TestRotate_NoCandidateKeepsCurrent(t *testing.T) {
	svc, store := newQuestionFixture(t)
	ctx := context.Background()

	q1, err := svc.Create(ctx, "What made you smile today?")
	require.NoError(t, err)
	require.NoError(t, store.SetActivated(ctx, q1.ID, true, "2026-08-28"))

	require.NoError(t, svc.Rotate(ctx))

	current, err := svc.FindActivated(ctx)
	require.NoError(t, err)
	assert.Equal(t, q1.ID, current.ID, "with an empty pool the current question stays up")
}

func TestRotate_PicksHighestIDInactive(t *testing.T) {
	svc, _ := newQuestionFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "oldest")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "middle")
	require.NoError(t, err)
	newest, err := svc.Create(ctx, "newest")
	require.NoError(t, err)

	require.NoError(t, svc.Rotate(ctx))

	current, err := svc.FindActivated(ctx)
	require.NoError(t, err)
	assert.Equal(t, newest.ID, current.ID)
}

func TestRotate_ConcurrentInvocationsKeepExactlyOneActivated(t *testing.T) {
	svc, store := newQuestionFixture(t)
	ctx := context.Background()

	q1, err := svc.Create(ctx, "question one")
	require.NoError(t, err)
	require.NoError(t, store.SetActivated(ctx, q1.ID, true, "2026-08-28"))
	_, err = svc.Create(ctx, "question two")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, svc.Rotate(ctx))
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, store.activatedCount(), "never both, never neither")
}

func TestCreate_DuplicateContentConflicts(t *testing.T) {
	svc, _ := newQuestionFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "same question")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "same question")
	assert.ErrorIs(t, err, ErrQuestionTaken)
}

func TestQuestionLookups(t *testing.T) {
	svc, store := newQuestionFixture(t)
	ctx := context.Background()

	_, err := svc.FindActivated(ctx)
	assert.ErrorIs(t, err, ErrQuestionNotFound)
	_, err = svc.FindByID(ctx, 42)
	assert.ErrorIs(t, err, ErrQuestionNotFound)
	_, err = svc.FindByActivatedDate(ctx, "2026-08-29")
	assert.ErrorIs(t, err, ErrQuestionNotFound)

	q, err := svc.Create(ctx, "lookup me")
	require.NoError(t, err)
	require.NoError(t, store.SetActivated(ctx, q.ID, true, "2026-08-29"))

	byID, err := svc.FindByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, "lookup me", byID.Content)

	byDate, err := svc.FindByActivatedDate(ctx, "2026-08-29")
	require.NoError(t, err)
	assert.Equal(t, q.ID, byDate.ID)
}
