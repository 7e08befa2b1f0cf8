package repository

import (
	"context"

	"github.com/Dicon-MoodLight/moodlight-server/internal/models"
	"gorm.io/gorm"
)

type GormQuestionRepo struct {
	db *gorm.DB
}

func NewGormQuestionRepo(db *gorm.DB) *GormQuestionRepo {
	return &GormQuestionRepo{db: db}
}

func (r *GormQuestionRepo) FindByID(ctx context.Context, id uint) (*models.Question, error) {
	var q models.Question
	if err := r.db.WithContext(ctx).First(&q, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &q, nil
}

func (r *GormQuestionRepo) FindByActivatedDate(ctx context.Context, date string) (*models.Question, error) {
	var q models.Question
	if err := r.db.WithContext(ctx).
		Where("activated_date = ?", date).
		Order("id DESC").
		First(&q).Error; err != nil {
		return nil, translate(err)
	}
	return &q, nil
}

func (r *GormQuestionRepo) FindActivated(ctx context.Context) (*models.Question, error) {
	var q models.Question
	if err := r.db.WithContext(ctx).Where("activated = ?", true).First(&q).Error; err != nil {
		return nil, translate(err)
	}
	return &q, nil
}

// FindNextInactive returns the most recently submitted question that has
// never been activated.
func (r *GormQuestionRepo) FindNextInactive(ctx context.Context) (*models.Question, error) {
	var q models.Question
	if err := r.db.WithContext(ctx).
		Where("activated = ? AND activated_date = ''", false).
		Order("id DESC").
		First(&q).Error; err != nil {
		return nil, translate(err)
	}
	return &q, nil
}

func (r *GormQuestionRepo) Create(ctx context.Context, q *models.Question) error {
	if err := r.db.WithContext(ctx).Create(q).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (r *GormQuestionRepo) SetActivated(ctx context.Context, id uint, activated bool, date string) error {
	result := r.db.WithContext(ctx).Model(&models.Question{}).Where("id = ?", id).
		Updates(map[string]interface{}{"activated": activated, "activated_date": date})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Transaction runs fn against a repo bound to a single database transaction.
// The daily rotation runs through here so deactivate and activate commit
// atomically.
func (r *GormQuestionRepo) Transaction(ctx context.Context, fn func(QuestionStore) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormQuestionRepo{db: tx})
	})
}
