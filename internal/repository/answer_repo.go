package repository

import (
	"context"

	"github.com/Dicon-MoodLight/moodlight-server/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GormAnswerRepo struct {
	db *gorm.DB
}

func NewGormAnswerRepo(db *gorm.DB) *GormAnswerRepo {
	return &GormAnswerRepo{db: db}
}

func (r *GormAnswerRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Answer, error) {
	var a models.Answer
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (r *GormAnswerRepo) ListByQuestion(ctx context.Context, questionID uint, limit, offset int) ([]models.Answer, int64, error) {
	var answers []models.Answer
	var total int64

	base := r.db.WithContext(ctx).Model(&models.Answer{}).Where("question_id = ?", questionID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}
	if err := base.Order("created_at DESC").Limit(limit).Offset(offset).Find(&answers).Error; err != nil {
		return nil, 0, translate(err)
	}
	return answers, total, nil
}

func (r *GormAnswerRepo) Create(ctx context.Context, a *models.Answer) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (r *GormAnswerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Answer{}, "id = ?", id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
