package repository

import (
	"context"

	"github.com/Dicon-MoodLight/moodlight-server/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GormCommentRepo struct {
	db *gorm.DB
}

func NewGormCommentRepo(db *gorm.DB) *GormCommentRepo {
	return &GormCommentRepo{db: db}
}

func (r *GormCommentRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	var c models.Comment
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *GormCommentRepo) ListByAnswer(ctx context.Context, answerID uuid.UUID, limit, offset int) ([]models.Comment, int64, error) {
	var comments []models.Comment
	var total int64

	base := r.db.WithContext(ctx).Model(&models.Comment{}).Where("answer_id = ?", answerID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}
	if err := base.Order("created_at ASC").Limit(limit).Offset(offset).Find(&comments).Error; err != nil {
		return nil, 0, translate(err)
	}
	return comments, total, nil
}

func (r *GormCommentRepo) Create(ctx context.Context, c *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (r *GormCommentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Comment{}, "id = ?", id)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
