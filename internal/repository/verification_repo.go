package repository

import (
	"context"
	"errors"

	"github.com/Dicon-MoodLight/moodlight-server/internal/models"
	"gorm.io/gorm"
)

type GormVerificationRepo struct {
	db *gorm.DB
}

func NewGormVerificationRepo(db *gorm.DB) *GormVerificationRepo {
	return &GormVerificationRepo{db: db}
}

func (r *GormVerificationRepo) FindByEmailAndMode(ctx context.Context, email string, mode models.VerificationMode) (*models.Verification, error) {
	var v models.Verification
	if err := r.db.WithContext(ctx).Where("email = ? AND mode = ?", email, mode).First(&v).Error; err != nil {
		return nil, translate(err)
	}
	return &v, nil
}

func (r *GormVerificationRepo) FindByNickname(ctx context.Context, nickname string) (*models.Verification, error) {
	var v models.Verification
	if err := r.db.WithContext(ctx).Where("nickname = ?", nickname).First(&v).Error; err != nil {
		return nil, translate(err)
	}
	return &v, nil
}

func (r *GormVerificationRepo) FindByCode(ctx context.Context, email, code string, mode models.VerificationMode) (*models.Verification, error) {
	var v models.Verification
	if err := r.db.WithContext(ctx).
		Where("email = ? AND confirm_code = ? AND mode = ?", email, code, mode).
		First(&v).Error; err != nil {
		return nil, translate(err)
	}
	return &v, nil
}

// Upsert keeps at most one verification per (email, mode): an existing row is
// updated in place preserving its id, otherwise the record is inserted.
func (r *GormVerificationRepo) Upsert(ctx context.Context, v *models.Verification) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Verification
		err := tx.Where("email = ? AND mode = ?", v.Email, v.Mode).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(v).Error
		}
		if err != nil {
			return err
		}
		v.ID = existing.ID
		v.CreatedAt = existing.CreatedAt
		return tx.Model(&existing).Updates(map[string]interface{}{
			"confirm_code":     v.ConfirmCode,
			"nickname":         v.Nickname,
			"pending_password": v.PendingPassword,
			"pending_is_admin": v.PendingIsAdmin,
		}).Error
	})
	if err != nil {
		return translate(err)
	}
	return nil
}

func (r *GormVerificationRepo) Delete(ctx context.Context, email string, mode models.VerificationMode) error {
	if err := r.db.WithContext(ctx).
		Where("email = ? AND mode = ?", email, mode).
		Delete(&models.Verification{}).Error; err != nil {
		return translate(err)
	}
	return nil
}
