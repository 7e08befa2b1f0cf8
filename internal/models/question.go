package models

import (
	"time"

	"gorm.io/gorm"
)

// Question is a daily prompt. Integer ids are deliberate: the rotation picks
// the highest-id inactive question as the next day's prompt.
type Question struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Content       string         `gorm:"not null;size:500;uniqueIndex" json:"content"`
	Activated     bool           `gorm:"default:false;index" json:"activated"`
	ActivatedDate string         `gorm:"size:10;index" json:"activated_date"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
