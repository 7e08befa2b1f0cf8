package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a confirmed account. Rows are only created through a confirmed
// join verification, never directly from a request.
type User struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email         string         `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Nickname      string         `gorm:"not null;size:50;uniqueIndex" json:"nickname"`
	Password      string         `gorm:"not null" json:"-"`
	IsAdmin       bool           `gorm:"default:false" json:"is_admin"`
	FirebaseToken *string        `gorm:"size:512" json:"-"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
