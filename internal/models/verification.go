package models

import (
	"time"

	"github.com/google/uuid"
)

// VerificationMode tags what a pending verification will unlock once the
// emailed code is confirmed.
type VerificationMode string

const (
	ModeJoin           VerificationMode = "join"
	ModeChangePassword VerificationMode = "change_password"
)

// Verification is a transient email-possession proof. At most one row exists
// per (email, mode); a repeated request overwrites the code in place. Join
// verifications additionally carry the pending account payload, which is
// materialized into a User on confirmation.
type Verification struct {
	ID          uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email       string           `gorm:"not null;size:255;uniqueIndex:idx_verifications_email_mode" json:"email"`
	Mode        VerificationMode `gorm:"not null;size:20;uniqueIndex:idx_verifications_email_mode" json:"mode"`
	ConfirmCode string           `gorm:"not null;size:6" json:"-"`

	// Join-mode payload. Empty for change_password.
	Nickname        string `gorm:"size:50;index" json:"nickname,omitempty"`
	PendingPassword string `json:"-"`
	PendingIsAdmin  bool   `gorm:"default:false" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PendingUser builds the account a confirmed join verification stands for.
func (v *Verification) PendingUser() *User {
	return &User{
		Email:    v.Email,
		Nickname: v.Nickname,
		Password: v.PendingPassword,
		IsAdmin:  v.PendingIsAdmin,
	}
}
