package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Index names referenced by the repository layer when translating
// duplicate-key failures back to the offending field.
const (
	UserUsernameIndex = "uq_users_username"
	UserEmailIndex    = "uq_users_email"
)

// User represents a registered job seeker.
type User struct {
	ID              uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Username        string    `json:"username" gorm:"size:255;not null;uniqueIndex:uq_users_username"`
	Email           string    `json:"email" gorm:"size:255;not null;uniqueIndex:uq_users_email"`
	PasswordHash    string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	ExperienceLevel string    `json:"experience_level" gorm:"size:50;not null"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
