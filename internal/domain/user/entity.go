package user

import (
	"time"

	"github.com/google/uuid"
)

// User represents the users table
type User struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name             string    `gorm:"size:128;not null"`
	Email            string    `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash     string    `gorm:"size:255;not null"`
	Age              int       `gorm:"not null"`
	Gender           string    `gorm:"size:16;not null"`
	GenderPreference string    `gorm:"size:16;not null"`
	Bio              string
	ImageURL         string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (User) TableName() string {
	return "users"
}
