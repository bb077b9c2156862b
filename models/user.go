package models

import (
	"time"
)

// User represents a registered account
type User struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"` // Hash is not exposed in JSON
	CreatedAt    time.Time `json:"createdAt"`
}

// TableName keeps the original schema's table name
func (User) TableName() string {
	return "app_user"
}
