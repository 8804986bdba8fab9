package models

import "time"

// User backs the local identity provider only; with Cognito no user rows exist.
type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	FirstName    string `gorm:"size:120" json:"firstName"`
	LastName     string `gorm:"size:120" json:"lastName"`
	PasswordHash string `gorm:"not null" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
