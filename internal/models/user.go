package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Nome         string `gorm:"size:100;not null" json:"nome"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         string `gorm:"size:20;default:'staff'" json:"role"`

	ProfilePictureURL string `gorm:"size:500" json:"profile_picture_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
