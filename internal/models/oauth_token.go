package models

import (
	"time"
)

type OAuthToken struct {
	ID           uint    `gorm:"primaryKey"`
	ClientID     string  `gorm:"not null;index"`
	UserID       *string // NULL for client credentials tokens
	AccessToken  string  `gorm:"uniqueIndex;not null"`
	RefreshToken *string `gorm:"index"`
	Scopes       string
	ExpiresAt    time.Time `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (OAuthToken) TableName() string {
	return "oauth_tokens"
}
