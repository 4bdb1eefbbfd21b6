package models

import (
	"time"
)

// OAuthCode backs the code half of the token store. The API only issues
// client credentials tokens, so rows appear here only if a code grant is
// enabled later.
type OAuthCode struct {
	Code        string `gorm:"primaryKey"`
	ClientID    string `gorm:"not null"`
	UserID      string `gorm:"not null"`
	Scopes      string
	RedirectURI string
	ExpiresAt   time.Time `gorm:"not null"`
	CreatedAt   time.Time
}

func (OAuthCode) TableName() string {
	return "oauth_codes"
}
