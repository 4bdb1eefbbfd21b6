package models

import (
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User owns OAuth clients. Only the role matters to the API: it is copied
// into every access token issued for the user's clients.
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex;not null"`
	Name      string
	Role      string `gorm:"default:'user'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
