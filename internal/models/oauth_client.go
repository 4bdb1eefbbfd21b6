package models

import (
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// OAuthClient is a machine client allowed to request tokens for the catalog
// admin routes. Secret holds a bcrypt hash, never the plain secret.
type OAuthClient struct {
	ID         string `gorm:"primaryKey"`
	Secret     string `gorm:"not null"`
	Name       string
	Domain     string
	UserID     uint   // owner, whose role ends up in the token
	Scopes     string // space-separated
	GrantTypes string // space-separated, e.g. "client_credentials"
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (OAuthClient) TableName() string {
	return "oauth_clients"
}

// The methods below satisfy oauth2.ClientInfo and oauth2.ClientPasswordVerifier.

func (c *OAuthClient) GetID() string     { return c.ID }
func (c *OAuthClient) GetSecret() string { return c.Secret }
func (c *OAuthClient) GetDomain() string { return c.Domain }
func (c *OAuthClient) IsPublic() bool    { return false }

func (c *OAuthClient) GetUserID() string {
	if c.UserID == 0 {
		return ""
	}
	return strconv.FormatUint(uint64(c.UserID), 10)
}

// VerifyPassword compares a plain secret against the stored bcrypt hash.
func (c *OAuthClient) VerifyPassword(secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.Secret), []byte(secret)) == nil
}
