package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/go-oauth2/oauth2/v4"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// CustomJWTAccessGenerate generates JWT access tokens with custom claims including UserID and Role
type CustomJWTAccessGenerate struct {
	SignedKey    []byte
	SignedMethod jwt.SigningMethod
	DB           *gorm.DB // Database connection to fetch user information
}

// NewCustomJWTAccessGenerate creates a new custom JWT access token generator
func NewCustomJWTAccessGenerate(key []byte, method jwt.SigningMethod, db *gorm.DB) *CustomJWTAccessGenerate {
	return &CustomJWTAccessGenerate{
		SignedKey:    key,
		SignedMethod: method,
		DB:           db,
	}
}

// Token generates a JWT access token with custom claims
// This method is called by the OAuth2 library to generate access tokens
func (g *CustomJWTAccessGenerate) Token(ctx context.Context, data *oauth2.GenerateBasic, isGenRefresh bool) (string, string, error) {
	createdAt := data.TokenInfo.GetAccessCreateAt()
	claims := jwt.MapClaims{
		"aud": data.Client.GetID(),
		"iat": createdAt.Unix(),
		"exp": createdAt.Add(data.TokenInfo.GetAccessExpiresIn()).Unix(),
	}

	// client credentials carry no user, the client owner stands in
	userID := data.UserID
	if userID == "" {
		userID = data.Client.GetUserID()
	}
	if userID == "" {
		return "", "", fmt.Errorf("cannot generate token: client %s has no owner", data.Client.GetID())
	}
	claims["uid"] = userID

	role, err := g.getUserRole(ctx, userID)
	if err != nil {
		return "", "", fmt.Errorf("failed to fetch user role: %w", err)
	}
	claims["role"] = role

	if data.TokenInfo.GetScope() != "" {
		claims["scope"] = data.TokenInfo.GetScope()
	}

	token := jwt.NewWithClaims(g.SignedMethod, claims)
	access, err := token.SignedString(g.SignedKey)
	if err != nil {
		return "", "", err
	}

	refresh := ""
	if isGenRefresh {
		refreshClaims := jwt.MapClaims{
			"id":  access,
			"exp": data.TokenInfo.GetRefreshCreateAt().Add(data.TokenInfo.GetRefreshExpiresIn()).Unix(),
		}
		refresh, err = jwt.NewWithClaims(g.SignedMethod, refreshClaims).SignedString(g.SignedKey)
		if err != nil {
			return "", "", err
		}
	}

	return access, refresh, nil
}

// getUserRole reads the role from the users table so a token never claims
// more than its owner currently has
func (g *CustomJWTAccessGenerate) getUserRole(ctx context.Context, userIDStr string) (string, error) {
	userID, err := strconv.ParseUint(userIDStr, 10, 32)
	if err != nil {
		return "", fmt.Errorf("invalid user ID format: %w", err)
	}

	var user models.User
	if err := g.DB.WithContext(ctx).Where("id = ?", userID).Take(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("user with ID %d not found", userID)
		}
		return "", fmt.Errorf("database error: %w", err)
	}

	if user.Role == "" {
		return models.RoleUser, nil
	}
	return user.Role, nil
}
