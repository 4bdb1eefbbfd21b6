package auth

import (
	"context"
	"errors"
	"time"

	internalmodels "github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/go-oauth2/oauth2/v4"
	oauth2errors "github.com/go-oauth2/oauth2/v4/errors"
	"github.com/go-oauth2/oauth2/v4/models"
	"gorm.io/gorm"
)

type GormClientStore struct {
	db *gorm.DB
}

func NewGormClientStore(db *gorm.DB) *GormClientStore {
	return &GormClientStore{db: db}
}

// GetByID returns our OAuthClient, which verifies secrets against the bcrypt hash
func (s *GormClientStore) GetByID(ctx context.Context, id string) (oauth2.ClientInfo, error) {
	var client internalmodels.OAuthClient
	err := s.db.WithContext(ctx).Where("id = ?", id).Take(&client).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, oauth2errors.ErrInvalidClient
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

type GormTokenStore struct {
	db *gorm.DB
}

func NewGormTokenStore(db *gorm.DB) *GormTokenStore {
	return &GormTokenStore{db: db}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (s *GormTokenStore) Create(ctx context.Context, info oauth2.TokenInfo) error {
	if code := info.GetCode(); code != "" {
		return s.CreateCode(ctx, info)
	}

	token := &internalmodels.OAuthToken{
		ClientID:     info.GetClientID(),
		UserID:       optional(info.GetUserID()),
		AccessToken:  info.GetAccess(),
		RefreshToken: optional(info.GetRefresh()),
		Scopes:       info.GetScope(),
		ExpiresAt:    info.GetAccessCreateAt().Add(info.GetAccessExpiresIn()),
	}

	return s.db.WithContext(ctx).Create(token).Error
}

func (s *GormTokenStore) RemoveByAccess(ctx context.Context, access string) error {
	return s.db.WithContext(ctx).Where("access_token = ?", access).Delete(&internalmodels.OAuthToken{}).Error
}

func (s *GormTokenStore) RemoveByRefresh(ctx context.Context, refresh string) error {
	return s.db.WithContext(ctx).Where("refresh_token = ?", refresh).Delete(&internalmodels.OAuthToken{}).Error
}

func (s *GormTokenStore) GetByAccess(ctx context.Context, access string) (oauth2.TokenInfo, error) {
	return s.getToken(ctx, "access_token = ?", access)
}

func (s *GormTokenStore) GetByRefresh(ctx context.Context, refresh string) (oauth2.TokenInfo, error) {
	return s.getToken(ctx, "refresh_token = ?", refresh)
}

func (s *GormTokenStore) getToken(ctx context.Context, query string, value string) (oauth2.TokenInfo, error) {
	var token internalmodels.OAuthToken
	err := s.db.WithContext(ctx).Where(query, value).Take(&token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &models.Token{
		ClientID:        token.ClientID,
		UserID:          deref(token.UserID),
		Access:          token.AccessToken,
		AccessCreateAt:  token.CreatedAt,
		AccessExpiresIn: token.ExpiresAt.Sub(token.CreatedAt),
		Refresh:         deref(token.RefreshToken),
		Scope:           token.Scopes,
	}, nil
}

// PurgeExpired deletes access tokens past their expiry
func (s *GormTokenStore) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	result := s.db.WithContext(ctx).Where("expires_at < ?", now).Delete(&internalmodels.OAuthToken{})
	return result.RowsAffected, result.Error
}

func (s *GormTokenStore) GetByCode(ctx context.Context, code string) (oauth2.TokenInfo, error) {
	var oauthCode internalmodels.OAuthCode
	err := s.db.WithContext(ctx).Where("code = ?", code).Take(&oauthCode).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if time.Now().After(oauthCode.ExpiresAt) {
		return nil, nil
	}

	return &models.Token{
		ClientID:      oauthCode.ClientID,
		UserID:        oauthCode.UserID,
		Code:          oauthCode.Code,
		CodeCreateAt:  oauthCode.CreatedAt,
		CodeExpiresIn: oauthCode.ExpiresAt.Sub(oauthCode.CreatedAt),
		RedirectURI:   oauthCode.RedirectURI,
		Scope:         oauthCode.Scopes,
	}, nil
}

func (s *GormTokenStore) RemoveByCode(ctx context.Context, code string) error {
	return s.db.WithContext(ctx).Where("code = ?", code).Delete(&internalmodels.OAuthCode{}).Error
}

func (s *GormTokenStore) CreateCode(ctx context.Context, info oauth2.TokenInfo) error {
	code := &internalmodels.OAuthCode{
		ClientID:    info.GetClientID(),
		UserID:      info.GetUserID(),
		Code:        info.GetCode(),
		RedirectURI: info.GetRedirectURI(),
		Scopes:      info.GetScope(),
		ExpiresAt:   info.GetCodeCreateAt().Add(info.GetCodeExpiresIn()),
	}

	return s.db.WithContext(ctx).Create(code).Error
}
