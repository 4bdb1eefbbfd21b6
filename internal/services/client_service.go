package services

import (
	"context"
	"errors"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/errs"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ClientService manages OAuth clients allowed to call the catalog admin routes
type ClientService interface {
	// CreateClient stores the client with a bcrypt hash of plainSecret
	CreateClient(ctx context.Context, client *models.OAuthClient, plainSecret string) error
	GetClientByID(ctx context.Context, id string) (*models.OAuthClient, error)
}

type clientService struct {
	db *gorm.DB
}

func NewClientService(db *gorm.DB) ClientService {
	return &clientService{db: db}
}

func (s *clientService) CreateClient(ctx context.Context, client *models.OAuthClient, plainSecret string) error {
	if plainSecret == "" {
		return errs.NewRequiredError("client_secret")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plainSecret), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	client.Secret = string(hash)
	return s.db.WithContext(ctx).Create(client).Error
}

func (s *clientService) GetClientByID(ctx context.Context, id string) (*models.OAuthClient, error) {
	var client models.OAuthClient
	err := s.db.WithContext(ctx).Where("id = ?", id).Take(&client).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFoundError("oauth client", id)
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}
