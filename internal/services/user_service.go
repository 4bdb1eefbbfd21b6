package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/errs"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"gorm.io/gorm"
)

// UserService manages the owners of OAuth clients
type UserService interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// EnsureUser returns the user with the e-mail, creating it with role when absent
	EnsureUser(ctx context.Context, email, name, role string) (*models.User, error)
}

type userService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) UserService {
	return &userService{db: db}
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.NewNotFoundError("user", email)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *userService) EnsureUser(ctx context.Context, email, name, role string) (*models.User, error) {
	if role != models.RoleAdmin && role != models.RoleUser {
		return nil, errs.NewValidationError("role", fmt.Sprintf("%q is not a valid role", role))
	}

	user, err := s.GetUserByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return nil, err
	}

	user = &models.User{Email: email, Name: name, Role: role}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
