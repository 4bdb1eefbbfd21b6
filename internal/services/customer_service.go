package services

import (
	"context"
	"errors"
	"strings"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/errs"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/validation"
	"gorm.io/gorm"
)

// CustomerPatch carries the customer fields present in an update request.
// A nil field keeps its stored value; an empty Email or ClearAge stores NULL.
type CustomerPatch struct {
	Email    *string
	Name     *string
	Phone    *string
	Age      *int
	ClearAge bool
	Gender   *models.Gender
}

// CustomerService provides plain CRUD over customers
type CustomerService interface {
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	GetCustomer(ctx context.Context, id uint) (models.Customer, error)
	CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error)
	UpdateCustomer(ctx context.Context, id uint, patch CustomerPatch) (models.Customer, error)
}

type customerService struct {
	db *gorm.DB
}

func NewCustomerService(db *gorm.DB) CustomerService {
	return &customerService{db: db}
}

func (s *customerService) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	customers := []models.Customer{}
	if err := s.db.WithContext(ctx).Scopes(newestFirst).Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (s *customerService) GetCustomer(ctx context.Context, id uint) (models.Customer, error) {
	var customer models.Customer
	err := s.db.WithContext(ctx).Where("id = ?", id).Take(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Customer{}, errs.NewNotFoundError("customer", id)
	}
	if err != nil {
		return models.Customer{}, err
	}
	return customer, nil
}

func (s *customerService) CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error) {
	customer.ID = 0
	customer.Name = strings.TrimSpace(customer.Name)
	customer.Phone = strings.TrimSpace(customer.Phone)
	if customer.Email != nil && *customer.Email == "" {
		customer.Email = nil
	}
	if err := validateCustomer(customer); err != nil {
		return models.Customer{}, err
	}

	if err := s.db.WithContext(ctx).Create(&customer).Error; err != nil {
		return models.Customer{}, err
	}
	return customer, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, id uint, patch CustomerPatch) (models.Customer, error) {
	customer, err := s.GetCustomer(ctx, id)
	if err != nil {
		return models.Customer{}, err
	}

	if patch.Email != nil {
		customer.Email = patch.Email
		if *patch.Email == "" {
			customer.Email = nil
		}
	}
	if patch.Name != nil {
		customer.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Phone != nil {
		customer.Phone = strings.TrimSpace(*patch.Phone)
	}
	if patch.Age != nil {
		customer.Age = patch.Age
	} else if patch.ClearAge {
		customer.Age = nil
	}
	if patch.Gender != nil {
		customer.Gender = *patch.Gender
	}
	if err := validateCustomer(customer); err != nil {
		return models.Customer{}, err
	}

	if err := s.db.WithContext(ctx).Save(&customer).Error; err != nil {
		return models.Customer{}, err
	}
	return customer, nil
}

// validateCustomer applies the `validate` rules of models.Customer. Lengths
// count characters, not bytes.
func validateCustomer(c models.Customer) error {
	return validation.Struct(c)
}
