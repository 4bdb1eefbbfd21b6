package services

import (
	"context"
	"errors"
	"strings"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/errs"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/validation"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CatalogService manages pizzas and pizza sizes. Both are soft-deleted: the
// default scope hides rows with is_deleted set, and the only way to physically
// remove a row is the explicit HardDelete* path used by admin tooling.
type CatalogService interface {
	// ListPizzas returns the visible pizzas, newest first
	ListPizzas(ctx context.Context) ([]models.Pizza, error)
	// GetPizza returns a visible pizza or a NotFoundError
	GetPizza(ctx context.Context, id uint) (models.Pizza, error)
	CreatePizza(ctx context.Context, name string) (models.Pizza, error)
	// UpdatePizza renames a visible pizza
	UpdatePizza(ctx context.Context, id uint, name string) (models.Pizza, error)
	// SoftDeletePizza flags the pizza as deleted. Calling it again is a no-op.
	SoftDeletePizza(ctx context.Context, id uint) error
	// HardDeletePizza removes the row and clears order item references to it
	HardDeletePizza(ctx context.Context, id uint) error

	ListSizes(ctx context.Context) ([]models.PizzaSize, error)
	GetSize(ctx context.Context, id uint) (models.PizzaSize, error)
	CreateSize(ctx context.Context, name models.SizeName) (models.PizzaSize, error)
	SoftDeleteSize(ctx context.Context, id uint) error
	HardDeleteSize(ctx context.Context, id uint) error
}

type catalogService struct {
	db *gorm.DB
}

// NewCatalogService creates a new instance of CatalogService
func NewCatalogService(db *gorm.DB) CatalogService {
	return &catalogService{db: db}
}

// notDeleted is the default scope for catalog queries.
func notDeleted(db *gorm.DB) *gorm.DB {
	return db.Where("is_deleted = ?", false)
}

// newestFirst is the default ordering of every listing.
func newestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC").Order("id DESC")
}

func validatePizzaName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if err := validation.Var("name", name, "required,max=250"); err != nil {
		return "", err
	}
	return name, nil
}

func (s *catalogService) ListPizzas(ctx context.Context) ([]models.Pizza, error) {
	pizzas := []models.Pizza{}
	if err := s.db.WithContext(ctx).Scopes(notDeleted, newestFirst).Find(&pizzas).Error; err != nil {
		return nil, err
	}
	return pizzas, nil
}

func (s *catalogService) GetPizza(ctx context.Context, id uint) (models.Pizza, error) {
	var pizza models.Pizza
	err := s.db.WithContext(ctx).Scopes(notDeleted).Where("id = ?", id).Take(&pizza).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Pizza{}, errs.NewNotFoundError("pizza", id)
	}
	if err != nil {
		return models.Pizza{}, err
	}
	return pizza, nil
}

func (s *catalogService) CreatePizza(ctx context.Context, name string) (models.Pizza, error) {
	name, err := validatePizzaName(name)
	if err != nil {
		return models.Pizza{}, err
	}

	pizza := models.Pizza{Name: name}
	if err := s.db.WithContext(ctx).Create(&pizza).Error; err != nil {
		return models.Pizza{}, err
	}
	log.WithFields(log.Fields{"pizza_id": pizza.ID, "name": pizza.Name}).Info("Pizza created")
	return pizza, nil
}

func (s *catalogService) UpdatePizza(ctx context.Context, id uint, name string) (models.Pizza, error) {
	name, err := validatePizzaName(name)
	if err != nil {
		return models.Pizza{}, err
	}

	pizza, err := s.GetPizza(ctx, id)
	if err != nil {
		return models.Pizza{}, err
	}
	pizza.Name = name
	if err := s.db.WithContext(ctx).Save(&pizza).Error; err != nil {
		return models.Pizza{}, err
	}
	return pizza, nil
}

func (s *catalogService) SoftDeletePizza(ctx context.Context, id uint) error {
	return s.softDelete(ctx, &models.Pizza{}, "pizza", id)
}

func (s *catalogService) HardDeletePizza(ctx context.Context, id uint) error {
	return s.hardDelete(ctx, &models.Pizza{}, "pizza", "pizza_name_id", id)
}

func (s *catalogService) ListSizes(ctx context.Context) ([]models.PizzaSize, error) {
	sizes := []models.PizzaSize{}
	if err := s.db.WithContext(ctx).Scopes(notDeleted, newestFirst).Find(&sizes).Error; err != nil {
		return nil, err
	}
	return sizes, nil
}

func (s *catalogService) GetSize(ctx context.Context, id uint) (models.PizzaSize, error) {
	var size models.PizzaSize
	err := s.db.WithContext(ctx).Scopes(notDeleted).Where("id = ?", id).Take(&size).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.PizzaSize{}, errs.NewNotFoundError("pizza size", id)
	}
	if err != nil {
		return models.PizzaSize{}, err
	}
	return size, nil
}

func (s *catalogService) CreateSize(ctx context.Context, name models.SizeName) (models.PizzaSize, error) {
	if err := validation.Var("sizename", string(name), "required,oneof=S M L X"); err != nil {
		return models.PizzaSize{}, err
	}

	// sizename is unique across soft-deleted rows too
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.PizzaSize{}).Where("sizename = ?", name).Count(&count).Error; err != nil {
		return models.PizzaSize{}, err
	}
	if count > 0 {
		return models.PizzaSize{}, duplicateSizeError()
	}

	size := models.PizzaSize{SizeName: name}
	if err := s.db.WithContext(ctx).Create(&size).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.PizzaSize{}, duplicateSizeError()
		}
		return models.PizzaSize{}, err
	}
	log.WithFields(log.Fields{"size_id": size.ID, "sizename": size.SizeName}).Info("Pizza size created")
	return size, nil
}

func duplicateSizeError() error {
	return errs.NewValidationError("sizename", "pizza size with this Size already exists.")
}

func (s *catalogService) SoftDeleteSize(ctx context.Context, id uint) error {
	return s.softDelete(ctx, &models.PizzaSize{}, "pizza size", id)
}

func (s *catalogService) HardDeleteSize(ctx context.Context, id uint) error {
	return s.hardDelete(ctx, &models.PizzaSize{}, "pizza size", "pizza_size_id", id)
}

// softDelete raises is_deleted on the row, ignoring the default scope so that
// deleting an already deleted row succeeds.
func (s *catalogService) softDelete(ctx context.Context, model interface{}, resource string, id uint) error {
	db := s.db.WithContext(ctx)

	var count int64
	if err := db.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewNotFoundError(resource, id)
	}

	if err := db.Model(model).Where("id = ? AND is_deleted = ?", id, false).Update("is_deleted", true).Error; err != nil {
		return err
	}
	log.WithFields(log.Fields{"resource": resource, "id": id}).Info("Catalog entry soft-deleted")
	return nil
}

// hardDelete physically removes the row. Order items pointing at it keep
// existing with a NULL reference.
func (s *catalogService) hardDelete(ctx context.Context, model interface{}, resource, itemColumn string, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.OrderItem{}).Where(itemColumn+" = ?", id).Update(itemColumn, nil).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(model)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewNotFoundError(resource, id)
		}
		return nil
	})
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"resource": resource, "id": id}).Warn("Catalog entry permanently deleted")
	return nil
}
