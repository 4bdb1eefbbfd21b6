package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/errs"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/validation"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"
)

// OrderItemInput is the body of an add-item request. The parent order always
// comes from the URL.
type OrderItemInput struct {
	PizzaID        *uint `json:"pizza_name" validate:"required"`
	PizzaSizeID    *uint `json:"pizza_size" validate:"required"`
	NumberOfPizzas *int  `json:"number_of_pizzas" validate:"required,min=1,max=32767"`
}

// OrderItemService manages the items of an order
type OrderItemService interface {
	// CreateOrderItem adds an item to an Accepted or Processing order. The
	// order row stays locked from the state check until the insert commits.
	CreateOrderItem(ctx context.Context, orderID uint, input OrderItemInput) (models.OrderItem, error)
	// ListOrderItems returns the items of one order, or nothing without an order id
	ListOrderItems(ctx context.Context, orderID uint) ([]models.OrderItem, error)
	// GetOrderItem returns an item only if it belongs to the order
	GetOrderItem(ctx context.Context, orderID, itemID uint) (models.OrderItem, error)
	// ListItems returns the items of every order
	ListItems(ctx context.Context) ([]models.OrderItem, error)
	GetItem(ctx context.Context, id uint) (models.OrderItem, error)
}

type orderItemService struct {
	db *gorm.DB
}

func NewOrderItemService(db *gorm.DB) OrderItemService {
	return &orderItemService{db: db}
}

// invalidPK mirrors the message of a reference to a row outside the
// selectable set.
func invalidPK(field string, id uint) error {
	return errs.NewValidationError(field, fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", id))
}

func (s *orderItemService) CreateOrderItem(ctx context.Context, orderID uint, input OrderItemInput) (models.OrderItem, error) {
	ctx, span := tracer.Start(ctx, "OrderItemService.CreateOrderItem")
	defer span.End()
	span.SetAttributes(attribute.Int64("order.id", int64(orderID)))

	if err := validation.Struct(input); err != nil {
		return models.OrderItem{}, err
	}

	var item models.OrderItem
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order, err := lockOrder(tx, orderID)
		if err != nil {
			return err
		}
		if !order.OrderState.AcceptsItems() {
			return errs.NewValidationError("order", fmt.Sprintf(
				"Items can only be added to accepted or processing orders. Order %d is in state: %s",
				orderID, order.OrderState))
		}

		var pizza models.Pizza
		if err := tx.Scopes(notDeleted).Where("id = ?", *input.PizzaID).Take(&pizza).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return invalidPK("pizza_name", *input.PizzaID)
			}
			return err
		}
		var size models.PizzaSize
		if err := tx.Scopes(notDeleted).Where("id = ?", *input.PizzaSizeID).Take(&size).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return invalidPK("pizza_size", *input.PizzaSizeID)
			}
			return err
		}

		item = models.OrderItem{
			OrderID:        order.ID,
			PizzaID:        &pizza.ID,
			PizzaSizeID:    &size.ID,
			NumberOfPizzas: int16(*input.NumberOfPizzas),
			IsActive:       true,
		}
		return tx.Create(&item).Error
	})
	if err != nil {
		span.RecordError(err)
		return models.OrderItem{}, err
	}

	log.WithFields(log.Fields{
		"order_id":         orderID,
		"item_id":          item.ID,
		"number_of_pizzas": item.NumberOfPizzas,
	}).Info("Order item created")
	return item, nil
}

func (s *orderItemService) ListOrderItems(ctx context.Context, orderID uint) ([]models.OrderItem, error) {
	items := []models.OrderItem{}
	if orderID == 0 {
		return items, nil
	}
	if err := s.db.WithContext(ctx).Scopes(newestFirst).Where("order_id = ?", orderID).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *orderItemService) GetOrderItem(ctx context.Context, orderID, itemID uint) (models.OrderItem, error) {
	var item models.OrderItem
	err := s.db.WithContext(ctx).Where("id = ? AND order_id = ?", itemID, orderID).Take(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.OrderItem{}, errs.NewNotFoundError("order item", itemID)
	}
	if err != nil {
		return models.OrderItem{}, err
	}
	return item, nil
}

func (s *orderItemService) ListItems(ctx context.Context) ([]models.OrderItem, error) {
	items := []models.OrderItem{}
	if err := s.db.WithContext(ctx).Scopes(newestFirst).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *orderItemService) GetItem(ctx context.Context, id uint) (models.OrderItem, error) {
	var item models.OrderItem
	err := s.db.WithContext(ctx).Where("id = ?", id).Take(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.OrderItem{}, errs.NewNotFoundError("order item", id)
	}
	if err != nil {
		return models.OrderItem{}, err
	}
	return item, nil
}
