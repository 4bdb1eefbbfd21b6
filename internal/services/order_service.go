package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/errs"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var tracer = otel.Tracer("github.com/franciscosanchezn/gin-pizza-orders/internal/services")

// OrderFilter narrows ListOrders by exact match. Nil fields are ignored.
type OrderFilter struct {
	CustomerID *uint
	OrderState *models.OrderState
}

// OrderPatch is an order update request. Fields is the raw set of keys the
// client sent; CustomerID and OrderState are only read for keys in Fields.
// A nil CustomerID with "customer" in Fields detaches the customer.
type OrderPatch struct {
	Fields     []string
	CustomerID *uint
	OrderState models.OrderState
}

func (p OrderPatch) has(field string) bool {
	for _, f := range p.Fields {
		if f == field {
			return true
		}
	}
	return false
}

// OrderService implements the order lifecycle
type OrderService interface {
	// CreateOrder opens an Accepted order for an existing customer
	CreateOrder(ctx context.Context, customerID *uint) (models.Order, error)
	// GetOrder returns the order with its item ids loaded
	GetOrder(ctx context.Context, id uint) (models.Order, error)
	ListOrders(ctx context.Context, filter OrderFilter) ([]models.Order, error)
	// UpdateOrder applies patch under a row lock, see CheckOrderUpdate
	UpdateOrder(ctx context.Context, id uint, patch OrderPatch) (models.Order, error)
	// DeleteOrder removes the order together with its items
	DeleteOrder(ctx context.Context, id uint) error
	GetOrderStatus(ctx context.Context, id uint) (models.OrderState, error)
}

type orderService struct {
	db *gorm.DB
}

func NewOrderService(db *gorm.DB) OrderService {
	return &orderService{db: db}
}

// lockOrder loads the order row with an exclusive lock held until tx ends.
// SQLite has no row locks and ignores the clause; its writer lock serializes
// the transaction instead.
func lockOrder(tx *gorm.DB, id uint) (models.Order, error) {
	var order models.Order
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).Take(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Order{}, errs.NewNotFoundError("order", id)
	}
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// customerExists checks a customer reference inside the caller's transaction.
func customerExists(tx *gorm.DB, id uint) error {
	var count int64
	if err := tx.Model(&models.Customer{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewValidationError(FieldCustomer,
			fmt.Sprintf("Invalid pk \"%d\" - object does not exist.", id))
	}
	return nil
}

func (s *orderService) CreateOrder(ctx context.Context, customerID *uint) (models.Order, error) {
	if customerID == nil || *customerID == 0 {
		return models.Order{}, errs.NewValidationError(FieldCustomer, "customer field must be specified")
	}

	order := models.Order{CustomerID: customerID, OrderState: models.OrderAccepted}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := customerExists(tx, *customerID); err != nil {
			return err
		}
		return tx.Create(&order).Error
	})
	if err != nil {
		return models.Order{}, err
	}

	log.WithFields(log.Fields{"order_id": order.ID, "customer_id": *customerID}).Info("Order created")
	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, id uint) (models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).
		Preload("Items", newestFirst).
		Where("id = ?", id).
		Take(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Order{}, errs.NewNotFoundError("order", id)
	}
	if err != nil {
		return models.Order{}, err
	}
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, filter OrderFilter) ([]models.Order, error) {
	query := s.db.WithContext(ctx).Preload("Items", newestFirst).Scopes(newestFirst)
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.OrderState != nil {
		query = query.Where("order_state = ?", *filter.OrderState)
	}

	orders := []models.Order{}
	if err := query.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *orderService) UpdateOrder(ctx context.Context, id uint, patch OrderPatch) (models.Order, error) {
	ctx, span := tracer.Start(ctx, "OrderService.UpdateOrder")
	defer span.End()
	span.SetAttributes(attribute.Int64("order.id", int64(id)), attribute.StringSlice("order.fields", patch.Fields))

	var previous models.OrderState
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order, err := lockOrder(tx, id)
		if err != nil {
			return err
		}
		previous = order.OrderState

		if err := CheckOrderUpdate(order.OrderState, patch.Fields); err != nil {
			log.WithFields(log.Fields{
				"order_id":    id,
				"order_state": order.OrderState,
				"fields":      patch.Fields,
			}).Warn("Rejected update of locked order")
			return err
		}

		updates := map[string]interface{}{}
		if patch.has(FieldCustomer) {
			if patch.CustomerID == nil {
				updates["customer_id"] = nil
			} else {
				if err := customerExists(tx, *patch.CustomerID); err != nil {
					return err
				}
				updates["customer_id"] = *patch.CustomerID
			}
		}
		if patch.has(FieldOrderState) {
			if !patch.OrderState.Valid() {
				return errs.NewValidationError(FieldOrderState,
					fmt.Sprintf("%q is not a valid choice.", patch.OrderState))
			}
			updates["order_state"] = patch.OrderState
		}
		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&order).Updates(updates).Error
	})
	if err != nil {
		span.RecordError(err)
		return models.Order{}, err
	}

	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return models.Order{}, err
	}
	if order.OrderState != previous {
		log.WithFields(log.Fields{
			"order_id": id,
			"from":     previous,
			"to":       order.OrderState,
		}).Info("Order state changed")
	}
	return order, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := lockOrder(tx, id); err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Order{}).Error
	})
	if err != nil {
		return err
	}
	log.WithField("order_id", id).Info("Order deleted")
	return nil
}

func (s *orderService) GetOrderStatus(ctx context.Context, id uint) (models.OrderState, error) {
	var order models.Order
	err := s.db.WithContext(ctx).Select("id", "order_state").Where("id = ?", id).Take(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", errs.NewNotFoundError("order", id)
	}
	if err != nil {
		return "", err
	}
	return order.OrderState, nil
}
