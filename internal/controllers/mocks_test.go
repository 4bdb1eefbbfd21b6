package controllers

import (
	"context"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/services"
	"github.com/stretchr/testify/mock"
)

type mockCatalogService struct {
	mock.Mock
}

func (m *mockCatalogService) ListPizzas(ctx context.Context) ([]models.Pizza, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Pizza), args.Error(1)
}

func (m *mockCatalogService) GetPizza(ctx context.Context, id uint) (models.Pizza, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Pizza), args.Error(1)
}

func (m *mockCatalogService) CreatePizza(ctx context.Context, name string) (models.Pizza, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(models.Pizza), args.Error(1)
}

func (m *mockCatalogService) UpdatePizza(ctx context.Context, id uint, name string) (models.Pizza, error) {
	args := m.Called(ctx, id, name)
	return args.Get(0).(models.Pizza), args.Error(1)
}

func (m *mockCatalogService) SoftDeletePizza(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCatalogService) HardDeletePizza(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCatalogService) ListSizes(ctx context.Context) ([]models.PizzaSize, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.PizzaSize), args.Error(1)
}

func (m *mockCatalogService) GetSize(ctx context.Context, id uint) (models.PizzaSize, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.PizzaSize), args.Error(1)
}

func (m *mockCatalogService) CreateSize(ctx context.Context, name models.SizeName) (models.PizzaSize, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(models.PizzaSize), args.Error(1)
}

func (m *mockCatalogService) SoftDeleteSize(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockCatalogService) HardDeleteSize(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type mockOrderService struct {
	mock.Mock
}

func (m *mockOrderService) CreateOrder(ctx context.Context, customerID *uint) (models.Order, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(models.Order), args.Error(1)
}

func (m *mockOrderService) GetOrder(ctx context.Context, id uint) (models.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Order), args.Error(1)
}

func (m *mockOrderService) ListOrders(ctx context.Context, filter services.OrderFilter) ([]models.Order, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *mockOrderService) UpdateOrder(ctx context.Context, id uint, patch services.OrderPatch) (models.Order, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(models.Order), args.Error(1)
}

func (m *mockOrderService) DeleteOrder(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockOrderService) GetOrderStatus(ctx context.Context, id uint) (models.OrderState, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.OrderState), args.Error(1)
}

type mockOrderItemService struct {
	mock.Mock
}

func (m *mockOrderItemService) CreateOrderItem(ctx context.Context, orderID uint, input services.OrderItemInput) (models.OrderItem, error) {
	args := m.Called(ctx, orderID, input)
	return args.Get(0).(models.OrderItem), args.Error(1)
}

func (m *mockOrderItemService) ListOrderItems(ctx context.Context, orderID uint) ([]models.OrderItem, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).([]models.OrderItem), args.Error(1)
}

func (m *mockOrderItemService) GetOrderItem(ctx context.Context, orderID, itemID uint) (models.OrderItem, error) {
	args := m.Called(ctx, orderID, itemID)
	return args.Get(0).(models.OrderItem), args.Error(1)
}

func (m *mockOrderItemService) ListItems(ctx context.Context) ([]models.OrderItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.OrderItem), args.Error(1)
}

func (m *mockOrderItemService) GetItem(ctx context.Context, id uint) (models.OrderItem, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.OrderItem), args.Error(1)
}

type mockCustomerService struct {
	mock.Mock
}

func (m *mockCustomerService) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Customer), args.Error(1)
}

func (m *mockCustomerService) GetCustomer(ctx context.Context, id uint) (models.Customer, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Customer), args.Error(1)
}

func (m *mockCustomerService) CreateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error) {
	args := m.Called(ctx, customer)
	return args.Get(0).(models.Customer), args.Error(1)
}

func (m *mockCustomerService) UpdateCustomer(ctx context.Context, id uint, patch services.CustomerPatch) (models.Customer, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(models.Customer), args.Error(1)
}
