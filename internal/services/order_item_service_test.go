package services

import (
	"testing"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/errs"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderItemByOrderState(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)
	items := NewOrderItemService(db)

	testCases := []struct {
		state   models.OrderState
		allowed bool
	}{
		{models.OrderAccepted, true},
		{models.OrderProcessing, true},
		{models.OrderSent, false},
		{models.OrderDelivered, false},
		{models.OrderCanceled, false},
	}
	for _, tt := range testCases {
		t.Run(tt.state.Label(), func(t *testing.T) {
			order := createOrder(t, db, f.customer.ID, tt.state)
			item, err := items.CreateOrderItem(testCtx, order.ID, itemInput(f.pizza.ID, f.size.ID, 2))
			if tt.allowed {
				require.NoError(t, err)
				assert.Equal(t, order.ID, item.OrderID)
				assert.True(t, item.IsActive)
				return
			}
			assert.ErrorIs(t, err, errs.ErrValidation)

			var count int64
			require.NoError(t, db.Model(&models.OrderItem{}).Where("order_id = ?", order.ID).Count(&count).Error)
			assert.Zero(t, count)
		})
	}
}

func TestCreateOrderItemValidation(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)
	order := createOrder(t, db, f.customer.ID, models.OrderAccepted)
	items := NewOrderItemService(db)

	t.Run("unknown order", func(t *testing.T) {
		_, err := items.CreateOrderItem(testCtx, 999, itemInput(f.pizza.ID, f.size.ID, 1))
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("number of pizzas must be positive", func(t *testing.T) {
		for _, n := range []int{0, -3} {
			_, err := items.CreateOrderItem(testCtx, order.ID, itemInput(f.pizza.ID, f.size.ID, n))
			var validationErr *errs.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, "number_of_pizzas", validationErr.Field)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := items.CreateOrderItem(testCtx, order.ID, OrderItemInput{})
		assert.EqualError(t, err, "pizza_name: This field is required.")
	})

	t.Run("unknown pizza", func(t *testing.T) {
		_, err := items.CreateOrderItem(testCtx, order.ID, itemInput(999, f.size.ID, 1))
		assert.EqualError(t, err, `pizza_name: Invalid pk "999" - object does not exist.`)
	})

	t.Run("soft-deleted pizza", func(t *testing.T) {
		retired := models.Pizza{Name: "Hawaii"}
		require.NoError(t, db.Create(&retired).Error)
		require.NoError(t, NewCatalogService(db).SoftDeletePizza(testCtx, retired.ID))

		_, err := items.CreateOrderItem(testCtx, order.ID, itemInput(retired.ID, f.size.ID, 1))
		var validationErr *errs.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "pizza_name", validationErr.Field)
	})

	t.Run("soft-deleted size", func(t *testing.T) {
		retired := models.PizzaSize{SizeName: models.SizeXLarge}
		require.NoError(t, db.Create(&retired).Error)
		require.NoError(t, NewCatalogService(db).SoftDeleteSize(testCtx, retired.ID))

		_, err := items.CreateOrderItem(testCtx, order.ID, itemInput(f.pizza.ID, retired.ID, 1))
		var validationErr *errs.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "pizza_size", validationErr.Field)
	})
}

func TestOrderItemLookups(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)
	first := createOrder(t, db, f.customer.ID, models.OrderAccepted)
	second := createOrder(t, db, f.customer.ID, models.OrderProcessing)
	items := NewOrderItemService(db)

	a, err := items.CreateOrderItem(testCtx, first.ID, itemInput(f.pizza.ID, f.size.ID, 1))
	require.NoError(t, err)
	b, err := items.CreateOrderItem(testCtx, second.ID, itemInput(f.pizza.ID, f.size.ID, 3))
	require.NoError(t, err)

	t.Run("items of one order", func(t *testing.T) {
		list, err := items.ListOrderItems(testCtx, first.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, a.ID, list[0].ID)
	})

	t.Run("no order id yields nothing", func(t *testing.T) {
		list, err := items.ListOrderItems(testCtx, 0)
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})

	t.Run("item must belong to the order", func(t *testing.T) {
		got, err := items.GetOrderItem(testCtx, second.ID, b.ID)
		require.NoError(t, err)
		assert.Equal(t, int16(3), got.NumberOfPizzas)

		_, err = items.GetOrderItem(testCtx, first.ID, b.ID)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("flat listing", func(t *testing.T) {
		list, err := items.ListItems(testCtx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, b.ID, list[0].ID)

		got, err := items.GetItem(testCtx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, first.ID, got.OrderID)

		_, err = items.GetItem(testCtx, 999)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("order exposes item ids", func(t *testing.T) {
		order, err := NewOrderService(db).GetOrder(testCtx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, []uint{a.ID}, order.ItemIDs())
	})
}
