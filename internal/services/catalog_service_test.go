package services

import (
	"strings"
	"testing"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/errs"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogPizzaLifecycle(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalogService(db)

	pizza, err := catalog.CreatePizza(testCtx, "  Diavola ")
	require.NoError(t, err)
	assert.Equal(t, "Diavola", pizza.Name)
	assert.False(t, pizza.IsDeleted)

	renamed, err := catalog.UpdatePizza(testCtx, pizza.ID, "Diavola Piccante")
	require.NoError(t, err)
	assert.Equal(t, "Diavola Piccante", renamed.Name)

	require.NoError(t, catalog.SoftDeletePizza(testCtx, pizza.ID))

	_, err = catalog.GetPizza(testCtx, pizza.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	pizzas, err := catalog.ListPizzas(testCtx)
	require.NoError(t, err)
	assert.Empty(t, pizzas)

	_, err = catalog.UpdatePizza(testCtx, pizza.ID, "Revived")
	assert.ErrorIs(t, err, errs.ErrNotFound)

	// the row is still there
	var stored models.Pizza
	require.NoError(t, db.Where("id = ?", pizza.ID).Take(&stored).Error)
	assert.True(t, stored.IsDeleted)
	assert.Equal(t, "Diavola Piccante", stored.Name)
}

func TestCatalogSoftDeleteIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalogService(db)
	pizza, err := catalog.CreatePizza(testCtx, "Funghi")
	require.NoError(t, err)

	require.NoError(t, catalog.SoftDeletePizza(testCtx, pizza.ID))
	require.NoError(t, catalog.SoftDeletePizza(testCtx, pizza.ID))

	err = catalog.SoftDeletePizza(testCtx, 999)
	var notFound *errs.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "pizza", notFound.Resource)
}

func TestCatalogPizzaValidation(t *testing.T) {
	catalog := NewCatalogService(setupTestDB(t))

	testCases := []struct {
		name    string
		input   string
		message string
	}{
		{"blank", "   ", "This field may not be blank."},
		{"too long", strings.Repeat("a", 251), "Ensure this field has no more than 250 characters."},
		{"too many accented characters", strings.Repeat("é", 251), "Ensure this field has no more than 250 characters."},
	}
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.CreatePizza(testCtx, tt.input)
			var validationErr *errs.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, "name", validationErr.Field)
			assert.Equal(t, tt.message, validationErr.Message)
		})
	}
}

func TestCatalogPizzaNameCountsCharacters(t *testing.T) {
	catalog := NewCatalogService(setupTestDB(t))

	name := strings.Repeat("é", 250)
	pizza, err := catalog.CreatePizza(testCtx, name)
	require.NoError(t, err)
	assert.Equal(t, name, pizza.Name)

	renamed, err := catalog.UpdatePizza(testCtx, pizza.ID, strings.Repeat("ж", 200))
	require.NoError(t, err)
	assert.Equal(t, 200, len([]rune(renamed.Name)))
}

func TestCatalogHardDeleteNullsItemReferences(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)
	catalog := NewCatalogService(db)
	order := createOrder(t, db, f.customer.ID, models.OrderAccepted)

	item, err := NewOrderItemService(db).CreateOrderItem(testCtx, order.ID, itemInput(f.pizza.ID, f.size.ID, 2))
	require.NoError(t, err)

	require.NoError(t, catalog.HardDeletePizza(testCtx, f.pizza.ID))
	require.NoError(t, catalog.HardDeleteSize(testCtx, f.size.ID))

	var count int64
	require.NoError(t, db.Model(&models.Pizza{}).Where("id = ?", f.pizza.ID).Count(&count).Error)
	assert.Zero(t, count)

	var reloaded models.OrderItem
	require.NoError(t, db.Where("id = ?", item.ID).Take(&reloaded).Error)
	assert.Nil(t, reloaded.PizzaID)
	assert.Nil(t, reloaded.PizzaSizeID)
	assert.Equal(t, int16(2), reloaded.NumberOfPizzas)

	assert.ErrorIs(t, catalog.HardDeletePizza(testCtx, f.pizza.ID), errs.ErrNotFound)
}

func TestCatalogSizes(t *testing.T) {
	db := setupTestDB(t)
	catalog := NewCatalogService(db)

	size, err := catalog.CreateSize(testCtx, models.SizeLarge)
	require.NoError(t, err)
	assert.Equal(t, models.SizeLarge, size.SizeName)

	t.Run("duplicate", func(t *testing.T) {
		_, err := catalog.CreateSize(testCtx, models.SizeLarge)
		var validationErr *errs.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "sizename", validationErr.Field)
	})

	t.Run("duplicate of a deleted size", func(t *testing.T) {
		require.NoError(t, catalog.SoftDeleteSize(testCtx, size.ID))
		_, err := catalog.CreateSize(testCtx, models.SizeLarge)
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("invalid choice", func(t *testing.T) {
		_, err := catalog.CreateSize(testCtx, models.SizeName("XXL"))
		assert.ErrorIs(t, err, errs.ErrValidation)
	})

	t.Run("missing", func(t *testing.T) {
		_, err := catalog.CreateSize(testCtx, "")
		assert.EqualError(t, err, "sizename: This field may not be blank.")
	})

	t.Run("deleted sizes are hidden", func(t *testing.T) {
		sizes, err := catalog.ListSizes(testCtx)
		require.NoError(t, err)
		assert.Empty(t, sizes)

		_, err = catalog.GetSize(testCtx, size.ID)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestCatalogListsNewestFirst(t *testing.T) {
	catalog := NewCatalogService(setupTestDB(t))
	for _, name := range []string{"First", "Second", "Third"} {
		_, err := catalog.CreatePizza(testCtx, name)
		require.NoError(t, err)
	}

	pizzas, err := catalog.ListPizzas(testCtx)
	require.NoError(t, err)
	require.Len(t, pizzas, 3)
	assert.Equal(t, "Third", pizzas[0].Name)
	assert.Equal(t, "First", pizzas[2].Name)
}
