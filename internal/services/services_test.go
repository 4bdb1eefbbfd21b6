package services

import (
	"context"
	"testing"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/database"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

// fixture holds a small catalog and one customer
type fixture struct {
	customer models.Customer
	pizza    models.Pizza
	size     models.PizzaSize
}

func seedFixture(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	f := fixture{
		customer: models.Customer{Name: "Ana", Phone: "555-0101", Gender: models.GenderFemale},
		pizza:    models.Pizza{Name: "Margherita"},
		size:     models.PizzaSize{SizeName: models.SizeMedium},
	}
	require.NoError(t, db.Create(&f.customer).Error)
	require.NoError(t, db.Create(&f.pizza).Error)
	require.NoError(t, db.Create(&f.size).Error)
	return f
}

func createOrder(t *testing.T, db *gorm.DB, customerID uint, state models.OrderState) models.Order {
	t.Helper()
	order := models.Order{CustomerID: &customerID, OrderState: state}
	require.NoError(t, db.Create(&order).Error)
	return order
}

func itemInput(pizzaID, sizeID uint, n int) OrderItemInput {
	return OrderItemInput{PizzaID: &pizzaID, PizzaSizeID: &sizeID, NumberOfPizzas: &n}
}

var testCtx = context.Background()
