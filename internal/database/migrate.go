package database

import (
	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"gorm.io/gorm"
)

// Migrate creates or updates every table the API uses. Referenced tables are
// listed before the tables pointing at them.
func Migrate(db *gorm.DB) error {
	log.Info("Running database migrations")
	return db.AutoMigrate(
		&models.Customer{},
		&models.Pizza{},
		&models.PizzaSize{},
		&models.Order{},
		&models.OrderItem{},
		&models.User{},
		&models.OAuthClient{},
		&models.OAuthCode{},
		&models.OAuthToken{},
	)
}
