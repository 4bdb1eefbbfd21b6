package database

import (
	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Seed fills an empty catalog with the four sizes and a few pizzas. It does
// nothing once any pizza or size exists, deleted ones included.
func Seed(db *gorm.DB) error {
	var pizzas, sizes int64
	if err := db.Model(&models.Pizza{}).Count(&pizzas).Error; err != nil {
		return err
	}
	if err := db.Model(&models.PizzaSize{}).Count(&sizes).Error; err != nil {
		return err
	}
	if pizzas > 0 || sizes > 0 {
		log.Info("Database already seeded with initial data")
		return nil
	}

	log.Info("Database is empty, seeding initial data")
	return db.Transaction(func(tx *gorm.DB) error {
		for _, name := range []models.SizeName{models.SizeSmall, models.SizeMedium, models.SizeLarge, models.SizeXLarge} {
			if err := tx.Create(&models.PizzaSize{SizeName: name}).Error; err != nil {
				return err
			}
		}
		for _, name := range []string{"Margherita", "Pepperoni", "Vegetarian", "Quattro Formaggi"} {
			if err := tx.Create(&models.Pizza{Name: name}).Error; err != nil {
				return err
			}
		}
		log.WithFields(logrus.Fields{"sizes": 4, "pizzas": 4}).Info("Database seeded successfully")
		return nil
	})
}
