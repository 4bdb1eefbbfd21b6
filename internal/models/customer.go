package models

import "time"

type Gender string

const (
	GenderFemale Gender = "F"
	GenderMale   Gender = "M"
)

// Valid reports whether g is Female or Male.
func (g Gender) Valid() bool {
	return g == GenderFemale || g == GenderMale
}

// Customer places orders. Customers are never removed through the API.
type Customer struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     *string   `json:"email" gorm:"size:254" validate:"omitempty,max=254,email"`
	Name      string    `json:"name" gorm:"size:200;not null" validate:"required,max=200"`
	Phone     string    `json:"phone" gorm:"size:50;not null" validate:"required,max=50"`
	Age       *int      `json:"age" validate:"omitempty,min=0,max=32767"`
	Gender    Gender    `json:"gender" gorm:"size:1;not null" validate:"required,oneof=F M"`
	CreatedAt time.Time `json:"created" gorm:"index"`
	UpdatedAt time.Time `json:"updated"`
}

func (Customer) TableName() string {
	return "customers"
}
