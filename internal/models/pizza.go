package models

import "time"

// Pizza is a catalog entry. Deleting a pizza only raises IsDeleted; the row
// stays so order items keep pointing at it.
type Pizza struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:250;not null"`
	IsDeleted bool      `json:"-" gorm:"not null;default:false;index"`
	CreatedAt time.Time `json:"created" gorm:"index"`
	UpdatedAt time.Time `json:"updated"`
}

func (Pizza) TableName() string {
	return "pizzas"
}

// SizeName is the stored code of a pizza size
type SizeName string

const (
	SizeSmall  SizeName = "S"
	SizeMedium SizeName = "M"
	SizeLarge  SizeName = "L"
	SizeXLarge SizeName = "X"
)

var sizeLabels = map[SizeName]string{
	SizeSmall:  "Small",
	SizeMedium: "Medium",
	SizeLarge:  "Large",
	SizeXLarge: "X-Large",
}

// Valid reports whether s is one of the four known size codes.
func (s SizeName) Valid() bool {
	_, ok := sizeLabels[s]
	return ok
}

// Label returns the display name, e.g. "X-Large".
func (s SizeName) Label() string {
	if label, ok := sizeLabels[s]; ok {
		return label
	}
	return "Unknown"
}

// PizzaSize follows the same soft-delete contract as Pizza.
type PizzaSize struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	SizeName  SizeName  `json:"sizename" gorm:"column:sizename;size:1;not null;uniqueIndex"`
	IsDeleted bool      `json:"-" gorm:"not null;default:false;index"`
	CreatedAt time.Time `json:"created" gorm:"index"`
	UpdatedAt time.Time `json:"updated"`
}

func (PizzaSize) TableName() string {
	return "pizza_sizes"
}
