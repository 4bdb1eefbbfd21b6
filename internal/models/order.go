package models

import "time"

// OrderState is the one-letter lifecycle code stored on an order
type OrderState string

const (
	OrderCanceled   OrderState = "C"
	OrderAccepted   OrderState = "A"
	OrderProcessing OrderState = "P"
	OrderSent       OrderState = "S"
	OrderDelivered  OrderState = "D"
)

var orderStateLabels = map[OrderState]string{
	OrderCanceled:   "Canceled",
	OrderAccepted:   "Accepted",
	OrderProcessing: "Processing",
	OrderSent:       "Sent",
	OrderDelivered:  "Delivered",
}

func (s OrderState) Valid() bool {
	_, ok := orderStateLabels[s]
	return ok
}

func (s OrderState) Label() string {
	if label, ok := orderStateLabels[s]; ok {
		return label
	}
	return "Unknown"
}

// Locked reports whether the order has left the kitchen. A locked order only
// accepts a state-only update.
func (s OrderState) Locked() bool {
	return s == OrderSent || s == OrderDelivered
}

// AcceptsItems reports whether new items may be attached in this state.
func (s OrderState) AcceptsItems() bool {
	return s == OrderAccepted || s == OrderProcessing
}

type Order struct {
	ID         uint        `gorm:"primaryKey"`
	CustomerID *uint       `gorm:"index"`
	Customer   *Customer   `gorm:"constraint:OnDelete:SET NULL"`
	OrderState OrderState  `gorm:"size:1;not null;default:'A';index"`
	Items      []OrderItem `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time   `gorm:"index"`
	UpdatedAt  time.Time
}

func (Order) TableName() string {
	return "orders"
}

// ItemIDs returns the ids of the loaded items in their current order.
func (o Order) ItemIDs() []uint {
	ids := make([]uint, 0, len(o.Items))
	for _, item := range o.Items {
		ids = append(ids, item.ID)
	}
	return ids
}

// OrderItem is one line of an order. The catalog references become NULL when
// the referenced pizza or size row is purged.
type OrderItem struct {
	ID             uint       `gorm:"primaryKey"`
	OrderID        uint       `gorm:"not null;index"`
	PizzaID        *uint      `gorm:"column:pizza_name_id;index"`
	Pizza          *Pizza     `gorm:"foreignKey:PizzaID;constraint:OnDelete:SET NULL"`
	PizzaSizeID    *uint      `gorm:"column:pizza_size_id;index"`
	PizzaSize      *PizzaSize `gorm:"foreignKey:PizzaSizeID;constraint:OnDelete:SET NULL"`
	NumberOfPizzas int16      `gorm:"not null"`
	IsActive       bool       `gorm:"not null;default:true"`
	CreatedAt      time.Time  `gorm:"index"`
	UpdatedAt      time.Time
}

func (OrderItem) TableName() string {
	return "order_items"
}
