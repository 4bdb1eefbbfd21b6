package controllers

import (
	"time"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
)

// PizzaRequest is the body of a pizza creation or replacement
type PizzaRequest struct {
	Name *string `json:"name" binding:"required,max=250" example:"Margherita"`
}

// PizzaPatchRequest is the body of a partial pizza update
type PizzaPatchRequest struct {
	Name *string `json:"name" binding:"omitempty,max=250" example:"Margherita"`
}

// SizeRequest is the body of a size creation
type SizeRequest struct {
	SizeName *models.SizeName `json:"sizename" binding:"required,oneof=S M L X" example:"M"`
}

// CustomerRequest is the body of a customer creation or replacement. An
// empty or null email is stored as NULL; null age clears the value.
type CustomerRequest struct {
	Email  *string        `json:"email" binding:"omitempty,max=254,email|eq=" example:"jane@example.com"`
	Name   *string        `json:"name" binding:"required,max=200" example:"Jane Doe"`
	Phone  *string        `json:"phone" binding:"required,max=50" example:"+34 600 000 000"`
	Age    *int           `json:"age" binding:"omitempty,min=0,max=32767" example:"31"`
	Gender *models.Gender `json:"gender" binding:"required,oneof=F M" example:"F"`
}

// CustomerPatchRequest carries the fields of a partial customer update
type CustomerPatchRequest struct {
	Email  *string        `json:"email" binding:"omitempty,max=254,email|eq=" example:"jane@example.com"`
	Name   *string        `json:"name" binding:"omitempty,max=200" example:"Jane Doe"`
	Phone  *string        `json:"phone" binding:"omitempty,max=50" example:"+34 600 000 000"`
	Age    *int           `json:"age" binding:"omitempty,min=0,max=32767" example:"31"`
	Gender *models.Gender `json:"gender" binding:"omitempty,oneof=F M" example:"F"`
}

type OrderCreateRequest struct {
	Customer *uint `json:"customer" example:"1"`
}

type OrderCreateResponse struct {
	ID       uint  `json:"id"`
	Customer *uint `json:"customer"`
}

// OrderUpdateRequest is shared by PUT and PATCH. Only the keys present in the
// body are applied.
type OrderUpdateRequest struct {
	Customer   *uint              `json:"customer" example:"1"`
	OrderState *models.OrderState `json:"order_state" binding:"omitempty,oneof=C A P S D" example:"P"`
}

type OrderUpdateResponse struct {
	ID         uint              `json:"id"`
	Customer   *uint             `json:"customer"`
	OrderState models.OrderState `json:"order_state"`
}

type OrderResponse struct {
	ID         uint              `json:"id"`
	Customer   *uint             `json:"customer"`
	Items      []uint            `json:"items"`
	Created    time.Time         `json:"created"`
	Updated    time.Time         `json:"updated"`
	OrderState models.OrderState `json:"order_state"`
}

type OrderStatusResponse struct {
	OrderState models.OrderState `json:"order_state"`
}

// OrderItemRequest adds an item to the order in the path. An "order" key is
// accepted for compatibility and ignored.
type OrderItemRequest struct {
	Order          *uint `json:"order,omitempty" swaggerignore:"true"`
	PizzaName      *uint `json:"pizza_name" binding:"required" example:"1"`
	PizzaSize      *uint `json:"pizza_size" binding:"required" example:"2"`
	NumberOfPizzas *int  `json:"number_of_pizzas" binding:"required,min=1,max=32767" example:"2"`
}

// ItemResponse is the short item shape used by /items and item creation
type ItemResponse struct {
	ID             uint  `json:"id"`
	Order          uint  `json:"order"`
	PizzaName      *uint `json:"pizza_name"`
	PizzaSize      *uint `json:"pizza_size"`
	NumberOfPizzas int16 `json:"number_of_pizzas"`
}

// OrderItemResponse is the full item shape used under /orders/{id}/items
type OrderItemResponse struct {
	ItemResponse
	IsActive bool      `json:"is_active"`
	Created  time.Time `json:"created"`
	Updated  time.Time `json:"updated"`
}

// HealthResponse is returned by the health probe
type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"ok"`
}

func newOrderResponse(order models.Order) OrderResponse {
	return OrderResponse{
		ID:         order.ID,
		Customer:   order.CustomerID,
		Items:      order.ItemIDs(),
		Created:    order.CreatedAt,
		Updated:    order.UpdatedAt,
		OrderState: order.OrderState,
	}
}

func newItemResponse(item models.OrderItem) ItemResponse {
	return ItemResponse{
		ID:             item.ID,
		Order:          item.OrderID,
		PizzaName:      item.PizzaID,
		PizzaSize:      item.PizzaSizeID,
		NumberOfPizzas: item.NumberOfPizzas,
	}
}

func newOrderItemResponse(item models.OrderItem) OrderItemResponse {
	return OrderItemResponse{
		ItemResponse: newItemResponse(item),
		IsActive:     item.IsActive,
		Created:      item.CreatedAt,
		Updated:      item.UpdatedAt,
	}
}
