package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/errs"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/services"
	"github.com/gin-gonic/gin"
)

// OrderController handles HTTP requests related to orders
type OrderController interface {
	GetAllOrders(c *gin.Context)
	GetOrderByID(c *gin.Context)
	CreateOrder(c *gin.Context)
	// UpdateOrder serves both PUT and PATCH; only the keys present in the body
	// are applied
	UpdateOrder(c *gin.Context)
	DeleteOrder(c *gin.Context)
	GetOrderStatus(c *gin.Context)
}

type orderController struct {
	service services.OrderService
}

func NewOrderController(service services.OrderService) *orderController {
	return &orderController{service: service}
}

// parseOrderFilter reads the customer and order_state query filters.
func parseOrderFilter(ctx *gin.Context) (services.OrderFilter, error) {
	var filter services.OrderFilter
	if raw := ctx.Query("customer"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return filter, errs.NewValidationError("customer",
				"Select a valid choice. That choice is not one of the available choices.")
		}
		customerID := uint(id)
		filter.CustomerID = &customerID
	}
	if raw := ctx.Query("order_state"); raw != "" {
		state := models.OrderState(raw)
		if !state.Valid() {
			return filter, errs.NewValidationError("order_state",
				fmt.Sprintf("Select a valid choice. %s is not one of the available choices.", raw))
		}
		filter.OrderState = &state
	}
	return filter, nil
}

// GetAllOrders godoc
// @Summary Get all orders
// @Description List orders newest first, optionally filtered by exact customer and state
// @Tags orders
// @Produce json
// @Param customer query int false "Customer ID"
// @Param order_state query string false "Order state" Enums(C, A, P, S, D)
// @Success 200 {array} OrderResponse
// @Failure 400 {object} models.APIError
// @Router /api/orders [get]
func (c *orderController) GetAllOrders(ctx *gin.Context) {
	filter, err := parseOrderFilter(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	orders, err := c.service.ListOrders(ctx.Request.Context(), filter)
	if err != nil {
		respondError(ctx, err)
		return
	}
	response := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		response = append(response, newOrderResponse(order))
	}
	ctx.JSON(http.StatusOK, response)
}

// GetOrderByID godoc
// @Summary Get order by ID
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} OrderResponse
// @Failure 404 {object} models.APIError
// @Router /api/orders/{id} [get]
func (c *orderController) GetOrderByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	order, err := c.service.GetOrder(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newOrderResponse(order))
}

// CreateOrder godoc
// @Summary Create an order
// @Description Open an Accepted order for an existing customer
// @Tags orders
// @Accept json
// @Produce json
// @Param order body OrderCreateRequest true "Order"
// @Success 201 {object} OrderCreateResponse
// @Failure 400 {object} models.APIError
// @Router /api/orders [post]
func (c *orderController) CreateOrder(ctx *gin.Context) {
	var req OrderCreateRequest
	if !bindJSON(ctx, &req) {
		return
	}

	order, err := c.service.CreateOrder(ctx.Request.Context(), req.Customer)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, OrderCreateResponse{ID: order.ID, Customer: order.CustomerID})
}

// UpdateOrder godoc
// @Summary Update an order
// @Description Sent and Delivered orders only accept a body with order_state alone
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param order body OrderUpdateRequest true "Order fields"
// @Success 200 {object} OrderUpdateResponse
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/orders/{id} [put]
// @Router /api/orders/{id} [patch]
func (c *orderController) UpdateOrder(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req OrderUpdateRequest
	fields, ok := bindWithFields(ctx, &req)
	if !ok {
		return
	}

	patch := services.OrderPatch{Fields: fields, CustomerID: req.Customer}
	if req.OrderState != nil {
		patch.OrderState = *req.OrderState
	}

	order, err := c.service.UpdateOrder(ctx.Request.Context(), id, patch)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, OrderUpdateResponse{
		ID:         order.ID,
		Customer:   order.CustomerID,
		OrderState: order.OrderState,
	})
}

// DeleteOrder godoc
// @Summary Delete an order
// @Description Delete an order together with its items
// @Tags orders
// @Param id path int true "Order ID"
// @Success 204
// @Failure 404 {object} models.APIError
// @Router /api/orders/{id} [delete]
func (c *orderController) DeleteOrder(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := c.service.DeleteOrder(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// GetOrderStatus godoc
// @Summary Get the state of an order
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} OrderStatusResponse
// @Failure 404 {object} models.APIError
// @Router /api/orders/status/{id} [get]
func (c *orderController) GetOrderStatus(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	state, err := c.service.GetOrderStatus(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, OrderStatusResponse{OrderState: state})
}
