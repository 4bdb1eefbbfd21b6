package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/services"
	"github.com/gin-gonic/gin"
)

// OrderItemController handles the items of one order and the flat item listing
type OrderItemController interface {
	GetOrderItems(c *gin.Context)
	GetOrderItemByID(c *gin.Context)
	CreateOrderItem(c *gin.Context)
	GetAllItems(c *gin.Context)
	GetItemByID(c *gin.Context)
}

type orderItemController struct {
	service services.OrderItemService
}

func NewOrderItemController(service services.OrderItemService) *orderItemController {
	return &orderItemController{service: service}
}

// GetOrderItems godoc
// @Summary Get the items of an order
// @Tags items
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {array} OrderItemResponse
// @Router /api/orders/{id}/items [get]
func (c *orderItemController) GetOrderItems(ctx *gin.Context) {
	orderID, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	items, err := c.service.ListOrderItems(ctx.Request.Context(), orderID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	response := make([]OrderItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, newOrderItemResponse(item))
	}
	ctx.JSON(http.StatusOK, response)
}

// GetOrderItemByID godoc
// @Summary Get one item of an order
// @Tags items
// @Produce json
// @Param id path int true "Order ID"
// @Param item_id path int true "Item ID"
// @Success 200 {object} OrderItemResponse
// @Failure 404 {object} models.APIError
// @Router /api/orders/{id}/items/{item_id} [get]
func (c *orderItemController) GetOrderItemByID(ctx *gin.Context) {
	orderID, ok := parseID(ctx, "id")
	if !ok {
		return
	}
	itemID, ok := parseID(ctx, "item_id")
	if !ok {
		return
	}

	item, err := c.service.GetOrderItem(ctx.Request.Context(), orderID, itemID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newOrderItemResponse(item))
}

// CreateOrderItem godoc
// @Summary Add an item to an order
// @Description The order must be Accepted or Processing; pizza and size must not be deleted
// @Tags items
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param item body OrderItemRequest true "Item"
// @Success 201 {object} ItemResponse
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/orders/{id}/items [post]
func (c *orderItemController) CreateOrderItem(ctx *gin.Context) {
	orderID, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req OrderItemRequest
	if !bindJSON(ctx, &req) {
		return
	}

	item, err := c.service.CreateOrderItem(ctx.Request.Context(), orderID, services.OrderItemInput{
		PizzaID:        req.PizzaName,
		PizzaSizeID:    req.PizzaSize,
		NumberOfPizzas: req.NumberOfPizzas,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newItemResponse(item))
}

// GetAllItems godoc
// @Summary Get the items of every order
// @Tags items
// @Produce json
// @Success 200 {array} ItemResponse
// @Router /api/items [get]
func (c *orderItemController) GetAllItems(ctx *gin.Context) {
	items, err := c.service.ListItems(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	response := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, newItemResponse(item))
	}
	ctx.JSON(http.StatusOK, response)
}

// GetItemByID godoc
// @Summary Get an item by ID
// @Tags items
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} ItemResponse
// @Failure 404 {object} models.APIError
// @Router /api/items/{id} [get]
func (c *orderItemController) GetItemByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	item, err := c.service.GetItem(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newItemResponse(item))
}
