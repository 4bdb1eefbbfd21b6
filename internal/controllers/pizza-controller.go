package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/services"
	"github.com/gin-gonic/gin"
)

// PizzaController handles HTTP requests related to pizzas
type PizzaController interface {
	// GetAllPizzas retrieves the pizzas that are not deleted
	GetAllPizzas(c *gin.Context)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(c *gin.Context)
	// CreatePizza creates a new pizza
	CreatePizza(c *gin.Context)
	// UpdatePizza renames an existing pizza, for both PUT and PATCH
	UpdatePizza(c *gin.Context)
	// DeletePizza soft-deletes a pizza by its ID
	DeletePizza(c *gin.Context)
}

type pizzaController struct {
	service services.CatalogService
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(service services.CatalogService) *pizzaController {
	return &pizzaController{service: service}
}

// GetAllPizzas godoc
// @Summary Get all pizzas
// @Description Get the list of pizzas that are not deleted, newest first
// @Tags pizzas
// @Produce json
// @Success 200 {array} models.Pizza
// @Failure 500 {object} models.APIError
// @Router /api/pizzas [get]
func (c *pizzaController) GetAllPizzas(ctx *gin.Context) {
	pizzas, err := c.service.ListPizzas(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, pizzas)
}

// GetPizzaByID godoc
// @Summary Get pizza by ID
// @Description Get a single pizza by its ID. Deleted pizzas are not found.
// @Tags pizzas
// @Produce json
// @Param id path int true "Pizza ID"
// @Success 200 {object} models.Pizza
// @Failure 404 {object} models.APIError
// @Router /api/pizzas/{id} [get]
func (c *pizzaController) GetPizzaByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	pizza, err := c.service.GetPizza(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, pizza)
}

// CreatePizza godoc
// @Summary Create a new pizza
// @Description Create a new pizza with the input payload
// @Tags pizzas
// @Accept json
// @Produce json
// @Param pizza body PizzaRequest true "Pizza"
// @Success 201 {object} models.Pizza
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.OAuth2Error
// @Failure 403 {object} models.APIError
// @Security BearerAuth
// @Router /api/pizzas [post]
func (c *pizzaController) CreatePizza(ctx *gin.Context) {
	var req PizzaRequest
	if !bindJSON(ctx, &req) {
		return
	}
	pizza, err := c.service.CreatePizza(ctx.Request.Context(), *req.Name)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, pizza)
}

// UpdatePizza godoc
// @Summary Update a pizza
// @Description Rename a pizza. PUT requires the name, PATCH may omit it.
// @Tags pizzas
// @Accept json
// @Produce json
// @Param id path int true "Pizza ID"
// @Param pizza body PizzaRequest true "Pizza"
// @Success 200 {object} models.Pizza
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.OAuth2Error
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/pizzas/{id} [put]
// @Router /api/pizzas/{id} [patch]
func (c *pizzaController) UpdatePizza(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	// PUT binds the full schema so the name is required
	var req PizzaPatchRequest
	if ctx.Request.Method == http.MethodPut {
		var full PizzaRequest
		if !bindJSON(ctx, &full) {
			return
		}
		req = PizzaPatchRequest(full)
	} else if !bindJSON(ctx, &req) {
		return
	}

	if req.Name == nil {
		pizza, err := c.service.GetPizza(ctx.Request.Context(), id)
		if err != nil {
			respondError(ctx, err)
			return
		}
		ctx.JSON(http.StatusOK, pizza)
		return
	}

	pizza, err := c.service.UpdatePizza(ctx.Request.Context(), id, *req.Name)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, pizza)
}

// DeletePizza godoc
// @Summary Delete a pizza
// @Description Mark a pizza as deleted. The row is kept for existing order items.
// @Tags pizzas
// @Param id path int true "Pizza ID"
// @Success 204
// @Failure 401 {object} models.OAuth2Error
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/pizzas/{id} [delete]
func (c *pizzaController) DeletePizza(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	// deleted pizzas are outside the default scope, a second delete is a 404
	if _, err := c.service.GetPizza(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	if err := c.service.SoftDeletePizza(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
