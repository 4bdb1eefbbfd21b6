package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/services"
	"github.com/gin-gonic/gin"
)

// SizeController handles HTTP requests related to pizza sizes
type SizeController interface {
	GetAllSizes(c *gin.Context)
	GetSizeByID(c *gin.Context)
	CreateSize(c *gin.Context)
}

type sizeController struct {
	service services.CatalogService
}

func NewSizeController(service services.CatalogService) *sizeController {
	return &sizeController{service: service}
}

// GetAllSizes godoc
// @Summary Get all pizza sizes
// @Tags sizes
// @Produce json
// @Success 200 {array} models.PizzaSize
// @Router /api/pizzas/sizes [get]
func (c *sizeController) GetAllSizes(ctx *gin.Context) {
	sizes, err := c.service.ListSizes(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, sizes)
}

// GetSizeByID godoc
// @Summary Get pizza size by ID
// @Tags sizes
// @Produce json
// @Param id path int true "Size ID"
// @Success 200 {object} models.PizzaSize
// @Failure 404 {object} models.APIError
// @Router /api/pizzas/sizes/{id} [get]
func (c *sizeController) GetSizeByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	size, err := c.service.GetSize(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, size)
}

// CreateSize godoc
// @Summary Create a pizza size
// @Description sizename is one of S, M, L, X and must be unique
// @Tags sizes
// @Accept json
// @Produce json
// @Param size body SizeRequest true "Size"
// @Success 201 {object} models.PizzaSize
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.OAuth2Error
// @Failure 403 {object} models.APIError
// @Security BearerAuth
// @Router /api/pizzas/sizes [post]
func (c *sizeController) CreateSize(ctx *gin.Context) {
	var req SizeRequest
	if !bindJSON(ctx, &req) {
		return
	}
	size, err := c.service.CreateSize(ctx.Request.Context(), *req.SizeName)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, size)
}
