package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/services"
	"github.com/gin-gonic/gin"
)

// CustomerController handles HTTP requests related to customers. Customers
// cannot be deleted.
type CustomerController interface {
	GetAllCustomers(c *gin.Context)
	GetCustomerByID(c *gin.Context)
	CreateCustomer(c *gin.Context)
	// UpdateCustomer serves PUT (required fields must be present) and PATCH
	UpdateCustomer(c *gin.Context)
}

type customerController struct {
	service services.CustomerService
}

func NewCustomerController(service services.CustomerService) *customerController {
	return &customerController{service: service}
}

// GetAllCustomers godoc
// @Summary Get all customers
// @Tags customers
// @Produce json
// @Success 200 {array} models.Customer
// @Router /api/customers [get]
func (c *customerController) GetAllCustomers(ctx *gin.Context) {
	customers, err := c.service.ListCustomers(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, customers)
}

// GetCustomerByID godoc
// @Summary Get customer by ID
// @Tags customers
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} models.Customer
// @Failure 404 {object} models.APIError
// @Router /api/customers/{id} [get]
func (c *customerController) GetCustomerByID(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	customer, err := c.service.GetCustomer(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, customer)
}

// CreateCustomer godoc
// @Summary Create a customer
// @Tags customers
// @Accept json
// @Produce json
// @Param customer body CustomerRequest true "Customer"
// @Success 201 {object} models.Customer
// @Failure 400 {object} models.APIError
// @Router /api/customers [post]
func (c *customerController) CreateCustomer(ctx *gin.Context) {
	var req CustomerRequest
	if !bindJSON(ctx, &req) {
		return
	}

	customer, err := c.service.CreateCustomer(ctx.Request.Context(), models.Customer{
		Email:  req.Email,
		Name:   *req.Name,
		Phone:  *req.Phone,
		Age:    req.Age,
		Gender: *req.Gender,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, customer)
}

// UpdateCustomer godoc
// @Summary Update a customer
// @Description PUT requires name, phone and gender; PATCH applies the fields present
// @Tags customers
// @Accept json
// @Produce json
// @Param id path int true "Customer ID"
// @Param customer body CustomerRequest true "Customer"
// @Success 200 {object} models.Customer
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/customers/{id} [put]
// @Router /api/customers/{id} [patch]
func (c *customerController) UpdateCustomer(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	// PUT binds the full schema so the required rules apply
	var req CustomerPatchRequest
	var fields []string
	if ctx.Request.Method == http.MethodPut {
		var full CustomerRequest
		if fields, ok = bindWithFields(ctx, &full); !ok {
			return
		}
		req = CustomerPatchRequest(full)
	} else if fields, ok = bindWithFields(ctx, &req); !ok {
		return
	}

	patch := services.CustomerPatch{
		Email:  req.Email,
		Name:   req.Name,
		Phone:  req.Phone,
		Age:    req.Age,
		Gender: req.Gender,
	}
	for _, field := range fields {
		switch {
		case field == "email" && req.Email == nil:
			empty := ""
			patch.Email = &empty
		case field == "age" && req.Age == nil:
			patch.ClearAge = true
		}
	}

	customer, err := c.service.UpdateCustomer(ctx.Request.Context(), id, patch)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, customer)
}
