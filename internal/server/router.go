// Package server wires controllers, middleware and documentation into the
// HTTP router.
package server

import (
	"net/http"
	"time"

	_ "github.com/franciscosanchezn/gin-pizza-orders/docs" // swagger spec
	"github.com/franciscosanchezn/gin-pizza-orders/internal/auth"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/controllers"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/middleware"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/services"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/telemetry"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"
)

type RouterConfig struct {
	DB *gorm.DB

	// AuthEnabled guards catalog writes with an admin token issued by
	// /oauth/token and signed with JWTSecret.
	AuthEnabled bool
	JWTSecret   string

	AllowedOrigins []string
	TracingEnabled bool
}

// NewRouter builds the gin engine with every route of the API
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(cors.New(corsConfig(cfg.AllowedOrigins)))
	if cfg.TracingEnabled {
		router.Use(otelgin.Middleware(telemetry.ServiceName))
	}

	catalogService := services.NewCatalogService(cfg.DB)
	pizzaController := controllers.NewPizzaController(catalogService)
	sizeController := controllers.NewSizeController(catalogService)
	customerController := controllers.NewCustomerController(services.NewCustomerService(cfg.DB))
	orderController := controllers.NewOrderController(services.NewOrderService(cfg.DB))
	orderItemController := controllers.NewOrderItemController(services.NewOrderItemService(cfg.DB))
	healthController := controllers.NewHealthController(cfg.DB)

	router.GET("/health", healthController.Health)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// catalog writes are open unless auth is enabled
	catalogWrite := []gin.HandlerFunc{}
	if cfg.AuthEnabled {
		oauthService := auth.NewOAuthService(cfg.DB, cfg.JWTSecret)
		router.POST("/oauth/token", oauthService.HandleToken)
		catalogWrite = append(catalogWrite,
			middleware.OAuth2Auth([]byte(cfg.JWTSecret)),
			middleware.RequireRole(models.RoleAdmin),
		)
	}
	guarded := func(handler gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, catalogWrite...), handler)
	}

	api := router.Group("/api")
	{
		api.GET("/customers", customerController.GetAllCustomers)
		api.POST("/customers", customerController.CreateCustomer)
		api.GET("/customers/:id", customerController.GetCustomerByID)
		api.PUT("/customers/:id", customerController.UpdateCustomer)
		api.PATCH("/customers/:id", customerController.UpdateCustomer)

		api.GET("/pizzas", pizzaController.GetAllPizzas)
		api.POST("/pizzas", guarded(pizzaController.CreatePizza)...)
		api.GET("/pizzas/sizes", sizeController.GetAllSizes)
		api.POST("/pizzas/sizes", guarded(sizeController.CreateSize)...)
		api.GET("/pizzas/sizes/:id", sizeController.GetSizeByID)
		api.GET("/pizzas/:id", pizzaController.GetPizzaByID)
		api.PUT("/pizzas/:id", guarded(pizzaController.UpdatePizza)...)
		api.PATCH("/pizzas/:id", guarded(pizzaController.UpdatePizza)...)
		api.DELETE("/pizzas/:id", guarded(pizzaController.DeletePizza)...)

		api.GET("/orders", orderController.GetAllOrders)
		api.POST("/orders", orderController.CreateOrder)
		api.GET("/orders/status/:id", orderController.GetOrderStatus)
		api.GET("/orders/:id", orderController.GetOrderByID)
		api.PUT("/orders/:id", orderController.UpdateOrder)
		api.PATCH("/orders/:id", orderController.UpdateOrder)
		api.DELETE("/orders/:id", orderController.DeleteOrder)
		api.GET("/orders/:id/items", orderItemController.GetOrderItems)
		api.POST("/orders/:id/items", orderItemController.CreateOrderItem)
		api.GET("/orders/:id/items/:item_id", orderItemController.GetOrderItemByID)

		api.GET("/items", orderItemController.GetAllItems)
		api.GET("/items/:id", orderItemController.GetItemByID)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.NewAPIError(models.ErrNotFound, "Not found."))
	})

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
