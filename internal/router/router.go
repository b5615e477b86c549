package router

import (
	"net/http"
	"time"

	"github.com/asanchezr/gin-menu-api/internal/controllers"
	"github.com/asanchezr/gin-menu-api/internal/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter builds the Gin engine with the middleware chain and every
// route. It does not bind a socket, so tests can drive the handlers through
// httptest.
func SetupRouter(menuController controllers.MenuController) *gin.Engine {
	router := gin.New()

	// Every request passes through the correlation-ID and logging stages;
	// Recovery turns panics further down the chain into a generic 500.
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())

	router.GET("/", welcomeHandler)
	router.GET("/health", healthCheckHandler)

	api := router.Group("/api")
	{
		menu := api.Group("/menu")
		{
			menu.GET("", menuController.GetAllItems)
			menu.GET("/:id", menuController.GetItemByID)
			menu.POST("", middleware.ValidateMenuItem(), menuController.CreateItem)
			menu.PUT("/:id", middleware.ValidateMenuItem(), menuController.UpdateItem)
			menu.DELETE("/:id", menuController.DeleteItem)
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}

// welcomeHandler handles the API index endpoint
// @Summary API index
// @Description Describe the available endpoints
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func welcomeHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the Restaurant Menu API",
		"endpoints": gin.H{
			"GET /api/menu":        "List all menu items",
			"GET /api/menu/:id":    "Get a single menu item by id",
			"POST /api/menu":       "Create a new menu item",
			"PUT /api/menu/:id":    "Replace an existing menu item",
			"DELETE /api/menu/:id": "Delete a menu item",
		},
	})
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "gin-menu-api",
	})
}
