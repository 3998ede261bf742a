// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"larder/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PantryHandler  *handler.PantryHandler
	ProductHandler *handler.ProductHandler
	UserHandler    *handler.UserHandler
	MealLogHandler *handler.MealLogHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	pantryHandler  *handler.PantryHandler
	productHandler *handler.ProductHandler
	userHandler    *handler.UserHandler
	mealLogHandler *handler.MealLogHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		pantryHandler:  params.PantryHandler,
		productHandler: params.ProductHandler,
		userHandler:    params.UserHandler,
		mealLogHandler: params.MealLogHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Pantry routes. Item identity travels in query parameters; the more
	// specific /clear route is registered before the parameterless DELETE.
	pantryGroup := api.Group("/pantry")
	{
		pantryGroup.GET("", r.pantryHandler.GetPantry)
		pantryGroup.POST("", r.pantryHandler.AddPantryItem)
		pantryGroup.PUT("", r.pantryHandler.UpdatePantryItem)
		pantryGroup.DELETE("/clear", r.pantryHandler.ClearPantry)
		pantryGroup.DELETE("", r.pantryHandler.RemovePantryItem)
	}

	// Product catalog routes
	productsGroup := api.Group("/products")
	{
		productsGroup.GET("", r.productHandler.ListProducts)
		productsGroup.POST("", r.productHandler.CreateProduct)
		productsGroup.GET("/:id", r.productHandler.GetProduct)
		productsGroup.PUT("/:id", r.productHandler.UpdateProduct)
		productsGroup.DELETE("/:id", r.productHandler.DeleteProduct)
	}

	// User management routes
	usersGroup := api.Group("/users")
	{
		usersGroup.GET("", r.userHandler.ListUsers)
		usersGroup.POST("", r.userHandler.CreateUser)
		usersGroup.GET("/:id", r.userHandler.GetUser)
		usersGroup.PUT("/:id", r.userHandler.UpdateUser)
		usersGroup.DELETE("/:id", r.userHandler.DeleteUser)
	}

	// Meal tracking routes
	mealLogsGroup := api.Group("/meal-logs")
	{
		mealLogsGroup.POST("", r.mealLogHandler.LogMeal)
		mealLogsGroup.GET("", r.mealLogHandler.ListMealLogs)
		mealLogsGroup.GET("/stats/overview", r.mealLogHandler.GetStats)
		mealLogsGroup.GET("/:id", r.mealLogHandler.GetMealLog)
		mealLogsGroup.PUT("/:id", r.mealLogHandler.UpdateMealLog)
		mealLogsGroup.DELETE("/:id", r.mealLogHandler.DeleteMealLog)
	}
}
