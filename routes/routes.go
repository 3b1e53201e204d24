package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/ISHAsolanki/property-final/handlers"
	"github.com/ISHAsolanki/property-final/middleware"
)

func RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handlers.HealthCheck)

	authController := handlers.NewAuthController()
	propertyController := handlers.NewPropertyController()
	categoryController := handlers.NewCategoryController()
	inquiryController := handlers.NewInquiryController()

	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authController.Register)
	auth.POST("/login", authController.Login)

	// Public reads for the marketing site.
	api.GET("/properties", propertyController.ListProperties)
	api.GET("/properties/trending", propertyController.TrendingProperties)
	api.GET("/properties/:id", propertyController.GetProperty)
	api.GET("/categories", categoryController.ListCategories)
	api.POST("/inquiries", inquiryController.CreateInquiry)

	// Admin surface.
	admin := api.Group("", middleware.JWTMiddleware())
	admin.POST("/properties", propertyController.CreateProperty)
	admin.PUT("/properties/:id", propertyController.UpdateProperty)
	admin.DELETE("/properties/:id", propertyController.DeleteProperty)
	admin.POST("/categories", categoryController.CreateCategory)
	admin.GET("/inquiries", inquiryController.ListInquiries)
}
