package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/autonest/autonest_backend/controllers"
	"github.com/autonest/autonest_backend/middleware"
)

func RegisterServiceRoutes(e *echo.Echo, serviceController *controllers.ServiceController) {
	// Catalog reads are public, the frontend fetches prices before login
	e.GET("/api/services/", serviceController.GetServices)
	e.GET("/api/services/type/:type/", serviceController.GetServiceByType)
	e.GET("/api/services/air/prices/", serviceController.GetAirPrices)
	e.GET("/api/services/electric/prices/", serviceController.GetElectricPrices)
	e.GET("/api/services/mechanical/prices/", serviceController.GetMechanicalPrices)
	e.GET("/api/services/mechanical/mechanics", serviceController.GetAvailableMechanics)
	e.GET("/api/services/air/technicians", serviceController.GetAvailableAirTechnicians)
	e.GET("/api/services/electric/chargers", serviceController.GetAvailableElectricChargers)
	e.GET("/api/services/:id/", serviceController.GetService)

	admin := e.Group("/api", middleware.JWTMiddleware())
	admin.POST("/services/", serviceController.CreateService)
	admin.PUT("/services/:id/", serviceController.UpdateService)
	admin.DELETE("/services/:id/", serviceController.DeleteService)
}
