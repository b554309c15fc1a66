package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/autonest/autonest_backend/controllers"
	"github.com/autonest/autonest_backend/middleware"
)

func RegisterRequestRoutes(e *echo.Echo, requestController *controllers.RequestController) {
	e.POST("/api/service-request/create/", requestController.CreateServiceRequest)

	admin := e.Group("/api", middleware.JWTMiddleware())
	admin.GET("/service-requests/", requestController.GetServiceRequests)
	admin.PUT("/service-requests/:id/update-status/", requestController.UpdateRequestStatus)
	admin.PUT("/service-requests/:id/assign-agent/", requestController.AssignAgent)
	admin.GET("/available-agents/", requestController.GetAvailableAgents)
}
