package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/autonest/autonest_backend/controllers"
	"github.com/autonest/autonest_backend/middleware"
)

func RegisterOnboardingRoutes(e *echo.Echo, onboardingController *controllers.OnboardingController) {
	e.POST("/api/agent-registration-request/", onboardingController.Submit)
	e.GET("/api/agent-registration-status/", onboardingController.Status)

	admin := e.Group("/api", middleware.JWTMiddleware())
	admin.GET("/agent-registration-requests/", onboardingController.List)
	admin.POST("/agent-registration-request/:id/accept/", onboardingController.Accept)
	admin.POST("/agent-registration-request/:id/reject/", onboardingController.Reject)
}
