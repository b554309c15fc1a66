package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/autonest/autonest_backend/controllers"
	"github.com/autonest/autonest_backend/websocket"
)

// SetupRoutes configures all API routes by calling individual route
// registration functions
func SetupRoutes(
	e *echo.Echo,
	hub *websocket.Hub,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	serviceController *controllers.ServiceController,
	requestController *controllers.RequestController,
	agentController *controllers.AgentController,
	paymentController *controllers.PaymentController,
	onboardingController *controllers.OnboardingController,
) {
	RegisterAuthRoutes(e, authController)
	RegisterUserRoutes(e, userController)
	RegisterServiceRoutes(e, serviceController)
	RegisterRequestRoutes(e, requestController)
	RegisterAgentRoutes(e, agentController)
	RegisterPaymentRoutes(e, paymentController)
	RegisterOnboardingRoutes(e, onboardingController)

	// Live request-lifecycle stream for the admin dashboard
	e.GET("/ws", func(c echo.Context) error {
		return websocket.HandleWebSocket(c, hub)
	})
}
