package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/autonest/autonest_backend/controllers"
)

func RegisterAuthRoutes(e *echo.Echo, authController *controllers.AuthController) {
	e.POST("/api/register/", authController.Register)
	e.POST("/api/login/", authController.Login)
}
