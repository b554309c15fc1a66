package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/autonest/autonest_backend/controllers"
	"github.com/autonest/autonest_backend/middleware"
)

func RegisterUserRoutes(e *echo.Echo, userController *controllers.UserController) {
	admin := e.Group("/api", middleware.JWTMiddleware())
	admin.GET("/users/", userController.GetUsers)
	admin.PUT("/users/:id/deactivate/", userController.DeactivateUser)
	admin.DELETE("/users/:id/", userController.DeleteUser)
}
