package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/autonest/autonest_backend/controllers"
	"github.com/autonest/autonest_backend/middleware"
)

func RegisterPaymentRoutes(e *echo.Echo, paymentController *controllers.PaymentController) {
	e.POST("/api/payment/create-order/", paymentController.CreateOrder)
	e.POST("/api/payment/verify/", paymentController.VerifyPayment)

	admin := e.Group("/api", middleware.JWTMiddleware())
	admin.PUT("/payment/:id/update-status/", paymentController.UpdatePaymentStatus)
}
