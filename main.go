package main

import (
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/autonest/autonest_backend/config"
	"github.com/autonest/autonest_backend/controllers"
	"github.com/autonest/autonest_backend/middleware"
	"github.com/autonest/autonest_backend/repositories"
	"github.com/autonest/autonest_backend/routes"
	"github.com/autonest/autonest_backend/services"
	"github.com/autonest/autonest_backend/websocket"
)

// CustomValidator is a custom validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates the request body
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found")
	}

	// Connect to Redis
	config.ConnectRedis()

	// Connect to database
	client := config.ConnectDB()

	// Create WebSocket hub
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Create a new Echo instance
	e := echo.New()

	// Initialize custom validator
	customValidator := &CustomValidator{validator: validator.New()}
	e.Validator = customValidator

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter()

	// Middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.Secure())
	e.Use(rateLimiter.RateLimit())
	e.Use(middleware.SecurityHeaders())

	e.Match([]string{"GET", "HEAD"}, "/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"status":  "OK",
			"message": "AutoNest Backend is running",
			"version": "1.0",
		})
	})

	e.Match([]string{"GET", "HEAD"}, "/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"status":   "healthy",
			"database": "connected",
		})
	})

	// Initialize repositories
	userRepo := repositories.NewUserRepository(client)

	// Initialize controllers
	authController := controllers.NewAuthController(client, userRepo)
	userController := controllers.NewUserController(client, userRepo)
	serviceController := controllers.NewServiceController(client, userRepo)
	requestController := controllers.NewRequestController(client, userRepo, wsHub)
	agentController := controllers.NewAgentController(client, userRepo, wsHub)
	paymentController := controllers.NewPaymentController(client, services.NewRazorpayService())
	onboardingController := controllers.NewOnboardingController(client, userRepo)

	// Setup routes
	routes.SetupRoutes(e, wsHub, authController, userController, serviceController,
		requestController, agentController, paymentController, onboardingController)

	// Ensure uploads directory exists
	os.MkdirAll("uploads", 0755)
	os.MkdirAll("uploads/idproofs", 0755)

	e.Static("/uploads", "uploads")

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	e.Logger.Fatal(e.Start(":" + port))
}
