package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/autonest/autonest_backend/config"
	"github.com/autonest/autonest_backend/models"
	"github.com/autonest/autonest_backend/repositories"
	"github.com/autonest/autonest_backend/utils"
)

// AuthController contains registration and login logic
type AuthController struct {
	DB    *mongo.Client
	users *repositories.UserRepository
}

// NewAuthController creates a new auth controller
func NewAuthController(db *mongo.Client, users *repositories.UserRepository) *AuthController {
	return &AuthController{DB: db, users: users}
}

// Register handles account creation
func (ac *AuthController) Register(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Missing or invalid registration fields",
		})
	}
	if req.Password != req.ConfirmPassword {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Passwords do not match",
		})
	}

	email, err := utils.SanitizeEmail(req.Email)
	if err != nil {
		return respondError(c, models.NewValidationError("invalid email address"))
	}
	phone, err := utils.SanitizePhone(req.PhoneNumber)
	if err != nil {
		return respondError(c, models.NewValidationError("invalid phone number"))
	}

	exists, err := ac.users.ExistsByEmailOrPhone(ctx, email, phone)
	if err != nil {
		log.Printf("Failed to check existing users: %v", err)
		return respondError(c, err)
	}
	if exists {
		return respondError(c, &models.ConflictError{Message: "User with this phone number or email already exists"})
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		return respondError(c, err)
	}

	user := models.User{
		Phone:     phone,
		Email:     email,
		Password:  hashedPassword,
		FirstName: utils.SanitizeInput(req.FirstName),
		LastName:  utils.SanitizeInput(req.LastName),
		Address:   utils.SanitizeInput(req.Address),
		Role:      models.RoleUser,
		IsActive:  true,
	}

	if err := ac.users.Create(ctx, &user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return respondError(c, &models.ConflictError{Message: "User with this phone number or email already exists"})
		}
		log.Printf("Failed to create user: %v", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Registration successful",
	})
}

// Login authenticates by email and password and issues a JWT
func (ac *AuthController) Login(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Email and password required",
		})
	}

	email, err := utils.SanitizeEmail(req.Email)
	if err != nil {
		return respondError(c, models.NewValidationError("invalid email address"))
	}

	if err := utils.ValidateLoginAttempts(email, config.RedisClient); err != nil {
		return c.JSON(http.StatusTooManyRequests, models.Response{
			Status:  http.StatusTooManyRequests,
			Message: "Too many login attempts. Try again later.",
		})
	}

	user, err := ac.users.FindByEmail(ctx, email)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Invalid credentials",
		})
	}
	if !user.IsActive || !utils.CheckPassword(user.Password, req.Password) {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Invalid credentials",
		})
	}

	token, err := utils.GenerateJWT(user)
	if err != nil {
		log.Printf("Failed to issue token for %s: %v", email, err)
		return respondError(c, err)
	}

	utils.ClearLoginAttempts(email, config.RedisClient)

	user.Password = ""
	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Login successful",
		Data: models.LoginResponse{
			Token: token,
			User:  *user,
		},
	})
}
