package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/autonest/autonest_backend/models"
	"github.com/autonest/autonest_backend/repositories"
)

// UserController handles admin user management
type UserController struct {
	DB    *mongo.Client
	users *repositories.UserRepository
}

// NewUserController creates a new user controller
func NewUserController(db *mongo.Client, users *repositories.UserRepository) *UserController {
	return &UserController{DB: db, users: users}
}

// GetUsers lists all users for the admin dashboard
func (uc *UserController) GetUsers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	users, err := uc.users.List(ctx)
	if err != nil {
		log.Printf("Failed to list users: %v", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Users retrieved successfully",
		Data:    users,
	})
}

// DeactivateUser marks a user inactive
func (uc *UserController) DeactivateUser(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return respondError(c, models.NewValidationError("invalid user id"))
	}

	if err := uc.users.Deactivate(ctx, userID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "User deactivated successfully",
	})
}

// DeleteUser removes a user account. Staff accounts are protected.
func (uc *UserController) DeleteUser(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return respondError(c, models.NewValidationError("invalid user id"))
	}

	if err := uc.users.Delete(ctx, userID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "User deleted successfully",
	})
}
