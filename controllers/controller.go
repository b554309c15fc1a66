package controllers

import (
	"github.com/labstack/echo/v4"

	"github.com/autonest/autonest_backend/models"
)

// respondError maps a domain error to its HTTP status and response envelope
func respondError(c echo.Context, err error) error {
	status, resp := models.ErrorResponse(err)
	return c.JSON(status, resp)
}
