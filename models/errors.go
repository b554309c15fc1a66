// models/errors.go
package models

import (
	"errors"
	"fmt"
	"net/http"
)

// ValidationError reports malformed or semantically invalid input
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError from a format string
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports that a referenced resource does not exist
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// ConflictError reports a uniqueness or state conflict
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// InsufficientStockError reports a fuel request that exceeds the remaining
// stock. The remaining quantity is surfaced to the client so it can offer
// a reduced order.
type InsufficientStockError struct {
	Requested float64
	Remaining float64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: requested %.2f liters, %.2f remaining", e.Requested, e.Remaining)
}

// SignatureVerificationError reports a failed gateway signature check
type SignatureVerificationError struct{}

func (e *SignatureVerificationError) Error() string {
	return "payment signature verification failed"
}

// GatewayError wraps a payment gateway failure
type GatewayError struct {
	Op  string
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment gateway: %s: %v", e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// ErrorResponse maps a domain error to its HTTP status code and response
// envelope. Unknown errors collapse to a generic 500 so internal details
// never leak to clients.
func ErrorResponse(err error) (int, Response) {
	var (
		validationErr *ValidationError
		notFoundErr   *NotFoundError
		conflictErr   *ConflictError
		stockErr      *InsufficientStockError
		signatureErr  *SignatureVerificationError
		gatewayErr    *GatewayError
	)

	switch {
	// Gateway failures go first: GatewayError unwraps to its cause, and a
	// wrapped cause must not downgrade the mapping to the cause's status.
	case errors.As(err, &gatewayErr):
		return http.StatusInternalServerError, Response{
			Status:  http.StatusInternalServerError,
			Message: "payment gateway failure",
		}
	case errors.As(err, &stockErr):
		return http.StatusBadRequest, Response{
			Status:  http.StatusBadRequest,
			Message: stockErr.Error(),
			Data: map[string]interface{}{
				"requested":      stockErr.Requested,
				"remainingStock": stockErr.Remaining,
			},
		}
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, Response{
			Status:  http.StatusBadRequest,
			Message: validationErr.Message,
		}
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound, Response{
			Status:  http.StatusNotFound,
			Message: notFoundErr.Error(),
		}
	case errors.As(err, &conflictErr):
		return http.StatusConflict, Response{
			Status:  http.StatusConflict,
			Message: conflictErr.Message,
		}
	case errors.As(err, &signatureErr):
		return http.StatusBadRequest, Response{
			Status:  http.StatusBadRequest,
			Message: signatureErr.Error(),
		}
	default:
		return http.StatusInternalServerError, Response{
			Status:  http.StatusInternalServerError,
			Message: "Internal server error",
		}
	}
}
