package models

import (
	"errors"
	"net/http"
	"strings"
	"testing"
)

func TestErrorResponseStatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", NewValidationError("bad input"), http.StatusBadRequest},
		{"not found", &NotFoundError{Resource: "service"}, http.StatusNotFound},
		{"conflict", &ConflictError{Message: "already exists"}, http.StatusConflict},
		{"stock", &InsufficientStockError{Requested: 50, Remaining: 30}, http.StatusBadRequest},
		{"signature", &SignatureVerificationError{}, http.StatusBadRequest},
		{"gateway", &GatewayError{Op: "create order", Err: NewValidationError("x")}, http.StatusInternalServerError},
		{"unknown", http.ErrBodyNotAllowed, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, resp := ErrorResponse(tc.err)
			if status != tc.status {
				t.Errorf("status = %d, want %d", status, tc.status)
			}
			if resp.Status != status {
				t.Errorf("envelope status %d does not match HTTP status %d", resp.Status, status)
			}
		})
	}
}

func TestErrorResponseHidesInternalDetails(t *testing.T) {
	_, resp := ErrorResponse(http.ErrServerClosed)
	if resp.Message != "Internal server error" {
		t.Errorf("unknown error leaked message %q", resp.Message)
	}
}

func TestGatewayErrorMappingIgnoresWrappedCause(t *testing.T) {
	// The wrapped cause must not downgrade the gateway mapping to 400
	err := &GatewayError{Op: "create order", Err: NewValidationError("amount rejected upstream")}

	status, resp := ErrorResponse(err)
	if status != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", status, http.StatusInternalServerError)
	}
	if strings.Contains(resp.Message, "amount rejected upstream") {
		t.Errorf("gateway response leaked upstream detail: %q", resp.Message)
	}
}

func TestGatewayErrorResponseOmitsUpstreamText(t *testing.T) {
	sdkErr := errors.New("Post \"https://api.razorpay.com/v1/orders\": dial tcp: connection refused")
	_, resp := ErrorResponse(&GatewayError{Op: "create order", Err: sdkErr})

	if strings.Contains(resp.Message, "razorpay.com") || strings.Contains(resp.Message, "dial tcp") {
		t.Errorf("gateway response leaked upstream detail: %q", resp.Message)
	}
}

func TestInsufficientStockErrorPayload(t *testing.T) {
	_, resp := ErrorResponse(&InsufficientStockError{Requested: 75.5, Remaining: 20})

	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("Data is %T, want map", resp.Data)
	}
	if data["requested"] != 75.5 {
		t.Errorf("requested = %v, want 75.5", data["requested"])
	}
	if data["remainingStock"] != 20.0 {
		t.Errorf("remainingStock = %v, want 20", data["remainingStock"])
	}
}
