// models/payment.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment statuses. initiated and cod are the two entry states; success and
// failed are terminal.
const (
	PaymentStatusInitiated = "initiated"
	PaymentStatusCOD       = "cod"
	PaymentStatusSuccess   = "success"
	PaymentStatusFailed    = "failed"
)

// Payment methods
const (
	PaymentMethodRazorpay = "razorpay"
	PaymentMethodCOD      = "cod"
)

// Payment is the settlement record tied one-to-one with a ServiceRequest.
// It is created together with the request and mutated only by verification
// or the explicit status-update endpoint.
type Payment struct {
	ID                primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	RequestID         primitive.ObjectID `json:"requestId" bson:"requestId"`
	Amount            float64            `json:"amount" bson:"amount"`
	Status            string             `json:"status" bson:"status"`
	Method            string             `json:"method" bson:"method"`
	RazorpayOrderID   string             `json:"razorpayOrderId,omitempty" bson:"razorpayOrderId,omitempty"`
	RazorpayPaymentID string             `json:"razorpayPaymentId,omitempty" bson:"razorpayPaymentId,omitempty"`
	CreatedAt         time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// IsValidPaymentStatus reports whether the status belongs to the allowed set
func IsValidPaymentStatus(status string) bool {
	switch status {
	case PaymentStatusInitiated, PaymentStatusCOD, PaymentStatusSuccess, PaymentStatusFailed:
		return true
	}
	return false
}

// NextVerificationStatus resolves the status a payment should move to after a
// gateway verification callback. A payment already settled as success stays
// success regardless of the callback, so duplicate callbacks are no-ops.
// The second return value reports whether the record needs updating.
func NextVerificationStatus(current string, signatureValid bool) (string, bool) {
	if current == PaymentStatusSuccess {
		return PaymentStatusSuccess, false
	}
	if signatureValid {
		return PaymentStatusSuccess, true
	}
	return PaymentStatusFailed, true
}

// CreateOrderRequest asks the gateway for a new order
type CreateOrderRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

// VerifyPaymentRequest is the gateway callback payload forwarded by the client
type VerifyPaymentRequest struct {
	RazorpayOrderID   string `json:"razorpay_order_id" validate:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" validate:"required"`
	RazorpaySignature string `json:"razorpay_signature" validate:"required"`
	PaymentDBID       string `json:"payment_db_id" validate:"required"`
}

// UpdatePaymentStatusInput carries a manual status change (COD settlement)
type UpdatePaymentStatusInput struct {
	Status string `json:"status" validate:"required"`
}
