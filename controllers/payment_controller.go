package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/autonest/autonest_backend/config"
	"github.com/autonest/autonest_backend/models"
	"github.com/autonest/autonest_backend/services"
)

// PaymentController handles gateway order creation, callback verification
// and manual settlement
type PaymentController struct {
	DB       *mongo.Client
	gateway  *services.RazorpayService
	payments *mongo.Collection
}

// NewPaymentController creates a new payment controller
func NewPaymentController(db *mongo.Client, gateway *services.RazorpayService) *PaymentController {
	return &PaymentController{
		DB:       db,
		gateway:  gateway,
		payments: db.Database(config.DatabaseName).Collection("payments"),
	}
}

// CreateOrder mints a gateway order for the given amount
func (pc *PaymentController) CreateOrder(c echo.Context) error {
	var req models.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, models.NewValidationError("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, models.NewValidationError("amount must be greater than zero"))
	}

	orderID, err := pc.gateway.CreateOrder(req.Amount)
	if err != nil {
		log.Printf("Failed to create gateway order for amount %.2f: %v", req.Amount, err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"order_id": orderID,
		"amount":   req.Amount,
	})
}

// VerifyPayment authenticates a gateway callback. A valid signature settles
// the payment as success; a mismatch marks it failed. Verifying an
// already-settled payment again is a no-op.
func (pc *PaymentController) VerifyPayment(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.VerifyPaymentRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, models.NewValidationError("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, models.NewValidationError("missing verification fields"))
	}

	paymentID, err := primitive.ObjectIDFromHex(req.PaymentDBID)
	if err != nil {
		return respondError(c, models.NewValidationError("invalid payment_db_id"))
	}

	var payment models.Payment
	if err := pc.payments.FindOne(ctx, bson.M{"_id": paymentID}).Decode(&payment); err != nil {
		if err == mongo.ErrNoDocuments {
			return respondError(c, &models.NotFoundError{Resource: "payment"})
		}
		log.Printf("Failed to load payment %s: %v", req.PaymentDBID, err)
		return respondError(c, err)
	}

	if !pc.gateway.Configured() {
		// Cannot authenticate the callback; leave payment state untouched
		log.Printf("Cannot verify payment %s: gateway credentials not configured", req.PaymentDBID)
		return respondError(c, &models.GatewayError{Op: "verify payment", Err: errors.New("gateway credentials not configured")})
	}

	signatureValid := pc.gateway.VerifySignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature)

	newStatus, changed := models.NextVerificationStatus(payment.Status, signatureValid)
	if changed {
		update := bson.M{"$set": bson.M{
			"status":          newStatus,
			"razorpayOrderId": req.RazorpayOrderID,
			"updatedAt":       time.Now(),
		}}
		if newStatus == models.PaymentStatusSuccess {
			update["$set"].(bson.M)["razorpayPaymentId"] = req.RazorpayPaymentID
		}
		if _, err := pc.payments.UpdateOne(ctx, bson.M{"_id": paymentID}, update); err != nil {
			log.Printf("Failed to update payment %s after verification: %v", req.PaymentDBID, err)
			return respondError(c, err)
		}
	}

	if newStatus != models.PaymentStatusSuccess {
		return respondError(c, &models.SignatureVerificationError{})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Payment verified successfully",
		Data: map[string]interface{}{
			"paymentId": paymentID.Hex(),
			"status":    newStatus,
		},
	})
}

// UpdatePaymentStatus applies a manual status change (COD settlement)
func (pc *PaymentController) UpdatePaymentStatus(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	paymentID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return respondError(c, models.NewValidationError("invalid payment id"))
	}

	var input models.UpdatePaymentStatusInput
	if err := c.Bind(&input); err != nil {
		return respondError(c, models.NewValidationError("invalid request body"))
	}
	if !models.IsValidPaymentStatus(input.Status) {
		return respondError(c, models.NewValidationError("unknown payment status %q", input.Status))
	}

	result, err := pc.payments.UpdateOne(ctx, bson.M{"_id": paymentID}, bson.M{
		"$set": bson.M{"status": input.Status, "updatedAt": time.Now()},
	})
	if err != nil {
		log.Printf("Failed to update payment %s status: %v", paymentID.Hex(), err)
		return respondError(c, err)
	}
	if result.MatchedCount == 0 {
		return respondError(c, &models.NotFoundError{Resource: "payment"})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Payment status updated successfully",
	})
}
