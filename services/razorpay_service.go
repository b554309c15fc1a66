// services/razorpay_service.go
package services

import (
	"errors"
	"log"
	"os"

	"github.com/google/uuid"
	razorpay "github.com/razorpay/razorpay-go"
	rputils "github.com/razorpay/razorpay-go/utils"

	"github.com/autonest/autonest_backend/models"
)

// RazorpayService handles interactions with the Razorpay API
type RazorpayService struct {
	keyID     string
	keySecret string
	client    *razorpay.Client
}

// NewRazorpayService creates a new Razorpay service instance from the
// environment. Missing credentials are logged; calls will then fail with a
// GatewayError instead of reaching the API.
func NewRazorpayService() *RazorpayService {
	keyID := os.Getenv("RAZORPAY_KEY_ID")
	keySecret := os.Getenv("RAZORPAY_KEY_SECRET")

	if keyID == "" || keySecret == "" {
		log.Printf("WARNING: Razorpay credentials not fully configured:")
		if keyID == "" {
			log.Printf("  - RAZORPAY_KEY_ID is missing")
		}
		if keySecret == "" {
			log.Printf("  - RAZORPAY_KEY_SECRET is missing")
		}
		log.Printf("Set these environment variables for the payment workflow to work")
	}

	return newRazorpayService(keyID, keySecret)
}

// NewRazorpayServiceWithCredentials builds a service around explicit
// credentials, bypassing the environment
func NewRazorpayServiceWithCredentials(keyID, keySecret string) *RazorpayService {
	return newRazorpayService(keyID, keySecret)
}

func newRazorpayService(keyID, keySecret string) *RazorpayService {
	client := razorpay.NewClient(keyID, keySecret)
	// Bound every gateway call; seconds
	client.SetTimeout(10)

	return &RazorpayService{
		keyID:     keyID,
		keySecret: keySecret,
		client:    client,
	}
}

// Configured reports whether gateway credentials are present
func (s *RazorpayService) Configured() bool {
	return s.keyID != "" && s.keySecret != ""
}

// CreateOrder mints a gateway order for the given rupee amount and returns
// the gateway order id
func (s *RazorpayService) CreateOrder(amount float64) (string, error) {
	if !s.Configured() {
		return "", &models.GatewayError{Op: "create order", Err: errors.New("razorpay credentials not configured")}
	}

	data := map[string]interface{}{
		"amount":   PaiseAmount(amount),
		"currency": "INR",
		"receipt":  "rcpt_" + uuid.New().String(),
	}

	order, err := s.client.Order.Create(data, nil)
	if err != nil {
		return "", &models.GatewayError{Op: "create order", Err: err}
	}

	orderID, ok := order["id"].(string)
	if !ok || orderID == "" {
		return "", &models.GatewayError{Op: "create order", Err: errors.New("gateway response missing order id")}
	}

	return orderID, nil
}

// VerifySignature validates the signature a callback carries against the
// order and payment ids, using the gateway's official verification algorithm.
func (s *RazorpayService) VerifySignature(orderID, paymentID, signature string) bool {
	params := map[string]interface{}{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
	}
	return rputils.VerifyPaymentSignature(params, signature, s.keySecret)
}
