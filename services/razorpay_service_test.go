package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/autonest/autonest_backend/models"
)

func signPayload(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	const secret = "test_secret"
	svc := NewRazorpayServiceWithCredentials("rzp_test_key", secret)

	orderID := "order_MkWkD3oN2AbCdE"
	paymentID := "pay_MkWlQ7pR4FgHiJ"
	signature := signPayload(secret, orderID, paymentID)

	if !svc.VerifySignature(orderID, paymentID, signature) {
		t.Error("valid signature rejected")
	}
	if svc.VerifySignature(orderID, paymentID, signature+"00") {
		t.Error("tampered signature accepted")
	}
	if svc.VerifySignature(orderID, "pay_other", signature) {
		t.Error("signature accepted for different payment id")
	}
	if svc.VerifySignature(orderID, paymentID, "") {
		t.Error("empty signature accepted")
	}
}

func TestConfigured(t *testing.T) {
	if NewRazorpayServiceWithCredentials("", "").Configured() {
		t.Error("empty credentials reported as configured")
	}
	if !NewRazorpayServiceWithCredentials("key", "secret").Configured() {
		t.Error("full credentials reported as unconfigured")
	}
}

func TestCreateOrderUnconfigured(t *testing.T) {
	svc := NewRazorpayServiceWithCredentials("", "")

	_, err := svc.CreateOrder(500)
	var gwErr *models.GatewayError
	if !errors.As(err, &gwErr) {
		t.Fatalf("got %v, want GatewayError", err)
	}
}
