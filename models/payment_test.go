package models

import "testing"

func TestNextVerificationStatus(t *testing.T) {
	cases := []struct {
		name       string
		current    string
		valid      bool
		wantStatus string
		wantUpdate bool
	}{
		{"valid signature settles the payment", PaymentStatusInitiated, true, PaymentStatusSuccess, true},
		{"invalid signature fails the payment", PaymentStatusInitiated, false, PaymentStatusFailed, true},
		{"duplicate callback is a no-op", PaymentStatusSuccess, true, PaymentStatusSuccess, false},
		{"invalid callback cannot unsettle success", PaymentStatusSuccess, false, PaymentStatusSuccess, false},
		{"failed payment can be retried to success", PaymentStatusFailed, true, PaymentStatusSuccess, true},
		{"cod payment settled by valid callback", PaymentStatusCOD, true, PaymentStatusSuccess, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, update := NextVerificationStatus(tc.current, tc.valid)
			if status != tc.wantStatus || update != tc.wantUpdate {
				t.Errorf("NextVerificationStatus(%q, %v) = (%q, %v), want (%q, %v)",
					tc.current, tc.valid, status, update, tc.wantStatus, tc.wantUpdate)
			}
		})
	}
}

func TestIsValidPaymentStatus(t *testing.T) {
	for _, status := range []string{PaymentStatusInitiated, PaymentStatusCOD, PaymentStatusSuccess, PaymentStatusFailed} {
		if !IsValidPaymentStatus(status) {
			t.Errorf("%q should be valid", status)
		}
	}
	for _, status := range []string{"", "pending", "SUCCESS", "refunded"} {
		if IsValidPaymentStatus(status) {
			t.Errorf("%q should be invalid", status)
		}
	}
}
