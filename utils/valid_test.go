package utils

import (
	"testing"
	"time"
)

func TestSanitizeEmail(t *testing.T) {
	got, err := SanitizeEmail("  Ravi.Kumar@Example.COM ")
	if err != nil {
		t.Fatalf("SanitizeEmail: %v", err)
	}
	if got != "ravi.kumar@example.com" {
		t.Errorf("got %q, want lowercase trimmed address", got)
	}

	for _, bad := range []string{"", "notanemail", "a@b", "spaces in@example.com"} {
		if _, err := SanitizeEmail(bad); err == nil {
			t.Errorf("SanitizeEmail(%q) should fail", bad)
		}
	}
}

func TestSanitizePhone(t *testing.T) {
	got, err := SanitizePhone("+91 98765 43210")
	if err != nil {
		t.Fatalf("SanitizePhone: %v", err)
	}
	if got != "+919876543210" {
		t.Errorf("got %q, want +919876543210", got)
	}

	got, err = SanitizePhone("9876543210")
	if err != nil {
		t.Fatalf("SanitizePhone: %v", err)
	}
	if got != "+9876543210" {
		t.Errorf("got %q, want leading + added", got)
	}

	for _, bad := range []string{"", "123", "abcdefgh"} {
		if _, err := SanitizePhone(bad); err == nil {
			t.Errorf("SanitizePhone(%q) should fail", bad)
		}
	}
}

func TestSanitizeInput(t *testing.T) {
	got := SanitizeInput("  <script>alert(1)</script>  ")
	if got == "<script>alert(1)</script>" {
		t.Error("markup not escaped")
	}
	if got != "&lt;script&gt;alert(1)&lt;/script&gt;" {
		t.Errorf("unexpected escape output %q", got)
	}

	if got := SanitizeInput("line\x00break\x07"); got != "linebreak" {
		t.Errorf("control characters not stripped: %q", got)
	}
}

func TestParseDeliveryTime(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		// minute precision, as submitted by browser datetime-local inputs
		{"2026-08-30T14:30", time.Date(2026, 8, 30, 14, 30, 0, 0, time.UTC)},
		{"2026-08-30T14:30:15", time.Date(2026, 8, 30, 14, 30, 15, 0, time.UTC)},
		{"2026-08-30T14:30:00Z", time.Date(2026, 8, 30, 14, 30, 0, 0, time.UTC)},
		{"2026-08-30T14:30:00+05:30", time.Date(2026, 8, 30, 14, 30, 0, 0, time.FixedZone("", 5*3600+1800))},
	}

	for _, tc := range cases {
		got, err := ParseDeliveryTime(tc.in)
		if err != nil {
			t.Errorf("ParseDeliveryTime(%q): %v", tc.in, err)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("ParseDeliveryTime(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}

	for _, bad := range []string{"", "tomorrow", "30-08-2026 14:30", "2026-08-30"} {
		if _, err := ParseDeliveryTime(bad); err == nil {
			t.Errorf("ParseDeliveryTime(%q) should fail", bad)
		}
	}
}

func TestValidateFile(t *testing.T) {
	if err := ValidateFile("idproof.pdf", 1024); err != nil {
		t.Errorf("pdf should pass: %v", err)
	}
	if err := ValidateFile("photo.JPG", 4*1024*1024); err != nil {
		t.Errorf("jpg should pass regardless of case: %v", err)
	}
	if err := ValidateFile("idproof.pdf", 6*1024*1024); err == nil {
		t.Error("oversized file should fail")
	}
	if err := ValidateFile("malware.exe", 1024); err == nil {
		t.Error("disallowed extension should fail")
	}
	if err := ValidateFile("noextension", 1024); err == nil {
		t.Error("missing extension should fail")
	}
}
