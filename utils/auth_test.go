package utils

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cureP@ss")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "s3cureP@ss" {
		t.Fatal("password stored in plain text")
	}
	if !CheckPassword(hash, "s3cureP@ss") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "wrongpass") {
		t.Error("wrong password accepted")
	}
}

func TestSplitFullName(t *testing.T) {
	cases := []struct {
		in    string
		first string
		last  string
	}{
		{"Ravi Kumar", "Ravi", "Kumar"},
		{"Anita", "Anita", ""},
		{"Jean Paul van Damme", "Jean", "Paul van Damme"},
		{"  Priya   Sharma  ", "Priya", "Sharma"},
		{"", "", ""},
		{"   ", "", ""},
	}

	for _, tc := range cases {
		first, last := SplitFullName(tc.in)
		if first != tc.first || last != tc.last {
			t.Errorf("SplitFullName(%q) = (%q, %q), want (%q, %q)",
				tc.in, first, last, tc.first, tc.last)
		}
	}
}
