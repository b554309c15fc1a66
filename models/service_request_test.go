package models

import "testing"

func TestIsValidRequestStatus(t *testing.T) {
	valid := []string{
		RequestStatusPending, RequestStatusAssigned, RequestStatusInProgress,
		RequestStatusCompleted, RequestStatusCancelled,
	}
	for _, status := range valid {
		if !IsValidRequestStatus(status) {
			t.Errorf("%q should be valid", status)
		}
	}

	for _, status := range []string{"", "done", "Pending", "in progress"} {
		if IsValidRequestStatus(status) {
			t.Errorf("%q should be invalid", status)
		}
	}
}

func TestIsTerminalRequestStatus(t *testing.T) {
	if !IsTerminalRequestStatus(RequestStatusCompleted) {
		t.Error("completed should be terminal")
	}
	if !IsTerminalRequestStatus(RequestStatusCancelled) {
		t.Error("cancelled should be terminal")
	}
	for _, status := range []string{RequestStatusPending, RequestStatusAssigned, RequestStatusInProgress} {
		if IsTerminalRequestStatus(status) {
			t.Errorf("%q should not be terminal", status)
		}
	}
}

func TestIsValidServiceType(t *testing.T) {
	for _, st := range []string{ServiceTypePetrol, ServiceTypeDiesel, ServiceTypeEV, ServiceTypeAir, ServiceTypeMechanical} {
		if !IsValidServiceType(st) {
			t.Errorf("%q should be valid", st)
		}
	}
	if IsValidServiceType("hydrogen") {
		t.Error("hydrogen should be invalid")
	}

	if !IsFuelType(ServiceTypePetrol) || !IsFuelType(ServiceTypeDiesel) {
		t.Error("petrol and diesel are fuel types")
	}
	if IsFuelType(ServiceTypeEV) || IsFuelType(ServiceTypeAir) {
		t.Error("ev and air are not fuel types")
	}
}
