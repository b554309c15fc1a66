package services

import (
	"testing"
	"time"

	"github.com/autonest/autonest_backend/models"
)

func TestComputeAgentDashboardStats(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)
	today := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	threeDaysAgo := now.AddDate(0, 0, -3)
	twoWeeksAgo := now.AddDate(0, 0, -14)
	twoMonthsAgo := now.AddDate(0, -2, 0)

	tasks := []models.ServiceRequest{
		// completed today, counts in all earnings buckets
		{ServiceType: models.ServiceTypePetrol, Status: models.RequestStatusCompleted,
			TotalAmount: 1000, CreatedAt: today, UpdatedAt: today},
		// completed this week
		{ServiceType: models.ServiceTypeDiesel, Status: models.RequestStatusCompleted,
			TotalAmount: 500, CreatedAt: threeDaysAgo, UpdatedAt: threeDaysAgo},
		// completed this month but not this week
		{ServiceType: models.ServiceTypeAir, Status: models.RequestStatusCompleted,
			TotalAmount: 50, CreatedAt: twoWeeksAgo, UpdatedAt: twoWeeksAgo},
		// too old for any bucket
		{ServiceType: models.ServiceTypeMechanical, Status: models.RequestStatusCompleted,
			TotalAmount: 300, CreatedAt: twoMonthsAgo, UpdatedAt: twoMonthsAgo},
		// ongoing work
		{ServiceType: models.ServiceTypePetrol, Status: models.RequestStatusAssigned,
			CreatedAt: today, UpdatedAt: today},
		{ServiceType: models.ServiceTypeEV, Status: models.RequestStatusInProgress,
			CreatedAt: threeDaysAgo, UpdatedAt: now},
		// cancelled tasks never count toward earnings
		{ServiceType: models.ServiceTypePetrol, Status: models.RequestStatusCancelled,
			TotalAmount: 800, CreatedAt: today, UpdatedAt: today},
	}

	stats := ComputeAgentDashboardStats(tasks, now)

	if stats.TodayRequests != 3 {
		t.Errorf("TodayRequests = %d, want 3", stats.TodayRequests)
	}
	if stats.OngoingTasks != 2 {
		t.Errorf("OngoingTasks = %d, want 2", stats.OngoingTasks)
	}
	if stats.CompletedTasks != 4 {
		t.Errorf("CompletedTasks = %d, want 4", stats.CompletedTasks)
	}

	if stats.Earnings.Today != 1000 {
		t.Errorf("Earnings.Today = %v, want 1000", stats.Earnings.Today)
	}
	if stats.Earnings.Week != 1500 {
		t.Errorf("Earnings.Week = %v, want 1500", stats.Earnings.Week)
	}
	if stats.Earnings.Month != 1550 {
		t.Errorf("Earnings.Month = %v, want 1550", stats.Earnings.Month)
	}

	if stats.ServiceBreakdown[models.ServiceTypePetrol] != 3 {
		t.Errorf("petrol breakdown = %d, want 3", stats.ServiceBreakdown[models.ServiceTypePetrol])
	}
	if stats.ServiceBreakdown[models.ServiceTypeEV] != 1 {
		t.Errorf("ev breakdown = %d, want 1", stats.ServiceBreakdown[models.ServiceTypeEV])
	}
}

func TestComputeAgentDashboardStatsEmpty(t *testing.T) {
	stats := ComputeAgentDashboardStats(nil, time.Now())

	if stats.TodayRequests != 0 || stats.OngoingTasks != 0 || stats.CompletedTasks != 0 {
		t.Errorf("empty task list produced non-zero counters: %+v", stats)
	}
	if stats.ServiceBreakdown == nil {
		t.Error("ServiceBreakdown should be an empty map, not nil")
	}
}
