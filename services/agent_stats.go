// services/agent_stats.go
package services

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/autonest/autonest_backend/models"
)

// ComputeAgentDashboardStats aggregates an agent's assigned tasks into the
// dashboard projection. Earnings cover completed tasks, bucketed by their
// last update time (the completion moment).
func ComputeAgentDashboardStats(tasks []models.ServiceRequest, now time.Time) models.AgentDashboardStats {
	stats := models.AgentDashboardStats{
		ServiceBreakdown: make(map[string]int),
	}

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekAgo := now.AddDate(0, 0, -7)
	monthAgo := now.AddDate(0, -1, 0)

	var today, week, month decimal.Decimal
	for _, task := range tasks {
		stats.ServiceBreakdown[task.ServiceType]++

		if !task.CreatedAt.Before(startOfDay) {
			stats.TodayRequests++
		}

		switch task.Status {
		case models.RequestStatusAssigned, models.RequestStatusInProgress:
			stats.OngoingTasks++
		case models.RequestStatusCompleted:
			stats.CompletedTasks++
			amount := decimal.NewFromFloat(task.TotalAmount)
			if !task.UpdatedAt.Before(startOfDay) {
				today = today.Add(amount)
			}
			if task.UpdatedAt.After(weekAgo) {
				week = week.Add(amount)
			}
			if task.UpdatedAt.After(monthAgo) {
				month = month.Add(amount)
			}
		}
	}

	stats.Earnings.Today, _ = today.Round(2).Float64()
	stats.Earnings.Week, _ = week.Round(2).Float64()
	stats.Earnings.Month, _ = month.Round(2).Float64()

	return stats
}
