package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/autonest/autonest_backend/controllers"
)

// Agent endpoints are scoped by the agent email supplied with every call.
func RegisterAgentRoutes(e *echo.Echo, agentController *controllers.AgentController) {
	e.GET("/api/agent/assigned-tasks/", agentController.GetAssignedTasks)
	e.GET("/api/agent/dashboard-stats/", agentController.GetDashboardStats)
	e.PUT("/api/agent/tasks/:id/update-status/", agentController.UpdateTaskStatus)
}
