package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/autonest/autonest_backend/config"
	"github.com/autonest/autonest_backend/models"
	"github.com/autonest/autonest_backend/repositories"
	"github.com/autonest/autonest_backend/services"
	"github.com/autonest/autonest_backend/utils"
	"github.com/autonest/autonest_backend/websocket"
)

// AgentController serves the agent dashboard: assigned tasks, stats and
// agent-scoped status updates
type AgentController struct {
	DB       *mongo.Client
	users    *repositories.UserRepository
	requests *mongo.Collection
	hub      *websocket.Hub
}

// NewAgentController creates a new agent controller
func NewAgentController(db *mongo.Client, users *repositories.UserRepository, hub *websocket.Hub) *AgentController {
	return &AgentController{
		DB:       db,
		users:    users,
		requests: db.Database(config.DatabaseName).Collection("service_requests"),
		hub:      hub,
	}
}

// resolveAgent maps an email to an active agent account
func (ac *AgentController) resolveAgent(ctx context.Context, email string) (*models.User, error) {
	sanitized, err := utils.SanitizeEmail(email)
	if err != nil {
		return nil, models.NewValidationError("invalid agent email")
	}

	user, err := ac.users.FindByEmail(ctx, sanitized)
	if err != nil {
		return nil, &models.NotFoundError{Resource: "agent"}
	}
	if user.Role != models.RoleAgent || !user.IsActive {
		return nil, &models.NotFoundError{Resource: "agent"}
	}
	return user, nil
}

// agentTasks fetches every request assigned to the agent, newest first
func (ac *AgentController) agentTasks(ctx context.Context, agentID primitive.ObjectID) ([]models.ServiceRequest, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := ac.requests.Find(ctx, bson.M{"agentId": agentID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []models.ServiceRequest
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetAssignedTasks lists the agent's tasks with requester details joined in
func (ac *AgentController) GetAssignedTasks(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	agent, err := ac.resolveAgent(ctx, c.QueryParam("email"))
	if err != nil {
		return respondError(c, err)
	}

	tasks, err := ac.agentTasks(ctx, agent.ID)
	if err != nil {
		log.Printf("Failed to fetch tasks for agent %s: %v", agent.Email, err)
		return respondError(c, err)
	}

	usersColl := ac.DB.Database(config.DatabaseName).Collection("users")
	details := make([]map[string]interface{}, 0, len(tasks))
	for _, task := range tasks {
		entry := map[string]interface{}{
			"id":            task.ID.Hex(),
			"serviceType":   task.ServiceType,
			"vehicleType":   task.VehicleType,
			"vehicleNumber": task.VehicleNumber,
			"totalAmount":   task.TotalAmount,
			"deliveryTime":  task.DeliveryTime,
			"locationLat":   task.LocationLat,
			"locationLng":   task.LocationLng,
			"notes":         task.Notes,
			"status":        task.Status,
			"createdAt":     task.CreatedAt,
		}
		if task.QuantityLiters > 0 {
			entry["quantityLiters"] = task.QuantityLiters
		}

		var requester models.User
		if err := usersColl.FindOne(ctx, bson.M{"_id": task.UserID}).Decode(&requester); err == nil {
			entry["customerName"] = requester.FullName()
			entry["customerPhone"] = requester.Phone
		}

		details = append(details, entry)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"tasks": details,
	})
}

// GetDashboardStats returns the agent dashboard aggregation
func (ac *AgentController) GetDashboardStats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	agent, err := ac.resolveAgent(ctx, c.QueryParam("email"))
	if err != nil {
		return respondError(c, err)
	}

	tasks, err := ac.agentTasks(ctx, agent.ID)
	if err != nil {
		log.Printf("Failed to fetch tasks for agent %s: %v", agent.Email, err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, services.ComputeAgentDashboardStats(tasks, time.Now()))
}

// UpdateTaskStatus lets an agent move one of their own tasks to a new
// lifecycle status. Tasks assigned to other agents are invisible here.
func (ac *AgentController) UpdateTaskStatus(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	taskID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return respondError(c, models.NewValidationError("invalid task id"))
	}

	var input models.AgentTaskStatusInput
	if err := c.Bind(&input); err != nil {
		return respondError(c, models.NewValidationError("invalid request body"))
	}
	if err := c.Validate(&input); err != nil {
		return respondError(c, models.NewValidationError("agent_email and status are required"))
	}
	if !models.IsValidRequestStatus(input.Status) {
		return respondError(c, models.NewValidationError("unknown status %q", input.Status))
	}

	agent, err := ac.resolveAgent(ctx, input.AgentEmail)
	if err != nil {
		return respondError(c, err)
	}

	result, err := ac.requests.UpdateOne(ctx,
		bson.M{"_id": taskID, "agentId": agent.ID},
		bson.M{"$set": bson.M{"status": input.Status, "updatedAt": time.Now()}})
	if err != nil {
		log.Printf("Failed to update task %s for agent %s: %v", taskID.Hex(), agent.Email, err)
		return respondError(c, err)
	}
	if result.MatchedCount == 0 {
		return respondError(c, &models.NotFoundError{Resource: "assigned task"})
	}

	ac.hub.NotifyRequestStatus(map[string]interface{}{
		"requestId": taskID.Hex(),
		"status":    input.Status,
		"agentId":   agent.ID.Hex(),
	})

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Task status updated successfully",
	})
}
