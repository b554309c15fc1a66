// models/service_request.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service request lifecycle statuses
const (
	RequestStatusPending    = "pending"
	RequestStatusAssigned   = "assigned"
	RequestStatusInProgress = "in_progress"
	RequestStatusCompleted  = "completed"
	RequestStatusCancelled  = "cancelled"
)

// ServiceRequest is a customer's order against a Service. Status and
// assigned agent are mutated over the lifecycle; the record itself is
// never deleted in the normal flow.
type ServiceRequest struct {
	ID             primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	UserID         primitive.ObjectID  `json:"userId" bson:"userId"`
	ServiceID      primitive.ObjectID  `json:"serviceId" bson:"serviceId"`
	ServiceType    string              `json:"serviceType" bson:"serviceType"`
	VehicleType    string              `json:"vehicleType" bson:"vehicleType"`
	VehicleNumber  string              `json:"vehicleNumber" bson:"vehicleNumber"`
	QuantityLiters float64             `json:"quantityLiters,omitempty" bson:"quantityLiters,omitempty"`
	AmountRupees   float64             `json:"amountRupees,omitempty" bson:"amountRupees,omitempty"`
	TotalAmount    float64             `json:"totalAmount" bson:"totalAmount"`
	DeliveryTime   time.Time           `json:"deliveryTime" bson:"deliveryTime"`
	LocationLat    float64             `json:"locationLat" bson:"locationLat"`
	LocationLng    float64             `json:"locationLng" bson:"locationLng"`
	Notes          string              `json:"notes,omitempty" bson:"notes,omitempty"`
	Status         string              `json:"status" bson:"status"`
	AgentID        *primitive.ObjectID `json:"agentId,omitempty" bson:"agentId,omitempty"`
	CreatedAt      time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt" bson:"updatedAt"`
}

// IsValidRequestStatus reports whether the status belongs to the lifecycle set.
// Legal predecessor ordering is deliberately not enforced here.
func IsValidRequestStatus(status string) bool {
	switch status {
	case RequestStatusPending, RequestStatusAssigned, RequestStatusInProgress,
		RequestStatusCompleted, RequestStatusCancelled:
		return true
	}
	return false
}

// IsTerminalRequestStatus reports whether no further transitions are expected
func IsTerminalRequestStatus(status string) bool {
	return status == RequestStatusCompleted || status == RequestStatusCancelled
}

// CreateServiceRequestInput is the request-creation payload. For fuel types
// exactly one of quantity_liters/amount_rupees drives the quote; non-fuel
// types supply total_amount (or a sub_option resolved against the catalog).
type CreateServiceRequestInput struct {
	ServiceType    string  `json:"service_type" validate:"required"`
	UserEmail      string  `json:"user_email" validate:"required,email"`
	VehicleType    string  `json:"vehicle_type" validate:"required"`
	VehicleNumber  string  `json:"vehicle_number" validate:"required"`
	QuantityLiters string  `json:"quantity_liters"`
	AmountRupees   string  `json:"amount_rupees"`
	TotalAmount    float64 `json:"total_amount"`
	SubOption      string  `json:"sub_option"`
	DeliveryTime   string  `json:"delivery_time" validate:"required"`
	LocationLat    float64 `json:"location_lat"`
	LocationLng    float64 `json:"location_lng"`
	Notes          string  `json:"notes"`
	PaymentMethod  string  `json:"payment_method"`
}

// UpdateRequestStatusInput carries a lifecycle status change
type UpdateRequestStatusInput struct {
	Status string `json:"status" validate:"required"`
}

// AssignAgentInput carries an agent assignment; a null AgentID clears the
// assignment and resets the request to pending.
type AssignAgentInput struct {
	AgentID *string `json:"agent_id"`
}

// AgentTaskStatusInput carries an agent-scoped status change
type AgentTaskStatusInput struct {
	AgentEmail string `json:"agent_email" validate:"required,email"`
	Status     string `json:"status" validate:"required"`
}

// ServiceRequestDetails is the flat dashboard projection joining user,
// service and payment data onto a request.
type ServiceRequestDetails struct {
	ID             primitive.ObjectID `json:"id"`
	UserName       string             `json:"userName"`
	UserEmail      string             `json:"userEmail"`
	UserPhone      string             `json:"userPhone"`
	ServiceName    string             `json:"serviceName"`
	ServiceType    string             `json:"serviceType"`
	VehicleType    string             `json:"vehicleType"`
	VehicleNumber  string             `json:"vehicleNumber"`
	QuantityLiters float64            `json:"quantityLiters,omitempty"`
	TotalAmount    float64            `json:"totalAmount"`
	DeliveryTime   time.Time          `json:"deliveryTime"`
	LocationLat    float64            `json:"locationLat"`
	LocationLng    float64            `json:"locationLng"`
	Notes          string             `json:"notes,omitempty"`
	Status         string             `json:"status"`
	PaymentStatus  string             `json:"paymentStatus,omitempty"`
	PaymentMethod  string             `json:"paymentMethod,omitempty"`
	AgentID        string             `json:"agentId,omitempty"`
	AgentName      string             `json:"agentName,omitempty"`
	CreatedAt      time.Time          `json:"createdAt"`
}

// AgentEarnings buckets completed-task totals by period
type AgentEarnings struct {
	Today float64 `json:"today"`
	Week  float64 `json:"week"`
	Month float64 `json:"month"`
}

// AgentDashboardStats is the agent dashboard aggregation
type AgentDashboardStats struct {
	TodayRequests    int            `json:"todayRequests"`
	OngoingTasks     int            `json:"ongoingTasks"`
	CompletedTasks   int            `json:"completedTasks"`
	Earnings         AgentEarnings  `json:"earnings"`
	ServiceBreakdown map[string]int `json:"serviceBreakdown"`
}
