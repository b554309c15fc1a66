// models/agent_registration.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Agent registration statuses returned by the status lookup
const (
	AgentStatusApproved = "approved"
	AgentStatusRejected = "rejected"
	AgentStatusPending  = "pending"
)

// AgentRegistrationRequest is a pending agent application. The password is
// bcrypt-hashed at submission time; the plaintext is never stored. Accepting
// or rejecting the application deletes it.
type AgentRegistrationRequest struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	FullName      string             `json:"fullName" bson:"fullName"`
	Phone         string             `json:"phone" bson:"phone"`
	Email         string             `json:"email" bson:"email"`
	Password      string             `json:"-" bson:"password"`
	IDProofType   string             `json:"idProofType" bson:"idProofType"`
	IDProofNumber string             `json:"idProofNumber" bson:"idProofNumber"`
	IDProofPath   string             `json:"idProofPath" bson:"idProofPath"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
}

// RejectedAgentEmail is an append-only record of rejected applicant emails.
// It disambiguates a later status lookup for the same address.
type RejectedAgentEmail struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Email     string             `json:"email" bson:"email"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
