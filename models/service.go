// models/service.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service types
const (
	ServiceTypePetrol     = "petrol"
	ServiceTypeDiesel     = "diesel"
	ServiceTypeEV         = "ev"
	ServiceTypeAir        = "air"
	ServiceTypeMechanical = "mechanical"
)

// Service statuses
const (
	ServiceStatusActive      = "active"
	ServiceStatusInactive    = "inactive"
	ServiceStatusMaintenance = "maintenance"
)

// Service is a catalog entry. Stock is tracked only for fuel types and is
// mutated exclusively by service-request creation.
type Service struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name            string             `json:"name" bson:"name"`
	Type            string             `json:"type" bson:"type"`
	Description     string             `json:"description,omitempty" bson:"description,omitempty"`
	Stock           float64            `json:"stock" bson:"stock"`
	Unit            string             `json:"unit" bson:"unit"`
	Price           float64            `json:"price" bson:"price"`
	Currency        string             `json:"currency" bson:"currency"`
	SubOptionPrices map[string]float64 `json:"subOptionPrices,omitempty" bson:"subOptionPrices,omitempty"`
	Status          string             `json:"status" bson:"status"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// IsFuelType reports whether a service type carries liter stock
func IsFuelType(serviceType string) bool {
	return serviceType == ServiceTypePetrol || serviceType == ServiceTypeDiesel
}

// IsValidServiceType reports whether the given type is part of the catalog
func IsValidServiceType(serviceType string) bool {
	switch serviceType {
	case ServiceTypePetrol, ServiceTypeDiesel, ServiceTypeEV, ServiceTypeAir, ServiceTypeMechanical:
		return true
	}
	return false
}

// IsValidServiceStatus reports whether the given status is allowed
func IsValidServiceStatus(status string) bool {
	switch status {
	case ServiceStatusActive, ServiceStatusInactive, ServiceStatusMaintenance:
		return true
	}
	return false
}

// ServiceInput is the catalog create/update payload
type ServiceInput struct {
	Name            string             `json:"name" validate:"required"`
	Type            string             `json:"type" validate:"required"`
	Description     string             `json:"description"`
	Stock           float64            `json:"stock"`
	Unit            string             `json:"unit"`
	Price           float64            `json:"price" validate:"required,gt=0"`
	Currency        string             `json:"currency"`
	SubOptionPrices map[string]float64 `json:"sub_option_prices"`
	Status          string             `json:"status"`
}
