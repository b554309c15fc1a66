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
)

// ServiceController handles the service catalog
type ServiceController struct {
	DB       *mongo.Client
	users    *repositories.UserRepository
	services *mongo.Collection
}

// NewServiceController creates a new service controller
func NewServiceController(db *mongo.Client, users *repositories.UserRepository) *ServiceController {
	return &ServiceController{
		DB:       db,
		users:    users,
		services: db.Database(config.DatabaseName).Collection("services"),
	}
}

// CreateService adds a catalog entry
func (sc *ServiceController) CreateService(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var input models.ServiceInput
	if err := c.Bind(&input); err != nil {
		return respondError(c, models.NewValidationError("invalid request body"))
	}
	if err := c.Validate(&input); err != nil {
		return respondError(c, models.NewValidationError("missing or invalid service fields"))
	}
	if !models.IsValidServiceType(input.Type) {
		return respondError(c, models.NewValidationError("unknown service type %q", input.Type))
	}
	if input.Status == "" {
		input.Status = models.ServiceStatusActive
	}
	if !models.IsValidServiceStatus(input.Status) {
		return respondError(c, models.NewValidationError("unknown service status %q", input.Status))
	}
	if input.Currency == "" {
		input.Currency = "INR"
	}

	now := time.Now()
	service := models.Service{
		ID:              primitive.NewObjectID(),
		Name:            input.Name,
		Type:            input.Type,
		Description:     input.Description,
		Stock:           input.Stock,
		Unit:            input.Unit,
		Price:           input.Price,
		Currency:        input.Currency,
		SubOptionPrices: input.SubOptionPrices,
		Status:          input.Status,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if _, err := sc.services.InsertOne(ctx, service); err != nil {
		log.Printf("Failed to create service: %v", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Service created successfully",
		Data:    service,
	})
}

// GetServices lists the catalog, newest first
func (sc *ServiceController) GetServices(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := sc.services.Find(ctx, bson.M{}, opts)
	if err != nil {
		log.Printf("Failed to list services: %v", err)
		return respondError(c, err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Services retrieved successfully",
		Data:    services,
	})
}

// GetService returns a single catalog entry
func (sc *ServiceController) GetService(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	serviceID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return respondError(c, models.NewValidationError("invalid service id"))
	}

	var service models.Service
	if err := sc.services.FindOne(ctx, bson.M{"_id": serviceID}).Decode(&service); err != nil {
		if err == mongo.ErrNoDocuments {
			return respondError(c, &models.NotFoundError{Resource: "service"})
		}
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Service retrieved successfully",
		Data:    service,
	})
}

// UpdateService replaces the mutable fields of a catalog entry
func (sc *ServiceController) UpdateService(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	serviceID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return respondError(c, models.NewValidationError("invalid service id"))
	}

	var input models.ServiceInput
	if err := c.Bind(&input); err != nil {
		return respondError(c, models.NewValidationError("invalid request body"))
	}
	if err := c.Validate(&input); err != nil {
		return respondError(c, models.NewValidationError("missing or invalid service fields"))
	}
	if !models.IsValidServiceType(input.Type) {
		return respondError(c, models.NewValidationError("unknown service type %q", input.Type))
	}
	if input.Status != "" && !models.IsValidServiceStatus(input.Status) {
		return respondError(c, models.NewValidationError("unknown service status %q", input.Status))
	}

	update := bson.M{"$set": bson.M{
		"name":            input.Name,
		"type":            input.Type,
		"description":     input.Description,
		"stock":           input.Stock,
		"unit":            input.Unit,
		"price":           input.Price,
		"subOptionPrices": input.SubOptionPrices,
		"updatedAt":       time.Now(),
	}}
	if input.Status != "" {
		update["$set"].(bson.M)["status"] = input.Status
	}
	if input.Currency != "" {
		update["$set"].(bson.M)["currency"] = input.Currency
	}

	result, err := sc.services.UpdateOne(ctx, bson.M{"_id": serviceID}, update)
	if err != nil {
		log.Printf("Failed to update service %s: %v", serviceID.Hex(), err)
		return respondError(c, err)
	}
	if result.MatchedCount == 0 {
		return respondError(c, &models.NotFoundError{Resource: "service"})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Service updated successfully",
	})
}

// DeleteService removes a catalog entry
func (sc *ServiceController) DeleteService(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	serviceID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return respondError(c, models.NewValidationError("invalid service id"))
	}

	result, err := sc.services.DeleteOne(ctx, bson.M{"_id": serviceID})
	if err != nil {
		return respondError(c, err)
	}
	if result.DeletedCount == 0 {
		return respondError(c, &models.NotFoundError{Resource: "service"})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Service deleted successfully",
	})
}

// GetServiceByType returns the active catalog entry for a service type
func (sc *ServiceController) GetServiceByType(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	serviceType := c.Param("type")
	if !models.IsValidServiceType(serviceType) {
		return respondError(c, models.NewValidationError("unknown service type %q", serviceType))
	}

	var service models.Service
	err := sc.services.FindOne(ctx, bson.M{
		"type":   serviceType,
		"status": models.ServiceStatusActive,
	}).Decode(&service)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return respondError(c, &models.NotFoundError{Resource: "service"})
		}
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Service retrieved successfully",
		Data:    service,
	})
}

// subOptionPrices resolves the per-option price map for a service type
func (sc *ServiceController) subOptionPrices(ctx context.Context, serviceType string) (map[string]float64, error) {
	var service models.Service
	err := sc.services.FindOne(ctx, bson.M{
		"type":   serviceType,
		"status": models.ServiceStatusActive,
	}).Decode(&service)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &models.NotFoundError{Resource: "service"}
		}
		return nil, err
	}
	if service.SubOptionPrices == nil {
		return map[string]float64{}, nil
	}
	return service.SubOptionPrices, nil
}

// GetAirPrices returns tyre-inflation style option prices
func (sc *ServiceController) GetAirPrices(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	prices, err := sc.subOptionPrices(ctx, models.ServiceTypeAir)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, prices)
}

// GetElectricPrices returns EV connector option prices
func (sc *ServiceController) GetElectricPrices(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	prices, err := sc.subOptionPrices(ctx, models.ServiceTypeEV)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, prices)
}

// GetMechanicalPrices returns mechanical issue category prices
func (sc *ServiceController) GetMechanicalPrices(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	prices, err := sc.subOptionPrices(ctx, models.ServiceTypeMechanical)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, prices)
}

// GetAvailableMechanics reports how many active agents can take mechanical work
func (sc *ServiceController) GetAvailableMechanics(c echo.Context) error {
	return sc.availableAgents(c, "mechanics")
}

// GetAvailableAirTechnicians reports available air-fill technicians
func (sc *ServiceController) GetAvailableAirTechnicians(c echo.Context) error {
	return sc.availableAgents(c, "technicians")
}

// GetAvailableElectricChargers reports available mobile EV chargers
func (sc *ServiceController) GetAvailableElectricChargers(c echo.Context) error {
	return sc.availableAgents(c, "chargers")
}

func (sc *ServiceController) availableAgents(c echo.Context, key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := sc.users.CountActiveAgents(ctx)
	if err != nil {
		log.Printf("Failed to count active agents: %v", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]int64{key: count})
}
