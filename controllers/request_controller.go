package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
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

// RequestController handles the service-request lifecycle
type RequestController struct {
	DB           *mongo.Client
	users        *repositories.UserRepository
	servicesColl *mongo.Collection
	requests     *mongo.Collection
	payments     *mongo.Collection
	hub          *websocket.Hub
}

// NewRequestController creates a new request controller
func NewRequestController(db *mongo.Client, users *repositories.UserRepository, hub *websocket.Hub) *RequestController {
	database := db.Database(config.DatabaseName)
	return &RequestController{
		DB:           db,
		users:        users,
		servicesColl: database.Collection("services"),
		requests:     database.Collection("service_requests"),
		payments:     database.Collection("payments"),
		hub:          hub,
	}
}

// CreateServiceRequest creates a request together with its payment record.
// For fuel types the stock decrement, the request insert and the payment
// insert run in one transaction so no partial state can survive a failure.
func (rc *RequestController) CreateServiceRequest(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	var input models.CreateServiceRequestInput
	if err := c.Bind(&input); err != nil {
		return respondError(c, models.NewValidationError("invalid request body"))
	}
	if err := c.Validate(&input); err != nil {
		return respondError(c, models.NewValidationError("missing or invalid request fields"))
	}
	if !models.IsValidServiceType(input.ServiceType) {
		return respondError(c, models.NewValidationError("unknown service type %q", input.ServiceType))
	}

	deliveryTime, err := utils.ParseDeliveryTime(input.DeliveryTime)
	if err != nil {
		return respondError(c, models.NewValidationError("invalid delivery_time timestamp"))
	}

	user, err := rc.users.FindByEmail(ctx, input.UserEmail)
	if err != nil {
		return respondError(c, err)
	}

	service, err := rc.findServiceForRequest(ctx, input.ServiceType)
	if err != nil {
		return respondError(c, err)
	}

	method := models.PaymentMethodRazorpay
	if input.PaymentMethod == models.PaymentMethodCOD {
		method = models.PaymentMethodCOD
	}

	var quote services.FuelQuote
	var total float64
	isFuel := models.IsFuelType(service.Type)
	if isFuel {
		qty, err := services.ParseQuantityField("quantity_liters", input.QuantityLiters)
		if err != nil {
			return respondError(c, err)
		}
		amt, err := services.ParseQuantityField("amount_rupees", input.AmountRupees)
		if err != nil {
			return respondError(c, err)
		}

		quote, err = services.ComputeFuelQuote(decimal.NewFromFloat(service.Price), qty, amt)
		if err != nil {
			return respondError(c, err)
		}
		if err := services.CheckStock(service.Stock, quote.Quantity); err != nil {
			return respondError(c, err)
		}
		total, _ = quote.Amount.Float64()
	} else {
		switch {
		case input.SubOption != "":
			total, err = services.ResolveSubOptionTotal(service, input.SubOption)
			if err != nil {
				return respondError(c, err)
			}
		case input.TotalAmount > 0:
			total, _ = decimal.NewFromFloat(input.TotalAmount).Round(2).Float64()
		default:
			return respondError(c, models.NewValidationError("total_amount is required for %s requests", service.Type))
		}
	}

	now := time.Now()
	request := models.ServiceRequest{
		ID:            primitive.NewObjectID(),
		UserID:        user.ID,
		ServiceID:     service.ID,
		ServiceType:   service.Type,
		VehicleType:   input.VehicleType,
		VehicleNumber: input.VehicleNumber,
		TotalAmount:   total,
		DeliveryTime:  deliveryTime,
		LocationLat:   input.LocationLat,
		LocationLng:   input.LocationLng,
		Notes:         input.Notes,
		Status:        models.RequestStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if isFuel {
		request.QuantityLiters, _ = quote.Quantity.Float64()
		request.AmountRupees, _ = quote.Amount.Float64()
	}

	paymentStatus := models.PaymentStatusInitiated
	if method == models.PaymentMethodCOD {
		paymentStatus = models.PaymentStatusCOD
	}
	payment := models.Payment{
		ID:        primitive.NewObjectID(),
		RequestID: request.ID,
		Amount:    total,
		Status:    paymentStatus,
		Method:    method,
		CreatedAt: now,
		UpdatedAt: now,
	}

	session, err := rc.DB.StartSession()
	if err != nil {
		log.Printf("Failed to start session: %v", err)
		return respondError(c, err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sessCtx mongo.SessionContext) (interface{}, error) {
		if isFuel {
			qty, _ := quote.Quantity.Float64()
			// Conditional decrement keeps stock non-negative under
			// concurrent creations
			result, err := rc.servicesColl.UpdateOne(sessCtx,
				bson.M{"_id": service.ID, "stock": bson.M{"$gte": qty}},
				bson.M{
					"$inc": bson.M{"stock": -qty},
					"$set": bson.M{"updatedAt": time.Now()},
				})
			if err != nil {
				return nil, err
			}
			if result.MatchedCount == 0 {
				var current models.Service
				if err := rc.servicesColl.FindOne(sessCtx, bson.M{"_id": service.ID}).Decode(&current); err != nil {
					return nil, err
				}
				return nil, &models.InsufficientStockError{Requested: qty, Remaining: current.Stock}
			}
		}

		if _, err := rc.requests.InsertOne(sessCtx, request); err != nil {
			return nil, err
		}
		if _, err := rc.payments.InsertOne(sessCtx, payment); err != nil {
			return nil, err
		}
		return nil, nil
	})
	if err != nil {
		return respondError(c, err)
	}

	rc.hub.NotifyRequestCreated(map[string]interface{}{
		"requestId":   request.ID.Hex(),
		"serviceType": request.ServiceType,
		"totalAmount": request.TotalAmount,
	})

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message":      "Service request created successfully",
		"request_id":   request.ID.Hex(),
		"payment_id":   payment.ID.Hex(),
		"total_amount": request.TotalAmount,
	})
}

// findServiceForRequest resolves the active catalog entry for a type. A
// catalog entry that exists but is not active is a validation failure, not a
// missing resource.
func (rc *RequestController) findServiceForRequest(ctx context.Context, serviceType string) (*models.Service, error) {
	var service models.Service
	err := rc.servicesColl.FindOne(ctx, bson.M{
		"type":   serviceType,
		"status": models.ServiceStatusActive,
	}).Decode(&service)
	if err == nil {
		return &service, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	count, countErr := rc.servicesColl.CountDocuments(ctx, bson.M{"type": serviceType})
	if countErr != nil {
		return nil, countErr
	}
	if count > 0 {
		return nil, models.NewValidationError("service %q is currently unavailable", serviceType)
	}
	return nil, &models.NotFoundError{Resource: "service"}
}

// GetServiceRequests lists all requests with user, service, payment and
// agent data joined into flat projections
func (rc *RequestController) GetServiceRequests(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := rc.requests.Find(ctx, bson.M{}, opts)
	if err != nil {
		log.Printf("Failed to list service requests: %v", err)
		return respondError(c, err)
	}
	defer cursor.Close(ctx)

	var requests []models.ServiceRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return respondError(c, err)
	}

	details := make([]models.ServiceRequestDetails, 0, len(requests))
	for _, req := range requests {
		details = append(details, rc.buildRequestDetails(ctx, req))
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"requests": details,
	})
}

// buildRequestDetails joins user, service, payment and agent records onto a
// request. Lookups that fail leave the corresponding fields empty.
func (rc *RequestController) buildRequestDetails(ctx context.Context, req models.ServiceRequest) models.ServiceRequestDetails {
	detail := models.ServiceRequestDetails{
		ID:             req.ID,
		ServiceType:    req.ServiceType,
		VehicleType:    req.VehicleType,
		VehicleNumber:  req.VehicleNumber,
		QuantityLiters: req.QuantityLiters,
		TotalAmount:    req.TotalAmount,
		DeliveryTime:   req.DeliveryTime,
		LocationLat:    req.LocationLat,
		LocationLng:    req.LocationLng,
		Notes:          req.Notes,
		Status:         req.Status,
		CreatedAt:      req.CreatedAt,
	}

	usersColl := rc.DB.Database(config.DatabaseName).Collection("users")

	var user models.User
	if err := usersColl.FindOne(ctx, bson.M{"_id": req.UserID}).Decode(&user); err == nil {
		detail.UserName = user.FullName()
		detail.UserEmail = user.Email
		detail.UserPhone = user.Phone
	}

	var service models.Service
	if err := rc.servicesColl.FindOne(ctx, bson.M{"_id": req.ServiceID}).Decode(&service); err == nil {
		detail.ServiceName = service.Name
	}

	var payment models.Payment
	if err := rc.payments.FindOne(ctx, bson.M{"requestId": req.ID}).Decode(&payment); err == nil {
		detail.PaymentStatus = payment.Status
		detail.PaymentMethod = payment.Method
	}

	if req.AgentID != nil {
		detail.AgentID = req.AgentID.Hex()
		var agent models.User
		if err := usersColl.FindOne(ctx, bson.M{"_id": *req.AgentID}).Decode(&agent); err == nil {
			detail.AgentName = agent.FullName()
		}
	}

	return detail
}

// UpdateRequestStatus moves a request to a new lifecycle status. Only
// membership in the allowed set is enforced.
func (rc *RequestController) UpdateRequestStatus(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	requestID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return respondError(c, models.NewValidationError("invalid request id"))
	}

	var input models.UpdateRequestStatusInput
	if err := c.Bind(&input); err != nil {
		return respondError(c, models.NewValidationError("invalid request body"))
	}
	if !models.IsValidRequestStatus(input.Status) {
		return respondError(c, models.NewValidationError("unknown status %q", input.Status))
	}

	result, err := rc.requests.UpdateOne(ctx, bson.M{"_id": requestID}, bson.M{
		"$set": bson.M{"status": input.Status, "updatedAt": time.Now()},
	})
	if err != nil {
		log.Printf("Failed to update request %s status: %v", requestID.Hex(), err)
		return respondError(c, err)
	}
	if result.MatchedCount == 0 {
		return respondError(c, &models.NotFoundError{Resource: "service request"})
	}

	rc.hub.NotifyRequestStatus(map[string]interface{}{
		"requestId": requestID.Hex(),
		"status":    input.Status,
	})

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Request status updated successfully",
	})
}

// AssignAgent sets or clears the agent on a request. Assigning moves the
// request to assigned; clearing resets it to pending.
func (rc *RequestController) AssignAgent(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	requestID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return respondError(c, models.NewValidationError("invalid request id"))
	}

	var input models.AssignAgentInput
	if err := c.Bind(&input); err != nil {
		return respondError(c, models.NewValidationError("invalid request body"))
	}

	var update bson.M
	var notifyAgent string
	if input.AgentID == nil || *input.AgentID == "" {
		update = bson.M{
			"$unset": bson.M{"agentId": ""},
			"$set":   bson.M{"status": models.RequestStatusPending, "updatedAt": time.Now()},
		}
	} else {
		agentID, err := primitive.ObjectIDFromHex(*input.AgentID)
		if err != nil {
			return respondError(c, models.NewValidationError("invalid agent id"))
		}
		agent, err := rc.users.FindActiveAgent(ctx, agentID)
		if err != nil {
			return respondError(c, err)
		}
		notifyAgent = agent.FullName()
		update = bson.M{
			"$set": bson.M{
				"agentId":   agent.ID,
				"status":    models.RequestStatusAssigned,
				"updatedAt": time.Now(),
			},
		}
	}

	result, err := rc.requests.UpdateOne(ctx, bson.M{"_id": requestID}, update)
	if err != nil {
		log.Printf("Failed to assign agent on request %s: %v", requestID.Hex(), err)
		return respondError(c, err)
	}
	if result.MatchedCount == 0 {
		return respondError(c, &models.NotFoundError{Resource: "service request"})
	}

	rc.hub.NotifyAgentAssigned(map[string]interface{}{
		"requestId": requestID.Hex(),
		"agentName": notifyAgent,
	})

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Agent assignment updated successfully",
	})
}

// GetAvailableAgents lists active agents for the assignment dropdown
func (rc *RequestController) GetAvailableAgents(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	agents, err := rc.users.ListActiveAgents(ctx)
	if err != nil {
		log.Printf("Failed to list active agents: %v", err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"agents": agents,
	})
}
