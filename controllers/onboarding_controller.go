package controllers

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/autonest/autonest_backend/config"
	"github.com/autonest/autonest_backend/models"
	"github.com/autonest/autonest_backend/repositories"
	"github.com/autonest/autonest_backend/utils"
)

const idProofDir = "uploads/idproofs"

// OnboardingController handles the agent registration workflow: submission,
// review listing, accept/reject decisions and status lookups
type OnboardingController struct {
	DB           *mongo.Client
	users        *repositories.UserRepository
	applications *mongo.Collection
	rejected     *mongo.Collection
}

// NewOnboardingController creates a new onboarding controller
func NewOnboardingController(db *mongo.Client, users *repositories.UserRepository) *OnboardingController {
	database := db.Database(config.DatabaseName)
	return &OnboardingController{
		DB:           db,
		users:        users,
		applications: database.Collection("agent_registration_requests"),
		rejected:     database.Collection("rejected_agent_emails"),
	}
}

// Submit stores a pending agent application. The password is hashed here, at
// submission time, so no plaintext credential is ever at rest.
func (oc *OnboardingController) Submit(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	fullName := utils.SanitizeInput(c.FormValue("full_name"))
	password := c.FormValue("password")
	idProofType := utils.SanitizeInput(c.FormValue("id_proof_type"))
	idProofNumber := utils.SanitizeInput(c.FormValue("id_proof_number"))

	if fullName == "" || password == "" || idProofType == "" || idProofNumber == "" {
		return respondError(c, models.NewValidationError("all registration fields are required"))
	}

	email, err := utils.SanitizeEmail(c.FormValue("email"))
	if err != nil {
		return respondError(c, models.NewValidationError("invalid email address"))
	}
	phone, err := utils.SanitizePhone(c.FormValue("phone_number"))
	if err != nil {
		return respondError(c, models.NewValidationError("invalid phone number"))
	}

	pending, err := oc.applications.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		log.Printf("Failed to check pending applications: %v", err)
		return respondError(c, err)
	}
	if pending > 0 {
		return respondError(c, &models.ConflictError{Message: "An application for this email is already pending"})
	}

	file, err := c.FormFile("id_proof_file")
	if err != nil {
		return respondError(c, models.NewValidationError("id_proof_file is required"))
	}
	if err := utils.ValidateFile(file.Filename, file.Size); err != nil {
		return respondError(c, models.NewValidationError("invalid id proof file: %v", err))
	}

	idProofPath, err := saveIDProof(file.Filename, file)
	if err != nil {
		log.Printf("Failed to store id proof for %s: %v", email, err)
		return respondError(c, err)
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		log.Printf("Failed to hash applicant password: %v", err)
		return respondError(c, err)
	}

	application := models.AgentRegistrationRequest{
		ID:            primitive.NewObjectID(),
		FullName:      fullName,
		Phone:         phone,
		Email:         email,
		Password:      hashedPassword,
		IDProofType:   idProofType,
		IDProofNumber: idProofNumber,
		IDProofPath:   idProofPath,
		CreatedAt:     time.Now(),
	}

	if _, err := oc.applications.InsertOne(ctx, application); err != nil {
		log.Printf("Failed to store application for %s: %v", email, err)
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Registration request submitted, pending admin approval",
		Data: map[string]string{
			"requestId": application.ID.Hex(),
		},
	})
}

// saveIDProof writes the uploaded document under the id-proof directory and
// returns the stored relative path
func saveIDProof(filename string, file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(idProofDir, 0755); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	storedName := fmt.Sprintf("%s%s", uuid.New().String(), filepath.Ext(filename))
	path := filepath.Join(idProofDir, storedName)

	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return path, nil
}

// List returns all pending applications for the admin dashboard
func (oc *OnboardingController) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := oc.applications.Find(ctx, bson.M{}, opts)
	if err != nil {
		log.Printf("Failed to list applications: %v", err)
		return respondError(c, err)
	}
	defer cursor.Close(ctx)

	var applications []models.AgentRegistrationRequest
	if err := cursor.All(ctx, &applications); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"requests": applications,
	})
}

// Accept converts a pending application into an active agent account and
// deletes the application
func (oc *OnboardingController) Accept(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	requestID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return respondError(c, models.NewValidationError("invalid request id"))
	}

	var application models.AgentRegistrationRequest
	if err := oc.applications.FindOne(ctx, bson.M{"_id": requestID}).Decode(&application); err != nil {
		if err == mongo.ErrNoDocuments {
			return respondError(c, &models.NotFoundError{Resource: "agent registration request"})
		}
		return respondError(c, err)
	}

	exists, err := oc.users.ExistsByEmailOrPhone(ctx, application.Email, application.Phone)
	if err != nil {
		log.Printf("Failed to check existing users: %v", err)
		return respondError(c, err)
	}
	if exists {
		return respondError(c, &models.ConflictError{Message: "A user with this phone number or email already exists"})
	}

	if resolveIDProofURL(application.IDProofPath) == "" {
		return respondError(c, models.NewValidationError("stored id proof reference cannot be resolved"))
	}

	firstName, lastName := utils.SplitFullName(application.FullName)
	agent := models.User{
		Phone:     application.Phone,
		Email:     application.Email,
		Password:  application.Password, // already hashed at submission
		FirstName: firstName,
		LastName:  lastName,
		Role:      models.RoleAgent,
		IsActive:  true,
	}

	if err := oc.users.Create(ctx, &agent); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return respondError(c, &models.ConflictError{Message: "A user with this phone number or email already exists"})
		}
		log.Printf("Failed to create agent account for %s: %v", application.Email, err)
		return respondError(c, err)
	}

	if _, err := oc.applications.DeleteOne(ctx, bson.M{"_id": requestID}); err != nil {
		log.Printf("Failed to delete application %s after acceptance: %v", requestID.Hex(), err)
	}

	go utils.SendAgentDecisionEmail(application.Email, application.FullName, true)

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Agent registration request accepted",
		Data: map[string]string{
			"agentId": agent.ID.Hex(),
		},
	})
}

// resolveIDProofURL turns a stored id-proof path into a servable URL, empty
// when the reference is unusable
func resolveIDProofURL(path string) string {
	if path == "" {
		return ""
	}
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return "/" + filepath.ToSlash(path)
}

// Reject records the applicant's email in the rejected set and deletes the
// application. Recording is get-or-create, so repeated rejections are safe.
func (oc *OnboardingController) Reject(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	requestID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return respondError(c, models.NewValidationError("invalid request id"))
	}

	var application models.AgentRegistrationRequest
	if err := oc.applications.FindOne(ctx, bson.M{"_id": requestID}).Decode(&application); err != nil {
		if err == mongo.ErrNoDocuments {
			return respondError(c, &models.NotFoundError{Resource: "agent registration request"})
		}
		return respondError(c, err)
	}

	_, err = oc.rejected.UpdateOne(ctx,
		bson.M{"email": application.Email},
		bson.M{"$setOnInsert": bson.M{
			"email":     application.Email,
			"createdAt": time.Now(),
		}},
		options.Update().SetUpsert(true))
	if err != nil {
		log.Printf("Failed to record rejected email %s: %v", application.Email, err)
		return respondError(c, err)
	}

	if _, err := oc.applications.DeleteOne(ctx, bson.M{"_id": requestID}); err != nil {
		log.Printf("Failed to delete application %s after rejection: %v", requestID.Hex(), err)
	}

	go utils.SendAgentDecisionEmail(application.Email, application.FullName, false)

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Agent registration request rejected",
	})
}

// Status resolves an applicant email to approved, rejected or pending, in
// that precedence order
func (oc *OnboardingController) Status(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	email, err := utils.SanitizeEmail(c.QueryParam("email"))
	if err != nil {
		return respondError(c, models.NewValidationError("invalid email address"))
	}

	if user, err := oc.users.FindByEmail(ctx, email); err == nil && user.Role == models.RoleAgent {
		return c.JSON(http.StatusOK, map[string]string{"status": models.AgentStatusApproved})
	}

	rejectedCount, err := oc.rejected.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return respondError(c, err)
	}
	if rejectedCount > 0 {
		return c.JSON(http.StatusOK, map[string]string{"status": models.AgentStatusRejected})
	}

	pendingCount, err := oc.applications.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return respondError(c, err)
	}
	if pendingCount > 0 {
		return c.JSON(http.StatusOK, map[string]string{"status": models.AgentStatusPending})
	}

	return respondError(c, &models.NotFoundError{Resource: "agent registration"})
}
