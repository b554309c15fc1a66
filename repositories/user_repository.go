package repositories

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/autonest/autonest_backend/config"
	"github.com/autonest/autonest_backend/models"
)

type UserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(client *mongo.Client) *UserRepository {
	return &UserRepository{
		collection: client.Database(config.DatabaseName).Collection("users"),
	}
}

// FindByEmail returns the user with the given email
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &models.NotFoundError{Resource: "user"}
		}
		return nil, err
	}
	return &user, nil
}

// FindActiveAgent returns the user with the given id if they are an active agent
func (r *UserRepository) FindActiveAgent(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{
		"_id":      id,
		"role":     models.RoleAgent,
		"isActive": true,
	}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, &models.NotFoundError{Resource: "active agent"}
		}
		return nil, err
	}
	return &user, nil
}

// ListActiveAgents returns every active agent, without password hashes
func (r *UserRepository) ListActiveAgents(ctx context.Context) ([]models.User, error) {
	opts := options.Find().SetProjection(bson.M{"password": 0})
	cursor, err := r.collection.Find(ctx, bson.M{"role": models.RoleAgent, "isActive": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var agents []models.User
	if err := cursor.All(ctx, &agents); err != nil {
		return nil, err
	}
	return agents, nil
}

// CountActiveAgents returns the number of active agents
func (r *UserRepository) CountActiveAgents(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"role": models.RoleAgent, "isActive": true})
}

// List returns all users without password hashes
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	opts := options.Find().
		SetProjection(bson.M{"password": 0}).
		SetSort(bson.M{"createdAt": -1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// ExistsByEmailOrPhone reports whether a user already holds the email or phone
func (r *UserRepository) ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{
		"$or": []bson.M{
			{"email": strings.ToLower(email)},
			{"phone": phone},
		},
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts a new user
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, user)
	return err
}

// Deactivate marks a user inactive
func (r *UserRepository) Deactivate(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"isActive": false, "updatedAt": time.Now()},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return &models.NotFoundError{Resource: "user"}
	}
	return nil
}

// Delete removes a user. Staff accounts cannot be deleted.
func (r *UserRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return &models.NotFoundError{Resource: "user"}
		}
		return err
	}
	if user.IsStaff {
		return &models.ConflictError{Message: "staff accounts cannot be deleted"}
	}

	_, err = r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
