package requestRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"aamer/models"
	"aamer/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new request, assigning its ID, creation time and the
// pending status when unset.
func (r *mongoRequestRepo) Create(ctx context.Context, request *models.Request) error {
	if request.ID == "" {
		request.ID = utils.NewID()
	}
	if request.Status == "" {
		request.Status = models.RequestStatusPending
	}
	request.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, request); err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return nil
}

// GetByID returns a request by ID, or nil if absent.
func (r *mongoRequestRepo) GetByID(ctx context.Context, id string) (*models.Request, error) {
	var request models.Request
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&request)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get request %s: %w", id, err)
	}
	return &request, nil
}

// GetAll returns requests newest first, optionally filtered by status.
func (r *mongoRequestRepo) GetAll(ctx context.Context, status string) ([]models.Request, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []models.Request
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// GetByUserID returns a user's requests newest first.
func (r *mongoRequestRepo) GetByUserID(ctx context.Context, userID string) ([]models.Request, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var requests []models.Request
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// UpdateStatus sets a request's status. Missing documents are not an error,
// matching the original endpoint's fire-and-forget update.
func (r *mongoRequestRepo) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("failed to update request %s status: %w", id, err)
	}
	return nil
}
