package offeringRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"aamer/models"
	"aamer/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new offering, assigning its ID, creation time and the
// pending status when unset.
func (r *mongoOfferingRepo) Create(ctx context.Context, offering *models.Offering) error {
	if offering.ID == "" {
		offering.ID = utils.NewID()
	}
	if offering.Status == "" {
		offering.Status = models.OfferingStatusPending
	}
	offering.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, offering); err != nil {
		return fmt.Errorf("failed to create offering: %w", err)
	}
	return nil
}

// GetByID returns an offering by ID, or nil if absent.
func (r *mongoOfferingRepo) GetByID(ctx context.Context, id string) (*models.Offering, error) {
	var offering models.Offering
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&offering)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get offering %s: %w", id, err)
	}
	return &offering, nil
}

// GetAll returns every offering.
func (r *mongoOfferingRepo) GetAll(ctx context.Context) ([]models.Offering, error) {
	return r.find(ctx, bson.M{})
}

// GetByStatus returns offerings in the given status.
func (r *mongoOfferingRepo) GetByStatus(ctx context.Context, status string) ([]models.Offering, error) {
	return r.find(ctx, bson.M{"status": status})
}

// GetByProviderAndStatus returns a provider's offerings in the given status.
func (r *mongoOfferingRepo) GetByProviderAndStatus(ctx context.Context, providerID, status string) ([]models.Offering, error) {
	return r.find(ctx, bson.M{"providerId": providerID, "status": status})
}

func (r *mongoOfferingRepo) find(ctx context.Context, filter bson.M) ([]models.Offering, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list offerings: %w", err)
	}
	defer cursor.Close(ctx)

	var offerings []models.Offering
	if err := cursor.All(ctx, &offerings); err != nil {
		return nil, err
	}
	return offerings, nil
}

// UpdateStatus sets an offering's status.
func (r *mongoOfferingRepo) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("failed to update offering %s status: %w", id, err)
	}
	return nil
}
