package providerRepo

import (
	"context"
	"errors"
	"fmt"

	"aamer/models"
	"aamer/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new provider profile, assigning its ID.
func (r *mongoProviderRepo) Create(ctx context.Context, provider *models.Provider) error {
	if provider.ID == "" {
		provider.ID = utils.NewID()
	}
	if _, err := r.coll.InsertOne(ctx, provider); err != nil {
		return fmt.Errorf("failed to create provider: %w", err)
	}
	return nil
}

// GetByID returns a provider profile by its own ID, or nil if absent.
func (r *mongoProviderRepo) GetByID(ctx context.Context, id string) (*models.Provider, error) {
	var provider models.Provider
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&provider)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get provider %s: %w", id, err)
	}
	return &provider, nil
}

// GetByUserID returns the provider profile owned by the given user account,
// or nil if absent.
func (r *mongoProviderRepo) GetByUserID(ctx context.Context, userID string) (*models.Provider, error) {
	var provider models.Provider
	err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&provider)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get provider for user %s: %w", userID, err)
	}
	return &provider, nil
}

// GetAll returns every provider profile.
func (r *mongoProviderRepo) GetAll(ctx context.Context) ([]models.Provider, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list providers: %w", err)
	}
	defer cursor.Close(ctx)

	var providers []models.Provider
	if err := cursor.All(ctx, &providers); err != nil {
		return nil, err
	}
	return providers, nil
}
