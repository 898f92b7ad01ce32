package reviewRepo

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

// Create inserts a new review, assigning its ID and creation time.
func (r *mongoReviewRepo) Create(ctx context.Context, review *models.Review) error {
	if review.ID == "" {
		review.ID = utils.NewID()
	}
	review.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, review); err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// GetByBookingID returns the review for a booking, or nil if none exists.
func (r *mongoReviewRepo) GetByBookingID(ctx context.Context, bookingID string) (*models.Review, error) {
	var review models.Review
	err := r.coll.FindOne(ctx, bson.M{"bookingId": bookingID}).Decode(&review)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get review for booking %s: %w", bookingID, err)
	}
	return &review, nil
}

// GetByProviderID returns a provider's reviews, newest first.
func (r *mongoReviewRepo) GetByProviderID(ctx context.Context, providerID string) ([]models.Review, error) {
	return r.find(ctx, bson.M{"providerId": providerID})
}

// GetByUserID returns a reviewer's reviews, newest first.
func (r *mongoReviewRepo) GetByUserID(ctx context.Context, userID string) ([]models.Review, error) {
	return r.find(ctx, bson.M{"userId": userID})
}

func (r *mongoReviewRepo) find(ctx context.Context, filter bson.M) ([]models.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}
