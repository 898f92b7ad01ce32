package reviewRepo

import (
	"context"

	"aamer/database"
	"aamer/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ReviewRepository provides access to review records. GetByBookingID returns
// (nil, nil) when no review exists.
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	GetByBookingID(ctx context.Context, bookingID string) (*models.Review, error)
	GetByProviderID(ctx context.Context, providerID string) ([]models.Review, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Review, error)
}

type mongoReviewRepo struct {
	coll *mongo.Collection
}

// NewMongoReviewRepo returns a ReviewRepository backed by MongoDB.
func NewMongoReviewRepo() ReviewRepository {
	return &mongoReviewRepo{coll: database.DB().Collection("reviews")}
}
