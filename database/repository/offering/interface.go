package offeringRepo

import (
	"context"

	"aamer/database"
	"aamer/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// OfferingRepository provides access to service offering records. Get methods
// return (nil, nil) when no document matches.
type OfferingRepository interface {
	Create(ctx context.Context, offering *models.Offering) error
	GetByID(ctx context.Context, id string) (*models.Offering, error)
	GetAll(ctx context.Context) ([]models.Offering, error)
	GetByStatus(ctx context.Context, status string) ([]models.Offering, error)
	GetByProviderAndStatus(ctx context.Context, providerID, status string) ([]models.Offering, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type mongoOfferingRepo struct {
	coll *mongo.Collection
}

// NewMongoOfferingRepo returns an OfferingRepository backed by MongoDB.
func NewMongoOfferingRepo() OfferingRepository {
	return &mongoOfferingRepo{coll: database.DB().Collection("offerings")}
}
