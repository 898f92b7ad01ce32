package requestRepo

import (
	"context"

	"aamer/database"
	"aamer/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// RequestRepository provides access to service request records. Get methods
// return (nil, nil) when no document matches.
type RequestRepository interface {
	Create(ctx context.Context, request *models.Request) error
	GetByID(ctx context.Context, id string) (*models.Request, error)
	GetAll(ctx context.Context, status string) ([]models.Request, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Request, error)
	UpdateStatus(ctx context.Context, id, status string) error
}

type mongoRequestRepo struct {
	coll *mongo.Collection
}

// NewMongoRequestRepo returns a RequestRepository backed by MongoDB.
func NewMongoRequestRepo() RequestRepository {
	return &mongoRequestRepo{coll: database.DB().Collection("requests")}
}
