package bookingRepo

import (
	"context"

	"aamer/database"
	"aamer/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository provides access to booking records. Get methods return
// (nil, nil) when no document matches; list methods return newest first.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetByServiceID(ctx context.Context, serviceID string) ([]models.Booking, error)
	// FindDuplicate looks for a booking with the exact same participant and
	// service tuple. This is a check-then-act guard, not a unique index; the
	// race window is a documented property of the system.
	FindDuplicate(ctx context.Context, userID, providerID, serviceID, bookingType string) (*models.Booking, error)
	GetAll(ctx context.Context) ([]models.Booking, error)
	GetByParticipant(ctx context.Context, userID string) ([]models.Booking, error)
	GetByProviderID(ctx context.Context, providerID string) ([]models.Booking, error)
	GetCompleted(ctx context.Context) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, id, status string) error
	DeleteByID(ctx context.Context, id string) (bool, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	return &mongoBookingRepo{coll: database.DB().Collection("bookings")}
}
