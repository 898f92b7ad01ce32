package bookingRepo

import (
	"context"
	"errors"
	"fmt"

	"aamer/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByServiceID returns all bookings referencing a request or offering.
func (r *mongoBookingRepo) GetByServiceID(ctx context.Context, serviceID string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"serviceId": serviceID}, nil)
}

// FindDuplicate returns an existing booking with the exact same tuple, or nil.
func (r *mongoBookingRepo) FindDuplicate(ctx context.Context, userID, providerID, serviceID, bookingType string) (*models.Booking, error) {
	filter := bson.M{
		"userId":      userID,
		"providerId":  providerID,
		"serviceId":   serviceID,
		"bookingType": bookingType,
	}
	var booking models.Booking
	err := r.coll.FindOne(ctx, filter).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to check for duplicate booking: %w", err)
	}
	return &booking, nil
}

// GetAll returns every booking.
func (r *mongoBookingRepo) GetAll(ctx context.Context) ([]models.Booking, error) {
	return r.find(ctx, bson.M{}, nil)
}

// GetByParticipant returns bookings where the user appears on either side,
// newest first.
func (r *mongoBookingRepo) GetByParticipant(ctx context.Context, userID string) ([]models.Booking, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"userId": userID},
		bson.M{"providerId": userID},
	}}
	return r.find(ctx, filter, newestFirst())
}

// GetByProviderID returns a provider's bookings, newest first.
func (r *mongoBookingRepo) GetByProviderID(ctx context.Context, providerID string) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"providerId": providerID}, newestFirst())
}

// GetCompleted returns completed bookings, newest first.
func (r *mongoBookingRepo) GetCompleted(ctx context.Context) ([]models.Booking, error) {
	return r.find(ctx, bson.M{"status": models.BookingStatusCompleted}, newestFirst())
}

func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
}

func (r *mongoBookingRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Booking, error) {
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = r.coll.Find(ctx, filter, opts)
	} else {
		cursor, err = r.coll.Find(ctx, filter)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}
