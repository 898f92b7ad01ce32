package paymentRepo

import (
	"context"
	"fmt"
	"time"

	"aamer/models"
	"aamer/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new payment, assigning its ID and creation time.
// Duplicate transaction IDs surface as ErrDuplicateTransaction.
func (r *mongoPaymentRepo) Create(ctx context.Context, payment *models.Payment) error {
	if payment.ID == "" {
		payment.ID = utils.NewID()
	}
	payment.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, payment); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateTransaction
		}
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

// GetByBookingID returns all payments recorded for a booking.
func (r *mongoPaymentRepo) GetByBookingID(ctx context.Context, bookingID string) ([]models.Payment, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"bookingId": bookingID})
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for booking %s: %w", bookingID, err)
	}
	defer cursor.Close(ctx)

	var payments []models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}
