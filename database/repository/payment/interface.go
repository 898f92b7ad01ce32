package paymentRepo

import (
	"context"
	"errors"

	"aamer/database"
	"aamer/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrDuplicateTransaction is returned when a payment reuses an existing
// transaction ID (unique index violation).
var ErrDuplicateTransaction = errors.New("duplicate transaction id")

// PaymentRepository provides access to payment records.
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	GetByBookingID(ctx context.Context, bookingID string) ([]models.Payment, error)
}

type mongoPaymentRepo struct {
	coll *mongo.Collection
}

// NewMongoPaymentRepo returns a PaymentRepository backed by MongoDB.
func NewMongoPaymentRepo() PaymentRepository {
	return &mongoPaymentRepo{coll: database.DB().Collection("payments")}
}
