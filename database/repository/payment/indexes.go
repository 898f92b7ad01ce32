package paymentRepo

import (
	"context"

	"aamer/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsurePaymentIndexes creates the unique sparse transactionId index.
// Sparse because the field is optional (cash payments carry none).
func EnsurePaymentIndexes(ctx context.Context) error {
	coll := database.DB().Collection("payments")
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "transactionId", Value: 1}},
		Options: options.Index().SetUnique(true).SetSparse(true),
	})
	return err
}
