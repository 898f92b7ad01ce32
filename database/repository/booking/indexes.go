package bookingRepo

import (
	"context"

	"aamer/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureBookingIndexes creates lookup indexes. Deliberately no unique
// compound index over (userId, providerId, serviceId, bookingType): duplicate
// prevention stays a pre-insert check, matching the system's documented
// concurrency posture.
func EnsureBookingIndexes(ctx context.Context) error {
	coll := database.DB().Collection("bookings")
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "serviceId", Value: 1}}},
		{Keys: bson.D{{Key: "userId", Value: 1}}},
		{Keys: bson.D{{Key: "providerId", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	})
	return err
}
