package notificationRepo

import (
	"context"
	"fmt"
	"time"

	"aamer/models"
	"aamer/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a notification, assigning its ID and creation time.
func (r *mongoNotificationRepo) Create(ctx context.Context, notification *models.Notification) error {
	if notification.ID == "" {
		notification.ID = utils.NewID()
	}
	notification.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, notification); err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// GetByReceiver returns a user's notifications, newest first.
func (r *mongoNotificationRepo) GetByReceiver(ctx context.Context, receiverID string) ([]models.Notification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"receiverId": receiverID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications for %s: %w", receiverID, err)
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// GetLatestUnread returns a user's unread notifications, newest first,
// capped at limit.
func (r *mongoNotificationRepo) GetLatestUnread(ctx context.Context, receiverID string, limit int64) ([]models.Notification, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{"receiverId": receiverID, "isRead": false}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list unread notifications for %s: %w", receiverID, err)
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead marks a single notification as read.
func (r *mongoNotificationRepo) MarkRead(ctx context.Context, notificationID string) error {
	_, err := r.coll.UpdateOne(ctx, bson.M{"id": notificationID}, bson.M{"$set": bson.M{"isRead": true}})
	if err != nil {
		return fmt.Errorf("failed to mark notification %s read: %w", notificationID, err)
	}
	return nil
}

// MarkAllRead marks all of a user's unread notifications as read.
func (r *mongoNotificationRepo) MarkAllRead(ctx context.Context, receiverID string) error {
	_, err := r.coll.UpdateMany(ctx,
		bson.M{"receiverId": receiverID, "isRead": false},
		bson.M{"$set": bson.M{"isRead": true}})
	if err != nil {
		return fmt.Errorf("failed to mark notifications read for %s: %w", receiverID, err)
	}
	return nil
}

// ClearByReceiver hard-deletes all of a user's notifications.
func (r *mongoNotificationRepo) ClearByReceiver(ctx context.Context, receiverID string) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{"receiverId": receiverID})
	if err != nil {
		return fmt.Errorf("failed to clear notifications for %s: %w", receiverID, err)
	}
	return nil
}
