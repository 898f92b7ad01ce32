package notificationRepo

import (
	"context"

	"aamer/database"
	"aamer/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// NotificationRepository provides access to notification records.
type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	GetByReceiver(ctx context.Context, receiverID string) ([]models.Notification, error)
	GetLatestUnread(ctx context.Context, receiverID string, limit int64) ([]models.Notification, error)
	MarkRead(ctx context.Context, notificationID string) error
	MarkAllRead(ctx context.Context, receiverID string) error
	ClearByReceiver(ctx context.Context, receiverID string) error
}

type mongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo returns a NotificationRepository backed by MongoDB.
func NewMongoNotificationRepo() NotificationRepository {
	return &mongoNotificationRepo{coll: database.DB().Collection("notifications")}
}
