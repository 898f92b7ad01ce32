package notification

import (
	"context"

	notificationRepo "aamer/database/repository/notification"
	"aamer/models"
)

// NotificationService records and serves in-app notifications. Notify is the
// fan-in used by the booking, payment, review and message flows.
type NotificationService interface {
	Notify(ctx context.Context, receiverID, notifType, entityID, message string) (*models.Notification, error)
	GetForUser(ctx context.Context, userID string) ([]models.Notification, error)
	GetLatestUnread(ctx context.Context, userID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, notificationID string) error
	MarkAllRead(ctx context.Context, userID string) error
	Clear(ctx context.Context, userID string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Repo notificationRepo.NotificationRepository
}
