package notification

import (
	"context"

	"aamer/models"
	"aamer/utils"

	"go.uber.org/zap"
)

const latestUnreadLimit = 10

// Notify stores a notification for receiverID. Callers decide whether a
// failure is fatal to their own flow.
func (s *DefaultNotificationService) Notify(ctx context.Context, receiverID, notifType, entityID, message string) (*models.Notification, error) {
	n := &models.Notification{
		ReceiverID: receiverID,
		Type:       notifType,
		EntityID:   entityID,
		Message:    message,
	}
	if err := s.Repo.Create(ctx, n); err != nil {
		utils.GetLogger().Error("Failed to create notification",
			zap.String("receiverId", receiverID),
			zap.String("type", notifType),
			zap.Error(err))
		return nil, err
	}
	return n, nil
}

func (s *DefaultNotificationService) GetForUser(ctx context.Context, userID string) ([]models.Notification, error) {
	return s.Repo.GetByReceiver(ctx, userID)
}

func (s *DefaultNotificationService) GetLatestUnread(ctx context.Context, userID string) ([]models.Notification, error) {
	return s.Repo.GetLatestUnread(ctx, userID, latestUnreadLimit)
}

func (s *DefaultNotificationService) MarkRead(ctx context.Context, notificationID string) error {
	return s.Repo.MarkRead(ctx, notificationID)
}

func (s *DefaultNotificationService) MarkAllRead(ctx context.Context, userID string) error {
	return s.Repo.MarkAllRead(ctx, userID)
}

func (s *DefaultNotificationService) Clear(ctx context.Context, userID string) error {
	return s.Repo.ClearByReceiver(ctx, userID)
}
