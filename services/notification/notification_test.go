package notification

import (
	"context"
	"testing"

	"aamer/models"
	"aamer/utils"
)

type fakeNotificationRepo struct {
	notifications []models.Notification
}

func (f *fakeNotificationRepo) Create(ctx context.Context, n *models.Notification) error {
	if n.ID == "" {
		n.ID = utils.NewID()
	}
	f.notifications = append(f.notifications, *n)
	return nil
}

func (f *fakeNotificationRepo) GetByReceiver(ctx context.Context, receiverID string) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range f.notifications {
		if n.ReceiverID == receiverID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) GetLatestUnread(ctx context.Context, receiverID string, limit int64) ([]models.Notification, error) {
	var out []models.Notification
	// Newest first, like the real query's sort.
	for i := len(f.notifications) - 1; i >= 0; i-- {
		n := f.notifications[i]
		if n.ReceiverID == receiverID && !n.IsRead {
			out = append(out, n)
			if int64(len(out)) == limit {
				break
			}
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) MarkRead(ctx context.Context, notificationID string) error {
	for i := range f.notifications {
		if f.notifications[i].ID == notificationID {
			f.notifications[i].IsRead = true
		}
	}
	return nil
}

func (f *fakeNotificationRepo) MarkAllRead(ctx context.Context, receiverID string) error {
	for i := range f.notifications {
		if f.notifications[i].ReceiverID == receiverID {
			f.notifications[i].IsRead = true
		}
	}
	return nil
}

func (f *fakeNotificationRepo) ClearByReceiver(ctx context.Context, receiverID string) error {
	var kept []models.Notification
	for _, n := range f.notifications {
		if n.ReceiverID != receiverID {
			kept = append(kept, n)
		}
	}
	f.notifications = kept
	return nil
}

func newService() (*DefaultNotificationService, *fakeNotificationRepo) {
	repo := &fakeNotificationRepo{}
	return &DefaultNotificationService{Repo: repo}, repo
}

func TestNotifyStoresNotification(t *testing.T) {
	svc, repo := newService()
	ctx := context.Background()
	receiverID := utils.NewID()

	n, err := svc.Notify(ctx, receiverID, models.NotificationTypeBooking, utils.NewID(), "New booking")
	if err != nil {
		t.Fatalf("Notify: %v", err)
	}
	if n.ID == "" {
		t.Error("notification not assigned an ID")
	}
	stored, _ := repo.GetByReceiver(ctx, receiverID)
	if len(stored) != 1 || stored[0].Message != "New booking" || stored[0].IsRead {
		t.Errorf("stored = %+v", stored)
	}
}

func TestGetLatestUnreadCapsAtTen(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()
	receiverID := utils.NewID()

	for i := 0; i < 12; i++ {
		if _, err := svc.Notify(ctx, receiverID, models.NotificationTypeBooking, utils.NewID(), "n"); err != nil {
			t.Fatalf("Notify: %v", err)
		}
	}

	unread, err := svc.GetLatestUnread(ctx, receiverID)
	if err != nil {
		t.Fatalf("GetLatestUnread: %v", err)
	}
	if len(unread) != 10 {
		t.Errorf("unread = %d, want 10", len(unread))
	}
}

func TestMarkReadAndMarkAllRead(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()
	receiverID := utils.NewID()

	first, _ := svc.Notify(ctx, receiverID, models.NotificationTypeReview, utils.NewID(), "a")
	svc.Notify(ctx, receiverID, models.NotificationTypeReview, utils.NewID(), "b")

	if err := svc.MarkRead(ctx, first.ID); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	unread, _ := svc.GetLatestUnread(ctx, receiverID)
	if len(unread) != 1 {
		t.Fatalf("unread after MarkRead = %d, want 1", len(unread))
	}

	if err := svc.MarkAllRead(ctx, receiverID); err != nil {
		t.Fatalf("MarkAllRead: %v", err)
	}
	unread, _ = svc.GetLatestUnread(ctx, receiverID)
	if len(unread) != 0 {
		t.Errorf("unread after MarkAllRead = %d, want 0", len(unread))
	}
}

func TestClearRemovesOnlyReceiversNotifications(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()
	receiverID := utils.NewID()
	otherID := utils.NewID()

	svc.Notify(ctx, receiverID, models.NotificationTypeBooking, utils.NewID(), "mine")
	svc.Notify(ctx, otherID, models.NotificationTypeBooking, utils.NewID(), "theirs")

	if err := svc.Clear(ctx, receiverID); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	mine, _ := svc.GetForUser(ctx, receiverID)
	if len(mine) != 0 {
		t.Errorf("receiver notifications = %d, want 0", len(mine))
	}
	theirs, _ := svc.GetForUser(ctx, otherID)
	if len(theirs) != 1 {
		t.Errorf("other notifications = %d, want 1", len(theirs))
	}
}
