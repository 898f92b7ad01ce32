package models

import "time"

// Notification types:
// - payment: payment confirmed
// - review: review received or review prompt
// - booking: booking created/updated
// - message: new chat message
const (
	NotificationTypePayment = "payment"
	NotificationTypeReview  = "review"
	NotificationTypeBooking = "booking"
	NotificationTypeMessage = "message"
)

// Notification is a write-only fan-in from the booking, payment, review and
// message flows. EntityID's target type depends on Type and is resolved by
// the client when navigating.
type Notification struct {
	ID         string    `bson:"id" json:"id"`
	ReceiverID string    `bson:"receiverId" json:"receiverId"`
	Type       string    `bson:"type" json:"type"`
	EntityID   string    `bson:"entityId" json:"entityId"`
	Message    string    `bson:"message" json:"message"`
	IsRead     bool      `bson:"isRead" json:"isRead"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}
