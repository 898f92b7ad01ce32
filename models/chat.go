package models

import "time"

// Chat pairs a customer with a provider's user account. One chat exists per
// pair; initiation is find-or-create.
type Chat struct {
	ID             string `bson:"id" json:"id"`
	UserID         string `bson:"userId" json:"userId"`
	ProviderUserID string `bson:"providerUserId" json:"providerUserId"`
}

// Message belongs to a chat.
type Message struct {
	ID         string    `bson:"id" json:"id"`
	ChatID     string    `bson:"chatId" json:"chatId"`
	Message    string    `bson:"message" json:"message"`
	SenderID   string    `bson:"senderId" json:"senderId"`
	ReceiverID string    `bson:"receiverId" json:"receiverId"`
	IsRead     bool      `bson:"isRead" json:"isRead"`
	Timestamp  time.Time `bson:"timestamp" json:"timestamp"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}
