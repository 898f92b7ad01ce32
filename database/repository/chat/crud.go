package chatRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"aamer/models"
	"aamer/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new chat, assigning its ID.
func (r *mongoChatRepo) Create(ctx context.Context, chat *models.Chat) error {
	if chat.ID == "" {
		chat.ID = utils.NewID()
	}
	if _, err := r.coll.InsertOne(ctx, chat); err != nil {
		return fmt.Errorf("failed to create chat: %w", err)
	}
	return nil
}

// FindByPair returns the chat between a user and a provider, or nil.
func (r *mongoChatRepo) FindByPair(ctx context.Context, userID, providerUserID string) (*models.Chat, error) {
	var chat models.Chat
	err := r.coll.FindOne(ctx, bson.M{"userId": userID, "providerUserId": providerUserID}).Decode(&chat)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find chat: %w", err)
	}
	return &chat, nil
}

// GetByUserID returns all chats a customer participates in.
func (r *mongoChatRepo) GetByUserID(ctx context.Context, userID string) ([]models.Chat, error) {
	return r.find(ctx, bson.M{"userId": userID})
}

// GetByProviderUserID returns all chats a provider participates in.
func (r *mongoChatRepo) GetByProviderUserID(ctx context.Context, providerUserID string) ([]models.Chat, error) {
	return r.find(ctx, bson.M{"providerUserId": providerUserID})
}

func (r *mongoChatRepo) find(ctx context.Context, filter bson.M) ([]models.Chat, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list chats: %w", err)
	}
	defer cursor.Close(ctx)

	var chats []models.Chat
	if err := cursor.All(ctx, &chats); err != nil {
		return nil, err
	}
	return chats, nil
}

// Create inserts a new message, assigning its ID and timestamps.
func (r *mongoMessageRepo) Create(ctx context.Context, message *models.Message) error {
	if message.ID == "" {
		message.ID = utils.NewID()
	}
	now := time.Now()
	message.Timestamp = now
	message.CreatedAt = now

	if _, err := r.coll.InsertOne(ctx, message); err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

// GetByChatID returns a chat's messages oldest first.
func (r *mongoMessageRepo) GetByChatID(ctx context.Context, chatID string) ([]models.Message, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"chatId": chatID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages for chat %s: %w", chatID, err)
	}
	defer cursor.Close(ctx)

	var messages []models.Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// DeleteOlderThan removes messages whose timestamp precedes cutoff and
// returns the number deleted.
func (r *mongoMessageRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"timestamp": bson.M{"$lt": cutoff}})
	if err != nil {
		return 0, fmt.Errorf("failed to delete old messages: %w", err)
	}
	return res.DeletedCount, nil
}
