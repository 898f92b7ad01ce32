package chatRepo

import (
	"context"
	"time"

	"aamer/database"
	"aamer/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ChatRepository provides access to chat and message records. FindByPair
// returns (nil, nil) when no chat exists for the pair.
type ChatRepository interface {
	Create(ctx context.Context, chat *models.Chat) error
	FindByPair(ctx context.Context, userID, providerUserID string) (*models.Chat, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Chat, error)
	GetByProviderUserID(ctx context.Context, providerUserID string) ([]models.Chat, error)
}

// MessageRepository provides access to messages within chats.
type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) error
	GetByChatID(ctx context.Context, chatID string) ([]models.Message, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type mongoChatRepo struct {
	coll *mongo.Collection
}

// NewMongoChatRepo returns a ChatRepository backed by MongoDB.
func NewMongoChatRepo() ChatRepository {
	return &mongoChatRepo{coll: database.DB().Collection("chats")}
}

type mongoMessageRepo struct {
	coll *mongo.Collection
}

// NewMongoMessageRepo returns a MessageRepository backed by MongoDB.
func NewMongoMessageRepo() MessageRepository {
	return &mongoMessageRepo{coll: database.DB().Collection("messages")}
}
