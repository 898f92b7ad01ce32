package chat

import (
	"context"
	"time"

	"aamer/config"
	chatRepo "aamer/database/repository/chat"
	userRepo "aamer/database/repository/user"
	"aamer/models"
	"aamer/services/notification"
	"aamer/utils"
)

// SendMessageInput carries one chat message.
type SendMessageInput struct {
	ChatID     string `json:"chatId"`
	Message    string `json:"message"`
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
}

// ChatParticipant is the counterpart shown in a chat listing.
type ChatParticipant struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// ChatView is a chat joined with the other participant's account.
type ChatView struct {
	models.Chat
	Counterpart *ChatParticipant `json:"counterpart"`
}

// ChatService manages chats between customers and providers and the
// messages inside them.
type ChatService interface {
	// Initiate returns the existing chat for the pair or creates one.
	// The boolean reports whether a new chat was created.
	Initiate(ctx context.Context, userID, providerUserID string) (*models.Chat, bool, error)
	GetChats(ctx context.Context, userID, userType string) ([]ChatView, error)
	SendMessage(ctx context.Context, in SendMessageInput) (*models.Message, error)
	GetMessages(ctx context.Context, chatID string) ([]models.Message, error)
	// CleanupOldMessages deletes messages older than the retention window
	// and returns how many were removed.
	CleanupOldMessages(ctx context.Context) (int64, error)
}

// DefaultChatService is the production implementation.
type DefaultChatService struct {
	Chats    chatRepo.ChatRepository
	Messages chatRepo.MessageRepository
	Users    userRepo.UserRepository
	NotifSvc notification.NotificationService
}

func (s *DefaultChatService) Initiate(ctx context.Context, userID, providerUserID string) (*models.Chat, bool, error) {
	if userID == "" || providerUserID == "" {
		return nil, false, utils.NewValidationError("userId and providerUserId are required")
	}

	existing, err := s.Chats.FindByPair(ctx, userID, providerUserID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	chat := &models.Chat{UserID: userID, ProviderUserID: providerUserID}
	if err := s.Chats.Create(ctx, chat); err != nil {
		return nil, false, err
	}
	return chat, true, nil
}

// GetChats lists a participant's chats with the opposite side's account
// attached. Which side is "opposite" depends on the caller's user type.
func (s *DefaultChatService) GetChats(ctx context.Context, userID, userType string) ([]ChatView, error) {
	var chats []models.Chat
	var err error

	switch userType {
	case models.UserTypeUser:
		chats, err = s.Chats.GetByUserID(ctx, userID)
	case models.UserTypeProvider:
		chats, err = s.Chats.GetByProviderUserID(ctx, userID)
	default:
		return nil, utils.NewValidationError("Invalid user type")
	}
	if err != nil {
		return nil, err
	}

	views := make([]ChatView, 0, len(chats))
	for _, chat := range chats {
		counterpartID := chat.ProviderUserID
		if userType == models.UserTypeProvider {
			counterpartID = chat.UserID
		}

		view := ChatView{Chat: chat}
		if user, err := s.Users.GetByID(ctx, counterpartID); err == nil && user != nil {
			view.Counterpart = &ChatParticipant{ID: user.ID, Email: user.Email}
		}
		views = append(views, view)
	}
	return views, nil
}

// SendMessage stores the message and notifies the receiver. The
// notification is part of the flow; if it fails the send reports the error
// even though the message was stored.
func (s *DefaultChatService) SendMessage(ctx context.Context, in SendMessageInput) (*models.Message, error) {
	message := &models.Message{
		ChatID:     in.ChatID,
		Message:    in.Message,
		SenderID:   in.SenderID,
		ReceiverID: in.ReceiverID,
	}
	if err := s.Messages.Create(ctx, message); err != nil {
		return nil, err
	}

	if _, err := s.NotifSvc.Notify(ctx, in.ReceiverID, models.NotificationTypeMessage, in.ChatID,
		"Your have a new message"); err != nil {
		return nil, err
	}
	return message, nil
}

func (s *DefaultChatService) GetMessages(ctx context.Context, chatID string) ([]models.Message, error) {
	return s.Messages.GetByChatID(ctx, chatID)
}

func (s *DefaultChatService) CleanupOldMessages(ctx context.Context) (int64, error) {
	days := config.AppConfig.MessageRetentionDays
	if days <= 0 {
		days = 30
	}
	cutoff := time.Now().AddDate(0, 0, -days)
	return s.Messages.DeleteOlderThan(ctx, cutoff)
}
