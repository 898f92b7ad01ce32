package handlers

import (
	"net/http"

	"aamer/services/chat"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InitiateChatHandler finds or creates the chat for a user/provider pair.
// 200 means it already existed, 201 means it was created.
func (h *HandlerBundle) InitiateChatHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		UserID         string `json:"userId"`
		ProviderUserID string `json:"providerUserId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid chat request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	result, created, err := h.ChatSvc.Initiate(c.Request.Context(), req.UserID, req.ProviderUserID)
	if err != nil {
		respondMessageError(c, logger, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, result)
}

func (h *HandlerBundle) GetChatsHandler(c *gin.Context) {
	logger := getLogger(c)

	chats, err := h.ChatSvc.GetChats(c.Request.Context(), c.Param("userId"), c.Param("userType"))
	if err != nil {
		respondMessageError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, chats)
}

func (h *HandlerBundle) CleanupOldMessagesHandler(c *gin.Context) {
	logger := getLogger(c)

	if _, err := h.ChatSvc.CleanupOldMessages(c.Request.Context()); err != nil {
		respondMessageError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "✅ Old messages deleted successfully"})
}

func (h *HandlerBundle) SendMessageHandler(c *gin.Context) {
	logger := getLogger(c)

	var in chat.SendMessageInput
	if err := c.ShouldBindJSON(&in); err != nil {
		logger.Error("Invalid message request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	message, err := h.ChatSvc.SendMessage(c.Request.Context(), in)
	if err != nil {
		respondMessageError(c, logger, err)
		return
	}
	c.JSON(http.StatusCreated, message)
}

func (h *HandlerBundle) GetMessagesHandler(c *gin.Context) {
	logger := getLogger(c)

	messages, err := h.ChatSvc.GetMessages(c.Request.Context(), c.Param("chatId"))
	if err != nil {
		respondMessageError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}
