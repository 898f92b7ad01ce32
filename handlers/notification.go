package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *HandlerBundle) GetNotificationsHandler(c *gin.Context) {
	logger := getLogger(c)

	notifications, err := h.NotifSvc.GetForUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondMessageError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

func (h *HandlerBundle) GetLatestNotificationsHandler(c *gin.Context) {
	logger := getLogger(c)

	notifications, err := h.NotifSvc.GetLatestUnread(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondMessageError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

func (h *HandlerBundle) MarkNotificationReadHandler(c *gin.Context) {
	logger := getLogger(c)

	if err := h.NotifSvc.MarkRead(c.Request.Context(), c.Param("notificationId")); err != nil {
		respondMessageError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "✅ Notification marked as read"})
}

func (h *HandlerBundle) MarkNotificationsReadHandler(c *gin.Context) {
	logger := getLogger(c)

	if err := h.NotifSvc.MarkAllRead(c.Request.Context(), c.Param("userId")); err != nil {
		respondMessageError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "✅ Notifications marked as read"})
}

func (h *HandlerBundle) ClearNotificationsHandler(c *gin.Context) {
	logger := getLogger(c)

	if err := h.NotifSvc.Clear(c.Request.Context(), c.Param("userId")); err != nil {
		respondMessageError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "✅ All notifications cleared"})
}
