package handlers

import (
	"net/http"

	"aamer/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError writes a service error under the "error" body key, or the
// fallback text as a 500. Half the API reports errors this way; the rest
// uses respondMessageError.
func respondError(c *gin.Context, logger *zap.Logger, err error, fallback string) {
	if se, status, ok := utils.AsServiceError(err); ok {
		c.JSON(status, gin.H{"error": se.Message})
		return
	}
	logger.Error(fallback, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}

// respondMessageError writes a service error under the "message" body key,
// the convention of the auth, request, notification and chat endpoints.
func respondMessageError(c *gin.Context, logger *zap.Logger, err error) {
	if se, status, ok := utils.AsServiceError(err); ok {
		c.JSON(status, gin.H{"message": se.Message})
		return
	}
	logger.Error("Server error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error", "error": err.Error()})
}
