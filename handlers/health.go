package handlers

import (
	"net/http"

	"aamer/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the latest background health snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"health": utils.GetHealthStatus(),
	})
}
