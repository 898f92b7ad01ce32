package handlers

import (
	"net/http"

	"aamer/services/provider"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *HandlerBundle) CreateProviderHandler(c *gin.Context) {
	logger := getLogger(c)

	var in provider.CreateProviderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		logger.Error("Invalid provider request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	p, err := h.ProviderSvc.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, logger, err, "Failed to create provider")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Provider created successfully", "provider": p})
}

func (h *HandlerBundle) GetProvidersHandler(c *gin.Context) {
	logger := getLogger(c)

	providers, err := h.ProviderSvc.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to get providers")
		return
	}
	c.JSON(http.StatusOK, providers)
}
