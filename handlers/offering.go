package handlers

import (
	"net/http"

	"aamer/services/offering"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *HandlerBundle) CreateOfferingHandler(c *gin.Context) {
	logger := getLogger(c)

	var in offering.CreateOfferingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		logger.Error("Invalid offering request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	off, err := h.OfferingSvc.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, logger, err, "Failed to create offering")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Offering created successfully", "offering": off})
}

func (h *HandlerBundle) GetOfferingsHandler(c *gin.Context) {
	logger := getLogger(c)

	offerings, err := h.OfferingSvc.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to fetch offerings")
		return
	}
	c.JSON(http.StatusOK, offerings)
}

func (h *HandlerBundle) GetOfferingHandler(c *gin.Context) {
	logger := getLogger(c)

	off, err := h.OfferingSvc.GetByID(c.Request.Context(), c.Param("offerId"))
	if err != nil {
		respondError(c, logger, err, "Failed to fetch offering")
		return
	}
	c.JSON(http.StatusOK, off)
}

func (h *HandlerBundle) GetOfferingsByStatusHandler(c *gin.Context) {
	logger := getLogger(c)

	offerings, err := h.OfferingSvc.GetByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		respondError(c, logger, err, "Failed to fetch offerings")
		return
	}
	c.JSON(http.StatusOK, offerings)
}

func (h *HandlerBundle) GetOfferingsByProviderHandler(c *gin.Context) {
	logger := getLogger(c)

	offerings, err := h.OfferingSvc.GetByProviderAndStatus(c.Request.Context(), c.Param("userId"), c.Param("status"))
	if err != nil {
		respondError(c, logger, err, "Failed to fetch offerings")
		return
	}
	c.JSON(http.StatusOK, offerings)
}

func (h *HandlerBundle) UpdateOfferingStatusHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid status update", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	off, err := h.OfferingSvc.UpdateStatus(c.Request.Context(), c.Param("offerId"), req.Status)
	if err != nil {
		respondError(c, logger, err, "Failed to update offering status")
		return
	}
	c.JSON(http.StatusOK, off)
}
