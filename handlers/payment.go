package handlers

import (
	"net/http"

	"aamer/models"
	"aamer/services/payment"
	"aamer/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreatePaymentHandler records a payment and reports the completed booking.
// The invalid-method response carries the accepted values alongside the
// error.
func (h *HandlerBundle) CreatePaymentHandler(c *gin.Context) {
	logger := getLogger(c)

	var in payment.CreatePaymentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		logger.Error("Invalid payment request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	result, err := h.PaymentSvc.Create(c.Request.Context(), in)
	if err != nil {
		if se, status, ok := utils.AsServiceError(err); ok && se.Message == "Invalid payment method." {
			c.JSON(status, gin.H{"error": se.Message, "validMethods": models.ValidPaymentMethods})
			return
		}
		respondError(c, logger, err, "Failed to create payment")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Payment created successfully and booking marked as completed",
		"payment": result.Payment,
		"booking": result.Booking,
	})
}
