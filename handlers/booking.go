package handlers

import (
	"net/http"

	"aamer/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *HandlerBundle) CreateBookingHandler(c *gin.Context) {
	logger := getLogger(c)

	var in booking.CreateBookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		logger.Error("Invalid booking request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	result, err := h.BookingSvc.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, logger, err, "Failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Booking created successfully",
		"booking":   result.Booking,
		"requestId": result.RequestID,
	})
}

func (h *HandlerBundle) GetBookingByServiceIDHandler(c *gin.Context) {
	logger := getLogger(c)

	result, err := h.BookingSvc.GetByServiceID(c.Request.Context(), c.Param("serviceId"))
	if err != nil {
		respondError(c, logger, err, "Failed to get booking")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *HandlerBundle) ConfirmBookingOfferingHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		BookingID string `json:"bookingId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid confirmation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	confirmed, err := h.BookingSvc.ConfirmOffering(c.Request.Context(), req.BookingID)
	if err != nil {
		respondError(c, logger, err, "Failed to confirm booking")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking confirmed successfully", "confirmedBooking": confirmed})
}

func (h *HandlerBundle) ConfirmBookingRequestHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		BookingID  string `json:"bookingId"`
		ProviderID string `json:"providerId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid confirmation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	confirmed, err := h.BookingSvc.ConfirmRequest(c.Request.Context(), req.BookingID, req.ProviderID)
	if err != nil {
		respondError(c, logger, err, "Failed to confirm booking")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking confirmed successfully", "confirmedBooking": confirmed})
}

func (h *HandlerBundle) GetBookingHandler(c *gin.Context) {
	logger := getLogger(c)

	b, err := h.BookingSvc.GetByID(c.Request.Context(), c.Param("bookingId"))
	if err != nil {
		respondError(c, logger, err, "Failed to get booking")
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *HandlerBundle) DeleteBookingHandler(c *gin.Context) {
	logger := getLogger(c)

	if err := h.BookingSvc.Delete(c.Request.Context(), c.Param("bookingId")); err != nil {
		respondError(c, logger, err, "Failed to delete booking")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}

func (h *HandlerBundle) GetAllBookingsHandler(c *gin.Context) {
	logger := getLogger(c)

	bookings, err := h.BookingSvc.GetAll(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to get bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *HandlerBundle) GetUserBookingsHandler(c *gin.Context) {
	logger := getLogger(c)

	bookings, err := h.BookingSvc.GetUserBookings(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, logger, err, "Failed to get user bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *HandlerBundle) GetProviderBookingsHandler(c *gin.Context) {
	logger := getLogger(c)

	bookings, err := h.BookingSvc.GetProviderBookings(c.Request.Context(), c.Param("providerId"))
	if err != nil {
		logger.Error("Error fetching provider bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching provider bookings", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *HandlerBundle) GetCompletedBookingsHandler(c *gin.Context) {
	logger := getLogger(c)

	bookings, err := h.BookingSvc.GetAllCompleted(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to get completed bookings")
		return
	}
	c.JSON(http.StatusOK, bookings)
}
