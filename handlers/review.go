package handlers

import (
	"net/http"

	"aamer/services/review"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateReviewHandler records a review. The reviewer is whoever the auth
// middleware put in the context, never the request body.
func (h *HandlerBundle) CreateReviewHandler(c *gin.Context) {
	logger := getLogger(c)

	userID, exists := c.Get("userID")
	if !exists {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req struct {
		BookingID string `json:"bookingId"`
		Rating    int    `json:"rating"`
		Comment   string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid review request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	rev, err := h.ReviewSvc.Create(c.Request.Context(), review.CreateReviewInput{
		BookingID: req.BookingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		UserID:    userID.(string),
	})
	if err != nil {
		respondError(c, logger, err, "Failed to create review")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Review created successfully", "review": rev})
}

func (h *HandlerBundle) GetProviderReviewsHandler(c *gin.Context) {
	logger := getLogger(c)

	reviews, err := h.ReviewSvc.GetByProvider(c.Request.Context(), c.Param("providerId"))
	if err != nil {
		respondError(c, logger, err, "Failed to fetch reviews")
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *HandlerBundle) GetUserReviewsHandler(c *gin.Context) {
	logger := getLogger(c)

	reviews, err := h.ReviewSvc.GetByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, logger, err, "Failed to fetch reviews")
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func (h *HandlerBundle) GetBookingReviewHandler(c *gin.Context) {
	logger := getLogger(c)

	rev, err := h.ReviewSvc.GetByBooking(c.Request.Context(), c.Param("bookingId"))
	if err != nil {
		respondError(c, logger, err, "Failed to fetch review")
		return
	}
	c.JSON(http.StatusOK, rev)
}
