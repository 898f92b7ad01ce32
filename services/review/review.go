package review

import (
	"context"
	"fmt"

	bookingRepo "aamer/database/repository/booking"
	reviewRepo "aamer/database/repository/review"
	"aamer/models"
	"aamer/services/notification"
	"aamer/utils"

	"go.uber.org/zap"
)

// CreateReviewInput carries a review submission. UserID comes from the
// authenticated token, never the request body.
type CreateReviewInput struct {
	BookingID string
	Rating    int
	Comment   string
	UserID    string
}

// ReviewService records reviews of completed bookings.
type ReviewService interface {
	Create(ctx context.Context, in CreateReviewInput) (*models.Review, error)
	GetByProvider(ctx context.Context, providerID string) ([]models.Review, error)
	GetByUser(ctx context.Context, userID string) ([]models.Review, error)
	GetByBooking(ctx context.Context, bookingID string) (*models.Review, error)
}

// DefaultReviewService is the production implementation.
type DefaultReviewService struct {
	Reviews  reviewRepo.ReviewRepository
	Bookings bookingRepo.BookingRepository
	NotifSvc notification.NotificationService
}

// Create validates the submission against the booking and stores the
// review. Only the booking's customer may review, only once, and only after
// completion. The provider notification afterwards is best effort.
func (s *DefaultReviewService) Create(ctx context.Context, in CreateReviewInput) (*models.Review, error) {
	if in.BookingID == "" || in.Rating == 0 || in.Comment == "" {
		return nil, utils.NewValidationError("All fields are required.")
	}
	if !utils.IsValidID(in.BookingID) {
		return nil, utils.NewValidationError("Invalid booking ID format.")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return nil, utils.NewValidationError("Rating must be between 1 and 5.")
	}

	booking, err := s.Bookings.GetByID(ctx, in.BookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, utils.NewNotFoundError("Booking not found.")
	}
	if booking.Status != models.BookingStatusCompleted {
		return nil, utils.NewValidationError("Can only review completed bookings.")
	}
	if booking.UserID != in.UserID {
		return nil, utils.NewForbiddenError("You can only review your own bookings.")
	}

	existing, err := s.Reviews.GetByBookingID(ctx, in.BookingID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.NewConflictError("You have already reviewed this booking.")
	}

	// Bookings without a resolved provider fall back to the service ID.
	providerID := booking.ProviderID
	if providerID == "" {
		providerID = booking.ServiceID
	}

	review := &models.Review{
		BookingID:  in.BookingID,
		UserID:     in.UserID,
		ProviderID: providerID,
		Rating:     in.Rating,
		Comment:    in.Comment,
	}
	if err := s.Reviews.Create(ctx, review); err != nil {
		return nil, err
	}

	msg := fmt.Sprintf("You have received a new %d-star review for booking #%s", in.Rating, in.BookingID)
	if _, err := s.NotifSvc.Notify(ctx, providerID, models.NotificationTypeReview, in.BookingID, msg); err != nil {
		utils.GetLogger().Error("Failed to notify provider of review",
			zap.String("bookingId", in.BookingID), zap.Error(err))
	}

	return review, nil
}

func (s *DefaultReviewService) GetByProvider(ctx context.Context, providerID string) ([]models.Review, error) {
	if !utils.IsValidID(providerID) {
		return nil, utils.NewValidationError("Invalid provider ID format.")
	}
	return s.Reviews.GetByProviderID(ctx, providerID)
}

func (s *DefaultReviewService) GetByUser(ctx context.Context, userID string) ([]models.Review, error) {
	if !utils.IsValidID(userID) {
		return nil, utils.NewValidationError("Invalid user ID format.")
	}
	return s.Reviews.GetByUserID(ctx, userID)
}

func (s *DefaultReviewService) GetByBooking(ctx context.Context, bookingID string) (*models.Review, error) {
	if !utils.IsValidID(bookingID) {
		return nil, utils.NewValidationError("Invalid booking ID format.")
	}
	review, err := s.Reviews.GetByBookingID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, utils.NewNotFoundError("Review not found.")
	}
	return review, nil
}
