package payment

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	bookingRepo "aamer/database/repository/booking"
	offeringRepo "aamer/database/repository/offering"
	paymentRepo "aamer/database/repository/payment"
	requestRepo "aamer/database/repository/request"
	"aamer/models"
	"aamer/services/notification"
	"aamer/utils"

	"go.uber.org/zap"
)

// CreatePaymentInput carries a payment submission. UserID identifies who is
// paying and is checked against the booking's participants.
type CreatePaymentInput struct {
	BookingID     string  `json:"bookingId"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
	TransactionID string  `json:"transactionId"`
	UserID        string  `json:"userId"`
}

// CreatePaymentResult pairs the stored payment with the booking it
// completed.
type CreatePaymentResult struct {
	Payment *models.Payment `json:"payment"`
	Booking *models.Booking `json:"booking"`
}

// PaymentService records payments and drives the completed transition.
type PaymentService interface {
	Create(ctx context.Context, in CreatePaymentInput) (*CreatePaymentResult, error)
}

// DefaultPaymentService is the production implementation.
type DefaultPaymentService struct {
	Payments  paymentRepo.PaymentRepository
	Bookings  bookingRepo.BookingRepository
	Requests  requestRepo.RequestRepository
	Offerings offeringRepo.OfferingRepository
	NotifSvc  notification.NotificationService
}

// Create validates and authorizes the payment, records it, and marks the
// booking completed. Notifications afterwards are best effort: the payment
// stands even if they fail.
func (s *DefaultPaymentService) Create(ctx context.Context, in CreatePaymentInput) (*CreatePaymentResult, error) {
	if in.BookingID == "" {
		return nil, utils.NewValidationError("Booking ID is required.")
	}
	if in.PaymentMethod == "" {
		return nil, utils.NewValidationError("Payment method is required.")
	}
	if in.UserID == "" {
		return nil, utils.NewValidationError("User ID is required.")
	}
	if !utils.IsValidID(in.BookingID) {
		return nil, utils.NewValidationError("Invalid booking ID format.")
	}
	if !utils.IsValidID(in.UserID) {
		return nil, utils.NewValidationError("Invalid user ID format.")
	}
	if !models.ValidPaymentMethod(in.PaymentMethod) {
		return nil, utils.NewValidationError("Invalid payment method.", models.ValidPaymentMethods...)
	}

	booking, err := s.Bookings.GetByID(ctx, in.BookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, utils.NewNotFoundError("Booking not found.")
	}

	authorized, err := s.isAuthorized(ctx, booking, in.UserID)
	if err != nil {
		return nil, err
	}
	if !authorized {
		return nil, utils.NewForbiddenError("You are not authorized to make this payment.")
	}

	payment := &models.Payment{
		BookingID:     in.BookingID,
		Amount:        in.Amount,
		PaymentMethod: in.PaymentMethod,
		TransactionID: in.TransactionID,
	}
	if err := s.Payments.Create(ctx, payment); err != nil {
		if errors.Is(err, paymentRepo.ErrDuplicateTransaction) {
			return nil, utils.NewConflictError("Duplicate transaction ID.")
		}
		return nil, err
	}

	if err := s.Bookings.UpdateStatus(ctx, in.BookingID, models.BookingStatusCompleted); err != nil {
		return nil, err
	}
	booking.Status = models.BookingStatusCompleted

	s.notifyCompleted(ctx, booking, in.Amount)

	return &CreatePaymentResult{Payment: payment, Booking: booking}, nil
}

// isAuthorized accepts the booking's customer, or the provider side of the
// service. For request bookings the provider is the request owner; for
// offer bookings the booking's own UserID doubles as the provider check, so
// the customer passes both ways.
func (s *DefaultPaymentService) isAuthorized(ctx context.Context, booking *models.Booking, userID string) (bool, error) {
	if booking.UserID == userID {
		return true, nil
	}
	if booking.BookingType == models.BookingTypeRequest {
		service, err := s.Requests.GetByID(ctx, booking.ServiceID)
		if err != nil {
			return false, err
		}
		if service != nil && service.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (s *DefaultPaymentService) notifyCompleted(ctx context.Context, booking *models.Booking, amount float64) {
	logger := utils.GetLogger()

	serviceTitle := "Unknown Service"
	if booking.BookingType == models.BookingTypeRequest {
		if req, err := s.Requests.GetByID(ctx, booking.ServiceID); err == nil && req != nil && req.Title != "" {
			serviceTitle = req.Title
		}
	} else {
		if offer, err := s.Offerings.GetByID(ctx, booking.ServiceID); err == nil && offer != nil && offer.Title != "" {
			serviceTitle = offer.Title
		}
	}

	providerMsg := fmt.Sprintf("Payment of SAR %s has been confirmed for %s",
		strconv.FormatFloat(amount, 'f', -1, 64), serviceTitle)
	if _, err := s.NotifSvc.Notify(ctx, booking.ProviderID, models.NotificationTypePayment, booking.ID, providerMsg); err != nil {
		logger.Error("Failed to notify provider of payment", zap.String("bookingId", booking.ID), zap.Error(err))
	}

	reviewMsg := "Your service has been completed! Please leave a review for your experience."
	if _, err := s.NotifSvc.Notify(ctx, booking.UserID, models.NotificationTypeReview, booking.ID, reviewMsg); err != nil {
		logger.Error("Failed to send review prompt", zap.String("bookingId", booking.ID), zap.Error(err))
	}
}
