package booking

import (
	"context"

	"aamer/models"
	"aamer/utils"

	"go.uber.org/zap"
)

// ConfirmRequest accepts a provider's application to a request. Each write
// is a separate step: the booking flips first, then the request, then the
// provider is notified. A failure partway leaves the earlier writes in
// place.
func (s *DefaultBookingService) ConfirmRequest(ctx context.Context, bookingID, providerID string) (*models.Booking, error) {
	if !utils.IsValidID(bookingID) || !utils.IsValidID(providerID) {
		return nil, utils.NewValidationError("Invalid booking or provider ID format")
	}

	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, utils.NewNotFoundError("Booking not found")
	}

	provider, err := s.Providers.GetByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, utils.NewNotFoundError("Provider not found")
	}

	if err := s.Bookings.UpdateStatus(ctx, bookingID, models.BookingStatusAccepted); err != nil {
		return nil, err
	}
	booking.Status = models.BookingStatusAccepted

	req, err := s.Requests.GetByID(ctx, booking.ServiceID)
	if err != nil {
		return nil, err
	}
	if req != nil {
		if err := s.Requests.UpdateStatus(ctx, req.ID, models.RequestStatusAccepted); err != nil {
			return nil, err
		}
	} else {
		// Bookings can outlive their request; the booking still confirms.
		utils.GetLogger().Warn("Confirmed booking has no backing request",
			zap.String("bookingId", bookingID), zap.String("serviceId", booking.ServiceID))
	}

	if _, err := s.NotifSvc.Notify(ctx, provider.UserID, models.NotificationTypeBooking, bookingID,
		"Your offer has been accepted"); err != nil {
		return nil, err
	}

	return booking, nil
}

// ConfirmOffering accepts a customer's booking of an offering. Both the
// booking and the offering flip to accepted, and the customer is notified.
func (s *DefaultBookingService) ConfirmOffering(ctx context.Context, bookingID string) (*models.Booking, error) {
	if !utils.IsValidID(bookingID) {
		return nil, utils.NewValidationError("Invalid booking format")
	}

	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, utils.NewNotFoundError("Booking not found")
	}

	offer, err := s.Offerings.GetByID(ctx, booking.ServiceID)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, utils.NewNotFoundError("Offering not found")
	}

	if err := s.Bookings.UpdateStatus(ctx, bookingID, models.BookingStatusAccepted); err != nil {
		return nil, err
	}
	booking.Status = models.BookingStatusAccepted

	if err := s.Offerings.UpdateStatus(ctx, offer.ID, models.OfferingStatusAccepted); err != nil {
		return nil, err
	}

	if _, err := s.NotifSvc.Notify(ctx, booking.UserID, models.NotificationTypeBooking, booking.ServiceID,
		"Your request to service has been accepted"); err != nil {
		return nil, err
	}

	return booking, nil
}
