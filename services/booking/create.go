package booking

import (
	"context"
	"fmt"

	"aamer/models"
	"aamer/utils"
)

// Create dispatches to one of the three creation variants. Which one runs
// depends on the booking type and on whether a full request draft was sent
// along; the branch order matters because a request draft wins over an
// existing ServiceID.
func (s *DefaultBookingService) Create(ctx context.Context, in CreateBookingInput) (*CreateBookingResult, error) {
	if in.UserID == "" || in.BookingType == "" {
		return nil, utils.NewValidationError("User ID and booking type are required.")
	}

	hasDraft := in.Title != "" && in.Description != "" && in.Price != 0 &&
		in.Location != "" && in.ServiceType != ""

	if in.BookingType == models.BookingTypeRequest && hasDraft {
		return s.createFromNewRequest(ctx, in)
	}
	if in.ServiceID == "" {
		return nil, utils.NewValidationError("Service ID is required for existing requests.")
	}

	switch in.BookingType {
	case models.BookingTypeRequest:
		return s.createFromExistingRequest(ctx, in.ServiceID, in.UserID)
	case models.BookingTypeOffer:
		return s.createFromOffer(ctx, in.ServiceID, in.UserID)
	}

	// Unknown booking type: stored as-is with no participants resolved.
	booking, err := s.finalize(ctx, "", "", in.ServiceID, in.BookingType)
	if err != nil {
		return nil, err
	}
	return &CreateBookingResult{Booking: booking, RequestID: in.ServiceID}, nil
}

// createFromNewRequest creates the Request inline and books it in one go.
// The caller ends up on both sides of the booking: they own the fresh
// request, and they are recorded as the provider applying to it.
func (s *DefaultBookingService) createFromNewRequest(ctx context.Context, in CreateBookingInput) (*CreateBookingResult, error) {
	req := &models.Request{
		UserID:      in.UserID,
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Location:    in.Location,
		ServiceType: in.ServiceType,
	}
	if err := s.Requests.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to create request for booking: %w", err)
	}

	booking, err := s.finalize(ctx, req.UserID, in.UserID, req.ID, models.BookingTypeRequest)
	if err != nil {
		return nil, err
	}
	if err := s.notifyRequestBooked(ctx, req, req.ID, req.UserID, in.UserID); err != nil {
		return nil, err
	}
	return &CreateBookingResult{Booking: booking, RequestID: req.ID}, nil
}

// createFromExistingRequest books an existing request: the caller is the
// provider applying, the request owner is the customer. A dangling ServiceID
// leaves both participants unresolved rather than failing.
func (s *DefaultBookingService) createFromExistingRequest(ctx context.Context, serviceID, userID string) (*CreateBookingResult, error) {
	req, err := s.Requests.GetByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	customerID, providerID := "", ""
	if req != nil {
		customerID = req.UserID
		providerID = userID
	}

	booking, err := s.finalize(ctx, customerID, providerID, serviceID, models.BookingTypeRequest)
	if err != nil {
		return nil, err
	}
	if err := s.notifyRequestBooked(ctx, req, serviceID, customerID, providerID); err != nil {
		return nil, err
	}
	return &CreateBookingResult{Booking: booking, RequestID: serviceID}, nil
}

// createFromOffer books a provider's offering: the caller is the customer,
// the offering's owner is the provider.
func (s *DefaultBookingService) createFromOffer(ctx context.Context, serviceID, userID string) (*CreateBookingResult, error) {
	offer, err := s.Offerings.GetByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, utils.NewNotFoundError("Offer not found.")
	}

	booking, err := s.finalize(ctx, userID, offer.ProviderID, serviceID, models.BookingTypeOffer)
	if err != nil {
		return nil, err
	}

	customerName := "A customer"
	if user, err := s.Users.GetByID(ctx, userID); err == nil && user != nil && user.Email != "" {
		customerName = user.Email
	}
	title := offer.Title
	if title == "" {
		title = "Service Offer"
	}
	msg := fmt.Sprintf("%s has booked your service: %q", customerName, title)
	if _, err := s.NotifSvc.Notify(ctx, offer.ProviderID, models.NotificationTypeBooking, serviceID, msg); err != nil {
		return nil, err
	}
	return &CreateBookingResult{Booking: booking, RequestID: serviceID}, nil
}

// finalize runs the duplicate guard and inserts the booking. The guard is a
// read-then-write check; two simultaneous identical creations can both pass
// it (see the repository notes).
func (s *DefaultBookingService) finalize(ctx context.Context, customerID, providerID, serviceID, bookingType string) (*models.Booking, error) {
	existing, err := s.Bookings.FindDuplicate(ctx, customerID, providerID, serviceID, bookingType)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.NewConflictError("Booking already exists.")
	}

	booking := &models.Booking{
		ServiceID:   serviceID,
		UserID:      customerID,
		ProviderID:  providerID,
		BookingType: bookingType,
	}
	if err := s.Bookings.Create(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// notifyRequestBooked tells the request owner a provider has applied. Only
// the customer side is notified.
func (s *DefaultBookingService) notifyRequestBooked(ctx context.Context, req *models.Request, requestID, customerID, providerID string) error {
	providerName := "A provider"
	if provider, err := s.Providers.GetByUserID(ctx, providerID); err == nil && provider != nil {
		providerName = provider.DisplayName()
	}

	title := "Service Request"
	if req != nil && req.Title != "" {
		title = req.Title
	}

	msg := fmt.Sprintf("%s has applied for your request: %q", providerName, title)
	_, err := s.NotifSvc.Notify(ctx, customerID, models.NotificationTypeBooking, requestID, msg)
	return err
}
