package booking

import (
	"context"

	"aamer/models"
	"aamer/utils"
)

// GetByServiceID returns every booking against one service, joined with the
// provider profiles, plus the service's title for the header.
func (s *DefaultBookingService) GetByServiceID(ctx context.Context, serviceID string) (*ServiceBookings, error) {
	if !utils.IsValidID(serviceID) {
		return nil, utils.NewValidationError("Invalid service ID format")
	}

	bookings, err := s.Bookings.GetByServiceID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, utils.NewNotFoundError("No bookings found")
	}

	var title string
	switch bookings[0].BookingType {
	case models.BookingTypeRequest:
		req, err := s.Requests.GetByID(ctx, serviceID)
		if err != nil {
			return nil, err
		}
		if req == nil {
			return nil, utils.NewNotFoundError("Request not found")
		}
		title = req.Title
	case models.BookingTypeOffer:
		offer, err := s.Offerings.GetByID(ctx, serviceID)
		if err != nil {
			return nil, err
		}
		if offer == nil {
			return nil, utils.NewNotFoundError("Offering not found")
		}
		title = offer.Title
	}

	result := &ServiceBookings{RequestTitle: title, Bookings: make([]BookingWithProvider, 0, len(bookings))}
	for _, b := range bookings {
		provider, err := s.providerByUserID(ctx, b.ProviderID)
		if err != nil {
			return nil, err
		}
		result.Bookings = append(result.Bookings, BookingWithProvider{Booking: b, Provider: provider})
	}
	return result, nil
}

func (s *DefaultBookingService) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	if !utils.IsValidID(bookingID) {
		return nil, utils.NewValidationError("Invalid booking ID format")
	}
	booking, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, utils.NewNotFoundError("Booking not found")
	}
	return booking, nil
}

func (s *DefaultBookingService) Delete(ctx context.Context, bookingID string) error {
	if !utils.IsValidID(bookingID) {
		return utils.NewValidationError("Invalid booking ID format")
	}
	deleted, err := s.Bookings.DeleteByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if !deleted {
		return utils.NewNotFoundError("Booking not found")
	}
	return nil
}

func (s *DefaultBookingService) GetAll(ctx context.Context) ([]models.Booking, error) {
	return s.Bookings.GetAll(ctx)
}

// GetUserBookings lists every booking the user participates in, on either
// side, each joined with the service it was made against.
func (s *DefaultBookingService) GetUserBookings(ctx context.Context, userID string) ([]BookingWithService, error) {
	if !utils.IsValidID(userID) {
		return nil, utils.NewValidationError("Invalid user ID format")
	}
	bookings, err := s.Bookings.GetByParticipant(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.withServiceDetails(ctx, bookings)
}

// GetProviderBookings lists a provider's bookings joined with their
// services.
func (s *DefaultBookingService) GetProviderBookings(ctx context.Context, providerID string) ([]BookingWithService, error) {
	bookings, err := s.Bookings.GetByProviderID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	return s.withServiceDetails(ctx, bookings)
}

func (s *DefaultBookingService) withServiceDetails(ctx context.Context, bookings []models.Booking) ([]BookingWithService, error) {
	out := make([]BookingWithService, 0, len(bookings))
	for _, b := range bookings {
		details, err := s.serviceDetails(ctx, b)
		if err != nil {
			return nil, err
		}
		out = append(out, BookingWithService{Booking: b, ServiceDetails: details})
	}
	return out, nil
}

func (s *DefaultBookingService) serviceDetails(ctx context.Context, b models.Booking) (interface{}, error) {
	if b.BookingType == models.BookingTypeOffer {
		offer, err := s.Offerings.GetByID(ctx, b.ServiceID)
		if err != nil {
			return nil, err
		}
		if offer == nil {
			return nil, nil
		}
		return offer, nil
	}
	req, err := s.Requests.GetByID(ctx, b.ServiceID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, nil
	}
	return req, nil
}

// GetAllCompleted lists completed bookings for the history view. The
// service join always goes through the requests collection, and the
// provider is resolved straight off the booking's ProviderID through the
// cache.
func (s *DefaultBookingService) GetAllCompleted(ctx context.Context) ([]CompletedBooking, error) {
	bookings, err := s.Bookings.GetCompleted(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]CompletedBooking, 0, len(bookings))
	for _, b := range bookings {
		entry := CompletedBooking{Booking: b}

		service, err := s.Requests.GetByID(ctx, b.ServiceID)
		if err != nil {
			return nil, err
		}
		if service != nil {
			entry.ServiceType = service.Title
			if entry.ServiceType == "" {
				entry.ServiceType = "Service Request"
			}
			entry.Location = service.Location
			entry.Price = service.Price
		}

		provider, err := s.providerByUserID(ctx, b.ProviderID)
		if err != nil {
			return nil, err
		}
		entry.Provider = provider

		out = append(out, entry)
	}
	return out, nil
}
