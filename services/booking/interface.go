package booking

import (
	"context"

	bookingRepo "aamer/database/repository/booking"
	offeringRepo "aamer/database/repository/offering"
	providerRepo "aamer/database/repository/provider"
	requestRepo "aamer/database/repository/request"
	userRepo "aamer/database/repository/user"
	"aamer/models"
	"aamer/services/notification"
)

// CreateBookingInput carries a booking creation. The draft fields (Title
// through ServiceType) are only meaningful for request bookings: when all of
// them are present the request is created inline and ServiceID is ignored.
type CreateBookingInput struct {
	ServiceID   string  `json:"serviceId"`
	BookingType string  `json:"bookingType"`
	UserID      string  `json:"userId"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Location    string  `json:"location"`
	ServiceType string  `json:"serviceType"`
}

// CreateBookingResult pairs the stored booking with the ID of the service it
// points at (freshly created for inline-draft request bookings).
type CreateBookingResult struct {
	Booking   *models.Booking `json:"booking"`
	RequestID string          `json:"requestId"`
}

// BookingWithProvider is a booking joined with its provider's profile.
type BookingWithProvider struct {
	models.Booking
	Provider *models.Provider `json:"provider"`
}

// ServiceBookings lists every booking against one service, each joined with
// its provider profile.
type ServiceBookings struct {
	RequestTitle string                `json:"requestTitle"`
	Bookings     []BookingWithProvider `json:"bookings"`
}

// BookingWithService is a booking joined with the Request or Offering it was
// made against. ServiceDetails is nil when that record no longer exists.
type BookingWithService struct {
	models.Booking
	ServiceDetails interface{} `json:"serviceDetails"`
}

// CompletedBooking is a completed booking enriched for the history view.
// The flattened service fields are only set when the service record still
// exists; ServiceType carries the service title, which is what the history
// view displays.
type CompletedBooking struct {
	models.Booking
	ServiceType string           `json:"serviceType,omitempty"`
	Location    string           `json:"location,omitempty"`
	Price       float64          `json:"price,omitempty"`
	Provider    *models.Provider `json:"provider"`
}

// BookingService drives the booking lifecycle: creation in its three
// variants, the two confirmation paths, and the enriched read views.
type BookingService interface {
	Create(ctx context.Context, in CreateBookingInput) (*CreateBookingResult, error)
	ConfirmRequest(ctx context.Context, bookingID, providerID string) (*models.Booking, error)
	ConfirmOffering(ctx context.Context, bookingID string) (*models.Booking, error)

	GetByServiceID(ctx context.Context, serviceID string) (*ServiceBookings, error)
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
	Delete(ctx context.Context, bookingID string) error
	GetAll(ctx context.Context) ([]models.Booking, error)
	GetUserBookings(ctx context.Context, userID string) ([]BookingWithService, error)
	GetProviderBookings(ctx context.Context, providerID string) ([]BookingWithService, error)
	GetAllCompleted(ctx context.Context) ([]CompletedBooking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Bookings  bookingRepo.BookingRepository
	Requests  requestRepo.RequestRepository
	Offerings offeringRepo.OfferingRepository
	Providers providerRepo.ProviderRepository
	Users     userRepo.UserRepository
	NotifSvc  notification.NotificationService
}
