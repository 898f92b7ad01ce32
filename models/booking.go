package models

import "time"

// Booking statuses.
const (
	BookingStatusPending   = "pending"
	BookingStatusAccepted  = "accepted"
	BookingStatusRejected  = "rejected"
	BookingStatusCompleted = "completed"
)

// Booking types. A "request" booking is a provider responding to a
// customer's request; an "offer" booking is a customer booking a provider's
// offering. The two invert which side UserID and ProviderID come from.
const (
	BookingTypeRequest = "request"
	BookingTypeOffer   = "offer"
)

// Booking is the pivot entity of the marketplace. ServiceID points at a
// Request or an Offering depending on BookingType. UserID is always the
// customer side, ProviderID always the provider side (both User IDs).
type Booking struct {
	ID          string    `bson:"id" json:"id"`
	ServiceID   string    `bson:"serviceId" json:"serviceId"`
	UserID      string    `bson:"userId" json:"userId"`
	ProviderID  string    `bson:"providerId" json:"providerId"`
	BookingType string    `bson:"bookingType" json:"bookingType"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}
