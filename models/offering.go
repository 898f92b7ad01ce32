package models

import "time"

// Offering statuses share the request status enum.
const (
	OfferingStatusPending  = "pending"
	OfferingStatusAccepted = "accepted"
	OfferingStatusRejected = "rejected"
)

// ValidOfferingStatus reports whether s is a known offering status.
func ValidOfferingStatus(s string) bool {
	switch s {
	case OfferingStatusPending, OfferingStatusAccepted, OfferingStatusRejected:
		return true
	}
	return false
}

// Offering is a service posted by a provider. ProviderID references the
// provider's User record.
type Offering struct {
	ID          string    `bson:"id" json:"id"`
	ProviderID  string    `bson:"providerId" json:"providerId"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Price       float64   `bson:"price" json:"price"`
	Location    string    `bson:"location" json:"location"`
	ServiceType string    `bson:"serviceType" json:"serviceType"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}
