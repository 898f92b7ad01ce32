package models

import "time"

// Accepted payment methods.
var ValidPaymentMethods = []string{"credit_card", "debit_card", "paypal", "bank_transfer", "cash"}

// ValidPaymentMethod reports whether m is an accepted payment method.
func ValidPaymentMethod(m string) bool {
	for _, v := range ValidPaymentMethods {
		if v == m {
			return true
		}
	}
	return false
}

// Payment records a settled payment for a booking. TransactionID is unique
// when present; nothing ties a Payment uniquely to its Booking.
type Payment struct {
	ID            string    `bson:"id" json:"id"`
	BookingID     string    `bson:"bookingId" json:"bookingId"`
	Amount        float64   `bson:"amount" json:"amount"`
	PaymentMethod string    `bson:"paymentMethod" json:"paymentMethod"`
	TransactionID string    `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}
