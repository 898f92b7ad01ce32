package handlers

import (
	"aamer/services/auth"
	"aamer/services/booking"
	"aamer/services/chat"
	"aamer/services/notification"
	"aamer/services/offering"
	"aamer/services/payment"
	"aamer/services/provider"
	"aamer/services/request"
	"aamer/services/review"
)

// HandlerBundle groups every endpoint handler's dependencies into one
// struct so main.go wires the services once and routes see a single value.
type HandlerBundle struct {
	AuthSvc     auth.AuthService
	RequestSvc  request.RequestService
	OfferingSvc offering.OfferingService
	ProviderSvc provider.ProviderService
	BookingSvc  booking.BookingService
	PaymentSvc  payment.PaymentService
	ReviewSvc   review.ReviewService
	NotifSvc    notification.NotificationService
	ChatSvc     chat.ChatService
}
