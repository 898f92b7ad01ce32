package routes

import (
	"aamer/handlers"
	"aamer/middleware"
	"aamer/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes wires every endpoint group onto the router. The review
// creation and the notification, chat and message groups require a valid
// token; everything else is open, matching the original API surface.
func SetupRoutes(router *gin.Engine, h *handlers.HandlerBundle) {
	router.Use(cors.Default())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(utils.ErrorHandler())

	router.GET("/health", handlers.HealthHandler)

	auth := router.Group("/api/auth")
	{
		auth.POST("/signup", h.SignupHandler)
		auth.POST("/login", h.LoginHandler)
		auth.GET("/users", h.GetUsersHandler)
	}

	requests := router.Group("/api/requests")
	{
		requests.POST("/post-request", h.PostRequestHandler)
		requests.GET("/get-requests", h.GetRequestsHandler)
		requests.GET("/get-user-requests/:userId", h.GetUserRequestsHandler)
		requests.PUT("/update-request-status/:requestId", h.UpdateRequestStatusHandler)
		requests.GET("/get-request/:requestId", h.GetRequestHandler)
	}

	offerings := router.Group("/api/offering")
	{
		offerings.POST("/add-offer", h.CreateOfferingHandler)
		offerings.GET("/get-offers", h.GetOfferingsHandler)
		offerings.GET("/get-offer/:offerId", h.GetOfferingHandler)
		offerings.GET("/get-offers-by-status/:status", h.GetOfferingsByStatusHandler)
		offerings.GET("/get-offers-by-provider/:userId/:status", h.GetOfferingsByProviderHandler)
		offerings.PATCH("/update-status/:offerId", h.UpdateOfferingStatusHandler)
	}

	providers := router.Group("/api/provider")
	{
		providers.POST("", h.CreateProviderHandler)
		providers.GET("", h.GetProvidersHandler)
	}

	bookings := router.Group("/api/booking")
	{
		bookings.POST("/add-booking", h.CreateBookingHandler)
		bookings.GET("/get-booking/:serviceId", h.GetBookingByServiceIDHandler)
		bookings.POST("/confirm-booking", h.ConfirmBookingRequestHandler)
		bookings.POST("/confirm-booking-offering", h.ConfirmBookingOfferingHandler)
		bookings.GET("/get-booking-id/:bookingId", h.GetBookingHandler)
		bookings.DELETE("/delete-booking/:bookingId", h.DeleteBookingHandler)
		bookings.GET("/get-all-bookings", h.GetAllBookingsHandler)
		bookings.GET("/get-user-bookings/:userId", h.GetUserBookingsHandler)
		bookings.GET("/get-provider-bookings/:providerId", h.GetProviderBookingsHandler)
		bookings.GET("/all-completed-bookings", h.GetCompletedBookingsHandler)
	}

	router.POST("/api/payment", h.CreatePaymentHandler)

	reviews := router.Group("/api/reviews")
	{
		reviews.POST("", middleware.JWTAuthMiddleware(), h.CreateReviewHandler)
		reviews.GET("/provider/:providerId", h.GetProviderReviewsHandler)
		reviews.GET("/user/:userId", h.GetUserReviewsHandler)
		reviews.GET("/booking/:bookingId", h.GetBookingReviewHandler)
	}

	notifications := router.Group("/api/notifications", middleware.JWTAuthMiddleware())
	{
		notifications.GET("/get-notifications/:userId", h.GetNotificationsHandler)
		notifications.GET("/get-latest-notifications/:userId", h.GetLatestNotificationsHandler)
		notifications.PUT("/mark-notification-read/:notificationId", h.MarkNotificationReadHandler)
		notifications.PUT("/mark-notifications-read/:userId", h.MarkNotificationsReadHandler)
		notifications.DELETE("/clear-notifications/:userId", h.ClearNotificationsHandler)
	}

	chats := router.Group("/api/chat", middleware.JWTAuthMiddleware())
	{
		chats.POST("/initiate-chat", h.InitiateChatHandler)
		chats.GET("/get-chats/:userId/:userType", h.GetChatsHandler)
		chats.DELETE("/cleanup-old-messages", h.CleanupOldMessagesHandler)
	}

	messages := router.Group("/api/message", middleware.JWTAuthMiddleware())
	{
		messages.POST("/send-message", h.SendMessageHandler)
		messages.GET("/get-messages/:chatId", h.GetMessagesHandler)
	}
}
