package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aamer/config"
	"aamer/cron"
	"aamer/database"
	bookingRepoPkg "aamer/database/repository/booking"
	chatRepoPkg "aamer/database/repository/chat"
	notificationRepoPkg "aamer/database/repository/notification"
	offeringRepoPkg "aamer/database/repository/offering"
	paymentRepoPkg "aamer/database/repository/payment"
	providerRepoPkg "aamer/database/repository/provider"
	requestRepoPkg "aamer/database/repository/request"
	reviewRepoPkg "aamer/database/repository/review"
	userRepoPkg "aamer/database/repository/user"
	"aamer/handlers"
	"aamer/routes"
	"aamer/services/auth"
	"aamer/services/booking"
	"aamer/services/chat"
	"aamer/services/notification"
	"aamer/services/offering"
	"aamer/services/payment"
	"aamer/services/provider"
	"aamer/services/request"
	"aamer/services/review"
	"aamer/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	ensureIndexes(logger)
	utils.StartHealthMonitor([]*redis.Client{utils.CacheClient, utils.AuthCacheClient}, database.MongoClient)

	// Repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	providerRepo := providerRepoPkg.NewMongoProviderRepo()
	requestRepo := requestRepoPkg.NewMongoRequestRepo()
	offeringRepo := offeringRepoPkg.NewMongoOfferingRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()
	chatRepo := chatRepoPkg.NewMongoChatRepo()
	messageRepo := chatRepoPkg.NewMongoMessageRepo()

	// Services.
	notificationService := &notification.DefaultNotificationService{Repo: notificationRepo}
	authService := &auth.DefaultAuthService{Users: userRepo, Providers: providerRepo}
	requestService := &request.DefaultRequestService{Repo: requestRepo}
	offeringService := &offering.DefaultOfferingService{Repo: offeringRepo}
	providerService := &provider.DefaultProviderService{Repo: providerRepo}
	bookingService := &booking.DefaultBookingService{
		Bookings:  bookingRepo,
		Requests:  requestRepo,
		Offerings: offeringRepo,
		Providers: providerRepo,
		Users:     userRepo,
		NotifSvc:  notificationService,
	}
	paymentService := &payment.DefaultPaymentService{
		Payments:  paymentRepo,
		Bookings:  bookingRepo,
		Requests:  requestRepo,
		Offerings: offeringRepo,
		NotifSvc:  notificationService,
	}
	reviewService := &review.DefaultReviewService{
		Reviews:  reviewRepo,
		Bookings: bookingRepo,
		NotifSvc: notificationService,
	}
	chatService := &chat.DefaultChatService{
		Chats:    chatRepo,
		Messages: messageRepo,
		Users:    userRepo,
		NotifSvc: notificationService,
	}

	handlerBundle := &handlers.HandlerBundle{
		AuthSvc:     authService,
		RequestSvc:  requestService,
		OfferingSvc: offeringService,
		ProviderSvc: providerService,
		BookingSvc:  bookingService,
		PaymentSvc:  paymentService,
		ReviewSvc:   reviewService,
		NotifSvc:    notificationService,
		ChatSvc:     chatService,
	}

	router := gin.New()
	router.Use(gin.Recovery())
	routes.SetupRoutes(router, handlerBundle)

	// The cleanup worker needs Redis for its queue; a zero interval keeps
	// it off entirely.
	if interval := config.AppConfig.CleanupIntervalMin; interval > 0 {
		cron.InitCleanupWorker(chatService, time.Duration(interval)*time.Minute)
	}

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Info("Server starting", zap.String("port", config.AppConfig.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", zap.Error(err))
	}
	if err := database.MongoClient.Disconnect(ctx); err != nil {
		logger.Error("Failed to disconnect from MongoDB", zap.Error(err))
	}
	logger.Info("Server exited")
}

func ensureIndexes(logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"users", userRepoPkg.EnsureUserIndexes},
		{"bookings", bookingRepoPkg.EnsureBookingIndexes},
		{"payments", paymentRepoPkg.EnsurePaymentIndexes},
		{"notifications", notificationRepoPkg.EnsureNotificationIndexes},
	}
	for _, step := range steps {
		if err := step.fn(ctx); err != nil {
			logger.Warn("Failed to ensure indexes", zap.String("collection", step.name), zap.Error(err))
		}
	}
}
