package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"frontdesk/config"
	"frontdesk/cron"
	"frontdesk/database"
	"frontdesk/database/repository"
	"frontdesk/handlers"
	"frontdesk/middleware"
	"frontdesk/routes"
	"frontdesk/services/booking"
	"frontdesk/services/concierge"
	"frontdesk/services/device"
	ai "frontdesk/services/intelligence"
	"frontdesk/services/payment"
	"frontdesk/services/speech"
	"frontdesk/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	db, err := database.Connect(config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to database: %v", err)
	}

	contextCache := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisContextDB,
	})

	ctx := context.Background()

	// AI adapters.
	geminiClient, err := ai.NewGeminiClient(ctx, config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
	}
	defer geminiClient.Close()

	transcriber, err := speech.NewGoogleTranscriber(ctx,
		config.AppConfig.GoogleServiceAccountFile,
		config.AppConfig.SpeechLanguage,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize speech client: %v", err)
	}
	defer transcriber.Close()

	synthesizer, err := speech.NewGoogleSynthesizer(ctx,
		config.AppConfig.GoogleServiceAccountFile,
		config.AppConfig.SpeechLanguage,
		config.AppConfig.AudioDir,
		config.AppConfig.PublicBaseURL,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize text-to-speech client: %v", err)
	}
	defer synthesizer.Close()

	stripe.Key = config.AppConfig.StripeKey

	// Repositories.
	deviceRepo := repository.NewGormDeviceRepo(db)
	bookingRepo := repository.NewGormBookingRepo(db)
	roomRepo := repository.NewGormRoomRepo(db)

	// Services.
	directory := device.NewDefaultDirectory(deviceRepo, logger)
	bookingService := booking.NewDefaultBookingService(bookingRepo, logger)
	dispatcher := concierge.NewDefaultDispatcher(bookingService, logger)
	classifier := ai.NewGeminiClassifier(geminiClient, config.AppConfig.DefaultHotelName)
	extractor := ai.NewGeminiExtractor(geminiClient)
	processor := payment.NewStripeProcessor(logger)
	ctxStore := ai.NewRedisContextStore(contextCache, 30*time.Minute)

	// Handlers.
	voiceHandler := handlers.NewVoiceHandler(
		directory,
		transcriber,
		classifier,
		dispatcher,
		synthesizer,
		ctxStore,
		config.AppConfig.DefaultHotelName,
		logger,
	)
	identityHandler := handlers.NewIdentityHandler(directory, extractor, bookingRepo, logger)
	paymentHandler := handlers.NewPaymentHandler(directory, processor, bookingRepo, logger)
	roomHandler := handlers.NewRoomHandler(roomRepo, logger)

	handlerBundle := &handlers.HandlerBundle{
		ProcessVoice:      voiceHandler.ProcessVoice,
		ScanIdentity:      identityHandler.ScanIdentity,
		ProcessPayment:    paymentHandler.ProcessPayment,
		GetAvailableRooms: roomHandler.GetAvailableRooms,
	}

	// Background pruning of synthesized audio and orphaned uploads.
	cron.InitAudioPruneWorker(
		config.AppConfig.AudioDir,
		time.Duration(config.AppConfig.AudioRetentionHours)*time.Hour,
		logger,
	)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	routes.RegisterRoutes(router, handlerBundle, config.AppConfig.AudioDir)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
