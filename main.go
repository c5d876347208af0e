// File: consultly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"consultly/config"
	"consultly/cron"
	"consultly/database"
	consultationRepoPkg "consultly/database/repository/consultation"
	providerRepoPkg "consultly/database/repository/provider"
	seekerRepoPkg "consultly/database/repository/seeker"
	slotRepoPkg "consultly/database/repository/slot"
	"consultly/handlers"
	"consultly/middleware"
	"consultly/routes"
	"consultly/services/availability"
	"consultly/services/consultation"
	"consultly/services/notification"
	"consultly/services/provider"
	"consultly/services/tasks"
	"consultly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	provRepo := providerRepoPkg.NewMongoProviderRepo()
	seekerRepo := seekerRepoPkg.NewMongoSeekerRepo()
	slotRepo := slotRepoPkg.NewMongoSlotRepo()
	consultationRepo := consultationRepoPkg.NewMongoConsultationRepo()

	if err := provRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure provider indexes: %v", err)
	}
	if err := slotRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure slot indexes: %v", err)
	}
	if err := consultationRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure consultation indexes: %v", err)
	}

	// Advisory lock client, on its own Redis DB.
	lockClient := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisLockDB,
	})
	locker := utils.NewRedisLocker(lockClient)

	// Reminder queue.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueue,
	})
	defer asynqClient.Close()
	reminderScheduler := &tasks.AsynqReminderScheduler{
		Client: asynqClient,
		Lead:   time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute,
	}

	// services.
	availabilityService := &availability.DefaultAvailabilityService{
		Repo:   slotRepo,
		Locker: locker,
	}
	consultationService := &consultation.DefaultConsultationService{
		Repo:      consultationRepo,
		Providers: provRepo,
		Seekers:   seekerRepo,
		Locker:    locker,
		Reminders: reminderScheduler,
	}
	providerService := &provider.DefaultProviderService{
		Repo: provRepo,
	}
	notificationService := &notification.LogNotificationService{}

	// background reminder worker.
	cron.InitReminderWorker(notificationService)
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// handlers and routes.
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	consultationHandler := handlers.NewConsultationHandler(consultationService)
	providerHandler := handlers.NewProviderHandler(providerService)
	routes.SetupRoutes(router, availabilityHandler, consultationHandler, providerHandler)

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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
