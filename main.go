// File: lenshub/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lenshub/clients/studiosync"
	"lenshub/config"
	"lenshub/cron"
	"lenshub/database"
	bookingRepo "lenshub/database/repository/booking"
	catalogRepo "lenshub/database/repository/catalog"
	photographerRepo "lenshub/database/repository/photographer"
	userRepoPkg "lenshub/database/repository/user"
	"lenshub/handlers"
	"lenshub/middleware"
	"lenshub/models"
	"lenshub/routes"
	"lenshub/services/booking"
	"lenshub/services/catalog"
	"lenshub/services/photographer"
	"lenshub/services/session"
	"lenshub/services/support"
	"lenshub/services/tasks"
	"lenshub/services/user"
	"lenshub/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	photRepo := photographerRepo.NewMongoPhotographerRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	bookRepo := bookingRepo.NewMongoBookingRepo()
	addonRepo := catalogRepo.NewMongoAddOnRepo()
	packageRepo := catalogRepo.NewMongoPackageRepo()

	// session store and services.
	sessionStore := session.NewRedisStore(utils.GetAuthCacheClient())

	userService := &user.DefaultUserService{
		Repo:     userRepo,
		Sessions: sessionStore,
	}
	photographerService := &photographer.DefaultPhotographerService{
		Repo: photRepo,
	}

	var paymentHandler booking.PaymentHandler
	if config.AppConfig.StripeKey != "" {
		paymentHandler = booking.NewStripePaymentHandler("", logger)
	}

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer asynqClient.Close()

	bookingService := &booking.DefaultSessionService{
		Cache:         utils.GetBookingCacheClient(),
		Photographers: photRepo,
		Addons:        addonRepo,
		Bookings:      bookRepo,
		Payments:      paymentHandler,
		Reminders:     &tasks.AsynqReminderScheduler{Client: asynqClient},
		Logger:        logger,
	}

	// Upstream catalog mirrors.
	syncClient := studiosync.NewClient(
		config.AppConfig.StudioSyncBaseURL,
		config.AppConfig.StudioSyncToken,
		logger,
	)
	syncClient.OnUnauthorized = func() {
		logger.Warn("studio sync credentials rejected; mirrored catalogs will go stale")
	}

	categoryColl := catalog.NewSyncedCollection[models.Category](studiosync.CategorySource{Client: syncClient})
	couponColl := catalog.NewSyncedCollection[models.Coupon](studiosync.CouponSource{Client: syncClient})
	giftColl := catalog.NewSyncedCollection[models.Gift](studiosync.GiftSource{Client: syncClient})

	if config.AppConfig.StudioSyncBaseURL != "" {
		warmCtx, warmCancel := context.WithTimeout(context.Background(), 15*time.Second)
		if err := categoryColl.Refresh(warmCtx); err != nil {
			logger.Sugar().Warnf("main: initial category sync failed: %v", err)
		}
		if err := couponColl.Refresh(warmCtx); err != nil {
			logger.Sugar().Warnf("main: initial coupon sync failed: %v", err)
		}
		if err := giftColl.Refresh(warmCtx); err != nil {
			logger.Sugar().Warnf("main: initial gift sync failed: %v", err)
		}
		warmCancel()
	}

	ticketService := support.NewTicketService()

	// handlers.
	h := &routes.Handlers{
		Sessions:      sessionStore,
		Users:         handlers.NewUserHandler(userService),
		Photographers: handlers.NewPhotographerHandler(photographerService),
		Bookings:      handlers.NewBookingHandler(bookingService, addonRepo, bookRepo, logger),
		AddOns:        handlers.NewAddOnHandler(addonRepo),
		Packages:      handlers.NewPackageHandler(packageRepo),
		Categories:    &handlers.SyncedHandler[models.Category]{Name: "categories", Coll: categoryColl, Logger: logger},
		CategoryAdmin: handlers.NewCategoryAdminHandler(syncClient, categoryColl, logger),
		Coupons:       &handlers.SyncedHandler[models.Coupon]{Name: "coupons", Coll: couponColl, Logger: logger},
		Gifts:         &handlers.SyncedHandler[models.Gift]{Name: "gifts", Coll: giftColl, Logger: logger},
		Tickets:       handlers.NewTicketHandler(ticketService),
	}
	routes.RegisterRoutes(router, h)

	// Background workers and health monitoring.
	cron.InitReminderWorker()
	utils.StartHealthMonitor(
		utils.GetCacheClient(),
		utils.GetAuthCacheClient(),
		utils.GetBookingCacheClient(),
		database.MongoClient,
	)

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
