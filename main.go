package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stayhaven/config"
	"stayhaven/database"
	bookingRepoPkg "stayhaven/database/repository/booking"
	listingRepoPkg "stayhaven/database/repository/listing"
	userRepoPkg "stayhaven/database/repository/user"
	"stayhaven/graph"
	"stayhaven/middleware"
	"stayhaven/routes"
	"stayhaven/services/booking"
	"stayhaven/services/geo"
	"stayhaven/services/listing"
	"stayhaven/services/payment"
	"stayhaven/services/user"
	"stayhaven/services/viewer"
	"stayhaven/tasks"
	"stayhaven/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	listingRepo := listingRepoPkg.NewMongoListingRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()

	// services.
	paymentGateway := payment.NewStripeGateway(config.AppConfig.StripeClientID, logger)
	geocoder := geo.NewGoogleGeocoder(config.AppConfig.GoogleGeocodeKey, logger)

	viewerService := &viewer.DefaultViewerService{
		Repo:      userRepo,
		Payments:  paymentGateway,
		AuthCache: utils.GetAuthCacheClient(),
		Logger:    logger,
	}

	userService := &user.DefaultUserService{
		Repo:   userRepo,
		Logger: logger,
	}

	listingService := &listing.DefaultListingService{
		Repo:     listingRepo,
		UserRepo: userRepo,
		Geocoder: geocoder,
		Storage:  storageService,
		Logger:   logger,
	}

	bookingService := &booking.DefaultBookingService{
		ListingRepo:    listingRepo,
		UserRepo:       userRepo,
		BookingRepo:    bookingRepo,
		Payments:       paymentGateway,
		Reconciler:     tasks.NewAsynqReconciler(),
		MaxAdvanceDays: config.AppConfig.MaxBookingAdvanceDays,
		Logger:         logger,
	}

	resolver := &graph.Resolver{
		Viewers:  viewerService,
		Users:    userService,
		Listings: listingService,
		Bookings: bookingService,
		Logger:   logger,
	}
	schema, err := graph.NewSchema(resolver)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to build graphql schema: %v", err)
	}

	routes.RegisterRoutes(router, schema, viewerService, logger)

	tasks.InitReconcileWorker()
	utils.StartHealthMonitor([]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient()}, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "9000"
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
