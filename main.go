// File: oxywell/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"oxywell/config"
	"oxywell/cron"
	"oxywell/database"
	chamberRepoPkg "oxywell/database/repository/chamber"
	contentRepoPkg "oxywell/database/repository/content"
	providerRepoPkg "oxywell/database/repository/provider"
	userRepoPkg "oxywell/database/repository/user"
	"oxywell/handlers"
	"oxywell/middleware"
	"oxywell/routes"
	"oxywell/services/content"
	"oxywell/services/geocode"
	"oxywell/services/places"
	"oxywell/services/provider"
	"oxywell/services/user"
	"oxywell/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.FirebaseInit()

	cloudinaryStorageService, err := utils.Cloudinary()
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
	provRepo := providerRepoPkg.NewMongoProviderRepo()
	chamberRepo := chamberRepoPkg.NewMongoChamberRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	postRepo := contentRepoPkg.NewMongoBlogPostRepo()

	// services.
	geocoder := geocode.NewNominatimGeocoder(
		config.AppConfig.GeocoderBaseURL,
		config.AppConfig.GeocoderUserAgent,
		geocode.CacheReadHeavy,
	)

	var placesClient places.Client
	if config.AppConfig.GoogleAPIKey != "" {
		placesClient = places.NewGoogleClient(config.AppConfig.GoogleAPIKey)
	} else {
		logger.Sugar().Warn("main: GOOGLE_API_KEY not set, place details enrichment disabled")
	}

	providerService, err := provider.NewDefaultProviderService(
		provRepo,
		geocoder,
		placesClient,
		geocode.NewThrottle(geocode.ReadInterval),
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize provider service: %v", err)
	}
	if config.AppConfig.EnrichLimit > 0 {
		providerService.EnrichLimit = config.AppConfig.EnrichLimit
	}

	guideSource, err := content.NewSheetsGuideSource(
		context.Background(),
		config.AppConfig.GoogleAPIKey,
		config.AppConfig.GuidesSheetID,
		config.AppConfig.GuidesSheetRange,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize guides source: %v", err)
	}
	contentService := content.NewDefaultContentService(
		guideSource,
		postRepo,
		content.NewContentCache(utils.GetCacheClient()),
	)

	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	// Background re-geocode worker uses its own service wired for bulk work:
	// a force-fresh geocoder and the slower bulk throttle.
	bulkService, err := provider.NewDefaultProviderService(
		provRepo,
		geocode.NewNominatimGeocoder(
			config.AppConfig.GeocoderBaseURL,
			config.AppConfig.GeocoderUserAgent,
			geocode.CacheForceFresh,
		),
		placesClient,
		geocode.NewThrottle(geocode.BulkInterval),
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize bulk geocode service: %v", err)
	}
	cron.InitGeocodeWorker(bulkService)

	jobClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisJobDB,
	})
	defer jobClient.Close()

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Providers:  handlers.NewProviderHandler(providerService),
		Chambers:   handlers.NewChamberHandler(chamberRepo),
		Content:    handlers.NewContentHandler(contentService),
		Users:      handlers.NewUserHandler(userService),
		Media:      handlers.NewMediaHandler(cloudinaryStorageService),
		AuthClient: utils.AuthClient,
		JobClient:  jobClient,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Monitor Redis and Mongo liveness for the health endpoint.
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

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
