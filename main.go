// File: atithi/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"atithi/config"
	"atithi/cron"
	"atithi/database"
	bookingRepo "atithi/database/repository/booking"
	catalogRepo "atithi/database/repository/catalog"
	settingsRepo "atithi/database/repository/settings"
	"atithi/handlers"
	"atithi/middleware"
	"atithi/routes"
	"atithi/services/availability"
	"atithi/services/booking"
	"atithi/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.Default())

	// repositories.
	catalogRepository := catalogRepo.NewMongoCatalogRepo()
	settingsRepository := settingsRepo.NewMongoSettingsRepo()
	bookingRepository := bookingRepo.NewMongoBookingRepo()

	// The resolver keeps the legacy permissive policy for malformed
	// occupancy records; flip MalformedBlocks for unavailable-safe behavior.
	resolver := availability.NewResolver()

	// services.
	sessionService := &booking.DefaultBookingSessionService{
		Catalog:  catalogRepository,
		Settings: settingsRepository,
		Bookings: bookingRepository,
		Resolver: resolver,
	}
	stayOpsService := &booking.DefaultStayOpsService{
		Catalog:  catalogRepository,
		Bookings: bookingRepository,
	}

	// Background housekeeping reminders.
	cron.InitHousekeepingWorker(catalogRepository)

	handlerBundle := routes.HandlerBundle{
		Booking:  handlers.NewBookingHandler(sessionService),
		Catalog:  handlers.NewCatalogHandler(catalogRepository, resolver),
		Settings: handlers.NewSettingsHandler(settingsRepository),
		StayOps:  handlers.NewStayOpsHandler(stayOpsService, bookingRepository),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

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
