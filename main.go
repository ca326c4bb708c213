// File: bookline/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookline/config"
	"bookline/handlers"
	"bookline/routes"
	"bookline/services/conversation"
	"bookline/services/messaging"
	"bookline/services/scheduling"
	"bookline/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	if err := config.Validate(); err != nil {
		logger.Sugar().Fatalf("main: invalid configuration: %v", err)
	}

	zone, err := utils.LoadTimezone(config.AppConfig.Timezone)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	clock := &utils.SystemClock{}
	idleTimeout := time.Duration(config.AppConfig.SessionTimeoutMinutes) * time.Minute

	// Scheduling provider.
	calendly := scheduling.NewHTTPClient(
		config.AppConfig.CalendlyAPIURL,
		config.AppConfig.CalendlyToken,
		config.AppConfig.EventTypeURL,
		zone.Name(),
	)
	finder := &scheduling.Finder{
		Client:        calendly,
		Zone:          zone,
		Clock:         clock,
		Locale:        config.AppConfig.Locale,
		FormatWeekday: scheduling.LocalizedWeekday,
		Logger:        logger,
	}
	submitter := scheduling.NewSubmitter(config.AppConfig.BookingWebhookURL, zone, logger)

	// Messaging provider.
	sender := messaging.NewHTTPSender(config.AppConfig.MetaAPIURL, config.AppConfig.MetaAccessToken, logger)

	// Session store: in-memory by default, Redis when configured.
	var store conversation.Store
	if config.AppConfig.RedisAddr != "" {
		store = conversation.NewRedisStore(utils.GetSessionCacheClient(), clock, idleTimeout)
		logger.Sugar().Infof("main: using redis session store at %s", config.AppConfig.RedisAddr)
	} else {
		store = conversation.NewMemoryStore(clock, idleTimeout)
	}

	dialogue := conversation.NewService(store, sender, finder, clock, logger,
		idleTimeout, config.AppConfig.DateLimit, config.AppConfig.DateHorizonDays)

	availabilityHandler := handlers.NewAvailabilityHandler(finder, submitter,
		config.AppConfig.DateLimit, config.AppConfig.DateHorizonDays)
	webhookHandler := handlers.NewWebhookHandler(config.AppConfig.VerifyToken, dialogue)

	handlerBundle := &handlers.HandlerBundle{
		GetAvailableDatesHandler:      availabilityHandler.GetAvailableDatesHandler,
		GetAvailableDatesCountHandler: availabilityHandler.GetAvailableDatesCountHandler,
		GetAvailableTimesHandler:      availabilityHandler.GetAvailableTimesHandler,
		CreateBookingHandler:          availabilityHandler.CreateBookingHandler,
		VerifyWebhookHandler:          webhookHandler.VerifyWebhookHandler,
		EventWebhookHandler:           webhookHandler.EventWebhookHandler,
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "10000"
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
