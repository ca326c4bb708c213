package routes

import (
	"net/http"
	"time"

	"bookline/handlers"
	"bookline/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterSchedulingRoutes registers the front-end facing scheduling
// endpoints, rate-limited per client IP.
func RegisterSchedulingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("")
	api.Use(middleware.RateLimitMiddleware())
	{
		api.GET("/available-dates", hb.GetAvailableDatesHandler)
		api.GET("/available-dates/count", hb.GetAvailableDatesCountHandler)
		api.POST("/available-times", hb.GetAvailableTimesHandler)
		api.POST("/create-booking", hb.CreateBookingHandler)
	}
}

// RegisterWebhookRoutes registers the messaging provider webhook. Not rate
// limited: provider callbacks arrive in bursts and a 429 would trigger
// redelivery.
func RegisterWebhookRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/webhook", hb.VerifyWebhookHandler)
	r.POST("/webhook", hb.EventWebhookHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Bookline"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterSchedulingRoutes(r, hb)
	RegisterWebhookRoutes(r, hb)
	RegisterHealthRoute(r)
}
