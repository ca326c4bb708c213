package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups the endpoint handlers for route registration.
type HandlerBundle struct {
	// Scheduling endpoints.
	GetAvailableDatesHandler      gin.HandlerFunc
	GetAvailableDatesCountHandler gin.HandlerFunc
	GetAvailableTimesHandler      gin.HandlerFunc
	CreateBookingHandler          gin.HandlerFunc

	// Messaging webhook endpoints.
	VerifyWebhookHandler gin.HandlerFunc
	EventWebhookHandler  gin.HandlerFunc
}
