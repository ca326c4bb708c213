// File: handlers/availability.go
package handlers

import (
	"context"
	"errors"
	"net/http"

	"bookline/models"
	"bookline/services/scheduling"

	"github.com/gin-gonic/gin"
)

// SlotFinder is the slice of the scheduling service the REST surface needs.
type SlotFinder interface {
	FindAvailableDates(ctx context.Context, limit, horizonDays int) []models.DateOption
	CountAvailableDates(ctx context.Context, limit, horizonDays int) int
	FindAvailableTimes(ctx context.Context, date string) []models.TimeOption
}

// BookingService submits a confirmed booking to the scheduling provider.
type BookingService interface {
	SubmitBooking(ctx context.Context, name, contact, localDate, localTime string) (*scheduling.BookingResult, error)
}

// AvailabilityHandler serves the scheduling endpoints used by the front-end,
// independent of the conversational flow.
type AvailabilityHandler struct {
	Finder      SlotFinder
	Booking     BookingService
	DateLimit   int
	HorizonDays int
}

// NewAvailabilityHandler builds the handler.
func NewAvailabilityHandler(finder SlotFinder, booking BookingService, dateLimit, horizonDays int) *AvailabilityHandler {
	return &AvailabilityHandler{
		Finder:      finder,
		Booking:     booking,
		DateLimit:   dateLimit,
		HorizonDays: horizonDays,
	}
}

// GetAvailableDatesHandler lists candidate dates. Upstream failure shows up as
// an empty list, never an error status.
func (h *AvailabilityHandler) GetAvailableDatesHandler(c *gin.Context) {
	dates := h.Finder.FindAvailableDates(c.Request.Context(), h.DateLimit, h.HorizonDays)
	c.JSON(http.StatusOK, dates)
}

// GetAvailableDatesCountHandler reports how many dates are bookable.
func (h *AvailabilityHandler) GetAvailableDatesCountHandler(c *gin.Context) {
	count := h.Finder.CountAvailableDates(c.Request.Context(), h.DateLimit, h.HorizonDays)
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// GetAvailableTimesHandler lists candidate times for one date.
func (h *AvailabilityHandler) GetAvailableTimesHandler(c *gin.Context) {
	var input struct {
		Date string `json:"date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing 'date'"})
		return
	}
	times := h.Finder.FindAvailableTimes(c.Request.Context(), input.Date)
	c.JSON(http.StatusOK, times)
}

// CreateBookingHandler submits a booking. Bad input is the caller's fault
// (400); a provider failure is reported as an explicit error body the
// front-end can display.
func (h *AvailabilityHandler) CreateBookingHandler(c *gin.Context) {
	var input struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Date  string `json:"date"`
		Time  string `json:"time"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.Name == "" || input.Email == "" || input.Date == "" || input.Time == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		return
	}

	result, err := h.Booking.SubmitBooking(c.Request.Context(), input.Name, input.Email, input.Date, input.Time)
	if err != nil {
		if errors.Is(err, scheduling.ErrInvalidTimeFormat) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "error", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"response_status": result.ResponseStatus})
}
