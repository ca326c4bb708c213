package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bookline/models"
	"bookline/services/scheduling"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRESTFinder struct {
	dates []models.DateOption
	times []models.TimeOption
}

func (f *fakeRESTFinder) FindAvailableDates(context.Context, int, int) []models.DateOption {
	return f.dates
}

func (f *fakeRESTFinder) CountAvailableDates(context.Context, int, int) int {
	return len(f.dates)
}

func (f *fakeRESTFinder) FindAvailableTimes(_ context.Context, date string) []models.TimeOption {
	return f.times
}

type fakeBooking struct {
	result *scheduling.BookingResult
	err    error

	gotName, gotEmail, gotDate, gotTime string
}

func (f *fakeBooking) SubmitBooking(_ context.Context, name, contact, localDate, localTime string) (*scheduling.BookingResult, error) {
	f.gotName, f.gotEmail, f.gotDate, f.gotTime = name, contact, localDate, localTime
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func newAvailabilityRouter(finder SlotFinder, booking BookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewAvailabilityHandler(finder, booking, 7, 30)
	router := gin.New()
	router.GET("/available-dates", handler.GetAvailableDatesHandler)
	router.GET("/available-dates/count", handler.GetAvailableDatesCountHandler)
	router.POST("/available-times", handler.GetAvailableTimesHandler)
	router.POST("/create-booking", handler.CreateBookingHandler)
	return router
}

func TestGetAvailableDates(t *testing.T) {
	finder := &fakeRESTFinder{dates: []models.DateOption{
		{ID: "1", Title: "2025-07-20", Description: "الأحد"},
		{ID: "2", Title: "2025-07-21", Description: "الاثنين"},
	}}
	router := newAvailabilityRouter(finder, &fakeBooking{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/available-dates", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var got []models.DateOption
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, finder.dates, got)
}

func TestGetAvailableDates_EmptyOnUpstreamFailure(t *testing.T) {
	router := newAvailabilityRouter(&fakeRESTFinder{}, &fakeBooking{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/available-dates", nil))

	// Still a 200 with an empty list, never an error status.
	require.Equal(t, http.StatusOK, w.Code)
	var got []models.DateOption
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Empty(t, got)
}

func TestGetAvailableDatesCount(t *testing.T) {
	finder := &fakeRESTFinder{dates: []models.DateOption{{ID: "1", Title: "2025-07-20"}}}
	router := newAvailabilityRouter(finder, &fakeBooking{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/available-dates/count", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count":1}`, w.Body.String())
}

func TestGetAvailableTimes_MissingDate(t *testing.T) {
	router := newAvailabilityRouter(&fakeRESTFinder{}, &fakeBooking{})

	for _, body := range []string{`{}`, `{"date":""}`, `garbage`} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/available-times", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
		assert.Contains(t, w.Body.String(), "Missing 'date'")
	}
}

func TestGetAvailableTimes(t *testing.T) {
	finder := &fakeRESTFinder{times: []models.TimeOption{{ID: "1", Title: "14:30", Description: "14:30"}}}
	router := newAvailabilityRouter(finder, &fakeBooking{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/available-times", strings.NewReader(`{"date":"2025-07-20"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got []models.TimeOption
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, finder.times, got)
}

func TestCreateBooking_Success(t *testing.T) {
	booking := &fakeBooking{result: &scheduling.BookingResult{ResponseStatus: 200}}
	router := newAvailabilityRouter(&fakeRESTFinder{}, booking)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/create-booking",
		strings.NewReader(`{"name":"Lina","email":"lina@example.com","date":"2025-07-20","time":"14:30"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"response_status":200}`, w.Body.String())
	assert.Equal(t, "Lina", booking.gotName)
	assert.Equal(t, "lina@example.com", booking.gotEmail)
	assert.Equal(t, "2025-07-20", booking.gotDate)
	assert.Equal(t, "14:30", booking.gotTime)
}

func TestCreateBooking_MissingFields(t *testing.T) {
	router := newAvailabilityRouter(&fakeRESTFinder{}, &fakeBooking{})

	cases := []string{
		`{"email":"l@example.com","date":"2025-07-20","time":"14:30"}`,
		`{"name":"Lina","date":"2025-07-20","time":"14:30"}`,
		`{"name":"Lina","email":"l@example.com","time":"14:30"}`,
		`{"name":"Lina","email":"l@example.com","date":"2025-07-20"}`,
	}
	for _, body := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/create-booking", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
	}
}

func TestCreateBooking_InvalidTime(t *testing.T) {
	booking := &fakeBooking{err: scheduling.ErrInvalidTimeFormat}
	router := newAvailabilityRouter(&fakeRESTFinder{}, booking)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/create-booking",
		strings.NewReader(`{"name":"Lina","email":"l@example.com","date":"2025-07-20","time":"25:99"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBooking_UpstreamFailure(t *testing.T) {
	booking := &fakeBooking{err: scheduling.ErrUpstream}
	router := newAvailabilityRouter(&fakeRESTFinder{}, booking)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/create-booking",
		strings.NewReader(`{"name":"Lina","email":"l@example.com","date":"2025-07-20","time":"14:30"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	// Explicit error body the front-end can display.
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"error"`)
	assert.Contains(t, w.Body.String(), "message")
}
