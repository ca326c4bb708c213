package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bookline/models"
	"bookline/services/conversation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSender struct{}

func (stubSender) SendText(context.Context, string, string) error { return nil }
func (stubSender) SendList(context.Context, string, models.ListMessage) error {
	return nil
}

type stubFinder struct{}

func (stubFinder) FindAvailableDates(context.Context, int, int) []models.DateOption {
	return []models.DateOption{{ID: "1", Title: "2025-07-20", Description: "الأحد"}}
}

func (stubFinder) FindAvailableTimes(context.Context, string) []models.TimeOption {
	return []models.TimeOption{{ID: "1", Title: "14:30", Description: "14:30"}}
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func newWebhookRouter(t *testing.T) (*gin.Engine, *conversation.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := conversation.NewMemoryStore(systemClock{}, 15*time.Minute)
	dialogue := conversation.NewService(store, stubSender{}, stubFinder{}, systemClock{},
		zap.NewNop(), 15*time.Minute, 7, 30)
	handler := NewWebhookHandler("top-secret", dialogue)

	router := gin.New()
	router.GET("/webhook", handler.VerifyWebhookHandler)
	router.POST("/webhook", handler.EventWebhookHandler)
	return router, store
}

func TestVerifyWebhook_Success(t *testing.T) {
	router, _ := newWebhookRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/webhook?hub.mode=subscribe&hub.verify_token=top-secret&hub.challenge=12345", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "12345", w.Body.String())
}

func TestVerifyWebhook_WrongToken(t *testing.T) {
	router, _ := newWebhookRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/webhook?hub.mode=subscribe&hub.verify_token=wrong&hub.challenge=12345", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestVerifyWebhook_MissingParams(t *testing.T) {
	router, _ := newWebhookRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/webhook?hub.mode=subscribe", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing mode or token")
}

func TestEventWebhook_TextMessageHandled(t *testing.T) {
	router, store := newWebhookRouter(t)

	body := `{"entry":[{"changes":[{"value":{"messages":[
		{"from":"972500000001","type":"text","text":{"body":"hi"}}
	]}}]}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "handled")

	snapshot, err := store.Snapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, snapshot, 1)
	assert.Equal(t, models.StepMainMenu, snapshot["972500000001"].Step)
}

func TestEventWebhook_MalformedPayloadLeavesStoreUntouched(t *testing.T) {
	router, store := newWebhookRouter(t)

	before, err := store.Snapshot(context.Background())
	require.NoError(t, err)

	for _, body := range []string{
		`not json at all`,
		`{"entry":[]}`,
		`{"entry":[{"changes":[{"value":{"messages":[{"type":"text","text":{"body":"hi"}}]}}]}]}`,
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "payload: %s", body)
	}

	after, err := store.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, before, after, "malformed payloads must not mutate the session store")
}

func TestEventWebhook_NonMessageAcknowledged(t *testing.T) {
	router, _ := newWebhookRouter(t)

	body := `{"entry":[{"changes":[{"value":{"statuses":[{"status":"delivered"}]}}]}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "non-message")
}

func TestEventWebhook_UnsupportedTypeIgnored(t *testing.T) {
	router, store := newWebhookRouter(t)

	body := `{"entry":[{"changes":[{"value":{"messages":[
		{"from":"972500000001","type":"audio"}
	]}}]}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ignored")

	snapshot, err := store.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Empty(t, snapshot)
}
