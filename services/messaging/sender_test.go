package messaging

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookline/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSendText_PayloadShape(t *testing.T) {
	var got map[string]any
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sender := NewHTTPSender(server.URL, "meta-token", zap.NewNop())
	require.NoError(t, sender.SendText(context.Background(), "972500000001", "شو الاسم؟"))

	assert.Equal(t, "Bearer meta-token", gotAuth)
	assert.Equal(t, "whatsapp", got["messaging_product"])
	assert.Equal(t, "972500000001", got["to"])
	assert.Equal(t, "text", got["type"])
	text := got["text"].(map[string]any)
	assert.Equal(t, "شو الاسم؟", text["body"])
}

func TestSendList_PayloadShape(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sender := NewHTTPSender(server.URL, "meta-token", zap.NewNop())
	list := models.ListMessage{
		Header:  "هلا،كيفك؟ ✋",
		Body:    "كيف ممكن أساعدك اليوم؟",
		Button:  "اختيار",
		Section: "Available Options",
		Rows: []models.ListRow{
			{ID: "d1", Title: "حجز دور 📅"},
		},
	}
	require.NoError(t, sender.SendList(context.Background(), "972500000001", list))

	assert.Equal(t, "interactive", got["type"])
	interactive := got["interactive"].(map[string]any)
	assert.Equal(t, "list", interactive["type"])
	header := interactive["header"].(map[string]any)
	assert.Equal(t, "هلا،كيفك؟ ✋", header["text"])
	action := interactive["action"].(map[string]any)
	assert.Equal(t, "اختيار", action["button"])
	sections := action["sections"].([]any)
	require.Len(t, sections, 1)
	rows := sections[0].(map[string]any)["rows"].([]any)
	require.Len(t, rows, 1)
	assert.Equal(t, "d1", rows[0].(map[string]any)["id"])
}

func TestSendList_OmitsEmptyHeader(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sender := NewHTTPSender(server.URL, "meta-token", zap.NewNop())
	require.NoError(t, sender.SendList(context.Background(), "972500000001", models.ListMessage{
		Body:   "اختاري الوقت المناسب ⏰",
		Button: "اوقات",
	}))

	interactive := got["interactive"].(map[string]any)
	_, hasHeader := interactive["header"]
	assert.False(t, hasHeader)
}

func TestSend_ProviderErrorSurfaced(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad token", http.StatusUnauthorized)
	}))
	defer server.Close()

	sender := NewHTTPSender(server.URL, "meta-token", zap.NewNop())
	err := sender.SendText(context.Background(), "972500000001", "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
