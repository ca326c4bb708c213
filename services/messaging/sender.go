// File: services/messaging/sender.go
package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"bookline/models"

	"go.uber.org/zap"
)

// Sender delivers outbound messages to a contact. Delivery is best-effort:
// callers log failures and move on, the dialogue state has already advanced.
type Sender interface {
	SendText(ctx context.Context, to, body string) error
	SendList(ctx context.Context, to string, list models.ListMessage) error
}

// HTTPSender posts WhatsApp Cloud API payloads.
type HTTPSender struct {
	APIURL string
	Token  string
	Logger *zap.Logger

	httpClient *http.Client
}

// NewHTTPSender builds a sender with a 10s upstream timeout.
func NewHTTPSender(apiURL, token string, logger *zap.Logger) *HTTPSender {
	return &HTTPSender{
		APIURL:     apiURL,
		Token:      token,
		Logger:     logger,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type textPayload struct {
	MessagingProduct string   `json:"messaging_product"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Text             textBody `json:"text"`
}

type textBody struct {
	Body string `json:"body"`
}

type listPayload struct {
	MessagingProduct string          `json:"messaging_product"`
	To               string          `json:"to"`
	Type             string          `json:"type"`
	Interactive      interactiveBody `json:"interactive"`
}

type interactiveBody struct {
	Type   string      `json:"type"`
	Header *headerBody `json:"header,omitempty"`
	Body   bodyText    `json:"body"`
	Action listAction  `json:"action"`
}

type headerBody struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type bodyText struct {
	Text string `json:"text"`
}

type listAction struct {
	Button   string        `json:"button"`
	Sections []listSection `json:"sections"`
}

type listSection struct {
	Title string           `json:"title"`
	Rows  []models.ListRow `json:"rows"`
}

// SendText delivers a plain text message.
func (s *HTTPSender) SendText(ctx context.Context, to, body string) error {
	return s.post(ctx, textPayload{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "text",
		Text:             textBody{Body: body},
	})
}

// SendList delivers an interactive list menu.
func (s *HTTPSender) SendList(ctx context.Context, to string, list models.ListMessage) error {
	interactive := interactiveBody{
		Type: "list",
		Body: bodyText{Text: list.Body},
		Action: listAction{
			Button:   list.Button,
			Sections: []listSection{{Title: list.Section, Rows: list.Rows}},
		},
	}
	if list.Header != "" {
		interactive.Header = &headerBody{Type: "text", Text: list.Header}
	}
	return s.post(ctx, listPayload{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "interactive",
		Interactive:      interactive,
	})
}

func (s *HTTPSender) post(ctx context.Context, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal message payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.APIURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build message request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.Token)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("message send failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		s.Logger.Warn("messaging provider rejected message",
			zap.Int("status", resp.StatusCode), zap.ByteString("body", text))
		return fmt.Errorf("messaging provider returned status %d", resp.StatusCode)
	}
	return nil
}
