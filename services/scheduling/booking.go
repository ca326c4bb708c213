// File: services/scheduling/booking.go
package scheduling

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"bookline/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingResult carries the provider's success status back to the caller.
type BookingResult struct {
	ResponseStatus int    `json:"response_status"`
	BookingRef     string `json:"booking_ref"`
}

type bookingPayload struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	StartTime  string `json:"start_time"`
	BookingRef string `json:"booking_ref"`
}

// Submitter converts a local date+time into the provider's UTC instant
// representation and posts the booking to the booking webhook.
type Submitter struct {
	WebhookURL string
	Zone       *utils.Timezone
	Logger     *zap.Logger

	httpClient *http.Client
}

// NewSubmitter builds a Submitter with a 10s upstream timeout.
func NewSubmitter(webhookURL string, zone *utils.Timezone, logger *zap.Logger) *Submitter {
	return &Submitter{
		WebhookURL: webhookURL,
		Zone:       zone,
		Logger:     logger,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// SubmitBooking parses localDate+localTime as wall clock in the target zone,
// converts to a UTC instant, and submits the booking. Provider failure comes
// back as an ErrUpstream-wrapped error, never a panic.
func (s *Submitter) SubmitBooking(ctx context.Context, name, contact, localDate, localTime string) (*BookingResult, error) {
	instant, err := s.Zone.LocalToUTC(localDate, localTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTimeFormat, err)
	}

	payload := bookingPayload{
		Name:       name,
		Email:      contact,
		StartTime:  instant.Format(time.RFC3339),
		BookingRef: uuid.New().String(),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal booking payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build booking request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.Logger.Warn("booking submission failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		s.Logger.Warn("booking rejected by provider",
			zap.Int("status", resp.StatusCode), zap.ByteString("body", text))
		return nil, fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, string(text))
	}

	return &BookingResult{ResponseStatus: resp.StatusCode, BookingRef: payload.BookingRef}, nil
}
