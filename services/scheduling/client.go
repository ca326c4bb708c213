// File: services/scheduling/client.go
package scheduling

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Slot is one bookable start instant returned by the availability endpoint.
type Slot struct {
	StartTime time.Time `json:"start_time"`
}

// Client queries the scheduling provider for bookable start instants between
// two UTC bounds. Implementations must honor the context and return
// ErrUpstream-wrapped errors on provider failure.
type Client interface {
	AvailableTimes(ctx context.Context, start, end time.Time) ([]Slot, error)
}

type availableTimesResponse struct {
	Collection []Slot `json:"collection"`
}

// HTTPClient is the Calendly-backed Client.
type HTTPClient struct {
	BaseURL   string
	Token     string
	EventType string
	// Zone name sent as the "timezone" query param; it affects which slots
	// the provider considers open, the response instants stay UTC.
	ZoneName string

	httpClient *http.Client
}

// NewHTTPClient builds a client with an explicit upstream timeout so a hung
// provider call surfaces as the same failure as an error status.
func NewHTTPClient(baseURL, token, eventType, zoneName string) *HTTPClient {
	return &HTTPClient{
		BaseURL:    baseURL,
		Token:      token,
		EventType:  eventType,
		ZoneName:   zoneName,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// AvailableTimes fetches the provider's open start instants in [start, end).
func (c *HTTPClient) AvailableTimes(ctx context.Context, start, end time.Time) ([]Slot, error) {
	query := url.Values{}
	query.Set("event_type", c.EventType)
	query.Set("start_time", start.UTC().Format(time.RFC3339))
	query.Set("end_time", end.UTC().Format(time.RFC3339))
	query.Set("timezone", c.ZoneName)

	endpoint := c.BaseURL + "/event_type_available_times?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build availability request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, string(body))
	}

	var parsed availableTimesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: failed to decode availability response: %v", ErrUpstream, err)
	}
	return parsed.Collection, nil
}
