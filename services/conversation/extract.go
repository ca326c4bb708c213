// File: services/conversation/extract.go
package conversation

import (
	"fmt"

	"bookline/models"
)

// ExtractEvent pulls the single user message out of a provider webhook
// envelope. Missing structure comes back as a typed error instead of a panic
// on absent nested fields.
func ExtractEvent(env models.WebhookEnvelope) (Event, error) {
	if len(env.Entry) == 0 || len(env.Entry[0].Changes) == 0 {
		return Event{}, fmt.Errorf("%w: missing entry/changes", ErrMalformedEvent)
	}
	value := env.Entry[0].Changes[0].Value
	if len(value.Messages) == 0 {
		// Delivery/read status callbacks arrive on the same endpoint.
		return Event{}, ErrNonMessage
	}

	msg := value.Messages[0]
	if msg.From == "" {
		return Event{}, fmt.Errorf("%w: missing sender id", ErrMalformedEvent)
	}

	switch msg.Type {
	case "interactive":
		if msg.Interactive == nil || msg.Interactive.ListReply == nil || msg.Interactive.ListReply.ID == "" {
			return Event{}, fmt.Errorf("%w: interactive message without list reply", ErrMalformedEvent)
		}
		return Event{Contact: msg.From, Kind: EventSelection, Selection: msg.Interactive.ListReply.ID}, nil
	case "text":
		if msg.Text == nil || msg.Text.Body == "" {
			return Event{}, fmt.Errorf("%w: text message without body", ErrMalformedEvent)
		}
		return Event{Contact: msg.From, Kind: EventText, Text: msg.Text.Body}, nil
	}
	return Event{}, fmt.Errorf("%w: %s", ErrUnsupportedMessage, msg.Type)
}
