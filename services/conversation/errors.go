package conversation

import "errors"

var (
	// ErrMalformedEvent indicates a webhook payload missing the fields a user
	// message must carry. Handlers map it to 400; session state is untouched.
	ErrMalformedEvent = errors.New("malformed webhook event")

	// ErrNonMessage indicates a structurally valid envelope that carries no
	// user message (delivery receipts, read statuses). Acknowledged, not
	// processed.
	ErrNonMessage = errors.New("event carries no user message")

	// ErrUnsupportedMessage indicates a user message of a type the dialogue
	// does not handle (media, location). Acknowledged, not processed.
	ErrUnsupportedMessage = errors.New("unsupported message type")
)
