package models

// Inbound webhook envelope, WhatsApp Cloud API shape. Only the fields the
// dialogue needs are declared; everything else in the provider payload is
// ignored.

type WebhookEnvelope struct {
	Entry []WebhookEntry `json:"entry"`
}

type WebhookEntry struct {
	Changes []WebhookChange `json:"changes"`
}

type WebhookChange struct {
	Value WebhookValue `json:"value"`
}

type WebhookValue struct {
	Messages []InboundMessage `json:"messages"`
}

type InboundMessage struct {
	From        string              `json:"from"`
	Type        string              `json:"type"`
	Text        *InboundText        `json:"text,omitempty"`
	Interactive *InboundInteractive `json:"interactive,omitempty"`
}

type InboundText struct {
	Body string `json:"body"`
}

type InboundInteractive struct {
	Type      string            `json:"type"`
	ListReply *InboundListReply `json:"list_reply,omitempty"`
}

type InboundListReply struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Outbound payloads.

// ListMessage is an interactive list menu: a header/body prompt plus rows the
// user picks from.
type ListMessage struct {
	Header  string
	Body    string
	Button  string
	Section string
	Rows    []ListRow
}

type ListRow struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}
