package line

import "context"

const (
	EventTypeMessage = "message"
	MessageTypeText  = "text"
)

// Event is one inbound webhook event as delivered by the LINE platform.
// The reply token is single-use: at most one reply operation may succeed
// against it.
type Event struct {
	Type       string       `json:"type"`
	Message    EventMessage `json:"message"`
	ReplyToken string       `json:"replyToken"`
}

type EventMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Message is one outbound content block: a text block or an image block.
type Message struct {
	Type               string `json:"type"`
	Text               string `json:"text,omitempty"`
	OriginalContentURL string `json:"originalContentUrl,omitempty"`
	PreviewImageURL    string `json:"previewImageUrl,omitempty"`
}

func TextMessage(text string) Message {
	return Message{Type: "text", Text: text}
}

func ImageMessage(originalURL, previewURL string) Message {
	return Message{
		Type:               "image",
		OriginalContentURL: originalURL,
		PreviewImageURL:    previewURL,
	}
}

// Outbound delivers a reply payload to the conversation behind a reply token.
type Outbound interface {
	Reply(ctx context.Context, replyToken string, messages []Message) error
}

// Service runs the per-event pipeline: classify, fall back to the AI if no
// rule matches, deliver exactly one reply.
type Service interface {
	HandleEvent(ctx context.Context, event Event) error
}
