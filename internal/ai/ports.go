package ai

import "context"

// AI is the completion port. It knows nothing about LINE or webhooks: it takes
// the system document plus the user's raw text and returns a single reply.
type AI interface {
	Complete(ctx context.Context, systemPrompt string, userText string) (string, error)
}
