package ai

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/fujiya-taiken/line-ai-bridge/internal/config"
)

type OpenAIClient struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

func NewOpenAIClient(cfg config.OpenAIConfig, logger *zap.Logger) *OpenAIClient {
	return &OpenAIClient{
		client: openai.NewClient(cfg.APIKey),
		model:  cfg.Model,
		logger: logger,
	}
}

// Complete requests exactly one chat completion: the policy document as the
// system role, the user's text verbatim as the user role. No retry, no
// streaming, no history.
func (c *OpenAIClient) Complete(
	ctx context.Context,
	systemPrompt string,
	userText string,
) (string, error) {

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userText},
		},
	})
	if err != nil {
		c.logger.Error("openai completion failed", zap.Error(err))
		return "", err
	}

	if len(resp.Choices) == 0 {
		c.logger.Error("openai returned no choices")
		return "", errors.New("ai: empty choices in completion response")
	}

	return resp.Choices[0].Message.Content, nil
}
