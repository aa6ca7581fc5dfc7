package line

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/fujiya-taiken/line-ai-bridge/internal/ai"
)

type service struct {
	ai           ai.AI
	outbound     Outbound
	systemPrompt string
	logger       *zap.Logger
}

func NewService(aiClient ai.AI, outbound Outbound, systemPrompt string, logger *zap.Logger) Service {
	return &service{
		ai:           aiClient,
		outbound:     outbound,
		systemPrompt: systemPrompt,
		logger:       logger,
	}
}

// HandleEvent runs one inbound event through the pipeline. Non-message and
// non-text events are skipped. Whatever branch produces the payload, the reply
// token is spent through the single outbound call at the end: at most one
// delivery per event.
func (s *service) HandleEvent(ctx context.Context, event Event) error {
	if event.Type != EventTypeMessage || event.Message.Type != MessageTypeText {
		s.logger.Debug("skipping non-text event", zap.String("type", event.Type))
		return nil
	}

	text := strings.TrimSpace(event.Message.Text)
	s.logger.Info("processing message", zap.String("text", text))

	messages, matched := Classify(text)
	if !matched {
		messages = []Message{TextMessage(s.complete(ctx, text))}
	}

	if err := s.outbound.Reply(ctx, event.ReplyToken, messages); err != nil {
		// The webhook was already acknowledged and the reply token is spent;
		// there is no channel left to report this to, so log and stop.
		s.logger.Error("reply delivery failed", zap.Error(err))
		return err
	}

	return nil
}

// complete asks the model for an answer and substitutes the fixed apology on
// any failure, so the pipeline always has a payload to deliver.
func (s *service) complete(ctx context.Context, text string) string {
	answer, err := s.ai.Complete(ctx, s.systemPrompt, text)
	if err != nil {
		s.logger.Warn("falling back to canned apology", zap.Error(err))
		return FallbackReply
	}
	return answer
}
