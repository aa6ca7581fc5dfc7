package line

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultReplyURL = "https://api.line.me/v2/bot/message/reply"

type LineOutbound struct {
	replyURL string
	token    string
	client   *resty.Client
}

type OutboundOption func(*LineOutbound)

// WithReplyURL points the client at a different reply endpoint.
func WithReplyURL(url string) OutboundOption {
	return func(o *LineOutbound) {
		o.replyURL = url
	}
}

func NewLineOutbound(accessToken string, opts ...OutboundOption) *LineOutbound {
	o := &LineOutbound{
		replyURL: defaultReplyURL,
		token:    accessToken,
		client:   resty.New().SetTimeout(10 * time.Second),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

type replyRequest struct {
	ReplyToken string    `json:"replyToken"`
	Messages   []Message `json:"messages"`
}

// Reply sends one reply operation bound to the token. The platform accepts at
// most one reply per token, so callers must call this exactly once per event.
func (o *LineOutbound) Reply(ctx context.Context, replyToken string, messages []Message) error {
	resp, err := o.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "Bearer "+o.token).
		SetBody(replyRequest{ReplyToken: replyToken, Messages: messages}).
		Post(o.replyURL)

	if err != nil {
		return err
	}

	if resp.IsError() {
		return fmt.Errorf("line reply api error: %s body=%s", resp.Status(), resp.String())
	}

	return nil
}
