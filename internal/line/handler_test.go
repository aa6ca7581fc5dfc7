package line

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingService struct {
	mu     sync.Mutex
	events []Event
	err    error
}

func (r *recordingService) HandleEvent(_ context.Context, event Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return r.err
}

func (r *recordingService) seen() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

const testSecret = "test-channel-secret"

func webhookBody(t *testing.T, events []Event) []byte {
	t.Helper()
	raw, err := json.Marshal(webhookRequest{Events: events})
	require.NoError(t, err)
	return raw
}

func signedRequest(body []byte, secret string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if secret != "" {
		req.Header.Set(signatureHeader, signBody(secret, body))
	}
	return req
}

func TestHandleWebhook_AcksAndProcessesEachEvent(t *testing.T) {
	svc := &recordingService{}
	h := NewHandler(svc, testSecret, zap.NewNop())

	events := []Event{
		textEvent("山中湖店はありますか", "tok-1"),
		textEvent("猫はいますか", "tok-2"),
		textEvent("ほうとうの歴史は？", "tok-3"),
	}
	rr := httptest.NewRecorder()

	h.HandleWebhook(rr, signedRequest(webhookBody(t, events), testSecret))
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "OK", rr.Body.String())

	h.Wait()

	seen := svc.seen()
	require.Len(t, seen, 3)

	tokens := map[string]bool{}
	for _, ev := range seen {
		tokens[ev.ReplyToken] = true
	}
	require.Equal(t, map[string]bool{"tok-1": true, "tok-2": true, "tok-3": true}, tokens)
}

func TestHandleWebhook_EmptyEvents(t *testing.T) {
	svc := &recordingService{}
	h := NewHandler(svc, testSecret, zap.NewNop())

	for _, body := range [][]byte{
		[]byte(`{}`),
		[]byte(`{"events":[]}`),
	} {
		rr := httptest.NewRecorder()
		h.HandleWebhook(rr, signedRequest(body, testSecret))
		require.Equal(t, http.StatusBadRequest, rr.Code)
	}

	h.Wait()
	require.Empty(t, svc.seen())
}

func TestHandleWebhook_InvalidJSON(t *testing.T) {
	h := NewHandler(&recordingService{}, testSecret, zap.NewNop())

	rr := httptest.NewRecorder()
	h.HandleWebhook(rr, signedRequest([]byte("not json"), testSecret))
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandleWebhook_MissingSignature(t *testing.T) {
	svc := &recordingService{}
	h := NewHandler(svc, testSecret, zap.NewNop())

	body := webhookBody(t, []Event{textEvent("hi", "tok-1")})
	rr := httptest.NewRecorder()
	h.HandleWebhook(rr, signedRequest(body, ""))

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	h.Wait()
	require.Empty(t, svc.seen())
}

func TestHandleWebhook_TamperedSignature(t *testing.T) {
	svc := &recordingService{}
	h := NewHandler(svc, testSecret, zap.NewNop())

	body := webhookBody(t, []Event{textEvent("hi", "tok-1")})
	req := signedRequest(body, "wrong-secret")
	rr := httptest.NewRecorder()
	h.HandleWebhook(rr, req)

	require.Equal(t, http.StatusForbidden, rr.Code)
	h.Wait()
	require.Empty(t, svc.seen())
}

type countingOutbound struct {
	mu     sync.Mutex
	tokens []string
}

func (c *countingOutbound) Reply(_ context.Context, replyToken string, _ []Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokens = append(c.tokens, replyToken)
	return nil
}

func TestHandleWebhook_DispatchOncePerEvent(t *testing.T) {
	// End to end through the real service: a batch of N events produces
	// exactly N deliveries, each against a distinct reply token.
	out := &countingOutbound{}
	svc := NewService(&stubAI{answer: "ok"}, out, "system", zap.NewNop())
	h := NewHandler(svc, testSecret, zap.NewNop())

	events := []Event{
		textEvent("山中湖店はありますか", "tok-1"),
		textEvent("【予約リクエストフォーム】", "tok-2"),
		textEvent("朝一で行けますか", "tok-3"),
	}
	rr := httptest.NewRecorder()
	h.HandleWebhook(rr, signedRequest(webhookBody(t, events), testSecret))
	require.Equal(t, http.StatusOK, rr.Code)

	h.Wait()

	require.Len(t, out.tokens, 3)
	distinct := map[string]bool{}
	for _, tok := range out.tokens {
		distinct[tok] = true
	}
	require.Len(t, distinct, 3)
}

func TestHandleWebhook_SiblingEventsIsolatedFromFailures(t *testing.T) {
	// Every event errors inside its pipeline; the batch must still be acked
	// and every sibling must still be attempted.
	svc := &recordingService{err: context.DeadlineExceeded}
	h := NewHandler(svc, testSecret, zap.NewNop())

	events := []Event{
		textEvent("a", "tok-1"),
		textEvent("b", "tok-2"),
	}
	rr := httptest.NewRecorder()
	h.HandleWebhook(rr, signedRequest(webhookBody(t, events), testSecret))
	require.Equal(t, http.StatusOK, rr.Code)

	h.Wait()
	require.Len(t, svc.seen(), 2)
}
