package line

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLineOutbound_Reply(t *testing.T) {
	var gotAuth string
	var gotBody replyRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		gotAuth = r.Header.Get("Authorization")

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &gotBody))

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	out := NewLineOutbound("token-123", WithReplyURL(srv.URL))
	messages := []Message{
		TextMessage("こんにちは"),
		ImageMessage("https://example.com/a.jpg", "https://example.com/a.jpg"),
	}

	err := out.Reply(context.Background(), "reply-token-1", messages)
	require.NoError(t, err)
	require.Equal(t, "Bearer token-123", gotAuth)
	require.Equal(t, "reply-token-1", gotBody.ReplyToken)
	require.Equal(t, messages, gotBody.Messages)
}

func TestLineOutbound_Reply_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"Invalid reply token"}`))
	}))
	defer srv.Close()

	out := NewLineOutbound("token-123", WithReplyURL(srv.URL))
	err := out.Reply(context.Background(), "already-used", []Message{TextMessage("x")})
	require.Error(t, err)
	require.Contains(t, err.Error(), "line reply api error")
	require.Contains(t, err.Error(), "Invalid reply token")
}

func TestLineOutbound_Reply_NetworkError(t *testing.T) {
	out := NewLineOutbound("token-123", WithReplyURL("http://127.0.0.1:1"))
	err := out.Reply(context.Background(), "tok", []Message{TextMessage("x")})
	require.Error(t, err)
}
