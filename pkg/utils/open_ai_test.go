package utils

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer hf_test", r.Header.Get("Authorization"))

		var req map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test/model", req["model"])
		assert.EqualValues(t, DefaultMaxTokens, req["max_tokens"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestOpenAICompletionClient(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		srv := newChatServer(t, http.StatusOK, `{"id":"1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"  TITLE:\nParis  "},"finish_reason":"stop"}]}`)
		client := NewOpenAICompletionClient("hf_test", srv.URL+"/v1/", "test/model", time.Second)

		text, err := client.Generate(ctx, "plan a trip")
		require.NoError(t, err)
		assert.Equal(t, "TITLE:\nParis", text)
		assert.Equal(t, "test/model", client.Model())
	})

	t.Run("Unauthorized", func(t *testing.T) {
		srv := newChatServer(t, http.StatusUnauthorized, `{"error":{"message":"Invalid credentials in Authorization header","type":"invalid_request_error"}}`)
		client := NewOpenAICompletionClient("hf_test", srv.URL+"/v1", "test/model", time.Second)

		_, err := client.Generate(ctx, "plan a trip")
		assert.ErrorIs(t, err, ErrInferenceAuth)
	})

	t.Run("RateLimited", func(t *testing.T) {
		srv := newChatServer(t, http.StatusTooManyRequests, `{"error":{"message":"rate limit reached","type":"rate_limit"}}`)
		client := NewOpenAICompletionClient("hf_test", srv.URL+"/v1", "test/model", time.Second)

		_, err := client.Generate(ctx, "plan a trip")
		assert.ErrorIs(t, err, ErrRateLimited)
	})

	t.Run("ServerError", func(t *testing.T) {
		srv := newChatServer(t, http.StatusServiceUnavailable, `{"error":{"message":"model is loading","type":"server_error"}}`)
		client := NewOpenAICompletionClient("hf_test", srv.URL+"/v1", "test/model", time.Second)

		_, err := client.Generate(ctx, "plan a trip")
		assert.ErrorIs(t, err, ErrInferenceTransport)
	})

	t.Run("EmptyChoices", func(t *testing.T) {
		srv := newChatServer(t, http.StatusOK, `{"id":"1","object":"chat.completion","choices":[]}`)
		client := NewOpenAICompletionClient("hf_test", srv.URL+"/v1", "test/model", time.Second)

		_, err := client.Generate(ctx, "plan a trip")
		assert.ErrorIs(t, err, ErrEmptyResponse)
	})

	t.Run("Unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()
		client := NewOpenAICompletionClient("hf_test", url+"/v1", "test/model", time.Second)

		_, err := client.Generate(ctx, "plan a trip")
		assert.ErrorIs(t, err, ErrInferenceTransport)
	})

	t.Run("Defaults", func(t *testing.T) {
		client := NewOpenAICompletionClient("hf_test", "", "", 0)
		assert.Equal(t, DefaultChatModel, client.Model())
	})
}
