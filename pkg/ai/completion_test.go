package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/fireflies-bridge/internal/domain/entities"
	"github.com/johnquangdev/fireflies-bridge/pkg/config"
)

func newCompletionServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o", req["model"])
		assert.InDelta(t, 0.1, req["temperature"], 0.0001)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func testOpenAIConfig(url string) *config.OpenAIConfig {
	return &config.OpenAIConfig{APIKey: "sk-test", BaseURL: url, Model: "gpt-4o", Temperature: 0.1}
}

func TestComplete_Success(t *testing.T) {
	ts := newCompletionServer(t, http.StatusOK, `{
		"id":"chatcmpl-1","object":"chat.completion","model":"gpt-4o",
		"choices":[{"index":0,"message":{"role":"assistant","content":"{\"score\":7}"},"finish_reason":"stop"}]
	}`)

	client := NewCompletionClient(testOpenAIConfig(ts.URL))
	out, err := client.Complete(context.Background(), "system", "user")
	require.NoError(t, err)
	assert.Equal(t, `{"score":7}`, out)
}

func TestComplete_QuotaExceeded(t *testing.T) {
	ts := newCompletionServer(t, http.StatusTooManyRequests, `{
		"error":{"message":"You exceeded your current quota","type":"insufficient_quota","code":"insufficient_quota"}
	}`)

	client := NewCompletionClient(testOpenAIConfig(ts.URL))
	_, err := client.Complete(context.Background(), "system", "user")
	assert.ErrorIs(t, err, entities.ErrQuotaExceeded)
}

func TestComplete_ServerError(t *testing.T) {
	ts := newCompletionServer(t, http.StatusInternalServerError, `{
		"error":{"message":"boom","type":"server_error","code":null}
	}`)

	client := NewCompletionClient(testOpenAIConfig(ts.URL))
	_, err := client.Complete(context.Background(), "system", "user")
	assert.ErrorIs(t, err, entities.ErrUpstream)
	assert.NotErrorIs(t, err, entities.ErrQuotaExceeded)
}

func TestComplete_NotConfigured(t *testing.T) {
	client := NewCompletionClient(&config.OpenAIConfig{})
	assert.False(t, client.Configured())

	_, err := client.Complete(context.Background(), "system", "user")
	assert.ErrorIs(t, err, entities.ErrProviderNotReady)
}
