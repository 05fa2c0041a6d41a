package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sashabaranov/go-openai"

	"github.com/johnquangdev/fireflies-bridge/internal/domain/entities"
	"github.com/johnquangdev/fireflies-bridge/pkg/config"
)

// CompletionClient sends chat completion requests to an OpenAI-compatible API
type CompletionClient struct {
	client      *openai.Client
	model       string
	temperature float32
	configured  bool
}

// NewCompletionClient creates a completion client from the provided config.
// A client without an API key reports Configured() == false and refuses every call.
func NewCompletionClient(cfg *config.OpenAIConfig) *CompletionClient {
	var c config.OpenAIConfig
	if cfg != nil {
		c = *cfg
	}
	if c.Model == "" {
		c.Model = openai.GPT4o
	}

	oc := openai.DefaultConfig(c.APIKey)
	if c.BaseURL != "" {
		oc.BaseURL = c.BaseURL
	}
	if c.Timeout > 0 {
		oc.HTTPClient = &http.Client{Timeout: c.Timeout}
	}

	return &CompletionClient{
		client:      openai.NewClientWithConfig(oc),
		model:       c.Model,
		temperature: c.Temperature,
		configured:  c.APIKey != "",
	}
}

// Configured reports whether an API key is available
func (c *CompletionClient) Configured() bool {
	return c.configured
}

// Complete sends a system + user message pair and returns the assistant content.
// Exhausted quota or rate limiting is reported as entities.ErrQuotaExceeded.
func (c *CompletionClient) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	if !c.configured {
		return "", entities.ErrProviderNotReady
	}

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
		Temperature: c.temperature,
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		if isQuotaError(err) {
			return "", fmt.Errorf("%w: %v", entities.ErrQuotaExceeded, err)
		}
		return "", fmt.Errorf("%w: completion call failed: %v", entities.ErrUpstream, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: completion returned no choices", entities.ErrUpstream)
	}
	return resp.Choices[0].Message.Content, nil
}

func isQuotaError(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatusCode == http.StatusTooManyRequests {
			return true
		}
		if code, ok := apiErr.Code.(string); ok && code == "insufficient_quota" {
			return true
		}
		return apiErr.Type == "insufficient_quota"
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode == http.StatusTooManyRequests
	}
	return false
}
