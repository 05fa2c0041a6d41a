package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/johnquangdev/fireflies-bridge/internal/domain/entities"
	"github.com/johnquangdev/fireflies-bridge/pkg/config"
)

const addToLiveMeetingMutation = `
mutation AddToLiveMeeting($meetingLink: String!, $title: String, $duration: Int) {
  addToLiveMeeting(meeting_link: $meetingLink, title: $title, duration: $duration) {
    success
  }
}`

const getTranscriptQuery = `
query GetTranscript($id: String!) {
  transcript(id: $id) {
    title
    meeting_link
    sentences {
      text
      speaker_name
    }
    summary {
      overview
      short_summary
    }
  }
}`

// ErrGraphQL is returned when Fireflies answers with a GraphQL errors envelope
var ErrGraphQL = errors.New("fireflies graphql error")

// FirefliesClient is a minimal Fireflies.ai GraphQL client
type FirefliesClient struct {
	apiKey string
	apiURL string
	client *http.Client
}

// NewFirefliesClient creates a Fireflies client from the provided config
func NewFirefliesClient(cfg *config.FirefliesConfig) *FirefliesClient {
	timeout := 10 * time.Second
	apiURL := "https://api.fireflies.ai/graphql"
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
		if cfg.APIURL != "" {
			apiURL = cfg.APIURL
		}
		if cfg.Timeout > 0 {
			timeout = cfg.Timeout
		}
	}
	return &FirefliesClient{
		apiKey: apiKey,
		apiURL: apiURL,
		client: &http.Client{Timeout: timeout},
	}
}

// GraphQLRequest is the body of every Fireflies API call
type GraphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

// GraphQLError is a single entry of a GraphQL errors envelope
type GraphQLError struct {
	Message string `json:"message"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors"`
}

// AddBotToMeeting asks Fireflies to send its notetaker bot to a live meeting
func (c *FirefliesClient) AddBotToMeeting(ctx context.Context, meetingLink string, title *string, duration *int) error {
	variables := map[string]interface{}{"meetingLink": meetingLink}
	if title != nil {
		variables["title"] = *title
	}
	if duration != nil {
		variables["duration"] = *duration
	}

	var data struct {
		AddToLiveMeeting *struct {
			Success bool `json:"success"`
		} `json:"addToLiveMeeting"`
	}
	if err := c.do(ctx, addToLiveMeetingMutation, variables, &data); err != nil {
		return err
	}
	if data.AddToLiveMeeting == nil || !data.AddToLiveMeeting.Success {
		return fmt.Errorf("%w: fireflies did not accept the bot invite", entities.ErrUpstream)
	}
	return nil
}

// GetTranscript fetches a completed transcript by its Fireflies ID.
// GraphQL errors and null transcripts yield entities.ErrTranscriptNotFound,
// transport and decode failures yield entities.ErrUpstream.
func (c *FirefliesClient) GetTranscript(ctx context.Context, transcriptID string) (*entities.TranscriptData, error) {
	var data struct {
		Transcript *entities.TranscriptData `json:"transcript"`
	}
	if err := c.do(ctx, getTranscriptQuery, map[string]interface{}{"id": transcriptID}, &data); err != nil {
		if errors.Is(err, ErrGraphQL) {
			return nil, fmt.Errorf("%w: %v", entities.ErrTranscriptNotFound, err)
		}
		return nil, err
	}
	if data.Transcript == nil {
		return nil, fmt.Errorf("%w: %s", entities.ErrTranscriptNotFound, transcriptID)
	}
	return data.Transcript, nil
}

func (c *FirefliesClient) do(ctx context.Context, query string, variables map[string]interface{}, out interface{}) error {
	if c.apiKey == "" {
		return entities.ErrProviderNotReady
	}

	b, err := json.Marshal(GraphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", entities.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: fireflies returned status %d", entities.ErrUpstream, resp.StatusCode)
	}

	var gr graphQLResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return fmt.Errorf("%w: decode response: %v", entities.ErrUpstream, err)
	}
	if len(gr.Errors) > 0 {
		return fmt.Errorf("%w: %s", ErrGraphQL, gr.Errors[0].Message)
	}
	if len(gr.Data) == 0 || string(gr.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(gr.Data, out); err != nil {
		return fmt.Errorf("%w: decode data: %v", entities.ErrUpstream, err)
	}
	return nil
}
