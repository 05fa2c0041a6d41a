// Package projectbrief fetches project briefs from the external project-data service.
package projectbrief

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/johnquangdev/fireflies-bridge/internal/domain/entities"
	"github.com/johnquangdev/fireflies-bridge/pkg/config"
)

// questionKeys are tried in order when reading the questions text of a brief
var questionKeys = []string{"questions", "open_questions", "feedback"}

// Client handles communication with the project-data service
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a project-data client. An empty service URL yields a client
// that fails every call with entities.ErrProjectSourceNotConfigured.
func NewClient(cfg *config.ProjectBriefConfig) *Client {
	timeout := 10 * time.Second
	var baseURL string
	if cfg != nil {
		baseURL = strings.TrimRight(cfg.ServiceURL, "/")
		if cfg.Timeout > 0 {
			timeout = cfg.Timeout
		}
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// GetProjectBrief fetches GET {base}/projects/{id}
func (c *Client) GetProjectBrief(ctx context.Context, projectID string) (*entities.ProjectBrief, error) {
	if c.baseURL == "" {
		return nil, entities.ErrProjectSourceNotConfigured
	}

	endpoint := c.baseURL + "/projects/" + url.PathEscape(projectID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", entities.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: project service returned status %d", entities.ErrUpstream, resp.StatusCode)
	}

	var payload map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", entities.ErrUpstream, err)
	}
	if payload == nil {
		return nil, fmt.Errorf("%w: empty project payload", entities.ErrUpstream)
	}

	brief := &entities.ProjectBrief{
		ProjectID:    projectID,
		Requirements: textField(payload["requirements"]),
	}
	for _, key := range questionKeys {
		if q := textField(payload[key]); q != nil {
			brief.Questions = q
			break
		}
	}
	return brief, nil
}

// textField returns strings as-is and JSON-encodes structured values
func textField(v interface{}) *string {
	switch val := v.(type) {
	case nil:
		return nil
	case string:
		return &val
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return nil
		}
		s := string(b)
		return &s
	}
}
