package projectbrief

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/fireflies-bridge/internal/domain/entities"
	"github.com/johnquangdev/fireflies-bridge/pkg/config"
)

func newServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/projects/P1", r.URL.Path)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestGetProjectBrief_StringFields(t *testing.T) {
	ts := newServer(t, http.StatusOK, `{"id":"P1","requirements":"Build a CRM","questions":"Budget?"}`)
	c := NewClient(&config.ProjectBriefConfig{ServiceURL: ts.URL + "/"})

	brief, err := c.GetProjectBrief(context.Background(), "P1")
	require.NoError(t, err)
	assert.Equal(t, "P1", brief.ProjectID)
	assert.Equal(t, "Build a CRM", *brief.Requirements)
	assert.Equal(t, "Budget?", *brief.Questions)
}

func TestGetProjectBrief_StructuredAndFallbackKeys(t *testing.T) {
	ts := newServer(t, http.StatusOK, `{"id":"P1","requirements":["a","b"],"feedback":{"q1":"when?"}}`)
	c := NewClient(&config.ProjectBriefConfig{ServiceURL: ts.URL})

	brief, err := c.GetProjectBrief(context.Background(), "P1")
	require.NoError(t, err)
	assert.Equal(t, `["a","b"]`, *brief.Requirements)
	assert.Equal(t, `{"q1":"when?"}`, *brief.Questions)
}

func TestGetProjectBrief_MissingFields(t *testing.T) {
	ts := newServer(t, http.StatusOK, `{"id":"P1"}`)
	c := NewClient(&config.ProjectBriefConfig{ServiceURL: ts.URL})

	brief, err := c.GetProjectBrief(context.Background(), "P1")
	require.NoError(t, err)
	assert.Nil(t, brief.Requirements)
	assert.Nil(t, brief.Questions)
}

func TestGetProjectBrief_Failures(t *testing.T) {
	for name, tc := range map[string]struct {
		status int
		body   string
	}{
		"not found":    {http.StatusNotFound, `{"error":"nope"}`},
		"server error": {http.StatusBadGateway, ``},
		"invalid json": {http.StatusOK, `<html>`},
		"null body":    {http.StatusOK, `null`},
	} {
		t.Run(name, func(t *testing.T) {
			ts := newServer(t, tc.status, tc.body)
			c := NewClient(&config.ProjectBriefConfig{ServiceURL: ts.URL})

			_, err := c.GetProjectBrief(context.Background(), "P1")
			assert.ErrorIs(t, err, entities.ErrUpstream)
		})
	}
}

func TestGetProjectBrief_NotConfigured(t *testing.T) {
	c := NewClient(&config.ProjectBriefConfig{})
	_, err := c.GetProjectBrief(context.Background(), "P1")
	assert.ErrorIs(t, err, entities.ErrProjectSourceNotConfigured)
}
