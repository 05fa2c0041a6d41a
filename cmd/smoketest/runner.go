package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	pkgai "github.com/johnquangdev/fireflies-bridge/pkg/ai"
)

type runner struct {
	opts   *options
	client *http.Client
	out    io.Writer
}

func (r *runner) run(ctx context.Context) error {
	meetingURL := "https://meet.google.com/smk-" + uuid.NewString()[:8]

	stepf(r, "GET /health")
	if _, err := r.call(ctx, http.MethodGet, "/health", nil, nil, http.StatusOK); err != nil {
		return err
	}

	stepf(r, "POST /meetings (%s)", meetingURL)
	body, err := r.call(ctx, http.MethodPost, "/meetings", map[string]interface{}{
		"project_id":      r.opts.projectID,
		"google_meet_url": meetingURL,
		"title":           "Smoke test",
	}, nil, http.StatusCreated)
	if err != nil {
		return err
	}
	var created struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		return fmt.Errorf("decode create response: %w", err)
	}

	identifier := fmt.Sprint(created.ID)
	if r.opts.transcriptID != "" {
		stepf(r, "POST /webhook (transcript %s)", r.opts.transcriptID)
		payload, _ := json.Marshal(map[string]string{
			"eventType": "Transcription completed",
			"meetingId": r.opts.transcriptID,
		})
		headers := map[string]string{}
		if r.opts.secret != "" {
			headers[pkgai.SignatureHeader] = pkgai.Sign(r.opts.secret, payload)
		}
		if _, err := r.call(ctx, http.MethodPost, "/webhook", json.RawMessage(payload), headers, http.StatusOK); err != nil {
			return err
		}
		identifier = r.opts.transcriptID
	} else {
		stepf(r, "POST /test-utils/inject-transcript")
		fakeID := "smoke-" + uuid.NewString()
		if _, err := r.call(ctx, http.MethodPost, "/test-utils/inject-transcript", map[string]string{
			"meeting_url":   meetingURL,
			"meeting_id":    fakeID,
			"transcription": "Alice: smoke test line",
		}, nil, http.StatusOK); err != nil {
			return err
		}
		identifier = fakeID
	}

	stepf(r, "GET /meetings/%s", identifier)
	body, err = r.call(ctx, http.MethodGet, "/meetings/"+identifier, nil, nil, http.StatusOK)
	if err != nil {
		return err
	}
	var meeting struct {
		Transcription *string `json:"transcription"`
	}
	if err := json.Unmarshal(body, &meeting); err != nil {
		return fmt.Errorf("decode meeting: %w", err)
	}
	if meeting.Transcription == nil || *meeting.Transcription == "" {
		return fmt.Errorf("meeting %s has no transcription", identifier)
	}

	stepf(r, "OK")
	return nil
}

func (r *runner) call(ctx context.Context, method, path string, payload interface{}, headers map[string]string, want int) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, strings.TrimRight(r.opts.baseURL, "/")+path, reader)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != want {
		return nil, fmt.Errorf("%s %s: expected %d, got %d: %s", method, path, want, resp.StatusCode, string(body))
	}
	return body, nil
}
