// Package genai is the thin HTTP client for the upstream
// generative-language API. Callers must treat it as optional: every
// failure path maps to ErrUnavailable and a local fallback.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/SamriddhiRoy/Interview-Question-Generator/internal/config"
)

// ErrUnavailable means the upstream cannot be used: no API key, a
// transport failure, a non-2xx status, or an empty reply. It is never
// surfaced to the end user; callers substitute deterministic fallbacks.
var ErrUnavailable = errors.New("generative upstream unavailable")

type Client struct {
	baseURL string
	model   string
	apiKey  string
	client  *http.Client
}

func NewClient(cfg config.GenAI) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		model:   cfg.Model,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

// Available reports whether an API key is configured at all.
func (c *Client) Available() bool { return c != nil && c.apiKey != "" }

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// GenerateText sends one prompt and returns the concatenated text of
// the first candidate.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	if !c.Available() {
		return "", ErrUnavailable
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("module", "genai").Msg("upstream call failed")
		return "", ErrUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Warn().Int("status", resp.StatusCode).Str("module", "genai").Msg("upstream bad status")
		return "", ErrUnavailable
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", ErrUnavailable
	}

	var out generateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", ErrUnavailable
	}
	if len(out.Candidates) == 0 {
		return "", ErrUnavailable
	}

	var sb strings.Builder
	for _, p := range out.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	text := sb.String()
	if strings.TrimSpace(text) == "" {
		return "", ErrUnavailable
	}
	return text, nil
}
