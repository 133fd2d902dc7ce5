// Package genai is the last resolution tier, a generative completion client
// with strict rate-limit handling
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	perr "lingo/internal/platform/errors"
	"lingo/internal/platform/logger"
)

// Config configures the completion client
type Config struct {
	// Endpoint is a chat-completions URL, OpenAI wire shape
	Endpoint string
	APIKey   string
	Model    string

	Temperature float64
	Timeout     time.Duration

	// MaxResponseBytes bounds the body read, default 1MB
	MaxResponseBytes int64
}

// Client calls an OpenAI-style chat completions endpoint
type Client struct {
	cfg  Config
	http *http.Client
	log  *logger.Logger
}

// NewClient constructs a Client with defaults applied
func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxResponseBytes <= 0 {
		cfg.MaxResponseBytes = 1 << 20
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = 0.3
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  logger.Named("genai"),
	}
}

// Model reports the configured model name
func (c *Client) Model() string { return c.cfg.Model }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends the prompt pair and returns the trimmed completion text
// 429 maps to ErrorCodeTooManyRequests, any other non-2xx to ErrorCodeUnavailable
func (c *Client) Complete(ctx context.Context, systemPrompt, userText string) (string, error) {
	if c.cfg.Endpoint == "" || c.cfg.APIKey == "" {
		return "", perr.Unavailablef("genai: endpoint not configured")
	}

	body, err := json.Marshal(chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userText},
		},
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeUnknown, "genai: encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeUnknown, "genai: build request")
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeUnavailable, "genai: request failed")
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Warn().Err(cerr).Msg("failed to close completion body")
		}
	}()

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", perr.RateLimitedf("genai: provider rate limited")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", perr.Unavailablef("genai: provider status %d", resp.StatusCode)
	}

	var out chatResponse
	limited := io.LimitReader(resp.Body, c.cfg.MaxResponseBytes)
	if err := json.NewDecoder(limited).Decode(&out); err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeUnavailable, "genai: decode response")
	}
	if len(out.Choices) == 0 {
		return "", perr.Unavailablef("genai: empty choices")
	}

	content := strings.TrimSpace(out.Choices[0].Message.Content)
	if content == "" {
		return "", perr.Unavailablef("genai: blank completion")
	}
	return content, nil
}
