// Package assistant implements the text-completion domain service over an
// OpenAI-compatible chat completions endpoint.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"scancare/config"
	"scancare/internal/domain/service"
	"scancare/internal/errors"
)

const completionsPath = "/v1/chat/completions"

// client calls the chat completions API with a single user message.
type client struct {
	baseURL     string
	apiKey      string
	model       string
	maxTokens   int
	temperature float64
	httpClient  *http.Client
}

// New is the constructor for the assistant client.
func New(cfg *config.Config) (service.AssistantService, error) {
	aCfg := cfg.Assistant
	if aCfg == nil || aCfg.APIKey == "" {
		return nil, errors.New("assistant API key must be provided")
	}

	return &client{
		baseURL:     aCfg.BaseURL,
		apiKey:      aCfg.APIKey,
		model:       aCfg.Model,
		maxTokens:   aCfg.MaxTokens,
		temperature: aCfg.Temperature,
		httpClient:  &http.Client{Timeout: aCfg.Timeout},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Complete sends the prompt as a single user message and returns the
// first choice's content.
func (c *client) Complete(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to encode completion request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+completionsPath, bytes.NewReader(payload))
	if err != nil {
		return "", errors.Wrap(err, "failed to build completion request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "completion request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "failed to read completion response")
	}

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("completion endpoint returned %d: %s", resp.StatusCode, string(body))
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", errors.Wrap(err, "failed to decode completion response")
	}

	if len(parsed.Choices) == 0 {
		return "", errors.New("completion response carried no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}
