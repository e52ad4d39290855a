// Package assistant implements the remote chat-completion client.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"mandoob/config"
	"mandoob/internal/domain/service"

	"github.com/pkg/errors"
)

// completionRequest is the chat-completions wire format shared by DeepSeek
// and OpenAI-compatible endpoints.
type completionRequest struct {
	Model       string                `json:"model"`
	Messages    []service.ChatMessage `json:"messages"`
	MaxTokens   int                   `json:"max_tokens"`
	Temperature float64               `json:"temperature"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Client posts completion requests to the configured endpoint with a bearer
// credential taken from configuration, never compiled in.
type Client struct {
	cfg        *config.AssistantConfig
	httpClient *http.Client
}

// NewClient creates a chat-completion client from configuration.
func NewClient(cfg *config.AssistantConfig) service.CompletionClient {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Complete sends the ordered message list and returns the first choice's
// content. Every failure mode (missing key, network fault, non-2xx status,
// malformed or empty payload) comes back as a plain error so the caller can
// treat them uniformly and fall back to a local answer.
func (c *Client) Complete(ctx context.Context, messages []service.ChatMessage) (string, error) {
	if c.cfg.APIKey == "" {
		return "", errors.New("assistant API key not configured")
	}

	body, err := json.Marshal(completionRequest{
		Model:       c.cfg.Model,
		Messages:    messages,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal completion request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "failed to create completion request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "completion request failed")
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "failed to read completion response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.Errorf("completion endpoint returned status %d: %s", resp.StatusCode, string(payload))
	}

	var decoded completionResponse
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return "", errors.Wrap(err, "failed to parse completion response")
	}
	if decoded.Error != nil {
		return "", errors.Errorf("completion endpoint error: %s", decoded.Error.Message)
	}
	if len(decoded.Choices) == 0 || decoded.Choices[0].Message.Content == "" {
		return "", errors.New("completion response contained no answer")
	}

	return decoded.Choices[0].Message.Content, nil
}
