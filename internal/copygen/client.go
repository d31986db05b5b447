// Package copygen generates marketing copy from briefing answers through
// an OpenAI-compatible completion API, with a deterministic demo mode when
// no API key is configured.
package copygen

import (
	"context"
	"fmt"
	"strings"

	"bcstudio-server/internal/common/config"
	"bcstudio-server/internal/common/httpclient"
)

// CompletionClient abstracts the text completion provider.
type CompletionClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type openAIClient struct {
	http *httpclient.Client
	cfg  config.CompletionConfig
}

// NewOpenAIClient builds a client for any OpenAI-compatible chat
// completions endpoint. Returns nil when no API key is configured, which
// selects demo mode.
func NewOpenAIClient(cfg config.CompletionConfig) CompletionClient {
	if cfg.APIKey == "" {
		return nil
	}
	return &openAIClient{
		http: httpclient.NewClient(config.GetDuration(cfg.Timeout)),
		cfg:  cfg,
	}
}

func (c *openAIClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	req := chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
	}

	url := strings.TrimSuffix(c.cfg.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}

	var resp chatResponse
	if err := c.http.PostJSON(ctx, url, headers, req, &resp); err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("completion returned no content")
	}
	return resp.Choices[0].Message.Content, nil
}
