// Package claude adapts the Anthropic Messages API to the reasoning service
// interface used by the insight extractor and the briefing composer.
package claude

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/assistant-core/internal/config"
	"github.com/heartmarshall/assistant-core/internal/domain"
)

// Client completes prompts with a Claude model.
type Client struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	log       *slog.Logger
}

// New creates a Client from LLMConfig. Extra options are appended after the
// API key; tests use them to point the client at a local server.
// The SDK's automatic retries are disabled: retry policy belongs to callers.
func New(logger *slog.Logger, cfg config.LLMConfig, opts ...option.RequestOption) *Client {
	base := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	return &Client{
		client:    anthropic.NewClient(append(base, opts...)...),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		log:       logger.With("adapter", "claude"),
	}
}

// Complete sends one user prompt with an optional system prompt and returns
// the concatenated text of the response. Any transport or API failure is
// reported as domain.ErrReasoningUnavailable.
func (c *Client) Complete(ctx context.Context, system, prompt string) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		c.log.ErrorContext(ctx, "claude request failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("claude: %w: %w", domain.ErrReasoningUnavailable, err)
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("claude: empty response: %w", domain.ErrMalformedUpstreamResponse)
	}

	c.log.DebugContext(ctx, "claude response",
		slog.String("model", c.model),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
	)
	return sb.String(), nil
}
