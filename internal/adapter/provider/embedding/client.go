// Package embedding adapts an OpenAI-compatible embeddings endpoint to the
// embedding service interface used by the memory store.
package embedding

import (
	"context"
	"fmt"
	"log/slog"

	openai "github.com/sashabaranov/go-openai"

	"github.com/heartmarshall/assistant-core/internal/config"
	"github.com/heartmarshall/assistant-core/internal/domain"
)

// Client computes fixed-length embeddings.
type Client struct {
	client *openai.Client
	model  string
	dims   int
	log    *slog.Logger
}

// New creates a Client. dims is the deployment's embedding dimensionality and
// is requested from models that support shortened embeddings.
func New(logger *slog.Logger, cfg config.EmbeddingConfig, dims int) *Client {
	oc := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		oc.BaseURL = cfg.BaseURL
	}
	return &Client{
		client: openai.NewClientWithConfig(oc),
		model:  cfg.Model,
		dims:   dims,
		log:    logger.With("adapter", "embedding"),
	}
}

// Embed returns the embedding of text. Any upstream failure, including a
// response with the wrong dimensionality, is reported as
// domain.ErrEmbeddingUnavailable.
func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input:      []string{text},
		Model:      openai.EmbeddingModel(c.model),
		Dimensions: c.dims,
	})
	if err != nil {
		c.log.ErrorContext(ctx, "embedding request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("embedding: %w: %w", domain.ErrEmbeddingUnavailable, err)
	}

	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("embedding: no vectors returned: %w", domain.ErrEmbeddingUnavailable)
	}

	vec := resp.Data[0].Embedding
	if c.dims > 0 && len(vec) != c.dims {
		return nil, fmt.Errorf("embedding: got %d dimensions, want %d: %w", len(vec), c.dims, domain.ErrEmbeddingUnavailable)
	}
	return vec, nil
}
