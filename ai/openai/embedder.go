package openai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/alekhya-chintada/skillmatrix/ai"
)

var (
	// ErrEmptyEmbedding is returned when the service answers with no vector.
	ErrEmptyEmbedding = errors.New("embedding service returned no vector")
	// ErrEmbeddingCount is returned when a batch reply does not carry one
	// vector per input text.
	ErrEmbeddingCount = errors.New("embedding count mismatch")
)

// Embedder embeds profile summaries and query text through an
// OpenAI-compatible embeddings endpoint.
type Embedder struct {
	client embeddings.Embedder
	logger *slog.Logger
}

var _ ai.Embedder = (*Embedder)(nil)

func newEmbedder(config *ai.Config) (*Embedder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	llm, err := openai.New(
		openai.WithBaseURL(config.EmbeddingHost),
		openai.WithToken(config.APIKey),
		openai.WithEmbeddingModel(config.EmbeddingModel),
	)
	if err != nil {
		return nil, fmt.Errorf("embedding client for %s: %w", config.EmbeddingHost, err)
	}
	client, err := embeddings.NewEmbedder(llm, embeddings.WithStripNewLines(true))
	if err != nil {
		return nil, err
	}
	return newEmbedderWithClient(client, config.EmbeddingModel), nil
}

func newEmbedderWithClient(client embeddings.Embedder, model string) *Embedder {
	return &Embedder{
		client: client,
		logger: slog.Default().With("component", "openai-embedder", "model", model),
	}
}

// NewEmbedder returns an ai.Embedder for config.EmbeddingHost.
func NewEmbedder(config *ai.Config) (ai.Embedder, error) {
	return newEmbedder(config)
}

// EmbedText embeds a search query.
func (e *Embedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	vector, err := e.client.EmbedQuery(ctx, text)
	if err != nil {
		e.logger.Error("failed to embed query", "err", err)
		return nil, err
	}
	if len(vector) == 0 {
		return nil, ErrEmptyEmbedding
	}
	return vector, nil
}

// EmbedTexts embeds profile summaries, one vector per text in input order.
func (e *Embedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	e.logger.Debug("embedding summaries", "count", len(texts))

	vectors, err := e.client.EmbedDocuments(ctx, texts)
	if err != nil {
		e.logger.Error("failed to embed summaries", "count", len(texts), "err", err)
		return nil, err
	}
	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("%w: %d vectors for %d texts", ErrEmbeddingCount, len(vectors), len(texts))
	}
	return vectors, nil
}
