package openai

import (
	"log/slog"
	"sync/atomic"

	"github.com/alekhya-chintada/skillmatrix/ai"
)

// Provider bundles the embedder used for ingestion and the semantic fallback
// with the chat-model phrase extractor.
type Provider struct {
	embedder  *Embedder
	extractor *PhraseExtractor
	closed    atomic.Bool
	logger    *slog.Logger
}

var _ ai.AIProvider = (*Provider)(nil)

// NewProvider validates config and creates both services. The extractor
// client is created even when questions are parsed with the pattern
// extractor; creating it opens no connection.
func NewProvider(config *ai.Config) (ai.AIProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	embedder, err := newEmbedder(config)
	if err != nil {
		return nil, err
	}
	extractor, err := newPhraseExtractor(config)
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("component", "openai-provider")
	logger.Debug("provider ready",
		"embedding_host", config.EmbeddingHost,
		"embedding_model", config.EmbeddingModel,
		"extractor_model", config.ExtractorModel)

	return &Provider{
		embedder:  embedder,
		extractor: extractor,
		logger:    logger,
	}, nil
}

func (p *Provider) Embedder() ai.Embedder {
	return p.embedder
}

func (p *Provider) PhraseExtractor() ai.PhraseExtractor {
	return p.extractor
}

// Close marks the provider closed. Repeated calls are no-ops.
func (p *Provider) Close() error {
	if p.closed.CompareAndSwap(false, true) {
		p.logger.Debug("closing provider")
	}
	return nil
}
