package reindex

import (
	"context"
	"fmt"
	"time"

	"github.com/alekhya-chintada/skillmatrix/ai"
	"github.com/alekhya-chintada/skillmatrix/core"
	"github.com/alekhya-chintada/skillmatrix/storage"
)

// BatchProcessor embeds profile summaries and writes them to a vector index.
type BatchProcessor struct {
	index          storage.VectorIndex
	embedder       ai.Embedder
	maxRetries     int
	retryBaseDelay time.Duration
}

// NewBatchProcessor creates a new batch processor.
// maxRetries bounds the embedding attempts per batch; retryBaseDelay is the
// first backoff delay.
func NewBatchProcessor(index storage.VectorIndex, embedder ai.Embedder, maxRetries int, retryBaseDelay time.Duration) *BatchProcessor {
	return &BatchProcessor{
		index:          index,
		embedder:       embedder,
		maxRetries:     maxRetries,
		retryBaseDelay: retryBaseDelay,
	}
}

// Process embeds the summary of each profile, normalizes the vectors and
// upserts one document per profile. It returns the number of documents written.
func (bp *BatchProcessor) Process(ctx context.Context, profiles []*core.Profile) (int, error) {
	if len(profiles) == 0 {
		return 0, nil
	}

	texts := make([]string, len(profiles))
	for i, p := range profiles {
		texts[i] = p.Summary()
	}

	var embeddings [][]float32
	err := RetryWithBackoff(ctx, func() error {
		var err error
		embeddings, err = bp.embedder.EmbedTexts(ctx, texts)
		return err
	}, bp.maxRetries, bp.retryBaseDelay)
	if err != nil {
		return 0, fmt.Errorf("failed to generate embeddings after %d attempts: %w", bp.maxRetries, err)
	}

	if len(embeddings) != len(profiles) {
		return 0, fmt.Errorf("%w: expected %d, got %d", ErrEmbeddingMismatch, len(profiles), len(embeddings))
	}

	docs := make([]storage.Document, len(profiles))
	for i, p := range profiles {
		docs[i] = storage.DocumentFor(p, NormalizeVector(embeddings[i]))
	}

	if err := bp.index.Upsert(ctx, docs...); err != nil {
		return 0, fmt.Errorf("failed to upsert documents: %w", err)
	}

	return len(docs), nil
}
