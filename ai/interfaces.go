package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// PhraseExtractor pulls the skill phrase out of a free-text question such as
// "who knows Big Data and NLP?". Implementations must be thread-safe.
type PhraseExtractor interface {
	// ExtractPhrase returns the raw skill phrase, lower-cased, with
	// conjunctions still in natural language ("big data and nlp").
	// Returns core.ErrNoPhrase if the text carries no phrase.
	ExtractPhrase(ctx context.Context, text string) (string, error)
}

// AIProvider aggregates AI services for convenient initialization and lifecycle management.
type AIProvider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// PhraseExtractor returns the model-backed phrase extraction service.
	// The returned PhraseExtractor is safe for concurrent use.
	PhraseExtractor() PhraseExtractor

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
