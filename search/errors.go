package search

import "errors"

var (
	// ErrCorpusRequired is returned when a corpus source is not provided.
	ErrCorpusRequired = errors.New("corpus source required")

	// ErrEmbedderRequired is returned when an embedder is not provided.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrVectorIndexRequired is returned when a vector index is not provided.
	ErrVectorIndexRequired = errors.New("vector index required")

	// ErrFallbackUnavailable reports that the semantic fallback could not run.
	// Symbolic matches found before the failure are still returned.
	ErrFallbackUnavailable = errors.New("semantic fallback unavailable")
)
