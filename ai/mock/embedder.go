package mock

import (
	"context"
	"hash/fnv"
	"math"
	"sync"
	"sync/atomic"
)

// DefaultDimensions is the length of vectors produced by the default behavior.
const DefaultDimensions = 384

// MockEmbedder is a test double for ai.Embedder.
//
// By default every text maps to a fixed unit vector derived from its hash,
// so a profile summary embedded at ingestion and embedded again as a query
// scores a cosine of 1. EmbedTextFunc and EmbedTextsFunc override that and
// must be set before the embedder is shared between goroutines.
type MockEmbedder struct {
	EmbedTextFunc  func(ctx context.Context, text string) ([]float32, error)
	EmbedTextsFunc func(ctx context.Context, texts []string) ([][]float32, error)

	calls   atomic.Int64
	mu      sync.Mutex
	queries []string
}

func NewMockEmbedder() *MockEmbedder {
	return &MockEmbedder{}
}

// EmbedText records text as a query and embeds it.
func (m *MockEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	m.calls.Add(1)
	m.mu.Lock()
	m.queries = append(m.queries, text)
	m.mu.Unlock()

	if m.EmbedTextFunc != nil {
		return m.EmbedTextFunc(ctx, text)
	}
	return DeterministicVector(text, DefaultDimensions), nil
}

func (m *MockEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	m.calls.Add(1)
	if m.EmbedTextsFunc != nil {
		return m.EmbedTextsFunc(ctx, texts)
	}

	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = DeterministicVector(text, DefaultDimensions)
	}
	return vectors, nil
}

// CallCount returns the number of EmbedText and EmbedTexts calls.
func (m *MockEmbedder) CallCount() int {
	return int(m.calls.Load())
}

// Queries returns the texts passed to EmbedText, in call order.
func (m *MockEmbedder) Queries() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.queries...)
}

// DeterministicVector derives a unit vector of length dim from the FNV hash
// of text.
func DeterministicVector(text string, dim int) []float32 {
	h := fnv.New32a()
	h.Write([]byte(text))
	seed := h.Sum32()

	vector := make([]float32, dim)
	var sumSquares float64
	for i := range vector {
		seed = seed*1664525 + 1013904223
		vector[i] = float32(seed%1000) / 1000.0
		sumSquares += float64(vector[i]) * float64(vector[i])
	}
	if sumSquares > 0 {
		norm := float32(1 / math.Sqrt(sumSquares))
		for i := range vector {
			vector[i] *= norm
		}
	}
	return vector
}
