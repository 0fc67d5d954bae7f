package mock

import (
	"sync/atomic"

	"github.com/alekhya-chintada/skillmatrix/ai"
)

// MockProvider is a test double for ai.AIProvider that records Close.
type MockProvider struct {
	embedder  *MockEmbedder
	extractor *MockPhraseExtractor
	closed    atomic.Bool
}

var _ ai.AIProvider = (*MockProvider)(nil)

// NewMockProvider returns a provider with default mock services.
func NewMockProvider() *MockProvider {
	return NewMockProviderWithServices(NewMockEmbedder(), NewMockPhraseExtractor())
}

// NewMockProviderWithServices returns a provider wrapping the given mocks.
func NewMockProviderWithServices(embedder *MockEmbedder, extractor *MockPhraseExtractor) *MockProvider {
	return &MockProvider{embedder: embedder, extractor: extractor}
}

func (p *MockProvider) Embedder() ai.Embedder {
	return p.embedder
}

func (p *MockProvider) PhraseExtractor() ai.PhraseExtractor {
	return p.extractor
}

func (p *MockProvider) Close() error {
	p.closed.Store(true)
	return nil
}

// Closed reports whether Close has been called.
func (p *MockProvider) Closed() bool {
	return p.closed.Load()
}
