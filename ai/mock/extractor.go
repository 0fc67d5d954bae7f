package mock

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/alekhya-chintada/skillmatrix/core"
)

// MockPhraseExtractor is a test double for ai.PhraseExtractor. Without
// ExtractPhraseFunc it lower-cases the text, drops a leading "who knows" and
// a trailing "?", and reports core.ErrNoPhrase when nothing is left.
type MockPhraseExtractor struct {
	ExtractPhraseFunc func(ctx context.Context, text string) (string, error)

	calls atomic.Int64
}

func NewMockPhraseExtractor() *MockPhraseExtractor {
	return &MockPhraseExtractor{}
}

func (m *MockPhraseExtractor) ExtractPhrase(ctx context.Context, text string) (string, error) {
	m.calls.Add(1)
	if m.ExtractPhraseFunc != nil {
		return m.ExtractPhraseFunc(ctx, text)
	}

	phrase := strings.ToLower(strings.TrimSpace(text))
	phrase = strings.TrimPrefix(phrase, "who knows")
	phrase = strings.TrimSpace(strings.TrimSuffix(phrase, "?"))
	if phrase == "" {
		return "", core.ErrNoPhrase
	}
	return phrase, nil
}

func (m *MockPhraseExtractor) CallCount() int {
	return int(m.calls.Load())
}
