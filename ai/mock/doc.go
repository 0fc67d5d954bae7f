// Package mock provides test doubles for the ai interfaces.
//
// Constructors return concrete types so tests can inject behavior through
// the exported function fields and inspect calls afterwards:
//
//	embedder := mock.NewMockEmbedder()
//	embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
//	    return nil, errors.New("embedding service down")
//	}
//	provider := mock.NewMockProviderWithServices(embedder, mock.NewMockPhraseExtractor())
//
//	// ... run a search that needs the semantic fallback ...
//	queries := embedder.Queries()
package mock
