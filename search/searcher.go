package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/alekhya-chintada/skillmatrix/ai"
	"github.com/alekhya-chintada/skillmatrix/core"
	"github.com/alekhya-chintada/skillmatrix/match"
	"github.com/alekhya-chintada/skillmatrix/query"
	"github.com/alekhya-chintada/skillmatrix/rank"
	"github.com/alekhya-chintada/skillmatrix/storage"
)

const (
	// DefaultFallbackThreshold is the merged-list size below which the
	// semantic fallback runs, and the size it fills up to.
	DefaultFallbackThreshold = 3
	// DefaultFallbackK is how many neighbors are requested from the index.
	DefaultFallbackK = 3
)

// CorpusSource hands out the current corpus snapshot.
type CorpusSource interface {
	Corpus() *core.Corpus
}

// StaticCorpus is a CorpusSource that always returns the same snapshot.
type StaticCorpus struct {
	C *core.Corpus
}

// Corpus implements CorpusSource.
func (s StaticCorpus) Corpus() *core.Corpus {
	return s.C
}

// Result is the outcome of one query.
type Result struct {
	// Phrase is the parsed phrase the tiers ran against.
	Phrase match.Phrase
	// Matches is the merged list in tier order, one entry per profile.
	Matches []core.Match
	// Ranked is the final selection.
	Ranked []core.Match
	// FallbackUsed reports whether the semantic fallback was attempted.
	FallbackUsed bool
	// FallbackErr wraps ErrFallbackUnavailable when the fallback failed.
	FallbackErr error
}

// Searcher runs the matching cascade and semantic fallback.
type Searcher struct {
	source    CorpusSource
	embedder  ai.Embedder
	index     storage.VectorIndex
	extractor ai.PhraseExtractor
	monitor   SearchMonitor
	limit     int
	threshold int
	fallbackK int
	logger    *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithLimit sets the size of the ranked result set.
// Default is rank.DefaultLimit.
func WithLimit(limit int) Option {
	return func(s *Searcher) error {
		if limit <= 0 {
			return fmt.Errorf("limit must be positive, got %d", limit)
		}
		s.limit = limit
		return nil
	}
}

// WithFallbackK sets how many neighbors the fallback requests.
// Default is DefaultFallbackK.
func WithFallbackK(k int) Option {
	return func(s *Searcher) error {
		if k <= 0 {
			return fmt.Errorf("fallback k must be positive, got %d", k)
		}
		s.fallbackK = k
		return nil
	}
}

// WithMonitor sets a monitor notified at each stage of every query.
func WithMonitor(monitor SearchMonitor) Option {
	return func(s *Searcher) error {
		if monitor == nil {
			monitor = &noopMonitor{}
		}
		s.monitor = monitor
		return nil
	}
}

// WithExtractor sets the phrase extractor used by SearchText.
// Default is query.PatternExtractor.
func WithExtractor(extractor ai.PhraseExtractor) Option {
	return func(s *Searcher) error {
		if extractor == nil {
			extractor = query.PatternExtractor{}
		}
		s.extractor = extractor
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(
	source CorpusSource,
	embedder ai.Embedder,
	index storage.VectorIndex,
	opts ...Option,
) (*Searcher, error) {
	if source == nil {
		return nil, ErrCorpusRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}
	if index == nil {
		return nil, ErrVectorIndexRequired
	}

	s := &Searcher{
		source:    source,
		embedder:  embedder,
		index:     index,
		extractor: query.PatternExtractor{},
		monitor:   &noopMonitor{},
		limit:     rank.DefaultLimit,
		threshold: DefaultFallbackThreshold,
		fallbackK: DefaultFallbackK,
		logger:    slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// SearchText extracts a phrase from a free-text question and searches for it.
// Extraction failures are reported as core.ErrNoPhrase.
func (s *Searcher) SearchText(ctx context.Context, text string) (*Result, error) {
	phrase, err := query.Parse(ctx, s.extractor, text)
	if err != nil {
		if !errors.Is(err, core.ErrNoPhrase) {
			s.logger.Warn("phrase extraction failed", "err", err)
			err = fmt.Errorf("%w: %w", core.ErrNoPhrase, err)
		}
		return nil, err
	}
	return s.Search(ctx, phrase, text)
}

// Search runs the cascade for phrase against the current corpus snapshot.
// queryText is what gets embedded if the fallback runs; when empty the raw
// phrase is used instead.
func (s *Searcher) Search(ctx context.Context, phrase match.Phrase, queryText string) (*Result, error) {
	if phrase.Empty() {
		return nil, core.ErrNoPhrase
	}
	started := time.Now()
	s.monitor.Start(phrase)

	corpus := s.source.Corpus()
	result := &Result{Phrase: phrase}
	seen := make(map[string]struct{})

	for _, tier := range match.Cascade(phrase) {
		found := tier.Strategy(corpus, phrase)
		added := 0
		for _, m := range found {
			if _, dup := seen[m.EmployeeID()]; dup {
				continue
			}
			seen[m.EmployeeID()] = struct{}{}
			result.Matches = append(result.Matches, m)
			added++
		}
		s.monitor.AfterTier(tier.Type, len(found), added)
		s.logger.Debug("tier complete", "tier", tier.Type, "found", len(found), "added", added)
	}

	if len(result.Matches) < s.threshold {
		result.FallbackUsed = true
		if queryText == "" {
			queryText = phrase.Raw
		}
		if err := s.fallback(ctx, queryText, seen, result); err != nil {
			result.FallbackErr = fmt.Errorf("%w: %w", ErrFallbackUnavailable, err)
			s.monitor.FallbackFailed(err)
			s.logger.Warn("semantic fallback failed", "query", queryText, "err", err)
		}
	}

	result.Ranked = rank.Select(result.Matches, s.limit)
	s.monitor.Finish(result.Ranked, time.Since(started))
	return result, nil
}

// fallback appends SEMANTIC matches in index order until the merged list
// reaches the threshold.
func (s *Searcher) fallback(ctx context.Context, queryText string, seen map[string]struct{}, result *Result) error {
	s.monitor.FallbackInvoked(len(result.Matches))

	vector, err := s.embedder.EmbedText(ctx, queryText)
	if err != nil {
		return fmt.Errorf("embed query: %w", err)
	}
	hits, err := s.index.Query(ctx, vector, s.fallbackK)
	if err != nil {
		return fmt.Errorf("query vector index: %w", err)
	}

	added := 0
	for _, hit := range hits {
		if len(result.Matches) >= s.threshold {
			break
		}
		profile := storage.ProfileFromMetadata(hit.Metadata)
		if profile.EmployeeID == "" {
			profile.EmployeeID = hit.ID
		}
		if _, dup := seen[profile.EmployeeID]; dup {
			continue
		}
		seen[profile.EmployeeID] = struct{}{}
		result.Matches = append(result.Matches, core.Match{Profile: profile, Type: core.MatchSemantic})
		added++
	}
	s.monitor.AfterTier(core.MatchSemantic, len(hits), added)
	return nil
}
