package skillmatrix

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/alekhya-chintada/skillmatrix/ai"
	"github.com/alekhya-chintada/skillmatrix/ai/openai"
	"github.com/alekhya-chintada/skillmatrix/core"
	"github.com/alekhya-chintada/skillmatrix/ingestion"
	"github.com/alekhya-chintada/skillmatrix/reindex"
	"github.com/alekhya-chintada/skillmatrix/search"
	"github.com/alekhya-chintada/skillmatrix/storage"
	"github.com/alekhya-chintada/skillmatrix/storage/badger"
)

// Engine ties the stores, the AI provider and the in-memory corpus together.
// The corpus is an immutable snapshot swapped atomically by Reload.
type Engine struct {
	backend  *badger.Backend
	profiles storage.ProfileRepository
	index    storage.VectorIndex
	provider ai.AIProvider
	corpus   atomic.Pointer[core.Corpus]
	logger   *slog.Logger
}

var _ search.CorpusSource = (*Engine)(nil)

// Option configures an Engine.
type Option func(*engineOptions)

type engineOptions struct {
	aiConfig *ai.Config
	provider ai.AIProvider
	inMemory bool
	logger   *slog.Logger
}

// WithAIConfig sets the configuration for the OpenAI-compatible provider.
func WithAIConfig(config *ai.Config) Option {
	return func(o *engineOptions) {
		o.aiConfig = config
	}
}

// WithProvider supplies a ready-made AI provider. It takes precedence over
// WithAIConfig and is closed with the engine.
func WithProvider(provider ai.AIProvider) Option {
	return func(o *engineOptions) {
		o.provider = provider
	}
}

// WithInMemory keeps all data in memory. The path passed to Open is ignored.
func WithInMemory() Option {
	return func(o *engineOptions) {
		o.inMemory = true
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *engineOptions) {
		o.logger = logger
	}
}

// Open opens or creates the database at path and loads the stored profiles
// into memory.
func Open(path string, opts ...Option) (*Engine, error) {
	options := &engineOptions{
		aiConfig: ai.DefaultConfig(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}

	backend, err := badger.OpenBackend(path, options.inMemory)
	if err != nil {
		return nil, err
	}

	index, err := badger.NewVectorIndex(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}
	profiles := badger.NewProfileRepository(backend)

	provider := options.provider
	if provider == nil {
		if provider, err = openai.NewProvider(options.aiConfig); err != nil {
			profiles.Close()
			index.Close()
			backend.Close()
			return nil, err
		}
	}

	e := &Engine{
		backend:  backend,
		profiles: profiles,
		index:    index,
		provider: provider,
		logger:   options.logger.With("component", "engine"),
	}
	if err := e.Reload(context.Background()); err != nil {
		e.Close()
		return nil, err
	}
	return e, nil
}

// Close releases the provider, the stores and the backend.
func (e *Engine) Close() error {
	if err := e.provider.Close(); err != nil {
		e.logger.Error("error closing AI provider", "err", err)
	}
	if err := e.index.Close(); err != nil {
		e.logger.Error("error closing vector index", "err", err)
		return err
	}
	if err := e.profiles.Close(); err != nil {
		e.logger.Error("error closing profile repository", "err", err)
		return err
	}
	if err := e.backend.Close(); err != nil {
		e.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// Corpus returns the current snapshot. It never returns nil.
func (e *Engine) Corpus() *core.Corpus {
	if c := e.corpus.Load(); c != nil {
		return c
	}
	return core.NewCorpus(nil)
}

// Reload rebuilds the corpus from the profile repository and swaps it in.
// In-flight queries keep the snapshot they started with.
func (e *Engine) Reload(ctx context.Context) error {
	profiles, err := e.profiles.ListProfiles(ctx)
	if err != nil {
		return fmt.Errorf("reload corpus: %w", err)
	}
	next := core.NewCorpus(profiles)
	e.corpus.Store(next)
	e.logger.Info("corpus reloaded", "profiles", next.Len())
	return nil
}

// Ingest replaces the stored profile set with records, indexes it and
// reloads the corpus. The corpus is reloaded even when some embedding batches
// fail.
func (e *Engine) Ingest(ctx context.Context, records []ingestion.RawRecord, opts ...ingestion.Option) (*ingestion.IngestReport, error) {
	pipeline, err := e.NewIngestionPipeline(opts...)
	if err != nil {
		return nil, err
	}
	defer pipeline.Release()

	report, ingestErr := pipeline.Ingest(ctx, records)
	if report == nil {
		return nil, ingestErr
	}
	if err := e.Reload(ctx); err != nil {
		return report, err
	}
	return report, ingestErr
}

// NewIngestionPipeline creates a pipeline writing to the engine's stores.
func (e *Engine) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(e.profiles, e.index, e.provider.Embedder(), opts...)
}

// NewSearcher creates a searcher over the engine's live corpus.
func (e *Engine) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	return search.NewSearcher(e, e.provider.Embedder(), e.index, opts...)
}

// NewReindexer creates a reindexer over the stored profiles.
func (e *Engine) NewReindexer(config *reindex.Config, progress io.Writer) *reindex.Reindexer {
	return reindex.NewReindexer(e.profiles, e.index, e.provider.Embedder(), config, progress)
}

func (e *Engine) ProfileRepository() storage.ProfileRepository {
	return e.profiles
}

func (e *Engine) VectorIndex() storage.VectorIndex {
	return e.index
}

func (e *Engine) Provider() ai.AIProvider {
	return e.provider
}
