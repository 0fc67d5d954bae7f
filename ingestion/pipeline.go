package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/alekhya-chintada/skillmatrix/ai"
	"github.com/alekhya-chintada/skillmatrix/reindex"
	"github.com/alekhya-chintada/skillmatrix/storage"
)

const (
	// DefaultBatchSize is the number of profile summaries embedded per request.
	DefaultBatchSize = 32
	// DefaultMaxRetries bounds the embedding attempts per batch.
	DefaultMaxRetries = 3
	// DefaultRetryDelay is the first backoff delay between attempts.
	DefaultRetryDelay = 500 * time.Millisecond
)

// Pipeline stores profiles and indexes their summaries.
// Embedding batches run concurrently on a worker pool.
type Pipeline struct {
	profiles   storage.ProfileRepository
	index      storage.VectorIndex
	embedder   ai.Embedder
	pool       *ants.Pool
	batchSize  int
	maxRetries int
	retryDelay time.Duration
	logger     *slog.Logger
}

// IngestReport summarizes one Ingest call.
type IngestReport struct {
	Profiles int // profiles stored
	Embedded int // documents written to the vector index
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		if p.pool != nil {
			p.pool.Release()
		}
		p.pool = pool
		return nil
	}
}

// WithBatchSize sets how many summaries are embedded per request.
// Default is DefaultBatchSize.
func WithBatchSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			return fmt.Errorf("batch size must be positive, got %d", size)
		}
		p.batchSize = size
		return nil
	}
}

// WithRetry sets the embedding retry policy.
// Default is DefaultMaxRetries attempts starting at DefaultRetryDelay.
func WithRetry(maxAttempts int, baseDelay time.Duration) Option {
	return func(p *Pipeline) error {
		if maxAttempts < 1 {
			return reindex.ErrInvalidMaxAttempts
		}
		p.maxRetries = maxAttempts
		p.retryDelay = baseDelay
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(
	profiles storage.ProfileRepository,
	index storage.VectorIndex,
	embedder ai.Embedder,
	opts ...Option,
) (*Pipeline, error) {
	if profiles == nil {
		return nil, ErrProfileRepositoryRequired
	}
	if index == nil {
		return nil, ErrVectorIndexRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	// Default pool size
	poolSize := max(runtime.NumCPU()/2, 1)
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		profiles:   profiles,
		index:      index,
		embedder:   embedder,
		pool:       pool,
		batchSize:  DefaultBatchSize,
		maxRetries: DefaultMaxRetries,
		retryDelay: DefaultRetryDelay,
		logger:     slog.Default(),
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}
	p.logger = p.logger.With("component", "ingestion")

	return p, nil
}

// Ingest builds profiles from records, replaces the stored profile set and
// rebuilds the vector index from the profile summaries. It returns after all embedding batches have
// finished; the first batch error is returned.
func (p *Pipeline) Ingest(ctx context.Context, records []RawRecord) (*IngestReport, error) {
	profiles := buildProfiles(records, p.logger)
	p.logger.Info("built profiles", "records", len(records), "profiles", len(profiles))

	if err := p.profiles.ReplaceProfiles(ctx, profiles...); err != nil {
		return nil, err
	}
	report := &IngestReport{Profiles: len(profiles)}

	if err := p.index.Clear(ctx); err != nil {
		return report, fmt.Errorf("clear vector index: %w", err)
	}

	processor := reindex.NewBatchProcessor(p.index, p.embedder, p.maxRetries, p.retryDelay)
	batches := reindex.Chunk(profiles, p.batchSize)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	record := func(n int, err error) {
		mu.Lock()
		defer mu.Unlock()
		report.Embedded += n
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	for i, batch := range batches {
		wg.Add(1)
		err := p.pool.Submit(func() {
			defer wg.Done()
			n, err := processor.Process(ctx, batch)
			if err != nil {
				p.logger.Error("error embedding batch", "batch", i, "size", len(batch), "err", err)
			}
			record(n, err)
		})
		if err != nil {
			wg.Done()
			record(0, fmt.Errorf("submit batch %d: %w", i, err))
			break
		}
	}
	wg.Wait()

	if firstErr != nil {
		return report, firstErr
	}
	p.logger.Info("ingestion complete", "profiles", report.Profiles, "embedded", report.Embedded)
	return report, nil
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
